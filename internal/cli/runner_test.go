package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/balcao-cafe/balcao/internal/cart"
	"github.com/balcao-cafe/balcao/internal/store/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "1", "title": "Latte", "price": 12.5},
			{"id": "2", "title": "Mocha", "price": 14.0}
		]`))
	}))
	t.Cleanup(srv.Close)

	return Options{Endpoint: srv.URL, DataDir: t.TempDir(), Yes: true}
}

func loadCart(opt Options) func() []int {
	engine := cart.NewEngine(jsonstore.New(opt.DataDir))
	return func() []int {
		var qtys []int
		for _, l := range engine.Load() {
			qtys = append(qtys, l.Quantity)
		}
		return qtys
	}
}

func TestRunNoArgs(t *testing.T) {
	assert.Equal(t, 2, Run(nil, testOptions(t)))
}

func TestRunUnknownSubcommand(t *testing.T) {
	assert.Equal(t, 2, Run([]string{"nope"}, testOptions(t)))
}

func TestRunHelp(t *testing.T) {
	assert.Equal(t, 0, Run([]string{"help"}, testOptions(t)))
}

func TestAddQtyRemoveClearFlow(t *testing.T) {
	opt := testOptions(t)
	qtys := loadCart(opt)

	require.Equal(t, 0, Run([]string{"add", "1"}, opt))
	assert.Equal(t, []int{1}, qtys())

	// Adding by title merges into the same line.
	require.Equal(t, 0, Run([]string{"add", "Latte"}, opt))
	assert.Equal(t, []int{2}, qtys())

	require.Equal(t, 0, Run([]string{"add", "2"}, opt))
	assert.Equal(t, []int{2, 1}, qtys())

	require.Equal(t, 0, Run([]string{"qty", "1", "5"}, opt))
	assert.Equal(t, []int{5, 1}, qtys())

	require.Equal(t, 0, Run([]string{"rm", "2"}, opt))
	assert.Equal(t, []int{5}, qtys())

	require.Equal(t, 0, Run([]string{"cart"}, opt))

	require.Equal(t, 0, Run([]string{"clear"}, opt))
	assert.Empty(t, qtys())
}

func TestAddUnknownCoffee(t *testing.T) {
	opt := testOptions(t)
	assert.Equal(t, 2, Run([]string{"add", "croissant"}, opt))
	assert.Empty(t, loadCart(opt)())
}

func TestQtyRejectsInvalidValues(t *testing.T) {
	opt := testOptions(t)
	require.Equal(t, 0, Run([]string{"add", "1"}, opt))

	assert.Equal(t, 2, Run([]string{"qty", "1", "0"}, opt))
	assert.Equal(t, []int{1}, loadCart(opt)(), "stored quantity unchanged")

	assert.Equal(t, 2, Run([]string{"qty", "1", "abc"}, opt))
	assert.Equal(t, 2, Run([]string{"qty", "9", "2"}, opt))
}

func TestRemoveOutOfRange(t *testing.T) {
	opt := testOptions(t)
	assert.Equal(t, 2, Run([]string{"rm", "1"}, opt))
}

func TestMenuFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	opt := Options{Endpoint: srv.URL, DataDir: t.TempDir(), Yes: true}
	assert.Equal(t, 1, Run([]string{"menu"}, opt))
	assert.Equal(t, 1, Run([]string{"add", "1"}, opt))
}

func TestMenuSuccess(t *testing.T) {
	opt := testOptions(t)
	assert.Equal(t, 0, Run([]string{"menu"}, opt))
}
