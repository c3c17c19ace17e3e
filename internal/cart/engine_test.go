package cart

import (
	"testing"

	"github.com/balcao-cafe/balcao/internal/model"
	"github.com/balcao-cafe/balcao/internal/store/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(jsonstore.New(t.TempDir()))
}

func latte() model.Product {
	return model.Product{ID: "a", Title: "Latte", Price: 12.50}
}

func TestLoadEmptyStore(t *testing.T) {
	e := newEngine(t)
	assert.Empty(t, e.Load())
}

func TestLoadMalformedState(t *testing.T) {
	s := jsonstore.New(t.TempDir())
	require.NoError(t, s.Set("cart", []byte("{not json")))

	e := NewEngine(s)
	assert.Empty(t, e.Load(), "malformed persisted state reads as empty")
}

func TestAddNewLine(t *testing.T) {
	e := newEngine(t)

	c, err := e.Add(latte())
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, model.ID("a"), c[0].ID)
	assert.Equal(t, "Latte", c[0].Title)
	assert.Equal(t, model.Cents(1250), c[0].Price)
	assert.Equal(t, 1, c[0].Quantity)

	tot := c.Totals()
	assert.Equal(t, 1, tot.Items)
	assert.Equal(t, model.Cents(1250), tot.Subtotal)
}

func TestAddSameProductMerges(t *testing.T) {
	e := newEngine(t)

	_, err := e.Add(latte())
	require.NoError(t, err)
	c, err := e.Add(latte())
	require.NoError(t, err)

	require.Len(t, c, 1, "one line per identity")
	assert.Equal(t, 2, c[0].Quantity)
	assert.Equal(t, model.Cents(2500), c.Totals().Subtotal)
}

func TestAddPinsFirstSeenFields(t *testing.T) {
	e := newEngine(t)

	_, err := e.Add(latte())
	require.NoError(t, err)

	// Same identity, different catalog data: no re-pricing.
	c, err := e.Add(model.Product{ID: "a", Title: "Latte Grande", Price: 99.99, Image: "new.png"})
	require.NoError(t, err)

	require.Len(t, c, 1)
	assert.Equal(t, "Latte", c[0].Title)
	assert.Equal(t, model.Cents(1250), c[0].Price)
	assert.Equal(t, "", c[0].Image)
	assert.Equal(t, 2, c[0].Quantity)
}

func TestAddDistinctIdentitiesKeepOrder(t *testing.T) {
	e := newEngine(t)

	_, err := e.Add(model.Product{ID: "b", Title: "Mocha", Price: 14})
	require.NoError(t, err)
	_, err = e.Add(latte())
	require.NoError(t, err)
	_, err = e.Add(model.Product{ID: "b", Title: "Mocha", Price: 14})
	require.NoError(t, err)
	c, err := e.Add(model.Product{ID: "c", Title: "Cappuccino", Price: 11})
	require.NoError(t, err)

	require.Len(t, c, 3)
	assert.Equal(t, model.ID("b"), c[0].ID, "first-seen order preserved")
	assert.Equal(t, model.ID("a"), c[1].ID)
	assert.Equal(t, model.ID("c"), c[2].ID)
}

func TestAddFallsBackToTitleKey(t *testing.T) {
	e := newEngine(t)

	_, err := e.Add(model.Product{Title: "Coado", Price: 6})
	require.NoError(t, err)
	c, err := e.Add(model.Product{Title: "Coado", Price: 6})
	require.NoError(t, err)

	require.Len(t, c, 1)
	assert.Equal(t, model.ID("Coado"), c[0].ID)
	assert.Equal(t, 2, c[0].Quantity)
}

func TestAddDefaultsMissingFields(t *testing.T) {
	e := newEngine(t)

	c, err := e.Add(model.Product{Title: "Misterioso"})
	require.NoError(t, err)

	require.Len(t, c, 1)
	assert.Equal(t, model.Cents(0), c[0].Price)
	assert.Equal(t, "", c[0].Image)
	assert.Equal(t, model.Cents(0), c.Totals().Subtotal)
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		qty     int
		wantQty int
		wantErr error
	}{
		{name: "valid update", index: 0, qty: 5, wantQty: 5},
		{name: "zero rejected", index: 0, qty: 0, wantQty: 2, wantErr: ErrInvalidQuantity},
		{name: "negative rejected", index: 0, qty: -3, wantQty: 2, wantErr: ErrInvalidQuantity},
		{name: "index out of range", index: 7, qty: 1, wantQty: 2, wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			_, err := e.Add(latte())
			require.NoError(t, err)
			_, err = e.Add(latte())
			require.NoError(t, err)

			_, err = e.SetQuantity(tt.index, tt.qty)
			assert.ErrorIs(t, err, tt.wantErr)

			c := e.Load()
			require.Len(t, c, 1)
			assert.Equal(t, tt.wantQty, c[0].Quantity, "stored quantity")
		})
	}
}

func TestRemove(t *testing.T) {
	e := newEngine(t)
	_, err := e.Add(latte())
	require.NoError(t, err)

	c, err := e.Remove(0)
	require.NoError(t, err)
	assert.Empty(t, c)
	assert.Empty(t, e.Load(), "removal persisted")
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	e := newEngine(t)
	_, err := e.Add(latte())
	require.NoError(t, err)

	c, err := e.Remove(5)
	require.NoError(t, err)
	assert.Len(t, c, 1)

	c, err = e.Remove(-1)
	require.NoError(t, err)
	assert.Len(t, c, 1)
}

func TestClearThenLoad(t *testing.T) {
	e := newEngine(t)
	_, err := e.Add(latte())
	require.NoError(t, err)

	require.NoError(t, e.Clear())
	assert.Empty(t, e.Load())

	// Clearing an already-empty cart is fine.
	require.NoError(t, e.Clear())
}

func TestCountChangeHookFiresOnEveryPersist(t *testing.T) {
	e := newEngine(t)
	var seen []int
	e.OnCountChange(func(n int) { seen = append(seen, n) })

	_, err := e.Add(latte())
	require.NoError(t, err)
	_, err = e.Add(latte())
	require.NoError(t, err)
	_, err = e.SetQuantity(0, 4)
	require.NoError(t, err)
	require.NoError(t, e.Clear())

	assert.Equal(t, []int{1, 2, 4, 0}, seen)
}

func TestCountChangeHookSkippedOnRejectedMutation(t *testing.T) {
	e := newEngine(t)
	_, err := e.Add(latte())
	require.NoError(t, err)

	var fired int
	e.OnCountChange(func(int) { fired++ })

	_, err = e.SetQuantity(0, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Zero(t, fired, "no persist, no refresh")
}

func TestScenarioLatte(t *testing.T) {
	e := newEngine(t)

	c, err := e.Add(latte())
	require.NoError(t, err)
	tot := c.Totals()
	assert.Equal(t, 1, tot.Items)
	assert.Equal(t, "R$ 12.50", tot.Subtotal.String())

	c, err = e.Add(latte())
	require.NoError(t, err)
	assert.Equal(t, "R$ 25.00", c.Totals().Subtotal.String())
}
