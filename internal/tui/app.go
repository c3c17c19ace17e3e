// Package tui is the storefront's interactive surface: a three-page
// state machine (catalog, cart, checkout). Pages transition only on
// user actions, which arrive as Bubble Tea messages consumed by
// Update; the view layer below is told what to display and holds no
// cart logic of its own.
package tui

import (
	"context"
	"fmt"

	"github.com/balcao-cafe/balcao/internal/cart"
	"github.com/balcao-cafe/balcao/internal/model"
	"github.com/balcao-cafe/balcao/internal/ui"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type page int

const (
	pageCatalog page = iota
	pageCart
	pageCheckout
)

// Fetcher is the read-only catalog source.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Product, error)
}

// Messages produced by the catalog fetch command.
type (
	productsMsg    []model.Product
	fetchFailedMsg struct{ err error }
)

// Fixed user-facing strings, kept identical across pages.
const (
	msgFetchFailed = "Erro ao carregar os produtos. Verifique se o catálogo (catalogd) está rodando."
	msgEmptyMenu   = "Nenhum café encontrado no catálogo."
	msgEmptyCart   = "Seu carrinho está vazio."
)

// App is the Bubble Tea model for the whole storefront.
type App struct {
	engine *cart.Engine
	fetch  Fetcher

	page   page
	width  int
	height int

	// badge mirrors the persisted item count. It is written only by
	// the engine's save hook, so it can never go stale across
	// mutations; the pointer survives Bubble Tea's model copies.
	badge *int

	// catalog page
	loading  bool
	fetchErr bool
	spin     spinner.Model
	menu     list.Model
	flash    string

	// cart page
	lines        model.Cart
	totals       model.Totals
	cursor       int
	editing      bool
	qtyInput     textinput.Model
	editErr      string
	confirmClear bool

	// checkout page
	coLines  model.Cart
	coTotals model.Totals
	addr     textinput.Model
	payIdx   int
	focusPay bool
	fieldErr string
	done     *receipt
}

// New builds the app. The count badge is wired to the engine's save
// hook here, so every persisted mutation refreshes it before the next
// paint.
func New(engine *cart.Engine, fetch Fetcher) App {
	badge := new(int)
	engine.OnCountChange(func(items int) { *badge = items })
	*badge = engine.Count()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.AccentStyle

	menu := list.New(nil, menuDelegate{}, 0, 0)
	menu.Title = "Cardápio"
	menu.Styles.Title = ui.TitleStyle
	menu.Styles.HelpStyle = ui.HelpStyle
	menu.Styles.PaginationStyle = ui.HelpStyle
	menu.SetShowHelp(true)
	menu.SetShowStatusBar(true)
	menu.SetFilteringEnabled(true)
	menu.FilterInput.Prompt = "/ "
	menu.SetStatusBarItemName("café", "cafés")

	addr := textinput.New()
	addr.Prompt = "> "
	addr.Placeholder = "Rua, número, cidade, CEP"
	addr.CharLimit = 200

	qty := textinput.New()
	qty.Prompt = "> "
	qty.Placeholder = "Quantidade"
	qty.CharLimit = 4

	return App{
		engine:   engine,
		fetch:    fetch,
		badge:    badge,
		loading:  true,
		spin:     sp,
		menu:     menu,
		addr:     addr,
		qtyInput: qty,
		payIdx:   -1,
	}
}

func (m App) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCmd())
}

func (m App) fetchCmd() tea.Cmd {
	f := m.fetch
	return func() tea.Msg {
		products, err := f.Fetch(context.Background())
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return productsMsg(products)
	}
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case productsMsg:
		m.loading = false
		m.fetchErr = false
		items := make([]list.Item, 0, len(msg))
		for _, p := range msg {
			items = append(items, menuItem{p: p})
		}
		m.menu.SetItems(items)
		return m, nil

	case fetchFailedMsg:
		m.loading = false
		m.fetchErr = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.page {
	case pageCart:
		return m.updateCart(msg)
	case pageCheckout:
		return m.updateCheckout(msg)
	default:
		return m.updateCatalog(msg)
	}
}

func (m App) View() string {
	header := fmt.Sprintf("%s   %s",
		ui.TitleStyle.Render("Balcão Café"),
		ui.BadgeStyle.Render(fmt.Sprintf("Carrinho [%d]", *m.badge)),
	)

	var body string
	switch m.page {
	case pageCart:
		body = m.viewCart()
	case pageCheckout:
		body = m.viewCheckout()
	default:
		body = m.viewCatalog()
	}

	return ui.PanelString(header + "\n\n" + body)
}

// gotoCatalog re-enters the catalog page; entry always re-requests the
// product sequence.
func (m App) gotoCatalog() (App, tea.Cmd) {
	m.page = pageCatalog
	m.loading = true
	m.fetchErr = false
	m.flash = ""
	return m, tea.Batch(m.spin.Tick, m.fetchCmd())
}

// gotoCart re-enters the cart page from freshly loaded state.
func (m App) gotoCart() App {
	m.page = pageCart
	m.editing = false
	m.editErr = ""
	m.confirmClear = false
	return m.refreshCart()
}

// refreshCart re-derives the whole cart view from persisted state;
// full re-derivation after every mutation is the consistency
// mechanism.
func (m App) refreshCart() App {
	m.lines = m.engine.Load()
	m.totals = m.lines.Totals()
	if m.cursor >= len(m.lines) {
		m.cursor = len(m.lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}
