package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/balcao-cafe/balcao/internal/model"
	"github.com/balcao-cafe/balcao/internal/ui"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// menuItem adapts a catalog product to bubbles/list.Item.
type menuItem struct {
	p model.Product
}

func (i menuItem) Title() string       { return i.p.Title }
func (i menuItem) Description() string { return i.p.Description }
func (i menuItem) FilterValue() string { return i.p.Title }

// menuDelegate renders one product card as two lines: title with
// price, then description and ingredients.
type menuDelegate struct{}

func (d menuDelegate) Height() int                               { return 2 }
func (d menuDelegate) Spacing() int                              { return 1 }
func (d menuDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(menuItem)
	if !ok {
		return
	}

	head := fmt.Sprintf("%s  %s",
		ui.TitleStyle.Render(it.p.Title),
		ui.PriceStyle.Render(model.ToCents(it.p.Price).String()),
	)

	detail := it.p.Description
	if len(it.p.Ingredients) > 0 {
		ing := strings.Join(it.p.Ingredients, ", ")
		if detail != "" {
			detail += " · " + ing
		} else {
			detail = ing
		}
	}

	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+head)
	fmt.Fprint(w, "  "+ui.MutedStyle.Render(detail))
}

func (m App) updateCatalog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.menu.FilterState() != list.Filtering {
		switch key.String() {
		case "q", "esc":
			return m, tea.Quit

		case "c":
			return m.gotoCart(), nil

		case "r":
			// Full page re-entry is the only retry path.
			return m.gotoCatalog()

		case "enter", "a":
			if m.loading || m.fetchErr {
				return m, nil
			}
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			if _, err := m.engine.Add(it.p); err != nil {
				m.flash = ui.ErrorStyle.Render("Não foi possível salvar o carrinho.")
				return m, nil
			}
			m.flash = ui.SuccessStyle.Render(fmt.Sprintf("✔ %s adicionado ao carrinho", it.p.Title))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m App) viewCatalog() string {
	if m.loading {
		return m.spin.View() + " Carregando o cardápio..."
	}
	if m.fetchErr {
		return ui.ErrorStyle.Render(msgFetchFailed) + "\n\n" +
			ui.HelpStyle.Render("r: tentar novamente · c: carrinho · q: sair")
	}
	if len(m.menu.Items()) == 0 {
		return ui.MutedStyle.Render(msgEmptyMenu) + "\n\n" +
			ui.HelpStyle.Render("r: recarregar · q: sair")
	}

	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	m.menu.SetSize(w-4, h-8)

	s := m.menu.View()
	if m.flash != "" {
		s += "\n" + m.flash
	}
	s += "\n" + ui.HelpStyle.Render("enter/a: adicionar · c: carrinho · r: recarregar · q: sair")
	return s
}
