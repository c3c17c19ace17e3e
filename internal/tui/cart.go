package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/balcao-cafe/balcao/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func (m App) updateCart(msg tea.Msg) (tea.Model, tea.Cmd) {
	// clear confirmation mode
	if m.confirmClear {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "s", "y":
				if err := m.engine.Clear(); err != nil {
					m.editErr = "Não foi possível esvaziar o carrinho."
				}
			}
			m.confirmClear = false
			return m.refreshCart(), nil
		}
		return m, nil
	}

	// inline quantity edit mode
	if m.editing {
		var cmd tea.Cmd
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "enter":
				prior := 1
				if m.cursor < len(m.lines) {
					prior = m.lines[m.cursor].Quantity
				}
				v, err := strconv.Atoi(strings.TrimSpace(m.qtyInput.Value()))
				if err != nil {
					// Not an integer: reflect the prior value back.
					m.editErr = "Quantidade inválida"
					m.qtyInput.SetValue(strconv.Itoa(prior))
					return m, nil
				}
				if _, err := m.engine.SetQuantity(m.cursor, v); err != nil {
					m.editErr = "Quantidade inválida"
					m.qtyInput.SetValue(strconv.Itoa(prior))
					return m, nil
				}
				m.editing = false
				m.editErr = ""
				m.qtyInput.Blur()
				return m.refreshCart(), nil
			case "esc":
				m.editing = false
				m.editErr = ""
				m.qtyInput.Blur()
				return m, nil
			}
		}
		m.qtyInput, cmd = m.qtyInput.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q":
			return m, tea.Quit

		case "esc", "b":
			return m.gotoCatalog()

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.lines)-1 {
				m.cursor++
			}
			return m, nil

		case "+":
			if m.cursor < len(m.lines) {
				qty := m.lines[m.cursor].Quantity
				if _, err := m.engine.SetQuantity(m.cursor, qty+1); err == nil {
					return m.refreshCart(), nil
				}
			}
			return m, nil

		case "-":
			if m.cursor < len(m.lines) {
				qty := m.lines[m.cursor].Quantity
				// qty 1 stays 1; reduction below the floor is rejected
				// by the engine and the view reflects the prior value.
				if _, err := m.engine.SetQuantity(m.cursor, qty-1); err == nil && qty > 1 {
					return m.refreshCart(), nil
				}
			}
			return m, nil

		case "e":
			if m.cursor < len(m.lines) {
				m.editing = true
				m.editErr = ""
				m.qtyInput.SetValue(strconv.Itoa(m.lines[m.cursor].Quantity))
				m.qtyInput.CursorEnd()
				m.qtyInput.Focus()
			}
			return m, nil

		case "d":
			if _, err := m.engine.Remove(m.cursor); err == nil {
				return m.refreshCart(), nil
			}
			return m, nil

		case "x":
			if len(m.lines) > 0 {
				m.confirmClear = true
			}
			return m, nil

		case "f", "enter":
			// Checkout is reachable only from a non-empty cart.
			if len(m.lines) > 0 {
				return m.gotoCheckout(), nil
			}
			return m, nil
		}
	}
	return m, nil
}

func (m App) viewCart() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Meu Carrinho"))
	b.WriteString("\n\n")

	if len(m.lines) == 0 {
		b.WriteString(ui.MutedStyle.Render(msgEmptyCart))
		b.WriteString("\n\n")
		b.WriteString(ui.HelpStyle.Render("esc: voltar às compras · q: sair"))
		return b.String()
	}

	for i, l := range m.lines {
		prefix := "  "
		if i == m.cursor {
			prefix = ui.SelectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s x %d = %s\n",
			prefix,
			ui.TitleStyle.Render(l.Title),
			ui.PriceStyle.Render(l.Price.String()),
			l.Quantity,
			ui.PriceStyle.Render(l.Subtotal().String()),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s   %s",
		ui.AccentStyle.Render(fmt.Sprintf("Itens: %d", m.totals.Items)),
		ui.TitleStyle.Render("Total: "+m.totals.Subtotal.String()),
	))

	switch {
	case m.confirmClear:
		b.WriteString("\n\n")
		b.WriteString(ui.ErrorStyle.Render("Deseja esvaziar o carrinho? (s/n)"))
	case m.editing:
		title := "Nova quantidade"
		if m.editErr != "" {
			title += " — " + ui.ErrorStyle.Render(m.editErr)
		}
		b.WriteString("\n\n" + title + "\n" + m.qtyInput.View())
	default:
		if m.editErr != "" {
			b.WriteString("\n\n" + ui.ErrorStyle.Render(m.editErr))
		}
		b.WriteString("\n\n")
		b.WriteString(ui.HelpStyle.Render("+/-: quantidade · e: editar · d: remover · x: esvaziar · f: finalizar · esc: voltar"))
	}
	return b.String()
}
