package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/balcao-cafe/balcao/internal/model"
	"github.com/balcao-cafe/balcao/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// receipt is the confirmation summary shown after a valid submit. The
// order id is display-only: random, unpersisted, no uniqueness
// guarantee.
type receipt struct {
	orderID string
	total   model.Cents
	address string
	payment model.PaymentMethod
}

func newOrderID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// gotoCheckout enters the checkout page with a fresh snapshot of the
// cart and blank inputs.
func (m App) gotoCheckout() App {
	m.page = pageCheckout
	m.coLines = m.engine.Load()
	m.coTotals = m.coLines.Totals()
	m.addr.SetValue("")
	m.addr.Focus()
	m.payIdx = -1
	m.focusPay = false
	m.fieldErr = ""
	m.done = nil
	return m
}

func (m App) updateCheckout(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Confirmation shown: any key returns to the catalog.
	if m.done != nil {
		return m.gotoCatalog()
	}

	// Empty cart renders the empty-state message, not the form.
	if len(m.coLines) == 0 {
		return m.gotoCatalog()
	}

	switch key.String() {
	case "esc":
		// Cancel discards the in-progress inputs; nothing persists.
		return m.gotoCart(), nil

	case "tab":
		m.focusPay = !m.focusPay
		if m.focusPay {
			m.addr.Blur()
		} else {
			m.addr.Focus()
		}
		return m, nil

	case "enter":
		return m.submit(), nil
	}

	if m.focusPay {
		switch key.String() {
		case "left", "h", "up", "k":
			if m.payIdx > 0 {
				m.payIdx--
			} else if m.payIdx < 0 {
				m.payIdx = 0
			}
		case "right", "l", "down", "j":
			if m.payIdx < len(model.PaymentMethods)-1 {
				m.payIdx++
			}
		case "1", "2", "3", "4":
			n, _ := strconv.Atoi(key.String())
			m.payIdx = n - 1
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.addr, cmd = m.addr.Update(msg)
	return m, cmd
}

// submit validates the two required fields; a missing one yields a
// field-specific prompt and no state change. A valid submit builds the
// confirmation, clears the persisted cart and waits for a key to go
// back to the catalog.
func (m App) submit() App {
	address := strings.TrimSpace(m.addr.Value())
	if address == "" {
		m.fieldErr = "Informe o endereço de entrega."
		m.focusPay = false
		m.addr.Focus()
		return m
	}
	if m.payIdx < 0 || m.payIdx >= len(model.PaymentMethods) {
		m.fieldErr = "Escolha a forma de pagamento."
		m.focusPay = true
		m.addr.Blur()
		return m
	}

	if err := m.engine.Clear(); err != nil {
		m.fieldErr = "Não foi possível registrar o pedido. Tente novamente."
		return m
	}

	m.fieldErr = ""
	m.done = &receipt{
		orderID: newOrderID(),
		total:   m.coTotals.Subtotal,
		address: address,
		payment: model.PaymentMethods[m.payIdx],
	}
	return m
}

func (m App) viewCheckout() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Finalizar compra"))
	b.WriteString("\n\n")

	if m.done != nil {
		b.WriteString(ui.SuccessStyle.Render(fmt.Sprintf("✔ Pedido %s confirmado.", m.done.orderID)))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Total: %s\n", m.done.total))
		b.WriteString(fmt.Sprintf("Endereço: %s\n", m.done.address))
		b.WriteString(fmt.Sprintf("Pagamento: %s\n", m.done.payment.Label()))
		b.WriteString("\n" + ui.SuccessStyle.Render("Obrigado pela compra!"))
		b.WriteString("\n\n" + ui.HelpStyle.Render("pressione qualquer tecla para voltar ao cardápio"))
		return b.String()
	}

	if len(m.coLines) == 0 {
		b.WriteString(ui.MutedStyle.Render(msgEmptyCart))
		b.WriteString("\n\n" + ui.HelpStyle.Render("pressione qualquer tecla para voltar às compras"))
		return b.String()
	}

	for _, l := range m.coLines {
		b.WriteString(fmt.Sprintf("  %s — %d x %s = %s\n",
			l.Title, l.Quantity, l.Price, l.Subtotal()))
	}
	b.WriteString("\n" + ui.TitleStyle.Render("Total: "+m.coTotals.Subtotal.String()) + "\n\n")

	b.WriteString("Endereço de entrega\n")
	b.WriteString(m.addr.View() + "\n\n")

	b.WriteString("Forma de pagamento\n")
	var opts []string
	for i, p := range model.PaymentMethods {
		label := fmt.Sprintf("[%d] %s", i+1, p.Label())
		if i == m.payIdx {
			label = ui.SelectedStyle.Render(label)
		} else if m.focusPay {
			label = ui.AccentStyle.Render(label)
		}
		opts = append(opts, label)
	}
	b.WriteString("  " + strings.Join(opts, "  ") + "\n")

	if m.fieldErr != "" {
		b.WriteString("\n" + ui.ErrorStyle.Render(m.fieldErr) + "\n")
	}

	b.WriteString("\n" + ui.HelpStyle.Render("enter: confirmar · tab: alternar campo · 1-4: pagamento · esc: cancelar"))
	return b.String()
}
