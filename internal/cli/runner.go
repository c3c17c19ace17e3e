package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/balcao-cafe/balcao/internal/cart"
	"github.com/balcao-cafe/balcao/internal/catalog"
	"github.com/balcao-cafe/balcao/internal/model"
	"github.com/balcao-cafe/balcao/internal/store/jsonstore"
	"github.com/balcao-cafe/balcao/internal/tui"
	"github.com/balcao-cafe/balcao/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Options tune behavior from root flags.
type Options struct {
	Endpoint string // catalog endpoint URL
	DataDir  string // where the cart is persisted
	Yes      bool   // skip confirmation prompts
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "shop":
		return doShop(opt)

	case "menu":
		return doMenu(opt)

	case "cart":
		return doCart(opt)

	case "add":
		if len(a) != 1 {
			ui.Fail("usage: balcao add <coffeeId>")
			return 2
		}
		return doAdd(opt, a[0])

	case "qty":
		if len(a) != 2 {
			ui.Fail("usage: balcao qty <index> <quantity>")
			return 2
		}
		idx, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("qty: not a number: " + a[0])
			return 2
		}
		n, err := strconv.Atoi(a[1])
		if err != nil {
			ui.Fail("qty: not a number: " + a[1])
			return 2
		}
		return doQty(opt, idx, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: balcao rm <index>")
			return 2
		}
		idx, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(opt, idx)

	case "clear":
		return doClear(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`balcao - a coffee storefront in your terminal

Usage:
  balcao <subcommand> [args]

Subcommands:
  shop               Browse the catalog interactively (TUI)
  menu               Print the catalog
  cart               Print the cart with totals
  add <coffeeId>     Add a coffee to the cart (id or title)
  qty <index> <n>    Set the quantity of the line at 1-based index
  rm <index>         Remove the line at 1-based index
  clear              Empty the cart (asks for confirmation)

Examples:
  balcao shop
  balcao add 3
  balcao qty 1 2
  balcao rm 1
`)
}

// newEngine wires the persisted cart plus the count indicator that
// mirrors it after every save.
func newEngine(opt Options) *cart.Engine {
	e := cart.NewEngine(jsonstore.New(opt.DataDir))
	e.OnCountChange(func(items int) {
		fmt.Println(ui.MutedStyle.Render(fmt.Sprintf("Itens no carrinho: %d", items)))
	})
	return e
}

// -------------- subcommand impls ----------------

func doShop(opt Options) int {
	engine := cart.NewEngine(jsonstore.New(opt.DataDir))
	client := catalog.NewClient(opt.Endpoint, nil)

	p := tea.NewProgram(tui.New(engine, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doMenu(opt Options) int {
	products, err := catalog.NewClient(opt.Endpoint, nil).Fetch(context.Background())
	if err != nil {
		ui.Fail("Erro ao carregar os produtos: " + err.Error())
		fmt.Fprintln(os.Stderr, ui.MutedStyle.Render("Dica: suba o catálogo local com `catalogd`"))
		return 1
	}
	if len(products) == 0 {
		ui.Panel([]string{ui.MutedStyle.Render("Nenhum café encontrado no catálogo.")})
		return 0
	}

	lines := []string{ui.TitleStyle.Render("Cardápio"), ""}
	for i, p := range products {
		lines = append(lines, fmt.Sprintf("%2d. %s  %s",
			i+1,
			ui.TitleStyle.Render(p.Title),
			ui.PriceStyle.Render(model.ToCents(p.Price).String()),
		))
		if p.Description != "" {
			lines = append(lines, "    "+ui.MutedStyle.Render(p.Description))
		}
	}
	lines = append(lines, "", ui.MutedStyle.Render("Dica: adicione com `balcao add <id>`"))
	ui.Panel(lines)
	return 0
}

func doCart(opt Options) int {
	c := cart.NewEngine(jsonstore.New(opt.DataDir)).Load()
	if len(c) == 0 {
		ui.Panel([]string{ui.MutedStyle.Render("Seu carrinho está vazio.")})
		return 0
	}

	lines := []string{ui.TitleStyle.Render("Meu Carrinho"), ""}
	for i, l := range c {
		lines = append(lines, fmt.Sprintf("%2d. %s  %s x %d = %s",
			i+1,
			l.Title,
			ui.PriceStyle.Render(l.Price.String()),
			l.Quantity,
			ui.PriceStyle.Render(l.Subtotal().String()),
		))
	}
	tot := c.Totals()
	lines = append(lines, "", fmt.Sprintf("%s   %s",
		ui.AccentStyle.Render(fmt.Sprintf("Itens: %d", tot.Items)),
		ui.TitleStyle.Render("Total: "+tot.Subtotal.String()),
	))
	ui.Panel(lines)
	return 0
}

func doAdd(opt Options, id string) int {
	products, err := catalog.NewClient(opt.Endpoint, nil).Fetch(context.Background())
	if err != nil {
		ui.Fail("Erro ao carregar os produtos: " + err.Error())
		return 1
	}

	for _, p := range products {
		if string(p.Key()) == id || p.Title == id {
			if _, err := newEngine(opt).Add(p); err != nil {
				ui.Fail("add: " + err.Error())
				return 1
			}
			ui.OK(p.Title + " adicionado ao carrinho")
			return 0
		}
	}

	ui.Fail("café não encontrado: " + id)
	fmt.Fprintln(os.Stderr, ui.MutedStyle.Render("Dica: rode `balcao menu` para ver os ids"))
	return 2
}

func doQty(opt Options, userIndex, qty int) int {
	engine := newEngine(opt)
	if _, err := engine.SetQuantity(userIndex-1, qty); err != nil {
		switch {
		case err == cart.ErrInvalidQuantity:
			ui.Fail(fmt.Sprintf("quantidade inválida: %d (mínimo 1)", qty))
			return 2
		case err == cart.ErrIndexOutOfRange:
			failIndex(userIndex, len(engine.Load()))
			return 2
		default:
			ui.Fail("qty: " + err.Error())
			return 1
		}
	}
	ui.OK("quantidade atualizada")
	return 0
}

func doRemove(opt Options, userIndex int) int {
	engine := newEngine(opt)
	c := engine.Load()
	if userIndex < 1 || userIndex > len(c) {
		failIndex(userIndex, len(c))
		return 2
	}
	if _, err := engine.Remove(userIndex - 1); err != nil {
		ui.Fail("rm: " + err.Error())
		return 1
	}
	ui.OK("removido")
	return 0
}

func doClear(opt Options) int {
	if !opt.Yes {
		fmt.Print("Deseja esvaziar o carrinho? [s/N] ")
		var answer string
		fmt.Scanln(&answer)
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "s", "sim", "y", "yes":
		default:
			ui.OK("cancelado")
			return 0
		}
	}
	if err := newEngine(opt).Clear(); err != nil {
		ui.Fail("clear: " + err.Error())
		return 1
	}
	ui.OK("carrinho esvaziado")
	return 0
}

func failIndex(got, have int) {
	ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", have, got))
	fmt.Fprintln(os.Stderr, ui.MutedStyle.Render("Dica: rode `balcao cart` para ver os índices"))
}
