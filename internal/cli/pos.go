package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/YasserHesham-D/ProductManager/internal/pos"
)

func posCommand(s *Session) *cli.Command {
	return &cli.Command{
		Name:  "pos",
		Usage: "run an interactive point-of-sale checkout session",
		Action: func(c *cli.Context) error {
			return s.runPOS()
		},
	}
}

const posHelp = `Commands:
  products [query]   list products, optionally filtered
  select <id>        show unit/price options for a product
  add <n>            add option n of the last select to the cart
  cart               show the cart
  + <n> / - <n>      increase / decrease quantity of cart line n
  rm <n>             remove cart line n
  clear              empty the cart
  checkout           complete the sale
  quit               close without completing a sale
`

// runPOS drives one checkout session. The loop mutates the cart one
// command at a time; a completed sale closes the session.
func (s *Session) runPOS() error {
	cart := &pos.Cart{}
	var options []pos.UnitOption

	s.printf("Point of sale. Type 'help' for commands.\n")
	for {
		s.printf("pos> ")
		line, ok := s.readLine()
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			s.printf("%s", posHelp)
		case "products":
			s.printProducts(s.Catalog.Filter(strings.Join(args, " ")))
		case "select":
			id, err := argInt(args)
			if err != nil {
				s.printf("%v\n", err)
				continue
			}
			p, found := s.Catalog.Get(id)
			if !found {
				s.printf("Product %d not found.\n", id)
				continue
			}
			options = pos.UnitOptions(p, s.Units.All())
			if len(options) == 0 {
				s.printf("Product %q has no unit prices; add one with 'product edit'.\n", p.Name)
				continue
			}
			w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tUNIT\tPRICE")
			for i, opt := range options {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, opt.UnitName, opt.UnitPrice)
			}
			w.Flush()
		case "add":
			n, err := argInt(args)
			if err != nil {
				s.printf("%v\n", err)
				continue
			}
			if n < 1 || n > len(options) {
				s.printf("No option %d; run 'select' first.\n", n)
				continue
			}
			cart.Add(options[n-1])
			s.printCart(cart)
		case "cart":
			s.printCart(cart)
		case "+", "-", "rm":
			n, err := argInt(args)
			if err != nil {
				s.printf("%v\n", err)
				continue
			}
			var opErr error
			switch cmd {
			case "+":
				opErr = cart.Increment(n - 1)
			case "-":
				opErr = cart.Decrement(n - 1)
			case "rm":
				opErr = cart.Remove(n - 1)
			}
			if opErr != nil {
				s.printf("%v\n", opErr)
				continue
			}
			s.printCart(cart)
		case "clear":
			cart.Clear()
			s.printf("Cart cleared.\n")
		case "checkout":
			sale, err := cart.Checkout(s.Ledger, time.Now())
			if errors.Is(err, pos.ErrEmptyCart) {
				s.printf("Cart is empty.\n")
				continue
			}
			if err != nil {
				// The sale stands in-session; only durability failed.
				s.printf("Sale #%d completed but not saved: %v\n", sale.ID, err)
				return nil
			}
			s.printf("Sale #%d completed. Total: %s\n", sale.ID, sale.TotalPrice)
			return nil
		case "quit", "cancel":
			return nil
		default:
			s.printf("Unknown command %q. Type 'help' for commands.\n", cmd)
		}
	}
}

func (s *Session) printCart(cart *pos.Cart) {
	if cart.Empty() {
		s.printf("Cart is empty.\n")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPRODUCT\tUNIT\tPRICE\tQTY\tTOTAL")
	for i, l := range cart.Lines() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, l.ProductName, l.UnitName, l.UnitPrice, l.Quantity, l.Total())
	}
	w.Flush()
	s.printf("Total: %s\n", cart.Total())
}

func argInt(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one numeric argument")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Errorf("invalid number %q", args[0])
	}
	return n, nil
}
