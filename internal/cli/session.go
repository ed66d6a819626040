// Package cli implements the command surface of the application: catalog
// and unit management subcommands plus the interactive point-of-sale
// session.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/YasserHesham-D/ProductManager/internal/config"
	"github.com/YasserHesham-D/ProductManager/internal/models"
	"github.com/YasserHesham-D/ProductManager/internal/store"
)

// Session owns the three stores for the lifetime of one command
// invocation and carries the terminal streams so commands stay
// testable.
type Session struct {
	Catalog *store.Catalog
	Units   *store.Units
	Ledger  *store.Ledger

	in  *bufio.Scanner
	out io.Writer
}

// NewSession opens the stores under cfg's data directory.
func NewSession(cfg config.Config, in io.Reader, out io.Writer) *Session {
	return &Session{
		Catalog: store.OpenCatalog(cfg.ProductsFile()),
		Units:   store.OpenUnits(cfg.UnitsFile()),
		Ledger:  store.OpenLedger(cfg.SalesFile()),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine reads one trimmed input line; ok is false on EOF.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// confirm asks a blocking yes/no question; anything but y/yes is no.
func (s *Session) confirm(question string) bool {
	s.printf("%s [y/N]: ", question)
	line, ok := s.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	}
	return false
}

func (s *Session) printProducts(products []models.Product) {
	if len(products) == 0 {
		s.printf("No products.\n")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tUNITS")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.Description, len(p.ProductUnits))
	}
	w.Flush()
}

func (s *Session) printUnits(units []models.Unit) {
	if len(units) == 0 {
		s.printf("No units.\n")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, u := range units {
		fmt.Fprintf(w, "%d\t%s\n", u.ID, u.Name)
	}
	w.Flush()
}

func (s *Session) printSales(sales []models.Sale) {
	if len(sales) == 0 {
		s.printf("No sales.\n")
		return
	}
	for _, sale := range sales {
		s.printf("Sale #%d  %s  total %s  quantity %s\n",
			sale.ID, sale.EntryDate.Format("2006-01-02 15:04:05"), sale.TotalPrice, sale.TotalQuantity)
		for _, it := range sale.Items {
			s.printf("  %s (%s)  %s x %s = %s\n", it.ProductName, it.UnitName, it.UnitPrice, it.Quantity, it.Total())
		}
	}
}
