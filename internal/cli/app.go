package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/YasserHesham-D/ProductManager/internal/models"
	"github.com/YasserHesham-D/ProductManager/internal/validation"
)

// NewApp builds the command tree over an open session.
func NewApp(s *Session) *cli.App {
	return &cli.App{
		Name:  "posmanager",
		Usage: "retail product catalog and point-of-sale checkout",
		Commands: []*cli.Command{
			productCommand(s),
			unitCommand(s),
			posCommand(s),
			salesCommand(s),
		},
	}
}

func productCommand(s *Session) *cli.Command {
	return &cli.Command{
		Name:  "product",
		Usage: "manage the product catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list products, optionally filtered",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "filter", Aliases: []string{"f"}, Usage: "case-insensitive name/description filter"},
				},
				Action: func(c *cli.Context) error {
					s.printProducts(s.Catalog.Filter(c.String("filter")))
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "add a product",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringSliceFlag{Name: "price", Usage: "unit/price variant as unitID=price, repeatable"},
				},
				Action: func(c *cli.Context) error {
					v := validation.Violations{}
					validation.Required("name", c.String("name"), v)
					prices := parsePriceSpecs(c.StringSlice("price"), v)
					if !v.Empty() {
						return errors.New(v.String())
					}
					p := models.Product{
						Name:         strings.TrimSpace(c.String("name")),
						Description:  strings.TrimSpace(c.String("description")),
						ProductUnits: []models.ProductUnit{},
					}
					for unitID, price := range prices {
						p.SetPrice(unitID, price)
					}
					added, err := s.Catalog.Add(p)
					if err != nil {
						return err
					}
					s.printf("Product #%d added.\n", added.ID)
					return nil
				},
			},
			{
				Name:      "edit",
				Usage:     "edit a product's name, description, or unit prices",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "description"},
					&cli.StringSliceFlag{Name: "price", Usage: "set unit/price variant as unitID=price, repeatable"},
					&cli.IntSliceFlag{Name: "drop-price", Usage: "remove the variant for a unit id, repeatable"},
				},
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					p, ok := s.Catalog.Get(id)
					if !ok {
						return errors.Errorf("product %d not found", id)
					}
					v := validation.Violations{}
					if c.IsSet("name") {
						validation.Required("name", c.String("name"), v)
						p.Name = strings.TrimSpace(c.String("name"))
					}
					if c.IsSet("description") {
						p.Description = strings.TrimSpace(c.String("description"))
					}
					prices := parsePriceSpecs(c.StringSlice("price"), v)
					if !v.Empty() {
						return errors.New(v.String())
					}
					for unitID, price := range prices {
						p.SetPrice(unitID, price)
					}
					for _, unitID := range c.IntSlice("drop-price") {
						p.RemovePrice(unitID)
					}
					if err := s.Catalog.Update(id, p); err != nil {
						return err
					}
					s.printf("Product #%d updated.\n", id)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a product",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
				},
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					p, ok := s.Catalog.Get(id)
					if !ok {
						return errors.Errorf("product %d not found", id)
					}
					if !c.Bool("yes") && !s.confirm(fmt.Sprintf("Delete product %q?", p.Name)) {
						s.printf("Cancelled.\n")
						return nil
					}
					if err := s.Catalog.Remove(id); err != nil {
						return err
					}
					s.printf("Product #%d deleted.\n", id)
					return nil
				},
			},
		},
	}
}

func unitCommand(s *Session) *cli.Command {
	return &cli.Command{
		Name:  "unit",
		Usage: "manage sellable units",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list units",
				Action: func(c *cli.Context) error {
					s.printUnits(s.Units.All())
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "add a unit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
				},
				Action: func(c *cli.Context) error {
					v := validation.Violations{}
					validation.Required("name", c.String("name"), v)
					if !v.Empty() {
						return errors.New(v.String())
					}
					ed := s.Units.Edit()
					unit := ed.Add(strings.TrimSpace(c.String("name")))
					if _, err := ed.Commit(); err != nil {
						return err
					}
					s.printf("Unit #%d added.\n", unit.ID)
					return nil
				},
			},
			{
				Name:      "rename",
				Usage:     "rename a unit",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
				},
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					v := validation.Violations{}
					validation.Required("name", c.String("name"), v)
					if !v.Empty() {
						return errors.New(v.String())
					}
					ed := s.Units.Edit()
					if err := ed.Rename(id, strings.TrimSpace(c.String("name"))); err != nil {
						return err
					}
					if _, err := ed.Commit(); err != nil {
						return err
					}
					s.printf("Unit #%d renamed.\n", id)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a unit (product prices keep a fallback label)",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
				},
				Action: func(c *cli.Context) error {
					id, err := argID(c)
					if err != nil {
						return err
					}
					u, ok := s.Units.Get(id)
					if !ok {
						return errors.Errorf("unit %d not found", id)
					}
					if !c.Bool("yes") && !s.confirm(fmt.Sprintf("Delete unit %q? This cannot be undone.", u.Name)) {
						s.printf("Cancelled.\n")
						return nil
					}
					ed := s.Units.Edit()
					if err := ed.Remove(id); err != nil {
						return err
					}
					if _, err := ed.Commit(); err != nil {
						return err
					}
					s.printf("Unit #%d deleted.\n", id)
					return nil
				},
			},
		},
	}
}

func salesCommand(s *Session) *cli.Command {
	return &cli.Command{
		Name:  "sales",
		Usage: "inspect completed sales",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list the sales ledger",
				Action: func(c *cli.Context) error {
					s.printSales(s.Ledger.Sales())
					return nil
				},
			},
		},
	}
}

func argID(c *cli.Context) (int, error) {
	raw := c.Args().First()
	if raw == "" {
		return 0, errors.New("missing id argument")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// parsePriceSpecs turns "unitID=price" flag values into a unit->price
// map, recording violations for malformed or negative entries.
func parsePriceSpecs(specs []string, v validation.Violations) map[int]decimal.Decimal {
	prices := make(map[int]decimal.Decimal, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 {
			v["price"] = fmt.Sprintf("%q is not unitID=price", spec)
			continue
		}
		unitID, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || unitID <= 0 {
			v["price"] = fmt.Sprintf("%q has an invalid unit id", spec)
			continue
		}
		price := validation.ParseDecimal("price", parts[1], v)
		validation.NonNegativeDecimal("price", price, v)
		prices[unitID] = price
	}
	return prices
}
