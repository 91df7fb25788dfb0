package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/mutate"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/query"
)

// NewProductCommand creates the product command group.
func NewProductCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Create and list products",
	}
	cmd.AddCommand(newProductCreateCommand(opts))
	cmd.AddCommand(newProductListCommand(opts))
	return cmd
}

func newProductCreateCommand(opts *RootOptions) *cobra.Command {
	var input mutate.ProductInput

	cmd := &cobra.Command{
		Use:           "create",
		Short:         "Create one product",
		Example:       `  crm product create --name Laptop --price 999.99 --stock 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			res, err := d.mutator.CreateProduct(cmd.Context(), input)
			if err != nil {
				return writeMutationError(formatter, err)
			}

			if opts.Format == "json" {
				return formatter.Success(res)
			}
			return formatter.Success(fmt.Sprintf("%s (id: %s)", res.Message, res.Product.ID))
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&input.Price, "price", "", "unit price as a decimal string (required)")
	cmd.Flags().IntVar(&input.Stock, "stock", 0, "initial stock level")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newProductListCommand(opts *RootOptions) *cobra.Command {
	var (
		nameContains string
		priceMin     string
		priceMax     string
		stockMin     int
		stockMax     int
		lowStock     bool
	)

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List products, optionally filtered",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			filter := query.ProductFilter{
				NameContains: nameContains,
				LowStock:     lowStock,
			}
			if priceMin != "" {
				v, err := decimal.NewFromString(priceMin)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --price-min", err)
				}
				filter.PriceMin = &v
			}
			if priceMax != "" {
				v, err := decimal.NewFromString(priceMax)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --price-max", err)
				}
				filter.PriceMax = &v
			}
			if cmd.Flags().Changed("stock-min") {
				filter.StockMin = &stockMin
			}
			if cmd.Flags().Changed("stock-max") {
				filter.StockMax = &stockMax
			}

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			page, err := d.reader.Products(cmd.Context(), filter)
			if err != nil {
				return writeMutationError(formatter, err)
			}

			if opts.Format == "json" {
				return formatter.Success(page)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d products\n", page.TotalCount)
			for _, p := range page.Products {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  $%s  stock=%d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nameContains, "name-contains", "", "case-insensitive name substring")
	cmd.Flags().StringVar(&priceMin, "price-min", "", "minimum price (inclusive)")
	cmd.Flags().StringVar(&priceMax, "price-max", "", "maximum price (inclusive)")
	cmd.Flags().IntVar(&stockMin, "stock-min", 0, "minimum stock (inclusive)")
	cmd.Flags().IntVar(&stockMax, "stock-max", 0, "maximum stock (inclusive)")
	cmd.Flags().BoolVar(&lowStock, "low-stock", false, "only products below the replenishment threshold")

	return cmd
}
