package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/mutate"
)

// NewSeedCommand creates the seed command, which resets the database and
// loads the demo fixture set.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the database and load demo data",
		Long: `Deletes all existing rows, then creates three customers, four
products, and one order per customer containing the first two products.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			ctx := cmd.Context()
			if err := d.store.Reset(ctx); err != nil {
				return WrapExitError(ExitCommandError, "resetting database", err)
			}

			customers := []mutate.CustomerInput{
				{Name: "Alice Johnson", Email: "alice@example.com", Phone: "+1234567890"},
				{Name: "Bob Smith", Email: "bob@example.com", Phone: "123-456-7890"},
				{Name: "Carol White", Email: "carol@example.com"},
			}
			products := []mutate.ProductInput{
				{Name: "Laptop", Price: "999.99", Stock: 10},
				{Name: "Mouse", Price: "29.99", Stock: 50},
				{Name: "Keyboard", Price: "79.99", Stock: 5},
				{Name: "Monitor", Price: "299.99", Stock: 15},
			}

			var customerIDs []string
			for _, c := range customers {
				res, err := d.mutator.CreateCustomer(ctx, c)
				if err != nil {
					return writeMutationError(formatter, err)
				}
				customerIDs = append(customerIDs, res.Customer.ID)
			}

			var productIDs []string
			for _, p := range products {
				res, err := d.mutator.CreateProduct(ctx, p)
				if err != nil {
					return writeMutationError(formatter, err)
				}
				productIDs = append(productIDs, res.Product.ID)
			}

			// One order per customer, each holding the first two products.
			orders := 0
			for _, cid := range customerIDs {
				_, err := d.mutator.CreateOrder(ctx, mutate.OrderInput{
					CustomerID: cid,
					ProductIDs: productIDs[:2],
				})
				if err != nil {
					return writeMutationError(formatter, err)
				}
				orders++
			}

			if opts.Format == "json" {
				return formatter.Success(map[string]int{
					"customers": len(customerIDs),
					"products":  len(productIDs),
					"orders":    orders,
				})
			}
			return formatter.Success(fmt.Sprintf(
				"Seeded %d customers, %d products, %d orders",
				len(customerIDs), len(productIDs), orders))
		},
	}
}
