package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/mutate"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/query"
)

// NewOrderCommand creates the order command group.
func NewOrderCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Create and list orders",
	}
	cmd.AddCommand(newOrderCreateCommand(opts))
	cmd.AddCommand(newOrderListCommand(opts))
	return cmd
}

func newOrderCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		customerID string
		productIDs []string
		orderDate  string
	)

	cmd := &cobra.Command{
		Use:           "create",
		Short:         "Create one order atomically",
		Example:       `  crm order create --customer cust-1 --product prod-1 --product prod-2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			input := mutate.OrderInput{
				CustomerID: customerID,
				ProductIDs: productIDs,
			}
			if orderDate != "" {
				t, err := time.Parse(time.RFC3339, orderDate)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --date (want RFC3339)", err)
				}
				input.OrderDate = &t
			}

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			res, err := d.mutator.CreateOrder(cmd.Context(), input)
			if err != nil {
				return writeMutationError(formatter, err)
			}

			if opts.Format == "json" {
				return formatter.Success(res)
			}
			return formatter.Success(fmt.Sprintf("%s (id: %s)", res.Message, res.Order.ID))
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer id (required)")
	cmd.Flags().StringArrayVar(&productIDs, "product", nil, "product id (repeatable, at least one required)")
	cmd.Flags().StringVar(&orderDate, "date", "", "order date, RFC3339 (defaults to now)")
	_ = cmd.MarkFlagRequired("customer")

	return cmd
}

func newOrderListCommand(opts *RootOptions) *cobra.Command {
	var (
		customerName string
		productName  string
		productID    string
		after        string
		before       string
	)

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List orders with customer details, optionally filtered",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			filter := query.OrderFilter{
				CustomerNameContains: customerName,
				ProductNameContains:  productName,
				ProductID:            productID,
			}
			if after != "" {
				t, err := time.Parse(time.RFC3339, after)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --after (want RFC3339)", err)
				}
				filter.OrderedAfter = &t
			}
			if before != "" {
				t, err := time.Parse(time.RFC3339, before)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --before (want RFC3339)", err)
				}
				filter.OrderedBefore = &t
			}

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			page, err := d.reader.Orders(cmd.Context(), filter)
			if err != nil {
				return writeMutationError(formatter, err)
			}

			if opts.Format == "json" {
				return formatter.Success(page)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d orders\n", page.TotalCount)
			for _, o := range page.Orders {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s <%s>  $%s  %s\n",
					o.ID, o.CustomerName, o.CustomerEmail, o.TotalAmount.StringFixed(2),
					o.OrderDate.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&customerName, "customer-name", "", "case-insensitive customer name substring")
	cmd.Flags().StringVar(&productName, "product-name", "", "case-insensitive product name substring")
	cmd.Flags().StringVar(&productID, "product-id", "", "orders containing this product id")
	cmd.Flags().StringVar(&after, "after", "", "orders placed after this RFC3339 time")
	cmd.Flags().StringVar(&before, "before", "", "orders placed before this RFC3339 time")

	return cmd
}
