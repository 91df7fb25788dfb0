package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/mutate"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/query"
)

// NewCustomerCommand creates the customer command group.
func NewCustomerCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Create and list customers",
	}
	cmd.AddCommand(newCustomerCreateCommand(opts))
	cmd.AddCommand(newCustomerBulkCommand(opts))
	cmd.AddCommand(newCustomerListCommand(opts))
	return cmd
}

func newCustomerCreateCommand(opts *RootOptions) *cobra.Command {
	var input mutate.CustomerInput

	cmd := &cobra.Command{
		Use:           "create",
		Short:         "Create one customer",
		Example:       `  crm customer create --name "Alice Johnson" --email alice@example.com --phone "+1234567890"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			res, err := d.mutator.CreateCustomer(cmd.Context(), input)
			if err != nil {
				return writeMutationError(formatter, err)
			}

			if opts.Format == "json" {
				return formatter.Success(res)
			}
			return formatter.Success(fmt.Sprintf("%s (id: %s)", res.Message, res.Customer.ID))
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "customer name (required)")
	cmd.Flags().StringVar(&input.Email, "email", "", "customer email (required)")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "customer phone")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newCustomerBulkCommand(opts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Create customers from a JSON file",
		Long: `Reads a JSON array of {"name", "email", "phone"} objects and creates
each entry independently: a failed entry is reported with its 1-based
position and never blocks the entries around it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			data, err := os.ReadFile(file)
			if err != nil {
				return WrapExitError(ExitCommandError, "reading input file", err)
			}
			var inputs []mutate.CustomerInput
			if err := json.Unmarshal(data, &inputs); err != nil {
				return WrapExitError(ExitCommandError, "parsing input file", err)
			}

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			res := d.mutator.BulkCreateCustomers(cmd.Context(), inputs)

			if opts.Format == "json" {
				if err := formatter.Success(res); err != nil {
					return WrapExitError(ExitCommandError, "writing output", err)
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %d customers\n", len(res.Created))
				for _, e := range res.Errors {
					fmt.Fprintln(cmd.OutOrStdout(), e)
				}
			}

			if !res.Success {
				return NewExitError(ExitFailure, fmt.Sprintf("%d entries failed", len(res.Errors)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to JSON array of customers (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newCustomerListCommand(opts *RootOptions) *cobra.Command {
	var (
		nameContains  string
		emailContains string
		phonePrefix   string
	)

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List customers, optionally filtered",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			page, err := d.reader.Customers(cmd.Context(), customerFilter(nameContains, emailContains, phonePrefix))
			if err != nil {
				return writeMutationError(formatter, err)
			}

			if opts.Format == "json" {
				return formatter.Success(page)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d customers\n", page.TotalCount)
			for _, c := range page.Customers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", c.ID, c.Name, c.Email)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nameContains, "name-contains", "", "case-insensitive name substring")
	cmd.Flags().StringVar(&emailContains, "email-contains", "", "case-insensitive email substring")
	cmd.Flags().StringVar(&phonePrefix, "phone-prefix", "", "phone number prefix")

	return cmd
}

func customerFilter(name, email, phonePrefix string) query.CustomerFilter {
	return query.CustomerFilter{
		NameContains:  name,
		EmailContains: email,
		PhonePrefix:   phonePrefix,
	}
}
