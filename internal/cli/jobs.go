package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/jobs"
)

// The job commands are the entry points an external scheduler (cron,
// systemd timers) invokes on its own cadence. Each run does its work
// once, appends to its log sink, and exits.

// NewHeartbeatCommand creates the heartbeat job command.
func NewHeartbeatCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "heartbeat",
		Short:         "Append one liveness line to the heartbeat log",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			job := jobs.NewHeartbeat(d.reader, jobs.NewSink(d.cfg.HeartbeatLog()), time.Now)
			line := job.Run(cmd.Context())

			if opts.Format == "json" {
				return formatter.Success(map[string]string{"line": line})
			}
			return formatter.Success(line)
		},
	}
}

// NewRemindCommand creates the order-reminder job command.
func NewRemindCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remind",
		Short:         "Log reminders for orders placed in the last 7 days",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			job := jobs.NewReminderSweep(d.reader, jobs.NewSink(d.cfg.RemindersLog()), time.Now)
			count := job.Run(cmd.Context())

			if opts.Format == "json" {
				return formatter.Success(map[string]interface{}{
					"reminders": count,
					"message":   "Order reminders processed!",
				})
			}
			formatter.VerboseLog("emitted %d reminders", count)
			return formatter.Success("Order reminders processed!")
		},
	}
}

// NewRestockCommand creates the low-stock replenishment job command.
func NewRestockCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "restock",
		Short:         "Increment stock of products below the low-stock threshold",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			job := jobs.NewRestockSweep(d.mutator, jobs.NewSink(d.cfg.RestockLog()), time.Now)
			if d.cache != nil {
				job.Cache = d.cache
			}
			res := job.Run(cmd.Context())

			if opts.Format == "json" {
				if err := formatter.Success(res); err != nil {
					return WrapExitError(ExitCommandError, "writing output", err)
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			}

			if !res.Success {
				return NewExitError(ExitFailure, res.Message)
			}
			return nil
		},
	}
}

// NewReportCommand creates the summary-report job command.
func NewReportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "report",
		Short:         "Append a customers/orders/revenue summary to the report log",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, opts)

			d, err := openDeps(opts)
			if err != nil {
				return err
			}
			defer d.close()

			job := jobs.NewReportJob(d.reader, jobs.NewSink(d.cfg.ReportLog()), time.Now)
			res := job.Run(cmd.Context())

			if opts.Format == "json" {
				if err := formatter.Success(res); err != nil {
					return WrapExitError(ExitCommandError, "writing output", err)
				}
			} else if res.Success {
				fmt.Fprintf(cmd.OutOrStdout(), "Report: %d customers, %d orders, %s revenue\n",
					res.Customers, res.Orders, res.Revenue.StringFixed(2))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Report failed: %s\n", res.Error)
			}

			if !res.Success {
				return NewExitError(ExitFailure, "report generation failed")
			}
			return nil
		},
	}
}
