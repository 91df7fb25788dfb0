package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/query"
)

// ReportResult is the structured outcome of one report run.
//
// Revenue is the sum of each order's frozen total; it is read, never
// recomputed from product prices.
type ReportResult struct {
	Success   bool            `json:"success"`
	Customers int             `json:"customers"`
	Orders    int             `json:"orders"`
	Revenue   decimal.Decimal `json:"revenue"`
	Error     string          `json:"error,omitempty"`
}

// ReportJob aggregates customer/order counts and total revenue into one
// summary line per run. Intended cadence: weekly.
type ReportJob struct {
	Reader  *query.Reader
	Sink    *Sink
	Now     func() time.Time
	printer *message.Printer
}

// NewReportJob constructs the report job.
func NewReportJob(r *query.Reader, sink *Sink, now func() time.Time) *ReportJob {
	return &ReportJob{
		Reader:  r,
		Sink:    sink,
		Now:     now,
		printer: message.NewPrinter(language.English),
	}
}

// Run computes the summary and appends it to the sink.
//
// On a read failure it appends an error line instead of the summary and
// returns a failed result; the error never propagates.
func (j *ReportJob) Run(ctx context.Context) ReportResult {
	now := j.Now()

	customers, err := j.Reader.Customers(ctx, query.CustomerFilter{})
	if err != nil {
		return j.fail(now, err)
	}

	orders, err := j.Reader.Orders(ctx, query.OrderFilter{})
	if err != nil {
		return j.fail(now, err)
	}

	revenue := decimal.Zero
	for _, o := range orders.Orders {
		revenue = revenue.Add(o.TotalAmount)
	}

	// Counts are grouped with thousand separators for readability of
	// large stores; revenue keeps two decimal places.
	j.Sink.append(j.printer.Sprintf("%s - Report: %d customers, %d orders, %s revenue",
		stamp(now), customers.TotalCount, orders.TotalCount, revenue.StringFixed(2)))

	return ReportResult{
		Success:   true,
		Customers: customers.TotalCount,
		Orders:    orders.TotalCount,
		Revenue:   revenue,
	}
}

func (j *ReportJob) fail(now time.Time, err error) ReportResult {
	j.Sink.append(fmt.Sprintf("%s - Error generating report: %v", stamp(now), err))
	return ReportResult{Success: false, Revenue: decimal.Zero, Error: err.Error()}
}
