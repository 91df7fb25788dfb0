package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/query"
)

// ReminderWindow is the trailing window of order dates the sweep covers.
const ReminderWindow = 7 * 24 * time.Hour

// ReminderSweep lists orders placed within the trailing window and emits
// one reminder line per order. Intended cadence: daily.
type ReminderSweep struct {
	Reader *query.Reader
	Sink   *Sink
	Now    func() time.Time
}

// NewReminderSweep constructs the reminder job.
func NewReminderSweep(r *query.Reader, sink *Sink, now func() time.Time) *ReminderSweep {
	return &ReminderSweep{Reader: r, Sink: sink, Now: now}
}

// Run sweeps recent orders and returns how many reminders were emitted.
//
// A read failure produces a single error line in the sink instead of the
// reminders; the run never propagates the error.
func (j *ReminderSweep) Run(ctx context.Context) int {
	now := j.Now()
	since := now.Add(-ReminderWindow)

	page, err := j.Reader.Orders(ctx, query.OrderFilter{OrderedAfter: &since})
	if err != nil {
		j.Sink.append(fmt.Sprintf("%s - Error: %v", stamp(now), err))
		return 0
	}

	for _, o := range page.Orders {
		j.Sink.append(fmt.Sprintf("%s - Order ID: %s, Customer Email: %s", stamp(now), o.ID, o.CustomerEmail))
	}
	return len(page.Orders)
}
