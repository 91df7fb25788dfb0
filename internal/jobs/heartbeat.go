package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/query"
)

// Heartbeat emits a liveness line each run, annotated with store
// reachability. Intended cadence: every 5 minutes.
type Heartbeat struct {
	Reader *query.Reader
	Sink   *Sink
	Now    func() time.Time
}

// NewHeartbeat constructs the heartbeat job.
func NewHeartbeat(r *query.Reader, sink *Sink, now func() time.Time) *Heartbeat {
	return &Heartbeat{Reader: r, Sink: sink, Now: now}
}

// Run appends one heartbeat line and returns it.
//
// An unreachable store degrades the line, it does not abort the run; a
// failed sink write is logged and swallowed.
func (h *Heartbeat) Run(ctx context.Context) string {
	line := fmt.Sprintf("%s CRM is alive", h.Now().Format(heartbeatLayout))

	if err := h.Reader.Ping(ctx); err != nil {
		line += fmt.Sprintf(" - store check failed: %v", err)
	} else {
		line += " - store responsive"
	}

	h.Sink.append(line)
	return line
}
