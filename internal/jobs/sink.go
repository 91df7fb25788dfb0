package jobs

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// logLayout is the timestamp prefix for reminder, restock, and report
// lines.
const logLayout = "2006-01-02 15:04:05"

// heartbeatLayout is the timestamp prefix for heartbeat lines.
const heartbeatLayout = "02/01/2006-15:04:05"

// Sink is an append-only, line-oriented log file.
//
// Every write opens the file with O_APPEND and closes it again, so
// overlapping job runs interleave whole lines rather than corrupting
// each other, and the file is never truncated.
type Sink struct {
	path string
}

// NewSink creates a sink writing to path. The file is created on first
// append.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the sink's file path.
func (s *Sink) Path() string {
	return s.path
}

// Append writes one line (a trailing newline is added) to the sink.
func (s *Sink) Append(line string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open sink %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append to sink %s: %w", s.path, err)
	}
	return nil
}

// append writes a line and downgrades any sink failure to a diagnostic
// log entry. Sink trouble must never abort a job run.
func (s *Sink) append(line string) {
	if err := s.Append(line); err != nil {
		slog.Error("log sink write failed", "sink", s.path, "error", err)
	}
}

// stamp renders t in the standard log-line timestamp format.
func stamp(t time.Time) string {
	return t.Format(logLayout)
}
