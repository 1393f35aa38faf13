// Copyright (c) Microsoft. All rights reserved.

package agents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrPollExhausted is returned by [Client.PollRun] when the run is still not
// terminal after the configured attempt budget.
var ErrPollExhausted = errors.New("run polling: attempt budget exhausted")

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultMaxAttempts  = 120
)

// PollOptions bounds a [Client.PollRun] loop. The zero value of each field
// selects its default.
type PollOptions struct {
	// Interval is the fixed delay between status fetches. Default 500ms.
	Interval time.Duration

	// MaxAttempts caps the number of status fetches. Default 120.
	MaxAttempts int
}

func (o *PollOptions) withDefaults() PollOptions {
	out := PollOptions{Interval: defaultPollInterval, MaxAttempts: defaultMaxAttempts}
	if o == nil {
		return out
	}
	if o.Interval > 0 {
		out.Interval = o.Interval
	}
	if o.MaxAttempts > 0 {
		out.MaxAttempts = o.MaxAttempts
	}
	return out
}

// PollRun fetches the run's status at a fixed interval until it reaches a
// terminal state, the attempt budget runs out ([ErrPollExhausted]), or the
// context is cancelled. The wait between attempts is context-aware.
//
// The terminal run is returned regardless of its outcome; callers inspect
// Status (and LastError for failed runs).
func (c *Client) PollRun(ctx context.Context, threadID, runID string, opts *PollOptions) (*Run, error) {
	cfg := opts.withDefaults()

	timer := time.NewTimer(cfg.Interval)
	defer timer.Stop()
	timer.Stop()

	for attempt := 1; ; attempt++ {
		run, err := c.GetRun(ctx, threadID, runID)
		if err != nil {
			return nil, err
		}
		if run.Status.IsTerminal() {
			slog.DebugContext(ctx, "run reached terminal status",
				"run_id", runID,
				"status", run.Status,
				"attempts", attempt,
			)
			return run, nil
		}
		if attempt >= cfg.MaxAttempts {
			return nil, fmt.Errorf("%w: run %s still %s after %d attempts",
				ErrPollExhausted, runID, run.Status, attempt)
		}

		timer.Reset(cfg.Interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
