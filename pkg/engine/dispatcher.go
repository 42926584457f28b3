package engine

import (
	"context"
	"fmt"
	"time"
)

// DefaultDelay is the artificial "processing" pause applied before a
// Report becomes visible. It models work the demo does not actually do.
const DefaultDelay = 1500 * time.Millisecond

// Dispatcher maps an action plus the current code/prompt pair to a
// Report. It holds no state between calls; concurrent dispatches are
// safe and independent.
type Dispatcher struct {
	delay time.Duration
	sleep func(ctx context.Context, d time.Duration)
}

// NewDispatcher creates a dispatcher with the given processing delay.
// A zero delay makes Dispatch return immediately, which is what tests
// want.
func NewDispatcher(delay time.Duration) *Dispatcher {
	return &Dispatcher{
		delay: delay,
		sleep: wait,
	}
}

// Delay reports the configured processing delay.
func (d *Dispatcher) Delay() time.Duration {
	return d.delay
}

// Dispatch runs the generator for the action and wraps the result into
// a Report. Every input, including empty strings, yields a well-formed
// Report; empty required input produces the action's warning text.
// The configured delay elapses (or ctx is cancelled) before the Report
// is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, action Action, code, prompt string) Report {
	var text string
	switch action {
	case ActionAnalyze:
		text = AnalyzeReport(code)
	case ActionWrite:
		text = WriteReport(prompt)
	case ActionImprove:
		text = ImproveReport(code)
	case ActionRefactor:
		text = RefactorReport(code)
	case ActionDebug:
		text = DebugReport(code)
	case ActionExpand:
		text = ExpandReport(code, prompt)
	default:
		// ParseAction guards every boundary, so this only triggers for
		// a hand-constructed Action value.
		text = fmt.Sprintf("Unsupported action %q.", string(action))
	}

	if d.delay > 0 {
		d.sleep(ctx, d.delay)
	}

	return Report{
		Action:    action,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// wait blocks for the duration or until the context is done, whichever
// comes first.
func wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
