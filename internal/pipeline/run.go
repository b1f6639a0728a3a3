// Copyright Daniel Amado, 2026. All rights reserved.

package pipeline

import (
	"context"

	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

// Event is one progress report from a running job.
type Event struct {
	Fraction float64
	Message  string
}

// Result is the terminal outcome of an asynchronous conversion.
type Result struct {
	Paths *types.OutputPaths
	Err   error
}

// eventBuffer bounds the progress channel; a slow consumer stalls the
// worker rather than growing memory.
const eventBuffer = 16

// Run executes the job on its own goroutine so the caller's loop stays
// responsive. Progress events arrive on the first channel, which is
// closed before the single Result is delivered on the second. There is
// one producer; the caller must drain events until closed.
func (o *Orchestrator) Run(ctx context.Context, job *types.ConversionJob) (<-chan Event, <-chan Result) {
	events := make(chan Event, eventBuffer)
	done := make(chan Result, 1)

	go func() {
		paths, err := o.Convert(ctx, job, func(frac float64, msg string) {
			events <- Event{Fraction: frac, Message: msg}
		})
		close(events)
		done <- Result{Paths: paths, Err: err}
	}()

	return events, done
}
