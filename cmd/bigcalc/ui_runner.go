package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"bigcalc/internal/batch"
	"bigcalc/internal/ui"
)

type batchOutcome struct {
	result batch.Result
	err    error
}

// runBatchWithUI runs req while a progress view consumes its events.
func runBatchWithUI(ctx context.Context, title string, out io.Writer, req *batch.Request) (batch.Result, error) {
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = batch.ChannelSink{Ch: events}
		res, err := batch.Run(ctx, &reqCopy)
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	exprs := make([]string, len(req.Items))
	for i, item := range req.Items {
		exprs[i] = item.Expr
	}
	program := tea.NewProgram(ui.NewProgressModel(title, exprs, events), tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// Keep draining so the workers are not blocked on a full channel.
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
