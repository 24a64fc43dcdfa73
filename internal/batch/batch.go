// Package batch evaluates many RPN expressions concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
	"bigcalc/internal/trace"
)

// ReadItems reads one expression per line, skipping blank lines and lines
// starting with '#'.
func ReadItems(r io.Reader) ([]Item, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), bignum.MaxTokenSize)
	var items []Item
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, Item{Line: line, Expr: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("batch: read line %d: %w", line+1, err)
	}
	return items, nil
}

// Run evaluates every item with at most req.Jobs workers. A failing
// expression is recorded in its Outcome and does not stop the others; Run
// itself only fails when ctx is canceled.
func Run(ctx context.Context, req *Request) (Result, error) {
	if req == nil {
		return Result{}, fmt.Errorf("batch: missing request")
	}
	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	maxArg := calc.ResolveMaxArgument(req.MaxArgument)

	ctx, span := trace.Start(ctx, trace.ScopeCommand, "batch")
	span.WithExtra("items", fmt.Sprint(len(req.Items))).WithExtra("jobs", fmt.Sprint(jobs))

	for i, item := range req.Items {
		emit(req.Progress, Event{Index: i, Expr: item.Expr, Status: StatusQueued})
	}

	// Each goroutine writes only its own index.
	outcomes := make([]Outcome, len(req.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(req.Items))))
	for i, item := range req.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = evaluate(gctx, req, maxArg, i, item)
			if outcomes[i].Err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			return nil
		})
	}
	err := g.Wait()

	res := Result{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Err != nil {
			res.Failed++
		}
		if o.Cached {
			res.Hits++
		}
	}
	span.WithExtra("failed", fmt.Sprint(res.Failed)).WithExtra("hits", fmt.Sprint(res.Hits))
	if err != nil {
		span.End(err.Error())
		return res, err
	}
	span.End("")
	return res, nil
}

func evaluate(ctx context.Context, req *Request, maxArg, index int, item Item) Outcome {
	start := time.Now()
	emit(req.Progress, Event{Index: index, Expr: item.Expr, Status: StatusEvaluating})

	out := Outcome{Item: item}
	tracer := trace.FromContext(ctx)
	if v, ok, err := req.Cache.Get(item.Expr, maxArg); err != nil {
		trace.Point(tracer, trace.ScopeExpr, "cache", "get: "+err.Error(), trace.CurrentSpan(ctx))
	} else if ok {
		out.Value, out.Cached = v, true
	}

	if !out.Cached {
		m := &calc.Machine{MaxArgument: maxArg}
		out.Value, out.Err = m.Eval(ctx, item.Expr)
		if out.Err == nil {
			if err := req.Cache.Put(item.Expr, maxArg, out.Value); err != nil {
				trace.Point(tracer, trace.ScopeExpr, "cache", "put: "+err.Error(), trace.CurrentSpan(ctx))
			}
		}
	}
	out.Elapsed = time.Since(start)

	evt := Event{Index: index, Expr: item.Expr, Status: StatusDone, Cached: out.Cached, Elapsed: out.Elapsed}
	if out.Err != nil {
		evt.Status, evt.Err = StatusError, out.Err
	}
	emit(req.Progress, evt)
	return out
}

func emit(sink Sink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
