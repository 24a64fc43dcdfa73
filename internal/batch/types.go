package batch

import (
	"time"

	"bigcalc/internal/bignum"
	"bigcalc/internal/cache"
)

// Status captures the progress state of one expression.
type Status string

const (
	// StatusQueued indicates the expression is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusEvaluating indicates a worker is evaluating the expression.
	StatusEvaluating Status = "evaluating"
	// StatusDone indicates the expression produced a value.
	StatusDone Status = "done"
	// StatusError indicates the expression failed.
	StatusError Status = "error"
)

// Event reports progress for one expression.
type Event struct {
	Index   int // position in Request.Items
	Expr    string
	Status  Status
	Err     error
	Cached  bool
	Elapsed time.Duration
}

// Sink consumes progress events. OnEvent may be called from several goroutines.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Item is one expression of a batch.
type Item struct {
	Line int // 1-based line in the source file, 0 if unknown
	Expr string
}

// Request describes a batch run.
type Request struct {
	Items       []Item
	Jobs        int          // <= 0 means GOMAXPROCS
	Cache       *cache.Store // nil disables caching
	Progress    Sink         // optional
	MaxArgument int          // 0 selects calc.DefaultMaxArgument, negative disables the bound
}

// Outcome is the evaluation result of one Item.
type Outcome struct {
	Item
	Value   bignum.BigInt
	Err     error
	Cached  bool
	Elapsed time.Duration
}

// Result holds outcomes in input order.
type Result struct {
	Outcomes []Outcome
	Failed   int
	Hits     int
}
