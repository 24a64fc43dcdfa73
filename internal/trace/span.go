package trace

import (
	"sync/atomic"
	"time"
)

var (
	seq     atomic.Uint64
	spanIDs atomic.Uint64
)

// nextSeq orders events across every tracer in the process.
func nextSeq() uint64 { return seq.Add(1) }

// Span is an open begin/end pair. A Span whose tracer filtered it out is
// inert: End and WithExtra do nothing.
type Span struct {
	tracer Tracer
	begin  Event
	extra  map[string]string
}

func records(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldRecord(scope)
}

// Begin emits a begin event for name and returns the open span.
// parent is the enclosing span ID, 0 at the root.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !records(t, scope) {
		return &Span{}
	}
	s := &Span{
		tracer: t,
		begin: Event{
			Time:     time.Now(),
			Seq:      nextSeq(),
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   spanIDs.Add(1),
			ParentID: parent,
			Name:     name,
		},
	}
	ev := s.begin
	t.Emit(&ev)
	return s
}

// End emits the matching end event and returns the span's duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	now := time.Now()
	ev := s.begin
	ev.Time, ev.Seq, ev.Kind = now, nextSeq(), KindSpanEnd
	ev.Detail, ev.Extra = detail, s.extra
	s.tracer.Emit(&ev)
	return now.Sub(s.begin.Time)
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.begin.SpanID
}

// Point emits a single instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !records(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      nextSeq(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}
