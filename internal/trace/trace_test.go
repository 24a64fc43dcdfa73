package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"": LevelOff, "off": LevelOff, "Error": LevelError,
		"command": LevelCommand, " expr ": LevelExpr, "DEBUG": LevelDebug,
	} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("ParseLevel(loud) succeeded")
	}
}

func TestLevelScopes(t *testing.T) {
	cases := []struct {
		level        Level
		scope        Scope
		emit, record bool
	}{
		{LevelOff, ScopeCommand, false, false},
		{LevelError, ScopeCommand, false, true},
		{LevelError, ScopeOp, false, false},
		{LevelCommand, ScopeCommand, true, true},
		{LevelCommand, ScopeExpr, false, false},
		{LevelExpr, ScopeExpr, true, true},
		{LevelExpr, ScopeOp, false, false},
		{LevelDebug, ScopeOp, true, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.emit {
			t.Errorf("%v.ShouldEmit(%v) = %v", tc.level, tc.scope, got)
		}
		if got := tc.level.ShouldRecord(tc.scope); got != tc.record {
			t.Errorf("%v.ShouldRecord(%v) = %v", tc.level, tc.scope, got)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelExpr, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, cmd := Start(ctx, ScopeCommand, "eval")
	_, expr := Start(ctx, ScopeExpr, "expr")
	expr.WithExtra("result", "42").End("2 40 +")
	_, op := Start(ctx, ScopeOp, "op:+")
	op.End("")
	cmd.End("")

	out := buf.String()
	for _, want := range []string{"[command] → eval", "[expr]   ← expr (2 40 +) {result=42}", "[command] ← eval"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "op:+") {
		t.Errorf("op scope leaked at expr level:\n%s", out)
	}
}

func TestStartParentsSpans(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)
	ctx, outer := Start(ctx, ScopeCommand, "outer")
	if CurrentSpan(ctx) != outer.ID() {
		t.Fatalf("CurrentSpan = %d, want %d", CurrentSpan(ctx), outer.ID())
	}
	_, inner := Start(ctx, ScopeExpr, "inner")
	inner.End("")
	outer.End("")

	events := ring.Snapshot()
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[1].Name != "inner" || events[1].ParentID != outer.ID() {
		t.Errorf("inner begin = %+v", events[1])
	}
}

func TestStartWithoutTracer(t *testing.T) {
	ctx, span := Start(context.Background(), ScopeCommand, "x")
	if span.ID() != 0 || CurrentSpan(ctx) != 0 {
		t.Errorf("disabled tracer produced span %d", span.ID())
	}
	if d := span.End(""); d != 0 {
		t.Errorf("End on disabled span = %v", d)
	}
}

func TestSpanEndMirrorsBegin(t *testing.T) {
	ring := NewRingTracer(8, LevelDebug)
	span := Begin(ring, ScopeExpr, "eval", 7)
	span.WithExtra("tokens", "3").End("ok")

	evs := ring.Snapshot()
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
	begin, end := evs[0], evs[1]
	if begin.Kind != KindSpanBegin || end.Kind != KindSpanEnd {
		t.Errorf("kinds = %v, %v", begin.Kind, end.Kind)
	}
	if begin.SpanID == 0 || end.SpanID != begin.SpanID || span.ID() != begin.SpanID {
		t.Errorf("span ids = %d, %d, %d", begin.SpanID, end.SpanID, span.ID())
	}
	if end.ParentID != 7 || end.Name != "eval" || end.Scope != ScopeExpr {
		t.Errorf("end event = %+v", end)
	}
	if end.Seq <= begin.Seq || end.Detail != "ok" || end.Extra["tokens"] != "3" {
		t.Errorf("end event = %+v", end)
	}
	if begin.Detail != "" || begin.Extra != nil {
		t.Errorf("begin event carries end data: %+v", begin)
	}
}

func TestRingTracerWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopeOp, name, "", 0)
	}
	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Name)
	}
	if got := strings.Join(names, ""); got != "cde" {
		t.Errorf("snapshot = %q, want cde", got)
	}

	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestMultiTracerDumpsRing(t *testing.T) {
	var stream bytes.Buffer
	tr, err := New(Config{Level: LevelError, Mode: ModeBoth, Output: &stream, Format: FormatText})
	if err != nil {
		t.Fatal(err)
	}
	Point(tr, ScopeExpr, "failed", "division by zero", 0)
	if stream.Len() != 0 {
		t.Errorf("error level streamed %q", stream.String())
	}
	var dump bytes.Buffer
	if err := tr.(Dumper).Dump(&dump, FormatText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dump.String(), "failed (division by zero)") {
		t.Errorf("dump = %q", dump.String())
	}
}

func TestFormatNDJSON(t *testing.T) {
	ev := &Event{
		Time:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Seq:    7,
		Kind:   KindSpanEnd,
		Scope:  ScopeExpr,
		SpanID: 3,
		Name:   "eval",
		Extra:  map[string]string{"result": "120"},
	}
	var got map[string]any
	if err := json.Unmarshal(FormatEvent(ev, FormatNDJSON), &got); err != nil {
		t.Fatal(err)
	}
	if got["kind"] != "end" || got["scope"] != "expr" || got["name"] != "eval" {
		t.Errorf("decoded = %v", got)
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff, Mode: ModeStream})
	if err != nil || tr.Enabled() {
		t.Errorf("New(off) = %v, %v", tr, err)
	}
	if f := resolveFormat(FormatAuto, "trace.ndjson"); f != FormatNDJSON {
		t.Errorf("resolveFormat(.ndjson) = %v", f)
	}
	if _, err := ParseMode("tape"); err == nil {
		t.Errorf("ParseMode(tape) succeeded")
	}
}
