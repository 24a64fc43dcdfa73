package ui

import (
	"strings"
	"testing"

	"bigcalc/internal/batch"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"1 2 +", 10, "1 2 +"},
		{"123456789 987654321 *", 10, "1234567..."},
		{"12345", 3, "123"},
		{"１２３４５", 6, "１..."},
		{"abc", 0, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestProgressModelCountsSettledItems(t *testing.T) {
	events := make(chan batch.Event)
	m := NewProgressModel("batch", []string{"1 2 +", "1 0 /", "20 !"}, events).(*progressModel)

	for _, ev := range []batch.Event{
		{Index: 0, Status: batch.StatusEvaluating},
		{Index: 0, Status: batch.StatusDone},
		{Index: 1, Status: batch.StatusError},
		{Index: 2, Status: batch.StatusDone, Cached: true},
		{Index: 2, Status: batch.StatusDone, Cached: true},
		{Index: 9, Status: batch.StatusDone},
	} {
		m.Update(eventMsg(ev))
	}
	if m.finished != 3 || m.failed != 1 {
		t.Errorf("finished=%d failed=%d, want 3 and 1", m.finished, m.failed)
	}
	if got := []string{m.items[0].status, m.items[1].status, m.items[2].status}; strings.Join(got, ",") != "done,error,cached" {
		t.Errorf("statuses = %v", got)
	}

	m.Update(doneMsg{})
	view := m.View()
	if !strings.Contains(view, "done: batch (3/3, 1 failed)") {
		t.Errorf("view header missing:\n%s", view)
	}
	for _, expr := range []string{"1 2 +", "1 0 /", "20 !"} {
		if !strings.Contains(view, expr) {
			t.Errorf("view missing %q", expr)
		}
	}
}

func TestProgressModelLimitsRows(t *testing.T) {
	exprs := make([]string, maxVisibleRows+5)
	for i := range exprs {
		exprs[i] = "1"
	}
	m := NewProgressModel("batch", exprs, nil).(*progressModel)
	m.Update(eventMsg(batch.Event{Index: len(exprs) - 1, Status: batch.StatusError}))
	rows := m.visibleItems()
	if len(rows) != maxVisibleRows || rows[0].status != "error" {
		t.Errorf("visible rows = %d, first %q", len(rows), rows[0].status)
	}
	if !strings.Contains(m.View(), "5 more") {
		t.Errorf("view does not mention hidden rows")
	}
}
