package worker

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestProgressCountsUpdates(t *testing.T) {
	p := NewProgress(5, false)

	p.Update(1, 5, 0)
	p.Update(2, 5, 1)

	if p.completed != 2 || p.failed != 1 {
		t.Fatalf("expected completed=2 failed=1, got %d/%d", p.completed, p.failed)
	}
}

func TestProgressPrintsBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(4, true)
	p.output = &buf

	p.Update(2, 4, 0)

	out := buf.String()
	if !strings.Contains(out, "2/4 materials") {
		t.Errorf("expected count in output, got %q", out)
	}
	if !strings.Contains(out, "█") || !strings.Contains(out, "░") {
		t.Errorf("expected partial bar in output, got %q", out)
	}
}

func TestProgressPrintHandlesZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(0, true)
	p.output = &buf

	p.Print()

	out := buf.String()
	if !strings.Contains(out, "0/0 materials") {
		t.Errorf("expected empty-run count in output, got %q", out)
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("bar width must not be NaN: %q", out)
	}
}

func TestProgressDisabledPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(4, false)
	p.output = &buf

	p.Update(2, 4, 0)
	p.Done()

	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}
}

func TestProgressSummary(t *testing.T) {
	p := NewProgress(3, false)
	p.Update(3, 3, 1)

	summary := p.Summary()
	if !strings.Contains(summary, "Generated 2/3 materials") {
		t.Errorf("unexpected summary: %q", summary)
	}
	if !strings.Contains(summary, "(1 failed)") {
		t.Errorf("expected failure count in summary: %q", summary)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{250, "250ms"},
		{1500, "1.5s"},
		{90000, "1m30s"},
	}

	for _, tc := range cases {
		got := formatDuration(time.Duration(tc.ms) * time.Millisecond)
		if got != tc.want {
			t.Errorf("formatDuration(%dms) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}
