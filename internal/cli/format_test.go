package cli

import (
	"testing"
	"time"
)

func TestFormatSavedAt(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 5, 0, 0, time.UTC)
	if got := FormatSavedAt(ts); got != "2025-03-14 09:05" {
		t.Errorf("expected '2025-03-14 09:05', got %q", got)
	}
}

func TestSummaryPreview(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		max     int
		want    string
	}{
		{"short single line", "Time: 8:00 AM", 60, "Time: 8:00 AM"},
		{"multi-line", "Time: 8:00 AM\nMeeting: Yes", 60, "Time: 8:00 AM..."},
		{"long line", "aaaaaaaaaa", 5, "aaaaa..."},
		{"empty", "", 60, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummaryPreview(tt.summary, tt.max); got != tt.want {
				t.Errorf("SummaryPreview(%q, %d) = %q, want %q", tt.summary, tt.max, got, tt.want)
			}
		})
	}
}

func TestIndentBlock(t *testing.T) {
	got := IndentBlock("a\n\nb", "  ")
	want := "  a\n\n  b"
	if got != want {
		t.Errorf("IndentBlock = %q, want %q", got, want)
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize("log", 1); got != "log" {
		t.Errorf("expected 'log', got %q", got)
	}
	if got := Pluralize("log", 2); got != "logs" {
		t.Errorf("expected 'logs', got %q", got)
	}
}
