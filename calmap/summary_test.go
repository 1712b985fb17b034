package calmap

import (
	"strings"
	"testing"
)

func TestGetMapSummaryEmpty(t *testing.T) {
	tab := New()

	got := tab.GetMapSummary()
	if got != "Nominal\tCalibrated\tError\tCorrected\n" {
		t.Fatalf("empty summary = %q", got)
	}
}

func TestGetMapSummary(t *testing.T) {
	tab := New()
	tab.AddPoint(10, 9.75)
	tab.AddPoint(20, 19.5)

	want := "Nominal\tCalibrated\tError\tCorrected\n" +
		"10\t9.75\t\t0.25\t9.75\n" +
		"20\t19.5\t\t0.5\t19.5\n"

	if got := tab.GetMapSummary(); got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}

func TestGetMapSummaryAscendingOrder(t *testing.T) {
	tab := New()
	tab.AddPoint(30, 29.5)
	tab.AddPoint(10, 9.75)
	tab.AddPoint(20, 19.5)

	lines := strings.Split(strings.TrimRight(tab.GetMapSummary(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	for i, prefix := range []string{"10\t", "20\t", "30\t"} {
		if !strings.HasPrefix(lines[i+1], prefix) {
			t.Fatalf("line %d = %q, want prefix %q", i+1, lines[i+1], prefix)
		}
	}
}
