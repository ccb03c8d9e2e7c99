package main

import (
	"math"
	"testing"

	"lottoboard/internal/grid"
)

func TestPerformCalculation(t *testing.T) {
	data := grid.Normalize([][]any{
		{"n", "label"},
		{1, "a"},
		{"4", "b"},
		{nil, "c"},
		{7, "d"},
		{"x", "e"},
	})
	tests := []struct {
		op   string
		want float64
	}{
		{"sum", 12},
		{"average", 4},
		{"median", 4},
		{"min", 1},
		{"max", 7},
		{"count", 3},
		{"std", 3},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := performCalculation(data, 0, tt.op)
			if err != nil {
				t.Fatalf("performCalculation: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%s = %v, want %v", tt.op, got, tt.want)
			}
		})
	}

	if _, err := performCalculation(data, 0, "mode"); err == nil {
		t.Error("expected error for unsupported operation")
	}
	if _, err := performCalculation(data, 1, "sum"); err == nil {
		t.Error("expected error for column without numbers")
	}
}

func TestMedianEvenCount(t *testing.T) {
	if got := median([]float64{4, 1, 3, 2}); got != 2.5 {
		t.Errorf("median = %v, want 2.5", got)
	}
}

func TestDetectNumericColumns(t *testing.T) {
	data := grid.Normalize([][]any{
		{"round", "date", "n"},
		{1100, "2024-01-06", 7},
		{1101, "2024-01-13", "8"},
		{1102, "2024-01-20", nil},
	})
	got := detectNumericColumns(data)
	if !got[0] || got[1] || !got[2] {
		t.Errorf("numeric columns = %v", got)
	}
}

func TestSlotStats(t *testing.T) {
	data := grid.Normalize([][]any{
		{"main1", "bonus"},
		{10, 1},
		{20, 3},
	})
	stats := slotStats(data, []string{"main1", "missing", "bonus"})
	if len(stats) != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats[0].Slot != "main1" || len(stats[0].Results) != len(statOps) {
		t.Errorf("main1 stats = %+v", stats[0])
	}
	for _, r := range stats[1].Results {
		if r.Op == "average" && r.Value != 2 {
			t.Errorf("bonus average = %v", r.Value)
		}
	}
}
