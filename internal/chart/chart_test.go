package chart

import (
	"reflect"
	"testing"

	"lottoboard/internal/feed"
)

func TestBuild(t *testing.T) {
	draws := []feed.Draw{
		{Main1: 1, Main2: 2, Main3: 3, Main4: 4, Main5: 5, Main6: 6, Bonus: 7},
		{Main1: 10, Main2: 20, Main3: 30, Main4: 40, Main5: 41, Main6: 42, Bonus: 0},
	}
	c := Build(draws)

	if c.Title != Title {
		t.Errorf("Title = %q", c.Title)
	}
	if len(c.Datasets) != 7 {
		t.Fatalf("datasets = %d, want 7", len(c.Datasets))
	}
	if got := c.Datasets[0]; got.Label != "main1" || !reflect.DeepEqual(got.Data, []int{1, 10}) {
		t.Errorf("main1 series = %+v", got)
	}
	if got := c.Datasets[6]; got.Label != "bonus" || !reflect.DeepEqual(got.Data, []int{7}) {
		t.Errorf("bonus series = %+v, want zero skipped", got)
	}
	if got := c.Datasets[6].BorderColor; got != "rgba(100, 149, 237, 1)" {
		t.Errorf("bonus color = %q", got)
	}
	if !reflect.DeepEqual(c.Labels, []int{1, 2}) {
		t.Errorf("Labels = %v", c.Labels)
	}
	if c.MaxValue() != 42 {
		t.Errorf("MaxValue = %d", c.MaxValue())
	}
}

func TestBuildEmpty(t *testing.T) {
	c := Build(nil)
	if len(c.Datasets) != 7 || len(c.Labels) != 0 || c.MaxValue() != 0 {
		t.Errorf("empty chart = %+v", c)
	}
}

func TestPolyline(t *testing.T) {
	s := Series{Data: []int{0, 45, 45}}
	got := s.Polyline(100, 90, 3, 45)
	if want := "0.0,90.0 50.0,0.0 100.0,0.0"; got != want {
		t.Errorf("Polyline = %q, want %q", got, want)
	}
	if got := (Series{}).Polyline(100, 90, 3, 45); got != "" {
		t.Errorf("empty Polyline = %q", got)
	}
	if got := (Series{Data: []int{5}}).Polyline(100, 90, 1, 10); got != "0.0,45.0" {
		t.Errorf("single point = %q", got)
	}
}

func TestSpanCoversLongestSeries(t *testing.T) {
	draws := []feed.Draw{
		{Main1: 1, Bonus: 7},
		{Main1: 0, Bonus: 8},
		{Main1: 0, Bonus: 9},
	}
	c := Build(draws)
	if len(c.Labels) != 1 || c.Span() != 3 {
		t.Fatalf("labels = %v, span = %d", c.Labels, c.Span())
	}
	bonus := c.Datasets[6]
	if got, want := bonus.Polyline(100, 90, c.Span(), 9), "0.0,20.0 50.0,10.0 100.0,0.0"; got != want {
		t.Errorf("bonus Polyline = %q, want %q", got, want)
	}
	// A count smaller than the series still keeps every point inside the box.
	if got, want := bonus.Polyline(100, 90, 1, 9), "0.0,20.0 50.0,10.0 100.0,0.0"; got != want {
		t.Errorf("clamped Polyline = %q, want %q", got, want)
	}
}
