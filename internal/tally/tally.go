// Package tally counts how often each number was drawn and shades the fixed
// 1..45 ball grid from those counts.
package tally

import (
	"math"

	"lottoboard/internal/feed"
	"lottoboard/internal/grid"
)

const (
	// MinBall and MaxBall bound the ball grid.
	MinBall = 1
	MaxBall = 45

	// saturation is the count at which a ball is fully shaded.
	saturation = 100
)

// Frequency maps a drawn value to the number of times it occurs.
type Frequency map[int]int

// Count scans every field of every record once. Only integral numeric
// fields are counted; everything else is ignored.
func Count(records [][]any) Frequency {
	freq := Frequency{}
	for _, rec := range records {
		for _, field := range rec {
			if v, ok := integral(field); ok {
				freq[v]++
			}
		}
	}
	return freq
}

// FromDraws tallies the numeric fields of a draw feed.
func FromDraws(draws []feed.Draw) Frequency {
	return Count(feed.Records(draws))
}

// FromTable tallies the numeric body cells of a table. The header is skipped.
func FromTable(t grid.Table) Frequency {
	records := make([][]any, 0, len(t.Body()))
	for _, row := range t.Body() {
		rec := make([]any, len(row))
		for i, c := range row {
			rec[i] = c.Value()
		}
		records = append(records, rec)
	}
	return Count(records)
}

// Of returns the count for n, 0 when n was never seen.
func (f Frequency) Of(n int) int {
	return f[n]
}

// Total returns the sum of all counts.
func (f Frequency) Total() int {
	total := 0
	for _, c := range f {
		total += c
	}
	return total
}

// Alpha is the display intensity for a count: count/100 capped at 1.
func Alpha(count int) float64 {
	if count <= 0 {
		return 0
	}
	return math.Min(1, float64(count)/saturation)
}

// Ball is one cell of the 1..45 grid.
type Ball struct {
	Number int     `json:"number"`
	Count  int     `json:"count"`
	Alpha  float64 `json:"alpha"`
}

// Balls returns the ball grid in number order.
func Balls(f Frequency) []Ball {
	out := make([]Ball, 0, MaxBall-MinBall+1)
	for n := MinBall; n <= MaxBall; n++ {
		c := f.Of(n)
		out = append(out, Ball{Number: n, Count: c, Alpha: Alpha(c)})
	}
	return out
}

func integral(v any) (int, bool) {
	var f float64
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case int32:
		return int(x), true
	case float64:
		f = x
	case float32:
		f = float64(x)
	case grid.Cell:
		if !x.IsNumber() {
			return 0, false
		}
		f = x.Num
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
