// calculations.go
package main

import (
	"fmt"
	"math"
	"sort"

	"lottoboard/internal/grid"
)

var statOps = []string{"count", "average", "median", "min", "max", "std"}

func performCalculation(data grid.Table, colIndex int, op string) (float64, error) {
	values := columnValues(data, colIndex)
	if len(values) == 0 {
		return 0, fmt.Errorf("no numeric values")
	}
	switch op {
	case "sum":
		return sum(values), nil
	case "average":
		return avg(values), nil
	case "median":
		return median(values), nil
	case "min":
		return minOf(values), nil
	case "max":
		return maxOf(values), nil
	case "count":
		return float64(len(values)), nil
	case "std":
		return std(values), nil
	default:
		return 0, fmt.Errorf("unsupported operation")
	}
}

// columnValues collects numeric cells of a body column. Text cells that
// parse as numbers count too, so imported csv columns behave like typed ones.
func columnValues(data grid.Table, colIndex int) []float64 {
	var values []float64
	for _, row := range data.Body() {
		if colIndex < 0 || colIndex >= len(row) {
			continue
		}
		c := row[colIndex]
		if c.IsNumber() {
			values = append(values, c.Num)
			continue
		}
		if num, ok := grid.ParseNumber(c.String()); ok {
			values = append(values, num)
		}
	}
	return values
}

func sum(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s
}

func avg(vals []float64) float64 { return sum(vals) / float64(len(vals)) }

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func std(vals []float64) float64 {
	if len(vals) <= 1 {
		return 0
	}
	mean := avg(vals)
	sumSq := 0.0
	for _, v := range vals {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(vals)-1))
}

// slotStats runs every stat op over the named columns of data.
func slotStats(data grid.Table, cols []string) []SlotStats {
	index := map[string]int{}
	for i, h := range data.Header() {
		index[h.String()] = i
	}
	var out []SlotStats
	for _, col := range cols {
		i, ok := index[col]
		if !ok {
			continue
		}
		s := SlotStats{Slot: col}
		for _, op := range statOps {
			v, err := performCalculation(data, i, op)
			if err != nil {
				continue
			}
			s.Results = append(s.Results, CalculationResult{Col: col, Op: op, Value: v})
		}
		out = append(out, s)
	}
	return out
}
