// Package chart builds the per-slot line series shown on the dashboard and
// lays them out as SVG polylines.
package chart

import (
	"strconv"
	"strings"

	"lottoboard/internal/feed"
)

// Title is the caption drawn above the line chart.
const Title = "Line Chart of main1 to bonus"

var palette = map[string][2]string{
	"main1": {"rgba(255, 99, 132, 1)", "rgba(255, 99, 132, 0.2)"},
	"main2": {"rgba(54, 162, 235, 1)", "rgba(54, 162, 235, 0.2)"},
	"main3": {"rgba(255, 206, 86, 1)", "rgba(255, 206, 86, 0.2)"},
	"main4": {"rgba(75, 192, 192, 1)", "rgba(75, 192, 192, 0.2)"},
	"main5": {"rgba(153, 102, 255, 1)", "rgba(153, 102, 255, 0.2)"},
	"main6": {"rgba(255, 159, 64, 1)", "rgba(255, 159, 64, 0.2)"},
	"bonus": {"rgba(100, 149, 237, 1)", "rgba(100, 149, 237, 0.2)"},
}

// Series is one line of the chart.
type Series struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BorderColor     string `json:"borderColor"`
	BackgroundColor string `json:"backgroundColor"`
}

// Chart is the full chart payload: x labels and one series per slot.
type Chart struct {
	Title    string   `json:"title"`
	Labels   []int    `json:"labels"`
	Datasets []Series `json:"datasets"`
}

// Build collects each slot of the draws into its own series. Zero values
// mean the slot was missing from a record and are skipped, so series can be
// shorter than the feed. Labels run 1..len(main1 series).
func Build(draws []feed.Draw) Chart {
	data := make([][]int, len(feed.SlotNames))
	for _, d := range draws {
		for i, v := range d.Slots() {
			if v != 0 {
				data[i] = append(data[i], v)
			}
		}
	}

	c := Chart{Title: Title}
	for i, name := range feed.SlotNames {
		colors := palette[name]
		c.Datasets = append(c.Datasets, Series{
			Label:           name,
			Data:            data[i],
			BorderColor:     colors[0],
			BackgroundColor: colors[1],
		})
	}
	for i := range data[0] {
		c.Labels = append(c.Labels, i+1)
	}
	return c
}

// MaxValue returns the largest value over every series.
func (c Chart) MaxValue() int {
	m := 0
	for _, s := range c.Datasets {
		for _, v := range s.Data {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// Span is the number of x positions needed to fit every series. It is at
// least len(Labels), and larger when a slot has more values than main1.
func (c Chart) Span() int {
	n := len(c.Labels)
	for _, s := range c.Datasets {
		n = max(n, len(s.Data))
	}
	return n
}

// Polyline returns the SVG points attribute for s scaled into a width by
// height box with y growing upward from 0 to maxY. xCount is the number of
// positions along the x axis; a series longer than that is squeezed to fit.
func (s Series) Polyline(width, height float64, xCount, maxY int) string {
	if len(s.Data) == 0 || maxY <= 0 {
		return ""
	}
	xCount = max(xCount, len(s.Data))
	step := 0.0
	if xCount > 1 {
		step = width / float64(xCount-1)
	}
	var b strings.Builder
	for i, v := range s.Data {
		if i > 0 {
			b.WriteByte(' ')
		}
		x := float64(i) * step
		y := height - float64(v)/float64(maxY)*height
		b.WriteString(strconv.FormatFloat(x, 'f', 1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(y, 'f', 1, 64))
	}
	return b.String()
}
