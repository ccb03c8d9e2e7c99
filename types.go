// types.go
package main

import (
	"lottoboard/internal/board"
	"lottoboard/internal/chart"
	"lottoboard/internal/tally"
)

type SortButton struct {
	Index int
	Name  string
	Arrow string
	Color string
}

type SheetPage struct {
	Buttons  []SortButton
	Header   []string
	Rows     [][]string
	Numeric  map[int]bool
	Priority []string
	Source   string
	RowCount int
	MaxRows  int
	Message  string
}

type DashboardPage struct {
	Chart       chart.Chart
	Lines       []ChartLine
	Width       float64
	Height      float64
	MaxY        int
	Balls       []tally.Ball
	Stats       []SlotStats
	DrawCount   int
	FeedURL     string
	LoadFailed  bool
	LastUpdated string
}

type ChartLine struct {
	Label  string
	Color  string
	Points string
}

type ListPage struct {
	Rows       []board.Row
	Balls      []int
	Selected   int
	LoadFailed bool
}

type SlotStats struct {
	Slot    string
	Results []CalculationResult
}

type CalculationResult struct {
	Col   string  `json:"col"`
	Op    string  `json:"op"`
	Value float64 `json:"value"`
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type TableData struct {
	Header    []any          `json:"header"`
	Rows      [][]any        `json:"rows"`
	Directive map[int]string `json:"directive"`
	Priority  []int          `json:"priority"`
	Source    string         `json:"source"`
}
