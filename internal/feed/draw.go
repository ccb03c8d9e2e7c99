// Package feed fetches and serves the historical draw records the dashboard
// is built from.
package feed

import "lottoboard/internal/grid"

// SlotNames are the numeric fields of a draw in display order.
var SlotNames = []string{"main1", "main2", "main3", "main4", "main5", "main6", "bonus"}

// Columns is the header of the table built from a feed.
var Columns = append([]string{"column1", "column2"}, SlotNames...)

// Draw is one historical result: six main numbers, a bonus number and two
// descriptive fields (round and date).
type Draw struct {
	Column1 string `json:"column1"`
	Column2 string `json:"column2"`
	Main1   int    `json:"main1"`
	Main2   int    `json:"main2"`
	Main3   int    `json:"main3"`
	Main4   int    `json:"main4"`
	Main5   int    `json:"main5"`
	Main6   int    `json:"main6"`
	Bonus   int    `json:"bonus"`
}

// Mains returns the six main numbers.
func (d Draw) Mains() [6]int {
	return [6]int{d.Main1, d.Main2, d.Main3, d.Main4, d.Main5, d.Main6}
}

// Slots returns main1..main6 followed by bonus, matching SlotNames.
func (d Draw) Slots() []int {
	m := d.Mains()
	return append(m[:], d.Bonus)
}

// Values returns every field of the draw in Columns order.
func (d Draw) Values() []any {
	out := []any{d.Column1, d.Column2}
	for _, v := range d.Slots() {
		out = append(out, v)
	}
	return out
}

// Label is the row caption used by the ball board: "round (date)".
func (d Draw) Label() string {
	return d.Column1 + " (" + d.Column2 + ")"
}

// Table converts draws into a grid table with a Columns header.
func Table(draws []Draw) grid.Table {
	rows := make([][]any, 0, len(draws)+1)
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	rows = append(rows, header)
	for _, d := range draws {
		rows = append(rows, d.Values())
	}
	return grid.Normalize(rows)
}

// Records returns the draws as plain field lists.
func Records(draws []Draw) [][]any {
	out := make([][]any, len(draws))
	for i, d := range draws {
		out[i] = d.Values()
	}
	return out
}
