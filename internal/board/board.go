// Package board lays out each draw across the 1..45 ball columns and tracks
// which rows the user has highlighted.
package board

import (
	"slices"

	"lottoboard/internal/feed"
	"lottoboard/internal/tally"
)

// SlotColors is the highlight colour of each slot on a selected row.
var SlotColors = map[string]string{
	"main1": "red",
	"main2": "orange",
	"main3": "yellow",
	"main4": "green",
	"main5": "blue",
	"main6": "indigo",
	"bonus": "violet",
}

// Cell is one ball column of a board row. Slot is empty when the number was
// not drawn in that round.
type Cell struct {
	Number int
	Slot   string
}

// Color returns the highlight colour, or "" for an undrawn cell.
func (c Cell) Color() string {
	return SlotColors[c.Slot]
}

// Row is one draw laid out over the ball columns.
type Row struct {
	Index    int
	Label    string
	Cells    []Cell
	Selected bool
}

// Build lays out every draw. A number that appears in more than one slot
// of the same draw is attributed to the first slot in main1..bonus order.
func Build(draws []feed.Draw, sel Selection) []Row {
	rows := make([]Row, len(draws))
	for i, d := range draws {
		cells := make([]Cell, tally.MaxBall)
		for n := range cells {
			cells[n].Number = n + 1
		}
		slots := d.Slots()
		for j := len(slots) - 1; j >= 0; j-- {
			v := slots[j]
			if v >= tally.MinBall && v <= tally.MaxBall {
				cells[v-1].Slot = feed.SlotNames[j]
			}
		}
		rows[i] = Row{
			Index:    i,
			Label:    d.Label(),
			Cells:    cells,
			Selected: sel.Has(i),
		}
	}
	return rows
}

// Selection is the ordered set of highlighted row indexes. The zero value
// is an empty selection; values are never modified in place.
type Selection struct {
	rows []int
}

// Has reports whether row i is selected.
func (s Selection) Has(i int) bool {
	return slices.Contains(s.rows, i)
}

// Rows returns the selected indexes in selection order.
func (s Selection) Rows() []int {
	return slices.Clone(s.rows)
}

// Toggle returns a selection with each index flipped in turn, as when a
// drag passes over several rows.
func (s Selection) Toggle(indexes ...int) Selection {
	rows := slices.Clone(s.rows)
	for _, i := range indexes {
		if at := slices.Index(rows, i); at >= 0 {
			rows = slices.Delete(rows, at, at+1)
		} else {
			rows = append(rows, i)
		}
	}
	return Selection{rows: rows}
}
