// Package sortengine implements the multi-column sort behind the spreadsheet
// view.
//
// State is an immutable value and Reduce is a pure function from a state and
// an event to the next state. The displayed view is always re-derived from
// the untouched original table, so repeated sorts never compound.
package sortengine

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"lottoboard/internal/grid"
)

// DefaultLocale is used for string ordering when State.Locale is empty.
const DefaultLocale = "ko"

// State is the sort engine's view of one table.
type State struct {
	Original  grid.Table
	Directive map[int]Direction
	Priority  []int
	View      grid.Table
	Locale    string
}

// New returns a state with original as its baseline and no active sort.
func New(original grid.Table, locale string) State {
	return State{
		Original:  original,
		Directive: map[int]Direction{},
		View:      original,
		Locale:    locale,
	}
}

// DirectionOf returns the directive for col, None when unset.
func (s State) DirectionOf(col int) Direction {
	return s.Directive[col]
}

// Event is something that changes a State.
type Event interface {
	apply(State) State
}

// Toggle cycles the directive of one column.
type Toggle struct {
	Column int
}

// Load replaces the baseline, as on a feed load or a file import. Sort state
// from the previous table is cleared.
type Load struct {
	Table grid.Table
}

// Edit replaces one cell of the displayed view. The baseline is untouched.
type Edit struct {
	Row    int
	Column int
	Cell   grid.Cell
}

// Reduce returns the state that follows s after ev.
func Reduce(s State, ev Event) State {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}

func (t Toggle) apply(s State) State {
	if t.Column < 0 || t.Column >= s.Original.Width() {
		return s
	}

	directive := make(map[int]Direction, len(s.Directive)+1)
	for k, v := range s.Directive {
		directive[k] = v
	}
	priority := slices.Clone(s.Priority)

	current := directive[t.Column]
	next := current.Next()
	switch next {
	case Ascending:
		priority = append(priority, t.Column)
		directive[t.Column] = next
	case Descending:
		directive[t.Column] = next
	default:
		priority = slices.DeleteFunc(priority, func(c int) bool { return c == t.Column })
		delete(directive, t.Column)
	}

	out := State{
		Original:  s.Original,
		Directive: directive,
		Priority:  priority,
		Locale:    s.Locale,
	}
	out.View = Resort(out)
	return out
}

func (l Load) apply(s State) State {
	return New(l.Table, s.Locale)
}

func (e Edit) apply(s State) State {
	view, err := s.View.WithCell(e.Row, e.Column, e.Cell)
	if err != nil {
		return s
	}
	out := s
	out.View = view
	return out
}

// Resort derives the displayed table from the original: the header followed
// by a stably sorted copy of the body. The original is not modified.
func Resort(s State) grid.Table {
	if len(s.Original) == 0 {
		return s.Original
	}
	body := slices.Clone(s.Original.Body())
	if len(s.Priority) > 0 {
		cmp := newComparator(s.Locale)
		slices.SortStableFunc(body, func(a, b grid.Row) int {
			return cmp.rows(a, b, s.Priority, s.Directive)
		})
	}
	out := make(grid.Table, 0, len(body)+1)
	out = append(out, s.Original.Header())
	return append(out, body...)
}

// Compare orders two rows under the given priority and directives using the
// collation of locale. It returns a negative number when a sorts first.
func Compare(a, b grid.Row, priority []int, directive map[int]Direction, locale string) int {
	return newComparator(locale).rows(a, b, priority, directive)
}

type comparator struct {
	collator *collate.Collator
}

func newComparator(locale string) *comparator {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &comparator{collator: collate.New(tag)}
}

func (c *comparator) rows(a, b grid.Row, priority []int, directive map[int]Direction) int {
	for _, col := range priority {
		sign := directive[col].Sign()
		if sign == 0 {
			continue
		}
		if r := c.cells(cellAt(a, col), cellAt(b, col)); r != 0 {
			return sign * r
		}
	}
	return 0
}

func (c *comparator) cells(a, b grid.Cell) int {
	if a.IsNumber() && b.IsNumber() {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}
	return c.collator.CompareString(a.String(), b.String())
}

func cellAt(r grid.Row, col int) grid.Cell {
	if col < 0 || col >= len(r) {
		return grid.Empty()
	}
	return r[col]
}
