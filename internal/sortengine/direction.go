package sortengine

// Direction is the sort state of a single column.
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

// Next returns the direction that follows d when its column header is
// clicked: none, ascending, descending, then back to none.
func (d Direction) Next() Direction {
	switch d {
	case None:
		return Ascending
	case Ascending:
		return Descending
	default:
		return None
	}
}

// Sign is +1 for ascending, -1 for descending and 0 for none.
func (d Direction) Sign() int {
	switch d {
	case Ascending:
		return 1
	case Descending:
		return -1
	default:
		return 0
	}
}

// Arrow is the marker drawn next to a column name.
func (d Direction) Arrow() string {
	switch d {
	case Ascending:
		return "▲"
	case Descending:
		return "▼"
	default:
		return ""
	}
}

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "none"
	}
}
