package sortengine

import (
	"reflect"
	"testing"

	"lottoboard/internal/grid"
)

func scenarioTable() grid.Table {
	return grid.Normalize([][]any{
		{"A", "B"},
		{3, "x"},
		{1, "y"},
		{2, "x"},
	})
}

func bodyValues(t grid.Table) [][]any {
	var out [][]any
	for _, row := range t.Body() {
		vals := make([]any, len(row))
		for i, c := range row {
			vals[i] = c.Value()
		}
		out = append(out, vals)
	}
	return out
}

func TestToggleCycleScenario(t *testing.T) {
	s := New(scenarioTable(), "en")

	s = Reduce(s, Toggle{Column: 0})
	if got, want := bodyValues(s.View), [][]any{{1.0, "y"}, {2.0, "x"}, {3.0, "x"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascending body = %v, want %v", got, want)
	}
	if s.DirectionOf(0) != Ascending {
		t.Errorf("direction = %v, want ascending", s.DirectionOf(0))
	}

	s = Reduce(s, Toggle{Column: 0})
	if got, want := bodyValues(s.View), [][]any{{3.0, "x"}, {2.0, "x"}, {1.0, "y"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("descending body = %v, want %v", got, want)
	}

	s = Reduce(s, Toggle{Column: 0})
	if got, want := bodyValues(s.View), [][]any{{3.0, "x"}, {1.0, "y"}, {2.0, "x"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("restored body = %v, want %v", got, want)
	}
	if len(s.Priority) != 0 {
		t.Errorf("priority = %v, want empty", s.Priority)
	}
	if s.DirectionOf(0) != None {
		t.Errorf("direction = %v, want none", s.DirectionOf(0))
	}
}

func TestToggleCycleLengthIsThree(t *testing.T) {
	base := New(scenarioTable(), "en")
	first := Reduce(base, Toggle{Column: 1})

	s := first
	for i := 0; i < 3; i++ {
		s = Reduce(s, Toggle{Column: 1})
	}
	if !reflect.DeepEqual(s.Priority, first.Priority) {
		t.Errorf("priority after four toggles = %v, want %v", s.Priority, first.Priority)
	}
	if s.DirectionOf(1) != first.DirectionOf(1) {
		t.Errorf("direction after four toggles = %v, want %v", s.DirectionOf(1), first.DirectionOf(1))
	}
	if !reflect.DeepEqual(bodyValues(s.View), bodyValues(first.View)) {
		t.Errorf("view after four toggles differs from view after one")
	}
}

func TestPriorityKeepsActivationOrder(t *testing.T) {
	s := New(scenarioTable(), "en")
	s = Reduce(s, Toggle{Column: 1})
	s = Reduce(s, Toggle{Column: 0})
	s = Reduce(s, Toggle{Column: 1}) // descending, keeps its slot
	if want := []int{1, 0}; !reflect.DeepEqual(s.Priority, want) {
		t.Fatalf("priority = %v, want %v", s.Priority, want)
	}
	s = Reduce(s, Toggle{Column: 1}) // cleared
	s = Reduce(s, Toggle{Column: 1}) // re-activated at the end
	if want := []int{0, 1}; !reflect.DeepEqual(s.Priority, want) {
		t.Fatalf("priority = %v, want %v", s.Priority, want)
	}
}

func TestTieBreakFallsThroughToNextColumn(t *testing.T) {
	tbl := grid.Normalize([][]any{
		{"A", "B"},
		{1, "b"},
		{2, "z"},
		{1, "a"},
	})
	s := New(tbl, "en")
	s = Reduce(s, Toggle{Column: 0})
	s = Reduce(s, Toggle{Column: 1})
	s = Reduce(s, Toggle{Column: 1}) // column 1 descending

	want := [][]any{{1.0, "b"}, {1.0, "a"}, {2.0, "z"}}
	if got := bodyValues(s.View); !reflect.DeepEqual(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
}

func TestResortIsStable(t *testing.T) {
	tbl := grid.Normalize([][]any{
		{"key", "id"},
		{"b", 1},
		{"a", 2},
		{"b", 3},
		{"a", 4},
		{"b", 5},
	})
	s := Reduce(New(tbl, "en"), Toggle{Column: 0})
	want := [][]any{{"a", 2.0}, {"a", 4.0}, {"b", 1.0}, {"b", 3.0}, {"b", 5.0}}
	if got := bodyValues(s.View); !reflect.DeepEqual(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
}

func TestResortDerivesFromOriginal(t *testing.T) {
	tbl := scenarioTable()
	snapshot := tbl.Clone()

	s := New(tbl, "en")
	s = Reduce(s, Toggle{Column: 0})
	once := Resort(s)
	twice := Resort(s)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Resort is not idempotent:\n%v\n%v", once, twice)
	}
	if !reflect.DeepEqual(tbl, snapshot) {
		t.Fatalf("original table was modified: %v", tbl)
	}
	if !reflect.DeepEqual(s.Original, snapshot) {
		t.Fatalf("state original was modified: %v", s.Original)
	}
}

func TestToggleDoesNotShareStateWithPrevious(t *testing.T) {
	s0 := New(scenarioTable(), "en")
	s1 := Reduce(s0, Toggle{Column: 0})
	_ = Reduce(s1, Toggle{Column: 1})

	if len(s0.Directive) != 0 || len(s0.Priority) != 0 {
		t.Errorf("initial state changed: %+v %+v", s0.Directive, s0.Priority)
	}
	if len(s1.Priority) != 1 || s1.DirectionOf(1) != None {
		t.Errorf("intermediate state changed: %+v %+v", s1.Directive, s1.Priority)
	}
}

func TestToggleOutOfRangeIsNoop(t *testing.T) {
	s := New(scenarioTable(), "en")
	for _, col := range []int{-1, 2, 99} {
		got := Reduce(s, Toggle{Column: col})
		if len(got.Priority) != 0 || len(got.Directive) != 0 {
			t.Errorf("Toggle{%d} changed state: %+v", col, got)
		}
	}
}

func TestNumericVersusStringComparison(t *testing.T) {
	tests := []struct {
		name string
		a, b grid.Cell
		want int
	}{
		{name: "numbers compare numerically", a: grid.Num(9), b: grid.Num(10), want: -1},
		{name: "text compares as text", a: grid.Str("9"), b: grid.Str("10"), want: 1},
		{name: "mixed falls back to text", a: grid.Num(9), b: grid.Str("10"), want: 1},
		{name: "absent sorts lowest", a: grid.Empty(), b: grid.Str("a"), want: -1},
		{name: "equal numbers tie", a: grid.Num(2), b: grid.Num(2), want: 0},
	}
	dir := map[int]Direction{0: Ascending}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(grid.Row{tt.a}, grid.Row{tt.b}, []int{0}, dir, "en")
			if sign(got) != tt.want {
				t.Errorf("Compare = %d, want sign %d", got, tt.want)
			}
			desc := Compare(grid.Row{tt.a}, grid.Row{tt.b}, []int{0}, map[int]Direction{0: Descending}, "en")
			if sign(desc) != -tt.want {
				t.Errorf("descending Compare = %d, want sign %d", desc, -tt.want)
			}
		})
	}
}

func TestCompareSkipsNoneDirective(t *testing.T) {
	a := grid.Row{grid.Num(1), grid.Num(5)}
	b := grid.Row{grid.Num(2), grid.Num(4)}
	got := Compare(a, b, []int{0, 1}, map[int]Direction{0: None, 1: Ascending}, "en")
	if sign(got) != 1 {
		t.Errorf("Compare = %d, want positive", got)
	}
}

func TestLoadResetsSortState(t *testing.T) {
	s := Reduce(New(scenarioTable(), "en"), Toggle{Column: 0})
	next := grid.Normalize([][]any{{"X"}, {"b"}, {"a"}})
	s = Reduce(s, Load{Table: next})

	if len(s.Priority) != 0 || len(s.Directive) != 0 {
		t.Fatalf("sort state survived load: %+v %+v", s.Directive, s.Priority)
	}
	if !reflect.DeepEqual(s.View, next) {
		t.Errorf("view = %v, want loaded table", s.View)
	}
	if s.Locale != "en" {
		t.Errorf("locale = %q, want en", s.Locale)
	}
}

func TestEditChangesViewOnly(t *testing.T) {
	s := New(scenarioTable(), "en")
	s = Reduce(s, Edit{Row: 1, Column: 1, Cell: grid.Str("edited")})
	if s.View[1][1] != grid.Str("edited") {
		t.Fatalf("view cell = %+v", s.View[1][1])
	}
	if s.Original[1][1] != grid.Str("x") {
		t.Fatalf("original cell = %+v", s.Original[1][1])
	}

	// the next sort derives from the original again
	s = Reduce(s, Toggle{Column: 1})
	for _, row := range s.View.Body() {
		if row[1] == grid.Str("edited") {
			t.Fatal("edit leaked into a resort")
		}
	}

	same := Reduce(s, Edit{Row: 50, Column: 0, Cell: grid.Empty()})
	if !reflect.DeepEqual(same.View, s.View) {
		t.Error("out-of-range edit changed the view")
	}
}

func TestResortEmptyTable(t *testing.T) {
	if got := Resort(New(nil, "")); got != nil {
		t.Errorf("Resort(empty) = %v", got)
	}
	headerOnly := grid.Normalize([][]any{{"A"}})
	s := Reduce(New(headerOnly, ""), Toggle{Column: 0})
	if len(s.View) != 1 {
		t.Errorf("header-only view = %v", s.View)
	}
}

func TestDirectionNext(t *testing.T) {
	if None.Next() != Ascending || Ascending.Next() != Descending || Descending.Next() != None {
		t.Error("unexpected direction cycle")
	}
	if Ascending.Arrow() != "▲" || Descending.Arrow() != "▼" || None.Arrow() != "" {
		t.Error("unexpected arrows")
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
