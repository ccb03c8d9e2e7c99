// state.go
package main

import (
	"sync"
	"time"

	"lottoboard/internal/board"
	"lottoboard/internal/feed"
	"lottoboard/internal/grid"
	"lottoboard/internal/sortengine"
)

// dashboard holds everything the pages render. Transitions of the sort
// state go through sortengine.Reduce; the mutex only serialises requests.
type dashboard struct {
	mu         sync.RWMutex
	draws      []feed.Draw
	sort       sortengine.State
	selection  board.Selection
	source     string
	loadFailed bool
	updated    time.Time
}

type snapshot struct {
	draws      []feed.Draw
	sort       sortengine.State
	selection  board.Selection
	source     string
	loadFailed bool
	updated    time.Time
}

func newDashboard(locale string) *dashboard {
	return &dashboard{sort: sortengine.New(nil, locale)}
}

// setDraws installs a freshly loaded feed. The spreadsheet is rebuilt from
// it and the row selection is cleared. Whichever load finishes last wins.
func (d *dashboard) setDraws(draws []feed.Draw) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draws = draws
	d.sort = sortengine.Reduce(d.sort, sortengine.Load{Table: feed.Table(draws)})
	d.selection = board.Selection{}
	d.source = "feed"
	d.loadFailed = false
	d.updated = time.Now()
}

// loadFailedNow records a failed load without touching the current data.
func (d *dashboard) loadFailedNow() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadFailed = true
}

// importTable makes an uploaded sheet the new spreadsheet baseline.
func (d *dashboard) importTable(t grid.Table, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sort = sortengine.Reduce(d.sort, sortengine.Load{Table: t})
	d.source = name
}

func (d *dashboard) dispatch(ev sortengine.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sort = sortengine.Reduce(d.sort, ev)
}

func (d *dashboard) toggleRows(rows ...int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var valid []int
	for _, r := range rows {
		if r >= 0 && r < len(d.draws) {
			valid = append(valid, r)
		}
	}
	d.selection = d.selection.Toggle(valid...)
}

func (d *dashboard) snapshot() snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return snapshot{
		draws:      d.draws,
		sort:       d.sort,
		selection:  d.selection,
		source:     d.source,
		loadFailed: d.loadFailed,
		updated:    d.updated,
	}
}
