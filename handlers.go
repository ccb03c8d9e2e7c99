// handlers.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"lottoboard/internal/board"
	"lottoboard/internal/chart"
	"lottoboard/internal/config"
	"lottoboard/internal/feed"
	"lottoboard/internal/grid"
	"lottoboard/internal/sheet"
	"lottoboard/internal/sortengine"
	"lottoboard/internal/tally"
)

const (
	chartWidth  = 800
	chartHeight = 400
)

type server struct {
	cfg     *config.Config
	fetcher feed.Fetcher
	state   *dashboard
	local   []feed.Draw
}

func newServer(cfg *config.Config, fetcher feed.Fetcher) *server {
	return &server{
		cfg:     cfg,
		fetcher: fetcher,
		state:   newDashboard(cfg.Locale),
	}
}

// routes registers every page, form action and JSON endpoint.
func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.dashboardHandler)
	mux.HandleFunc("/sheet", s.sheetHandler)
	mux.HandleFunc("/sheet/sort", s.sortHandler)
	mux.HandleFunc("/sheet/import", s.importHandler)
	mux.HandleFunc("/sheet/edit", s.editHandler)
	mux.HandleFunc("/sheet/export", s.exportHandler)
	mux.HandleFunc("/list", s.listHandler)
	mux.HandleFunc("/list/select", s.selectHandler)
	mux.HandleFunc("/reload", s.reloadHandler)
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/api/table", s.tableAPIHandler)
	mux.HandleFunc("/api/frequency", s.frequencyAPIHandler)
	mux.HandleFunc("/api/chart", s.chartAPIHandler)
	mux.HandleFunc("/api/stats", s.statsAPIHandler)
	if s.local != nil {
		mux.Handle("/crawling3", feed.Handler(s.local))
	}
	return mux
}

// reload fetches the feed once. A failure is logged and leaves the current
// data in place.
func (s *server) reload(ctx context.Context) {
	draws, err := feed.Load(ctx, s.fetcher)
	if err != nil {
		s.state.loadFailedNow()
		return
	}
	s.state.setDraws(draws)
}

func (s *server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Cache-Control", "no-cache")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("template error", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	snap := s.state.snapshot()
	c := chart.Build(snap.draws)
	maxY := c.MaxValue()
	if maxY < tally.MaxBall {
		maxY = tally.MaxBall
	}

	page := DashboardPage{
		Chart:      c,
		Width:      chartWidth,
		Height:     chartHeight,
		MaxY:       maxY,
		Balls:      tally.Balls(tally.FromDraws(snap.draws)),
		Stats:      slotStats(feed.Table(snap.draws), feed.SlotNames),
		DrawCount:  len(snap.draws),
		FeedURL:    s.cfg.FeedURL,
		LoadFailed: snap.loadFailed,
	}
	if !snap.updated.IsZero() {
		page.LastUpdated = snap.updated.Format("January 2, 2006 at 3:04 PM")
	}
	for _, series := range c.Datasets {
		page.Lines = append(page.Lines, ChartLine{
			Label:  series.Label,
			Color:  series.BorderColor,
			Points: series.Polyline(chartWidth, chartHeight, c.Span(), maxY),
		})
	}
	s.render(w, "dashboard.html", page)
}

func (s *server) sheetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/sheet", http.StatusSeeOther)
		return
	}
	s.render(w, "sheet.html", s.sheetPage(r.URL.Query().Get("msg")))
}

func (s *server) sheetPage(msg string) SheetPage {
	snap := s.state.snapshot()
	view := snap.sort.View
	page := SheetPage{
		Header:   view.Header().Strings(),
		Numeric:  detectNumericColumns(view),
		Source:   snap.source,
		RowCount: len(view.Body()),
		MaxRows:  s.cfg.MaxRows,
		Message:  msg,
	}
	for i := range view.Header() {
		dir := snap.sort.DirectionOf(i)
		page.Buttons = append(page.Buttons, SortButton{
			Index: i,
			Name:  grid.ColumnName(i),
			Arrow: dir.Arrow(),
			Color: buttonColor(dir),
		})
	}
	for _, c := range snap.sort.Priority {
		page.Priority = append(page.Priority, grid.ColumnName(c)+" "+snap.sort.DirectionOf(c).Arrow())
	}
	for _, row := range view.Body() {
		page.Rows = append(page.Rows, row.Strings())
	}
	return page
}

func buttonColor(d sortengine.Direction) string {
	switch d {
	case sortengine.Ascending:
		return "orange"
	case sortengine.Descending:
		return "lightcoral"
	default:
		return "white"
	}
}

func (s *server) sortHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/sheet", http.StatusSeeOther)
		return
	}
	col, err := strconv.Atoi(r.FormValue("col"))
	if err != nil {
		http.Error(w, "Invalid column", http.StatusBadRequest)
		return
	}
	s.state.dispatch(sortengine.Toggle{Column: col})
	slog.Debug("toggled sort", "column", col)
	http.Redirect(w, r, "/sheet", http.StatusSeeOther)
}

func (s *server) importHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/sheet", http.StatusSeeOther)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	data, name, err := readUpload(r, s.cfg.MaxUploadBytes, s.cfg.MaxRows)
	if err != nil {
		slog.Info("rejected upload", "file", name, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.state.importTable(data, name)
	slog.Info("imported sheet", "file", name, "rows", len(data.Body()))
	http.Redirect(w, r, "/sheet", http.StatusSeeOther)
}

// editHandler takes the row as shown in the grid (1 is the header) and a
// zero-based column.
func (s *server) editHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/sheet", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	row, err := strconv.Atoi(r.FormValue("row"))
	if err != nil {
		http.Error(w, "Invalid row", http.StatusBadRequest)
		return
	}
	col, err := strconv.Atoi(r.FormValue("col"))
	if err != nil {
		http.Error(w, "Invalid column", http.StatusBadRequest)
		return
	}
	s.state.dispatch(sortengine.Edit{Row: row - 1, Column: col, Cell: grid.ParseCell(r.FormValue("value"))})
	http.Redirect(w, r, "/sheet", http.StatusSeeOther)
}

func (s *server) exportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/sheet", http.StatusSeeOther)
		return
	}
	view := s.state.snapshot().sort.View
	if len(view) == 0 {
		http.Error(w, "No data to export", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="lottoboard-%s.xlsx"`, time.Now().Format("20060102-150405")))
	if err := sheet.Export(w, view); err != nil {
		slog.Error("export failed", "error", err)
	}
}

func (s *server) listHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/list", http.StatusSeeOther)
		return
	}
	snap := s.state.snapshot()
	page := ListPage{
		Rows:       board.Build(snap.draws, snap.selection),
		Selected:   len(snap.selection.Rows()),
		LoadFailed: snap.loadFailed,
	}
	for n := tally.MinBall; n <= tally.MaxBall; n++ {
		page.Balls = append(page.Balls, n)
	}
	s.render(w, "list.html", page)
}

// selectHandler toggles every submitted row in order, the way a drag across
// several rows does.
func (s *server) selectHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/list", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	var rows []int
	for _, v := range r.Form["row"] {
		i, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid row", http.StatusBadRequest)
			return
		}
		rows = append(rows, i)
	}
	s.state.toggleRows(rows...)
	http.Redirect(w, r, "/list", http.StatusSeeOther)
}

func (s *server) reloadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.reload(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
