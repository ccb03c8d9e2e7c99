// api.go
package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"lottoboard/internal/chart"
	"lottoboard/internal/tally"
)

var version = "dev"

// writeJSON encodes before writing the status, so an unencodable value
// turns into a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(APIResponse{Success: false, Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Debug("write response", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   version,
	})
}

func (s *server) tableAPIHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, APIResponse{Success: false, Error: "Method not allowed"})
		return
	}
	snap := s.state.snapshot()
	view := snap.sort.View
	data := TableData{
		Header:    []any{},
		Rows:      [][]any{},
		Directive: map[int]string{},
		Priority:  append([]int{}, snap.sort.Priority...),
		Source:    snap.source,
	}
	for _, c := range view.Header() {
		data.Header = append(data.Header, c.Value())
	}
	for _, row := range view.Body() {
		vals := make([]any, len(row))
		for i, c := range row {
			vals[i] = c.Value()
		}
		data.Rows = append(data.Rows, vals)
	}
	for col, dir := range snap.sort.Directive {
		data.Directive[col] = dir.String()
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

func (s *server) frequencyAPIHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, APIResponse{Success: false, Error: "Method not allowed"})
		return
	}
	snap := s.state.snapshot()
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: tally.Balls(tally.FromDraws(snap.draws))})
}

func (s *server) chartAPIHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, APIResponse{Success: false, Error: "Method not allowed"})
		return
	}
	snap := s.state.snapshot()
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: chart.Build(snap.draws)})
}

// statsAPIHandler runs one operation over columns of the current sheet view.
// Columns are given as zero-based "col" values; without any, every numeric
// column is used.
func (s *server) statsAPIHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, APIResponse{Success: false, Error: "Method not allowed"})
		return
	}
	op := r.URL.Query().Get("operation")
	if op == "" {
		op = "average"
	}

	view := s.state.snapshot().sort.View
	if len(view) == 0 {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "No data loaded"})
		return
	}

	var cols []int
	for _, v := range r.URL.Query()["col"] {
		i, err := strconv.Atoi(v)
		if err != nil || i < 0 || i >= view.Width() {
			writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "Invalid column"})
			return
		}
		cols = append(cols, i)
	}
	if len(cols) == 0 {
		numeric := detectNumericColumns(view)
		for i := range view.Header() {
			if numeric[i] {
				cols = append(cols, i)
			}
		}
	}

	var results []CalculationResult
	for _, i := range cols {
		v, err := performCalculation(view, i, op)
		if err != nil {
			continue
		}
		results = append(results, CalculationResult{Col: view.Header()[i].String(), Op: op, Value: v})
	}
	if len(results) == 0 {
		writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "No valid calculations"})
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: results})
}

