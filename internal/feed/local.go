package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"lottoboard/internal/grid"
	"lottoboard/internal/sheet"
)

// Handler serves draws as the JSON array expected at /crawling3.
func Handler(draws []Draw) http.Handler {
	if draws == nil {
		draws = []Draw{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(draws); err != nil {
			slog.Error("encode feed", "error", err)
		}
	})
}

// LoadFile reads draws from a csv or xlsx file whose header names the draw
// fields (column1, column2, main1..main6, bonus). Header matching ignores
// case; unknown columns are skipped and non-numeric slot values become 0.
func LoadFile(path string) ([]Draw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := sheet.Import(f, path)
	if err != nil {
		return nil, fmt.Errorf("read draws file %s: %w", path, err)
	}
	return FromTable(tbl)
}

// FromTable converts a table with a draw header into draws.
func FromTable(tbl grid.Table) ([]Draw, error) {
	if len(tbl) == 0 {
		return nil, fmt.Errorf("empty draws table")
	}
	index := map[string]int{}
	for i, c := range tbl.Header() {
		index[strings.ToLower(strings.TrimSpace(c.String()))] = i
	}
	found := false
	for _, name := range SlotNames {
		if _, ok := index[name]; ok {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("draws table has no main or bonus columns")
	}

	text := func(row grid.Row, name string) string {
		if i, ok := index[name]; ok && i < len(row) {
			return row[i].String()
		}
		return ""
	}
	// Slots stored as text in a workbook still count as numbers.
	number := func(row grid.Row, name string) int {
		if i, ok := index[name]; ok && i < len(row) {
			if v, ok := grid.ParseNumber(row[i].String()); ok {
				return int(v)
			}
		}
		return 0
	}

	draws := make([]Draw, 0, len(tbl.Body()))
	for _, row := range tbl.Body() {
		draws = append(draws, Draw{
			Column1: text(row, "column1"),
			Column2: text(row, "column2"),
			Main1:   number(row, "main1"),
			Main2:   number(row, "main2"),
			Main3:   number(row, "main3"),
			Main4:   number(row, "main4"),
			Main5:   number(row, "main5"),
			Main6:   number(row, "main6"),
			Bonus:   number(row, "bonus"),
		})
	}
	return draws, nil
}

// Static is a Fetcher that always returns the same draws.
type Static []Draw

// Fetch returns the draws unchanged.
func (s Static) Fetch(ctx context.Context) ([]Draw, error) {
	return s, nil
}
