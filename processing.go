// processing.go
package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lottoboard/internal/grid"
	"lottoboard/internal/sheet"
)

var errEmptyFile = errors.New("empty file")

// readUpload parses the multipart "file" field into a table.
func readUpload(r *http.Request, maxBytes int64, maxRows int) (grid.Table, string, error) {
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, "", fmt.Errorf("file too large")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file")
	}
	defer file.Close()

	if err := sheet.Check(header.Filename); err != nil {
		if errors.Is(err, sheet.ErrLegacyWorkbook) {
			return nil, header.Filename, sheet.ErrLegacyWorkbook
		}
		return nil, header.Filename, fmt.Errorf("invalid file type")
	}

	data, err := sheet.Import(file, header.Filename)
	if err != nil {
		kind := "Excel"
		if strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
			kind = "CSV"
		}
		return nil, header.Filename, fmt.Errorf("%s error: %v", kind, err)
	}
	if len(data) == 0 {
		return nil, header.Filename, errEmptyFile
	}
	if len(data.Body()) > maxRows {
		return nil, header.Filename, fmt.Errorf("too many rows (> %d)", maxRows)
	}
	return data, header.Filename, nil
}

func detectNumericColumns(data grid.Table) map[int]bool {
	numericCols := map[int]bool{}
	for col := range data.Header() {
		if isColumnNumeric(data, col) {
			numericCols[col] = true
		}
	}
	return numericCols
}

func isColumnNumeric(data grid.Table, colIndex int) bool {
	numericCount := 0
	totalCount := 0
	for _, row := range data.Body() {
		if colIndex >= len(row) {
			continue
		}
		c := row[colIndex]
		if c.IsAbsent() || strings.TrimSpace(c.String()) == "" {
			continue
		}
		totalCount++
		if c.IsNumber() {
			numericCount++
			continue
		}
		if _, ok := grid.ParseNumber(c.String()); ok {
			numericCount++
		}
	}
	if totalCount == 0 {
		return false
	}
	return float64(numericCount)/float64(totalCount) >= 0.8
}
