// Package sheet reads and writes spreadsheet files as grid tables.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"lottoboard/internal/grid"
)

// DefaultSheet is the name of the sheet written by Export.
const DefaultSheet = "Sheet1"

var (
	// ErrUnsupported is returned for file names that are neither csv nor xlsx.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrLegacyWorkbook is returned for binary .xls workbooks, which only
	// open once re-saved as .xlsx.
	ErrLegacyWorkbook = errors.New("legacy .xls workbooks are not supported, save as .xlsx")
)

// Check reports why Import would refuse name, or nil if it can read it.
func Check(name string) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx", ".xlsm":
		return nil
	case ".xls":
		return fmt.Errorf("%w: %s", ErrLegacyWorkbook, name)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
}

// Supported reports whether name has an extension Import understands.
func Supported(name string) bool {
	return Check(name) == nil
}

// Import reads the first sheet of a workbook, or a csv file, into a Table.
// The format is chosen from the extension of name.
func Import(r io.Reader, name string) (grid.Table, error) {
	if err := Check(name); err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return ReadCSV(r)
	}
	return ReadWorkbook(r)
}

// ReadCSV parses csv records. Rows may have different lengths; the table is
// padded to the widest row. Csv carries no types, so any field that parses
// as a finite number becomes a number.
func ReadCSV(r io.Reader) (grid.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	raw := make([][]any, len(records))
	for i, record := range records {
		vals := make([]any, len(record))
		for j, s := range record {
			vals[j] = rawValue(s)
		}
		raw[i] = vals
	}
	return grid.Normalize(raw), nil
}

// ReadWorkbook parses the first sheet of an xlsx workbook using raw cell
// values, so numbers keep their stored form rather than the display format.
// Cells keep the type stored in the workbook: a string cell holding "10"
// stays text.
func ReadWorkbook(r io.Reader) (grid.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	raw := make([][]any, len(rows))
	for i, row := range rows {
		vals := make([]any, len(row))
		for j, s := range row {
			if strings.TrimSpace(s) == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(name, cell)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cell, err)
			}
			vals[j] = typedValue(typ, s)
		}
		raw[i] = vals
	}
	return grid.Normalize(raw), nil
}

// typedValue converts a raw workbook value by its cell type. Cells without
// a type attribute are numbers in OOXML.
func typedValue(typ excelize.CellType, s string) any {
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if v, ok := grid.ParseNumber(s); ok {
			return v
		}
		return s
	case excelize.CellTypeBool:
		switch s {
		case "1":
			return "TRUE"
		case "0":
			return "FALSE"
		}
		return s
	default:
		return s
	}
}

func rawValue(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if v, ok := grid.ParseNumber(s); ok {
		return v
	}
	return s
}

// Export writes t as a single-sheet xlsx workbook.
func Export(w io.Writer, t grid.Table) error {
	f, err := workbook(t)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// ExportFile writes t to path as an xlsx workbook.
func ExportFile(path string, t grid.Table) error {
	f, err := workbook(t)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func workbook(t grid.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, row := range t {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		vals := make([]any, len(row))
		for j, c := range row {
			vals[j] = c.Value()
		}
		if err := f.SetSheetRow(DefaultSheet, cell, &vals); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return f, nil
}
