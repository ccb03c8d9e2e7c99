package grid

import "github.com/xuri/excelize/v2"

// ColumnName returns the spreadsheet letter for a zero-based column index:
// 0 is "A", 25 is "Z", 26 is "AA". Negative indexes yield "".
func ColumnName(index int) string {
	if index < 0 {
		return ""
	}
	name, err := excelize.ColumnNumberToName(index + 1)
	if err != nil {
		return ""
	}
	return name
}
