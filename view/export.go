package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/rstms/memview/dump"
)

const XLSXSheet = "Sheet1"

// column 1 is the offset, 2..17 the hex cells, 18 the ascii text
func xlsxAxis(col, row int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return fmt.Sprintf("%s%d", name, row)
}

// WriteXLSX writes rows as a spreadsheet with one dump row per sheet row.
func WriteXLSX(rows []dump.Row, w io.Writer) error {
	f := excelize.NewFile()
	f.SetCellStr(XLSXSheet, xlsxAxis(1, 1), "Offset")
	for i := 0; i < dump.RowSize; i++ {
		f.SetCellStr(XLSXSheet, xlsxAxis(i+2, 1), fmt.Sprintf("%02X", i))
	}
	f.SetCellStr(XLSXSheet, xlsxAxis(dump.RowSize+2, 1), "ASCII")
	for r, row := range rows {
		line := r + 2
		f.SetCellStr(XLSXSheet, xlsxAxis(1, line), row.Offset)
		var ascii strings.Builder
		for i, cell := range row.Hex {
			f.SetCellStr(XLSXSheet, xlsxAxis(i+2, line), cell)
			ascii.WriteString(dump.DisplayChar(row.ASCII[i]))
		}
		f.SetCellStr(XLSXSheet, xlsxAxis(dump.RowSize+2, line), ascii.String())
	}
	err := f.Write(w)
	if err != nil {
		return fmt.Errorf("failed writing xlsx: %v", err)
	}
	return nil
}
