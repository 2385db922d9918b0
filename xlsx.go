// CLAUDE:SUMMARY XLSX export: one worksheet per grid, span rectangles as merged cells, bold headers.
package gridpipe

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the rendered grid, with committed edits applied, into a
// single-sheet workbook. Span rectangles become merged cells and header
// cells render bold. A nil or empty grid returns ErrEmptyGrid.
func ExportXLSX(grid *TableGrid, edits *EditStore) ([]byte, error) {
	if grid == nil || grid.RowCount() == 0 {
		return nil, ErrEmptyGrid
	}
	vg := Render(grid, edits)

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx header style: %w", err)
	}

	for _, row := range vg.Rows {
		for _, cell := range row {
			ref, err := excelize.CoordinatesToCellName(cell.Col+1, cell.Row+1)
			if err != nil {
				return nil, fmt.Errorf("cell name (%d,%d): %w", cell.Row, cell.Col, err)
			}
			if err := f.SetCellStr(sheet, ref, cell.Text); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", ref, err)
			}
			if cell.Header {
				if err := f.SetCellStyle(sheet, ref, ref, headerStyle); err != nil {
					return nil, fmt.Errorf("style cell %s: %w", ref, err)
				}
			}
			if cell.RowSpan > 1 || cell.ColSpan > 1 {
				end, err := excelize.CoordinatesToCellName(cell.Col+cell.ColSpan, cell.Row+cell.RowSpan)
				if err != nil {
					return nil, fmt.Errorf("merge end (%d,%d): %w", cell.Row, cell.Col, err)
				}
				if err := f.MergeCell(sheet, ref, end); err != nil {
					return nil, fmt.Errorf("merge %s:%s: %w", ref, end, err)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
