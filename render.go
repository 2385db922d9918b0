// CLAUDE:SUMMARY Span-aware renderer: occupancy walk over the grid, stable edit keys, derived cell styling.
package gridpipe

import (
	"fmt"
	"regexp"
	"strings"
)

// CellEditKey identifies one authored cell by grid coordinate. Keys are
// deterministic, so re-rendering after edits, cancels, or saves addresses
// the same cells.
type CellEditKey string

// EditKey builds the stable key for an absolute grid coordinate.
func EditKey(row, col int) CellEditKey {
	return CellEditKey(fmt.Sprintf("cell-%d-%d", row, col))
}

// VisualCell is one emitted cell of the rendered grid.
type VisualCell struct {
	Key        CellEditKey `json:"key"`
	Text       string      `json:"text"`
	Row        int         `json:"row"`
	Col        int         `json:"col"`
	RowSpan    int         `json:"rowspan"`
	ColSpan    int         `json:"colspan"`
	Header     bool        `json:"header"`
	Align      Alignment   `json:"align,omitempty"`
	VAlign     Alignment   `json:"valign,omitempty"`
	Background string      `json:"background,omitempty"`
	Muted      bool        `json:"muted"`
	Edited     bool        `json:"edited"`
}

// VisualGrid is the rendered form of a TableGrid: only span origins appear,
// coordinates covered by a span rectangle are skipped.
type VisualGrid struct {
	Rows       [][]VisualCell `json:"rows"`
	Columns    int            `json:"columns"`
	HeaderRows int            `json:"header_rows"`
}

type coord struct {
	row, col int
}

// occupancy records coordinates covered by an emitted span rectangle.
type occupancy map[coord]struct{}

func (o occupancy) taken(row, col int) bool {
	_, ok := o[coord{row, col}]
	return ok
}

func (o occupancy) mark(row, col int) {
	o[coord{row, col}] = struct{}{}
}

var (
	numericValueRe = regexp.MustCompile(`^[+-]?\d+(?:[.,]\d+)?%?$`)
	timeValueRe    = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s*(?:am|pm)?(?:\s*-\s*\d{1,2}:\d{2}\s*(?:am|pm)?)?$|^\d{1,2}\s*(?:am|pm)$`)
)

// Render walks every coordinate of the grid exactly once, emitting a cell at
// each unoccupied coordinate and marking the rectangle its spans cover.
// Rows shorter than the grid's column extent are padded with empty cells so
// the visual table stays rectangular. Overrides committed in edits replace
// the displayed text. A nil grid renders to nil.
func Render(grid *TableGrid, edits *EditStore) *VisualGrid {
	if grid == nil {
		return nil
	}
	totalRows := grid.RowCount()
	cols := grid.ColCount()
	headerRows := len(grid.HeaderRows)

	vg := &VisualGrid{Columns: cols, HeaderRows: headerRows}
	occ := make(occupancy)

	for r := 0; r < totalRows; r++ {
		row := grid.rowAt(r)
		out := make([]VisualCell, 0, cols)
		for c := 0; c < cols; c++ {
			if occ.taken(r, c) {
				continue
			}
			text := ""
			style := DefaultCellStyle()
			if c < len(row) {
				text = row[c]
				style = grid.StyleAt(r, c)
			}
			rs, cs := style.RowSpan, style.ColSpan
			if r+rs > totalRows {
				rs = totalRows - r
			}
			if c+cs > cols {
				cs = cols - c
			}
			for i := r; i < r+rs; i++ {
				for j := c; j < c+cs; j++ {
					occ.mark(i, j)
				}
			}

			key := EditKey(r, c)
			display := text
			edited := false
			if edits != nil {
				if v, ok := edits.Get(key); ok {
					display = v
					edited = true
				}
			}

			cell := VisualCell{
				Key:        key,
				Text:       display,
				Row:        r,
				Col:        c,
				RowSpan:    rs,
				ColSpan:    cs,
				Header:     style.IsHeader || r < headerRows,
				Align:      style.Align,
				VAlign:     style.VAlign,
				Background: style.Background,
				Edited:     edited,
			}
			styleVisual(&cell)
			out = append(out, cell)
		}
		vg.Rows = append(vg.Rows, out)
	}
	return vg
}

// styleVisual derives presentation from the displayed value: numbers align
// right, dates and times center, empty or null-ish values render muted.
// Authored alignment wins over the derived one.
func styleVisual(cell *VisualCell) {
	trimmed := strings.TrimSpace(cell.Text)
	if trimmed == "" || trimmed == "-" || strings.EqualFold(trimmed, "null") {
		cell.Muted = true
	}
	if cell.Align != "" || cell.Header {
		return
	}
	switch {
	case numericValueRe.MatchString(trimmed):
		cell.Align = AlignRight
	case dateValueRe.MatchString(trimmed) || timeValueRe.MatchString(trimmed):
		cell.Align = AlignCenter
	}
}
