// CLAUDE:SUMMARY Canonical grid types: Format, Row, CellStyle, TableGrid, BlockMeta, and Result.
package gridpipe

import "errors"

// ErrEmptyGrid is returned by exporters when there is no grid to write.
var ErrEmptyGrid = errors.New("empty grid")

// Format identifies how a content block encodes its table structure.
type Format string

const (
	// FormatHTMLTable is markup carrying table tags, literal or entity-encoded.
	FormatHTMLTable Format = "html_table"
	// FormatMarkdownTable is a pipe-delimited Markdown table.
	FormatMarkdownTable Format = "markdown_table"
	// FormatDelimitedText is columnar plain text (tabs, space runs, pipes).
	FormatDelimitedText Format = "delimited_text"
	// FormatNotTabular is everything else; shown as preformatted text.
	FormatNotTabular Format = "not_tabular"
)

// Row is one grid row. The slice index is the column: parsers insert
// placeholder cells beneath span rectangles so that later cells keep their
// authored column.
type Row []string

// Alignment is a CellStyle alignment hint.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
	AlignTop    Alignment = "top"
	AlignMiddle Alignment = "middle"
	AlignBottom Alignment = "bottom"
)

// CellStyle carries the presentation attributes of one authored cell.
type CellStyle struct {
	ColSpan    int       `json:"colspan"`
	RowSpan    int       `json:"rowspan"`
	IsHeader   bool      `json:"is_header"`
	Background string    `json:"background,omitempty"`
	Align      Alignment `json:"align,omitempty"`
	VAlign     Alignment `json:"valign,omitempty"`
}

// DefaultCellStyle is the unstyled single cell.
func DefaultCellStyle() CellStyle {
	return CellStyle{ColSpan: 1, RowSpan: 1}
}

// TableGrid is the canonical structure every parsing strategy produces.
// Header and body rows concatenate into one absolute row space; CellStyles is
// indexed parallel to the rows. Spans live only in CellStyle: the rows
// themselves never duplicate text across a span rectangle.
type TableGrid struct {
	HeaderRows []Row         `json:"header_rows"`
	BodyRows   []Row         `json:"body_rows"`
	CellStyles [][]CellStyle `json:"cell_styles"`
}

// RowCount returns the absolute number of rows.
func (g *TableGrid) RowCount() int {
	return len(g.HeaderRows) + len(g.BodyRows)
}

// ColCount returns the widest row extent.
func (g *TableGrid) ColCount() int {
	max := 0
	for _, r := range g.HeaderRows {
		if len(r) > max {
			max = len(r)
		}
	}
	for _, r := range g.BodyRows {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}

// rowAt returns the row at an absolute index, nil when out of range.
func (g *TableGrid) rowAt(abs int) Row {
	if abs < 0 {
		return nil
	}
	if abs < len(g.HeaderRows) {
		return g.HeaderRows[abs]
	}
	abs -= len(g.HeaderRows)
	if abs < len(g.BodyRows) {
		return g.BodyRows[abs]
	}
	return nil
}

// StyleAt returns the style for an absolute coordinate. Coordinates outside
// the recorded style extents get the default single-cell style, so ragged
// grids never panic.
func (g *TableGrid) StyleAt(row, col int) CellStyle {
	if row >= 0 && row < len(g.CellStyles) && col >= 0 && col < len(g.CellStyles[row]) {
		s := g.CellStyles[row][col]
		if s.ColSpan < 1 {
			s.ColSpan = 1
		}
		if s.RowSpan < 1 {
			s.RowSpan = 1
		}
		return s
	}
	return DefaultCellStyle()
}

// BlockMeta is optional upstream metadata attached to a content block by the
// extraction stage.
type BlockMeta struct {
	// Confidence is a categorical label such as "high" or "low".
	Confidence string `json:"confidence,omitempty"`
	// ExtractConfidence scores how reliably the block was extracted, 0..1.
	ExtractConfidence *float64 `json:"extract_confidence,omitempty"`
	// ParseConfidence scores how reliably the block was parsed, 0..1.
	ParseConfidence *float64 `json:"parse_confidence,omitempty"`
}

// Result is the outcome of recognizing one content block. Grid is nil when
// the block is not tabular or no strategy produced rows; Preformatted then
// carries the text to show instead.
type Result struct {
	Format       Format     `json:"format"`
	Grid         *TableGrid `json:"grid,omitempty"`
	Preformatted string     `json:"preformatted,omitempty"`
	Repaired     bool       `json:"repaired"`
	UsedFallback bool       `json:"used_fallback"`
	Confidence   Confidence `json:"confidence"`
}
