// CLAUDE:SUMMARY HTML grid strategy: span-aware virtual fill, attribute styling, header-row heuristics.
package gridpipe

import (
	"regexp"
	"strconv"
	"strings"
)

// maxSpan caps hostile colspan/rowspan attributes so the occupancy fill
// cannot balloon.
const maxSpan = 256

// defaultHeaderKeywords is the built-in column-name vocabulary for the
// header-shape heuristic. Config.HeaderKeywords extends it.
var defaultHeaderKeywords = []string{
	"date", "day", "time", "room", "course", "subject", "code", "name",
	"venue", "location", "session", "group", "week", "semester", "slot",
	"section", "batch", "title", "type", "period",
}

var (
	capWordRe   = regexp.MustCompile(`^[A-Z][a-z]+$`)
	dateValueRe = regexp.MustCompile(`^\d{1,2}-[A-Za-z]{3}-\d{2,4}$`)
)

// parsedCell is one authored cell before grid placement.
type parsedCell struct {
	text   string
	header bool
	style  CellStyle
}

// htmlGrid parses repaired, sanitized markup into a canonical grid. Returns
// nil when the tree holds no table element or no rows, which tells the
// caller to fall back to regex extraction.
func htmlGrid(parser MarkupParser, markup string, headerKeywords map[string]bool) *TableGrid {
	tree, err := parser.Parse(markup)
	if err != nil || !tree.HasTable() {
		return nil
	}
	rows := tree.FindRows()
	if len(rows) == 0 {
		return nil
	}

	parsed := make([][]parsedCell, len(rows))
	for r, row := range rows {
		parsed[r] = parseHTMLRow(row)
	}

	texts, styles := fillVirtualGrid(parsed)

	headerCount := 0
	for r := range parsed {
		if !htmlHeaderRow(r, parsed[r], headerKeywords) {
			break
		}
		headerCount++
	}
	// A table whose every row looks header-shaped keeps only the first row
	// as header.
	if headerCount == len(parsed) && headerCount > 1 {
		headerCount = 1
	}
	for r := 0; r < headerCount; r++ {
		for c := range styles[r] {
			styles[r][c].IsHeader = true
		}
	}

	grid := &TableGrid{CellStyles: styles}
	for r, row := range texts {
		if r < headerCount {
			grid.HeaderRows = append(grid.HeaderRows, row)
		} else {
			grid.BodyRows = append(grid.BodyRows, row)
		}
	}
	return grid
}

func parseHTMLRow(row MarkupNode) []parsedCell {
	var cells []parsedCell
	for _, node := range row.CellChildren() {
		style := DefaultCellStyle()
		style.ColSpan = attrInt(node, "colspan", 1)
		style.RowSpan = attrInt(node, "rowspan", 1)
		style.IsHeader = node.HeaderCell()
		style.Background = normalizeColor(node.Attribute("bgcolor"))
		style.Align = parseAlign(node.Attribute("align"), AlignLeft, AlignCenter, AlignRight)
		style.VAlign = parseAlign(node.Attribute("valign"), AlignTop, AlignMiddle, AlignBottom)
		cells = append(cells, parsedCell{
			text:   node.Text(),
			header: node.HeaderCell(),
			style:  style,
		})
	}
	return cells
}

// fillVirtualGrid places authored cells into absolute coordinates. Columns
// covered by a span rectangle from an earlier cell get empty placeholder
// cells, so every later cell keeps its authored column and the rows stay
// positional.
func fillVirtualGrid(parsed [][]parsedCell) ([]Row, [][]CellStyle) {
	occ := make(occupancy)
	texts := make([]Row, len(parsed))
	styles := make([][]CellStyle, len(parsed))
	for r, cells := range parsed {
		col := 0
		for _, cell := range cells {
			for occ.taken(r, col) {
				texts[r] = append(texts[r], "")
				styles[r] = append(styles[r], DefaultCellStyle())
				col++
			}
			rs := cell.style.RowSpan
			if rs > len(parsed)-r {
				rs = len(parsed) - r
				cell.style.RowSpan = rs
			}
			texts[r] = append(texts[r], cell.text)
			styles[r] = append(styles[r], cell.style)
			for i := r; i < r+rs; i++ {
				for j := col; j < col+cell.style.ColSpan; j++ {
					occ.mark(i, j)
				}
			}
			col++
		}
	}
	return texts, styles
}

// attrInt parses a positive integer attribute, returning def when the value
// is missing, malformed, or out of range.
func attrInt(n MarkupNode, name string, def int) int {
	raw := strings.TrimSpace(n.Attribute(name))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	if v > maxSpan {
		return maxSpan
	}
	return v
}

func parseAlign(raw string, allowed ...Alignment) Alignment {
	v := Alignment(strings.ToLower(strings.TrimSpace(raw)))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return ""
}

// htmlHeaderRow decides whether an authored row belongs to the leading
// header section: it contains a th cell, it is the first row, or at least
// two cells look header-shaped (a short capitalized word, a known column
// name, or a date-like value).
func htmlHeaderRow(idx int, cells []parsedCell, keywords map[string]bool) bool {
	if idx == 0 {
		return true
	}
	shaped := 0
	for _, cell := range cells {
		if cell.header {
			return true
		}
		t := strings.TrimSpace(cell.text)
		if capWordRe.MatchString(t) || keywords[strings.ToLower(t)] || dateValueRe.MatchString(t) {
			shaped++
		}
	}
	return shaped >= 2
}

var (
	hexColorRe      = regexp.MustCompile(`^#?([0-9a-f]{6})$`)
	shortHexColorRe = regexp.MustCompile(`^#?([0-9a-f]{3})$`)
)

// basicColorNames covers the HTML named colors document markup actually uses.
var basicColorNames = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"orange":  "#ffa500",
}

// normalizeColor lowercases a bgcolor value and expands it to #rrggbb where
// possible. Values it cannot interpret pass through lowercased.
func normalizeColor(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return ""
	}
	if m := hexColorRe.FindStringSubmatch(v); m != nil {
		return "#" + m[1]
	}
	if m := shortHexColorRe.FindStringSubmatch(v); m != nil {
		d := m[1]
		return "#" + string([]byte{d[0], d[0], d[1], d[1], d[2], d[2]})
	}
	if hex, ok := basicColorNames[v]; ok {
		return hex
	}
	return v
}
