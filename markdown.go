// CLAUDE:SUMMARY Markdown grid strategy: pipe-row splitting, separator detection, alignment hints.
package gridpipe

import (
	"regexp"
	"strings"
)

// mdSeparatorRe matches the header separator row. The line must also carry at
// least one dash; a bare "|" line is a table row with empty cells, not a
// separator.
var mdSeparatorRe = regexp.MustCompile(`^[\s|:\-]+$`)

func isMarkdownSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && strings.Contains(trimmed, "-") && mdSeparatorRe.MatchString(trimmed)
}

// markdownGrid parses a pipe table. The first content row becomes the header
// when a separator line confirms it; without a separator every row is body.
func markdownGrid(content string) *TableGrid {
	var rows []Row
	var aligns []Alignment
	separatorSeen := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isMarkdownSeparator(trimmed) {
			if !separatorSeen {
				separatorSeen = true
				aligns = separatorAlignments(trimmed)
			}
			continue
		}
		rows = append(rows, splitPipeRow(trimmed))
	}
	if len(rows) == 0 {
		return nil
	}

	headerCount := 0
	if separatorSeen {
		headerCount = 1
	}

	styles := make([][]CellStyle, len(rows))
	for r, row := range rows {
		styles[r] = make([]CellStyle, len(row))
		for c := range row {
			s := DefaultCellStyle()
			s.IsHeader = r < headerCount
			if c < len(aligns) {
				s.Align = aligns[c]
			}
			styles[r][c] = s
		}
	}

	grid := &TableGrid{CellStyles: styles}
	grid.HeaderRows = rows[:headerCount]
	grid.BodyRows = rows[headerCount:]
	return grid
}

// splitPipeRow splits a table row on pipes. Boundary pipes produce empty
// leading and trailing fragments which are dropped; interior empty cells are
// real and kept.
func splitPipeRow(trimmed string) Row {
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	row := make(Row, len(parts))
	for i, part := range parts {
		row[i] = strings.TrimSpace(part)
	}
	return row
}

// separatorAlignments reads the colon hints off a separator row:
// ":--" left, "--:" right, ":-:" center, plain dashes no hint.
func separatorAlignments(trimmed string) []Alignment {
	cells := splitPipeRow(trimmed)
	aligns := make([]Alignment, len(cells))
	for i, cell := range cells {
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case right:
			aligns[i] = AlignRight
		case left:
			aligns[i] = AlignLeft
		}
	}
	return aligns
}
