// CLAUDE:SUMMARY Delimited-text grid strategy: dominant-separator splitting and vertical merged-cell folding.
package gridpipe

import (
	"regexp"
	"strings"
)

// separator is the column delimiter detected for a delimited block.
type separator string

const (
	sepTab    separator = "tab"
	sepSpaces separator = "spaces"
	sepPipe   separator = "pipe"
)

// splitSpaceRunRe splits columns on runs of two or more spaces, so single
// spaces stay inside cell values.
var splitSpaceRunRe = regexp.MustCompile(` {2,}`)

// detectSeparator counts candidate delimiters on the first line and picks
// the dominant one. Ties resolve tab, then space runs, then pipes: the more
// deliberate a delimiter is, the more weight it gets.
func detectSeparator(first string) separator {
	tabs := strings.Count(first, "\t")
	spaces := len(splitSpaceRunRe.FindAllString(first, -1))
	pipes := strings.Count(first, "|")
	switch {
	case tabs > 0 && tabs >= spaces && tabs >= pipes:
		return sepTab
	case spaces > 0 && spaces >= pipes:
		return sepSpaces
	case pipes > 0:
		return sepPipe
	}
	return sepSpaces
}

func splitDelimited(line string, sep separator) Row {
	switch sep {
	case sepTab:
		parts := strings.Split(line, "\t")
		row := make(Row, len(parts))
		for i, p := range parts {
			row[i] = strings.TrimSpace(p)
		}
		return row
	case sepPipe:
		return splitPipeRow(strings.TrimSpace(line))
	default:
		parts := splitSpaceRunRe.Split(strings.TrimSpace(line), -1)
		row := make(Row, 0, len(parts))
		for _, p := range parts {
			row = append(row, strings.TrimSpace(p))
		}
		return row
	}
}

// delimitedGrid parses columnar plain text. The first non-blank line names
// the columns; repeated and empty cells below fold into vertical spans.
func delimitedGrid(content string) *TableGrid {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	sep := detectSeparator(lines[0])
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = splitDelimited(line, sep)
	}

	styles := make([][]CellStyle, len(rows))
	for r, row := range rows {
		styles[r] = make([]CellStyle, len(row))
		for c := range row {
			s := DefaultCellStyle()
			s.IsHeader = r == 0
			styles[r][c] = s
		}
	}

	foldVerticalSpans(rows[1:], styles)

	return &TableGrid{
		HeaderRows: rows[:1],
		BodyRows:   rows[1:],
		CellStyles: styles,
	}
}

// foldVerticalSpans grows rowspans down the body: a cell that exactly repeats
// the visible value above it, or an empty cell under any value, belongs to
// the same merged cell. The folded rows keep placeholder cells so columns
// stay positional. anchors tracks, per column, the body row whose span is the
// one reaching the row being examined.
func foldVerticalSpans(body []Row, styles [][]CellStyle) {
	anchors := map[int]int{}
	for r := range body {
		for c := range body[r] {
			text := body[r][c]
			if a, ok := anchors[c]; ok && (text == "" || text == body[a][c]) {
				styles[1+a][c].RowSpan++
				body[r][c] = ""
				continue
			}
			if text != "" {
				anchors[c] = r
			} else {
				delete(anchors, c)
			}
		}
		// A short row ends every span that its missing columns would have
		// had to pass through.
		for c := range anchors {
			if c >= len(body[r]) {
				delete(anchors, c)
			}
		}
	}
}
