// CLAUDE:SUMMARY Regex fallback strategy: peels typed tokens off tag-stripped lines when tree parsing yields no table.
package gridpipe

import (
	"regexp"
	"strings"
)

// fallbackPatterns peel one cell off the front of a line. Order encodes
// specificity: dates before times, course codes before the looser room
// shape, multi-word phrases before single words.
var fallbackPatterns = []*regexp.Regexp{
	// 03-May-19, 3-May-2019
	regexp.MustCompile(`^\s*(\d{1,2}-[A-Za-z]{3}-\d{2,4})`),
	// 9:00AM, 9:00 AM - 10:30 AM, 14:00-15:30
	regexp.MustCompile(`(?i)^\s*(\d{1,2}:\d{2}\s*(?:am|pm)?(?:\s*-\s*\d{1,2}:\d{2}\s*(?:am|pm)?)?|\d{1,2}\s*(?:am|pm)(?:\s*-\s*\d{1,2}\s*(?:am|pm))?)`),
	// CSE101
	regexp.MustCompile(`^\s*([A-Za-z]{3}\d{3})`),
	// Data Structures Lab
	regexp.MustCompile(`^\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
	// Sem 1
	regexp.MustCompile(`(?i)^\s*(sem\s*\d+)`),
	// B-204, LT12
	regexp.MustCompile(`^\s*([A-Z]{1,3}-?\d{1,4}[A-Z]?)`),
	// bare integer
	regexp.MustCompile(`^\s*(\d+)`),
	// single capitalized word
	regexp.MustCompile(`^\s*([A-Z][a-z]+)`),
}

// tagRe matches any residual markup tag; replaced with a space so adjacent
// cell values stay separated.
var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripTags(markup string) string {
	return tagRe.ReplaceAllString(markup, " ")
}

// fallbackGrid extracts a grid from lines of text by repeatedly peeling the
// first matching token pattern off each line. Unmatched residue at the front
// of a line ends that line's peel; lines yielding no cells are skipped. The
// first surviving row is the header. Returns nil when nothing matches.
func fallbackGrid(text string) *TableGrid {
	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		cells := peelCells(line)
		if len(cells) == 0 {
			continue
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil
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

	return &TableGrid{
		HeaderRows: rows[:1],
		BodyRows:   rows[1:],
		CellStyles: styles,
	}
}

func peelCells(line string) Row {
	var cells Row
	rest := line
	for strings.TrimSpace(rest) != "" {
		matched := false
		for _, re := range fallbackPatterns {
			m := re.FindStringSubmatchIndex(rest)
			if m == nil {
				continue
			}
			cells = append(cells, strings.TrimSpace(rest[m[2]:m[3]]))
			rest = rest[m[1]:]
			matched = true
			break
		}
		if !matched {
			break
		}
	}
	return cells
}
