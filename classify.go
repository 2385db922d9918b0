// CLAUDE:SUMMARY Format classifier: decides html/markdown/delimited/not-tabular for one content block.
package gridpipe

import (
	"regexp"
	"strings"
	"unicode"
)

// tableTagRe matches an opening or closing table-structure tag, literal or
// entity-encoded. Extractors frequently emit "&lt;td&gt;" style markup.
var tableTagRe = regexp.MustCompile(`(?i)(<|&lt;)\s*/?\s*(table|tr|td|th)\b`)

// pipeRowRe matches a whole line framed by pipes, the usual Markdown table row.
var pipeRowRe = regexp.MustCompile(`^\|.*\|$`)

// spaceRunRe matches the multi-space runs that separate columns in
// fixed-width plain text.
var spaceRunRe = regexp.MustCompile(` {3,}`)

// Classify decides which parsing strategy fits a block. Checks run in a fixed
// order so markup always wins over pipes and pipes win over plain columns:
// HTML evidence is looked for in both the raw and the normalized text, the
// remaining checks use the normalized text only.
func Classify(raw, normalized string) Format {
	if tableTagRe.MatchString(raw) || tableTagRe.MatchString(normalized) {
		return FormatHTMLTable
	}
	if isMarkdownTable(normalized) {
		return FormatMarkdownTable
	}
	if isDelimitedText(normalized) {
		return FormatDelimitedText
	}
	return FormatNotTabular
}

func isMarkdownTable(content string) bool {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if pipeRowRe.MatchString(trimmed) {
			return true
		}
		// Only the first non-blank line gets the framed-row test; any later
		// line can still qualify on segment count below.
		lines = lines[i:]
		break
	}
	for _, line := range lines {
		if len(pipeSegments(line)) > 2 {
			return true
		}
	}
	return false
}

// pipeSegments splits a line on pipes, drops the boundary artifacts, and
// returns the non-blank segments.
func pipeSegments(line string) []string {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "|") {
		return nil
	}
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	var segments []string
	for _, part := range strings.Split(trimmed, "|") {
		if strings.TrimSpace(part) != "" {
			segments = append(segments, strings.TrimSpace(part))
		}
	}
	return segments
}

// isDelimitedText wants at least two lines of columnar evidence: a tab, a run
// of three or more spaces, or four or more whitespace-separated tokens.
// Title-like lines are not evidence even when they are long.
func isDelimitedText(content string) bool {
	columnar := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isTitleLike(trimmed) {
			continue
		}
		if strings.ContainsRune(trimmed, '\t') || spaceRunRe.MatchString(trimmed) || len(strings.Fields(trimmed)) >= 4 {
			columnar++
			if columnar >= 2 {
				return true
			}
		}
	}
	return false
}

// isTitleLike flags short lines and all-uppercase headings, which show up
// above real tables but carry no column structure.
func isTitleLike(trimmed string) bool {
	if len(trimmed) < 5 {
		return true
	}
	hasLetter := false
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
