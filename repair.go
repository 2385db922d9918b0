// CLAUDE:SUMMARY Markup repair: reinserts cell boundaries that extraction collapsed out of table HTML.
package gridpipe

import "regexp"

// cellBoundary is the markup reinserted between two concatenated cell values.
const cellBoundary = "</td><td>"

// boundaryRepairs target value shapes that only occur one-per-cell in source
// documents, so two adjacent occurrences mean a swallowed boundary. Order
// matters: dates and times are split before the looser code shapes get a look.
var boundaryRepairs = []*regexp.Regexp{
	// 03-May-1903-May-19
	regexp.MustCompile(`(\d{1,2}-[A-Za-z]{3}-\d{2})(\d{1,2}-[A-Za-z]{3}-\d{2})`),
	// 9:00AM10:30AM, 9:00 AM10:30 AM
	regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?\s?(?:am|pm))(\d{1,2}(?::\d{2})?\s?(?:am|pm))`),
	// CSE101MAT102
	regexp.MustCompile(`([A-Za-z]{3}\d{3})([A-Za-z]{3}\d{3})`),
	// B-204C-101, A101B202
	regexp.MustCompile(`([A-Z]-?\d{2,3}[A-Z]?)([A-Z]-?\d{2,3}[A-Z]?)`),
	// Sem1Sem1
	regexp.MustCompile(`(?i)(sem\s*\d+)(sem\s*\d+)`),
}

// ampersandRe matches an ampersand glued to a following capitalized word,
// the residue of "&amp; " losing its trailing space.
var ampersandRe = regexp.MustCompile(`&([A-Z][a-z])`)

// RepairHTML reinserts missing cell boundaries in malformed table markup.
// Each substitution runs to a fixpoint so chains of three or more
// concatenated values split fully. Clean markup passes through unchanged and
// the repair never fails.
func RepairHTML(normalized string) string {
	out := normalized
	for _, re := range boundaryRepairs {
		for {
			next := re.ReplaceAllString(out, "${1}"+cellBoundary+"${2}")
			if next == out {
				break
			}
			out = next
		}
	}
	return ampersandRe.ReplaceAllString(out, "& $1")
}
