package gridpipe

import "testing"

func classify(content string) Format {
	return Classify(content, Normalize(content))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Format
	}{
		{"literal table tag", "<table><tr><td>a</td></tr></table>", FormatHTMLTable},
		{"literal td only", "text <td>cell</td> text", FormatHTMLTable},
		{"entity encoded tags", "&lt;tr&gt;&lt;td&gt;a&lt;/td&gt;&lt;/tr&gt;", FormatHTMLTable},
		{"closing tag counts", "</table>", FormatHTMLTable},
		{"markdown framed first line", "| Name | Age |\n|---|---|\n| Ann | 30 |", FormatMarkdownTable},
		{"markdown by segment count", "intro line\na | b | c | d", FormatMarkdownTable},
		{"tab separated", "Name\tAge\nAnn\t30", FormatDelimitedText},
		{"space run separated", "Name    Age    City\nAnn     30     Oslo", FormatDelimitedText},
		{"four token lines", "alpha beta gamma delta\none two three four", FormatDelimitedText},
		{"prose", "Plain paragraph of ordinary prose.", FormatNotTabular},
		{"prose with short tail", "Plain paragraph of ordinary prose.\nShort tail.", FormatNotTabular},
		{"empty", "", FormatNotTabular},
		{"single columnar line", "Name\tAge", FormatNotTabular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.content); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestClassify_OrderHTMLBeatsPipes(t *testing.T) {
	// WHAT: A block with both td tags and pipe rows classifies as HTML.
	// WHY: The checks run in a fixed order; markup evidence is stronger than
	// pipes that may just be cell content.
	content := "| a | b |\n<td>c</td>"
	if got := classify(content); got != FormatHTMLTable {
		t.Errorf("Classify = %q, want %q", got, FormatHTMLTable)
	}
}

func TestClassify_TitleLinesAreNotColumnarEvidence(t *testing.T) {
	// WHAT: All-uppercase headings and short lines never count toward the
	// delimited-text threshold.
	// WHY: Scanned documents open with title banners that have many tokens
	// but no column structure.
	content := "DEPARTMENT OF COMPUTER SCIENCE AND ENGINEERING\nEXAM TIME TABLE FOR SEMESTER ONE\nhi"
	if got := classify(content); got != FormatNotTabular {
		t.Errorf("Classify = %q, want %q", got, FormatNotTabular)
	}
}

func TestClassify_TwoPipeSegmentsAreNotMarkdown(t *testing.T) {
	// WHAT: A mid-text line with only two pipe segments stays non-markdown.
	// WHY: Prose uses single pipes ("either | or"); more than two segments
	// is the signal.
	content := "intro\nleft | right"
	if got := classify(content); got == FormatMarkdownTable {
		t.Errorf("Classify = %q, want anything but markdown_table", got)
	}
}
