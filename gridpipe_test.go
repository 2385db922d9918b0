package gridpipe

import (
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestSupportedFormats(t *testing.T) {
	got := SupportedFormats()
	want := []Format{FormatHTMLTable, FormatMarkdownTable, FormatDelimitedText, FormatNotTabular}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SupportedFormats = %v", got)
	}
}

func TestRecognize_ProseDegradesToPreformatted(t *testing.T) {
	// WHAT: Non-tabular content comes back as preformatted text with a low
	// indicator, never as an error or a fabricated grid.
	eng := New(Config{})
	res := eng.Recognize("Plain paragraph of ordinary prose.", nil)
	if res.Format != FormatNotTabular {
		t.Errorf("format = %q, want not_tabular", res.Format)
	}
	if res.Grid != nil {
		t.Error("expected no grid")
	}
	if res.Preformatted != "Plain paragraph of ordinary prose." {
		t.Errorf("preformatted = %q", res.Preformatted)
	}
	if res.Confidence.Level != ConfidenceLow {
		t.Errorf("confidence = %s, want low", res.Confidence.Level)
	}
}

func TestRecognize_TruncatesOversizedInput(t *testing.T) {
	// A 64-byte cap cuts the block before the second row; recognition
	// still proceeds on the prefix.
	eng := New(Config{MaxInputSize: 64, Logger: slog.Default()})
	block := "a\tb\tc\n" + strings.Repeat("x\ty\tz\n", 50)
	res := eng.Recognize(block, nil)
	if res.Format != FormatDelimitedText {
		t.Fatalf("format = %q", res.Format)
	}
	if res.Grid == nil {
		t.Fatal("expected a grid")
	}
	if res.Grid.RowCount() >= 50 {
		t.Errorf("rows = %d, truncation did not apply", res.Grid.RowCount())
	}
}

func TestRecognize_Deterministic(t *testing.T) {
	// WHAT: The same block recognizes to the same result every time.
	// WHY: Re-rendering after edits re-runs recognition; drift between
	// runs would detach committed edit keys from their cells.
	eng := New(Config{})
	block := "<table><tr><th>Day</th><th>Course</th></tr>" +
		"<tr><td rowspan=\"2\">Monday</td><td>CSE101</td></tr>" +
		"<tr><td>MAT102</td></tr></table>"
	first := eng.Recognize(block, nil)
	for i := 0; i < 5; i++ {
		again := eng.Recognize(block, nil)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}

func TestRecognize_MarkdownBlock(t *testing.T) {
	eng := New(Config{})
	res := eng.Recognize("| Day | Course |\n|-----|--------|\n| Monday | CSE101 |", nil)
	if res.Format != FormatMarkdownTable {
		t.Fatalf("format = %q", res.Format)
	}
	if res.Grid == nil || len(res.Grid.HeaderRows) != 1 {
		t.Fatalf("grid = %+v", res.Grid)
	}
	if res.Grid.HeaderRows[0][0] != "Day" {
		t.Errorf("header = %v", res.Grid.HeaderRows[0])
	}
}

func TestRecognize_EmptyInput(t *testing.T) {
	eng := New(Config{})
	res := eng.Recognize("", nil)
	if res.Format != FormatNotTabular || res.Grid != nil {
		t.Errorf("res = %+v", res)
	}
}

func TestRecognize_HTMLWithoutRowsDegrades(t *testing.T) {
	// A lone <table></table> classifies as HTML but parses to nothing;
	// the block degrades to preformatted text instead of an empty grid.
	eng := New(Config{})
	res := eng.Recognize("<table></table>", nil)
	if res.Format != FormatHTMLTable {
		t.Fatalf("format = %q", res.Format)
	}
	if res.Grid != nil {
		t.Errorf("grid = %+v, want nil", res.Grid)
	}
	if res.Preformatted == "" {
		t.Error("expected preformatted text")
	}
}

func TestNew_CustomHeaderKeywords(t *testing.T) {
	// Custom vocabulary makes an otherwise unrecognized first row
	// header-shaped.
	eng := New(Config{HeaderKeywords: []string{" Lecturer ", "CAMPUS"}})
	if !eng.headerKeywords["lecturer"] || !eng.headerKeywords["campus"] {
		t.Errorf("keywords = %v", eng.headerKeywords)
	}
	// Built-ins survive the merge.
	if !eng.headerKeywords["date"] {
		t.Error("built-in keyword lost")
	}
}
