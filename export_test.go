package gridpipe

import (
	"errors"
	"strings"
	"testing"
)

func TestExportMarkdown_PipeTable(t *testing.T) {
	eng := New(Config{})
	grid := &TableGrid{
		HeaderRows: []Row{{"Day", "Course"}},
		BodyRows:   []Row{{"Monday", "CSE101"}},
	}
	md, err := eng.ExportMarkdown(grid, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Day", "Course", "Monday", "CSE101", "|", "---"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestExportMarkdown_AppliesEdits(t *testing.T) {
	eng := New(Config{})
	grid := &TableGrid{
		HeaderRows: []Row{{"Day"}},
		BodyRows:   []Row{{"Monady"}},
	}
	edits := NewEditStore()
	edits.Commit(EditKey(1, 0), "Monady", "Monday")

	md, err := eng.ExportMarkdown(grid, edits)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(md, "Monady") {
		t.Errorf("export carries the uncorrected text:\n%s", md)
	}
	if !strings.Contains(md, "Monday") {
		t.Errorf("export missing the edited text:\n%s", md)
	}
}

func TestExportMarkdown_SpansExpandToPaddedCells(t *testing.T) {
	// WHAT: A colspan=2 header exports as a table whose body cells still
	// line up under it.
	// WHY: Markdown has no spans; the converter's table plugin pads
	// instead, and the export relies on that.
	eng := New(Config{})
	grid := &TableGrid{
		HeaderRows: []Row{{"Schedule", ""}},
		BodyRows:   []Row{{"Monday", "CSE101"}},
		CellStyles: [][]CellStyle{
			{{RowSpan: 1, ColSpan: 2, IsHeader: true}, DefaultCellStyle()},
			{DefaultCellStyle(), DefaultCellStyle()},
		},
	}
	md, err := eng.ExportMarkdown(grid, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(md, "Schedule") || !strings.Contains(md, "CSE101") {
		t.Errorf("markdown lost cells:\n%s", md)
	}
}

func TestExportMarkdown_EmptyGrid(t *testing.T) {
	eng := New(Config{})
	if _, err := eng.ExportMarkdown(nil, nil); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("nil grid err = %v, want ErrEmptyGrid", err)
	}
	if _, err := eng.ExportMarkdown(&TableGrid{}, nil); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("zero-row grid err = %v, want ErrEmptyGrid", err)
	}
}

func TestGridHTML_EscapesAndTags(t *testing.T) {
	grid := &TableGrid{
		HeaderRows: []Row{{"Name"}},
		BodyRows:   []Row{{"a < b & c"}},
	}
	markup := gridHTML(grid, nil)
	if !strings.Contains(markup, "<th>Name</th>") {
		t.Errorf("header cell not emitted as th: %s", markup)
	}
	if !strings.Contains(markup, "a &lt; b &amp; c") {
		t.Errorf("cell text not escaped: %s", markup)
	}
}

func TestGridHTML_SpanAttributes(t *testing.T) {
	grid := &TableGrid{
		BodyRows: []Row{
			{"wide", ""},
			{"x", "y"},
		},
		CellStyles: [][]CellStyle{
			{{RowSpan: 2, ColSpan: 2}, DefaultCellStyle()},
			{DefaultCellStyle(), DefaultCellStyle()},
		},
	}
	markup := gridHTML(grid, nil)
	if !strings.Contains(markup, `colspan="2"`) || !strings.Contains(markup, `rowspan="2"`) {
		t.Errorf("span attributes missing: %s", markup)
	}
}
