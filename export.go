// CLAUDE:SUMMARY Markdown export: renders the grid with edits applied and converts it through html-to-markdown.
package gridpipe

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"golang.org/x/net/html"
)

// markdownConverter wraps the html-to-markdown converter configured with the
// table plugin, which expands colspan and rowspan into padded pipe cells.
type markdownConverter struct {
	conv *converter.Converter
}

func newMarkdownConverter() *markdownConverter {
	return &markdownConverter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// ExportMarkdown renders the grid with committed edits applied and converts
// it to a Markdown pipe table. A nil or empty grid returns ErrEmptyGrid.
func (e *Engine) ExportMarkdown(grid *TableGrid, edits *EditStore) (string, error) {
	if grid == nil || grid.RowCount() == 0 {
		return "", ErrEmptyGrid
	}
	markup := gridHTML(grid, edits)
	out, err := e.mdConverter.conv.ConvertString(markup)
	if err != nil {
		return "", fmt.Errorf("convert grid to markdown: %w", err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("convert grid to markdown: empty output")
	}
	return out, nil
}

// gridHTML serializes the rendered grid back to minimal table markup, the
// shape the converter's table plugin consumes.
func gridHTML(grid *TableGrid, edits *EditStore) string {
	vg := Render(grid, edits)
	var sb strings.Builder
	sb.WriteString("<table>")
	for _, row := range vg.Rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			tag := "td"
			if cell.Header {
				tag = "th"
			}
			sb.WriteString("<")
			sb.WriteString(tag)
			if cell.ColSpan > 1 {
				fmt.Fprintf(&sb, ` colspan="%d"`, cell.ColSpan)
			}
			if cell.RowSpan > 1 {
				fmt.Fprintf(&sb, ` rowspan="%d"`, cell.RowSpan)
			}
			sb.WriteString(">")
			sb.WriteString(html.EscapeString(cell.Text))
			sb.WriteString("</")
			sb.WriteString(tag)
			sb.WriteString(">")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}
