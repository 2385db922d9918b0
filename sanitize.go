// CLAUDE:SUMMARY bluemonday policy keeping table structure and exactly the attributes the HTML strategy reads.
package gridpipe

import "github.com/microcosm-cc/bluemonday"

// tablePolicy keeps table structure and the attributes the grid parser
// consumes. Everything else, in particular scripts, styles, and event
// handlers, is stripped before the markup tree is built.
var tablePolicy = buildTablePolicy()

func buildTablePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "td", "th", "caption", "br")
	p.AllowAttrs("colspan", "rowspan", "bgcolor", "align", "valign").OnElements("table", "tr", "td", "th")
	p.SkipElementsContent("script", "style", "noscript")
	return p
}

// sanitizeTableHTML strips markup the grid parser must not see. Text content
// of dropped elements survives, so repaired boundaries stay intact.
func sanitizeTableHTML(markup string) string {
	return tablePolicy.Sanitize(markup)
}
