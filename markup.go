// CLAUDE:SUMMARY Markup-tree capability: the parser interfaces the HTML strategy walks, plus the x/net/html implementation.
package gridpipe

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MarkupParser turns markup into a MarkupTree. The grid logic depends only on
// these interfaces, so the parsing library can be swapped without touching
// the strategies.
type MarkupParser interface {
	Parse(markup string) (MarkupTree, error)
}

// MarkupTree is one parsed document.
type MarkupTree interface {
	// HasTable reports whether a table element exists anywhere in the tree.
	HasTable() bool
	// FindRows returns every table row in document order.
	FindRows() []MarkupNode
}

// MarkupNode is one element in the tree.
type MarkupNode interface {
	// CellChildren returns the td and th children of a row in document order.
	CellChildren() []MarkupNode
	// Attribute returns the named attribute's value, "" when absent.
	Attribute(name string) string
	// HeaderCell reports whether the node is a th element.
	HeaderCell() bool
	// Text flattens the visible text of the subtree.
	Text() string
}

// netMarkup is the default MarkupParser backed by golang.org/x/net/html.
type netMarkup struct{}

func (netMarkup) Parse(markup string) (MarkupTree, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return &netTree{doc: doc}, nil
}

type netTree struct {
	doc *html.Node
}

func (t *netTree) HasTable() bool {
	found := false
	walkNodes(t.doc, func(n *html.Node) {
		if n.DataAtom == atom.Table {
			found = true
		}
	})
	return found
}

func (t *netTree) FindRows() []MarkupNode {
	var rows []MarkupNode
	walkNodes(t.doc, func(n *html.Node) {
		if n.DataAtom == atom.Tr {
			rows = append(rows, &netNode{n: n})
		}
	})
	return rows
}

type netNode struct {
	n *html.Node
}

func (m *netNode) CellChildren() []MarkupNode {
	var cells []MarkupNode
	for c := m.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom == atom.Td || c.DataAtom == atom.Th {
			cells = append(cells, &netNode{n: c})
		}
	}
	return cells
}

func (m *netNode) Attribute(name string) string {
	for _, a := range m.n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func (m *netNode) HeaderCell() bool {
	return m.n.DataAtom == atom.Th
}

func (m *netNode) Text() string {
	return collectNodeText(m.n)
}

// walkNodes visits every element node depth-first.
func walkNodes(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkNodes(c, fn)
	}
}

// collectNodeText flattens the visible text of a subtree, skipping script and
// style content and collapsing runs of whitespace to single spaces.
func collectNodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch node.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
		}
		if node.Type == html.TextNode {
			text := strings.TrimSpace(node.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
