// Package render mounts the seating dashboard into a host HTML page.
package render

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/KaramelBytes/seatboard/internal/resident"
	"github.com/KaramelBytes/seatboard/internal/seating"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Mount point ids expected in the host page.
const (
	TablesMount     = "tables"
	AttributesMount = "attributes"
)

// MissingTablesNote is appended after the summary counters.
const MissingTablesNote = "If table's missing, no people are sitting there."

// ErrMountPoint indicates the host page lacks a required mount point.
var ErrMountPoint = errors.New("mount point not found")

//go:embed page.html
var defaultPage []byte

// Page is a parsed host document.
type Page struct {
	doc *html.Node
}

// LoadPage parses a host page.
func LoadPage(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse host page: %w", err)
	}
	return &Page{doc: doc}, nil
}

// DefaultPage returns a fresh copy of the built-in host page.
func DefaultPage() *Page {
	p, err := LoadPage(bytes.NewReader(defaultPage))
	if err != nil {
		panic(err)
	}
	return p
}

// Render writes the document to w.
func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.doc)
}

func (p *Page) mount(id string) (*html.Node, error) {
	n := findByID(p.doc, id)
	if n == nil {
		return nil, fmt.Errorf("%w: #%s", ErrMountPoint, id)
	}
	return n, nil
}

// Mount appends table sections and summary entries for g. It only reads g.
func (p *Page) Mount(g *seating.Groups) error {
	tables, err := p.mount(TablesMount)
	if err != nil {
		return err
	}
	attrs, err := p.mount(AttributesMount)
	if err != nil {
		return err
	}
	for _, t := range g.Tables() {
		tables.AppendChild(tableBox(t))
	}

	present := element(atom.Div, "id", "present", "class", "list_value")
	present.AppendChild(strong("Present: " + strconv.Itoa(len(g.Present))))
	attrs.AppendChild(present)

	for _, spec := range seating.Attributes {
		ic := IconFor(spec.Attribute)
		entry := element(atom.Div, "id", ic.EntryID, "class", "list_value")
		entry.AppendChild(element(atom.Div, "id", ic.Indicator, "class", "indicator "+ic.Indicator, "title", ic.Label))
		entry.AppendChild(text(ic.Label + ": "))
		entry.AppendChild(strong(strconv.Itoa(g.Count(spec.Attribute))))
		attrs.AppendChild(entry)
	}

	note := element(atom.Div, "style", "margin: 5px")
	note.AppendChild(strong(MissingTablesNote))
	attrs.AppendChild(note)
	return nil
}

// MountError shows err in a visible panel inside the attributes mount point.
func (p *Page) MountError(cause error) error {
	attrs, err := p.mount(AttributesMount)
	if err != nil {
		return err
	}
	panel := element(atom.Div, "class", "error_panel", "role", "alert")
	panel.AppendChild(strong("Could not load residents: "))
	panel.AppendChild(text(cause.Error()))
	attrs.AppendChild(panel)
	return nil
}

func tableBox(t seating.Table) *html.Node {
	box := element(atom.Div, "class", "tbl_box")
	num := element(atom.Div, "class", "table_number")
	num.AppendChild(strong("Table " + strconv.Itoa(t.Number)))
	box.AppendChild(num)

	body := element(atom.Div, "id", "table_"+strconv.Itoa(t.Number-1), "class", "table")
	for _, r := range t.Residents {
		body.AppendChild(person(r))
	}
	box.AppendChild(body)
	return box
}

func person(r resident.Resident) *html.Node {
	n := element(atom.Div, "class", "person")
	name := element(atom.Div)
	name.AppendChild(text(r.FirstName()))
	n.AppendChild(name)
	for _, a := range seating.Indicators(r) {
		ic := IconFor(a)
		n.AppendChild(element(atom.Div, "class", "indicator "+ic.Indicator, "title", ic.Label))
	}
	return n
}

// element builds an element node; attrs are key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func strong(s string) *html.Node {
	n := element(atom.Strong)
	n.AppendChild(text(s))
	return n
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// LoadPageFile parses the host page at path, or returns the built-in page when
// path is empty.
func LoadPageFile(path string) (*Page, error) {
	if path == "" {
		return DefaultPage(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open host page: %w", err)
	}
	defer f.Close()
	return LoadPage(f)
}
