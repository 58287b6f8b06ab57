// Package list renders nested bulleted lists for terminal UIs.
//
// A List resolves its bullet glyph from its nesting depth and broadcasts
// the resolved glyph to the Items placed directly inside it. Lists nested
// inside an item render one level deeper and resolve their own glyph
// independently. Depth and the broadcast glyph travel through a
// scope.Scope, so sibling branches never observe each other's values.
package list

import (
	"strings"

	"github.com/MikeBiancalana/bullet/scope"
	"github.com/MikeBiancalana/bullet/theme"
	"github.com/charmbracelet/lipgloss"
)

// Theme component names recognized by ApplyTheme.
const (
	ComponentList = "list"
	ComponentItem = "list-item"
)

var (
	depthKey  = scope.NewKey("list.depth", 0)
	markerKey = scope.NewKey("list.marker", DefaultMarker)
)

// Node is anything a List or Item can contain.
type Node interface {
	// Render produces the node's output under the given ambient scope.
	Render(sc *scope.Scope) string
}

// Text is a leaf node rendering a plain string.
type Text string

func (t Text) Render(*scope.Scope) string {
	return string(t)
}

// Styles controls how an item draws its marker column.
type Styles struct {
	// Marker styles the leading bullet glyph.
	Marker lipgloss.Style
	// Gap is the number of spaces between the glyph and the content.
	Gap int
}

// DefaultStyles returns the styles used when no theme overrides them: a
// dimmed marker with a single-space gap.
func DefaultStyles() Styles {
	return Styles{
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true),
		Gap:    1,
	}
}

type markerMemo struct {
	valid    bool
	depth    int
	gen      uint64
	resolved string
}

// List is a container of items and nested lists. Rendering at ambient
// depth d resolves the list's own marker at d and establishes d+1 as the
// ambient depth for everything inside it.
type List struct {
	marker   Marker
	children []Node
	gen      uint64
	memo     markerMemo
}

// New creates a list with the given children.
func New(children ...Node) *List {
	return &List{children: children}
}

// Add appends children and returns the list.
func (l *List) Add(children ...Node) *List {
	l.children = append(l.children, children...)
	return l
}

// SetMarker replaces the list's marker configuration.
func (l *List) SetMarker(m Marker) *List {
	l.marker = m
	l.gen++
	return l
}

// ApplyTheme applies the theme's "list" entry to this list and recurses
// into nested lists and items. A theme without a marker entry leaves the
// current configuration in place.
func (l *List) ApplyTheme(th *theme.Theme) *List {
	res := theme.Resolve(ComponentList, theme.Component{}, th)
	if m := MarkerFrom(res.Marker); !m.IsZero() {
		l.SetMarker(m)
	}
	for _, c := range l.children {
		applyTheme(c, th)
	}
	return l
}

// Render draws the list under the given ambient scope. Children render
// under a derived scope carrying the incremented depth and this list's
// resolved marker; the scope passed in is never modified.
func (l *List) Render(sc *scope.Scope) string {
	depth := depthKey.Get(sc)
	marker := l.resolvedMarker(depth)

	child := scope.With(sc, depthKey, depth+1)
	child = scope.With(child, markerKey, marker)

	rows := make([]string, 0, len(l.children))
	for _, c := range l.children {
		rows = append(rows, c.Render(child))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// String renders the list as a root, at ambient depth 0.
func (l *List) String() string {
	return l.Render(nil)
}

// resolvedMarker memoizes resolution per (depth, configuration): repeated
// renders with unchanged inputs reuse the previous result, and either a
// depth change or SetMarker invalidates it.
func (l *List) resolvedMarker(depth int) string {
	if l.memo.valid && l.memo.depth == depth && l.memo.gen == l.gen {
		return l.memo.resolved
	}
	resolved := ResolveMarker(depth, l.marker, DefaultMarker)
	l.memo = markerMemo{valid: true, depth: depth, gen: l.gen, resolved: resolved}
	return resolved
}

// Item is one row of a list: the broadcast marker followed by arbitrary
// content. Items read only the ambient marker, never the depth; a list
// nested inside an item's content resolves its own marker one level
// deeper without disturbing sibling items.
type Item struct {
	styles   Styles
	children []Node
}

// NewItem creates an item with the given content.
func NewItem(children ...Node) *Item {
	return &Item{styles: DefaultStyles(), children: children}
}

// Add appends content and returns the item.
func (it *Item) Add(children ...Node) *Item {
	it.children = append(it.children, children...)
	return it
}

// SetStyles replaces the item's marker-column styles.
func (it *Item) SetStyles(s Styles) *Item {
	it.styles = s
	return it
}

// ApplyTheme applies the theme's "list-item" entry to this item and
// recurses into its content.
func (it *Item) ApplyTheme(th *theme.Theme) *Item {
	res := theme.Resolve(ComponentItem, defaultItemComponent(), th)
	styles := Styles{Marker: it.styles.Marker, Gap: res.Gap}
	if st, ok := res.Styles["marker"]; ok {
		styles.Marker = st
	}
	it.styles = styles
	for _, c := range it.children {
		applyTheme(c, th)
	}
	return it
}

// Render draws the marker column and the item's content as one row, with
// continuation lines of multi-line content hanging under the first
// content column.
func (it *Item) Render(sc *scope.Scope) string {
	marker := markerKey.Get(sc)

	rendered := make([]string, 0, len(it.children))
	for _, c := range it.children {
		rendered = append(rendered, c.Render(sc))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, rendered...)

	gap := it.styles.Gap
	if gap < 0 {
		gap = 0
	}
	lead := it.styles.Marker.Render(marker) + strings.Repeat(" ", gap)
	return lipgloss.JoinHorizontal(lipgloss.Top, lead, content)
}

func defaultItemComponent() theme.Component {
	gap := 1
	return theme.Component{
		Gap: &gap,
		Styles: map[string]theme.StyleSpec{
			"marker": {Foreground: "245", Faint: true},
		},
	}
}

func applyTheme(n Node, th *theme.Theme) {
	switch node := n.(type) {
	case *List:
		node.ApplyTheme(th)
	case *Item:
		node.ApplyTheme(th)
	}
}
