// Package theme supplies per-component styling and configuration for
// bullet's terminal components. A theme maps component names to entries
// holding a marker value and named style specs; Resolve merges an entry
// over a component's built-in defaults and any per-instance overrides.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleSpec is the declarative form of a lipgloss style as it appears in a
// theme file. Zero fields are "not specified" and leave the merged value
// untouched.
type StyleSpec struct {
	Foreground string `yaml:"foreground,omitempty" toml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty" toml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty" toml:"bold,omitempty"`
	Faint      bool   `yaml:"faint,omitempty" toml:"faint,omitempty"`
	Italic     bool   `yaml:"italic,omitempty" toml:"italic,omitempty"`
}

// Style compiles the spec into a lipgloss style.
func (s StyleSpec) Style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	return st
}

func (s StyleSpec) isZero() bool {
	return s == StyleSpec{}
}

// Component is one named entry of a theme. Marker holds the raw decoded
// marker value (a string or a sequence of strings; anything else is
// ignored downstream). Gap is the number of spaces between a marker and
// its content; nil means "not specified".
type Component struct {
	Marker any                  `yaml:"marker,omitempty" toml:"marker,omitempty"`
	Gap    *int                 `yaml:"gap,omitempty" toml:"gap,omitempty"`
	Styles map[string]StyleSpec `yaml:"styles,omitempty" toml:"styles,omitempty"`
}

// Theme is a set of component entries keyed by component name.
type Theme struct {
	Components map[string]Component `yaml:"components" toml:"components"`
}

// Component returns the entry for name, if present.
func (t *Theme) Component(name string) (Component, bool) {
	if t == nil {
		return Component{}, false
	}
	c, ok := t.Components[name]
	return c, ok
}

// Resolved is the effective configuration for one component instance:
// compiled styles plus the merged marker and gap values.
type Resolved struct {
	Marker any
	Gap    int
	Styles map[string]lipgloss.Style
}

// Resolve merges the theme's entry for name over def, then applies
// overrides in order, later values winning. Unspecified fields fall
// through to the nearest earlier layer, so a theme that only sets a
// marker keeps the component's default styles.
func Resolve(name string, def Component, th *Theme, overrides ...Component) Resolved {
	merged := def
	if entry, ok := th.Component(name); ok {
		merged = merge(merged, entry)
	}
	for _, o := range overrides {
		merged = merge(merged, o)
	}

	gap := 0
	if merged.Gap != nil {
		gap = *merged.Gap
	}
	styles := make(map[string]lipgloss.Style, len(merged.Styles))
	for k, spec := range merged.Styles {
		styles[k] = spec.Style()
	}
	return Resolved{Marker: merged.Marker, Gap: gap, Styles: styles}
}

func merge(base, over Component) Component {
	out := base
	if over.Marker != nil {
		out.Marker = over.Marker
	}
	if over.Gap != nil {
		out.Gap = over.Gap
	}
	if len(over.Styles) > 0 {
		styles := make(map[string]StyleSpec, len(base.Styles)+len(over.Styles))
		for k, v := range base.Styles {
			styles[k] = v
		}
		for k, v := range over.Styles {
			if v.isZero() {
				continue
			}
			styles[k] = v
		}
		out.Styles = styles
	}
	return out
}
