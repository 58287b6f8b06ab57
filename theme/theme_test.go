package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestResolveDefaultsOnly(t *testing.T) {
	def := Component{
		Marker: "•",
		Gap:    intPtr(1),
		Styles: map[string]StyleSpec{"marker": {Faint: true}},
	}

	res := Resolve("list", def, nil)

	assert.Equal(t, "•", res.Marker)
	assert.Equal(t, 1, res.Gap)
	require.Contains(t, res.Styles, "marker")
	assert.True(t, res.Styles["marker"].GetFaint())
}

func TestResolveThemeEntryOverridesDefaults(t *testing.T) {
	def := Component{
		Marker: "•",
		Gap:    intPtr(1),
		Styles: map[string]StyleSpec{"marker": {Faint: true}},
	}
	th := &Theme{
		Components: map[string]Component{
			"list": {Marker: []any{"*", "+"}},
		},
	}

	res := Resolve("list", def, th)

	assert.Equal(t, []any{"*", "+"}, res.Marker)
	// Unspecified fields fall through to the defaults.
	assert.Equal(t, 1, res.Gap)
	assert.True(t, res.Styles["marker"].GetFaint())
}

func TestResolveOverridesWinOverTheme(t *testing.T) {
	th := &Theme{
		Components: map[string]Component{
			"list": {Marker: "•", Gap: intPtr(1)},
		},
	}

	res := Resolve("list", Component{}, th, Component{Gap: intPtr(4)})

	assert.Equal(t, "•", res.Marker, "marker comes from the theme")
	assert.Equal(t, 4, res.Gap, "gap comes from the per-instance override")
}

func TestResolveUnknownComponent(t *testing.T) {
	th := &Theme{Components: map[string]Component{"other": {Marker: "x"}}}

	res := Resolve("list", Component{Marker: "•"}, th)

	assert.Equal(t, "•", res.Marker)
}

func TestResolveNilTheme(t *testing.T) {
	res := Resolve("list", Component{Marker: "•"}, nil)

	assert.Equal(t, "•", res.Marker)
	assert.Equal(t, 0, res.Gap)
}

func TestMergeKeepsUntouchedStyles(t *testing.T) {
	def := Component{
		Styles: map[string]StyleSpec{
			"marker":  {Faint: true},
			"content": {Foreground: "252"},
		},
	}
	th := &Theme{
		Components: map[string]Component{
			"list-item": {
				Styles: map[string]StyleSpec{"marker": {Foreground: "33", Bold: true}},
			},
		},
	}

	res := Resolve("list-item", def, th)

	assert.True(t, res.Styles["marker"].GetBold())
	assert.False(t, res.Styles["marker"].GetFaint(), "overridden spec replaces the default spec")
	assert.Contains(t, res.Styles, "content")
}

func TestStyleSpecCompile(t *testing.T) {
	spec := StyleSpec{Foreground: "245", Bold: true, Faint: true, Italic: true}
	st := spec.Style()

	assert.True(t, st.GetBold())
	assert.True(t, st.GetFaint())
	assert.True(t, st.GetItalic())
}
