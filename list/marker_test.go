package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMarkerSingleGlyph(t *testing.T) {
	m := Glyph("•")

	for _, depth := range []int{0, 1, 2, 5, 100} {
		assert.Equal(t, "•", ResolveMarker(depth, m, "-"), "depth %d", depth)
	}
}

func TestResolveMarkerSequence(t *testing.T) {
	m := Glyphs("•", "◦", "▪", "─")

	tests := []struct {
		name  string
		depth int
		want  string
	}{
		{"first level", 0, "•"},
		{"second level", 1, "◦"},
		{"third level", 2, "▪"},
		{"last configured level", 3, "─"},
		{"one past the end saturates", 4, "─"},
		{"far past the end saturates", 42, "─"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMarker(tt.depth, m, "-"))
		})
	}
}

func TestResolveMarkerFallback(t *testing.T) {
	tests := []struct {
		name   string
		marker Marker
	}{
		{"unset marker", Marker{}},
		{"empty sequence", Glyphs()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, depth := range []int{0, 1, 7} {
				assert.Equal(t, "-", ResolveMarker(depth, tt.marker, "-"), "depth %d", depth)
			}
		})
	}
}

func TestResolveMarkerNegativeDepth(t *testing.T) {
	m := Glyphs("•", "◦")

	assert.Equal(t, "•", ResolveMarker(-3, m, "-"))
}

func TestMarkerFrom(t *testing.T) {
	tests := []struct {
		name  string
		value any
		depth int
		want  string
	}{
		{"string", "•", 3, "•"},
		{"string slice", []string{"•", "◦"}, 1, "◦"},
		{"any slice of strings", []any{"•", "◦"}, 1, "◦"},
		{"empty any slice", []any{}, 0, "-"},
		{"nil", nil, 0, "-"},
		{"any slice with non-string element", []any{"•", 7}, 0, "-"},
		{"number", 42, 0, "-"},
		{"mapping", map[string]any{"glyph": "•"}, 0, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MarkerFrom(tt.value)
			assert.Equal(t, tt.want, ResolveMarker(tt.depth, m, "-"))
		})
	}
}

func TestMarkerFromMarkerPassthrough(t *testing.T) {
	m := Glyph("◦")

	assert.Equal(t, m, MarkerFrom(m))
}

func TestGlyphsCopiesInput(t *testing.T) {
	src := []string{"•", "◦"}
	m := Glyphs(src...)
	src[0] = "x"

	assert.Equal(t, "•", ResolveMarker(0, m, "-"))
}

func TestMarkerIsZero(t *testing.T) {
	assert.True(t, Marker{}.IsZero())
	assert.False(t, Glyph("•").IsZero())
	assert.False(t, Glyphs().IsZero())
}
