package list

// DefaultMarker is the process-wide fallback bullet, used whenever a list
// has no marker configured or its configuration yields no usable glyph.
const DefaultMarker = GlyphBullet

// Common bullet glyphs, usable as marker presets.
const (
	// GlyphBullet (•) - Bullet (U+2022)
	GlyphBullet = "•"
	// GlyphWhiteBullet (◦) - White Bullet (U+25E6)
	GlyphWhiteBullet = "◦"
	// GlyphSquare (▪) - Black Small Square (U+25AA)
	GlyphSquare = "▪"
	// GlyphDash (─) - Box Drawings Light Horizontal (U+2500)
	GlyphDash = "─"
	// GlyphHyphen - ASCII fallback
	GlyphHyphen = "-"
)

type markerKind int

const (
	markerUnset markerKind = iota
	markerSingle
	markerLevels
)

// Marker selects the bullet glyph for a list. It is one of three shapes:
// unset (the zero value), a single glyph applied at every nesting depth, or
// an ordered per-depth sequence. Depths beyond the end of a sequence reuse
// its last glyph rather than wrapping or erroring, so configuring the first
// few levels is enough for arbitrarily deep lists.
type Marker struct {
	kind   markerKind
	glyph  string
	levels []string
}

// Glyph returns a marker that uses g at every depth.
func Glyph(g string) Marker {
	return Marker{kind: markerSingle, glyph: g}
}

// Glyphs returns a marker that picks gs[depth], saturating to the last
// element for deeper levels. An empty sequence resolves to the fallback.
func Glyphs(gs ...string) Marker {
	levels := make([]string, len(gs))
	copy(levels, gs)
	return Marker{kind: markerLevels, levels: levels}
}

// IsZero reports whether no marker is configured.
func (m Marker) IsZero() bool {
	return m.kind == markerUnset
}

// MarkerFrom converts a decoded configuration value into a Marker. Accepted
// shapes are a string, a []string, and a []any whose elements are all
// strings (the shape yaml and toml decoders produce for sequences). Any
// other value is treated as absent, so resolution falls back to the
// default marker instead of failing.
func MarkerFrom(v any) Marker {
	switch val := v.(type) {
	case Marker:
		return val
	case string:
		return Glyph(val)
	case []string:
		return Glyphs(val...)
	case []any:
		levels := make([]string, 0, len(val))
		for _, e := range val {
			s, ok := e.(string)
			if !ok {
				return Marker{}
			}
			levels = append(levels, s)
		}
		return Glyphs(levels...)
	default:
		return Marker{}
	}
}

// ResolveMarker picks the glyph for one nesting depth. A single-glyph
// marker ignores depth entirely; a sequence is indexed by depth and
// saturates to its last element past the end. Unset markers, empty
// sequences, and negative depths never fail: unset and empty resolve to
// fallback, and negative depths are clamped to zero.
func ResolveMarker(depth int, m Marker, fallback string) string {
	if depth < 0 {
		depth = 0
	}
	switch m.kind {
	case markerSingle:
		return m.glyph
	case markerLevels:
		if len(m.levels) == 0 {
			return fallback
		}
		if depth < len(m.levels) {
			return m.levels[depth]
		}
		return m.levels[len(m.levels)-1]
	default:
		return fallback
	}
}
