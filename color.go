package molview

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Color is a configuration color. In YAML it is written as an SVG/CSS color
// name ("black", "steelblue") or a hex string ("#00f", "#0000ff80").
type Color gg.RGBA

// Common colors used by the default configuration.
var (
	Black = Color(gg.Black)
	Blue  = Color(gg.Blue)
)

// ParseColor parses a color name or a hex string.
// Names are matched case-insensitively against the SVG 1.1 color keywords;
// "none" and "transparent" are fully transparent.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if s[0] == '#' {
		return parseHexColor(s)
	}

	name := strings.ToLower(s)
	switch name {
	case "none", "transparent":
		return Color(gg.Transparent), nil
	}
	if c, ok := colornames.Map[name]; ok {
		return Color(gg.FromColor(c)), nil
	}
	return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error.
// It is intended for package-level defaults.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(s string) (Color, error) {
	hex := s[1:]
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: hex color %q must have 3, 4, 6 or 8 digits", ErrInvalidColor, s)
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return Color{}, fmt.Errorf("%w: hex color %q has invalid digit %q", ErrInvalidColor, s, c)
		}
	}
	return Color(gg.Hex(hex)), nil
}

// RGBA returns the color as a gg.RGBA.
func (c Color) RGBA() gg.RGBA {
	return gg.RGBA(c)
}

// WithAlpha returns the color with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) gg.RGBA {
	rgba := gg.RGBA(c)
	rgba.A *= a
	return rgba
}

// String returns the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) String() string {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrInvalidColor, node.Line, err)
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
