package molview

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the style configuration shared by the renderers.
// The YAML keys follow the style sheet layout:
//
//	bond:
//	  stroke: {width: 1.5, color: black}
//	  fill: {color: black}
//	  width-ratio: 6
//	  symbol-space: 0.3
//	  triple-dist: 0.15
//	  quad-dist: 0.13
//	highlight:
//	  radius: 0.3
//	  color: blue
type Config struct {
	Bond      BondConfig      `yaml:"bond"`
	Highlight HighlightConfig `yaml:"highlight"`
}

// BondConfig styles bond lines and stereo shapes.
//
// Lengths in model units (SymbolSpace) are multiplied by the view scale.
// Ratios (WidthRatio, TripleDist, QuadDist) are relative to the on-screen
// bond length. Stroke widths are in screen pixels.
type BondConfig struct {
	Stroke StrokeConfig `yaml:"stroke"`
	Fill   FillConfig   `yaml:"fill"`

	// WidthRatio is bond length divided by wedge base width.
	WidthRatio float64 `yaml:"width-ratio"`

	// SymbolSpace is the gap left at an end whose atom label is drawn.
	SymbolSpace float64 `yaml:"symbol-space"`

	// TripleDist is the spacing between lines of double and triple bonds.
	TripleDist float64 `yaml:"triple-dist"`

	// QuadDist is the spacing between lines of quadruple bonds.
	QuadDist float64 `yaml:"quad-dist"`

	// HatchCount is the number of rungs of a hatched bond and the number of
	// waves of a wavy bond.
	HatchCount int `yaml:"hatch-count"`
}

// StrokeConfig styles stroked lines.
type StrokeConfig struct {
	Width float64 `yaml:"width"`
	Color Color   `yaml:"color"`
}

// FillConfig styles filled shapes.
type FillConfig struct {
	Color Color `yaml:"color"`
}

// HighlightConfig styles the translucent halo drawn around selected bonds.
type HighlightConfig struct {
	// Radius is the halo half-width in model units.
	Radius  float64 `yaml:"radius"`
	Color   Color   `yaml:"color"`
	Opacity float64 `yaml:"opacity"`
}

// DefaultConfig returns the default bond style.
func DefaultConfig() Config {
	return Config{
		Bond: BondConfig{
			Stroke:      StrokeConfig{Width: 1.5, Color: Black},
			Fill:        FillConfig{Color: Black},
			WidthRatio:  6,
			SymbolSpace: 0.3,
			TripleDist:  0.15,
			QuadDist:    0.13,
			HatchCount:  7,
		},
		Highlight: HighlightConfig{
			Radius:  0.3,
			Color:   Blue,
			Opacity: 0.15,
		},
	}
}

// Validate reports every out-of-range setting, joined into one error.
// Each failure wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	b := c.Bond
	check(b.Stroke.Width > 0, "bond.stroke.width must be > 0, got %v", b.Stroke.Width)
	check(b.WidthRatio > 0, "bond.width-ratio must be > 0, got %v", b.WidthRatio)
	check(b.SymbolSpace >= 0, "bond.symbol-space must be >= 0, got %v", b.SymbolSpace)
	check(b.TripleDist >= 0, "bond.triple-dist must be >= 0, got %v", b.TripleDist)
	check(b.QuadDist >= 0, "bond.quad-dist must be >= 0, got %v", b.QuadDist)
	check(b.HatchCount >= 2, "bond.hatch-count must be >= 2, got %d", b.HatchCount)

	h := c.Highlight
	check(h.Radius >= 0, "highlight.radius must be >= 0, got %v", h.Radius)
	check(h.Opacity >= 0 && h.Opacity <= 1, "highlight.opacity must be in [0, 1], got %v", h.Opacity)

	return errors.Join(errs...)
}

// ParseConfig decodes YAML on top of DefaultConfig, so a document only
// needs the keys it changes. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML style file. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// Save writes the configuration as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
