package render

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

//go:embed atlas.yaml
var defaultAtlasYAML []byte

var (
	// ErrMissingTexture is returned when the manifest lacks a frame the game needs.
	ErrMissingTexture = errors.New("render: missing texture")
	// ErrUnknownTexture is returned when the manifest contains a frame the game does not know.
	ErrUnknownTexture = errors.New("render: unknown texture")
)

// Atlas is the texture table, populated once at startup.
type Atlas struct {
	textures [textureCount]*Texture
}

type frameSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
	Fill   string  `yaml:"fill"`
	Stride int     `yaml:"stride"`
	Point  bool    `yaml:"point"`
	Label  string  `yaml:"label"`
}

type manifest struct {
	Frames []frameSpec `yaml:"frames"`
}

// LoadAtlas parses a YAML atlas manifest. Every TextureID must be present.
func LoadAtlas(data []byte) (*Atlas, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("render: cannot parse atlas: %w", err)
	}

	byName := make(map[string]TextureID, textureCount)
	for id, name := range textureNames {
		byName[name] = TextureID(id)
	}

	a := &Atlas{}
	for _, f := range m.Frames {
		id, ok := byName[f.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTexture, f.Name)
		}
		tex, err := f.texture(id)
		if err != nil {
			return nil, err
		}
		a.textures[id] = tex
	}

	var missing []string
	for id, tex := range a.textures {
		if tex == nil {
			missing = append(missing, textureNames[id])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingTexture, strings.Join(missing, ", "))
	}
	return a, nil
}

// DefaultAtlas loads the embedded manifest.
func DefaultAtlas() (*Atlas, error) {
	return LoadAtlas(defaultAtlasYAML)
}

// Texture returns the texture for id. The atlas is complete by construction.
func (a *Atlas) Texture(id TextureID) *Texture {
	return a.textures[id]
}


func (f frameSpec) texture(id TextureID) (*Texture, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("render: frame %q has invalid size %vx%v", f.Name, f.Width, f.Height)
	}

	glyph := ' '
	if f.Glyph != "" {
		r, _ := utf8.DecodeRuneInString(f.Glyph)
		glyph = r
	}

	c := core.ColorDefault
	if f.Color != "" {
		parsed, err := core.ParseColor(f.Color)
		if err != nil {
			return nil, fmt.Errorf("render: frame %q: %w", f.Name, err)
		}
		c = parsed
	}

	fill, err := parseHex(f.Fill)
	if err != nil {
		return nil, fmt.Errorf("render: frame %q: %w", f.Name, err)
	}

	return &Texture{
		ID:     id,
		Name:   f.Name,
		Width:  f.Width,
		Height: f.Height,
		Glyph:  glyph,
		Color:  c,
		Fill:   fill,
		Stride: f.Stride,
		Point:  f.Point,
		Label:  f.Label,
	}, nil
}

// parseHex parses "#rrggbb"; an empty string is opaque white.
func parseHex(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, nil
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid fill %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
