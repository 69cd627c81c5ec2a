package render

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestDefaultAtlasIsComplete(t *testing.T) {
	a, err := DefaultAtlas()
	if err != nil {
		t.Fatalf("DefaultAtlas() failed: %v", err)
	}

	for id := TextureID(0); id < textureCount; id++ {
		tex := a.Texture(id)
		if tex == nil {
			t.Fatalf("texture %v missing", id)
		}
		if tex.ID != id || tex.Name != id.String() {
			t.Errorf("texture %v has ID %v name %q", id, tex.ID, tex.Name)
		}
	}

	bird := a.Texture(TextureBird1)
	if bird.Width != 17 || bird.Height != 12 {
		t.Errorf("bird size = %vx%v, expected 17x12", bird.Width, bird.Height)
	}
	if bird.Color != core.ColorBrightYellow {
		t.Errorf("bird color = %v, expected bright yellow", bird.Color)
	}
	if !a.Texture(TextureDigit7).Point || a.Texture(TextureDigit7).Glyph != '7' {
		t.Error("digit textures should be single-cell glyphs")
	}
	for id := TextureID(0); id < textureCount; id++ {
		if a.Texture(id) == nil {
			t.Errorf("no texture for %v", id)
		}
	}
}

func TestLoadAtlasMissingTexture(t *testing.T) {
	data := []byte(`
frames:
  - name: day-bg.png
    width: 144
    height: 256
`)
	_, err := LoadAtlas(data)
	if !errors.Is(err, ErrMissingTexture) {
		t.Errorf("LoadAtlas() error = %v, expected ErrMissingTexture", err)
	}
}

func TestLoadAtlasUnknownTexture(t *testing.T) {
	data := []byte(`
frames:
  - name: red-bird-1.png
    width: 17
    height: 12
`)
	_, err := LoadAtlas(data)
	if !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("LoadAtlas() error = %v, expected ErrUnknownTexture", err)
	}
}

func TestLoadAtlasRejectsBadFrames(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero size", "frames:\n  - {name: floor.png, width: 0, height: 56}\n"},
		{"bad color", "frames:\n  - {name: floor.png, width: 168, height: 56, color: chartreuse}\n"},
		{"bad fill", "frames:\n  - {name: floor.png, width: 168, height: 56, fill: \"orange\"}\n"},
		{"bad yaml", "frames: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadAtlas([]byte(tc.data)); err == nil {
				t.Error("LoadAtlas() should fail")
			}
		})
	}
}

func TestDigitTexture(t *testing.T) {
	if DigitTexture(0) != TextureDigit0 || DigitTexture(9) != TextureDigit9 {
		t.Error("DigitTexture should map 0-9 onto digit textures")
	}
	if DigitTexture(42) != TextureDigit9 {
		t.Error("DigitTexture should clamp out-of-range digits")
	}
}
