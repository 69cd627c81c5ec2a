// Package render holds the display tree shared by the game and its front ends:
// a typed texture table loaded once from an atlas manifest, and sprite and
// container nodes that platforms walk to draw a frame.
package render

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// TextureID names every texture the game uses.
type TextureID int

const (
	TextureDayBackground TextureID = iota
	TextureNightBackground
	TextureFloor
	TextureBird1
	TextureBird2
	TextureBird3
	TexturePipeUp
	TexturePipeDown
	TextureDigit0
	TextureDigit1
	TextureDigit2
	TextureDigit3
	TextureDigit4
	TextureDigit5
	TextureDigit6
	TextureDigit7
	TextureDigit8
	TextureDigit9
	TextureGetReady
	TextureGameOver

	textureCount
)

// textureNames maps each TextureID to its frame name in the atlas manifest.
var textureNames = [textureCount]string{
	TextureDayBackground:   "day-bg.png",
	TextureNightBackground: "night-bg.png",
	TextureFloor:           "floor.png",
	TextureBird1:           "yellow-bird-1.png",
	TextureBird2:           "yellow-bird-2.png",
	TextureBird3:           "yellow-bird-3.png",
	TexturePipeUp:          "up-green-pipe.png",
	TexturePipeDown:        "down-green-pipe.png",
	TextureDigit0:          "score-0.png",
	TextureDigit1:          "score-1.png",
	TextureDigit2:          "score-2.png",
	TextureDigit3:          "score-3.png",
	TextureDigit4:          "score-4.png",
	TextureDigit5:          "score-5.png",
	TextureDigit6:          "score-6.png",
	TextureDigit7:          "score-7.png",
	TextureDigit8:          "score-8.png",
	TextureDigit9:          "score-9.png",
	TextureGetReady:        "get-ready.png",
	TextureGameOver:        "game-over.png",
}

// String returns the atlas frame name.
func (id TextureID) String() string {
	if id < 0 || id >= textureCount {
		return fmt.Sprintf("TextureID(%d)", int(id))
	}
	return textureNames[id]
}

// DigitTexture returns the texture for a decimal digit 0-9.
func DigitTexture(d int) TextureID {
	return TextureDigit0 + TextureID(core.Clamp(d, 0, 9))
}

// Texture is one frame of the atlas.
// Width and Height are in world pixels. Glyph, Color, Stride, Point and
// Label describe how terminal front ends draw it; Fill is the flat color
// used by pixel front ends.
type Texture struct {
	ID     TextureID
	Name   string
	Width  float64
	Height float64
	Glyph  rune
	Color  core.Color
	Fill   color.RGBA
	Stride int    // draw the glyph only on every Stride-th cell; 0 draws all
	Point  bool   // draw as a single cell at the sprite's center
	Label  string // text centered over the sprite
}
