package render

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// MinVisibleAlpha is the opacity below which terminal cells are not drawn.
// Cells cannot blend, so crossfades switch at the midpoint.
const MinVisibleAlpha = 0.5

// Viewport maps a world of ViewW×ViewH pixels onto a rectangle of cells.
type Viewport struct {
	ViewW, ViewH float64
	Cells        core.Rect
}

// FitViewport returns the largest viewport with a square-pixel look
// (terminal cells are roughly twice as tall as wide) centered on a
// screenW×screenH terminal.
func FitViewport(viewW, viewH float64, screenW, screenH int) Viewport {
	h := screenH
	w := int(math.Round(float64(h) * viewW / viewH * 2))
	if w > screenW {
		w = screenW
		h = int(math.Round(float64(w) * viewH / viewW / 2))
	}
	w = core.Max(w, 1)
	h = core.Max(h, 1)
	return Viewport{
		ViewW: viewW,
		ViewH: viewH,
		Cells: core.NewRect((screenW-w)/2, (screenH-h)/2, w, h),
	}
}

func (v Viewport) scale() (float64, float64) {
	return float64(v.Cells.W) / v.ViewW, float64(v.Cells.H) / v.ViewH
}

// cellSpan converts a world span to a half-open cell range, at least one
// cell wide when the span is not empty.
func cellSpan(lo, hi, scale float64) (int, int) {
	a := int(math.Floor(lo*scale + 0.5))
	b := int(math.Floor(hi*scale + 0.5))
	if b <= a && hi > lo {
		b = a + 1
	}
	return a, b
}

// Rasterize draws the tree rooted at root into dst through the viewport.
// Sprites are clipped to the viewport.
func Rasterize(root *Node, dst *core.Screen, v Viewport) {
	sx, sy := v.scale()
	clip := v.Cells

	put := func(x, y int, c core.Cell) {
		if x < 0 || y < 0 || x >= clip.W || y >= clip.H {
			return
		}
		dst.SetCell(clip.X+x, clip.Y+y, c)
	}

	for _, op := range Flatten(root) {
		if op.Alpha < MinVisibleAlpha {
			continue
		}
		tex := op.Texture
		b := op.Bounds()
		cell := core.Cell{Rune: tex.Glyph, Color: tex.Color}

		if tex.Point {
			cx := int(math.Floor((b.Left + b.Right) / 2 * sx))
			cy := int(math.Floor((b.Top + b.Bottom) / 2 * sy))
			put(cx, cy, cell)
			continue
		}

		x0, x1 := cellSpan(b.Left, b.Right, sx)
		y0, y1 := cellSpan(b.Top, b.Bottom, sy)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if tex.Stride > 1 && (x*7+y*13)%tex.Stride != 0 {
					continue
				}
				put(x, y, cell)
			}
		}

		if tex.Label != "" {
			label := []rune(tex.Label)
			lx := (x0+x1)/2 - len(label)/2
			ly := (y0 + y1) / 2
			for i, r := range label {
				put(lx+i, ly, core.Cell{Rune: r, Color: tex.Color})
			}
		}
	}
}
