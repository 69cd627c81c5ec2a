package render

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func testTexture(w, h float64, glyph rune) *Texture {
	return &Texture{Width: w, Height: h, Glyph: glyph, Color: core.ColorWhite}
}

func TestContainerChildren(t *testing.T) {
	root := NewContainer()
	a := NewContainer()
	b := NewContainer()
	c := NewContainer()
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)

	root.BringToFront(a)
	if root.ChildIndex(a) != 2 || root.ChildIndex(b) != 0 {
		t.Errorf("BringToFront order wrong: a=%d b=%d", root.ChildIndex(a), root.ChildIndex(b))
	}

	root.SetChildIndex(a, -10)
	if root.ChildIndex(a) != 0 {
		t.Errorf("SetChildIndex should clamp to 0, got %d", root.ChildIndex(a))
	}

	if !root.RemoveChild(b) || b.Parent() != nil {
		t.Error("RemoveChild should detach b")
	}
	if root.RemoveChild(b) {
		t.Error("RemoveChild should report false for a non-child")
	}

	root.RemoveChildren()
	if len(root.Children()) != 0 || a.Parent() != nil {
		t.Error("RemoveChildren should detach everything")
	}
}

func TestAddChildReparents(t *testing.T) {
	first := NewContainer()
	second := NewContainer()
	child := NewContainer()

	first.AddChild(child)
	second.AddChild(child)

	if len(first.Children()) != 0 {
		t.Error("child should leave its previous parent")
	}
	if child.Parent() != second {
		t.Error("child should belong to its new parent")
	}
}

func TestFlattenAccumulatesTransform(t *testing.T) {
	root := NewContainer()
	group := NewContainer()
	group.X, group.Y = 100, 20
	group.Alpha = 0.5
	sprite := NewSprite(testTexture(10, 10, '#'))
	sprite.X, sprite.Y = 5, 5
	sprite.SetPivot(5, 5)
	group.AddChild(sprite)
	root.AddChild(group)

	hidden := NewSprite(testTexture(1, 1, 'x'))
	hidden.Visible = false
	root.AddChild(hidden)

	transparent := NewSprite(testTexture(1, 1, 'y'))
	transparent.Alpha = 0
	root.AddChild(transparent)

	ops := Flatten(root)
	if len(ops) != 1 {
		t.Fatalf("Flatten() returned %d ops, expected 1", len(ops))
	}
	op := ops[0]
	if op.X != 105 || op.Y != 25 {
		t.Errorf("op position = (%v, %v), expected (105, 25)", op.X, op.Y)
	}
	if op.Alpha != 0.5 {
		t.Errorf("op alpha = %v, expected 0.5", op.Alpha)
	}
	b := op.Bounds()
	if b.Left != 100 || b.Top != 20 || b.Right != 110 || b.Bottom != 30 {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestRasterize(t *testing.T) {
	root := NewContainer()
	block := NewSprite(testTexture(20, 20, '#'))
	block.X, block.Y = 10, 10
	root.AddChild(block)

	faded := NewSprite(testTexture(100, 100, '~'))
	faded.Alpha = 0.2
	root.AddChild(faded)

	dot := NewSprite(&Texture{Width: 2, Height: 2, Glyph: '7', Point: true})
	dot.X, dot.Y = 90, 90
	root.AddChild(dot)

	screen := core.NewScreen(10, 10)
	Rasterize(root, screen, Viewport{ViewW: 100, ViewH: 100, Cells: core.NewRect(0, 0, 10, 10)})

	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			if screen.Get(x, y) != '#' {
				t.Errorf("expected '#' at (%d, %d), got %q", x, y, screen.Get(x, y))
			}
		}
	}
	if screen.Get(0, 0) != ' ' || screen.Get(3, 3) != ' ' {
		t.Error("sprite should not bleed outside its box")
	}
	if screen.Get(5, 5) == '~' {
		t.Error("sprites below the alpha threshold should not be drawn")
	}
	if screen.Get(9, 9) != '7' {
		t.Errorf("point sprite should draw one cell at its center, got %q", screen.Get(9, 9))
	}
}

func TestRasterizeLabel(t *testing.T) {
	root := NewContainer()
	banner := NewSprite(&Texture{Width: 100, Height: 20, Glyph: ' ', Label: "HI"})
	banner.Y = 40
	root.AddChild(banner)

	screen := core.NewScreen(10, 10)
	Rasterize(root, screen, Viewport{ViewW: 100, ViewH: 100, Cells: core.NewRect(0, 0, 10, 10)})

	if screen.Row(5) != "    HI    " {
		t.Errorf("label row = %q", screen.Row(5))
	}
}

func TestFitViewport(t *testing.T) {
	v := FitViewport(144, 256, 80, 24)
	if v.Cells.H != 24 {
		t.Errorf("viewport height = %d, expected 24", v.Cells.H)
	}
	if v.Cells.W != 27 {
		t.Errorf("viewport width = %d, expected 27", v.Cells.W)
	}
	if v.Cells.X != (80-27)/2 {
		t.Errorf("viewport should be centered, X = %d", v.Cells.X)
	}

	narrow := FitViewport(144, 256, 10, 50)
	if narrow.Cells.W != 10 || narrow.Cells.H > 50 {
		t.Errorf("narrow viewport = %+v", narrow.Cells)
	}
}
