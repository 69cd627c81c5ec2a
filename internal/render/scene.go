package render

// Scene is implemented by games that expose their display tree to
// pixel front ends.
type Scene interface {
	// Scene returns the root of the display tree.
	Scene() *Node
	// ViewSize returns the world size in pixels.
	ViewSize() (w, h float64)
}
