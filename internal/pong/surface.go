package pong

// Surface is the 2D drawing context a Game renders onto.
// Coordinates are playfield units; implementations decide how to project them.
type Surface interface {
	// ClearRect erases the given rectangle.
	ClearRect(x, y, w, h float64)

	// FillCircle draws a filled circle centred at (x, y).
	FillCircle(x, y, r float64)

	// FillRect draws a filled rectangle with its top-left corner at (x, y).
	FillRect(x, y, w, h float64)

	// FillText draws text with its baseline starting at (x, y).
	FillText(text string, x, y float64)
}
