package tui

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
)

// ScreenSurface implements pong.Surface on a character screen.
// Playfield coordinates are scaled independently on each axis into the
// screen area reserved for the field.
type ScreenSurface struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
	area   core.Rect
}

var _ pong.Surface = (*ScreenSurface)(nil)

// NewScreenSurface maps a fieldW x fieldH playfield onto area of screen.
func NewScreenSurface(screen *core.Screen, fieldW, fieldH float64, area core.Rect) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		fieldW: fieldW,
		fieldH: fieldH,
		area:   area,
	}
}

// SetArea changes the screen region the playfield is projected onto.
func (s *ScreenSurface) SetArea(area core.Rect) {
	s.area = area
}

// Area returns the screen region the playfield is projected onto.
func (s *ScreenSurface) Area() core.Rect {
	return s.area
}

// col converts a playfield x to a screen column.
func (s *ScreenSurface) col(x float64) int {
	return s.area.X + int(math.Floor(x*float64(s.area.W)/s.fieldW))
}

// row converts a playfield y to a screen row.
func (s *ScreenSurface) row(y float64) int {
	return s.area.Y + int(math.Floor(y*float64(s.area.H)/s.fieldH))
}

// cells converts a playfield rectangle to the covering cell rectangle,
// at least one cell in each direction, clipped to the field area.
func (s *ScreenSurface) cells(x, y, w, h float64) core.Rect {
	x0, y0 := s.col(x), s.row(y)
	x1 := s.area.X + int(math.Ceil((x+w)*float64(s.area.W)/s.fieldW))
	y1 := s.area.Y + int(math.Ceil((y+h)*float64(s.area.H)/s.fieldH))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	return s.clip(core.NewRect(x0, y0, x1-x0, y1-y0))
}

// clip intersects r with the field area.
func (s *ScreenSurface) clip(r core.Rect) core.Rect {
	x0 := max(r.X, s.area.X)
	y0 := max(r.Y, s.area.Y)
	x1 := min(r.Right(), s.area.Right())
	y1 := min(r.Bottom(), s.area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// ClearRect blanks the cells covering the given playfield rectangle.
func (s *ScreenSurface) ClearRect(x, y, w, h float64) {
	s.screen.ClearRect(s.cells(x, y, w, h))
}

// FillRect draws a solid block, cyan on the left half of the field and
// magenta on the right, so each player's paddle keeps its own colour.
func (s *ScreenSurface) FillRect(x, y, w, h float64) {
	color := core.ColorBrightCyan
	if x+w/2 > s.fieldW/2 {
		color = core.ColorBrightMagenta
	}
	s.screen.DrawRect(s.cells(x, y, w, h), PaddleChar, color)
}

// FillCircle marks every cell whose centre falls inside the circle.
// The centre cell is always marked so tiny projections stay visible.
func (s *ScreenSurface) FillCircle(x, y, r float64) {
	bounds := s.cells(x-r, y-r, 2*r, 2*r)
	cellW := s.fieldW / float64(max(1, s.area.W))
	cellH := s.fieldH / float64(max(1, s.area.H))

	for cy := bounds.Y; cy < bounds.Bottom(); cy++ {
		for cx := bounds.X; cx < bounds.Right(); cx++ {
			fx := (float64(cx-s.area.X) + 0.5) * cellW
			fy := (float64(cy-s.area.Y) + 0.5) * cellH
			if (fx-x)*(fx-x)+(fy-y)*(fy-y) <= r*r {
				s.screen.Set(cx, cy, BallChar, core.ColorBrightYellow)
			}
		}
	}

	if cx, cy := s.col(x), s.row(y); s.area.Contains(cx, cy) {
		s.screen.Set(cx, cy, BallChar, core.ColorBrightYellow)
	}
}

// FillText writes text starting at the cell holding (x, y).
// Characters past the field's right edge are dropped.
func (s *ScreenSurface) FillText(text string, x, y float64) {
	cx, cy := s.col(x), s.row(y)
	if cy < s.area.Y || cy >= s.area.Bottom() || cx < s.area.X || cx >= s.area.Right() {
		return
	}
	runes := []rune(text)
	if n := s.area.Right() - cx; len(runes) > n {
		runes = runes[:n]
	}
	s.screen.DrawText(cx, cy, string(runes), core.ColorWhite)
}
