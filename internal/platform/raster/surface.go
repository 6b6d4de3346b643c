// Package raster renders the Pong playfield into images with fogleman/gg.
// It backs headless renders and in-game screenshots.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Options controls how the playfield is rasterised.
type Options struct {
	// Scale is pixels per playfield unit. Zero means 1.
	Scale float64

	// FontPath is an optional TrueType font for the score boards.
	// Empty uses gg's built-in bitmap face.
	FontPath string

	// FontSize is the font size in points when FontPath is set. Zero means 30.
	FontSize float64

	// Background and Foreground default to black and white.
	Background color.Color
	Foreground color.Color
}

// Surface implements pong.Surface on a gg drawing context.
type Surface struct {
	dc    *gg.Context
	scale float64
	bg    color.Color
	fg    color.Color
}

var _ pong.Surface = (*Surface)(nil)

// New creates a surface sized for a fieldW x fieldH playfield.
func New(fieldW, fieldH float64, opts Options) (*Surface, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 30
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.Foreground == nil {
		opts.Foreground = color.White
	}

	w := int(fieldW*opts.Scale + 0.5)
	h := int(fieldH*opts.Scale + 0.5)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid image size %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	if opts.FontPath != "" {
		if err := dc.LoadFontFace(opts.FontPath, opts.FontSize*opts.Scale); err != nil {
			return nil, fmt.Errorf("raster: cannot load font %s: %w", opts.FontPath, err)
		}
	}

	return &Surface{
		dc:    dc,
		scale: opts.Scale,
		bg:    opts.Background,
		fg:    opts.Foreground,
	}, nil
}

// ClearRect paints the rectangle with the background colour.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.dc.SetColor(s.bg)
	s.dc.DrawRectangle(x*s.scale, y*s.scale, w*s.scale, h*s.scale)
	s.dc.Fill()
}

// FillCircle paints a filled circle in the foreground colour.
func (s *Surface) FillCircle(x, y, r float64) {
	s.dc.SetColor(s.fg)
	s.dc.DrawCircle(x*s.scale, y*s.scale, r*s.scale)
	s.dc.Fill()
}

// FillRect paints a filled rectangle in the foreground colour.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.SetColor(s.fg)
	s.dc.DrawRectangle(x*s.scale, y*s.scale, w*s.scale, h*s.scale)
	s.dc.Fill()
}

// FillText draws text with its baseline at (x, y).
func (s *Surface) FillText(text string, x, y float64) {
	s.dc.SetColor(s.fg)
	s.dc.DrawString(text, x*s.scale, y*s.scale)
}

// Image returns the rendered frame.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the current frame to path, creating parent directories.
func (s *Surface) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raster: cannot create directory for %s: %w", path, err)
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: cannot write %s: %w", path, err)
	}
	return nil
}
