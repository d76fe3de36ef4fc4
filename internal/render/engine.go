// Package render rasterizes cards onto fixed-size canvases.
package render

import (
	"fmt"
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/secondguess/cardsmith/internal/card"
	"github.com/secondguess/cardsmith/internal/config"
	"github.com/secondguess/cardsmith/internal/layout"
)

// Layout ratios, relative to card height. These match the printed deck and
// are not configurable.
const (
	textTopRatio     = 0.12
	bodyFontRatio    = 0.07
	labelFontRatio   = 0.04
	captionFontRatio = 0.10
	lineSpacing      = 1.2
)

// Engine renders cards for one configuration. The font file is read and
// parsed once at construction; font.Face values are derived per render call
// because a Face carries internal buffers and is not safe for concurrent
// use across the worker pool.
type Engine struct {
	cfg    *config.Config
	font   *sfnt.Font
	logger *log.Logger
}

// NewEngine parses the configured font. A missing or corrupt font file is
// recoverable: the embedded Go Bold face is substituted and a warning is
// logged, so a batch never aborts for want of a TTF on disk.
func NewEngine(cfg *config.Config, logger *log.Logger) (*Engine, error) {
	fnt, err := loadFont(cfg.Font.File, logger)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, font: fnt, logger: logger}, nil
}

func loadFont(path string, logger *log.Logger) (*sfnt.Font, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		fnt, perr := opentype.Parse(data)
		if perr == nil {
			return fnt, nil
		}
		err = perr
	}
	logger.Warn("falling back to embedded Go Bold", "font", path, "err", err)

	fnt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded fallback font: %w", err)
	}
	return fnt, nil
}

// face builds a new Face at the given pixel size. At 72 DPI one point is
// one pixel, so Size is the pixel height directly.
func (e *Engine) face(px int) (font.Face, error) {
	return opentype.NewFace(e.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func (e *Engine) bodySize() int    { return int(float64(e.cfg.Card.Height) * bodyFontRatio) }
func (e *Engine) labelSize() int   { return int(float64(e.cfg.Card.Height) * labelFontRatio) }
func (e *Engine) captionSize() int { return int(float64(e.cfg.Card.Height) * captionFontRatio) }
func (e *Engine) textTop() int     { return int(float64(e.cfg.Card.Height) * textTopRatio) }
func (e *Engine) textBoxWidth() int {
	return e.cfg.Card.Width - 2*e.cfg.Card.Margin
}

// Card renders one text card: solid background, wrapped body text
// top-aligned inside the text box, and the slot label right-aligned in the
// bottom margin.
func (e *Engine) Card(c card.Card) (image.Image, error) {
	bodyFace, err := e.face(e.bodySize())
	if err != nil {
		return nil, fmt.Errorf("creating body face: %w", err)
	}
	labelFace, err := e.face(e.labelSize())
	if err != nil {
		return nil, fmt.Errorf("creating label face: %w", err)
	}

	geom := e.cfg.Card
	dc := gg.NewContext(geom.Width, geom.Height)
	dc.SetColor(c.Background)
	dc.Clear()

	dc.SetColor(c.Foreground)
	dc.SetFontFace(bodyFace)
	y := float64(e.textTop())
	for _, line := range layout.WrapWords(bodyFace, c.Text, e.textBoxWidth()) {
		dc.DrawStringAnchored(line, float64(geom.Margin), y, 0, 1)
		y += float64(e.bodySize()) * lineSpacing
	}

	dc.SetFontFace(labelFace)
	dc.DrawStringAnchored(c.Slot,
		float64(geom.Width-geom.Margin), float64(geom.Height-geom.Margin), 1, 0)

	return dc.Image(), nil
}
