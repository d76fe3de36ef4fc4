package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/secondguess/cardsmith/internal/layout"
)

// Back renders the card back: the fixed caption in the caption-size font,
// same box and margin geometry as the text cards.
func (e *Engine) Back() (image.Image, error) {
	face, err := e.face(e.captionSize())
	if err != nil {
		return nil, fmt.Errorf("creating caption face: %w", err)
	}

	geom := e.cfg.Card
	dc := gg.NewContext(geom.Width, geom.Height)
	dc.SetColor(e.cfg.Back.Background.NRGBA())
	dc.Clear()

	dc.SetColor(e.cfg.Back.Text.NRGBA())
	dc.SetFontFace(face)
	y := float64(e.textTop())
	for _, line := range e.cfg.Back.Caption {
		dc.DrawStringAnchored(line, float64(geom.Margin), y, 0, 1)
		y += float64(e.captionSize()) * lineSpacing
	}

	return dc.Image(), nil
}

// Instruction renders the how-to-play card: the QR graphic centered on the
// card, the title block a fixed offset above it, and the URL below it. The
// URL is an unbreakable token, so when it overflows the text box it is
// wrapped by character rather than by word. A missing QR graphic degrades
// to a card without it.
func (e *Engine) Instruction() (image.Image, error) {
	titleFace, err := e.face(e.captionSize())
	if err != nil {
		return nil, fmt.Errorf("creating title face: %w", err)
	}
	urlFace, err := e.face(e.labelSize())
	if err != nil {
		return nil, fmt.Errorf("creating url face: %w", err)
	}

	ins := e.cfg.Instruction
	geom := e.cfg.Card
	dc := gg.NewContext(geom.Width, geom.Height)
	dc.SetColor(ins.Background.NRGBA())
	dc.Clear()
	dc.SetColor(ins.Text.NRGBA())

	// The QR sits in a centered square half the card wide; title and URL
	// positions are derived from that square whether or not the graphic
	// actually loaded.
	qrSide := geom.Width / 2
	qrX := (geom.Width - qrSide) / 2
	qrY := (geom.Height - qrSide) / 2

	if qr := e.qrImage(qrSide); qr != nil {
		dc.DrawImage(imaging.Resize(qr, qrSide, qrSide, imaging.Lanczos), qrX, qrY)
	}

	// Title block: one word per line, centered, ending one margin above
	// the QR square.
	dc.SetFontFace(titleFace)
	words := strings.Fields(ins.Title)
	lineH := float64(e.captionSize()) * lineSpacing
	y := float64(qrY-geom.Margin) - lineH*float64(len(words))
	for _, word := range words {
		dc.DrawStringAnchored(word, float64(geom.Width)/2, y, 0.5, 1)
		y += lineH
	}

	// URL below the QR square, centered, char-wrapped only when too wide.
	dc.SetFontFace(urlFace)
	lines := []string{ins.URL}
	if font.MeasureString(urlFace, ins.URL).Ceil() > e.textBoxWidth() {
		lines = layout.WrapRunes(urlFace, ins.URL, e.textBoxWidth())
	}
	y = float64(qrY + qrSide + geom.Margin)
	for _, line := range lines {
		dc.DrawStringAnchored(line, float64(geom.Width)/2, y, 0.5, 1)
		y += float64(e.labelSize()) * lineSpacing
	}

	return dc.Image(), nil
}
