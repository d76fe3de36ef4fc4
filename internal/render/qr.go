package render

import (
	"image"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// qrImage loads the pre-rendered QR graphic from disk. When the file is
// missing or unreadable a fresh code is generated from the instruction URL
// instead; only if that also fails does the instruction card go out without
// a QR. Both fallbacks log and never abort the batch.
func (e *Engine) qrImage(side int) image.Image {
	img, err := imaging.Open(e.cfg.Instruction.QRImage)
	if err == nil {
		return img
	}
	e.logger.Warn("qr image unavailable, generating from url",
		"path", e.cfg.Instruction.QRImage, "err", err)

	q, err := qrcode.New(e.cfg.Instruction.URL, qrcode.Medium)
	if err != nil {
		e.logger.Warn("qr generation failed, rendering card without graphic", "err", err)
		return nil
	}
	return q.Image(side)
}
