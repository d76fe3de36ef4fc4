package render

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
	"os"
)

const metersPerInch = 0.0254

// EncodePNG writes img as a PNG with a pHYs chunk declaring the given DPI,
// so print software sizes the card physically instead of assuming screen
// resolution. The stdlib encoder has no hook for ancillary chunks, so the
// chunk is spliced in directly after IHDR.
func EncodePNG(w io.Writer, img image.Image, dpi int) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	raw := buf.Bytes()

	// 8-byte signature, then IHDR: 4 length + 4 type + 13 data + 4 CRC.
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	if _, err := w.Write(raw[:ihdrEnd]); err != nil {
		return err
	}
	if _, err := w.Write(physChunk(dpi)); err != nil {
		return err
	}
	_, err := w.Write(raw[ihdrEnd:])
	return err
}

func physChunk(dpi int) []byte {
	ppm := uint32(math.Round(float64(dpi) / metersPerInch))

	var body [13]byte // chunk type + 9 data bytes, CRC covers both
	copy(body[:4], "pHYs")
	binary.BigEndian.PutUint32(body[4:8], ppm)
	binary.BigEndian.PutUint32(body[8:12], ppm)
	body[12] = 1 // unit: meter

	chunk := make([]byte, 0, 4+len(body)+4)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, body[:]...)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(body[:]))
	return chunk
}

// SavePNG writes img to path at the configured DPI.
func (e *Engine) SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, img, e.cfg.Card.DPI); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
