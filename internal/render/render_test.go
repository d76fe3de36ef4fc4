package render

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secondguess/cardsmith/internal/card"
	"github.com/secondguess/cardsmith/internal/config"
)

// testEngine builds an engine on the embedded fallback font so results do
// not depend on fonts installed in the test environment.
func testEngine(t *testing.T) (*Engine, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.Font.File = filepath.Join(t.TempDir(), "no-such-font.ttf")
	cfg.Instruction.QRImage = filepath.Join(t.TempDir(), "no-such-qr.png")

	engine, err := NewEngine(cfg, log.New(io.Discard))
	require.NoError(t, err)
	return engine, cfg
}

func promptCard(text, slot string) card.Card {
	return card.Card{
		Text:       text,
		Slot:       slot,
		Background: color.NRGBA{A: 0xff},
		Foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

func TestCardDimensions(t *testing.T) {
	engine, cfg := testEngine(t)

	img, err := engine.Card(promptCard("Is it safe to eat?", "12"))
	require.NoError(t, err)

	assert.Equal(t, cfg.Card.Width, img.Bounds().Dx())
	assert.Equal(t, cfg.Card.Height, img.Bounds().Dy())
}

func TestCardDeterministic(t *testing.T) {
	engine, cfg := testEngine(t)
	c := promptCard("Is it safe to eat?", "12")

	encode := func() []byte {
		img, err := engine.Card(c)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, EncodePNG(&buf, img, cfg.Card.DPI))
		return buf.Bytes()
	}

	assert.True(t, bytes.Equal(encode(), encode()),
		"rendering the same card twice must be byte-for-byte identical")
}

func TestCardEmptyText(t *testing.T) {
	engine, cfg := testEngine(t)

	img, err := engine.Card(promptCard("", "7"))
	require.NoError(t, err)

	// Body box stays untouched; the label still renders.
	assert.Equal(t, color.NRGBA{A: 0xff},
		color.NRGBAModel.Convert(img.At(cfg.Card.Width/2, cfg.Card.Height/2)))
}

func TestCardLabelBottomRight(t *testing.T) {
	engine, cfg := testEngine(t)

	img, err := engine.Card(promptCard("", "12"))
	require.NoError(t, err)

	// The label paints foreground pixels somewhere in the bottom-right
	// margin region.
	bg := color.NRGBA{A: 0xff}
	found := false
	for y := cfg.Card.Height * 3 / 4; y < cfg.Card.Height && !found; y++ {
		for x := cfg.Card.Width / 2; x < cfg.Card.Width && !found; x++ {
			if color.NRGBAModel.Convert(img.At(x, y)) != bg {
				found = true
			}
		}
	}
	assert.True(t, found, "label %q should be drawn near the bottom-right corner", "12")
}

func TestBackDimensions(t *testing.T) {
	engine, cfg := testEngine(t)

	img, err := engine.Back()
	require.NoError(t, err)
	assert.Equal(t, cfg.Card.Width, img.Bounds().Dx())
	assert.Equal(t, cfg.Card.Height, img.Bounds().Dy())
}

func TestInstructionWithoutQRAsset(t *testing.T) {
	engine, cfg := testEngine(t)
	// Long URL forces the character-granularity wrap path.
	cfg.Instruction.URL = "https://secondguess.cards/how-to-play/extremely/long/path/that/cannot/fit/on/one/line"

	img, err := engine.Instruction()
	require.NoError(t, err)
	assert.Equal(t, cfg.Card.Width, img.Bounds().Dx())
	assert.Equal(t, cfg.Card.Height, img.Bounds().Dy())
}

func TestEncodePNGWritesPhysChunk(t *testing.T) {
	engine, cfg := testEngine(t)
	img, err := engine.Card(promptCard("hi", "1"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img, cfg.Card.DPI))
	data := buf.Bytes()

	idx := bytes.Index(data, []byte("pHYs"))
	require.Positive(t, idx, "encoded PNG must carry a pHYs chunk")

	ppm := binary.BigEndian.Uint32(data[idx+4 : idx+8])
	assert.Equal(t, uint32(47244), ppm, "1200 DPI is 47244 pixels per meter")

	// The spliced chunk must not break decoding.
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, cfg.Card.Width, decoded.Bounds().Dx())
	assert.Equal(t, cfg.Card.Height, decoded.Bounds().Dy())
}
