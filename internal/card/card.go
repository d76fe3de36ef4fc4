package card

import "image/color"

// Card describes one renderable playing card: the body text, the slot id
// that becomes the output filename stem, and the color scheme.
type Card struct {
	Text       string
	Slot       string
	Background color.NRGBA
	Foreground color.NRGBA
}
