package cmd

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/secondguess/cardsmith/internal/card"
	"github.com/secondguess/cardsmith/internal/config"
	"github.com/secondguess/cardsmith/internal/render"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview [text] [slot]",
	Short: "Render a card in memory and display it as ANSI art in the terminal",
	Long: `Preview renders a card exactly as generate would and displays it in the
terminal using truecolor half-block characters, so layout can be checked
without opening an image viewer.

Examples:
  cardsmith preview "Is it safe to eat?" 12
  cardsmith preview --response "Only on weekends." 47`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		scheme := cfg.Prompts
		if response, _ := cmd.Flags().GetBool("response"); response {
			scheme = cfg.Responses
		}

		engine, err := render.NewEngine(cfg, newLogger())
		if err != nil {
			return err
		}
		img, err := engine.Card(card.Card{
			Text:       args[0],
			Slot:       args[1],
			Background: scheme.Background.NRGBA(),
			Foreground: scheme.Text.NRGBA(),
		})
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Print(imageToAnsi(img, previewColumns(), cfg.Card))
		fmt.Println()
		return nil
	},
}

func init() {
	RootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("config", "c", "", "Path to a cardsmith.toml")
	previewCmd.Flags().BoolP("response", "r", false, "Use the response color scheme instead of the prompt scheme")
}

// previewColumns picks a preview width that fits the terminal, with a
// sensible default when stdout is not a terminal.
func previewColumns() int {
	cols := 48
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 8 {
		if width-4 < cols {
			cols = width - 4
		}
	}
	return cols
}

// imageToAnsi downscales the card and converts it to truecolor ANSI art.
// Each character cell shows two vertical pixels via the upper half block:
// the top pixel as foreground, the bottom as background.
func imageToAnsi(img image.Image, cols int, geom config.CardSection) string {
	rows := cols * geom.Height / geom.Width
	scaled := resize.Resize(uint(cols), uint(rows*2), img, resize.Lanczos3)

	var out strings.Builder
	for y := 0; y < rows*2; y += 2 {
		out.WriteString("  ")
		for x := 0; x < cols; x++ {
			top := previewColor(scaled, x, y)
			bottom := previewColor(scaled, x, y+1)
			tr, tg, tb := top.RGB255()
			br, bg, bb := bottom.RGB255()
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
				tr, tg, tb, br, bg, bb)
		}
		out.WriteString("\n")
	}
	return out.String()
}

// previewColor returns the pixel as a colorful.Color, black for
// out-of-bounds coordinates.
func previewColor(img image.Image, x, y int) colorful.Color {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return colorful.Color{}
	}
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return colorful.Color{}
	}
	return c
}
