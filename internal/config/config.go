package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFile is looked up in the working directory when no --config flag
// is given.
const DefaultFile = "cardsmith.toml"

// RGB is a TOML-friendly color triple, e.g. background = [0, 0, 0].
type RGB [3]uint8

// NRGBA returns the triple as a fully opaque color.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// Config holds everything the generator needs: card geometry, the font,
// the two CSV-backed decks, and the fixed-layout extras.
type Config struct {
	Card        CardSection        `toml:"card"`
	Font        FontSection        `toml:"font"`
	Prompts     DeckSection        `toml:"prompts"`
	Responses   DeckSection        `toml:"responses"`
	Back        BackSection        `toml:"back"`
	Instruction InstructionSection `toml:"instruction"`
	Extras      ExtrasSection      `toml:"extras"`
}

// CardSection is the shared canvas geometry, in pixels. DPI is only
// metadata written into the PNG so print software scales correctly.
type CardSection struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Margin int `toml:"margin"`
	DPI    int `toml:"dpi"`
}

type FontSection struct {
	File string `toml:"file"`
}

// DeckSection describes one CSV-backed deck of cards.
type DeckSection struct {
	CSV        string `toml:"csv"`
	OutputDir  string `toml:"output_dir"`
	Background RGB    `toml:"background"`
	Text       RGB    `toml:"text"`
}

type BackSection struct {
	Caption    []string `toml:"caption"`
	Background RGB      `toml:"background"`
	Text       RGB      `toml:"text"`
}

type InstructionSection struct {
	Title      string `toml:"title"`
	URL        string `toml:"url"`
	QRImage    string `toml:"qr_image"`
	Background RGB    `toml:"background"`
	Text       RGB    `toml:"text"`
}

type ExtrasSection struct {
	OutputDir string `toml:"output_dir"`
}

// Default returns the built-in configuration: poker-size cards at print
// resolution, black-on-white responses and white-on-black prompts.
func Default() *Config {
	return &Config{
		Card: CardSection{Width: 825, Height: 1125, Margin: 62, DPI: 1200},
		Font: FontSection{File: "Bitter-Bold.ttf"},
		Prompts: DeckSection{
			CSV:        "prompts-ai.csv",
			OutputDir:  "PROMPTS",
			Background: RGB{0, 0, 0},
			Text:       RGB{255, 255, 255},
		},
		Responses: DeckSection{
			CSV:        "responses-ai.csv",
			OutputDir:  "RESPONSES",
			Background: RGB{255, 255, 255},
			Text:       RGB{0, 0, 0},
		},
		Back: BackSection{
			Caption:    []string{"SECOND", "GUESS"},
			Background: RGB{0, 0, 0},
			Text:       RGB{255, 255, 255},
		},
		Instruction: InstructionSection{
			Title:      "SECOND GUESS",
			URL:        "https://secondguess.cards/how-to-play",
			QRImage:    "qr-code.png",
			Background: RGB{255, 255, 255},
			Text:       RGB{0, 0, 0},
		},
		Extras: ExtrasSection{OutputDir: "EXTRAS"},
	}
}

// Load reads the config file at path, layered over the defaults. An empty
// path means "use cardsmith.toml if present, otherwise just the defaults";
// an explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return cfg, nil
}
