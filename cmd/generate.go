package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/secondguess/cardsmith/internal/config"
	"github.com/secondguess/cardsmith/internal/deck"
	"github.com/secondguess/cardsmith/internal/render"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the full deck: prompts, responses, card back, and instructions",
	Long: `Generate reads the prompt and response CSVs and renders one PNG per row
into the configured output directories, in parallel across the available
CPU cores. It also renders the fixed extras: the card back and the
instruction card with its QR code.

Paths, colors, and geometry come from cardsmith.toml when present and fall
back to the built-in deck layout otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		logger := newLogger()
		engine, err := render.NewEngine(cfg, logger)
		if err != nil {
			return err
		}

		gen := &deck.Generator{Engine: engine, Logger: logger}
		for _, d := range []config.DeckSection{cfg.Prompts, cfg.Responses} {
			if err := gen.Generate(cmd.Context(), d); err != nil {
				return fmt.Errorf("generating %s: %w", d.OutputDir, err)
			}
		}

		if err := os.MkdirAll(cfg.Extras.OutputDir, 0o755); err != nil {
			return err
		}
		back, err := engine.Back()
		if err != nil {
			return err
		}
		if err := engine.SavePNG(back, filepath.Join(cfg.Extras.OutputDir, "back.png")); err != nil {
			return err
		}
		instruction, err := engine.Instruction()
		if err != nil {
			return err
		}
		if err := engine.SavePNG(instruction, filepath.Join(cfg.Extras.OutputDir, "instructions.png")); err != nil {
			return err
		}

		fmt.Printf("Deck written to %s, %s, and %s\n",
			cfg.Prompts.OutputDir, cfg.Responses.OutputDir, cfg.Extras.OutputDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("config", "c", "", "Path to a cardsmith.toml (defaults to ./cardsmith.toml when present)")
}
