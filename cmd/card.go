package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secondguess/cardsmith/internal/card"
	"github.com/secondguess/cardsmith/internal/config"
	"github.com/secondguess/cardsmith/internal/deck"
	"github.com/secondguess/cardsmith/internal/render"
)

// cardCmd represents the card command
var cardCmd = &cobra.Command{
	Use:   "card [text] [slot]",
	Short: "Render a single card to a PNG file",
	Long: `Card renders one card outside a batch run, which is handy for checking
layout changes against a specific body text.

Examples:
  cardsmith card "Is it safe to eat?" 12
  cardsmith card --response "Only on weekends." 47 --out proof.png`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, slot := args[0], args[1]
		if !deck.SafeSlot(slot) {
			return fmt.Errorf("slot id %q is not usable as a filename", slot)
		}

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
			Text:       text,
			Slot:       slot,
			Background: scheme.Background.NRGBA(),
			Foreground: scheme.Text.NRGBA(),
		})
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = slot + ".png"
		}
		if err := engine.SavePNG(img, out); err != nil {
			return err
		}
		fmt.Println("Card written to:", out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)

	cardCmd.Flags().StringP("config", "c", "", "Path to a cardsmith.toml")
	cardCmd.Flags().StringP("out", "o", "", "Output path (defaults to <slot>.png)")
	cardCmd.Flags().BoolP("response", "r", false, "Use the response color scheme instead of the prompt scheme")
}
