package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/secondguess/cardsmith/internal/config"
	"github.com/secondguess/cardsmith/internal/validator"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration, CSV inputs, and assets before a run",
	Long: `Check verifies that the card geometry is sane, the CSV inputs are
readable and well-formed, and the font and QR assets are in place. Missing
assets the renderer can recover from (fallback font, generated QR, skipped
rows) are reported as warnings rather than errors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		results := validator.New(cfg).Run()

		fmt.Println("Check Results:")
		fmt.Println("--------------")

		if len(results.Errors) == 0 {
			color.Green("✅ Inputs are ready to generate.")
		} else {
			color.Red("❌ %d problem(s) would stop generation:", len(results.Errors))
			for i, e := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println()
			color.Yellow("Warnings:")
			for i, w := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, w)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("check failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("config", "c", "", "Path to a cardsmith.toml")
}
