package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardsmith",
	Short: "Render printable Second Guess card decks from CSV files",
	Long: `Cardsmith renders the printable cards for the Second Guess party game:
prompt and response cards from CSV input, plus the card back and the
instruction card with its QR code. Output is one PNG per card at print
resolution.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newLogger builds the diagnostic logger shared by the render pipeline.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "cardsmith",
	})
}
