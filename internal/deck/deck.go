// Package deck loads card rows from CSV files and fans the renders out
// across a worker pool.
package deck

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/secondguess/cardsmith/internal/card"
	"github.com/secondguess/cardsmith/internal/config"
	"github.com/secondguess/cardsmith/internal/render"
)

// Row is one card's worth of CSV input: column 0 is the body text, column 1
// the slot id. Extra columns are ignored.
type Row struct {
	Text string
	Slot string
}

// Load reads a UTF-8 CSV with a header row and maps the remaining rows to
// Rows. Rows with fewer than two fields are skipped silently per the input
// contract; they are not an error.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s has no header row", path)
	}

	var rows []Row
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		rows = append(rows, Row{Text: rec[0], Slot: rec[1]})
	}
	return rows, nil
}

// SafeSlot reports whether a slot id can be used as an output filename
// stem. Ids are untrusted CSV input; anything that could escape the output
// directory is rejected.
func SafeSlot(slot string) bool {
	if slot == "" || slot == "." || slot == ".." {
		return false
	}
	return !strings.ContainsAny(slot, `/\`)
}

// Generator renders decks. Workers caps the pool size; zero means one
// worker per CPU.
type Generator struct {
	Engine  *render.Engine
	Logger  *log.Logger
	Workers int
}

func (g *Generator) workers() int {
	if g.Workers > 0 {
		return g.Workers
	}
	return runtime.NumCPU()
}

// Generate renders every row of the deck's CSV into its output directory,
// one <slot>.png per row. Renders are independent and run in parallel with
// no completion-order guarantee; the first error cancels the remainder.
func (g *Generator) Generate(ctx context.Context, d config.DeckSection) error {
	rows, err := Load(d.CSV)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.OutputDir, 0o755); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers())

	for _, row := range rows {
		if !SafeSlot(row.Slot) {
			g.Logger.Warn("skipping row with unusable slot id", "slot", row.Slot, "csv", d.CSV)
			continue
		}
		row := row
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := g.Engine.Card(card.Card{
				Text:       row.Text,
				Slot:       row.Slot,
				Background: d.Background.NRGBA(),
				Foreground: d.Text.NRGBA(),
			})
			if err != nil {
				return fmt.Errorf("rendering card %s: %w", row.Slot, err)
			}
			return g.Engine.SavePNG(img, filepath.Join(d.OutputDir, row.Slot+".png"))
		})
	}
	return eg.Wait()
}
