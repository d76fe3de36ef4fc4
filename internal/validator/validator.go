// Package validator checks a configuration and its input files before a
// batch run. Errors would stop generation; warnings are conditions the
// renderer recovers from (fallback font, generated QR, skipped rows).
package validator

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/secondguess/cardsmith/internal/config"
	"github.com/secondguess/cardsmith/internal/deck"
)

type Results struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	cfg     *config.Config
	Results Results
}

func New(cfg *config.Config) *Validator {
	return &Validator{cfg: cfg}
}

// Run performs all checks and returns the collected results.
func (v *Validator) Run() Results {
	v.checkGeometry()
	v.checkFont()
	v.checkQR()
	v.checkCSV("prompts", v.cfg.Prompts.CSV)
	v.checkCSV("responses", v.cfg.Responses.CSV)
	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) checkGeometry() {
	g := v.cfg.Card
	if g.Width <= 0 || g.Height <= 0 {
		v.errorf("card.width and card.height must be positive (got %dx%d)", g.Width, g.Height)
	}
	if g.Margin*2 >= g.Width {
		v.errorf("card.margin %d leaves no text box in a %dpx-wide card", g.Margin, g.Width)
	}
	if g.DPI <= 0 {
		v.errorf("card.dpi must be positive (got %d)", g.DPI)
	}
}

func (v *Validator) checkFont() {
	if _, err := os.Stat(v.cfg.Font.File); os.IsNotExist(err) {
		v.warnf("font file %s not found; cards will use the embedded Go Bold face", v.cfg.Font.File)
	}
}

func (v *Validator) checkQR() {
	if _, err := os.Stat(v.cfg.Instruction.QRImage); os.IsNotExist(err) {
		v.warnf("qr image %s not found; the QR will be generated from the url", v.cfg.Instruction.QRImage)
	}
}

func (v *Validator) checkCSV(label, path string) {
	f, err := os.Open(path)
	if err != nil {
		v.errorf("%s csv: %v", label, err)
		return
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		v.errorf("%s csv: %v", label, err)
		return
	}
	if len(records) == 0 {
		v.errorf("%s csv %s has no header row", label, path)
		return
	}

	seen := map[string]int{}
	short := 0
	for i, rec := range records[1:] {
		line := i + 2 // 1-based, after the header
		if len(rec) < 2 {
			short++
			continue
		}
		slot := rec[1]
		if !deck.SafeSlot(slot) {
			v.warnf("%s csv line %d: slot id %q is unusable as a filename and will be skipped", label, line, slot)
			continue
		}
		if prev, ok := seen[slot]; ok {
			v.warnf("%s csv line %d: slot id %q already used on line %d; the cards will overwrite each other", label, line, slot, prev)
		}
		seen[slot] = line
	}
	if short > 0 {
		v.warnf("%s csv: %d row(s) with fewer than two fields will be skipped", label, short)
	}
}
