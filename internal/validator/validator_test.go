package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secondguess/cardsmith/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Font.File = filepath.Join(dir, "font.ttf")
	cfg.Instruction.QRImage = filepath.Join(dir, "qr.png")
	cfg.Prompts.CSV = filepath.Join(dir, "prompts.csv")
	cfg.Responses.CSV = filepath.Join(dir, "responses.csv")

	require.NoError(t, os.WriteFile(cfg.Prompts.CSV,
		[]byte("text,card number\nIs it safe to eat?,12\n"), 0o644))
	require.NoError(t, os.WriteFile(cfg.Responses.CSV,
		[]byte("text,card number\nOnly on weekends.,1\n"), 0o644))
	return cfg
}

func hasMatch(entries []string, substr string) bool {
	for _, e := range entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestRunCleanInputs(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Font.File, []byte("not really a font"), 0o644))
	require.NoError(t, os.WriteFile(cfg.Instruction.QRImage, []byte("not really a png"), 0o644))

	results := New(cfg).Run()

	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestRunMissingAssetsAreWarnings(t *testing.T) {
	cfg := testConfig(t)

	results := New(cfg).Run()

	assert.Empty(t, results.Errors)
	assert.True(t, hasMatch(results.Warnings, "embedded Go Bold"))
	assert.True(t, hasMatch(results.Warnings, "generated from the url"))
}

func TestRunMissingCSVIsError(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Remove(cfg.Prompts.CSV))

	results := New(cfg).Run()

	assert.True(t, hasMatch(results.Errors, "prompts csv"))
}

func TestRunFlagsBadRows(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Prompts.CSV, []byte(strings.Join([]string{
		"text,card number",
		"fine,12",
		"lonely-field",
		"duplicate,12",
		"evil,../escape",
		"",
	}, "\n")), 0o644))

	results := New(cfg).Run()

	assert.Empty(t, results.Errors)
	assert.True(t, hasMatch(results.Warnings, "fewer than two fields"))
	assert.True(t, hasMatch(results.Warnings, "already used"))
	assert.True(t, hasMatch(results.Warnings, "unusable as a filename"))
}

func TestRunBadGeometry(t *testing.T) {
	cfg := testConfig(t)
	cfg.Card.Margin = cfg.Card.Width

	results := New(cfg).Run()

	assert.True(t, hasMatch(results.Errors, "margin"))
}
