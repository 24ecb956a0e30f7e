package prompt_test

import (
	"os"
	"testing"

	"github.com/Pavinberg/monat/internal/prompt"
	"github.com/mattn/go-isatty"
	"github.com/stretchr/testify/assert"
)

func TestHuhFormRunner_RunRecordSelect_Empty(t *testing.T) {
	t.Parallel()

	r := &prompt.HuhFormRunner{}
	_, err := r.RunRecordSelect(nil)
	assert.ErrorIs(t, err, prompt.ErrNoChoices)
}

func TestHuhFormRunner_NotInteractive(t *testing.T) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		t.Skip("stdin is a terminal")
	}

	r := &prompt.HuhFormRunner{}
	_, err := r.RunRecordSelect([]string{"/tmp"})
	assert.ErrorIs(t, err, prompt.ErrNotInteractive)

	_, err = r.RunConfirm("overwrite?")
	assert.ErrorIs(t, err, prompt.ErrNotInteractive)
}
