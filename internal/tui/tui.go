// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-points-ledger/internal/logger"
)

// TUI runs prompts on one terminal.
type TUI struct {
	in  io.Reader
	out io.Writer

	// copyText is swapped in tests; the system clipboard is not available
	// on headless machines.
	copyText func(string) error

	logger *logger.Logger
}

func New(in io.Reader, out io.Writer, logger *logger.Logger) *TUI {
	return &TUI{
		in:       in,
		out:      out,
		copyText: clipboard.WriteAll,
		logger:   logger,
	}
}

func (t *TUI) run(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
}

// Passphrase prompts for a passphrase. With confirm set the passphrase has
// to be entered twice.
func (t *TUI) Passphrase(title string, confirm bool) (string, error) {
	final, err := t.run(newPassphraseModel(title, confirm))
	if err != nil {
		return "", fmt.Errorf("passphrase prompt: %w", err)
	}

	m, ok := final.(passphraseModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if m.quit || !m.done {
		return "", ErrUserQuit
	}
	return m.Value(), nil
}

// Confirm asks a yes/no question and reports whether it was accepted.
func (t *TUI) Confirm(message string) (bool, error) {
	final, err := t.run(confirmModel{message: message})
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return m.accepted, nil
}

// Copy puts text on the system clipboard.
func (t *TUI) Copy(text string) error {
	if err := t.copyText(text); err != nil {
		t.logger.Debug().Err(err).Msg("clipboard unavailable")
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Print writes a rendered block to the terminal.
func (t *TUI) Print(rendered string) {
	fmt.Fprint(t.out, rendered)
}
