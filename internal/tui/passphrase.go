// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passphraseModel asks for a passphrase, and optionally for the same
// passphrase again.
type passphraseModel struct {
	title  string
	inputs []textinput.Model
	focus  int

	done   bool
	quit   bool
	errMsg string
}

func newPassphraseInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func newPassphraseModel(title string, confirm bool) passphraseModel {
	inputs := []textinput.Model{newPassphraseInput("passphrase")}
	if confirm {
		inputs = append(inputs, newPassphraseInput("repeat passphrase"))
	}
	inputs[0].Focus()

	return passphraseModel{title: title, inputs: inputs}
}

func (m passphraseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passphraseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab):
		return m.setFocus((m.focus + 1) % len(m.inputs)), nil
	case key.Matches(keyMsg, keys.enter):
		if m.focus < len(m.inputs)-1 {
			return m.setFocus(m.focus + 1), nil
		}
		if len(m.inputs) > 1 && m.inputs[0].Value() != m.inputs[1].Value() {
			m.errMsg = ErrPassphraseMismatch.Error()
			m.inputs[1].SetValue("")
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	m.errMsg = ""
	return m.updateFocused(msg)
}

func (m passphraseModel) setFocus(i int) passphraseModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m passphraseModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m passphraseModel) View() string {
	if m.done || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter confirm  esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the entered passphrase.
func (m passphraseModel) Value() string {
	return m.inputs[0].Value()
}
