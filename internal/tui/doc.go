// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal presentation of ledgerctl: interactive
// passphrase and confirmation prompts built on Bubble Tea, and lipgloss
// renderings of accounts and operation results.
package tui
