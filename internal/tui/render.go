// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-points-ledger/models"
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func card(title string, rows ...string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return boxStyle.Render(titleStyle.Render(title)+"\n"+body) + "\n"
}

func accountRows(acc models.UserAccount) []string {
	return []string{
		row("id", strconv.FormatUint(uint64(acc.ID), 10)),
		row("name", acc.Name),
		row("points", strconv.FormatUint(uint64(acc.Points), 10)),
		row("owner", acc.Owner.String()),
	}
}

func RenderAccount(acc models.UserAccount) string {
	return card("Account", accountRows(acc)...)
}

func RenderTransfer(result models.TransferResult) string {
	sender := card("Sender", accountRows(result.Sender)...)
	receiver := card("Receiver", accountRows(result.Receiver)...)
	return lipgloss.JoinVertical(lipgloss.Left, sender, receiver)
}

func RenderRemoved(result models.RemoveResult) string {
	return card("Account removed",
		row("id", strconv.FormatUint(uint64(result.ID), 10)),
		row("refund", strconv.FormatUint(result.Refund, 10)),
		row("credited to", result.Beneficiary.String()),
	)
}

func RenderCredits(credits models.CreditsResponse) string {
	return card("Credits",
		row("identity", credits.Identity.String()),
		row("amount", strconv.FormatUint(credits.Amount, 10)),
	)
}

func RenderIdentity(identity models.Identity) string {
	return card("Identity", identity.String())
}

func RenderBuildInfo(info models.AppBuildInfo, serverVersion string) string {
	rows := []string{
		row("version", valueOrNA(info.BuildVersion())),
		row("date", valueOrNA(info.BuildDate())),
		row("commit", valueOrNA(info.BuildCommit())),
	}
	if serverVersion != "" {
		rows = append(rows, row("server", serverVersion))
	}
	return card("ledgerctl", rows...)
}

// RenderError renders err for the terminal, with network failures reworded.
func RenderError(err error) string {
	return errorStyle.Render("error: "+humanizeError(err)) + "\n"
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
