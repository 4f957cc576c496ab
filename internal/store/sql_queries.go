// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-points-ledger/migrations"
	"github.com/MKhiriev/go-points-ledger/models"
)

const (
	accountsTable = "user_accounts"
	creditsTable  = "identity_credits"
)

// queries builds the SQL statements of the account repository for one
// dialect.
type queries struct {
	sb sq.StatementBuilderType
	// lockRows enables SELECT ... FOR UPDATE. SQLite has no row locks and
	// serializes writers with BEGIN IMMEDIATE instead.
	lockRows bool
}

func newQueries(dialect migrations.Dialect) queries {
	switch dialect {
	case migrations.DialectPostgres:
		return queries{sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), lockRows: true}
	default:
		return queries{sb: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
	}
}

func (q queries) loadAccount(slot models.Slot) (string, []any, error) {
	return q.sb.Select("data").
		From(accountsTable).
		Where(sq.Eq{"slot": slot.String()}).
		ToSql()
}

// lockSlots locks the given rows in slot order. Acquiring locks in one
// global order keeps concurrent transfers from deadlocking.
func (q queries) lockSlots(slots []models.Slot) (string, []any, error) {
	keys := make([]string, len(slots))
	for i, s := range slots {
		keys[i] = s.String()
	}
	return q.sb.Select("slot").
		From(accountsTable).
		Where(sq.Eq{"slot": keys}).
		OrderBy("slot").
		Suffix("FOR UPDATE").
		ToSql()
}

func (q queries) storeAccount(slot models.Slot, account models.UserAccount, data []byte) (string, []any, error) {
	return q.sb.Update(accountsTable).
		Set("id", int64(account.ID)).
		Set("owner", account.Owner.String()).
		Set("name", account.Name).
		Set("points", int64(account.Points)).
		Set("data", data).
		Where(sq.Eq{"slot": slot.String()}).
		ToSql()
}

func (q queries) allocateSlot(slot models.Slot, payer models.Identity, deposit uint64) (string, []any, error) {
	if deposit > maxSQLInteger {
		return "", nil, fmt.Errorf("deposit %d does not fit into BIGINT", deposit)
	}
	return q.sb.Insert(accountsTable).
		Columns("slot", "payer", "deposit").
		Values(slot.String(), payer.String(), int64(deposit)).
		ToSql()
}

func (q queries) freeSlot(slot models.Slot) (string, []any, error) {
	return q.sb.Delete(accountsTable).
		Where(sq.Eq{"slot": slot.String()}).
		Suffix("RETURNING deposit").
		ToSql()
}

func (q queries) addCredits(identity models.Identity, amount uint64) (string, []any, error) {
	return q.sb.Insert(creditsTable).
		Columns("owner", "amount").
		Values(identity.String(), int64(amount)).
		Suffix("ON CONFLICT (owner) DO UPDATE SET amount = " + creditsTable + ".amount + excluded.amount").
		ToSql()
}

func (q queries) credits(identity models.Identity) (string, []any, error) {
	return q.sb.Select("amount").
		From(creditsTable).
		Where(sq.Eq{"owner": identity.String()}).
		ToSql()
}

// maxSQLInteger is the largest value of a signed 64-bit SQL integer.
const maxSQLInteger = 1<<63 - 1
