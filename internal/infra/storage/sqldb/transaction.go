package sqldb

import (
	"context"
	"database/sql"

	"github.com/gabapcia/solwatch/internal/tracker"
	"github.com/gabapcia/solwatch/internal/txclass"

	"github.com/shopspring/decimal"
)

const transactionColumns = `signature, address, type, amount, mint, observed_at, block_time, slot`

func (c *client) RecordTransaction(ctx context.Context, r tracker.TransactionRecord) (bool, error) {
	var (
		amount    sql.NullString
		blockTime sql.NullInt64
	)
	if r.Amount != nil {
		amount = sql.NullString{String: r.Amount.String(), Valid: true}
	}
	if r.BlockTime != nil {
		blockTime = sql.NullInt64{Int64: toMicros(*r.BlockTime), Valid: true}
	}

	res, err := c.db.ExecContext(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (signature) DO NOTHING
	`, r.Signature, r.Address, r.Type.String(), amount, r.Mint, toMicros(r.ObservedAt), blockTime, int64(r.Slot))
	if err != nil {
		return false, storageError("record transaction", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, storageError("record transaction", err)
	}

	return n == 1, nil
}

// clampLimit maps limit to [1, MaxQueryLimit]; non-positive means the maximum.
func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}

// QueryTransactions returns the latest records, newest first, optionally
// restricted to address.
func (c *client) QueryTransactions(ctx context.Context, address string, limit int) ([]tracker.TransactionRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if address == "" {
		rows, err = c.db.QueryContext(ctx, `
			SELECT `+transactionColumns+` FROM transactions
			ORDER BY observed_at DESC, slot DESC
			LIMIT $1
		`, clampLimit(limit))
	} else {
		rows, err = c.db.QueryContext(ctx, `
			SELECT `+transactionColumns+` FROM transactions
			WHERE address = $1
			ORDER BY observed_at DESC, slot DESC
			LIMIT $2
		`, address, clampLimit(limit))
	}
	if err != nil {
		return nil, storageError("query transactions", err)
	}
	defer rows.Close()

	var records []tracker.TransactionRecord
	for rows.Next() {
		r, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("query transactions", err)
	}

	return records, nil
}

func scanTransaction(s scanner) (tracker.TransactionRecord, error) {
	var (
		r          tracker.TransactionRecord
		kind       string
		amount     sql.NullString
		observedAt int64
		blockTime  sql.NullInt64
		slot       int64
	)
	if err := s.Scan(&r.Signature, &r.Address, &kind, &amount, &r.Mint, &observedAt, &blockTime, &slot); err != nil {
		return r, storageError("scan transaction", err)
	}

	r.Type = txclass.Type(kind)
	r.ObservedAt = fromMicros(observedAt)
	r.Slot = uint64(slot)

	if amount.Valid {
		value, err := decimal.NewFromString(amount.String)
		if err != nil {
			return r, storageError("decode transaction", err)
		}
		r.Amount = &value
	}

	if blockTime.Valid {
		t := fromMicros(blockTime.Int64)
		r.BlockTime = &t
	}

	return r, nil
}
