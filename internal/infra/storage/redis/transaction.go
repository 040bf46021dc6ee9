package redis

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/gabapcia/solwatch/internal/tracker"
	"github.com/gabapcia/solwatch/internal/txclass"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	transactionKeyPrefix = "tx"
	transactionIndexKey  = "tx:index"

	// MaxQueryLimit bounds QueryTransactions results.
	MaxQueryLimit = 50
)

func transactionKey(signature string) string {
	return fmt.Sprintf("%s:%s", transactionKeyPrefix, signature)
}

func addressIndexKey(address string) string {
	return fmt.Sprintf("%s:%s", transactionIndexKey, address)
}

// recordScript inserts the transaction hash and both index entries unless
// the signature already exists. It returns 1 when the record was created.
//
// KEYS: tx hash, global index, address index. ARGV: score, signature, fields...
var recordScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], unpack(ARGV, 3))
redis.call('ZADD', KEYS[2], ARGV[1], ARGV[2])
redis.call('ZADD', KEYS[3], ARGV[1], ARGV[2])
return 1
`)

func (c *client) RecordTransaction(ctx context.Context, r tracker.TransactionRecord) (bool, error) {
	keys := []string{transactionKey(r.Signature), transactionIndexKey, addressIndexKey(r.Address)}
	args := append([]any{r.ObservedAt.UnixMicro(), r.Signature}, encodeTransaction(r)...)

	created, err := recordScript.Run(ctx, c.conn, keys, args...).Int()
	if err != nil {
		return false, storageError("record transaction", err)
	}

	return created == 1, nil
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
	index := transactionIndexKey
	if address != "" {
		index = addressIndexKey(address)
	}

	signatures, err := c.conn.ZRevRange(ctx, index, 0, int64(clampLimit(limit)-1)).Result()
	if err != nil {
		return nil, storageError("query transactions", err)
	}
	if len(signatures) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(signatures))
	_, err = c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, signature := range signatures {
			cmds[i] = pipe.HGetAll(ctx, transactionKey(signature))
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, storageError("load transactions", err)
	}

	records := make([]tracker.TransactionRecord, 0, len(cmds))
	for _, cmd := range cmds {
		if len(cmd.Val()) == 0 {
			continue
		}

		r, err := decodeTransaction(cmd.Val())
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	slices.SortStableFunc(records, func(a, b tracker.TransactionRecord) int {
		if c := b.ObservedAt.Compare(a.ObservedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.Slot, a.Slot)
	})

	return records, nil
}

func encodeTransaction(r tracker.TransactionRecord) []any {
	var amount, blockTime string
	if r.Amount != nil {
		amount = r.Amount.String()
	}
	if r.BlockTime != nil {
		blockTime = r.BlockTime.UTC().Format(time.RFC3339Nano)
	}

	return []any{
		"signature", r.Signature,
		"address", r.Address,
		"type", r.Type.String(),
		"amount", amount,
		"mint", r.Mint,
		"observed_at", r.ObservedAt.UTC().Format(time.RFC3339Nano),
		"block_time", blockTime,
		"slot", strconv.FormatUint(r.Slot, 10),
	}
}

func decodeTransaction(fields map[string]string) (tracker.TransactionRecord, error) {
	r := tracker.TransactionRecord{
		Signature: fields["signature"],
		Address:   fields["address"],
		Type:      txclass.Type(fields["type"]),
		Mint:      fields["mint"],
	}

	var err error
	if r.ObservedAt, err = time.Parse(time.RFC3339Nano, fields["observed_at"]); err != nil {
		return r, storageError("decode transaction", err)
	}

	if raw := fields["amount"]; raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return r, storageError("decode transaction", err)
		}
		r.Amount = &amount
	}

	if raw := fields["block_time"]; raw != "" {
		blockTime, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return r, storageError("decode transaction", err)
		}
		r.BlockTime = &blockTime
	}

	if raw := fields["slot"]; raw != "" {
		if r.Slot, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return r, storageError("decode transaction", err)
		}
	}

	return r, nil
}
