package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/solwatch/internal/pkg/validator"
	"github.com/gabapcia/solwatch/internal/tracker"
	"github.com/gabapcia/solwatch/internal/txclass"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Transaction fetches and decodes the transaction of signature.
func (c *client) Transaction(ctx context.Context, signature string) (*tracker.TransactionDetails, error) {
	if details, ok := c.cached(signature); ok {
		return details, nil
	}

	sig, err := sol.SignatureFromBase58(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: signature: %w", validator.ErrValidationFailed, err)
	}

	maxVersion := uint64(0)

	var result *rpc.GetTransactionResult
	err = c.call(ctx, "getTransaction", func(conn *rpc.Client) error {
		result, err = conn.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
			Encoding:                       sol.EncodingBase64,
			Commitment:                     c.cfg.commitment,
			MaxSupportedTransactionVersion: &maxVersion,
		})
		if errors.Is(err, rpc.ErrNotFound) {
			return tracker.ErrTransactionNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if result == nil || result.Transaction == nil {
		return nil, tracker.ErrTransactionNotFound
	}

	tx, err := result.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("%w: decode transaction: %w", tracker.ErrTransientFetch, err)
	}

	details := &tracker.TransactionDetails{
		Signature:   signature,
		Slot:        result.Slot,
		BlockTime:   blockTime(result.BlockTime),
		Transaction: toClassifierInput(tx, result.Meta),
	}
	c.remember(details)

	return details, nil
}

// accountKeys returns the static keys followed by the keys loaded from
// address lookup tables, writable first.
func accountKeys(tx *sol.Transaction, meta *rpc.TransactionMeta) []sol.PublicKey {
	keys := append([]sol.PublicKey{}, tx.Message.AccountKeys...)
	if meta != nil {
		keys = append(keys, meta.LoadedAddresses.Writable...)
		keys = append(keys, meta.LoadedAddresses.ReadOnly...)
	}
	return keys
}

// toClassifierInput resolves the top-level instructions of tx. Indexes that
// fall outside the key list are dropped.
func toClassifierInput(tx *sol.Transaction, meta *rpc.TransactionMeta) txclass.Transaction {
	keys := accountKeys(tx, meta)

	instructions := make([]txclass.Instruction, 0, len(tx.Message.Instructions))
	for _, ci := range tx.Message.Instructions {
		if int(ci.ProgramIDIndex) >= len(keys) {
			continue
		}

		accounts := make([]sol.PublicKey, 0, len(ci.Accounts))
		for _, idx := range ci.Accounts {
			if int(idx) < len(keys) {
				accounts = append(accounts, keys[idx])
			}
		}

		instructions = append(instructions, txclass.Instruction{
			ProgramID: keys[ci.ProgramIDIndex],
			Accounts:  accounts,
			Data:      []byte(ci.Data),
		})
	}

	return txclass.Transaction{Instructions: instructions}
}
