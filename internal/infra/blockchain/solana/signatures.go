package solana

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/validator"
	"github.com/gabapcia/solwatch/internal/tracker"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// RecentSignatures returns up to limit signatures of address, newest first.
func (c *client) RecentSignatures(ctx context.Context, address string, limit int) ([]tracker.SignatureInfo, error) {
	account, err := sol.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("%w: address: %w", validator.ErrValidationFailed, err)
	}

	var result []*rpc.TransactionSignature
	err = c.call(ctx, "getSignaturesForAddress", func(conn *rpc.Client) error {
		result, err = conn.GetSignaturesForAddressWithOpts(ctx, account, &rpc.GetSignaturesForAddressOpts{
			Limit:      &limit,
			Commitment: c.cfg.commitment,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	signatures := make([]tracker.SignatureInfo, 0, len(result))
	for _, s := range result {
		if s == nil {
			continue
		}

		signatures = append(signatures, tracker.SignatureInfo{
			Signature:          s.Signature.String(),
			Slot:               s.Slot,
			BlockTime:          blockTime(s.BlockTime),
			ConfirmationStatus: string(s.ConfirmationStatus),
			Failed:             s.Err != nil,
		})
	}

	return signatures, nil
}

func blockTime(t *sol.UnixTimeSeconds) *time.Time {
	if t == nil {
		return nil
	}

	v := t.Time().UTC()
	return &v
}
