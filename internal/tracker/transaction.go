package tracker

import (
	"context"
	"time"

	"github.com/gabapcia/solwatch/internal/txclass"

	"github.com/shopspring/decimal"
)

// TransactionRecord is the persisted outcome of processing one signature.
type TransactionRecord struct {
	Signature  string
	Address    string
	Type       txclass.Type
	Amount     *decimal.Decimal
	Mint       string
	ObservedAt time.Time
	BlockTime  *time.Time
	Slot       uint64
}

// SignatureInfo is one entry of an address signature history.
type SignatureInfo struct {
	Signature          string
	Slot               uint64
	BlockTime          *time.Time
	ConfirmationStatus string

	// Failed is set when the transaction landed with an error. Such
	// transactions are recorded but never notified.
	Failed bool
}

// TransactionDetails is a fetched transaction ready for classification.
type TransactionDetails struct {
	Signature   string
	Slot        uint64
	BlockTime   *time.Time
	Transaction txclass.Transaction
}

// Chain reads address activity from a Solana RPC node.
type Chain interface {
	// RecentSignatures returns up to limit signatures, newest first.
	// Failures wrap ErrTransientFetch.
	RecentSignatures(ctx context.Context, address string, limit int) ([]SignatureInfo, error)

	// Transaction returns the transaction of signature, or
	// ErrTransactionNotFound when the node does not have it.
	Transaction(ctx context.Context, signature string) (*TransactionDetails, error)

	// Close releases the underlying connections.
	Close() error
}
