package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/solwatch/internal/txclass"

	"github.com/shopspring/decimal"
)

// Event describes a newly recorded transaction of a tracked address.
type Event struct {
	ID        string
	Address   string
	Nickname  string
	Signature string
	Type      txclass.Type
	Amount    *decimal.Decimal
	Mint      string
	Slot      uint64
	BlockTime *time.Time
	EmittedAt time.Time

	// Channel is copied from the address settings before delivery.
	Channel string
}

// DisplayName returns the nickname when set, the address otherwise.
func (e Event) DisplayName() string {
	if e.Nickname != "" {
		return e.Nickname
	}
	return e.Address
}

// AmountString renders the amount, or "-" when unknown.
func (e Event) AmountString() string {
	if e.Amount == nil {
		return "-"
	}
	return e.Amount.String()
}

// Message renders the event as a short human readable text.
func (e Event) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.DisplayName(), e.Type)
	if e.Amount != nil {
		fmt.Fprintf(&b, " of %s", e.Amount.String())
		if e.Mint != "" {
			fmt.Fprintf(&b, " (mint %s)", e.Mint)
		}
	}
	fmt.Fprintf(&b, "\nslot %d\nhttps://solscan.io/tx/%s", e.Slot, e.Signature)
	return b.String()
}
