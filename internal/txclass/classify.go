package txclass

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/shopspring/decimal"
)

// lamportsDecimals is the number of decimals between a lamport and one SOL.
const lamportsDecimals = 9

// Instruction is a top-level instruction with its accounts already resolved
// against the transaction's account keys.
type Instruction struct {
	ProgramID solana.PublicKey
	Accounts  []solana.PublicKey
	Data      []byte
}

// Transaction is the classifier input: instructions in program order.
type Transaction struct {
	Instructions []Instruction
}

// Classification is the classifier output.
//
// Amount and Mint are best-effort: they are only filled for plain system and
// token transfers whose payload decodes cleanly.
type Classification struct {
	Type   Type
	Amount *decimal.Decimal
	Mint   string
}

// Classify returns the classification of tx.
//
// The first instruction whose program id is known decides the type. When no
// instruction matches, or the input is empty, the result is TypeUnknown with
// no amount. Classify never panics.
func Classify(tx Transaction) Classification {
	for _, ix := range tx.Instructions {
		t, ok := LookupProgram(ix.ProgramID)
		if !ok {
			continue
		}

		c := Classification{Type: t}
		switch t {
		case TypeNativeTransfer:
			c.Amount = nativeTransferAmount(ix)
		case TypeTokenTransfer:
			c.Amount, c.Mint = tokenTransferAmount(ix)
		}

		return c
	}

	return Classification{Type: TypeUnknown}
}

func accountMetas(keys []solana.PublicKey) []*solana.AccountMeta {
	metas := make([]*solana.AccountMeta, len(keys))
	for i, k := range keys {
		metas[i] = solana.Meta(k)
	}
	return metas
}

func scaled(v uint64, decimals uint8) *decimal.Decimal {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(v), -int32(decimals))
	return &d
}

// nativeTransferAmount decodes a system program Transfer and returns the
// transferred amount in SOL.
func nativeTransferAmount(ix Instruction) (amount *decimal.Decimal) {
	defer func() {
		if recover() != nil {
			amount = nil
		}
	}()

	inst, err := system.DecodeInstruction(accountMetas(ix.Accounts), ix.Data)
	if err != nil {
		return nil
	}

	transfer, ok := inst.Impl.(*system.Transfer)
	if !ok || transfer.Lamports == nil {
		return nil
	}

	return scaled(*transfer.Lamports, lamportsDecimals)
}

// tokenTransferAmount decodes an SPL token Transfer or TransferChecked.
//
// Transfer carries no decimals nor mint, so the raw amount is returned.
// TransferChecked is scaled by its decimals and reports the mint account.
func tokenTransferAmount(ix Instruction) (amount *decimal.Decimal, mint string) {
	defer func() {
		if recover() != nil {
			amount, mint = nil, ""
		}
	}()

	if ix.ProgramID.Equals(solana.SPLAssociatedTokenAccountProgramID) {
		return nil, ""
	}

	inst, err := token.DecodeInstruction(accountMetas(ix.Accounts), ix.Data)
	if err != nil {
		return nil, ""
	}

	switch impl := inst.Impl.(type) {
	case *token.Transfer:
		if impl.Amount == nil {
			return nil, ""
		}
		return scaled(*impl.Amount, 0), ""
	case *token.TransferChecked:
		if impl.Amount == nil || impl.Decimals == nil {
			return nil, ""
		}
		if m := impl.GetMintAccount(); m != nil {
			mint = m.PublicKey.String()
		}
		return scaled(*impl.Amount, *impl.Decimals), mint
	}

	return nil, ""
}
