package txclass

import "github.com/gagliardetto/solana-go"

// DEX program ids recognised as swaps.
var (
	JupiterV6Program     = solana.MustPublicKeyFromBase58("JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4")
	RaydiumV4Program     = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")
	RaydiumCLMMProgram   = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")
	RaydiumCPMMProgram   = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")
	OrcaWhirlpoolProgram = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
	MeteoraDLMMProgram   = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")
	PumpFunProgram       = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	PumpSwapProgram      = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")
)

// programTypes is the lookup table consulted for every instruction, in
// program order. Programs not listed here (compute budget, memo, ...) are
// skipped.
var programTypes = map[solana.PublicKey]Type{
	solana.TokenProgramID:                     TypeTokenTransfer,
	solana.Token2022ProgramID:                 TypeTokenTransfer,
	solana.SPLAssociatedTokenAccountProgramID: TypeTokenTransfer,

	solana.SystemProgramID: TypeNativeTransfer,

	JupiterV6Program:     TypeDexSwap,
	RaydiumV4Program:     TypeDexSwap,
	RaydiumCLMMProgram:   TypeDexSwap,
	RaydiumCPMMProgram:   TypeDexSwap,
	OrcaWhirlpoolProgram: TypeDexSwap,
	MeteoraDLMMProgram:   TypeDexSwap,
	PumpFunProgram:       TypeDexSwap,
	PumpSwapProgram:      TypeDexSwap,
}

// LookupProgram returns the type associated with a program id, if any.
func LookupProgram(programID solana.PublicKey) (Type, bool) {
	t, ok := programTypes[programID]
	return t, ok
}
