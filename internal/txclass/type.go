// Package txclass maps a fetched Solana transaction to a coarse activity type.
//
// Classification is a pure function of the transaction's top-level
// instructions: the first instruction whose program id is in the known
// program table decides the type. Anything else is TypeUnknown.
package txclass

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// AllTypesTag is the persisted form of an empty allow-list.
const AllTypesTag = "all"

// ErrInvalidType is returned by ParseType for tags outside the closed set.
var ErrInvalidType = errors.New("invalid transaction type")

// Type is the closed set of activity tags a transaction can be classified as.
type Type string

const (
	TypeTokenTransfer  Type = "token_transfer"
	TypeNativeTransfer Type = "native_transfer"
	TypeDexSwap        Type = "dex_swap"
	TypeUnknown        Type = "unknown"
)

// allTypes lists every valid Type in a stable order.
var allTypes = []Type{
	TypeTokenTransfer,
	TypeNativeTransfer,
	TypeDexSwap,
	TypeUnknown,
}

// Types returns every valid Type.
func Types() []Type {
	return slices.Clone(allTypes)
}

// IsValid reports whether t belongs to the closed set of types.
func (t Type) IsValid() bool {
	return slices.Contains(allTypes, t)
}

func (t Type) String() string {
	return string(t)
}

// ParseType converts a tag such as "dex_swap" into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}

	return t, nil
}

// ParseTypes parses a comma-separated list of tags. Blank input and the
// AllTypesTag yield an empty list. Duplicates are dropped.
func ParseTypes(s string) ([]Type, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == AllTypesTag {
		return nil, nil
	}

	var types []Type
	for _, part := range strings.Split(s, ",") {
		t, err := ParseType(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if !slices.Contains(types, t) {
			types = append(types, t)
		}
	}

	return types, nil
}

// JoinTypes is the inverse of ParseTypes. An empty list yields AllTypesTag.
func JoinTypes(types []Type) string {
	if len(types) == 0 {
		return AllTypesTag
	}

	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}
