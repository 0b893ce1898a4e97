// Copyright 2018 karma.run AG. All rights reserved.

package rawutil

import "github.com/ethereum/go-ethereum/common"

// NormalizeAddressLiteral checksum-normalizes value when it is a valid hex
// address, leaving every other literal value untouched. Both readers call
// this for every Literal they build: address literals are the one case
// where "copy the compiler's value verbatim" (spec.md §4.3) still benefits
// from the same EIP-55 checksumming every other Solidity tool applies.
func NormalizeAddressLiteral(value string) string {
	if !common.IsHexAddress(value) {
		return value
	}
	return common.HexToAddress(value).Hex()
}
