// Copyright 2018 karma.run AG. All rights reserved.
package types

import "strings"

// TypeDescriptorParser turns the TypeDescriptions a node carries (typeString,
// typeIdentifier) into a Type. The core never implements the full Solidity
// type-descriptor grammar itself (spec.md §1 places that out of scope); this
// interface is the seam callers use to plug a real one in.
type TypeDescriptorParser interface {
	Parse(typeString, typeIdentifier string) Type
}

// ElementaryParser is the one built-in TypeDescriptorParser: it recognizes
// elementary type names (uint*, int*, bool, address, bytes*, string, fixed*,
// ufixed*) by
// their typeString prefix and returns types.Elementary for them. Every other
// typeString resolves to an unresolved Reference(-1), left for a caller's
// own grammar-driven parser to replace.
type ElementaryParser struct{}

var elementaryPrefixes = []string{
	"uint", "int", "bool", "address", "bytes", "string", "fixed", "ufixed",
}

func (ElementaryParser) Parse(typeString, typeIdentifier string) Type {
	name := typeString
	if idx := strings.IndexByte(name, ' '); idx >= 0 {
		name = name[:idx]
	}
	for _, prefix := range elementaryPrefixes {
		if strings.HasPrefix(name, prefix) {
			return Elementary(name)
		}
	}
	return Reference(-1)
}
