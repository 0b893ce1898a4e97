// Copyright 2018 karma.run AG. All rights reserved.

// Package types defines a closed sum representing the Solidity type system,
// the typed home for the typeString/typeIdentifier pair that
// ast.VariableDeclaration carries (TypeString, TypeIdentifier). The core never evaluates
// or infers types itself (spec.md §1): it treats type-descriptor parsing as
// an injected pure function through the TypeDescriptorParser interface.
package types // import "github.com/JorikSchellekens/solc-typed-ast/types"
