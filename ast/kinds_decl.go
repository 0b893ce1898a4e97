// Copyright 2018 karma.run AG. All rights reserved.

package ast

// ContractKind is a contract definition's kind.
type ContractKind string

const (
	ContractKindContract  ContractKind = "contract"
	ContractKindInterface ContractKind = "interface"
	ContractKindLibrary   ContractKind = "library"
)

// Visibility is a declaration's visibility.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityInternal Visibility = "internal"
	VisibilityExternal Visibility = "external"
	VisibilityPrivate  Visibility = "private"
)

// StateMutability is a function's state mutability.
type StateMutability string

const (
	StateMutabilityPure       StateMutability = "pure"
	StateMutabilityView       StateMutability = "view"
	StateMutabilityNonpayable StateMutability = "nonpayable"
	StateMutabilityPayable    StateMutability = "payable"
)

// StorageLocation is a variable's storage location.
type StorageLocation string

const (
	StorageLocationDefault StorageLocation = "default"
	StorageLocationMemory  StorageLocation = "memory"
	StorageLocationStorage StorageLocation = "storage"
	StorageLocationCalldata StorageLocation = "calldata"
)

// ContractDefinition represents `contract`/`interface`/`library C is ... { ... }`.
type ContractDefinition struct {
	Header
	Name                    string
	ContractKind            ContractKind
	Abstract                bool
	FullyImplemented        bool
	Scope                   int
	LinearizedBaseContracts []int
	UsedErrors              []int

	documentation Node // *StructuredDocumentation, nil if absent (legacy: see LegacyDocumentation)
	LegacyDocumentation string // legacy schema's plain-text documentation, "" in modern trees

	baseContracts []Node // []*InheritanceSpecifier
	nodes         []Node // member declarations, in source order
}

func (n *ContractDefinition) Kind() NodeKind { return KindContractDefinition }
func (n *ContractDefinition) Children() []Node {
	out := make([]Node, 0, 1+len(n.baseContracts)+len(n.nodes))
	out = append(out, filterNonNil(n.documentation)...)
	out = append(out, n.baseContracts...)
	out = append(out, n.nodes...)
	return out
}
func (n *ContractDefinition) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"documentation": filterNonNil(n.documentation),
		"baseContracts": n.baseContracts,
		"nodes":         n.nodes,
	}
}
func (n *ContractDefinition) Documentation() Node  { return n.documentation }
func (n *ContractDefinition) BaseContracts() []Node { return n.baseContracts }
func (n *ContractDefinition) Nodes() []Node         { return n.nodes }

func (n *ContractDefinition) VScope() (Node, bool) { return n.Context().Lookup(n.Scope) }

func (n *ContractDefinition) VLinearizedBaseContracts() []Node {
	ctx := n.Context()
	out := make([]Node, 0, len(n.LinearizedBaseContracts))
	for _, id := range n.LinearizedBaseContracts {
		if target, ok := ctx.Lookup(id); ok {
			out = append(out, target)
		}
	}
	return out
}

func (n *ContractDefinition) VUsedErrors() []Node {
	ctx := n.Context()
	out := make([]Node, 0, len(n.UsedErrors))
	for _, id := range n.UsedErrors {
		if target, ok := ctx.Lookup(id); ok {
			out = append(out, target)
		}
	}
	return out
}

func (n *ContractDefinition) Link() error {
	ctx := n.Context()
	if _, ok := ctx.Lookup(n.Scope); !ok {
		return &DanglingReferenceError{OwnerID: n.ID(), Attribute: "scope", TargetID: n.Scope}
	}
	for _, id := range n.LinearizedBaseContracts {
		if _, ok := ctx.Lookup(id); !ok {
			return &DanglingReferenceError{OwnerID: n.ID(), Attribute: "linearizedBaseContracts", TargetID: id}
		}
	}
	// usedErrors is best-effort metadata; dangling entries are tolerated.
	return nil
}

// FunctionKind distinguishes a FunctionDefinition's role.
type FunctionKind string

const (
	FunctionKindFunction    FunctionKind = "function"
	FunctionKindConstructor FunctionKind = "constructor"
	FunctionKindFallback    FunctionKind = "fallback"
	FunctionKindReceive     FunctionKind = "receive"
)

// FunctionDefinition represents a function, constructor, fallback or
// receive declaration.
type FunctionDefinition struct {
	Header
	Name            string
	FunctionKind    FunctionKind
	Visibility      Visibility
	StateMutability StateMutability
	Virtual         bool
	Implemented     bool
	Scope           int
	LegacyDocumentation string

	documentation    Node // *StructuredDocumentation
	parameters       Node // *ParameterList
	returnParameters Node // *ParameterList
	modifiers        []Node
	overrides        Node // *OverrideSpecifier, nil if absent
	body             Node // *Block, nil for unimplemented/abstract/interface functions
}

func (n *FunctionDefinition) Kind() NodeKind { return KindFunctionDefinition }
func (n *FunctionDefinition) Children() []Node {
	out := make([]Node, 0, 5+len(n.modifiers))
	out = append(out, filterNonNil(n.documentation)...)
	out = append(out, filterNonNil(n.parameters, n.returnParameters)...)
	out = append(out, n.modifiers...)
	out = append(out, filterNonNil(n.overrides, n.body)...)
	return out
}
func (n *FunctionDefinition) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"documentation":    filterNonNil(n.documentation),
		"parameters":       filterNonNil(n.parameters),
		"returnParameters": filterNonNil(n.returnParameters),
		"modifiers":        n.modifiers,
		"overrides":        filterNonNil(n.overrides),
		"body":             filterNonNil(n.body),
	}
}
func (n *FunctionDefinition) Documentation() Node    { return n.documentation }
func (n *FunctionDefinition) Parameters() Node       { return n.parameters }
func (n *FunctionDefinition) ReturnParameters() Node { return n.returnParameters }
func (n *FunctionDefinition) Modifiers() []Node      { return n.modifiers }
func (n *FunctionDefinition) Overrides() Node        { return n.overrides }
func (n *FunctionDefinition) Body() Node             { return n.body }
func (n *FunctionDefinition) IsConstructor() bool    { return n.FunctionKind == FunctionKindConstructor }

func (n *FunctionDefinition) VScope() (Node, bool) { return n.Context().Lookup(n.Scope) }

func (n *FunctionDefinition) Link() error {
	if _, ok := n.Context().Lookup(n.Scope); !ok {
		return &DanglingReferenceError{OwnerID: n.ID(), Attribute: "scope", TargetID: n.Scope}
	}
	return nil
}

// ModifierDefinition represents a `modifier m(...) { ...; _; }` declaration.
type ModifierDefinition struct {
	Header
	Name       string
	Visibility Visibility
	Virtual    bool

	documentation Node
	parameters    Node // *ParameterList
	overrides     Node // *OverrideSpecifier, nil if absent
	body          Node // *Block
}

func (n *ModifierDefinition) Kind() NodeKind { return KindModifierDefinition }
func (n *ModifierDefinition) Children() []Node {
	return append(filterNonNil(n.documentation, n.parameters, n.overrides, n.body))
}
func (n *ModifierDefinition) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"documentation": filterNonNil(n.documentation),
		"parameters":    filterNonNil(n.parameters),
		"overrides":     filterNonNil(n.overrides),
		"body":          filterNonNil(n.body),
	}
}
func (n *ModifierDefinition) Parameters() Node { return n.parameters }
func (n *ModifierDefinition) Overrides() Node  { return n.overrides }
func (n *ModifierDefinition) Body() Node       { return n.body }

// EventDefinition represents `event E(...)`.
type EventDefinition struct {
	Header
	Name      string
	Anonymous bool

	documentation Node
	parameters    Node // *ParameterList
}

func (n *EventDefinition) Kind() NodeKind { return KindEventDefinition }
func (n *EventDefinition) Children() []Node {
	return filterNonNil(n.documentation, n.parameters)
}
func (n *EventDefinition) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"documentation": filterNonNil(n.documentation),
		"parameters":    filterNonNil(n.parameters),
	}
}
func (n *EventDefinition) Parameters() Node { return n.parameters }

// ErrorDefinition represents `error E(...)` (>=0.8.4, custom errors).
type ErrorDefinition struct {
	Header
	Name string

	documentation Node
	parameters    Node // *ParameterList
}

func (n *ErrorDefinition) Kind() NodeKind { return KindErrorDefinition }
func (n *ErrorDefinition) Children() []Node {
	return filterNonNil(n.documentation, n.parameters)
}
func (n *ErrorDefinition) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"documentation": filterNonNil(n.documentation),
		"parameters":    filterNonNil(n.parameters),
	}
}
func (n *ErrorDefinition) Parameters() Node { return n.parameters }

// StructDefinition represents `struct S { ... }`.
type StructDefinition struct {
	Header
	Name       string
	Scope      int
	Visibility Visibility

	members []Node // []*VariableDeclaration
}

func (n *StructDefinition) Kind() NodeKind                    { return KindStructDefinition }
func (n *StructDefinition) Children() []Node                  { return n.members }
func (n *StructDefinition) NamedRelations() map[string][]Node {
	return namedRelationsFromChildren("members", n.members)
}
func (n *StructDefinition) Members() []Node        { return n.members }
func (n *StructDefinition) VScope() (Node, bool)   { return n.Context().Lookup(n.Scope) }
func (n *StructDefinition) Link() error {
	if _, ok := n.Context().Lookup(n.Scope); !ok {
		return &DanglingReferenceError{OwnerID: n.ID(), Attribute: "scope", TargetID: n.Scope}
	}
	return nil
}

// EnumDefinition represents `enum E { ... }`.
type EnumDefinition struct {
	Header
	Name   string
	values []Node // []*EnumValue
}

func (n *EnumDefinition) Kind() NodeKind                    { return KindEnumDefinition }
func (n *EnumDefinition) Children() []Node                  { return n.values }
func (n *EnumDefinition) NamedRelations() map[string][]Node {
	return namedRelationsFromChildren("members", n.values)
}
func (n *EnumDefinition) Members() []Node { return n.values }

// EnumValue represents one member of an enum. A leaf.
type EnumValue struct {
	Header
	Name string
}

func (n *EnumValue) Kind() NodeKind                    { return KindEnumValue }
func (n *EnumValue) Children() []Node                  { return nil }
func (n *EnumValue) NamedRelations() map[string][]Node { return nil }

// UserDefinedValueTypeDefinition represents `type T is uint256;` (>=0.8.8).
type UserDefinedValueTypeDefinition struct {
	Header
	Name string

	underlyingType Node // ElementaryTypeName
}

func (n *UserDefinedValueTypeDefinition) Kind() NodeKind   { return KindUserDefinedValueTypeDef }
func (n *UserDefinedValueTypeDefinition) Children() []Node { return filterNonNil(n.underlyingType) }
func (n *UserDefinedValueTypeDefinition) NamedRelations() map[string][]Node {
	return map[string][]Node{"underlyingType": filterNonNil(n.underlyingType)}
}
func (n *UserDefinedValueTypeDefinition) UnderlyingType() Node { return n.underlyingType }

// VariableDeclaration represents a declared variable: a state variable, a
// local variable, a function/event/error parameter, or a struct member.
type VariableDeclaration struct {
	Header
	Name            string
	Constant        bool
	StateVariable   bool
	Indexed         bool
	Visibility      Visibility
	StorageLocation StorageLocation
	Scope           int
	TypeString      string
	TypeIdentifier  string

	documentation Node
	typeName      Node // TypeName, nil for `var` with inferred type (legacy only)
	overrides     Node // *OverrideSpecifier, state-variable overrides only
	value         Node // initializer expression, nil if absent
}

func (n *VariableDeclaration) Kind() NodeKind { return KindVariableDeclaration }
func (n *VariableDeclaration) Children() []Node {
	return filterNonNil(n.documentation, n.typeName, n.overrides, n.value)
}
func (n *VariableDeclaration) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"documentation": filterNonNil(n.documentation),
		"typeName":      filterNonNil(n.typeName),
		"overrides":     filterNonNil(n.overrides),
		"value":         filterNonNil(n.value),
	}
}
func (n *VariableDeclaration) TypeName() Node  { return n.typeName }
func (n *VariableDeclaration) Overrides() Node { return n.overrides }
func (n *VariableDeclaration) Value() Node     { return n.value }

func (n *VariableDeclaration) VScope() (Node, bool) { return n.Context().Lookup(n.Scope) }

func (n *VariableDeclaration) Link() error {
	if _, ok := n.Context().Lookup(n.Scope); !ok {
		return &DanglingReferenceError{OwnerID: n.ID(), Attribute: "scope", TargetID: n.Scope}
	}
	return nil
}
