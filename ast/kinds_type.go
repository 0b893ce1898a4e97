// Copyright 2018 karma.run AG. All rights reserved.

package ast

// ElementaryTypeName represents a built-in type name (uint256, address,
// bool, bytes32, ...). A leaf.
type ElementaryTypeName struct {
	Header
	Name            string
	StateMutability string // "payable" for `address payable`, "" otherwise
}

func (n *ElementaryTypeName) Kind() NodeKind                    { return KindElementaryTypeName }
func (n *ElementaryTypeName) Children() []Node                  { return nil }
func (n *ElementaryTypeName) NamedRelations() map[string][]Node { return nil }

// UserDefinedTypeName represents a reference to a contract, interface,
// library, struct, enum, or user-defined value type by name (e.g. `Token`
// or `Lib.Item`).
type UserDefinedTypeName struct {
	Header
	Name                  string
	ReferencedDeclaration int

	pathNode Node // *IdentifierPath, present only in modern (>=0.8) trees
}

func (n *UserDefinedTypeName) Kind() NodeKind   { return KindUserDefinedTypeName }
func (n *UserDefinedTypeName) Children() []Node { return filterNonNil(n.pathNode) }
func (n *UserDefinedTypeName) NamedRelations() map[string][]Node {
	return map[string][]Node{"path": filterNonNil(n.pathNode)}
}
func (n *UserDefinedTypeName) PathNode() Node { return n.pathNode }

// VReferencedDeclaration dereferences ReferencedDeclaration. Required: a
// user-defined type name that cannot be resolved is a DanglingReference.
func (n *UserDefinedTypeName) VReferencedDeclaration() (Node, bool) {
	return n.Context().Lookup(n.ReferencedDeclaration)
}

func (n *UserDefinedTypeName) Link() error {
	if _, ok := n.Context().Lookup(n.ReferencedDeclaration); !ok {
		return &DanglingReferenceError{OwnerID: n.ID(), Attribute: "referencedDeclaration", TargetID: n.ReferencedDeclaration}
	}
	return nil
}

// ArrayTypeName represents `T[]` or `T[N]`.
type ArrayTypeName struct {
	Header
	baseType Node // TypeName
	length   Node // Expression, nil for dynamic arrays
}

func (n *ArrayTypeName) Kind() NodeKind   { return KindArrayTypeName }
func (n *ArrayTypeName) Children() []Node { return filterNonNil(n.baseType, n.length) }
func (n *ArrayTypeName) NamedRelations() map[string][]Node {
	return map[string][]Node{"baseType": filterNonNil(n.baseType), "length": filterNonNil(n.length)}
}
func (n *ArrayTypeName) BaseType() Node { return n.baseType }
func (n *ArrayTypeName) Length() Node   { return n.length }
func (n *ArrayTypeName) IsDynamic() bool { return n.length == nil }

// Mapping represents `mapping(K => V)`.
type Mapping struct {
	Header
	KeyName   string // named mapping parameter (>=0.8.18), "" otherwise
	ValueName string
	keyType   Node
	valueType Node
}

func (n *Mapping) Kind() NodeKind   { return KindMapping }
func (n *Mapping) Children() []Node { return filterNonNil(n.keyType, n.valueType) }
func (n *Mapping) NamedRelations() map[string][]Node {
	return map[string][]Node{"keyType": filterNonNil(n.keyType), "valueType": filterNonNil(n.valueType)}
}
func (n *Mapping) KeyType() Node   { return n.keyType }
func (n *Mapping) ValueType() Node { return n.valueType }

// FunctionTypeName represents `function(uint) external returns (bool)` used
// as a type (function-typed variables, callback parameters, ...).
type FunctionTypeName struct {
	Header
	Visibility      Visibility
	StateMutability StateMutability

	parameters       Node // *ParameterList
	returnParameters Node // *ParameterList
}

func (n *FunctionTypeName) Kind() NodeKind { return KindFunctionTypeName }
func (n *FunctionTypeName) Children() []Node {
	return filterNonNil(n.parameters, n.returnParameters)
}
func (n *FunctionTypeName) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"parameters":       filterNonNil(n.parameters),
		"returnParameters": filterNonNil(n.returnParameters),
	}
}
func (n *FunctionTypeName) Parameters() Node       { return n.parameters }
func (n *FunctionTypeName) ReturnParameters() Node { return n.returnParameters }
