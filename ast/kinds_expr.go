// Copyright 2018 karma.run AG. All rights reserved.

package ast

// LiteralKind distinguishes a Literal's lexical category.
type LiteralKind string

const (
	LiteralKindNumber          LiteralKind = "number"
	LiteralKindBool            LiteralKind = "bool"
	LiteralKindString          LiteralKind = "string"
	LiteralKindHexString       LiteralKind = "hexString"
	LiteralKindUnicodeString   LiteralKind = "unicodeString"
)

// Literal represents a literal value (number, bool, string, hex/unicode
// string). A leaf.
type Literal struct {
	Header
	LiteralKind     LiteralKind
	Value           string // normalized textual value; for address literals, EIP-55 checksummed (see reader)
	HexValue        string
	Subdenomination string // "wei", "ether", "seconds", ..., "" if none
}

func (n *Literal) Kind() NodeKind                    { return KindLiteral }
func (n *Literal) Children() []Node                  { return nil }
func (n *Literal) NamedRelations() map[string][]Node { return nil }

// Identifier represents a bare name reference. ReferencedDeclaration may be
// absent (spec.md §9 open question): some builds omit it even for resolved
// identifiers, so HasReferencedDecl must be checked rather than treating 0
// as "absent".
type Identifier struct {
	Header
	Name                   string
	ReferencedDeclaration  int
	HasReferencedDecl      bool
	OverloadedDeclarations []int
}

func (n *Identifier) Kind() NodeKind                    { return KindIdentifier }
func (n *Identifier) Children() []Node                  { return nil }
func (n *Identifier) NamedRelations() map[string][]Node { return nil }

// VReferencedDeclaration dereferences ReferencedDeclaration, tolerating
// absence or a dangling id (per spec.md §9, never a hard failure here).
func (n *Identifier) VReferencedDeclaration() (Node, bool) {
	if !n.HasReferencedDecl {
		return nil, false
	}
	return n.Context().Lookup(n.ReferencedDeclaration)
}

// MemberAccess represents `expr.member`.
type MemberAccess struct {
	Header
	MemberName             string
	ReferencedDeclaration  int
	HasReferencedDecl      bool

	expression Node
}

func (n *MemberAccess) Kind() NodeKind   { return KindMemberAccess }
func (n *MemberAccess) Children() []Node { return filterNonNil(n.expression) }
func (n *MemberAccess) NamedRelations() map[string][]Node {
	return map[string][]Node{"expression": filterNonNil(n.expression)}
}
func (n *MemberAccess) Expression() Node { return n.expression }

func (n *MemberAccess) VReferencedDeclaration() (Node, bool) {
	if !n.HasReferencedDecl {
		return nil, false
	}
	return n.Context().Lookup(n.ReferencedDeclaration)
}

// IndexAccess represents `base[index]`. Index may be absent in the single
// context where Solidity allows it: the element-type position of a `new
// T[](...)` array type expression, e.g. the `[]` in `new uint[]`.
type IndexAccess struct {
	Header
	baseExpression  Node
	indexExpression Node // nil if omitted
}

func (n *IndexAccess) Kind() NodeKind { return KindIndexAccess }
func (n *IndexAccess) Children() []Node {
	return filterNonNil(n.baseExpression, n.indexExpression)
}
func (n *IndexAccess) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"baseExpression":  filterNonNil(n.baseExpression),
		"indexExpression": filterNonNil(n.indexExpression),
	}
}
func (n *IndexAccess) BaseExpression() Node  { return n.baseExpression }
func (n *IndexAccess) IndexExpression() Node { return n.indexExpression }

// IndexRangeAccess represents `base[start:end]` (calldata/memory slices).
type IndexRangeAccess struct {
	Header
	baseExpression  Node
	startExpression Node // nil if omitted
	endExpression   Node // nil if omitted
}

func (n *IndexRangeAccess) Kind() NodeKind { return KindIndexRangeAccess }
func (n *IndexRangeAccess) Children() []Node {
	return filterNonNil(n.baseExpression, n.startExpression, n.endExpression)
}
func (n *IndexRangeAccess) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"baseExpression":  filterNonNil(n.baseExpression),
		"startExpression": filterNonNil(n.startExpression),
		"endExpression":   filterNonNil(n.endExpression),
	}
}
func (n *IndexRangeAccess) BaseExpression() Node  { return n.baseExpression }
func (n *IndexRangeAccess) StartExpression() Node { return n.startExpression }
func (n *IndexRangeAccess) EndExpression() Node   { return n.endExpression }

// UnaryOperation represents `!x`, `-x`, `x++`, `++x`, etc.
type UnaryOperation struct {
	Header
	Operator string
	Prefix   bool

	subExpression Node
}

func (n *UnaryOperation) Kind() NodeKind   { return KindUnaryOperation }
func (n *UnaryOperation) Children() []Node { return filterNonNil(n.subExpression) }
func (n *UnaryOperation) NamedRelations() map[string][]Node {
	return map[string][]Node{"subExpression": filterNonNil(n.subExpression)}
}
func (n *UnaryOperation) SubExpression() Node { return n.subExpression }

// BinaryOperation represents `a OP b`.
type BinaryOperation struct {
	Header
	Operator string

	leftExpression  Node
	rightExpression Node
}

func (n *BinaryOperation) Kind() NodeKind { return KindBinaryOperation }
func (n *BinaryOperation) Children() []Node {
	return filterNonNil(n.leftExpression, n.rightExpression)
}
func (n *BinaryOperation) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"leftExpression":  filterNonNil(n.leftExpression),
		"rightExpression": filterNonNil(n.rightExpression),
	}
}
func (n *BinaryOperation) LeftExpression() Node  { return n.leftExpression }
func (n *BinaryOperation) RightExpression() Node { return n.rightExpression }

// Assignment represents `lhs OP= rhs`.
type Assignment struct {
	Header
	Operator string

	leftHandSide  Node
	rightHandSide Node
}

func (n *Assignment) Kind() NodeKind { return KindAssignment }
func (n *Assignment) Children() []Node {
	return filterNonNil(n.leftHandSide, n.rightHandSide)
}
func (n *Assignment) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"leftHandSide":  filterNonNil(n.leftHandSide),
		"rightHandSide": filterNonNil(n.rightHandSide),
	}
}
func (n *Assignment) LeftHandSide() Node  { return n.leftHandSide }
func (n *Assignment) RightHandSide() Node { return n.rightHandSide }

// Conditional represents `cond ? ifTrue : ifFalse`.
type Conditional struct {
	Header
	condition      Node
	trueExpression Node
	falseExpression Node
}

func (n *Conditional) Kind() NodeKind { return KindConditional }
func (n *Conditional) Children() []Node {
	return filterNonNil(n.condition, n.trueExpression, n.falseExpression)
}
func (n *Conditional) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"condition":       filterNonNil(n.condition),
		"trueExpression":  filterNonNil(n.trueExpression),
		"falseExpression": filterNonNil(n.falseExpression),
	}
}
func (n *Conditional) Condition() Node       { return n.condition }
func (n *Conditional) TrueExpression() Node  { return n.trueExpression }
func (n *Conditional) FalseExpression() Node { return n.falseExpression }

// FunctionCallKind distinguishes ordinary calls from type conversions and
// struct-constructor calls.
type FunctionCallKind string

const (
	FunctionCallKindFunctionCall          FunctionCallKind = "functionCall"
	FunctionCallKindTypeConversion        FunctionCallKind = "typeConversion"
	FunctionCallKindStructConstructorCall FunctionCallKind = "structConstructorCall"
)

// FunctionCall represents `f(a, b)`, `T(x)`, or `S({a: 1, b: 2})`.
type FunctionCall struct {
	Header
	FunctionCallKind FunctionCallKind
	Names            []string // named-argument labels, parallel to Arguments; empty for positional calls

	expression Node
	arguments  []Node
}

func (n *FunctionCall) Kind() NodeKind { return KindFunctionCall }
func (n *FunctionCall) Children() []Node {
	return append(filterNonNil(n.expression), n.arguments...)
}
func (n *FunctionCall) NamedRelations() map[string][]Node {
	return map[string][]Node{"expression": filterNonNil(n.expression), "arguments": n.arguments}
}
func (n *FunctionCall) Expression() Node { return n.expression }
func (n *FunctionCall) Arguments() []Node { return n.arguments }

// FunctionCallOptions represents `f{value: 1, gas: 2}(...)`.
type FunctionCallOptions struct {
	Header
	Names []string

	expression Node
	options    []Node
}

func (n *FunctionCallOptions) Kind() NodeKind { return KindFunctionCallOptions }
func (n *FunctionCallOptions) Children() []Node {
	return append(filterNonNil(n.expression), n.options...)
}
func (n *FunctionCallOptions) NamedRelations() map[string][]Node {
	return map[string][]Node{"expression": filterNonNil(n.expression), "options": n.options}
}
func (n *FunctionCallOptions) Expression() Node { return n.expression }
func (n *FunctionCallOptions) Options() []Node  { return n.options }

// NewExpression represents `new T`.
type NewExpression struct {
	Header
	typeName Node
}

func (n *NewExpression) Kind() NodeKind                    { return KindNewExpression }
func (n *NewExpression) Children() []Node                  { return filterNonNil(n.typeName) }
func (n *NewExpression) NamedRelations() map[string][]Node { return map[string][]Node{"typeName": filterNonNil(n.typeName)} }
func (n *NewExpression) TypeName() Node                    { return n.typeName }

// TupleExpression represents `(a, , c)` or, when IsInlineArray is true, an
// inline array literal `[a, b, c]`. Components mirrors the tuple's
// positions; a nil entry marks an omitted component (spec.md §8 "Tuple
// omissions").
type TupleExpression struct {
	Header
	IsInlineArray bool

	components []Node // nil entries preserved positionally
}

func (n *TupleExpression) Kind() NodeKind { return KindTupleExpression }
func (n *TupleExpression) Children() []Node {
	return filterNonNil(n.components...)
}
func (n *TupleExpression) NamedRelations() map[string][]Node {
	return map[string][]Node{"components": filterNonNil(n.components...)}
}

// Components returns the tuple's positional components, preserving nil
// entries for omitted positions.
func (n *TupleExpression) Components() []Node { return n.components }

// ElementaryTypeNameExpression represents an elementary type used as an
// expression, e.g. the `uint256` in `type(uint256).max`.
type ElementaryTypeNameExpression struct {
	Header
	typeName Node // ElementaryTypeName
}

func (n *ElementaryTypeNameExpression) Kind() NodeKind { return KindElementaryTypeNameExpression }
func (n *ElementaryTypeNameExpression) Children() []Node {
	return filterNonNil(n.typeName)
}
func (n *ElementaryTypeNameExpression) NamedRelations() map[string][]Node {
	return map[string][]Node{"typeName": filterNonNil(n.typeName)}
}
func (n *ElementaryTypeNameExpression) TypeName() Node { return n.typeName }
