// Copyright 2018 karma.run AG. All rights reserved.

// Package ast defines a normalized, strongly-typed, in-memory representation
// of Solidity source programs: the node catalog, the context that owns a
// compilation's nodes, the factory that builds and copies them, and the
// sanity checker that proves a populated tree is well formed.
//
// Nodes are reached through the reader packages (solc-typed-ast/reader/...)
// or built directly with a Factory; this package never parses compiler JSON
// itself.
package ast // import "github.com/JorikSchellekens/solc-typed-ast/ast"

import "encoding/json"

// NodeKind identifies a concrete AST node variant. It corresponds 1:1 to the
// compiler's nodeType (modern schema) or name (legacy schema) tag.
type NodeKind string

const (
	KindSourceUnit                    NodeKind = "SourceUnit"
	KindPragmaDirective               NodeKind = "PragmaDirective"
	KindImportDirective               NodeKind = "ImportDirective"
	KindInheritanceSpecifier          NodeKind = "InheritanceSpecifier"
	KindModifierInvocation            NodeKind = "ModifierInvocation"
	KindOverrideSpecifier             NodeKind = "OverrideSpecifier"
	KindParameterList                 NodeKind = "ParameterList"
	KindUsingForDirective             NodeKind = "UsingForDirective"
	KindStructuredDocumentation       NodeKind = "StructuredDocumentation"
	KindIdentifierPath                NodeKind = "IdentifierPath"
	KindContractDefinition            NodeKind = "ContractDefinition"
	KindFunctionDefinition            NodeKind = "FunctionDefinition"
	KindModifierDefinition            NodeKind = "ModifierDefinition"
	KindEventDefinition               NodeKind = "EventDefinition"
	KindErrorDefinition               NodeKind = "ErrorDefinition"
	KindStructDefinition              NodeKind = "StructDefinition"
	KindEnumDefinition                NodeKind = "EnumDefinition"
	KindEnumValue                     NodeKind = "EnumValue"
	KindUserDefinedValueTypeDef       NodeKind = "UserDefinedValueTypeDefinition"
	KindVariableDeclaration           NodeKind = "VariableDeclaration"
	KindElementaryTypeName            NodeKind = "ElementaryTypeName"
	KindUserDefinedTypeName           NodeKind = "UserDefinedTypeName"
	KindArrayTypeName                 NodeKind = "ArrayTypeName"
	KindMapping                       NodeKind = "Mapping"
	KindFunctionTypeName              NodeKind = "FunctionTypeName"
	KindBlock                         NodeKind = "Block"
	KindUncheckedBlock                NodeKind = "UncheckedBlock"
	KindIfStatement                   NodeKind = "IfStatement"
	KindForStatement                  NodeKind = "ForStatement"
	KindWhileStatement                NodeKind = "WhileStatement"
	KindDoWhileStatement              NodeKind = "DoWhileStatement"
	KindReturn                        NodeKind = "Return"
	KindBreak                         NodeKind = "Break"
	KindContinue                      NodeKind = "Continue"
	KindThrow                         NodeKind = "Throw"
	KindEmitStatement                 NodeKind = "EmitStatement"
	KindRevertStatement               NodeKind = "RevertStatement"
	KindExpressionStatement           NodeKind = "ExpressionStatement"
	KindVariableDeclarationStatement  NodeKind = "VariableDeclarationStatement"
	KindTryStatement                  NodeKind = "TryStatement"
	KindTryCatchClause                NodeKind = "TryCatchClause"
	KindInlineAssembly                NodeKind = "InlineAssembly"
	KindPlaceholderStatement          NodeKind = "PlaceholderStatement"
	KindLiteral                       NodeKind = "Literal"
	KindIdentifier                    NodeKind = "Identifier"
	KindMemberAccess                  NodeKind = "MemberAccess"
	KindIndexAccess                   NodeKind = "IndexAccess"
	KindIndexRangeAccess              NodeKind = "IndexRangeAccess"
	KindUnaryOperation                NodeKind = "UnaryOperation"
	KindBinaryOperation               NodeKind = "BinaryOperation"
	KindAssignment                    NodeKind = "Assignment"
	KindConditional                   NodeKind = "Conditional"
	KindFunctionCall                  NodeKind = "FunctionCall"
	KindFunctionCallOptions           NodeKind = "FunctionCallOptions"
	KindNewExpression                 NodeKind = "NewExpression"
	KindTupleExpression               NodeKind = "TupleExpression"
	KindElementaryTypeNameExpression  NodeKind = "ElementaryTypeNameExpression"
)

// Node is implemented by every concrete AST node variant.
type Node interface {
	Kind() NodeKind
	ID() int
	Src() Src
	Parent() Node
	Context() *Context
	Children() []Node
	// NamedRelations returns the node's named structural relations, i.e. the
	// labeled accessors (e.g. "parameters", "body") that denote structural
	// children. It excludes named relations to non-children (vScope and
	// friends). The sanity checker verifies its union equals Children().
	NamedRelations() map[string][]Node
	Raw() json.RawMessage
	// Link resolves this node's referential attributes through its Context,
	// failing DanglingReference for any required reference that cannot be
	// resolved. It is a no-op for nodes without referential attributes.
	Link() error

	setParent(Node)
	setContext(*Context)
	setRaw(json.RawMessage)
}

// Src is a source-location triple, as emitted by the compiler: offset,
// length, and an index into the compilation's file list.
type Src struct {
	Offset    int
	Length    int
	FileIndex int
}

// Header carries the four universal attributes shared by every node
// (id, src, parent, raw) plus the owning context. It must be embedded by
// every concrete node type. Header's own methods satisfy all but the
// Kind/Children/NamedRelations methods of the Node interface; concrete
// types supply those. Header also supplies a no-op Link, which kinds with
// referential attributes override.
type Header struct {
	id     int
	src    Src
	parent Node
	ctx    *Context
	raw    json.RawMessage
}

func (h *Header) ID() int                 { return h.id }
func (h *Header) Src() Src                { return h.src }
func (h *Header) Parent() Node            { return h.parent }
func (h *Header) Context() *Context       { return h.ctx }
func (h *Header) Raw() json.RawMessage    { return h.raw }
func (h *Header) setParent(p Node)        { h.parent = p }
func (h *Header) setContext(c *Context)   { h.ctx = c }
func (h *Header) setRaw(r json.RawMessage) { h.raw = r }

// Link is the default no-op; node kinds with referential attributes
// override it.
func (h *Header) Link() error { return nil }

// PreTraverse walks root's subtree in pre-order, calling f on every node,
// root itself included (use Descendants to leave root out).
func PreTraverse(root Node, f func(Node)) {
	f(root)
	for _, child := range root.Children() {
		PreTraverse(child, f)
	}
}

// PostTraverse walks root's subtree in post-order.
func PostTraverse(root Node, f func(Node)) {
	for _, child := range root.Children() {
		PostTraverse(child, f)
	}
	f(root)
}

// Descendants returns a pre-order enumeration of root's subtree, optionally
// including root itself.
func Descendants(root Node, includeSelf bool) []Node {
	out := make([]Node, 0, 16)
	PreTraverse(root, func(n Node) {
		if n == root && !includeSelf {
			return
		}
		out = append(out, n)
	})
	return out
}

// Walk is an alias for PreTraverse, spelled the way spec.md's §4.6 names it:
// a pre-order, callback-driven traversal.
func Walk(root Node, visitor func(Node)) { PreTraverse(root, visitor) }

// GetChildrenByKind returns every descendant of root (root included) whose
// concrete Kind() equals kind, in pre-order.
func GetChildrenByKind(root Node, kind NodeKind) []Node {
	out := make([]Node, 0, 8)
	PreTraverse(root, func(n Node) {
		if n.Kind() == kind {
			out = append(out, n)
		}
	})
	return out
}

// namedRelationsFromChildren is a convenience for node kinds whose entire
// child list forms one named relation (e.g. Block's "statements").
func namedRelationsFromChildren(label string, children []Node) map[string][]Node {
	return map[string][]Node{label: children}
}

// filterNonNil drops nil Node entries from an internal []Node build-up
// helper (used by constructors assembling Children() from optional fields).
func filterNonNil(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
