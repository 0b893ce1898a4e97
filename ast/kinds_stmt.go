// Copyright 2018 karma.run AG. All rights reserved.

package ast

// Block represents a `{ ... }` statement list.
type Block struct {
	Header
	statements []Node
}

func (n *Block) Kind() NodeKind                    { return KindBlock }
func (n *Block) Children() []Node                  { return n.statements }
func (n *Block) NamedRelations() map[string][]Node { return namedRelationsFromChildren("statements", n.statements) }
func (n *Block) Statements() []Node                { return n.statements }

// UncheckedBlock represents `unchecked { ... }` (>=0.8.0).
type UncheckedBlock struct {
	Header
	statements []Node
}

func (n *UncheckedBlock) Kind() NodeKind                    { return KindUncheckedBlock }
func (n *UncheckedBlock) Children() []Node                  { return n.statements }
func (n *UncheckedBlock) NamedRelations() map[string][]Node { return namedRelationsFromChildren("statements", n.statements) }
func (n *UncheckedBlock) Statements() []Node                { return n.statements }

// IfStatement represents `if (cond) trueBody else falseBody`.
type IfStatement struct {
	Header
	condition Node
	trueBody  Node
	falseBody Node // nil if no else-branch
}

func (n *IfStatement) Kind() NodeKind { return KindIfStatement }
func (n *IfStatement) Children() []Node {
	return filterNonNil(n.condition, n.trueBody, n.falseBody)
}
func (n *IfStatement) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"condition": filterNonNil(n.condition),
		"trueBody":  filterNonNil(n.trueBody),
		"falseBody": filterNonNil(n.falseBody),
	}
}
func (n *IfStatement) Condition() Node { return n.condition }
func (n *IfStatement) TrueBody() Node  { return n.trueBody }
func (n *IfStatement) FalseBody() Node { return n.falseBody }

// ForStatement represents `for (init; cond; loop) body`. Any of init, cond,
// loop may be absent.
type ForStatement struct {
	Header
	initializationExpression Node
	condition                Node
	loopExpression           Node
	body                     Node
}

func (n *ForStatement) Kind() NodeKind { return KindForStatement }
func (n *ForStatement) Children() []Node {
	return filterNonNil(n.initializationExpression, n.condition, n.loopExpression, n.body)
}
func (n *ForStatement) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"initializationExpression": filterNonNil(n.initializationExpression),
		"condition":                filterNonNil(n.condition),
		"loopExpression":           filterNonNil(n.loopExpression),
		"body":                     filterNonNil(n.body),
	}
}
func (n *ForStatement) InitializationExpression() Node { return n.initializationExpression }
func (n *ForStatement) Condition() Node                { return n.condition }
func (n *ForStatement) LoopExpression() Node           { return n.loopExpression }
func (n *ForStatement) Body() Node                     { return n.body }

// WhileStatement represents `while (cond) body`.
type WhileStatement struct {
	Header
	condition Node
	body      Node
}

func (n *WhileStatement) Kind() NodeKind       { return KindWhileStatement }
func (n *WhileStatement) Children() []Node     { return filterNonNil(n.condition, n.body) }
func (n *WhileStatement) NamedRelations() map[string][]Node {
	return map[string][]Node{"condition": filterNonNil(n.condition), "body": filterNonNil(n.body)}
}
func (n *WhileStatement) Condition() Node { return n.condition }
func (n *WhileStatement) Body() Node      { return n.body }

// DoWhileStatement represents `do body while (cond);`.
type DoWhileStatement struct {
	Header
	body      Node
	condition Node
}

func (n *DoWhileStatement) Kind() NodeKind   { return KindDoWhileStatement }
func (n *DoWhileStatement) Children() []Node { return filterNonNil(n.body, n.condition) }
func (n *DoWhileStatement) NamedRelations() map[string][]Node {
	return map[string][]Node{"body": filterNonNil(n.body), "condition": filterNonNil(n.condition)}
}
func (n *DoWhileStatement) Body() Node      { return n.body }
func (n *DoWhileStatement) Condition() Node { return n.condition }

// Return represents `return;` or `return expr;`.
type Return struct {
	Header
	FunctionReturnParameters int
	expression               Node // nil for bare `return;`
}

func (n *Return) Kind() NodeKind   { return KindReturn }
func (n *Return) Children() []Node { return filterNonNil(n.expression) }
func (n *Return) NamedRelations() map[string][]Node {
	return map[string][]Node{"expression": filterNonNil(n.expression)}
}
func (n *Return) Expression() Node { return n.expression }

func (n *Return) VFunctionReturnParameters() (Node, bool) {
	return n.Context().Lookup(n.FunctionReturnParameters)
}

func (n *Return) Link() error {
	if _, ok := n.Context().Lookup(n.FunctionReturnParameters); !ok {
		return &DanglingReferenceError{OwnerID: n.ID(), Attribute: "functionReturnParameters", TargetID: n.FunctionReturnParameters}
	}
	return nil
}

// Break, Continue, Throw, PlaceholderStatement are leaves with no attributes.

type Break struct{ Header }

func (n *Break) Kind() NodeKind                    { return KindBreak }
func (n *Break) Children() []Node                  { return nil }
func (n *Break) NamedRelations() map[string][]Node { return nil }

type Continue struct{ Header }

func (n *Continue) Kind() NodeKind                    { return KindContinue }
func (n *Continue) Children() []Node                  { return nil }
func (n *Continue) NamedRelations() map[string][]Node { return nil }

// Throw represents the pre-0.4.13 `throw;` statement, superseded by revert.
type Throw struct{ Header }

func (n *Throw) Kind() NodeKind                    { return KindThrow }
func (n *Throw) Children() []Node                  { return nil }
func (n *Throw) NamedRelations() map[string][]Node { return nil }

// PlaceholderStatement represents the `_;` marker inside a modifier body.
type PlaceholderStatement struct{ Header }

func (n *PlaceholderStatement) Kind() NodeKind                    { return KindPlaceholderStatement }
func (n *PlaceholderStatement) Children() []Node                  { return nil }
func (n *PlaceholderStatement) NamedRelations() map[string][]Node { return nil }

// EmitStatement represents `emit Event(...)`.
type EmitStatement struct {
	Header
	eventCall Node // FunctionCall
}

func (n *EmitStatement) Kind() NodeKind                    { return KindEmitStatement }
func (n *EmitStatement) Children() []Node                  { return filterNonNil(n.eventCall) }
func (n *EmitStatement) NamedRelations() map[string][]Node { return map[string][]Node{"eventCall": filterNonNil(n.eventCall)} }
func (n *EmitStatement) EventCall() Node                   { return n.eventCall }

// RevertStatement represents `revert Error(...)` (>=0.8.4 custom errors).
type RevertStatement struct {
	Header
	errorCall Node // FunctionCall
}

func (n *RevertStatement) Kind() NodeKind                    { return KindRevertStatement }
func (n *RevertStatement) Children() []Node                  { return filterNonNil(n.errorCall) }
func (n *RevertStatement) NamedRelations() map[string][]Node { return map[string][]Node{"errorCall": filterNonNil(n.errorCall)} }
func (n *RevertStatement) ErrorCall() Node                   { return n.errorCall }

// ExpressionStatement represents a bare expression used as a statement.
type ExpressionStatement struct {
	Header
	expression Node
}

func (n *ExpressionStatement) Kind() NodeKind   { return KindExpressionStatement }
func (n *ExpressionStatement) Children() []Node { return filterNonNil(n.expression) }
func (n *ExpressionStatement) NamedRelations() map[string][]Node {
	return map[string][]Node{"expression": filterNonNil(n.expression)}
}
func (n *ExpressionStatement) Expression() Node { return n.expression }

// VariableDeclarationStatement represents `T a = v;`, `T a;`, or the tuple
// form `(T a, , T c) = (...)`. Assignments mirrors the tuple's positions,
// with nil entries for components that were not declared (and so have no
// corresponding VariableDeclaration); Declarations holds only the ones that
// were.
type VariableDeclarationStatement struct {
	Header
	Assignments []*int // nil entry == omitted tuple position

	documentation Node
	declarations  []Node // []*VariableDeclaration, no nils
	initialValue  Node   // nil if absent
}

func (n *VariableDeclarationStatement) Kind() NodeKind { return KindVariableDeclarationStatement }
func (n *VariableDeclarationStatement) Children() []Node {
	out := make([]Node, 0, 2+len(n.declarations))
	out = append(out, filterNonNil(n.documentation)...)
	out = append(out, n.declarations...)
	out = append(out, filterNonNil(n.initialValue)...)
	return out
}
func (n *VariableDeclarationStatement) NamedRelations() map[string][]Node {
	return map[string][]Node{
		"documentation": filterNonNil(n.documentation),
		"declarations":  n.declarations,
		"initialValue":  filterNonNil(n.initialValue),
	}
}
func (n *VariableDeclarationStatement) Declarations() []Node { return n.declarations }
func (n *VariableDeclarationStatement) InitialValue() Node   { return n.initialValue }

// VAssignments dereferences Assignments element-wise, preserving nil entries
// for omitted tuple positions (spec.md §8 "Boundary behaviors").
func (n *VariableDeclarationStatement) VAssignments() []Node {
	ctx := n.Context()
	out := make([]Node, len(n.Assignments))
	for i, id := range n.Assignments {
		if id == nil {
			continue
		}
		if target, ok := ctx.Lookup(*id); ok {
			out[i] = target
		}
	}
	return out
}

// TryStatement represents `try external.call() returns (...) { } catch { }`.
type TryStatement struct {
	Header
	externalCall Node   // FunctionCall
	clauses      []Node // []*TryCatchClause
}

func (n *TryStatement) Kind() NodeKind { return KindTryStatement }
func (n *TryStatement) Children() []Node {
	return append(filterNonNil(n.externalCall), n.clauses...)
}
func (n *TryStatement) NamedRelations() map[string][]Node {
	return map[string][]Node{"externalCall": filterNonNil(n.externalCall), "clauses": n.clauses}
}
func (n *TryStatement) ExternalCall() Node { return n.externalCall }
func (n *TryStatement) Clauses() []Node    { return n.clauses }

// TryCatchClause represents one `returns (...) { }` or `catch ... { }` arm.
// ErrorName is "" for the success (returns) clause.
type TryCatchClause struct {
	Header
	ErrorName string

	parameters Node // *ParameterList, nil if the clause binds nothing
	block      Node // *Block
}

func (n *TryCatchClause) Kind() NodeKind   { return KindTryCatchClause }
func (n *TryCatchClause) Children() []Node { return filterNonNil(n.parameters, n.block) }
func (n *TryCatchClause) NamedRelations() map[string][]Node {
	return map[string][]Node{"parameters": filterNonNil(n.parameters), "block": filterNonNil(n.block)}
}
func (n *TryCatchClause) Parameters() Node { return n.parameters }
func (n *TryCatchClause) Block() Node      { return n.block }

// InlineAssembly represents a `assembly { ... }` block. Parsing Yul itself
// is out of scope (spec.md §1 treats grammar-driven parsers as external,
// string-to-tree functions); the node is a leaf, per spec.md §4.5's
// "Leaves" list. The readers do not keep the Yul fragment: Raw() is nil on
// reader-built nodes.
type InlineAssembly struct {
	Header
}

func (n *InlineAssembly) Kind() NodeKind                    { return KindInlineAssembly }
func (n *InlineAssembly) Children() []Node                  { return nil }
func (n *InlineAssembly) NamedRelations() map[string][]Node { return nil }
