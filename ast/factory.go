// Copyright 2018 karma.run AG. All rights reserved.

package ast

// Factory builds nodes into a single Context, assigning fresh ids and
// wiring parent pointers. It is the only supported way to construct nodes
// outside of the reader packages (spec.md §4.2).
type Factory struct {
	ctx       *Context
	pendingID *int
}

// NewFactory returns a Factory that allocates ids from and registers nodes
// into ctx.
func NewFactory(ctx *Context) *Factory {
	return &Factory{ctx: ctx}
}

// Context returns the factory's owning context.
func (f *Factory) Context() *Context { return f.ctx }

// SetNextID overrides the id the factory's next Make* call assigns, instead
// of drawing one from the context's counter. It is consumed by exactly one
// subsequent construction and then cleared. This is how the reader
// packages preserve the compiler's own node ids (needed so that reference
// attributes like `scope` and `referencedDeclaration`, copied verbatim from
// the JSON, still resolve) while still going through the factory's normal
// construction path.
func (f *Factory) SetNextID(id int) { f.pendingID = &id }

// new allocates an id (the pending override if SetNextID was just called,
// otherwise a fresh one), sets n's src and context, and registers n into
// f.ctx. Every
// per-kind constructor below funnels through it so id assignment and
// registration happen in exactly one place.
func (f *Factory) new(n Node, src Src) {
	h := headerOf(n)
	if f.pendingID != nil {
		h.id = *f.pendingID
		f.pendingID = nil
	} else {
		h.id = f.ctx.FreshID()
	}
	h.src = src
	h.ctx = f.ctx
	f.ctx.Register(n)
	f.ctx.bumpTo(h.id)
}

// attach sets child's parent pointer to parent. Constructors call it for
// every structural child they are handed.
func attach(parent Node, children ...Node) {
	for _, c := range children {
		if c != nil {
			c.setParent(parent)
		}
	}
}

// headerOf extracts the embedded *Header from any concrete node via a type
// assertion against a tiny private interface, avoiding per-kind
// boilerplate in every constructor.
func headerOf(n Node) *Header {
	switch v := n.(type) {
	case interface{ header() *Header }:
		return v.header()
	}
	panic("ast: node does not embed Header")
}

// Every concrete node type gets a tiny header() accessor so the factory can
// reach its embedded Header without reflection.
func (n *SourceUnit) header() *Header                       { return &n.Header }
func (n *PragmaDirective) header() *Header                  { return &n.Header }
func (n *ImportDirective) header() *Header                  { return &n.Header }
func (n *InheritanceSpecifier) header() *Header             { return &n.Header }
func (n *ModifierInvocation) header() *Header                { return &n.Header }
func (n *OverrideSpecifier) header() *Header                 { return &n.Header }
func (n *ParameterList) header() *Header                     { return &n.Header }
func (n *UsingForDirective) header() *Header                 { return &n.Header }
func (n *StructuredDocumentation) header() *Header           { return &n.Header }
func (n *IdentifierPath) header() *Header                    { return &n.Header }
func (n *ContractDefinition) header() *Header                { return &n.Header }
func (n *FunctionDefinition) header() *Header                { return &n.Header }
func (n *ModifierDefinition) header() *Header                { return &n.Header }
func (n *EventDefinition) header() *Header                   { return &n.Header }
func (n *ErrorDefinition) header() *Header                   { return &n.Header }
func (n *StructDefinition) header() *Header                  { return &n.Header }
func (n *EnumDefinition) header() *Header                    { return &n.Header }
func (n *EnumValue) header() *Header                         { return &n.Header }
func (n *UserDefinedValueTypeDefinition) header() *Header    { return &n.Header }
func (n *VariableDeclaration) header() *Header                { return &n.Header }
func (n *ElementaryTypeName) header() *Header                 { return &n.Header }
func (n *UserDefinedTypeName) header() *Header                { return &n.Header }
func (n *ArrayTypeName) header() *Header                      { return &n.Header }
func (n *Mapping) header() *Header                            { return &n.Header }
func (n *FunctionTypeName) header() *Header                   { return &n.Header }
func (n *Block) header() *Header                              { return &n.Header }
func (n *UncheckedBlock) header() *Header                     { return &n.Header }
func (n *IfStatement) header() *Header                        { return &n.Header }
func (n *ForStatement) header() *Header                       { return &n.Header }
func (n *WhileStatement) header() *Header                     { return &n.Header }
func (n *DoWhileStatement) header() *Header                   { return &n.Header }
func (n *Return) header() *Header                             { return &n.Header }
func (n *Break) header() *Header                              { return &n.Header }
func (n *Continue) header() *Header                           { return &n.Header }
func (n *Throw) header() *Header                              { return &n.Header }
func (n *EmitStatement) header() *Header                      { return &n.Header }
func (n *RevertStatement) header() *Header                    { return &n.Header }
func (n *ExpressionStatement) header() *Header                { return &n.Header }
func (n *VariableDeclarationStatement) header() *Header       { return &n.Header }
func (n *TryStatement) header() *Header                       { return &n.Header }
func (n *TryCatchClause) header() *Header                     { return &n.Header }
func (n *InlineAssembly) header() *Header                     { return &n.Header }
func (n *PlaceholderStatement) header() *Header               { return &n.Header }
func (n *Literal) header() *Header                            { return &n.Header }
func (n *Identifier) header() *Header                         { return &n.Header }
func (n *MemberAccess) header() *Header                       { return &n.Header }
func (n *IndexAccess) header() *Header                        { return &n.Header }
func (n *IndexRangeAccess) header() *Header                   { return &n.Header }
func (n *UnaryOperation) header() *Header                     { return &n.Header }
func (n *BinaryOperation) header() *Header                    { return &n.Header }
func (n *Assignment) header() *Header                         { return &n.Header }
func (n *Conditional) header() *Header                        { return &n.Header }
func (n *FunctionCall) header() *Header                       { return &n.Header }
func (n *FunctionCallOptions) header() *Header                { return &n.Header }
func (n *NewExpression) header() *Header                      { return &n.Header }
func (n *TupleExpression) header() *Header                    { return &n.Header }
func (n *ElementaryTypeNameExpression) header() *Header       { return &n.Header }

// MakeSourceUnit constructs a fresh SourceUnit, registers it, and wires
// every entry of nodes as its child.
func (f *Factory) MakeSourceUnit(src Src, absolutePath, license string, exportedSymbols map[string][]int, nodes []Node) *SourceUnit {
	n := &SourceUnit{AbsolutePath: absolutePath, License: license, ExportedSymbols: exportedSymbols, nodes: nodes}
	f.new(n, src)
	attach(n, nodes...)
	return n
}

func (f *Factory) MakePragmaDirective(src Src, literals []string) *PragmaDirective {
	n := &PragmaDirective{Literals: literals}
	f.new(n, src)
	return n
}

func (f *Factory) MakeImportDirective(src Src, file, absolutePath, unitAlias string, scope, sourceUnitID int, aliases []SymbolAlias) *ImportDirective {
	n := &ImportDirective{File: file, AbsolutePath: absolutePath, UnitAlias: unitAlias, Scope: scope, SourceUnitID: sourceUnitID, SymbolAliases: aliases}
	f.new(n, src)
	return n
}

func (f *Factory) MakeInheritanceSpecifier(src Src, baseName Node, arguments []Node) *InheritanceSpecifier {
	n := &InheritanceSpecifier{baseName: baseName, arguments: arguments}
	f.new(n, src)
	attach(n, baseName)
	attach(n, arguments...)
	return n
}

func (f *Factory) MakeModifierInvocation(src Src, modifierName Node, arguments []Node) *ModifierInvocation {
	n := &ModifierInvocation{modifierName: modifierName, arguments: arguments}
	f.new(n, src)
	attach(n, modifierName)
	attach(n, arguments...)
	return n
}

func (f *Factory) MakeOverrideSpecifier(src Src, overrides []Node) *OverrideSpecifier {
	n := &OverrideSpecifier{overrides: overrides}
	f.new(n, src)
	attach(n, overrides...)
	return n
}

func (f *Factory) MakeParameterList(src Src, parameters []Node) *ParameterList {
	n := &ParameterList{parameters: parameters}
	f.new(n, src)
	attach(n, parameters...)
	return n
}

func (f *Factory) MakeUsingForDirective(src Src, global bool, libraryName, typeName Node) *UsingForDirective {
	n := &UsingForDirective{Global: global, libraryName: libraryName, typeName: typeName}
	f.new(n, src)
	attach(n, libraryName, typeName)
	return n
}

func (f *Factory) MakeStructuredDocumentation(src Src, text string) *StructuredDocumentation {
	n := &StructuredDocumentation{Text: text}
	f.new(n, src)
	return n
}

func (f *Factory) MakeIdentifierPath(src Src, name string, referencedDeclaration int, has bool) *IdentifierPath {
	n := &IdentifierPath{Name: name, ReferencedDeclaration: referencedDeclaration, HasReferencedDecl: has}
	f.new(n, src)
	return n
}

func (f *Factory) MakeContractDefinition(src Src, name string, kind ContractKind, abstract, fullyImplemented bool, scope int, linearized, usedErrors []int, documentation Node, legacyDoc string, baseContracts, nodes []Node) *ContractDefinition {
	n := &ContractDefinition{
		Name: name, ContractKind: kind, Abstract: abstract, FullyImplemented: fullyImplemented,
		Scope: scope, LinearizedBaseContracts: linearized, UsedErrors: usedErrors,
		documentation: documentation, LegacyDocumentation: legacyDoc,
		baseContracts: baseContracts, nodes: nodes,
	}
	f.new(n, src)
	attach(n, documentation)
	attach(n, baseContracts...)
	attach(n, nodes...)
	return n
}

func (f *Factory) MakeFunctionDefinition(src Src, name string, kind FunctionKind, visibility Visibility, mutability StateMutability, virtual, implemented bool, scope int, legacyDoc string, documentation, parameters, returnParameters Node, modifiers []Node, overrides, body Node) *FunctionDefinition {
	n := &FunctionDefinition{
		Name: name, FunctionKind: kind, Visibility: visibility, StateMutability: mutability,
		Virtual: virtual, Implemented: implemented, Scope: scope, LegacyDocumentation: legacyDoc,
		documentation: documentation, parameters: parameters, returnParameters: returnParameters,
		modifiers: modifiers, overrides: overrides, body: body,
	}
	f.new(n, src)
	attach(n, documentation, parameters, returnParameters, overrides, body)
	attach(n, modifiers...)
	return n
}

func (f *Factory) MakeModifierDefinition(src Src, name string, visibility Visibility, virtual bool, documentation, parameters, overrides, body Node) *ModifierDefinition {
	n := &ModifierDefinition{Name: name, Visibility: visibility, Virtual: virtual, documentation: documentation, parameters: parameters, overrides: overrides, body: body}
	f.new(n, src)
	attach(n, documentation, parameters, overrides, body)
	return n
}

func (f *Factory) MakeEventDefinition(src Src, name string, anonymous bool, documentation, parameters Node) *EventDefinition {
	n := &EventDefinition{Name: name, Anonymous: anonymous, documentation: documentation, parameters: parameters}
	f.new(n, src)
	attach(n, documentation, parameters)
	return n
}

func (f *Factory) MakeErrorDefinition(src Src, name string, documentation, parameters Node) *ErrorDefinition {
	n := &ErrorDefinition{Name: name, documentation: documentation, parameters: parameters}
	f.new(n, src)
	attach(n, documentation, parameters)
	return n
}

func (f *Factory) MakeStructDefinition(src Src, name string, scope int, visibility Visibility, members []Node) *StructDefinition {
	n := &StructDefinition{Name: name, Scope: scope, Visibility: visibility, members: members}
	f.new(n, src)
	attach(n, members...)
	return n
}

func (f *Factory) MakeEnumDefinition(src Src, name string, values []Node) *EnumDefinition {
	n := &EnumDefinition{Name: name, values: values}
	f.new(n, src)
	attach(n, values...)
	return n
}

func (f *Factory) MakeEnumValue(src Src, name string) *EnumValue {
	n := &EnumValue{Name: name}
	f.new(n, src)
	return n
}

func (f *Factory) MakeUserDefinedValueTypeDefinition(src Src, name string, underlyingType Node) *UserDefinedValueTypeDefinition {
	n := &UserDefinedValueTypeDefinition{Name: name, underlyingType: underlyingType}
	f.new(n, src)
	attach(n, underlyingType)
	return n
}

func (f *Factory) MakeVariableDeclaration(src Src, name string, constant, stateVariable, indexed bool, visibility Visibility, storageLocation StorageLocation, scope int, typeString, typeIdentifier string, documentation, typeName, overrides, value Node) *VariableDeclaration {
	n := &VariableDeclaration{
		Name: name, Constant: constant, StateVariable: stateVariable, Indexed: indexed,
		Visibility: visibility, StorageLocation: storageLocation, Scope: scope,
		TypeString: typeString, TypeIdentifier: typeIdentifier,
		documentation: documentation, typeName: typeName, overrides: overrides, value: value,
	}
	f.new(n, src)
	attach(n, documentation, typeName, overrides, value)
	return n
}

func (f *Factory) MakeElementaryTypeName(src Src, name, stateMutability string) *ElementaryTypeName {
	n := &ElementaryTypeName{Name: name, StateMutability: stateMutability}
	f.new(n, src)
	return n
}

func (f *Factory) MakeUserDefinedTypeName(src Src, name string, referencedDeclaration int, pathNode Node) *UserDefinedTypeName {
	n := &UserDefinedTypeName{Name: name, ReferencedDeclaration: referencedDeclaration, pathNode: pathNode}
	f.new(n, src)
	attach(n, pathNode)
	return n
}

func (f *Factory) MakeArrayTypeName(src Src, baseType, length Node) *ArrayTypeName {
	n := &ArrayTypeName{baseType: baseType, length: length}
	f.new(n, src)
	attach(n, baseType, length)
	return n
}

func (f *Factory) MakeMapping(src Src, keyName, valueName string, keyType, valueType Node) *Mapping {
	n := &Mapping{KeyName: keyName, ValueName: valueName, keyType: keyType, valueType: valueType}
	f.new(n, src)
	attach(n, keyType, valueType)
	return n
}

func (f *Factory) MakeFunctionTypeName(src Src, visibility Visibility, mutability StateMutability, parameters, returnParameters Node) *FunctionTypeName {
	n := &FunctionTypeName{Visibility: visibility, StateMutability: mutability, parameters: parameters, returnParameters: returnParameters}
	f.new(n, src)
	attach(n, parameters, returnParameters)
	return n
}

func (f *Factory) MakeBlock(src Src, statements []Node) *Block {
	n := &Block{statements: statements}
	f.new(n, src)
	attach(n, statements...)
	return n
}

func (f *Factory) MakeUncheckedBlock(src Src, statements []Node) *UncheckedBlock {
	n := &UncheckedBlock{statements: statements}
	f.new(n, src)
	attach(n, statements...)
	return n
}

func (f *Factory) MakeIfStatement(src Src, condition, trueBody, falseBody Node) *IfStatement {
	n := &IfStatement{condition: condition, trueBody: trueBody, falseBody: falseBody}
	f.new(n, src)
	attach(n, condition, trueBody, falseBody)
	return n
}

func (f *Factory) MakeForStatement(src Src, init, condition, loop, body Node) *ForStatement {
	n := &ForStatement{initializationExpression: init, condition: condition, loopExpression: loop, body: body}
	f.new(n, src)
	attach(n, init, condition, loop, body)
	return n
}

func (f *Factory) MakeWhileStatement(src Src, condition, body Node) *WhileStatement {
	n := &WhileStatement{condition: condition, body: body}
	f.new(n, src)
	attach(n, condition, body)
	return n
}

func (f *Factory) MakeDoWhileStatement(src Src, body, condition Node) *DoWhileStatement {
	n := &DoWhileStatement{body: body, condition: condition}
	f.new(n, src)
	attach(n, body, condition)
	return n
}

func (f *Factory) MakeReturn(src Src, functionReturnParameters int, expression Node) *Return {
	n := &Return{FunctionReturnParameters: functionReturnParameters, expression: expression}
	f.new(n, src)
	attach(n, expression)
	return n
}

func (f *Factory) MakeBreak(src Src) *Break { n := &Break{}; f.new(n, src); return n }

func (f *Factory) MakeContinue(src Src) *Continue { n := &Continue{}; f.new(n, src); return n }

func (f *Factory) MakeThrow(src Src) *Throw { n := &Throw{}; f.new(n, src); return n }

func (f *Factory) MakePlaceholderStatement(src Src) *PlaceholderStatement {
	n := &PlaceholderStatement{}
	f.new(n, src)
	return n
}

func (f *Factory) MakeEmitStatement(src Src, eventCall Node) *EmitStatement {
	n := &EmitStatement{eventCall: eventCall}
	f.new(n, src)
	attach(n, eventCall)
	return n
}

func (f *Factory) MakeRevertStatement(src Src, errorCall Node) *RevertStatement {
	n := &RevertStatement{errorCall: errorCall}
	f.new(n, src)
	attach(n, errorCall)
	return n
}

func (f *Factory) MakeExpressionStatement(src Src, expression Node) *ExpressionStatement {
	n := &ExpressionStatement{expression: expression}
	f.new(n, src)
	attach(n, expression)
	return n
}

func (f *Factory) MakeVariableDeclarationStatement(src Src, assignments []*int, documentation Node, declarations []Node, initialValue Node) *VariableDeclarationStatement {
	n := &VariableDeclarationStatement{Assignments: assignments, documentation: documentation, declarations: declarations, initialValue: initialValue}
	f.new(n, src)
	attach(n, documentation, initialValue)
	attach(n, declarations...)
	return n
}

func (f *Factory) MakeTryStatement(src Src, externalCall Node, clauses []Node) *TryStatement {
	n := &TryStatement{externalCall: externalCall, clauses: clauses}
	f.new(n, src)
	attach(n, externalCall)
	attach(n, clauses...)
	return n
}

func (f *Factory) MakeTryCatchClause(src Src, errorName string, parameters, block Node) *TryCatchClause {
	n := &TryCatchClause{ErrorName: errorName, parameters: parameters, block: block}
	f.new(n, src)
	attach(n, parameters, block)
	return n
}

func (f *Factory) MakeInlineAssembly(src Src) *InlineAssembly {
	n := &InlineAssembly{}
	f.new(n, src)
	return n
}

func (f *Factory) MakeLiteral(src Src, kind LiteralKind, value, hexValue, subdenomination string) *Literal {
	n := &Literal{LiteralKind: kind, Value: value, HexValue: hexValue, Subdenomination: subdenomination}
	f.new(n, src)
	return n
}

func (f *Factory) MakeIdentifier(src Src, name string, referencedDeclaration int, has bool, overloaded []int) *Identifier {
	n := &Identifier{Name: name, ReferencedDeclaration: referencedDeclaration, HasReferencedDecl: has, OverloadedDeclarations: overloaded}
	f.new(n, src)
	return n
}

func (f *Factory) MakeMemberAccess(src Src, memberName string, referencedDeclaration int, has bool, expression Node) *MemberAccess {
	n := &MemberAccess{MemberName: memberName, ReferencedDeclaration: referencedDeclaration, HasReferencedDecl: has, expression: expression}
	f.new(n, src)
	attach(n, expression)
	return n
}

func (f *Factory) MakeIndexAccess(src Src, base, index Node) *IndexAccess {
	n := &IndexAccess{baseExpression: base, indexExpression: index}
	f.new(n, src)
	attach(n, base, index)
	return n
}

func (f *Factory) MakeIndexRangeAccess(src Src, base, start, end Node) *IndexRangeAccess {
	n := &IndexRangeAccess{baseExpression: base, startExpression: start, endExpression: end}
	f.new(n, src)
	attach(n, base, start, end)
	return n
}

func (f *Factory) MakeUnaryOperation(src Src, operator string, prefix bool, sub Node) *UnaryOperation {
	n := &UnaryOperation{Operator: operator, Prefix: prefix, subExpression: sub}
	f.new(n, src)
	attach(n, sub)
	return n
}

func (f *Factory) MakeBinaryOperation(src Src, operator string, left, right Node) *BinaryOperation {
	n := &BinaryOperation{Operator: operator, leftExpression: left, rightExpression: right}
	f.new(n, src)
	attach(n, left, right)
	return n
}

func (f *Factory) MakeAssignment(src Src, operator string, lhs, rhs Node) *Assignment {
	n := &Assignment{Operator: operator, leftHandSide: lhs, rightHandSide: rhs}
	f.new(n, src)
	attach(n, lhs, rhs)
	return n
}

func (f *Factory) MakeConditional(src Src, condition, trueExpr, falseExpr Node) *Conditional {
	n := &Conditional{condition: condition, trueExpression: trueExpr, falseExpression: falseExpr}
	f.new(n, src)
	attach(n, condition, trueExpr, falseExpr)
	return n
}

func (f *Factory) MakeFunctionCall(src Src, kind FunctionCallKind, names []string, expression Node, arguments []Node) *FunctionCall {
	n := &FunctionCall{FunctionCallKind: kind, Names: names, expression: expression, arguments: arguments}
	f.new(n, src)
	attach(n, expression)
	attach(n, arguments...)
	return n
}

func (f *Factory) MakeFunctionCallOptions(src Src, names []string, expression Node, options []Node) *FunctionCallOptions {
	n := &FunctionCallOptions{Names: names, expression: expression, options: options}
	f.new(n, src)
	attach(n, expression)
	attach(n, options...)
	return n
}

func (f *Factory) MakeNewExpression(src Src, typeName Node) *NewExpression {
	n := &NewExpression{typeName: typeName}
	f.new(n, src)
	attach(n, typeName)
	return n
}

func (f *Factory) MakeTupleExpression(src Src, isInlineArray bool, components []Node) *TupleExpression {
	n := &TupleExpression{IsInlineArray: isInlineArray, components: components}
	f.new(n, src)
	attach(n, components...)
	return n
}

func (f *Factory) MakeElementaryTypeNameExpression(src Src, typeName Node) *ElementaryTypeNameExpression {
	n := &ElementaryTypeNameExpression{typeName: typeName}
	f.new(n, src)
	attach(n, typeName)
	return n
}


// Copy deep-copies root's subtree into f's context, assigning every copied
// node a fresh id (spec.md §4.2). It clones bottom-up: each node's children
// are copied first, and the node itself is rebuilt through the same Make*
// constructor the factory itself uses, so id assignment, context
// registration and parent-wiring all go through the one path in f.new.
// old id -> copy is recorded in remap as each node is built. Once the whole
// subtree has been cloned, rewireReferences walks the clone and substitutes
// the new id for every reference attribute whose target lay inside the
// copied subtree, leaving references to nodes outside the subtree
// untouched (spec.md §4.2 step 3).
func (f *Factory) Copy(root Node) Node {
	remap := make(map[int]Node)
	clone := f.copyNode(root, remap)
	rewireReferences(clone, remap)
	return clone
}

// rewireReferences substitutes remap[oldID].ID() for every reference
// attribute (scalar or list) whose old id names a node inside the copied
// subtree. Attributes whose id is absent from remap point outside the
// subtree and are left as-is.
func rewireReferences(root Node, remap map[int]Node) {
	PreTraverse(root, func(n Node) {
		switch v := n.(type) {
		case *ImportDirective:
			v.Scope = remapID(v.Scope, remap)
			v.SourceUnitID = remapID(v.SourceUnitID, remap)
		case *ContractDefinition:
			v.Scope = remapID(v.Scope, remap)
			v.LinearizedBaseContracts = remapIDList(v.LinearizedBaseContracts, remap)
			v.UsedErrors = remapIDList(v.UsedErrors, remap)
		case *FunctionDefinition:
			v.Scope = remapID(v.Scope, remap)
		case *StructDefinition:
			v.Scope = remapID(v.Scope, remap)
		case *VariableDeclaration:
			v.Scope = remapID(v.Scope, remap)
		case *IdentifierPath:
			if v.HasReferencedDecl {
				v.ReferencedDeclaration = remapID(v.ReferencedDeclaration, remap)
			}
		case *UserDefinedTypeName:
			v.ReferencedDeclaration = remapID(v.ReferencedDeclaration, remap)
		case *Identifier:
			if v.HasReferencedDecl {
				v.ReferencedDeclaration = remapID(v.ReferencedDeclaration, remap)
			}
			v.OverloadedDeclarations = remapIDList(v.OverloadedDeclarations, remap)
		case *MemberAccess:
			if v.HasReferencedDecl {
				v.ReferencedDeclaration = remapID(v.ReferencedDeclaration, remap)
			}
		case *Return:
			v.FunctionReturnParameters = remapID(v.FunctionReturnParameters, remap)
		case *VariableDeclarationStatement:
			for i, id := range v.Assignments {
				if id == nil {
					continue
				}
				if clone, ok := remap[*id]; ok {
					newID := clone.ID()
					v.Assignments[i] = &newID
				}
			}
		case *SourceUnit:
			for name, ids := range v.ExportedSymbols {
				v.ExportedSymbols[name] = remapIDList(ids, remap)
			}
		}
	})
}

// remapID returns remap[id].ID() if id names a node inside the copied
// subtree, else id unchanged.
func remapID(id int, remap map[int]Node) int {
	if clone, ok := remap[id]; ok {
		return clone.ID()
	}
	return id
}

func remapIDList(ids []int, remap map[int]Node) []int {
	if ids == nil {
		return nil
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = remapID(id, remap)
	}
	return out
}

func (f *Factory) copyChild(n Node, remap map[int]Node) Node {
	if n == nil {
		return nil
	}
	return f.copyNode(n, remap)
}

func (f *Factory) copySlice(nodes []Node, remap map[int]Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, c := range nodes {
		out[i] = f.copyChild(c, remap)
	}
	return out
}

func (f *Factory) copyNode(n Node, remap map[int]Node) Node {
	var clone Node
	switch v := n.(type) {
	case *SourceUnit:
		var symbols map[string][]int
		if v.ExportedSymbols != nil {
			symbols = make(map[string][]int, len(v.ExportedSymbols))
			for name, ids := range v.ExportedSymbols {
				symbols[name] = append([]int(nil), ids...)
			}
		}
		clone = f.MakeSourceUnit(v.Src(), v.AbsolutePath, v.License, symbols, f.copySlice(v.nodes, remap))
	case *PragmaDirective:
		clone = f.MakePragmaDirective(v.Src(), append([]string(nil), v.Literals...))
	case *ImportDirective:
		clone = f.MakeImportDirective(v.Src(), v.File, v.AbsolutePath, v.UnitAlias, v.Scope, v.SourceUnitID, append([]SymbolAlias(nil), v.SymbolAliases...))
	case *InheritanceSpecifier:
		clone = f.MakeInheritanceSpecifier(v.Src(), f.copyChild(v.baseName, remap), f.copySlice(v.arguments, remap))
	case *ModifierInvocation:
		clone = f.MakeModifierInvocation(v.Src(), f.copyChild(v.modifierName, remap), f.copySlice(v.arguments, remap))
	case *OverrideSpecifier:
		clone = f.MakeOverrideSpecifier(v.Src(), f.copySlice(v.overrides, remap))
	case *ParameterList:
		clone = f.MakeParameterList(v.Src(), f.copySlice(v.parameters, remap))
	case *UsingForDirective:
		clone = f.MakeUsingForDirective(v.Src(), v.Global, f.copyChild(v.libraryName, remap), f.copyChild(v.typeName, remap))
	case *StructuredDocumentation:
		clone = f.MakeStructuredDocumentation(v.Src(), v.Text)
	case *IdentifierPath:
		clone = f.MakeIdentifierPath(v.Src(), v.Name, v.ReferencedDeclaration, v.HasReferencedDecl)
	case *ContractDefinition:
		clone = f.MakeContractDefinition(v.Src(), v.Name, v.ContractKind, v.Abstract, v.FullyImplemented, v.Scope,
			append([]int(nil), v.LinearizedBaseContracts...), append([]int(nil), v.UsedErrors...),
			f.copyChild(v.documentation, remap), v.LegacyDocumentation,
			f.copySlice(v.baseContracts, remap), f.copySlice(v.nodes, remap))
	case *FunctionDefinition:
		clone = f.MakeFunctionDefinition(v.Src(), v.Name, v.FunctionKind, v.Visibility, v.StateMutability, v.Virtual, v.Implemented, v.Scope, v.LegacyDocumentation,
			f.copyChild(v.documentation, remap), f.copyChild(v.parameters, remap), f.copyChild(v.returnParameters, remap),
			f.copySlice(v.modifiers, remap), f.copyChild(v.overrides, remap), f.copyChild(v.body, remap))
	case *ModifierDefinition:
		clone = f.MakeModifierDefinition(v.Src(), v.Name, v.Visibility, v.Virtual, f.copyChild(v.documentation, remap), f.copyChild(v.parameters, remap), f.copyChild(v.overrides, remap), f.copyChild(v.body, remap))
	case *EventDefinition:
		clone = f.MakeEventDefinition(v.Src(), v.Name, v.Anonymous, f.copyChild(v.documentation, remap), f.copyChild(v.parameters, remap))
	case *ErrorDefinition:
		clone = f.MakeErrorDefinition(v.Src(), v.Name, f.copyChild(v.documentation, remap), f.copyChild(v.parameters, remap))
	case *StructDefinition:
		clone = f.MakeStructDefinition(v.Src(), v.Name, v.Scope, v.Visibility, f.copySlice(v.members, remap))
	case *EnumDefinition:
		clone = f.MakeEnumDefinition(v.Src(), v.Name, f.copySlice(v.values, remap))
	case *EnumValue:
		clone = f.MakeEnumValue(v.Src(), v.Name)
	case *UserDefinedValueTypeDefinition:
		clone = f.MakeUserDefinedValueTypeDefinition(v.Src(), v.Name, f.copyChild(v.underlyingType, remap))
	case *VariableDeclaration:
		clone = f.MakeVariableDeclaration(v.Src(), v.Name, v.Constant, v.StateVariable, v.Indexed, v.Visibility, v.StorageLocation, v.Scope, v.TypeString, v.TypeIdentifier,
			f.copyChild(v.documentation, remap), f.copyChild(v.typeName, remap), f.copyChild(v.overrides, remap), f.copyChild(v.value, remap))
	case *ElementaryTypeName:
		clone = f.MakeElementaryTypeName(v.Src(), v.Name, v.StateMutability)
	case *UserDefinedTypeName:
		clone = f.MakeUserDefinedTypeName(v.Src(), v.Name, v.ReferencedDeclaration, f.copyChild(v.pathNode, remap))
	case *ArrayTypeName:
		clone = f.MakeArrayTypeName(v.Src(), f.copyChild(v.baseType, remap), f.copyChild(v.length, remap))
	case *Mapping:
		clone = f.MakeMapping(v.Src(), v.KeyName, v.ValueName, f.copyChild(v.keyType, remap), f.copyChild(v.valueType, remap))
	case *FunctionTypeName:
		clone = f.MakeFunctionTypeName(v.Src(), v.Visibility, v.StateMutability, f.copyChild(v.parameters, remap), f.copyChild(v.returnParameters, remap))
	case *Block:
		clone = f.MakeBlock(v.Src(), f.copySlice(v.statements, remap))
	case *UncheckedBlock:
		clone = f.MakeUncheckedBlock(v.Src(), f.copySlice(v.statements, remap))
	case *IfStatement:
		clone = f.MakeIfStatement(v.Src(), f.copyChild(v.condition, remap), f.copyChild(v.trueBody, remap), f.copyChild(v.falseBody, remap))
	case *ForStatement:
		clone = f.MakeForStatement(v.Src(), f.copyChild(v.initializationExpression, remap), f.copyChild(v.condition, remap), f.copyChild(v.loopExpression, remap), f.copyChild(v.body, remap))
	case *WhileStatement:
		clone = f.MakeWhileStatement(v.Src(), f.copyChild(v.condition, remap), f.copyChild(v.body, remap))
	case *DoWhileStatement:
		clone = f.MakeDoWhileStatement(v.Src(), f.copyChild(v.body, remap), f.copyChild(v.condition, remap))
	case *Return:
		clone = f.MakeReturn(v.Src(), v.FunctionReturnParameters, f.copyChild(v.expression, remap))
	case *Break:
		clone = f.MakeBreak(v.Src())
	case *Continue:
		clone = f.MakeContinue(v.Src())
	case *Throw:
		clone = f.MakeThrow(v.Src())
	case *PlaceholderStatement:
		clone = f.MakePlaceholderStatement(v.Src())
	case *EmitStatement:
		clone = f.MakeEmitStatement(v.Src(), f.copyChild(v.eventCall, remap))
	case *RevertStatement:
		clone = f.MakeRevertStatement(v.Src(), f.copyChild(v.errorCall, remap))
	case *ExpressionStatement:
		clone = f.MakeExpressionStatement(v.Src(), f.copyChild(v.expression, remap))
	case *VariableDeclarationStatement:
		clone = f.MakeVariableDeclarationStatement(v.Src(), append([]*int(nil), v.Assignments...), f.copyChild(v.documentation, remap), f.copySlice(v.declarations, remap), f.copyChild(v.initialValue, remap))
	case *TryStatement:
		clone = f.MakeTryStatement(v.Src(), f.copyChild(v.externalCall, remap), f.copySlice(v.clauses, remap))
	case *TryCatchClause:
		clone = f.MakeTryCatchClause(v.Src(), v.ErrorName, f.copyChild(v.parameters, remap), f.copyChild(v.block, remap))
	case *InlineAssembly:
		clone = f.MakeInlineAssembly(v.Src())
	case *Literal:
		clone = f.MakeLiteral(v.Src(), v.LiteralKind, v.Value, v.HexValue, v.Subdenomination)
	case *Identifier:
		clone = f.MakeIdentifier(v.Src(), v.Name, v.ReferencedDeclaration, v.HasReferencedDecl, append([]int(nil), v.OverloadedDeclarations...))
	case *MemberAccess:
		clone = f.MakeMemberAccess(v.Src(), v.MemberName, v.ReferencedDeclaration, v.HasReferencedDecl, f.copyChild(v.expression, remap))
	case *IndexAccess:
		clone = f.MakeIndexAccess(v.Src(), f.copyChild(v.baseExpression, remap), f.copyChild(v.indexExpression, remap))
	case *IndexRangeAccess:
		clone = f.MakeIndexRangeAccess(v.Src(), f.copyChild(v.baseExpression, remap), f.copyChild(v.startExpression, remap), f.copyChild(v.endExpression, remap))
	case *UnaryOperation:
		clone = f.MakeUnaryOperation(v.Src(), v.Operator, v.Prefix, f.copyChild(v.subExpression, remap))
	case *BinaryOperation:
		clone = f.MakeBinaryOperation(v.Src(), v.Operator, f.copyChild(v.leftExpression, remap), f.copyChild(v.rightExpression, remap))
	case *Assignment:
		clone = f.MakeAssignment(v.Src(), v.Operator, f.copyChild(v.leftHandSide, remap), f.copyChild(v.rightHandSide, remap))
	case *Conditional:
		clone = f.MakeConditional(v.Src(), f.copyChild(v.condition, remap), f.copyChild(v.trueExpression, remap), f.copyChild(v.falseExpression, remap))
	case *FunctionCall:
		clone = f.MakeFunctionCall(v.Src(), v.FunctionCallKind, append([]string(nil), v.Names...), f.copyChild(v.expression, remap), f.copySlice(v.arguments, remap))
	case *FunctionCallOptions:
		clone = f.MakeFunctionCallOptions(v.Src(), append([]string(nil), v.Names...), f.copyChild(v.expression, remap), f.copySlice(v.options, remap))
	case *NewExpression:
		clone = f.MakeNewExpression(v.Src(), f.copyChild(v.typeName, remap))
	case *TupleExpression:
		clone = f.MakeTupleExpression(v.Src(), v.IsInlineArray, f.copySlice(v.components, remap))
	case *ElementaryTypeNameExpression:
		clone = f.MakeElementaryTypeNameExpression(v.Src(), f.copyChild(v.typeName, remap))
	default:
		panic("ast: Copy: unhandled node kind")
	}
	clone.setRaw(n.Raw())
	remap[n.ID()] = clone
	return clone
}
