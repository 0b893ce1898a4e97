// Copyright 2018 karma.run AG. All rights reserved.

package ast

// SourceUnit bundles all Solidity definitions from a single file. It is the
// root of every tree the reader produces.
type SourceUnit struct {
	Header
	AbsolutePath    string
	License         string // SPDX license identifier, "" if absent
	ExportedSymbols map[string][]int
	nodes           []Node // pragmas, imports, and top-level definitions, in source order
}

func (n *SourceUnit) Kind() NodeKind    { return KindSourceUnit }
func (n *SourceUnit) Children() []Node  { return n.nodes }
func (n *SourceUnit) NamedRelations() map[string][]Node {
	return namedRelationsFromChildren("nodes", n.nodes)
}

// Nodes returns the source unit's direct children in source order.
func (n *SourceUnit) Nodes() []Node { return n.nodes }

// VExportedSymbols dereferences ExportedSymbols through the owning context.
// Entries whose id cannot be resolved are omitted from the result slice
// (callers wanting strict coherence should run the sanity checker, which
// fails with the DanglingReferenceError from Link in that case).
func (n *SourceUnit) VExportedSymbols() map[string][]Node {
	out := make(map[string][]Node, len(n.ExportedSymbols))
	ctx := n.Context()
	for name, ids := range n.ExportedSymbols {
		resolved := make([]Node, 0, len(ids))
		for _, id := range ids {
			if target, ok := ctx.Lookup(id); ok {
				resolved = append(resolved, target)
			}
		}
		out[name] = resolved
	}
	return out
}

func (n *SourceUnit) Link() error {
	ctx := n.Context()
	for name, ids := range n.ExportedSymbols {
		for _, id := range ids {
			if _, ok := ctx.Lookup(id); !ok {
				return &DanglingReferenceError{OwnerID: n.ID(), Attribute: "exportedSymbols[" + name + "]", TargetID: id}
			}
		}
	}
	return nil
}

// PragmaDirective represents a Solidity file-level pragma declaration, e.g.
// `pragma solidity ^0.8.0;`. It is a leaf.
type PragmaDirective struct {
	Header
	Literals []string
}

func (n *PragmaDirective) Kind() NodeKind                    { return KindPragmaDirective }
func (n *PragmaDirective) Children() []Node                  { return nil }
func (n *PragmaDirective) NamedRelations() map[string][]Node { return nil }

// SymbolAlias is one entry of an ImportDirective's symbolAliases list. Per
// spec.md's open question, the legacy schema may supply a partially-valid
// "foreign" reference; only ForeignName is ever trusted, so ForeignID is
// deliberately not resolved through the context during Link.
type SymbolAlias struct {
	ForeignName string
	ForeignID   int // 0 if unknown/untrusted; never dereferenced
	Local       *string
}

// ImportDirective represents an import declaration. Import resolution (what
// file it points to) is an external collaborator's job per spec.md §1; this
// node only records what the compiler told us about it.
type ImportDirective struct {
	Header
	File          string
	AbsolutePath  string
	UnitAlias     string
	Scope         int
	SourceUnitID  int // id of the imported SourceUnit, if known; may be unresolved
	SymbolAliases []SymbolAlias
}

func (n *ImportDirective) Kind() NodeKind                    { return KindImportDirective }
func (n *ImportDirective) Children() []Node                  { return nil }
func (n *ImportDirective) NamedRelations() map[string][]Node { return nil }

// VScope dereferences Scope.
func (n *ImportDirective) VScope() (Node, bool) { return n.Context().Lookup(n.Scope) }

// VSourceUnit dereferences SourceUnitID. It is tolerated to be absent: the
// imported file may not be part of this compilation's context.
func (n *ImportDirective) VSourceUnit() (Node, bool) { return n.Context().Lookup(n.SourceUnitID) }

func (n *ImportDirective) Link() error {
	if _, ok := n.Context().Lookup(n.Scope); !ok {
		return &DanglingReferenceError{OwnerID: n.ID(), Attribute: "scope", TargetID: n.Scope}
	}
	return nil // SourceUnitID is tolerated dangling, see VSourceUnit
}

// InheritanceSpecifier represents one entry of `contract C is A, B(1,2)`.
type InheritanceSpecifier struct {
	Header
	baseName  Node // UserDefinedTypeName or IdentifierPath
	arguments []Node
}

func (n *InheritanceSpecifier) Kind() NodeKind { return KindInheritanceSpecifier }
func (n *InheritanceSpecifier) Children() []Node {
	return append(filterNonNil(n.baseName), n.arguments...)
}
func (n *InheritanceSpecifier) NamedRelations() map[string][]Node {
	return map[string][]Node{"baseName": filterNonNil(n.baseName), "arguments": n.arguments}
}
func (n *InheritanceSpecifier) BaseName() Node    { return n.baseName }
func (n *InheritanceSpecifier) Arguments() []Node { return n.arguments }

// ModifierInvocation represents a modifier application on a function
// (`f() onlyOwner { ... }`) or a base-constructor call in an inheritance
// list.
type ModifierInvocation struct {
	Header
	modifierName Node // IdentifierPath
	arguments    []Node
}

func (n *ModifierInvocation) Kind() NodeKind { return KindModifierInvocation }
func (n *ModifierInvocation) Children() []Node {
	return append(filterNonNil(n.modifierName), n.arguments...)
}
func (n *ModifierInvocation) NamedRelations() map[string][]Node {
	return map[string][]Node{"modifierName": filterNonNil(n.modifierName), "arguments": n.arguments}
}
func (n *ModifierInvocation) ModifierName() Node { return n.modifierName }
func (n *ModifierInvocation) Arguments() []Node  { return n.arguments }

// OverrideSpecifier represents the `override(A, B)` clause used to
// disambiguate multiple-inheritance diamonds.
type OverrideSpecifier struct {
	Header
	overrides []Node // UserDefinedTypeName entries, empty for bare `override`
}

func (n *OverrideSpecifier) Kind() NodeKind                    { return KindOverrideSpecifier }
func (n *OverrideSpecifier) Children() []Node                  { return n.overrides }
func (n *OverrideSpecifier) NamedRelations() map[string][]Node {
	return namedRelationsFromChildren("overrides", n.overrides)
}
func (n *OverrideSpecifier) Overrides() []Node { return n.overrides }

// ParameterList represents an ordered list of variable declarations. It is
// used for function/modifier/event/error parameters and return values, and
// is a valid (empty) child when a function declares no parameters.
type ParameterList struct {
	Header
	parameters []Node // *VariableDeclaration
}

func (n *ParameterList) Kind() NodeKind                    { return KindParameterList }
func (n *ParameterList) Children() []Node                  { return n.parameters }
func (n *ParameterList) NamedRelations() map[string][]Node {
	return namedRelationsFromChildren("parameters", n.parameters)
}
func (n *ParameterList) Parameters() []Node { return n.parameters }

// UsingForDirective represents `using X for Y;` (or `using X for *;` when
// TypeName is nil).
type UsingForDirective struct {
	Header
	Global      bool
	libraryName Node // IdentifierPath or UserDefinedTypeName
	typeName    Node // nil means "for *"
}

func (n *UsingForDirective) Kind() NodeKind { return KindUsingForDirective }
func (n *UsingForDirective) Children() []Node {
	return filterNonNil(n.libraryName, n.typeName)
}
func (n *UsingForDirective) NamedRelations() map[string][]Node {
	return map[string][]Node{"libraryName": filterNonNil(n.libraryName), "typeName": filterNonNil(n.typeName)}
}
func (n *UsingForDirective) LibraryName() Node { return n.libraryName }
func (n *UsingForDirective) TypeName() Node    { return n.typeName }

// StructuredDocumentation represents a NatSpec comment block attached to a
// declaration in the modern schema. A leaf.
type StructuredDocumentation struct {
	Header
	Text string
}

func (n *StructuredDocumentation) Kind() NodeKind                    { return KindStructuredDocumentation }
func (n *StructuredDocumentation) Children() []Node                  { return nil }
func (n *StructuredDocumentation) NamedRelations() map[string][]Node { return nil }

// IdentifierPath represents a (possibly dotted) name reference used by
// inheritance specifiers, modifier invocations, using-for directives and
// user-defined type names (modern schema, >=0.8.0). A leaf.
type IdentifierPath struct {
	Header
	Name                  string
	ReferencedDeclaration int
	HasReferencedDecl     bool
}

func (n *IdentifierPath) Kind() NodeKind                    { return KindIdentifierPath }
func (n *IdentifierPath) Children() []Node                  { return nil }
func (n *IdentifierPath) NamedRelations() map[string][]Node { return nil }

// VReferencedDeclaration dereferences ReferencedDeclaration. It is tolerant
// per spec.md §9's open question: absence is reported via ok=false, never a
// dangling-reference failure.
func (n *IdentifierPath) VReferencedDeclaration() (Node, bool) {
	if !n.HasReferencedDecl {
		return nil, false
	}
	return n.Context().Lookup(n.ReferencedDeclaration)
}
