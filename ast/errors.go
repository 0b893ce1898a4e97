// Copyright 2018 karma.run AG. All rights reserved.

package ast

import "fmt"

// MissingNodeError is returned by Context.Require when an id is not
// registered.
type MissingNodeError struct {
	ID int
}

func (e *MissingNodeError) Error() string {
	return fmt.Sprintf(`ast: no node registered with id %d`, e.ID)
}

// DuplicateIdError is returned by Context.Merge when two contexts' id spaces
// collide. Context.Register does not return it: it overwrites silently.
type DuplicateIdError struct {
	ID int
}

func (e *DuplicateIdError) Error() string {
	return fmt.Sprintf(`ast: duplicate id %d`, e.ID)
}

// WrongContextError is returned by Sanity when a reachable node belongs to a
// different context than the root. The Container mutations (AppendChild,
// InsertBefore, ...) and the attribute setters do not check contexts and
// never return it.
type WrongContextError struct {
	Node            Node
	ExpectedContext *Context
	ActualContext   *Context
}

func (e *WrongContextError) Error() string {
	return fmt.Sprintf(`ast: node %d (%s) belongs to a different context than expected`, e.Node.ID(), e.Node.Kind())
}

// DanglingReferenceError is returned by the post-link pass when a required
// referential attribute cannot be resolved against the owning context.
type DanglingReferenceError struct {
	OwnerID   int
	Attribute string
	TargetID  int
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf(`ast: node %d has dangling reference in %q to missing node %d`, e.OwnerID, e.Attribute, e.TargetID)
}

// ParentageInconsistentError is a sanity-check violation: a structural
// child's parent back-pointer does not equal its owner.
type ParentageInconsistentError struct {
	Child          Node
	ExpectedParent Node
	ActualParent   Node
}

func (e *ParentageInconsistentError) Error() string {
	return fmt.Sprintf(`ast: node %d (%s)'s parent pointer is inconsistent with its owner`, e.Child.ID(), e.Child.Kind())
}

// CoverageViolationError is a sanity-check violation: a node's direct
// structural children are not exactly covered by its named relations.
type CoverageViolationError struct {
	Node         Node
	MissingChild Node
}

func (e *CoverageViolationError) Error() string {
	return fmt.Sprintf(`ast: node %d (%s) has a structural child (%d, %s) not reachable through any named relation`,
		e.Node.ID(), e.Node.Kind(), e.MissingChild.ID(), e.MissingChild.Kind())
}

// MembershipViolationError is a sanity-check violation: a reachable node, or
// a node named by a reference attribute, does not belong to the context
// under check.
type MembershipViolationError struct {
	Node Node
}

func (e *MembershipViolationError) Error() string {
	return fmt.Sprintf(`ast: node %d (%s) does not belong to the context under check`, e.Node.ID(), e.Node.Kind())
}

// ExportedSymbolsCoherenceError is a sanity-check violation specific to
// SourceUnit: its numeric ExportedSymbols map and its dereferenced view
// disagree on keys or values.
type ExportedSymbolsCoherenceError struct {
	SourceUnit *SourceUnit
	Symbol     string
}

func (e *ExportedSymbolsCoherenceError) Error() string {
	return fmt.Sprintf(`ast: source unit %d's exported symbol %q is incoherent between its numeric and dereferenced views`, e.SourceUnit.ID(), e.Symbol)
}

// UnknownNodeKindError is returned by a reader when it encounters a schema
// tag that is not present in its builder registry.
type UnknownNodeKindError struct {
	Tag string
	Src string
}

func (e *UnknownNodeKindError) Error() string {
	return fmt.Sprintf(`ast: unknown node kind %q at %s`, e.Tag, e.Src)
}

// SchemaMismatchError is returned by a reader when a required field is
// missing or ill-typed for the node kind being built.
type SchemaMismatchError struct {
	Src    string
	Reason string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf(`ast: schema mismatch at %s: %s`, e.Src, e.Reason)
}

// CompileErrorsPresentError is returned when the compiler JSON's top-level
// "errors" array contains at least one entry with error (not warning)
// severity.
type CompileErrorsPresentError struct {
	Messages []string
}

func (e *CompileErrorsPresentError) Error() string {
	return fmt.Sprintf(`ast: compiler reported %d error(s): %v`, len(e.Messages), e.Messages)
}
