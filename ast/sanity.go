// Copyright 2018 karma.run AG. All rights reserved.

package ast

// Sanity walks root's subtree and verifies the structural invariants
// spec.md §4.5 and §3's Data Model require of a well-formed tree:
//
//  1. every descendant is registered in its Context under its own id
//  2. every descendant's Parent() is its actual tree parent (or nil at root)
//  3. every descendant shares root's Context (single-context invariant)
//  4. NamedRelations()'s union equals Children(), exactly (coverage)
//  5. the subtree contains no cycles
//  6. every node's reference attributes resolve through the Context
//     (each kind's Link(), called here, not just SourceUnit's)
//
// It stops at the first violation and returns it; no variant collects every
// violation (IsSane only reports whether this returns nil).
func Sanity(root Node) error {
	ctx := root.Context()
	seen := make(map[int]bool)
	var walk func(n Node, parent Node) error
	walk = func(n Node, parent Node) error {
		if n.Context() != ctx {
			return &WrongContextError{Node: n, ExpectedContext: ctx, ActualContext: n.Context()}
		}
		if got, ok := ctx.Lookup(n.ID()); !ok || got != n {
			return &MembershipViolationError{Node: n}
		}
		if n.Parent() != parent {
			return &ParentageInconsistentError{Child: n, ExpectedParent: parent, ActualParent: n.Parent()}
		}
		if seen[n.ID()] {
			return &MembershipViolationError{Node: n}
		}
		seen[n.ID()] = true

		if err := checkCoverage(n); err != nil {
			return err
		}
		if err := n.Link(); err != nil {
			return err
		}
		if su, ok := n.(*SourceUnit); ok {
			if err := checkExportedSymbolsCoherence(su); err != nil {
				return err
			}
		}

		for _, child := range n.Children() {
			if child == nil {
				continue
			}
			if err := walk(child, n); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, nil)
}

// checkCoverage verifies that the union of NamedRelations() equals
// Children(), as sets of node identities: every direct child must appear in
// at least one named relation, and every related node must be a direct
// child. A child listed under two relations is not reported.
func checkCoverage(n Node) error {
	children := n.Children()
	byID := make(map[int]bool, len(children))
	for _, c := range children {
		byID[c.ID()] = true
	}
	covered := make(map[int]bool, len(children))
	for _, group := range n.NamedRelations() {
		for _, c := range group {
			if c == nil {
				continue
			}
			if !byID[c.ID()] {
				return &CoverageViolationError{Node: n, MissingChild: c}
			}
			covered[c.ID()] = true
		}
	}
	for _, c := range children {
		if !covered[c.ID()] {
			return &CoverageViolationError{Node: n, MissingChild: c}
		}
	}
	return nil
}

// checkExportedSymbolsCoherence verifies that VExportedSymbols' dereferenced
// view has the same keys and, per key, the same length as the numeric
// ExportedSymbols map it was derived from (su.Link already proved every id
// resolves, so a length mismatch here would mean VExportedSymbols silently
// dropped one, which would itself be a bug rather than a malformed tree;
// this check exists to catch that class of regression).
func checkExportedSymbolsCoherence(su *SourceUnit) error {
	view := su.VExportedSymbols()
	for name, ids := range su.ExportedSymbols {
		resolved, ok := view[name]
		if !ok || len(resolved) != len(ids) {
			return &ExportedSymbolsCoherenceError{SourceUnit: su, Symbol: name}
		}
	}
	return nil
}

// IsSane reports whether Sanity(root) succeeds, discarding the error.
func IsSane(root Node) bool {
	return Sanity(root) == nil
}
