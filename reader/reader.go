// Copyright 2018 karma.run AG. All rights reserved.

// Package reader turns solc compiler JSON output into registered ast.Node
// trees. It detects, per compilation unit, whether the embedded AST uses the
// pre-0.4.12 legacy schema or the modern nodeType schema (spec.md §6.1) and
// delegates to reader/legacy or reader/modern accordingly.
package reader

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
	"github.com/JorikSchellekens/solc-typed-ast/reader/legacy"
	"github.com/JorikSchellekens/solc-typed-ast/reader/modern"
)

type options struct {
	legacyOverrides legacy.Registry
	modernOverrides modern.Registry
	postProcess     []func(ast.Node)
	skipSanity      bool
	tolerate        map[string]bool
}

// Option configures a Read call (spec.md §6.4's extensibility points).
type Option func(*options)

// WithLegacyBuilder registers or overrides tag in the legacy reader's
// builder table.
func WithLegacyBuilder(tag string, fn legacy.BuildFunc) Option {
	return func(o *options) {
		if o.legacyOverrides == nil {
			o.legacyOverrides = legacy.Registry{}
		}
		o.legacyOverrides[tag] = fn
	}
}

// WithModernBuilder registers or overrides tag in the modern reader's
// builder table.
func WithModernBuilder(tag string, fn modern.BuildFunc) Option {
	return func(o *options) {
		if o.modernOverrides == nil {
			o.modernOverrides = modern.Registry{}
		}
		o.modernOverrides[tag] = fn
	}
}

// WithPostProcess registers fn to run on every node immediately after Pass 2
// (the link pass) for every node in every section read.
func WithPostProcess(fn func(ast.Node)) Option {
	return func(o *options) { o.postProcess = append(o.postProcess, fn) }
}

// WithoutSanityCheck skips the post-read Sanity pass over the whole forest.
// Per-SourceUnit link errors (DanglingReferenceError) are still surfaced.
func WithoutSanityCheck() Option {
	return func(o *options) { o.skipSanity = true }
}

// WithToleratedKinds registers schema tags (legacy "name" or modern
// "nodeType" values) that dispatch skips instead of rejecting with
// UnknownNodeKindError, per config.TolerateUnknownKinds.
func WithToleratedKinds(tags ...string) Option {
	return func(o *options) {
		if o.tolerate == nil {
			o.tolerate = map[string]bool{}
		}
		for _, tag := range tags {
			o.tolerate[tag] = true
		}
	}
}

type topLevel struct {
	Sources map[string]json.RawMessage `json:"sources"`
	Errors  []json.RawMessage          `json:"errors"`
}

// Read parses compiler JSON (spec.md §6.1) and returns one SourceUnit per
// section that carries a typed AST, registered into ctx in the sources
// map's sorted-key order (map iteration in JSON is otherwise unordered).
// Sections that carry only "source" (raw text) are skipped: the core never
// parses Solidity text itself. A CompileErrorsPresentError is returned
// before any node is built if the top-level "errors" array names an error
// (not a warning).
func Read(ctx *ast.Context, data []byte, opts ...Option) ([]*ast.SourceUnit, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var top topLevel
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("reader: malformed top-level document: %w", err)
	}

	if msgs := compileErrorMessages(top.Errors); len(msgs) > 0 {
		return nil, &ast.CompileErrorsPresentError{Messages: msgs}
	}

	legacyRegistry := legacy.DefaultRegistry()
	for tag, fn := range o.legacyOverrides {
		legacyRegistry[tag] = fn
	}
	modernRegistry := modern.DefaultRegistry()
	for tag, fn := range o.modernOverrides {
		modernRegistry[tag] = fn
	}

	paths := make([]string, 0, len(top.Sources))
	for path := range top.Sources {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	units := make([]*ast.SourceUnit, 0, len(paths))
	for _, path := range paths {
		section := top.Sources[path]
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(section, &fields); err != nil {
			return nil, fmt.Errorf("reader: section %q: %w", path, err)
		}

		astRaw, schema := selectAST(fields)
		if astRaw == nil {
			continue // source-only section; not consumed by the core
		}

		var (
			su  *ast.SourceUnit
			err error
		)
		switch schema {
		case schemaModern:
			su, err = modern.Read(ctx, astRaw, modernRegistry, o.postProcess, o.tolerate)
		case schemaLegacy:
			su, err = legacy.Read(ctx, astRaw, legacyRegistry, o.postProcess, o.tolerate)
		}
		if err != nil {
			return nil, fmt.Errorf("reader: section %q: %w", path, err)
		}
		units = append(units, su)
	}

	if !o.skipSanity {
		for _, su := range units {
			if err := ast.Sanity(su); err != nil {
				return nil, err
			}
		}
	}
	return units, nil
}

type schemaKind int

const (
	schemaLegacy schemaKind = iota
	schemaModern
)

// selectAST returns the first typed-AST field present in a section (ast,
// legacyAST, then AST, per spec.md §6.1) and whether its root object
// carries a "nodeType" key (modern) or not (legacy). Returns a nil raw
// message if the section carries no typed AST at all.
func selectAST(fields map[string]json.RawMessage) (json.RawMessage, schemaKind) {
	for _, key := range []string{"ast", "legacyAST", "AST"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		if _, hasNodeType := probe["nodeType"]; hasNodeType {
			return raw, schemaModern
		}
		return raw, schemaLegacy
	}
	return nil, schemaLegacy
}

// compileErrorMessages extracts error-severity entries from the top-level
// errors array, tolerating both the modern {severity, message} object shape
// and the legacy formatted-string shape (spec.md §6.1).
func compileErrorMessages(entries []json.RawMessage) []string {
	var messages []string
	for _, raw := range entries {
		var obj struct {
			Severity string `json:"severity"`
			Message  string `json:"message"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil && obj.Severity != "" {
			if obj.Severity == "error" {
				messages = append(messages, obj.Message)
			}
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if !strings.HasPrefix(s, "Warning") {
				messages = append(messages, s)
			}
		}
	}
	return messages
}
