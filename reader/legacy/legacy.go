// Copyright 2018 karma.run AG. All rights reserved.

// Package legacy translates Solidity compiler output in the pre-0.4.12
// "name"/"attributes"/"children" schema into the typed ast.Node catalog
// (spec.md §4.3, legacy reader).
package legacy

import (
	"encoding/json"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
	"github.com/JorikSchellekens/solc-typed-ast/reader/rawutil"
)

// BuildFunc constructs one node from its decoded legacy fields. attrs holds
// the node's "attributes" object (nil if absent); children holds its
// already-built "children" array, in source order.
type BuildFunc func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error)

// Registry maps a legacy "name" tag to the builder that constructs it.
// Downstream users extend the catalog by registering additional tags
// (spec.md §6.4's "custom node signatures").
type Registry map[string]BuildFunc

// ReadContext is threaded through every BuildFunc: it carries the factory
// nodes are allocated through and the recursive dispatcher used to build
// nested child objects.
type ReadContext struct {
	Factory  *ast.Factory
	Registry Registry
	// Tolerate names "name" tags that dispatch skips instead of rejecting
	// with UnknownNodeKindError (config.TolerateUnknownKinds).
	Tolerate map[string]bool
	// Dispatch builds a single child node from its raw legacy JSON object.
	// A nil/"null" raw returns (nil, nil).
	Dispatch func(raw json.RawMessage) (ast.Node, error)
}

// Read builds one SourceUnit from a legacy-schema AST object, using
// registry for node construction (DefaultRegistry() merged with any
// caller-supplied overrides/extensions) and invoking each of postProcess on
// every node after Pass 2 (spec.md §6.4's "post-process callbacks"). Any tag
// present in tolerate is skipped (the node and its subtree drop out of the
// result) instead of failing the whole read with UnknownNodeKindError.
func Read(ctx *ast.Context, raw json.RawMessage, registry Registry, postProcess []func(ast.Node), tolerate map[string]bool) (*ast.SourceUnit, error) {
	rc := &ReadContext{Factory: ast.NewFactory(ctx), Registry: registry, Tolerate: tolerate}
	rc.Dispatch = func(raw json.RawMessage) (ast.Node, error) { return dispatch(rc, raw) }

	root, err := rc.Dispatch(raw)
	if err != nil {
		return nil, err
	}
	su, ok := root.(*ast.SourceUnit)
	if !ok {
		return nil, &ast.SchemaMismatchError{Src: "<root>", Reason: "legacy AST root is not a SourceUnit"}
	}

	var linkErr error
	ast.PreTraverse(su, func(n ast.Node) {
		if linkErr != nil {
			return
		}
		if err := n.Link(); err != nil {
			linkErr = err
			return
		}
		for _, cb := range postProcess {
			cb(n)
		}
	})
	if linkErr != nil {
		return nil, linkErr
	}
	return su, nil
}

func dispatch(rc *ReadContext, raw json.RawMessage) (ast.Node, error) {
	if rawutil.IsNull(raw) {
		return nil, nil
	}
	top, err := rawutil.Fields(raw)
	if err != nil {
		return nil, &ast.SchemaMismatchError{Src: "<unknown>", Reason: err.Error()}
	}
	name := rawutil.String(top, "name")
	srcStr := rawutil.String(top, "src")
	src, err := rawutil.ParseSrc(srcStr)
	if err != nil {
		return nil, &ast.SchemaMismatchError{Src: srcStr, Reason: err.Error()}
	}
	id, hasID := rawutil.Int(top, "id")
	if !hasID {
		return nil, &ast.SchemaMismatchError{Src: srcStr, Reason: "missing id"}
	}

	builder, ok := rc.Registry[name]
	if !ok {
		if rc.Tolerate[name] {
			return nil, nil
		}
		return nil, &ast.UnknownNodeKindError{Tag: name, Src: srcStr}
	}

	var attrs map[string]json.RawMessage
	if a, present := top["attributes"]; present && !rawutil.IsNull(a) {
		attrs, err = rawutil.Fields(a)
		if err != nil {
			return nil, &ast.SchemaMismatchError{Src: srcStr, Reason: "attributes: " + err.Error()}
		}
	}

	childRaws := rawutil.RawList(top, "children")
	children := make([]ast.Node, 0, len(childRaws))
	for _, cr := range childRaws {
		child, err := rc.Dispatch(cr)
		if err != nil {
			return nil, err
		}
		if child != nil {
			children = append(children, child)
		}
	}

	rc.Factory.SetNextID(id)
	return builder(rc, id, src, attrs, children, raw)
}

// splitBaseContracts partitions a ContractDefinition's children into its
// leading InheritanceSpecifier entries and its remaining member
// declarations, matching the legacy schema's fixed child ordering.
func splitBaseContracts(children []ast.Node) (base []ast.Node, rest []ast.Node) {
	i := 0
	for i < len(children) && children[i].Kind() == ast.KindInheritanceSpecifier {
		i++
	}
	return children[:i], children[i:]
}

// DefaultRegistry returns the builder table for every node kind spec.md §3
// names, keyed by its legacy "name" tag.
func DefaultRegistry() Registry {
	return Registry{
		"SourceUnit": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			symbols := map[string][]int{}
			if raw, ok := attrs["exportedSymbols"]; ok {
				_ = json.Unmarshal(raw, &symbols)
			}
			return rc.Factory.MakeSourceUnit(src, rawutil.String(attrs, "absolutePath"), rawutil.String(attrs, "license"), symbols, children), nil
		},
		"PragmaDirective": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakePragmaDirective(src, rawutil.StringList(attrs, "literals")), nil
		},
		"ImportDirective": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			scope, _ := rawutil.Int(attrs, "scope")
			sourceUnitID, _ := rawutil.Int(attrs, "SourceUnit")
			var aliases []ast.SymbolAlias
			if raw, ok := attrs["symbolAliases"]; ok {
				var entries []struct {
					Foreign struct {
						Name string `json:"name"`
						Id   int    `json:"id"`
					} `json:"foreign"`
					Local *string `json:"local"`
				}
				_ = json.Unmarshal(raw, &entries)
				for _, e := range entries {
					// Only the foreign name is trustworthy in the legacy schema
					// (spec.md §9 open question); the foreign id is never
					// resolved through the context.
					aliases = append(aliases, ast.SymbolAlias{ForeignName: e.Foreign.Name, ForeignID: e.Foreign.Id, Local: e.Local})
				}
			}
			return rc.Factory.MakeImportDirective(src, rawutil.String(attrs, "file"), rawutil.String(attrs, "absolutePath"), rawutil.String(attrs, "unitAlias"), scope, sourceUnitID, aliases), nil
		},
		"InheritanceSpecifier": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "InheritanceSpecifier", Reason: "missing base name"}
			}
			return rc.Factory.MakeInheritanceSpecifier(src, children[0], children[1:]), nil
		},
		"ModifierInvocation": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "ModifierInvocation", Reason: "missing modifier name"}
			}
			return rc.Factory.MakeModifierInvocation(src, children[0], children[1:]), nil
		},
		"OverrideSpecifier": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeOverrideSpecifier(src, children), nil
		},
		"ParameterList": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeParameterList(src, children), nil
		},
		"UsingForDirective": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			var lib, typ ast.Node
			if len(children) > 0 {
				lib = children[0]
			}
			if len(children) > 1 {
				typ = children[1]
			}
			return rc.Factory.MakeUsingForDirective(src, rawutil.Bool(attrs, "global"), lib, typ), nil
		},
		"StructuredDocumentation": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeStructuredDocumentation(src, rawutil.String(attrs, "text")), nil
		},
		"IdentifierPath": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			refID, has := rawutil.Int(attrs, "referencedDeclaration")
			return rc.Factory.MakeIdentifierPath(src, rawutil.String(attrs, "name"), refID, has), nil
		},
		"ContractDefinition": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			base, rest := splitBaseContracts(children)
			scope, _ := rawutil.Int(attrs, "scope")
			kind := ast.ContractKind(rawutil.String(attrs, "contractKind"))
			if kind == "" {
				kind = ast.ContractKindContract
			}
			return rc.Factory.MakeContractDefinition(src, rawutil.String(attrs, "name"), kind,
				rawutil.Bool(attrs, "abstract"), rawutil.Bool(attrs, "fullyImplemented"), scope,
				rawutil.IntList(attrs, "linearizedBaseContracts"), rawutil.IntList(attrs, "usedErrors"),
				nil, rawutil.String(attrs, "documentation"), base, rest), nil
		},
		"FunctionDefinition": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			var params, returns, body ast.Node
			var modifiers []ast.Node
			paramsSeen := 0
			for _, c := range children {
				switch {
				case c.Kind() == ast.KindParameterList && paramsSeen == 0:
					params = c
					paramsSeen++
				case c.Kind() == ast.KindParameterList && paramsSeen == 1:
					returns = c
					paramsSeen++
				case c.Kind() == ast.KindModifierInvocation:
					modifiers = append(modifiers, c)
				case c.Kind() == ast.KindBlock:
					body = c
				}
			}
			scope, _ := rawutil.Int(attrs, "scope")
			kind := ast.FunctionKind(rawutil.String(attrs, "kind"))
			if kind == "" {
				if rawutil.Bool(attrs, "isConstructor") {
					kind = ast.FunctionKindConstructor
				} else {
					kind = ast.FunctionKindFunction
				}
			}
			mutability := ast.StateMutability(rawutil.String(attrs, "stateMutability"))
			if mutability == "" {
				if rawutil.Bool(attrs, "payable") {
					mutability = ast.StateMutabilityPayable
				} else if rawutil.Bool(attrs, "constant") {
					mutability = ast.StateMutabilityView
				} else {
					mutability = ast.StateMutabilityNonpayable
				}
			}
			return rc.Factory.MakeFunctionDefinition(src, rawutil.String(attrs, "name"), kind,
				ast.Visibility(rawutil.String(attrs, "visibility")), mutability,
				rawutil.Bool(attrs, "virtual"), body != nil, scope, rawutil.String(attrs, "documentation"),
				nil, params, returns, modifiers, nil, body), nil
		},
		"ModifierDefinition": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			var params, body ast.Node
			if len(children) > 0 {
				params = children[0]
			}
			if len(children) > 1 {
				body = children[1]
			}
			return rc.Factory.MakeModifierDefinition(src, rawutil.String(attrs, "name"), ast.Visibility(rawutil.String(attrs, "visibility")), rawutil.Bool(attrs, "virtual"), nil, params, nil, body), nil
		},
		"EventDefinition": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			var params ast.Node
			if len(children) > 0 {
				params = children[0]
			}
			return rc.Factory.MakeEventDefinition(src, rawutil.String(attrs, "name"), rawutil.Bool(attrs, "anonymous"), nil, params), nil
		},
		"ErrorDefinition": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			var params ast.Node
			if len(children) > 0 {
				params = children[0]
			}
			return rc.Factory.MakeErrorDefinition(src, rawutil.String(attrs, "name"), nil, params), nil
		},
		"StructDefinition": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			scope, _ := rawutil.Int(attrs, "scope")
			return rc.Factory.MakeStructDefinition(src, rawutil.String(attrs, "name"), scope, ast.Visibility(rawutil.String(attrs, "visibility")), children), nil
		},
		"EnumDefinition": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeEnumDefinition(src, rawutil.String(attrs, "name"), children), nil
		},
		"EnumValue": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeEnumValue(src, rawutil.String(attrs, "name")), nil
		},
		"UserDefinedValueTypeDefinition": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			var underlying ast.Node
			if len(children) > 0 {
				underlying = children[0]
			}
			return rc.Factory.MakeUserDefinedValueTypeDefinition(src, rawutil.String(attrs, "name"), underlying), nil
		},
		"VariableDeclaration": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			var typeName, value ast.Node
			rest := children
			if len(rest) > 0 && isTypeNameKind(rest[0].Kind()) {
				typeName = rest[0]
				rest = rest[1:]
			}
			if len(rest) > 0 {
				value = rest[0]
			}
			scope, _ := rawutil.Int(attrs, "scope")
			return rc.Factory.MakeVariableDeclaration(src, rawutil.String(attrs, "name"),
				rawutil.Bool(attrs, "constant"), rawutil.Bool(attrs, "stateVariable"), rawutil.Bool(attrs, "indexed"),
				ast.Visibility(rawutil.String(attrs, "visibility")), ast.StorageLocation(rawutil.String(attrs, "storageLocation")),
				scope, rawutil.String(attrs, "type"), rawutil.String(attrs, "typeIdentifier"),
				nil, typeName, nil, value), nil
		},
		"ElementaryTypeName": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeElementaryTypeName(src, rawutil.String(attrs, "name"), rawutil.String(attrs, "stateMutability")), nil
		},
		"UserDefinedTypeName": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			refID, _ := rawutil.Int(attrs, "referencedDeclaration")
			var path ast.Node
			if len(children) > 0 {
				path = children[0]
			}
			return rc.Factory.MakeUserDefinedTypeName(src, rawutil.String(attrs, "name"), refID, path), nil
		},
		"ArrayTypeName": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "ArrayTypeName", Reason: "missing base type"}
			}
			var length ast.Node
			if len(children) > 1 {
				length = children[1]
			}
			return rc.Factory.MakeArrayTypeName(src, children[0], length), nil
		},
		"Mapping": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) < 2 {
				return nil, &ast.SchemaMismatchError{Src: "Mapping", Reason: "expected key and value type"}
			}
			return rc.Factory.MakeMapping(src, rawutil.String(attrs, "keyName"), rawutil.String(attrs, "valueName"), children[0], children[1]), nil
		},
		"FunctionTypeName": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			var params, returns ast.Node
			if len(children) > 0 {
				params = children[0]
			}
			if len(children) > 1 {
				returns = children[1]
			}
			return rc.Factory.MakeFunctionTypeName(src, ast.Visibility(rawutil.String(attrs, "visibility")), ast.StateMutability(rawutil.String(attrs, "stateMutability")), params, returns), nil
		},
		"Block": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeBlock(src, children), nil
		},
		"UncheckedBlock": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeUncheckedBlock(src, children), nil
		},
		"IfStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) < 2 {
				return nil, &ast.SchemaMismatchError{Src: "IfStatement", Reason: "expected condition and true body"}
			}
			var falseBody ast.Node
			if len(children) > 2 {
				falseBody = children[2]
			}
			return rc.Factory.MakeIfStatement(src, children[0], children[1], falseBody), nil
		},
		"ForStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "ForStatement", Reason: "missing body"}
			}
			body := children[len(children)-1]
			rest := children[:len(children)-1]
			var init, cond, loop ast.Node
			if len(rest) > 0 {
				init = rest[0]
			}
			if len(rest) > 1 {
				cond = rest[1]
			}
			if len(rest) > 2 {
				loop = rest[2]
			}
			return rc.Factory.MakeForStatement(src, init, cond, loop, body), nil
		},
		"WhileStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) < 2 {
				return nil, &ast.SchemaMismatchError{Src: "WhileStatement", Reason: "expected condition and body"}
			}
			return rc.Factory.MakeWhileStatement(src, children[0], children[1]), nil
		},
		"DoWhileStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) < 2 {
				return nil, &ast.SchemaMismatchError{Src: "DoWhileStatement", Reason: "expected body and condition"}
			}
			return rc.Factory.MakeDoWhileStatement(src, children[0], children[1]), nil
		},
		"Return": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			frp, _ := rawutil.Int(attrs, "functionReturnParameters")
			var expr ast.Node
			if len(children) > 0 {
				expr = children[0]
			}
			return rc.Factory.MakeReturn(src, frp, expr), nil
		},
		"Break": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeBreak(src), nil
		},
		"Continue": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeContinue(src), nil
		},
		"Throw": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeThrow(src), nil
		},
		"PlaceholderStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakePlaceholderStatement(src), nil
		},
		"EmitStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "EmitStatement", Reason: "missing event call"}
			}
			return rc.Factory.MakeEmitStatement(src, children[0]), nil
		},
		"RevertStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "RevertStatement", Reason: "missing error call"}
			}
			return rc.Factory.MakeRevertStatement(src, children[0]), nil
		},
		"ExpressionStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "ExpressionStatement", Reason: "missing expression"}
			}
			return rc.Factory.MakeExpressionStatement(src, children[0]), nil
		},
		"VariableDeclarationStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			assignments := rawutil.NullableIntList(attrs, "assignments")
			var decls []ast.Node
			var initial ast.Node
			for _, c := range children {
				if c.Kind() == ast.KindVariableDeclaration {
					decls = append(decls, c)
				} else {
					initial = c
				}
			}
			return rc.Factory.MakeVariableDeclarationStatement(src, assignments, nil, decls, initial), nil
		},
		"TryStatement": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "TryStatement", Reason: "missing external call"}
			}
			return rc.Factory.MakeTryStatement(src, children[0], children[1:]), nil
		},
		"TryCatchClause": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			var params, block ast.Node
			if len(children) > 0 && children[0].Kind() == ast.KindParameterList {
				params = children[0]
				children = children[1:]
			}
			if len(children) > 0 {
				block = children[0]
			}
			return rc.Factory.MakeTryCatchClause(src, rawutil.String(attrs, "errorName"), params, block), nil
		},
		"InlineAssembly": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeInlineAssembly(src), nil
		},
		"Literal": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			kind := ast.LiteralKind(rawutil.String(attrs, "token"))
			if kind == "" {
				kind = ast.LiteralKindString
			}
			value := rawutil.NormalizeAddressLiteral(rawutil.String(attrs, "value"))
			return rc.Factory.MakeLiteral(src, kind, value, rawutil.String(attrs, "hexvalue"), rawutil.String(attrs, "subdenomination")), nil
		},
		"Identifier": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			refID, has := rawutil.Int(attrs, "referencedDeclaration")
			return rc.Factory.MakeIdentifier(src, rawutil.String(attrs, "value"), refID, has, rawutil.IntList(attrs, "overloadedDeclarations")), nil
		},
		"MemberAccess": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "MemberAccess", Reason: "missing expression"}
			}
			refID, has := rawutil.Int(attrs, "referencedDeclaration")
			return rc.Factory.MakeMemberAccess(src, rawutil.String(attrs, "member_name"), refID, has, children[0]), nil
		},
		"IndexAccess": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "IndexAccess", Reason: "missing base expression"}
			}
			var index ast.Node
			if len(children) > 1 {
				index = children[1]
			}
			return rc.Factory.MakeIndexAccess(src, children[0], index), nil
		},
		"IndexRangeAccess": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "IndexRangeAccess", Reason: "missing base expression"}
			}
			var start, end ast.Node
			if len(children) > 1 {
				start = children[1]
			}
			if len(children) > 2 {
				end = children[2]
			}
			return rc.Factory.MakeIndexRangeAccess(src, children[0], start, end), nil
		},
		"UnaryOperation": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "UnaryOperation", Reason: "missing sub expression"}
			}
			return rc.Factory.MakeUnaryOperation(src, rawutil.String(attrs, "operator"), rawutil.Bool(attrs, "prefix"), children[0]), nil
		},
		"BinaryOperation": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) < 2 {
				return nil, &ast.SchemaMismatchError{Src: "BinaryOperation", Reason: "expected two operands"}
			}
			return rc.Factory.MakeBinaryOperation(src, rawutil.String(attrs, "operator"), children[0], children[1]), nil
		},
		"Assignment": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) < 2 {
				return nil, &ast.SchemaMismatchError{Src: "Assignment", Reason: "expected lhs and rhs"}
			}
			return rc.Factory.MakeAssignment(src, rawutil.String(attrs, "operator"), children[0], children[1]), nil
		},
		"Conditional": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) < 3 {
				return nil, &ast.SchemaMismatchError{Src: "Conditional", Reason: "expected condition, true and false expressions"}
			}
			return rc.Factory.MakeConditional(src, children[0], children[1], children[2]), nil
		},
		"FunctionCall": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "FunctionCall", Reason: "missing callee expression"}
			}
			kind := ast.FunctionCallKindFunctionCall
			if rawutil.Bool(attrs, "type_conversion") {
				kind = ast.FunctionCallKindTypeConversion
			}
			return rc.Factory.MakeFunctionCall(src, kind, rawutil.StringList(attrs, "names"), children[0], children[1:]), nil
		},
		"FunctionCallOptions": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "FunctionCallOptions", Reason: "missing callee expression"}
			}
			return rc.Factory.MakeFunctionCallOptions(src, rawutil.StringList(attrs, "names"), children[0], children[1:]), nil
		},
		"NewExpression": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "NewExpression", Reason: "missing type name"}
			}
			return rc.Factory.MakeNewExpression(src, children[0]), nil
		},
		"TupleExpression": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeTupleExpression(src, rawutil.Bool(attrs, "isInlineArray"), children), nil
		},
		"ElementaryTypeNameExpression": func(rc *ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
			if len(children) == 0 {
				return nil, &ast.SchemaMismatchError{Src: "ElementaryTypeNameExpression", Reason: "missing type name"}
			}
			return rc.Factory.MakeElementaryTypeNameExpression(src, children[0]), nil
		},
	}
}

func isTypeNameKind(k ast.NodeKind) bool {
	switch k {
	case ast.KindElementaryTypeName, ast.KindUserDefinedTypeName, ast.KindArrayTypeName, ast.KindMapping, ast.KindFunctionTypeName:
		return true
	}
	return false
}
