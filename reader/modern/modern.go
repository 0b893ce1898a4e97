// Copyright 2018 karma.run AG. All rights reserved.

// Package modern translates Solidity compiler output in the >=0.4.12
// "nodeType" + named-field schema into the typed ast.Node catalog
// (spec.md §4.3, modern reader).
package modern

import (
	"encoding/json"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
	"github.com/JorikSchellekens/solc-typed-ast/reader/rawutil"
)

// BuildFunc constructs one node from its decoded modern fields (the node's
// raw JSON object, already split into a field map).
type BuildFunc func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error)

// Registry maps a modern "nodeType" tag to the builder that constructs it.
type Registry map[string]BuildFunc

// ReadContext is threaded through every BuildFunc.
type ReadContext struct {
	Factory  *ast.Factory
	Registry Registry
	// Tolerate names "nodeType" tags that dispatch skips instead of
	// rejecting with UnknownNodeKindError (config.TolerateUnknownKinds).
	Tolerate map[string]bool
	// Dispatch builds a single node from its raw modern JSON object. A
	// nil/"null" raw returns (nil, nil).
	Dispatch func(raw json.RawMessage) (ast.Node, error)
}

// child builds the node named key in fields, or (nil, nil) if absent/null.
func (rc *ReadContext) child(fields map[string]json.RawMessage, key string) (ast.Node, error) {
	raw, ok := fields[key]
	if !ok || rawutil.IsNull(raw) {
		return nil, nil
	}
	return rc.Dispatch(raw)
}

// children builds the node array named key in fields, dropping any JSON
// null entries itself so the result holds no nils (used for list fields
// whose catalog field holds no nils, like "nodes").
func (rc *ReadContext) children(fields map[string]json.RawMessage, key string) ([]ast.Node, error) {
	raws := rawutil.RawList(fields, key)
	out := make([]ast.Node, 0, len(raws))
	for _, raw := range raws {
		if rawutil.IsNull(raw) {
			continue
		}
		n, err := rc.Dispatch(raw)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

// childrenPreserveNil is like children but keeps a nil entry at each
// position the JSON array held null, for fields the catalog documents as
// positionally significant (TupleExpression.components).
func (rc *ReadContext) childrenPreserveNil(fields map[string]json.RawMessage, key string) ([]ast.Node, error) {
	raws := rawutil.RawList(fields, key)
	out := make([]ast.Node, len(raws))
	for i, raw := range raws {
		if rawutil.IsNull(raw) {
			continue
		}
		n, err := rc.Dispatch(raw)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// typeDescriptions pulls typeString/typeIdentifier out of a nested
// "typeDescriptions" object, tolerating its absence.
func typeDescriptions(fields map[string]json.RawMessage) (typeString, typeIdentifier string) {
	raw, ok := fields["typeDescriptions"]
	if !ok || rawutil.IsNull(raw) {
		return "", ""
	}
	td, err := rawutil.Fields(raw)
	if err != nil {
		return "", ""
	}
	return rawutil.String(td, "typeString"), rawutil.String(td, "typeIdentifier")
}

// Read builds one SourceUnit from a modern-schema AST object, using
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
		return nil, &ast.SchemaMismatchError{Src: "<root>", Reason: "modern AST root is not a SourceUnit"}
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
	fields, err := rawutil.Fields(raw)
	if err != nil {
		return nil, &ast.SchemaMismatchError{Src: "<unknown>", Reason: err.Error()}
	}
	nodeType := rawutil.String(fields, "nodeType")
	srcStr := rawutil.String(fields, "src")
	src, err := rawutil.ParseSrc(srcStr)
	if err != nil {
		return nil, &ast.SchemaMismatchError{Src: srcStr, Reason: err.Error()}
	}
	id, hasID := rawutil.Int(fields, "id")
	if !hasID {
		return nil, &ast.SchemaMismatchError{Src: srcStr, Reason: "missing id"}
	}

	builder, ok := rc.Registry[nodeType]
	if !ok {
		if rc.Tolerate[nodeType] {
			return nil, nil
		}
		return nil, &ast.UnknownNodeKindError{Tag: nodeType, Src: srcStr}
	}

	rc.Factory.SetNextID(id)
	return builder(rc, id, src, fields, raw)
}

// DefaultRegistry returns the builder table for every node kind spec.md §3
// names, keyed by its modern "nodeType" tag.
func DefaultRegistry() Registry {
	return Registry{
		"SourceUnit": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			nodes, err := rc.children(fields, "nodes")
			if err != nil {
				return nil, err
			}
			symbols := map[string][]int{}
			if raw, ok := fields["exportedSymbols"]; ok {
				_ = json.Unmarshal(raw, &symbols)
			}
			return rc.Factory.MakeSourceUnit(src, rawutil.String(fields, "absolutePath"), rawutil.String(fields, "license"), symbols, nodes), nil
		},
		"PragmaDirective": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakePragmaDirective(src, rawutil.StringList(fields, "literals")), nil
		},
		"ImportDirective": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			scope, _ := rawutil.Int(fields, "scope")
			sourceUnitID, _ := rawutil.Int(fields, "sourceUnit")
			var aliases []ast.SymbolAlias
			if raw, ok := fields["symbolAliases"]; ok {
				var entries []struct {
					Foreign struct {
						Name string `json:"name"`
						Id   int    `json:"id"`
					} `json:"foreign"`
					Local *string `json:"local"`
				}
				_ = json.Unmarshal(raw, &entries)
				for _, e := range entries {
					aliases = append(aliases, ast.SymbolAlias{ForeignName: e.Foreign.Name, ForeignID: e.Foreign.Id, Local: e.Local})
				}
			}
			return rc.Factory.MakeImportDirective(src, rawutil.String(fields, "file"), rawutil.String(fields, "absolutePath"), rawutil.String(fields, "unitAlias"), scope, sourceUnitID, aliases), nil
		},
		"InheritanceSpecifier": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			baseName, err := rc.child(fields, "baseName")
			if err != nil {
				return nil, err
			}
			args, err := rc.children(fields, "arguments")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeInheritanceSpecifier(src, baseName, args), nil
		},
		"ModifierInvocation": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			modifierName, err := rc.child(fields, "modifierName")
			if err != nil {
				return nil, err
			}
			args, err := rc.children(fields, "arguments")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeModifierInvocation(src, modifierName, args), nil
		},
		"OverrideSpecifier": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			overrides, err := rc.children(fields, "overrides")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeOverrideSpecifier(src, overrides), nil
		},
		"ParameterList": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			params, err := rc.children(fields, "parameters")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeParameterList(src, params), nil
		},
		"UsingForDirective": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			lib, err := rc.child(fields, "libraryName")
			if err != nil {
				return nil, err
			}
			typ, err := rc.child(fields, "typeName")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeUsingForDirective(src, rawutil.Bool(fields, "global"), lib, typ), nil
		},
		"StructuredDocumentation": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeStructuredDocumentation(src, rawutil.String(fields, "text")), nil
		},
		"IdentifierPath": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			refID, has := rawutil.Int(fields, "referencedDeclaration")
			return rc.Factory.MakeIdentifierPath(src, rawutil.String(fields, "name"), refID, has), nil
		},
		"ContractDefinition": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			base, err := rc.children(fields, "baseContracts")
			if err != nil {
				return nil, err
			}
			nodes, err := rc.children(fields, "nodes")
			if err != nil {
				return nil, err
			}
			doc, err := rc.child(fields, "documentation")
			if err != nil {
				return nil, err
			}
			scope, _ := rawutil.Int(fields, "scope")
			kind := ast.ContractKind(rawutil.String(fields, "contractKind"))
			if kind == "" {
				kind = ast.ContractKindContract
			}
			return rc.Factory.MakeContractDefinition(src, rawutil.String(fields, "name"), kind,
				rawutil.Bool(fields, "abstract"), rawutil.Bool(fields, "fullyImplemented"), scope,
				rawutil.IntList(fields, "linearizedBaseContracts"), rawutil.IntList(fields, "usedErrors"),
				doc, "", base, nodes), nil
		},
		"FunctionDefinition": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			params, err := rc.child(fields, "parameters")
			if err != nil {
				return nil, err
			}
			returns, err := rc.child(fields, "returnParameters")
			if err != nil {
				return nil, err
			}
			modifiers, err := rc.children(fields, "modifiers")
			if err != nil {
				return nil, err
			}
			overrides, err := rc.child(fields, "overrides")
			if err != nil {
				return nil, err
			}
			body, err := rc.child(fields, "body")
			if err != nil {
				return nil, err
			}
			doc, err := rc.child(fields, "documentation")
			if err != nil {
				return nil, err
			}
			scope, _ := rawutil.Int(fields, "scope")
			kind := ast.FunctionKind(rawutil.String(fields, "kind"))
			if kind == "" {
				kind = ast.FunctionKindFunction
			}
			return rc.Factory.MakeFunctionDefinition(src, rawutil.String(fields, "name"), kind,
				ast.Visibility(rawutil.String(fields, "visibility")), ast.StateMutability(rawutil.String(fields, "stateMutability")),
				rawutil.Bool(fields, "virtual"), rawutil.Bool(fields, "implemented"), scope, "",
				doc, params, returns, modifiers, overrides, body), nil
		},
		"ModifierDefinition": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			params, err := rc.child(fields, "parameters")
			if err != nil {
				return nil, err
			}
			overrides, err := rc.child(fields, "overrides")
			if err != nil {
				return nil, err
			}
			body, err := rc.child(fields, "body")
			if err != nil {
				return nil, err
			}
			doc, err := rc.child(fields, "documentation")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeModifierDefinition(src, rawutil.String(fields, "name"), ast.Visibility(rawutil.String(fields, "visibility")), rawutil.Bool(fields, "virtual"), doc, params, overrides, body), nil
		},
		"EventDefinition": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			params, err := rc.child(fields, "parameters")
			if err != nil {
				return nil, err
			}
			doc, err := rc.child(fields, "documentation")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeEventDefinition(src, rawutil.String(fields, "name"), rawutil.Bool(fields, "anonymous"), doc, params), nil
		},
		"ErrorDefinition": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			params, err := rc.child(fields, "parameters")
			if err != nil {
				return nil, err
			}
			doc, err := rc.child(fields, "documentation")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeErrorDefinition(src, rawutil.String(fields, "name"), doc, params), nil
		},
		"StructDefinition": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			members, err := rc.children(fields, "members")
			if err != nil {
				return nil, err
			}
			scope, _ := rawutil.Int(fields, "scope")
			return rc.Factory.MakeStructDefinition(src, rawutil.String(fields, "name"), scope, ast.Visibility(rawutil.String(fields, "visibility")), members), nil
		},
		"EnumDefinition": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			members, err := rc.children(fields, "members")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeEnumDefinition(src, rawutil.String(fields, "name"), members), nil
		},
		"EnumValue": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeEnumValue(src, rawutil.String(fields, "name")), nil
		},
		"UserDefinedValueTypeDefinition": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			underlying, err := rc.child(fields, "underlyingType")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeUserDefinedValueTypeDefinition(src, rawutil.String(fields, "name"), underlying), nil
		},
		"VariableDeclaration": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			typeName, err := rc.child(fields, "typeName")
			if err != nil {
				return nil, err
			}
			overrides, err := rc.child(fields, "overrides")
			if err != nil {
				return nil, err
			}
			value, err := rc.child(fields, "value")
			if err != nil {
				return nil, err
			}
			doc, err := rc.child(fields, "documentation")
			if err != nil {
				return nil, err
			}
			typeString, typeIdentifier := typeDescriptions(fields)
			scope, _ := rawutil.Int(fields, "scope")
			return rc.Factory.MakeVariableDeclaration(src, rawutil.String(fields, "name"),
				rawutil.Bool(fields, "constant"), rawutil.Bool(fields, "stateVariable"), rawutil.Bool(fields, "indexed"),
				ast.Visibility(rawutil.String(fields, "visibility")), ast.StorageLocation(rawutil.String(fields, "storageLocation")),
				scope, typeString, typeIdentifier, doc, typeName, overrides, value), nil
		},
		"ElementaryTypeName": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeElementaryTypeName(src, rawutil.String(fields, "name"), rawutil.String(fields, "stateMutability")), nil
		},
		"UserDefinedTypeName": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			path, err := rc.child(fields, "pathNode")
			if err != nil {
				return nil, err
			}
			refID, _ := rawutil.Int(fields, "referencedDeclaration")
			return rc.Factory.MakeUserDefinedTypeName(src, rawutil.String(fields, "name"), refID, path), nil
		},
		"ArrayTypeName": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			base, err := rc.child(fields, "baseType")
			if err != nil {
				return nil, err
			}
			length, err := rc.child(fields, "length")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeArrayTypeName(src, base, length), nil
		},
		"Mapping": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			keyType, err := rc.child(fields, "keyType")
			if err != nil {
				return nil, err
			}
			valueType, err := rc.child(fields, "valueType")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeMapping(src, rawutil.String(fields, "keyName"), rawutil.String(fields, "valueName"), keyType, valueType), nil
		},
		"FunctionTypeName": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			params, err := rc.child(fields, "parameterTypes")
			if err != nil {
				return nil, err
			}
			returns, err := rc.child(fields, "returnParameterTypes")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeFunctionTypeName(src, ast.Visibility(rawutil.String(fields, "visibility")), ast.StateMutability(rawutil.String(fields, "stateMutability")), params, returns), nil
		},
		"Block": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			stmts, err := rc.children(fields, "statements")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeBlock(src, stmts), nil
		},
		"UncheckedBlock": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			stmts, err := rc.children(fields, "statements")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeUncheckedBlock(src, stmts), nil
		},
		"IfStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			cond, err := rc.child(fields, "condition")
			if err != nil {
				return nil, err
			}
			trueBody, err := rc.child(fields, "trueBody")
			if err != nil {
				return nil, err
			}
			falseBody, err := rc.child(fields, "falseBody")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeIfStatement(src, cond, trueBody, falseBody), nil
		},
		"ForStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			init, err := rc.child(fields, "initializationExpression")
			if err != nil {
				return nil, err
			}
			cond, err := rc.child(fields, "condition")
			if err != nil {
				return nil, err
			}
			loop, err := rc.child(fields, "loopExpression")
			if err != nil {
				return nil, err
			}
			body, err := rc.child(fields, "body")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeForStatement(src, init, cond, loop, body), nil
		},
		"WhileStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			cond, err := rc.child(fields, "condition")
			if err != nil {
				return nil, err
			}
			body, err := rc.child(fields, "body")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeWhileStatement(src, cond, body), nil
		},
		"DoWhileStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			cond, err := rc.child(fields, "condition")
			if err != nil {
				return nil, err
			}
			body, err := rc.child(fields, "body")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeDoWhileStatement(src, body, cond), nil
		},
		"Return": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			expr, err := rc.child(fields, "expression")
			if err != nil {
				return nil, err
			}
			frp, _ := rawutil.Int(fields, "functionReturnParameters")
			return rc.Factory.MakeReturn(src, frp, expr), nil
		},
		"Break": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeBreak(src), nil
		},
		"Continue": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeContinue(src), nil
		},
		"Throw": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeThrow(src), nil
		},
		"PlaceholderStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakePlaceholderStatement(src), nil
		},
		"EmitStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			call, err := rc.child(fields, "eventCall")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeEmitStatement(src, call), nil
		},
		"RevertStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			call, err := rc.child(fields, "errorCall")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeRevertStatement(src, call), nil
		},
		"ExpressionStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			expr, err := rc.child(fields, "expression")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeExpressionStatement(src, expr), nil
		},
		"VariableDeclarationStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			decls, err := rc.children(fields, "declarations")
			if err != nil {
				return nil, err
			}
			initial, err := rc.child(fields, "initialValue")
			if err != nil {
				return nil, err
			}
			assignments := rawutil.NullableIntList(fields, "assignments")
			return rc.Factory.MakeVariableDeclarationStatement(src, assignments, nil, decls, initial), nil
		},
		"TryStatement": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			call, err := rc.child(fields, "externalCall")
			if err != nil {
				return nil, err
			}
			clauses, err := rc.children(fields, "clauses")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeTryStatement(src, call, clauses), nil
		},
		"TryCatchClause": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			params, err := rc.child(fields, "parameters")
			if err != nil {
				return nil, err
			}
			block, err := rc.child(fields, "block")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeTryCatchClause(src, rawutil.String(fields, "errorName"), params, block), nil
		},
		"InlineAssembly": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			return rc.Factory.MakeInlineAssembly(src), nil
		},
		"Literal": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			kind := ast.LiteralKind(rawutil.String(fields, "kind"))
			if kind == "" {
				kind = ast.LiteralKindString
			}
			value := rawutil.NormalizeAddressLiteral(rawutil.String(fields, "value"))
			return rc.Factory.MakeLiteral(src, kind, value, rawutil.String(fields, "hexValue"), rawutil.String(fields, "subdenomination")), nil
		},
		"Identifier": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			refID, has := rawutil.Int(fields, "referencedDeclaration")
			return rc.Factory.MakeIdentifier(src, rawutil.String(fields, "name"), refID, has, rawutil.IntList(fields, "overloadedDeclarations")), nil
		},
		"MemberAccess": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			expr, err := rc.child(fields, "expression")
			if err != nil {
				return nil, err
			}
			refID, has := rawutil.Int(fields, "referencedDeclaration")
			return rc.Factory.MakeMemberAccess(src, rawutil.String(fields, "memberName"), refID, has, expr), nil
		},
		"IndexAccess": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			base, err := rc.child(fields, "baseExpression")
			if err != nil {
				return nil, err
			}
			index, err := rc.child(fields, "indexExpression")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeIndexAccess(src, base, index), nil
		},
		"IndexRangeAccess": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			base, err := rc.child(fields, "baseExpression")
			if err != nil {
				return nil, err
			}
			start, err := rc.child(fields, "startExpression")
			if err != nil {
				return nil, err
			}
			end, err := rc.child(fields, "endExpression")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeIndexRangeAccess(src, base, start, end), nil
		},
		"UnaryOperation": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			sub, err := rc.child(fields, "subExpression")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeUnaryOperation(src, rawutil.String(fields, "operator"), rawutil.Bool(fields, "prefix"), sub), nil
		},
		"BinaryOperation": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			left, err := rc.child(fields, "leftExpression")
			if err != nil {
				return nil, err
			}
			right, err := rc.child(fields, "rightExpression")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeBinaryOperation(src, rawutil.String(fields, "operator"), left, right), nil
		},
		"Assignment": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			lhs, err := rc.child(fields, "leftHandSide")
			if err != nil {
				return nil, err
			}
			rhs, err := rc.child(fields, "rightHandSide")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeAssignment(src, rawutil.String(fields, "operator"), lhs, rhs), nil
		},
		"Conditional": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			cond, err := rc.child(fields, "condition")
			if err != nil {
				return nil, err
			}
			t, err := rc.child(fields, "trueExpression")
			if err != nil {
				return nil, err
			}
			f, err := rc.child(fields, "falseExpression")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeConditional(src, cond, t, f), nil
		},
		"FunctionCall": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			expr, err := rc.child(fields, "expression")
			if err != nil {
				return nil, err
			}
			args, err := rc.children(fields, "arguments")
			if err != nil {
				return nil, err
			}
			kind := ast.FunctionCallKind(rawutil.String(fields, "kind"))
			if kind == "" {
				kind = ast.FunctionCallKindFunctionCall
			}
			return rc.Factory.MakeFunctionCall(src, kind, rawutil.StringList(fields, "names"), expr, args), nil
		},
		"FunctionCallOptions": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			expr, err := rc.child(fields, "expression")
			if err != nil {
				return nil, err
			}
			options, err := rc.children(fields, "options")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeFunctionCallOptions(src, rawutil.StringList(fields, "names"), expr, options), nil
		},
		"NewExpression": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			typeName, err := rc.child(fields, "typeName")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeNewExpression(src, typeName), nil
		},
		"TupleExpression": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			components, err := rc.childrenPreserveNil(fields, "components")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeTupleExpression(src, rawutil.Bool(fields, "isInlineArray"), components), nil
		},
		"ElementaryTypeNameExpression": func(rc *ReadContext, id int, src ast.Src, fields map[string]json.RawMessage, raw json.RawMessage) (ast.Node, error) {
			typeName, err := rc.child(fields, "typeName")
			if err != nil {
				return nil, err
			}
			return rc.Factory.MakeElementaryTypeNameExpression(src, typeName), nil
		},
	}
}
