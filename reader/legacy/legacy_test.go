// Copyright 2018 karma.run AG. All rights reserved.

package legacy_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
	"github.com/JorikSchellekens/solc-typed-ast/reader/legacy"
)

const legacyUnit = `{
	"id": 1,
	"name": "SourceUnit",
	"src": "0:100:0",
	"attributes": {
		"absolutePath": "Foo.sol"
	},
	"children": [
		{
			"id": 2,
			"name": "ContractDefinition",
			"src": "0:100:0",
			"attributes": {
				"name": "Foo",
				"contractKind": "contract",
				"fullyImplemented": true,
				"linearizedBaseContracts": [2],
				"scope": 1
			},
			"children": [
				{
					"id": 3,
					"name": "FunctionDefinition",
					"src": "0:50:0",
					"attributes": {
						"name": "bar",
						"visibility": "public",
						"isConstructor": false,
						"scope": 2
					},
					"children": [
						{"id": 4, "name": "ParameterList", "src": "0:1:0", "attributes": {}, "children": []},
						{"id": 5, "name": "ParameterList", "src": "0:1:0", "attributes": {}, "children": []},
						{
							"id": 6,
							"name": "Block",
							"src": "0:10:0",
							"attributes": {},
							"children": [
								{
									"id": 7,
									"name": "ExpressionStatement",
									"src": "0:5:0",
									"attributes": {},
									"children": [
										{
											"id": 8,
											"name": "Literal",
											"src": "0:5:0",
											"attributes": {
												"token": "string",
												"value": "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"
											},
											"children": []
										}
									]
								}
							]
						}
					]
				}
			]
		}
	]
}`

func TestLegacyReadBuildsTreeAndPreservesIDs(t *testing.T) {
	ctx := ast.NewContext(0)
	su, err := legacy.Read(ctx, []byte(legacyUnit), legacy.DefaultRegistry(), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, su)

	assert.Equal(t, 1, su.ID())
	assert.Equal(t, "Foo.sol", su.AbsolutePath)

	contract, ok := su.Children()[0].(*ast.ContractDefinition)
	require.True(t, ok)
	assert.Equal(t, 2, contract.ID())
	assert.Equal(t, "Foo", contract.Name)

	require.NoError(t, ast.Sanity(su))
}

func TestLegacyReadNormalizesAddressLiteral(t *testing.T) {
	ctx := ast.NewContext(0)
	su, err := legacy.Read(ctx, []byte(legacyUnit), legacy.DefaultRegistry(), nil, nil)
	require.NoError(t, err)

	lits := ast.GetChildrenByKind(su, ast.KindLiteral)
	require.Len(t, lits, 1)
	lit := lits[0].(*ast.Literal)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", lit.Value)
}

func TestLegacyReadRejectsUnknownKind(t *testing.T) {
	const doc = `{"id": 1, "name": "SourceUnit", "src": "0:1:0", "attributes": {}, "children": [
		{"id": 2, "name": "TotallyMadeUpNode", "src": "0:1:0", "attributes": {}, "children": []}
	]}`
	ctx := ast.NewContext(0)
	_, err := legacy.Read(ctx, []byte(doc), legacy.DefaultRegistry(), nil, nil)
	require.Error(t, err)
	var unknown *ast.UnknownNodeKindError
	assert.ErrorAs(t, err, &unknown)
}

func TestLegacyReadHonorsCustomBuilderOverride(t *testing.T) {
	const doc = `{"id": 1, "name": "SourceUnit", "src": "0:1:0", "attributes": {}, "children": [
		{"id": 2, "name": "MyCustomNode", "src": "0:1:0", "attributes": {}, "children": []}
	]}`
	registry := legacy.DefaultRegistry()
	called := false
	registry["MyCustomNode"] = func(rc *legacy.ReadContext, id int, src ast.Src, attrs map[string]json.RawMessage, children []ast.Node, raw json.RawMessage) (ast.Node, error) {
		called = true
		return rc.Factory.MakePlaceholderStatement(src), nil
	}

	ctx := ast.NewContext(0)
	su, err := legacy.Read(ctx, []byte(doc), registry, nil, nil)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, ast.KindPlaceholderStatement, su.Children()[0].Kind())
}
