// Copyright 2018 karma.run AG. All rights reserved.

package modern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
	"github.com/JorikSchellekens/solc-typed-ast/reader/modern"
)

const modernUnit = `{
	"id": 1,
	"nodeType": "SourceUnit",
	"src": "0:100:0",
	"absolutePath": "Foo.sol",
	"nodes": [
		{
			"id": 2,
			"nodeType": "ContractDefinition",
			"src": "0:100:0",
			"name": "Foo",
			"contractKind": "contract",
			"fullyImplemented": true,
			"linearizedBaseContracts": [2],
			"scope": 1,
			"baseContracts": [],
			"nodes": [
				{
					"id": 3,
					"nodeType": "FunctionDefinition",
					"src": "0:50:0",
					"name": "bar",
					"kind": "function",
					"visibility": "public",
					"stateMutability": "nonpayable",
					"implemented": true,
					"scope": 2,
					"parameters": {"id": 4, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
					"returnParameters": {"id": 5, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
					"modifiers": [],
					"body": {
						"id": 6,
						"nodeType": "Block",
						"src": "0:10:0",
						"statements": [
							{
								"id": 7,
								"nodeType": "ExpressionStatement",
								"src": "0:5:0",
								"expression": {
									"id": 8,
									"nodeType": "Literal",
									"src": "0:5:0",
									"kind": "string",
									"value": "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
									"hexValue": ""
								}
							}
						]
					}
				}
			]
		}
	]
}`

func TestModernReadBuildsTreeAndPreservesIDs(t *testing.T) {
	ctx := ast.NewContext(0)
	su, err := modern.Read(ctx, []byte(modernUnit), modern.DefaultRegistry(), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, su)

	assert.Equal(t, 1, su.ID())
	assert.Equal(t, "Foo.sol", su.AbsolutePath)

	contract, ok := su.Children()[0].(*ast.ContractDefinition)
	require.True(t, ok)
	assert.Equal(t, 2, contract.ID())

	fn, ok := contract.Children()[0].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "bar", fn.Name)
	assert.True(t, fn.Implemented)

	require.NoError(t, ast.Sanity(su))
}

func TestModernReadNormalizesAddressLiteral(t *testing.T) {
	ctx := ast.NewContext(0)
	su, err := modern.Read(ctx, []byte(modernUnit), modern.DefaultRegistry(), nil, nil)
	require.NoError(t, err)

	lits := ast.GetChildrenByKind(su, ast.KindLiteral)
	require.Len(t, lits, 1)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", lits[0].(*ast.Literal).Value)
}

func TestModernReadRejectsUnknownKind(t *testing.T) {
	const doc = `{"id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "nodes": [
		{"id": 2, "nodeType": "TotallyMadeUpNode", "src": "0:1:0"}
	]}`
	ctx := ast.NewContext(0)
	_, err := modern.Read(ctx, []byte(doc), modern.DefaultRegistry(), nil, nil)
	require.Error(t, err)
	var unknown *ast.UnknownNodeKindError
	assert.ErrorAs(t, err, &unknown)
}
