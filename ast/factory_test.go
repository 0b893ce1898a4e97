// Copyright 2018 karma.run AG. All rights reserved.

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
)

func buildSmallUnit(t *testing.T, ctx *ast.Context) (*ast.Factory, *ast.SourceUnit, *ast.FunctionDefinition) {
	t.Helper()
	f := ast.NewFactory(ctx)

	params := f.MakeParameterList(ast.Src{}, nil)
	returns := f.MakeParameterList(ast.Src{}, nil)
	ident := f.MakeIdentifier(ast.Src{}, "x", 0, false, nil)
	exprStmt := f.MakeExpressionStatement(ast.Src{}, ident)
	body := f.MakeBlock(ast.Src{}, []ast.Node{exprStmt})
	fn := f.MakeFunctionDefinition(ast.Src{}, "foo", ast.FunctionKindFunction, ast.VisibilityPublic, ast.StateMutabilityNonpayable,
		false, true, 1, "", nil, params, returns, nil, nil, body)
	contract := f.MakeContractDefinition(ast.Src{}, "Foo", ast.ContractKindContract, false, true, 1,
		[]int{1}, nil, nil, "", nil, []ast.Node{fn})
	su := f.MakeSourceUnit(ast.Src{}, "Foo.sol", "", nil, []ast.Node{contract})
	return f, su, fn
}

func TestFactoryAssignsMonotonicIDsAndWiresParents(t *testing.T) {
	ctx := ast.NewContext(0)
	_, su, fn := buildSmallUnit(t, ctx)

	assert.NotZero(t, su.ID())
	assert.NotZero(t, fn.ID())
	assert.Greater(t, su.ID(), fn.ID())

	contract := su.Children()[0]
	assert.Same(t, su, contract.Parent())
	assert.Same(t, contract, fn.Parent())
}

func TestFactorySetNextIDPreservesReaderSuppliedID(t *testing.T) {
	ctx := ast.NewContext(0)
	f := ast.NewFactory(ctx)

	f.SetNextID(4242)
	lit := f.MakeLiteral(ast.Src{}, ast.LiteralKindNumber, "1", "0x1", "")
	assert.Equal(t, 4242, lit.ID())

	// the override is consumed exactly once
	lit2 := f.MakeLiteral(ast.Src{}, ast.LiteralKindNumber, "2", "0x2", "")
	assert.NotEqual(t, 4242, lit2.ID())

	// a later FreshID never collides with the preserved id
	assert.Greater(t, ctx.FreshID(), 4242)
}

func TestFactoryCopyIsIndependentWithFreshIDs(t *testing.T) {
	ctx := ast.NewContext(0)
	f, su, fn := buildSmallUnit(t, ctx)

	copied := f.Copy(su)
	copiedSU, ok := copied.(*ast.SourceUnit)
	require.True(t, ok)

	assert.NotEqual(t, su.ID(), copiedSU.ID())

	copiedFn := copiedSU.Children()[0].Children()[0].(*ast.FunctionDefinition)
	assert.NotEqual(t, fn.ID(), copiedFn.ID())
	assert.Equal(t, fn.Name, copiedFn.Name)

	// mutating the copy's child list does not affect the original
	ast.AppendChild(copiedSU, f.MakePragmaDirective(ast.Src{}, []string{"solidity", "^0.8.0"}))
	assert.Len(t, copiedSU.Children(), 2)
	assert.Len(t, su.Children(), 1)

	require.NoError(t, ast.Sanity(su))
	require.NoError(t, ast.Sanity(copiedSU))
}
