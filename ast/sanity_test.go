// Copyright 2018 karma.run AG. All rights reserved.

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
)

func TestSanityPassesForWellFormedTree(t *testing.T) {
	ctx := ast.NewContext(0)
	_, su, _ := buildSmallUnit(t, ctx)
	require.NoError(t, ast.Sanity(su))
	assert.True(t, ast.IsSane(su))
}

func TestSanityDetectsParentageInconsistency(t *testing.T) {
	ctx := ast.NewContext(0)
	f := ast.NewFactory(ctx)

	stmt := f.MakeExpressionStatement(ast.Src{}, f.MakeIdentifier(ast.Src{}, "x", 0, false, nil))
	block := f.MakeBlock(ast.Src{}, []ast.Node{stmt})
	_ = f.MakeBlock(ast.Src{}, []ast.Node{stmt}) // re-parents stmt to the second block without fixing the first

	err := ast.Sanity(block)
	var parentageErr *ast.ParentageInconsistentError
	assert.ErrorAs(t, err, &parentageErr)
}

func TestSanityDetectsWrongContext(t *testing.T) {
	ctx1 := ast.NewContext(0)
	ctx2 := ast.NewContext(0)
	f2 := ast.NewFactory(ctx2)

	foreign := f2.MakeExpressionStatement(ast.Src{}, f2.MakeIdentifier(ast.Src{}, "x", 0, false, nil))

	f1 := ast.NewFactory(ctx1)
	block := f1.MakeBlock(ast.Src{}, nil)
	ast.AppendChild(block, foreign)

	err := ast.Sanity(block)
	var wrongCtx *ast.WrongContextError
	assert.ErrorAs(t, err, &wrongCtx)
}

func TestSanityDetectsDanglingExportedSymbol(t *testing.T) {
	ctx := ast.NewContext(0)
	f := ast.NewFactory(ctx)
	su := f.MakeSourceUnit(ast.Src{}, "Foo.sol", "", map[string][]int{"Foo": {999999}}, nil)

	err := ast.Sanity(su)
	require.Error(t, err)
}
