// Copyright 2018 karma.run AG. All rights reserved.

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
)

func TestMutateBlockContainerOps(t *testing.T) {
	ctx := ast.NewContext(0)
	f := ast.NewFactory(ctx)

	s1 := f.MakeExpressionStatement(ast.Src{}, f.MakeIdentifier(ast.Src{}, "a", 0, false, nil))
	s2 := f.MakeExpressionStatement(ast.Src{}, f.MakeIdentifier(ast.Src{}, "b", 0, false, nil))
	block := f.MakeBlock(ast.Src{}, []ast.Node{s1, s2})

	s3 := f.MakeExpressionStatement(ast.Src{}, f.MakeIdentifier(ast.Src{}, "c", 0, false, nil))
	ast.AppendChild(block, s3)
	require.Equal(t, []ast.Node{s1, s2, s3}, block.ChildList())
	assert.Same(t, block, s3.Parent())

	s0 := f.MakeExpressionStatement(ast.Src{}, f.MakeIdentifier(ast.Src{}, "z", 0, false, nil))
	ast.InsertAtBeginning(block, s0)
	require.Equal(t, []ast.Node{s0, s1, s2, s3}, block.ChildList())

	s15 := f.MakeExpressionStatement(ast.Src{}, f.MakeIdentifier(ast.Src{}, "15", 0, false, nil))
	ok := ast.InsertAfter(block, s1, s15)
	require.True(t, ok)
	require.Equal(t, []ast.Node{s0, s1, s15, s2, s3}, block.ChildList())

	replacement := f.MakeExpressionStatement(ast.Src{}, f.MakeIdentifier(ast.Src{}, "r", 0, false, nil))
	ok = ast.ReplaceChild(block, s2, replacement)
	require.True(t, ok)
	require.Equal(t, []ast.Node{s0, s1, s15, replacement, s3}, block.ChildList())
	assert.Same(t, block, replacement.Parent())

	ok = ast.RemoveChild(block, s15)
	require.True(t, ok)
	require.Equal(t, []ast.Node{s0, s1, replacement, s3}, block.ChildList())

	require.NoError(t, ast.Sanity(block))
}

func TestMutateOperationsOnNonChildFail(t *testing.T) {
	ctx := ast.NewContext(0)
	f := ast.NewFactory(ctx)

	block := f.MakeBlock(ast.Src{}, nil)
	stray := f.MakeExpressionStatement(ast.Src{}, f.MakeIdentifier(ast.Src{}, "x", 0, false, nil))

	assert.False(t, ast.RemoveChild(block, stray))
	assert.False(t, ast.ReplaceChild(block, stray, stray))
	assert.False(t, ast.InsertBefore(block, stray, stray))
	assert.False(t, ast.InsertAfter(block, stray, stray))
}

func TestMutateAttributeSetters(t *testing.T) {
	ctx := ast.NewContext(0)
	f := ast.NewFactory(ctx)

	params := f.MakeParameterList(ast.Src{}, nil)
	returns := f.MakeParameterList(ast.Src{}, nil)
	fn := f.MakeFunctionDefinition(ast.Src{}, "foo", ast.FunctionKindFunction, ast.VisibilityPublic, ast.StateMutabilityNonpayable,
		false, false, 1, "", nil, params, returns, nil, nil, nil)

	doc := f.MakeStructuredDocumentation(ast.Src{}, "does a foo")
	ast.SetDocumentation(fn, doc)
	assert.Same(t, doc, fn.Documentation())
	assert.Same(t, fn, doc.Parent())

	body := f.MakeBlock(ast.Src{}, nil)
	ast.SetBody(fn, body)
	assert.Same(t, body, fn.Body())
	assert.True(t, containsChild(fn.Children(), body))
}

func containsChild(children []ast.Node, target ast.Node) bool {
	for _, c := range children {
		if c == target {
			return true
		}
	}
	return false
}
