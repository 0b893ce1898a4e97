// Copyright 2018 karma.run AG. All rights reserved.

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
)

func TestContextFreshIDMonotonic(t *testing.T) {
	ctx := ast.NewContext(0)
	first := ctx.FreshID()
	second := ctx.FreshID()
	assert.Less(t, first, second)
}

func TestContextOffset(t *testing.T) {
	ctx := ast.NewContext(100)
	assert.Equal(t, 101, ctx.FreshID())
}

func TestContextLookupRequire(t *testing.T) {
	ctx := ast.NewContext(0)
	f := ast.NewFactory(ctx)
	lit := f.MakeLiteral(ast.Src{}, ast.LiteralKindNumber, "1", "0x1", "")

	got, ok := ctx.Lookup(lit.ID())
	require.True(t, ok)
	assert.Same(t, lit, got)

	_, ok = ctx.Lookup(lit.ID() + 1000)
	assert.False(t, ok)

	_, err := ctx.Require(lit.ID() + 1000)
	var missing *ast.MissingNodeError
	assert.ErrorAs(t, err, &missing)
}

func TestContextContains(t *testing.T) {
	ctx1 := ast.NewContext(0)
	ctx2 := ast.NewContext(0)
	lit := ast.NewFactory(ctx1).MakeLiteral(ast.Src{}, ast.LiteralKindNumber, "1", "0x1", "")

	assert.True(t, ctx1.Contains(lit))
	assert.False(t, ctx2.Contains(lit))
	assert.False(t, ctx1.Contains(nil))
}

func TestContextMergeDisjoint(t *testing.T) {
	ctx1 := ast.NewContext(0)
	ctx2 := ast.NewContext(1000)

	lit1 := ast.NewFactory(ctx1).MakeLiteral(ast.Src{}, ast.LiteralKindNumber, "1", "0x1", "")
	lit2 := ast.NewFactory(ctx2).MakeLiteral(ast.Src{}, ast.LiteralKindNumber, "2", "0x2", "")

	require.NoError(t, ctx1.Merge(ctx2))
	assert.True(t, ctx1.Contains(lit1))
	assert.True(t, ctx1.Contains(lit2))
	assert.Equal(t, 0, ctx2.Len())
}

func TestContextMergeCollision(t *testing.T) {
	ctx1 := ast.NewContext(0)
	ctx2 := ast.NewContext(0)

	ast.NewFactory(ctx1).MakeLiteral(ast.Src{}, ast.LiteralKindNumber, "1", "0x1", "")
	ast.NewFactory(ctx2).MakeLiteral(ast.Src{}, ast.LiteralKindNumber, "2", "0x2", "")

	err := ctx1.Merge(ctx2)
	var dup *ast.DuplicateIdError
	assert.ErrorAs(t, err, &dup)
	// a failed merge leaves ctx1 unmodified
	assert.Equal(t, 1, ctx1.Len())
	assert.Equal(t, 1, ctx2.Len())
}
