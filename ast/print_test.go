// Copyright 2018 karma.run AG. All rights reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
)

func TestPrintRendersOneLinePerNode(t *testing.T) {
	ctx := ast.NewContext(0)
	_, su, fn := buildSmallUnit(t, ctx)

	var buf strings.Builder
	ast.Print(&buf, su)
	out := buf.String()

	assert.Contains(t, out, string(ast.KindSourceUnit))
	assert.Contains(t, out, string(ast.KindContractDefinition))
	assert.Contains(t, out, string(ast.KindFunctionDefinition))
	assert.Contains(t, out, fn.Name)
}
