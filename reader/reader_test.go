// Copyright 2018 karma.run AG. All rights reserved.

package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
	"github.com/JorikSchellekens/solc-typed-ast/reader"
)

const modernSource = `{
	"id": 1,
	"nodeType": "SourceUnit",
	"src": "0:10:0",
	"absolutePath": "Modern.sol",
	"nodes": []
}`

const legacySource = `{
	"id": 2,
	"name": "SourceUnit",
	"src": "0:10:0",
	"attributes": {"absolutePath": "Legacy.sol"},
	"children": []
}`

func compiled(sources string) string {
	return `{"sources": {` + sources + `}}`
}

func TestReadDetectsModernVsLegacySchemaPerSection(t *testing.T) {
	doc := compiled(`
		"Modern.sol": {"ast": ` + modernSource + `},
		"Legacy.sol": {"legacyAST": ` + legacySource + `}
	`)
	ctx := ast.NewContext(0)
	units, err := reader.Read(ctx, []byte(doc))
	require.NoError(t, err)
	require.Len(t, units, 2)

	paths := map[string]bool{}
	for _, su := range units {
		paths[su.AbsolutePath] = true
	}
	assert.True(t, paths["Modern.sol"])
	assert.True(t, paths["Legacy.sol"])
}

func TestReadSkipsSourceOnlySections(t *testing.T) {
	doc := compiled(`"Readme.sol": {"source": "contract Foo {}"}`)
	ctx := ast.NewContext(0)
	units, err := reader.Read(ctx, []byte(doc))
	require.NoError(t, err)
	assert.Len(t, units, 0)
}

func TestReadFailsOnCompileErrors(t *testing.T) {
	doc := `{"sources": {}, "errors": [{"severity": "error", "message": "boom"}]}`
	ctx := ast.NewContext(0)
	_, err := reader.Read(ctx, []byte(doc))
	require.Error(t, err)
	var compileErr *ast.CompileErrorsPresentError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, []string{"boom"}, compileErr.Messages)
}

func TestReadToleratesWarnings(t *testing.T) {
	doc := compiled(`"Modern.sol": {"ast": ` + modernSource + `}`)
	doc = doc[:len(doc)-1] + `, "errors": [{"severity": "warning", "message": "unused variable"}]}`
	ctx := ast.NewContext(0)
	units, err := reader.Read(ctx, []byte(doc))
	require.NoError(t, err)
	assert.Len(t, units, 1)
}

func TestReadAssignsDistinctIDSpacesAcrossSections(t *testing.T) {
	// Mirrors how solc numbers a multi-file compilation: node ids are unique
	// across the whole compiled output, not just within one file's AST.
	doc := compiled(`
		"A.sol": {"ast": {"id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "A.sol", "nodes": []}},
		"B.sol": {"ast": {"id": 2, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "B.sol", "nodes": []}}
	`)
	ctx := ast.NewContext(0)
	units, err := reader.Read(ctx, []byte(doc))
	require.NoError(t, err)
	require.Len(t, units, 2)
	for _, su := range units {
		require.NoError(t, ast.Sanity(su))
	}
}

func TestWithToleratedKindsSkipsInsteadOfFailing(t *testing.T) {
	doc := compiled(`"Modern.sol": {"ast": {
		"id": 1, "nodeType": "SourceUnit", "src": "0:1:0", "absolutePath": "Modern.sol",
		"nodes": [{"id": 2, "nodeType": "NewFangledNode", "src": "0:1:0"}]
	}}`)
	ctx := ast.NewContext(0)

	_, err := reader.Read(ctx, []byte(doc))
	require.Error(t, err)
	var unknown *ast.UnknownNodeKindError
	require.ErrorAs(t, err, &unknown)

	ctx2 := ast.NewContext(0)
	units, err := reader.Read(ctx2, []byte(doc), reader.WithToleratedKinds("NewFangledNode"))
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Len(t, units[0].Children(), 0)
}

func TestWithPostProcessRunsOnEveryNode(t *testing.T) {
	doc := compiled(`"Modern.sol": {"ast": ` + modernSource + `}`)
	ctx := ast.NewContext(0)
	visited := 0
	units, err := reader.Read(ctx, []byte(doc), reader.WithPostProcess(func(ast.Node) { visited++ }))
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, 1, visited)
}
