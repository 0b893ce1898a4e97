// Copyright 2018 karma.run AG. All rights reserved.

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JorikSchellekens/solc-typed-ast/types"
)

func TestMapDereferencesChainedReferences(t *testing.T) {
	m := types.Map{
		0: types.Reference(1),
		1: types.Reference(2),
		2: types.Elementary("uint256"),
	}
	assert.Equal(t, types.Elementary("uint256"), m.Deref(0))
}

func TestMapDerefPanicsOnMissingKey(t *testing.T) {
	m := types.Map{}
	assert.Panics(t, func() { m.Deref(99) })
}

func TestArrayMapRebuildsElementType(t *testing.T) {
	arr := types.Array{Length: 4, Type: types.Reference(0)}
	out := arr.Map(func(t types.Type) types.Type {
		if _, ok := t.(types.Reference); ok {
			return types.Elementary("uint256")
		}
		return t
	})
	mapped, ok := out.(types.Array)
	assert.True(t, ok)
	assert.Equal(t, types.Elementary("uint256"), mapped.Type)
	assert.Equal(t, 4, mapped.Length)
}

func TestElementaryParserRecognizesBuiltins(t *testing.T) {
	p := types.ElementaryParser{}
	assert.Equal(t, types.Elementary("uint256"), p.Parse("uint256", "t_uint256"))
	assert.Equal(t, types.Elementary("address"), p.Parse("address payable", "t_address_payable"))
	assert.Equal(t, types.Reference(-1), p.Parse("struct Foo.Bar storage ref", "t_struct$_Bar_$1_storage_ptr"))
}
