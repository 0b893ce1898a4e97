// Copyright 2018 karma.run AG. All rights reserved.
package types // import "github.com/JorikSchellekens/solc-typed-ast/types"

// Type is the closed sum of Solidity type shapes a TypeDescriptorParser can
// produce. Map rebuilds a Type, applying f to every leaf (Reference,
// Elementary, Enum and the address kinds); composite shapes rebuild their
// children first and never call f on themselves.
type Type interface {
	Map(func(Type) Type) Type
}

// DynamicArrayLength marks an array type as dynamically sized.
// NOTE: Solidity accepts 0-length array types e.g. uint256[0] is valid.
const DynamicArrayLength = -1

// Reference is an unresolved placeholder, kept until a Map deref substitutes
// a concrete Type for it (see Map.Deref).
type Reference int

func (t Reference) Map(f func(Type) Type) Type {
	return f(t)
}

// Elementary is a built-in Solidity type name (uint256, address, bool, ...).
type Elementary string

func (t Elementary) Map(f func(Type) Type) Type {
	return f(t)
}

type Event struct {
	Name string
	Args []Type
}

func (t Event) Map(f func(Type) Type) Type {
	length := len(t.Args)
	args := make([]Type, length, length)
	for i := 0; i < length; i++ {
		args[i] = t.Args[i].Map(f)
	}
	return Event{Name: t.Name, Args: args} // NOTE: no f()
}

type Tuple []Type

func (t Tuple) Map(f func(Type) Type) Type {
	length := len(t)
	out := make(Tuple, length, length)
	for i := 0; i < length; i++ {
		out[i] = t[i].Map(f)
	}
	return out // NOTE: no f()
}

type Struct struct {
	Keys  []string
	Types []Type
}

func (t Struct) Map(f func(Type) Type) Type {
	length := len(t.Keys)
	out := Struct{
		Keys:  make([]string, length, length),
		Types: make([]Type, length, length),
	}
	for i := 0; i < length; i++ {
		out.Keys[i], out.Types[i] = t.Keys[i], t.Types[i].Map(f)
	}
	return out // NOTE: no f()
}

type Array struct {
	Length int
	Type   Type
}

func (a Array) IsDynamic() bool {
	return a.Length == DynamicArrayLength
}

func (t Array) Map(f func(Type) Type) Type {
	return Array{ // NOTE: no f()
		Length: t.Length,
		Type:   t.Type.Map(f),
	}
}

type Mapping struct {
	Key   Type
	Value Type
}

func (t Mapping) Map(f func(Type) Type) Type {
	return Mapping{ // NOTE: no f()
		Key:   t.Key.Map(f),
		Value: t.Value.Map(f),
	}
}

type Enum []string

func (t Enum) Map(f func(Type) Type) Type {
	return f(t)
}

type Named struct {
	Name string
	Type Type
}

func (t Named) Map(f func(Type) Type) Type {
	return Named{ // NOTE: no f()
		Name: t.Name,
		Type: t.Type.Map(f),
	}
}

type ContractAddress string

func (t ContractAddress) Map(f func(Type) Type) Type {
	return f(t)
}

type InterfaceAddress string

func (t InterfaceAddress) Map(f func(Type) Type) Type {
	return f(t)
}

type LibraryAddress string

func (t LibraryAddress) Map(f func(Type) Type) Type {
	return f(t)
}
