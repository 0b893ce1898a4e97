// Copyright 2018 karma.run AG. All rights reserved.

// Package rawutil holds the small JSON-shape helpers shared by the legacy
// and modern readers: parsing the compiler's "offset:length:file" src
// triple and decoding a node's raw fields into a lookup map.
package rawutil

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/JorikSchellekens/solc-typed-ast/ast"
)

// ParseSrc parses a compiler src string "offset:length:fileIndex".
func ParseSrc(s string) (ast.Src, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ast.Src{}, fmt.Errorf("rawutil: malformed src %q", s)
	}
	offset, err := strconv.Atoi(parts[0])
	if err != nil {
		return ast.Src{}, fmt.Errorf("rawutil: malformed src %q: %w", s, err)
	}
	length, err := strconv.Atoi(parts[1])
	if err != nil {
		return ast.Src{}, fmt.Errorf("rawutil: malformed src %q: %w", s, err)
	}
	fileIndex, err := strconv.Atoi(parts[2])
	if err != nil {
		return ast.Src{}, fmt.Errorf("rawutil: malformed src %q: %w", s, err)
	}
	return ast.Src{Offset: offset, Length: length, FileIndex: fileIndex}, nil
}

// Fields decodes a JSON object into a field-name -> raw-value map. It
// returns an error if raw is not a JSON object.
func Fields(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("rawutil: expected object: %w", err)
	}
	return m, nil
}

// String decodes fields[key] as a string, returning "" if absent.
func String(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}

// Bool decodes fields[key] as a bool, returning false if absent.
func Bool(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	var b bool
	_ = json.Unmarshal(raw, &b)
	return b
}

// Int decodes fields[key] as an int, returning 0, false if absent or null.
func Int(fields map[string]json.RawMessage, key string) (int, bool) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return 0, false
	}
	var i int
	if err := json.Unmarshal(raw, &i); err != nil {
		return 0, false
	}
	return i, true
}

// IntList decodes fields[key] as a []int, returning nil if absent.
func IntList(fields map[string]json.RawMessage, key string) []int {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var xs []int
	_ = json.Unmarshal(raw, &xs)
	return xs
}

// StringList decodes fields[key] as a []string, returning nil if absent.
func StringList(fields map[string]json.RawMessage, key string) []string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var xs []string
	_ = json.Unmarshal(raw, &xs)
	return xs
}

// NullableIntList decodes fields[key] as a []*int, preserving JSON nulls as
// nil entries (used for VariableDeclarationStatement.assignments, where a
// null marks an omitted tuple position).
func NullableIntList(fields map[string]json.RawMessage, key string) []*int {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var xs []*int
	_ = json.Unmarshal(raw, &xs)
	return xs
}

// RawList decodes fields[key] as a []json.RawMessage, returning nil if
// absent.
func RawList(fields map[string]json.RawMessage, key string) []json.RawMessage {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var xs []json.RawMessage
	_ = json.Unmarshal(raw, &xs)
	return xs
}

// IsNull reports whether raw is absent or the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	return raw == nil || string(raw) == "null"
}
