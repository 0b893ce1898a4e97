// Copyright 2018 karma.run AG. All rights reserved.

package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print renders root's subtree to w as indented, Solidity-flavored text:
// one line per node, children indented two spaces under their parent, in
// Children() order. Relation labels are not printed, and there is no depth
// limit: the whole subtree is always rendered.
// It is a debugging aid, not a code generator: no attempt is made to
// reconstruct compilable Solidity source.
func Print(w io.Writer, root Node) {
	printNode(w, root, 0)
}

func printNode(w io.Writer, n Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s", indent, n.Kind())
	if label := summarize(n); label != "" {
		fmt.Fprintf(w, " %s", label)
	}
	fmt.Fprintf(w, " #%d\n", n.ID())
	for _, child := range n.Children() {
		printNode(w, child, depth+1)
	}
}

// summarize returns a short one-line label for n's own attributes (name,
// operator, value, ...), mirroring the single field that best identifies
// the node in the teacher's own terse style.
func summarize(n Node) string {
	switch v := n.(type) {
	case *SourceUnit:
		return v.AbsolutePath
	case *PragmaDirective:
		return strings.Join(v.Literals, " ")
	case *ContractDefinition:
		return fmt.Sprintf("%s %s", v.ContractKind, v.Name)
	case *FunctionDefinition:
		return fmt.Sprintf("%s %s", v.FunctionKind, v.Name)
	case *ModifierDefinition:
		return v.Name
	case *EventDefinition:
		return v.Name
	case *ErrorDefinition:
		return v.Name
	case *StructDefinition:
		return v.Name
	case *EnumDefinition:
		return v.Name
	case *EnumValue:
		return v.Name
	case *UserDefinedValueTypeDefinition:
		return v.Name
	case *VariableDeclaration:
		return v.Name
	case *ElementaryTypeName:
		return v.Name
	case *UserDefinedTypeName:
		return v.Name
	case *IdentifierPath:
		return v.Name
	case *Identifier:
		return v.Name
	case *MemberAccess:
		return v.MemberName
	case *Literal:
		return fmt.Sprintf("%s %s", v.LiteralKind, v.Value)
	case *UnaryOperation:
		return v.Operator
	case *BinaryOperation:
		return v.Operator
	case *Assignment:
		return v.Operator
	case *FunctionCall:
		return string(v.FunctionCallKind)
	case *ImportDirective:
		return v.File
	}
	return ""
}
