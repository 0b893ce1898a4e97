// Copyright 2018 karma.run AG. All rights reserved.

package ast

// Container is implemented by every node kind whose structural children
// form an ordered, mutable list (spec.md §4.4) rather than a fixed set of
// typed attributes. Block and SourceUnit are examples; FunctionDefinition
// is not, since its parameters/body/modifiers are distinct typed fields,
// not a single list.
type Container interface {
	Node
	ChildList() []Node
	setChildList([]Node)
}

func (n *SourceUnit) ChildList() []Node         { return n.nodes }
func (n *SourceUnit) setChildList(nodes []Node) { n.nodes = nodes }

func (n *ContractDefinition) ChildList() []Node         { return n.nodes }
func (n *ContractDefinition) setChildList(nodes []Node) { n.nodes = nodes }

func (n *Block) ChildList() []Node         { return n.statements }
func (n *Block) setChildList(nodes []Node) { n.statements = nodes }

func (n *UncheckedBlock) ChildList() []Node         { return n.statements }
func (n *UncheckedBlock) setChildList(nodes []Node) { n.statements = nodes }

func (n *ParameterList) ChildList() []Node         { return n.parameters }
func (n *ParameterList) setChildList(nodes []Node) { n.parameters = nodes }

func (n *StructDefinition) ChildList() []Node         { return n.members }
func (n *StructDefinition) setChildList(nodes []Node) { n.members = nodes }

func (n *EnumDefinition) ChildList() []Node         { return n.values }
func (n *EnumDefinition) setChildList(nodes []Node) { n.values = nodes }

func (n *TryStatement) ChildList() []Node         { return n.clauses }
func (n *TryStatement) setChildList(nodes []Node) { n.clauses = nodes }

// AppendChild adds child to the end of c's child list and sets its parent
// to c.
func AppendChild(c Container, child Node) {
	attach(c, child)
	c.setChildList(append(c.ChildList(), child))
}

// InsertAtBeginning inserts child before every existing child of c.
func InsertAtBeginning(c Container, child Node) {
	attach(c, child)
	c.setChildList(append([]Node{child}, c.ChildList()...))
}

// InsertBefore inserts child immediately before ref in c's child list.
// Returns false, leaving c unmodified, if ref is not a direct child of c.
func InsertBefore(c Container, ref, child Node) bool {
	list := c.ChildList()
	idx := indexOf(list, ref)
	if idx < 0 {
		return false
	}
	attach(c, child)
	out := make([]Node, 0, len(list)+1)
	out = append(out, list[:idx]...)
	out = append(out, child)
	out = append(out, list[idx:]...)
	c.setChildList(out)
	return true
}

// InsertAfter inserts child immediately after ref in c's child list.
// Returns false, leaving c unmodified, if ref is not a direct child of c.
func InsertAfter(c Container, ref, child Node) bool {
	list := c.ChildList()
	idx := indexOf(list, ref)
	if idx < 0 {
		return false
	}
	attach(c, child)
	out := make([]Node, 0, len(list)+1)
	out = append(out, list[:idx+1]...)
	out = append(out, child)
	out = append(out, list[idx+1:]...)
	c.setChildList(out)
	return true
}

// ReplaceChild replaces the first occurrence of old in c's child list with
// replacement. Returns false, leaving c unmodified, if old is not a direct
// child of c.
func ReplaceChild(c Container, old, replacement Node) bool {
	list := c.ChildList()
	idx := indexOf(list, old)
	if idx < 0 {
		return false
	}
	attach(c, replacement)
	old.setParent(nil)
	out := append([]Node(nil), list...)
	out[idx] = replacement
	c.setChildList(out)
	return true
}

// RemoveChild removes child from c's child list. Returns false, leaving c
// unmodified, if child is not a direct child of c.
func RemoveChild(c Container, child Node) bool {
	list := c.ChildList()
	idx := indexOf(list, child)
	if idx < 0 {
		return false
	}
	out := make([]Node, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	c.setChildList(out)
	child.setParent(nil)
	return true
}

func indexOf(list []Node, target Node) int {
	for i, n := range list {
		if n == target {
			return i
		}
	}
	return -1
}

// SetDocumentation rewires a declaration's documentation attribute. Unlike
// the Container list operations above, most node kinds expose their
// optional single-valued children (documentation, body, overrides, ...) as
// distinct typed attributes rather than a list, so they are mutated by
// per-kind setters instead of the list operations (spec.md §4.4
// distinguishes "structural mutation" of lists from plain attribute
// assignment). Only a handful of setters are provided; callers needing
// another attribute rewired can do so directly
// since the fields live in this package.
func SetDocumentation(n *FunctionDefinition, doc Node) {
	attach(n, doc)
	n.documentation = doc
}

// SetBody rewires a FunctionDefinition's body, e.g. to attach an
// implementation to a previously-abstract declaration.
func SetBody(n *FunctionDefinition, body Node) {
	attach(n, body)
	n.body = body
}

// SetValue rewires a VariableDeclaration's initializer expression.
func SetValue(n *VariableDeclaration, value Node) {
	attach(n, value)
	n.value = value
}
