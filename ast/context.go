// Copyright 2018 karma.run AG. All rights reserved.

package ast

import "sync"

// Context is the arena that owns every node of one compilation: it assigns
// ids, resolves id -> node, and tracks membership. A Context is not safe for
// concurrent use (see spec.md §5: a context is a single-threaded ownership
// island); callers sharing one across goroutines must serialize access
// themselves.
type Context struct {
	mu      sync.Mutex // guards nextID only; node map access is single-threaded per spec.md §5
	nextID  int
	nodes   map[int]Node
}

// NewContext creates an empty Context whose id counter starts at offset+1
// (offset defaults to 0 when callers pass 0, giving ids starting at 1 per
// spec.md §4.1).
func NewContext(offset int) *Context {
	return &Context{
		nextID: offset,
		nodes:  make(map[int]Node, 256),
	}
}

// FreshID returns the next unused id and advances the counter. Ids handed
// out by one Context are monotonically increasing and never reused, even
// across Unregister calls.
func (c *Context) FreshID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	return c.nextID
}

// Register records n as owned by c under n.ID(). It overwrites any previous
// registration that shared the id (callers needing id-collision detection
// should check Contains/Lookup first, or use Merge).
func (c *Context) Register(n Node) {
	c.nodes[n.ID()] = n
}

// Unregister removes id from c. It is a no-op if id was not registered.
func (c *Context) Unregister(id int) {
	delete(c.nodes, id)
}

// Lookup returns the node registered under id, if any.
func (c *Context) Lookup(id int) (Node, bool) {
	n, ok := c.nodes[id]
	return n, ok
}

// Require returns the node registered under id, or a MissingNode error.
func (c *Context) Require(id int) (Node, error) {
	n, ok := c.nodes[id]
	if !ok {
		return nil, &MissingNodeError{ID: id}
	}
	return n, nil
}

// Contains reports whether n is registered in c under its own id (i.e. n
// belongs to this context, not merely to a context with the same id space).
func (c *Context) Contains(n Node) bool {
	if n == nil {
		return false
	}
	found, ok := c.nodes[n.ID()]
	return ok && found == n
}

// Len returns the number of nodes currently registered in c.
func (c *Context) Len() int { return len(c.nodes) }

// bumpTo advances c's id counter so that a future FreshID never reissues an
// id at or below id. It is used when a node is registered under an
// explicit id (reader-preserved compiler ids) rather than one drawn from
// the counter itself.
func (c *Context) bumpTo(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id > c.nextID {
		c.nextID = id
	}
}

// Merge folds other's nodes into c, requiring the two contexts' id spaces to
// be disjoint. On success, every node formerly owned by other is re-pointed
// at c and other is left empty. On failure (a colliding id), c is left
// completely unmodified and a DuplicateIdError names the offending id.
func (c *Context) Merge(other *Context) error {
	if other == nil || other == c {
		return nil
	}
	for id := range other.nodes {
		if _, collide := c.nodes[id]; collide {
			return &DuplicateIdError{ID: id}
		}
	}
	for id, n := range other.nodes {
		n.setContext(c)
		c.nodes[id] = n
	}
	if other.nextID > c.nextID {
		c.nextID = other.nextID
	}
	other.nodes = make(map[int]Node)
	return nil
}
