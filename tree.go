package sapling

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrUnknownParent is returned when appending under an entity that is
	// not part of the tree.
	ErrUnknownParent = errors.New("sapling: unknown parent entity")
	// ErrDuplicateChild is returned when appending an entity that already
	// has a parent, or the root itself.
	ErrDuplicateChild = errors.New("sapling: entity already in tree")
)

// Tree is the widget hierarchy: a parent map plus ordered child lists.
// Iteration visits every parent before any of its children.
type Tree struct {
	Root Entity

	parent   map[Entity]Entity
	children map[Entity][]Entity
}

// NewTree creates a tree containing only root.
func NewTree(root Entity) *Tree {
	return &Tree{
		Root:     root,
		parent:   make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
	}
}

// Append adds child as the last child of parent.
func (t *Tree) Append(parent, child Entity) error {
	if !t.Contains(parent) {
		return fmt.Errorf("append %d under %d: %w", child, parent, ErrUnknownParent)
	}
	if t.Contains(child) {
		return fmt.Errorf("append %d under %d: %w", child, parent, ErrDuplicateChild)
	}
	t.parent[child] = parent
	t.children[parent] = append(t.children[parent], child)
	return nil
}

// Remove detaches e and its whole subtree. Removing the root or an unknown
// entity does nothing.
func (t *Tree) Remove(e Entity) {
	p, ok := t.parent[e]
	if !ok {
		return
	}
	siblings := t.children[p]
	for i, c := range siblings {
		if c == e {
			copy(siblings[i:], siblings[i+1:])
			t.children[p] = siblings[:len(siblings)-1]
			break
		}
	}
	var drop func(Entity)
	drop = func(n Entity) {
		for _, c := range t.children[n] {
			drop(c)
		}
		delete(t.children, n)
		delete(t.parent, n)
	}
	drop(e)
}

// Contains reports whether e is the root or has a parent in the tree.
func (t *Tree) Contains(e Entity) bool {
	if e == t.Root {
		return true
	}
	_, ok := t.parent[e]
	return ok
}

// Parent returns the parent of e. For the root it returns the root itself
// and false, as it does for entities not in the tree.
func (t *Tree) Parent(e Entity) (Entity, bool) {
	p, ok := t.parent[e]
	if !ok {
		return t.Root, false
	}
	return p, true
}

// Children returns the children of e in insertion order. The returned slice
// MUST NOT be mutated.
func (t *Tree) Children(e Entity) []Entity {
	return t.children[e]
}

// Len returns the number of parent entries, which is every node except the
// root.
func (t *Tree) Len() int {
	return len(t.parent)
}

// All yields the root, then every node depth-first with children in
// insertion order. A parent is always yielded before its children.
func (t *Tree) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		stack := []Entity{t.Root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			kids := t.children[n]
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}
		}
	}
}
