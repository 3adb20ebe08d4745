package scene

import (
	"slices"
)

type child struct {
	node   Node
	z, tag int
	seq    uint64
}

// Group is an ordered container of nodes.
// Children are drawn by ascending z, ties broken by insertion order.
type Group struct {
	Base

	children []child
	seq      uint64
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// AddChild attaches n with the given z order and tag.
// Adding a node that is already a child moves it.
func (g *Group) AddChild(n Node, z, tag int) {
	g.RemoveChild(n)
	g.seq++
	c := child{node: n, z: z, tag: tag, seq: g.seq}

	i, _ := slices.BinarySearchFunc(g.children, c, func(a, b child) int {
		if a.z != b.z {
			return a.z - b.z
		}
		return int(a.seq) - int(b.seq)
	})
	g.children = slices.Insert(g.children, i, c)
}

// RemoveChild detaches n. It reports whether n was a child.
func (g *Group) RemoveChild(n Node) bool {
	i := slices.IndexFunc(g.children, func(c child) bool { return c.node == n })
	if i < 0 {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	return true
}

// Children returns the children in draw order.
func (g *Group) Children() []Node {
	nodes := make([]Node, len(g.children))
	for i, c := range g.children {
		nodes[i] = c.node
	}
	return nodes
}

// ChildByTag returns the first child with tag, or nil.
func (g *Group) ChildByTag(tag int) Node {
	for _, c := range g.children {
		if c.tag == tag {
			return c.node
		}
	}
	return nil
}

// Contains reports whether n is a child of g.
func (g *Group) Contains(n Node) bool {
	return slices.ContainsFunc(g.children, func(c child) bool { return c.node == n })
}

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }
