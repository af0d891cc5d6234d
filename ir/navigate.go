package ir

import (
	"github.com/docmap-format/go-docmap/ir/keypath"
)

// GetKeyPath descends from y along p, one Object field per component.
//
// A (nil, nil) return means the value is absent: some component had no
// field, or an intermediate component resolved to Null. An explicit
// Null at the final component is returned as the Null node, so callers
// can distinguish "no value" from "null value". A non-Object node
// encountered where descent must continue yields a *PathError.
func (y *Node) GetKeyPath(p keypath.Path) (*Node, error) {
	cur := y
	last := len(p) - 1
	for i, comp := range p {
		if cur.Type != ObjectType {
			return nil, &PathError{Path: p.Prefix(i), Type: cur.Type}
		}
		child := Get(cur, comp)
		if child == nil {
			return nil, nil
		}
		if child.Type == NullType && i < last {
			return nil, nil
		}
		cur = child
	}
	return cur, nil
}

// SetKeyPath binds v at p under y, creating empty Object nodes for
// missing intermediate components. Paths sharing a prefix compose into
// one nested structure regardless of the order they are written in; an
// existing non-Object intermediate yields a *PathError. The final
// component overwrites any prior value.
func (y *Node) SetKeyPath(p keypath.Path, v *Node) error {
	cur := y
	for i, comp := range p[:len(p)-1] {
		if cur.Type != ObjectType {
			return &PathError{Path: p.Prefix(i), Type: cur.Type}
		}
		child := Get(cur, comp)
		if child == nil {
			child = Object()
			Set(cur, comp, child)
		}
		cur = child
	}
	if cur.Type != ObjectType {
		return &PathError{Path: p.Prefix(len(p) - 1), Type: cur.Type}
	}
	Set(cur, p[len(p)-1], v)
	return nil
}
