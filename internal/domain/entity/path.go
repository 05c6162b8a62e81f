package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Container keys addressable by a path.
const (
	KeyWidgets = "widgets"
	KeyItems   = "items"
	KeyTabs    = "tabs"
	KeyPanels  = "panels"
)

// PathSegment is either a container key or an index.
type PathSegment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a container-key segment.
func Key(k string) PathSegment { return PathSegment{key: k} }

// Index returns an index segment.
func Index(i int) PathSegment { return PathSegment{index: i, isIndex: true} }

// IsIndex reports whether the segment is an index.
func (s PathSegment) IsIndex() bool { return s.isIndex }

func (s PathSegment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path addresses a container or node from a tab's root container.
// The empty path is the root container itself.
type Path []PathSegment

// ParsePath parses the dot-joined form. Numeric segments become indices.
func ParsePath(s string) Path {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		if i, err := strconv.Atoi(part); err == nil {
			p = append(p, Index(i))
			continue
		}
		p = append(p, Key(part))
	}
	return p
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return strings.Join(parts, ".")
}

// IsRoot reports whether the path addresses the root container.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Append returns a new path with segs appended.
func (p Path) Append(segs ...PathSegment) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

// Equal reports segment-wise equality.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// cursor is the value reached while walking a path.
type cursor struct {
	nodes *[]*Node
	node  *Node
	items *[]*ListItem
	item  *ListItem
}

func (c cursor) step(seg PathSegment) (cursor, bool) {
	if seg.isIndex {
		switch {
		case c.nodes != nil:
			if seg.index < 0 || seg.index >= len(*c.nodes) || (*c.nodes)[seg.index] == nil {
				return cursor{}, false
			}
			return cursor{node: (*c.nodes)[seg.index]}, true
		case c.items != nil:
			if seg.index < 0 || seg.index >= len(*c.items) || (*c.items)[seg.index] == nil {
				return cursor{}, false
			}
			return cursor{item: (*c.items)[seg.index]}, true
		}
		return cursor{}, false
	}

	switch {
	case c.node != nil:
		switch seg.key {
		case KeyWidgets:
			return cursor{nodes: &c.node.Widgets}, true
		case KeyItems:
			return cursor{items: &c.node.Items}, true
		case KeyTabs:
			return cursor{items: &c.node.Tabs}, true
		}
	case c.item != nil:
		if seg.key == KeyPanels {
			return cursor{nodes: &c.item.Panels}, true
		}
	}
	return cursor{}, false
}

func walk(root *[]*Node, p Path) (cursor, error) {
	c := cursor{nodes: root}
	for i, seg := range p {
		next, ok := c.step(seg)
		if !ok {
			return cursor{}, fmt.Errorf("%w: %q at segment %d", ErrPathMissing, p.String(), i)
		}
		c = next
	}
	return c, nil
}

// ResolveNodes resolves p to a node container. The empty path is root.
func ResolveNodes(root *[]*Node, p Path) (*[]*Node, error) {
	c, err := walk(root, p)
	if err != nil {
		return nil, err
	}
	if c.nodes == nil {
		return nil, fmt.Errorf("%w: %q is not a node container", ErrPathMissing, p.String())
	}
	return c.nodes, nil
}

// ResolveItems resolves p to a list-item sequence (items or tabs).
func ResolveItems(root *[]*Node, p Path) (*[]*ListItem, error) {
	c, err := walk(root, p)
	if err != nil {
		return nil, err
	}
	if c.items == nil {
		return nil, fmt.Errorf("%w: %q is not an item sequence", ErrPathMissing, p.String())
	}
	return c.items, nil
}

// ResolveNode resolves p to a single node.
func ResolveNode(root *[]*Node, p Path) (*Node, error) {
	c, err := walk(root, p)
	if err != nil {
		return nil, err
	}
	if c.node == nil {
		return nil, fmt.Errorf("%w: %q is not a node", ErrPathMissing, p.String())
	}
	return c.node, nil
}

// OwnsContainer reports whether container is one of the slices held by
// the subtree rooted at n.
func (n *Node) OwnsContainer(container *[]*Node) bool {
	owned := false
	n.Walk(func(node *Node) bool {
		if &node.Widgets == container {
			owned = true
			return false
		}
		for _, groups := range [][]*ListItem{node.Items, node.Tabs} {
			for _, item := range groups {
				if item != nil && &item.Panels == container {
					owned = true
					return false
				}
			}
		}
		return true
	})
	return owned
}
