package entity

// NodeKind discriminates the node variants of the panel tree.
type NodeKind string

const (
	NodePanel  NodeKind = "Panel"
	NodeList   NodeKind = "List"
	NodeTabs   NodeKind = "Tabs"
	NodeWidget NodeKind = "Widget"
)

// Node represents a node in a tab's panel tree. It can be either:
//   - Panel: a box wrapping Widgets
//   - List: Items, each holding its own panel set
//   - Tabs: Tabs, each holding its own panel set
//   - Widget: a leaf tagged with Widget, optionally composite (Widgets)
type Node struct {
	Kind     NodeKind   `json:"type"`
	Title    string     `json:"title,omitempty"`
	Widget   WidgetType `json:"widget,omitempty"`
	Property string     `json:"property,omitempty"`
	Label    string     `json:"label,omitempty"`

	Widgets []*Node     `json:"widgets,omitempty"`
	Items   []*ListItem `json:"items,omitempty"`
	Tabs    []*ListItem `json:"tabs,omitempty"`
}

// ListItem is one entry of a List or Tabs node.
type ListItem struct {
	Label  string  `json:"label"`
	Panels []*Node `json:"panels"`
}

// NewWidget creates a widget leaf bound to a property.
func NewWidget(widget WidgetType, property string) *Node {
	return &Node{Kind: NodeWidget, Widget: widget, Property: property}
}

// NewPanel boxes the given nodes in a panel.
func NewPanel(widgets ...*Node) *Node {
	return &Node{Kind: NodePanel, Widgets: widgets}
}

// NewList creates a list whose first item holds panels.
func NewList(panels []*Node) *Node {
	if panels == nil {
		panels = make([]*Node, 0)
	}
	return &Node{
		Kind:  NodeList,
		Items: []*ListItem{{Label: "Item 1", Panels: panels}},
	}
}

// IsWidget returns true for widget nodes.
func (n *Node) IsWidget() bool {
	return n != nil && n.Kind == NodeWidget
}

// Walk traverses the subtree calling fn for each node. Returns early if fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Widgets {
		if !child.Walk(fn) {
			return false
		}
	}
	for _, groups := range [][]*ListItem{n.Items, n.Tabs} {
		for _, item := range groups {
			for _, child := range item.Panels {
				if !child.Walk(fn) {
					return false
				}
			}
		}
	}
	return true
}

// WidgetCount returns the number of widget nodes in the subtree.
func (n *Node) WidgetCount() int {
	count := 0
	n.Walk(func(node *Node) bool {
		if node.IsWidget() {
			count++
		}
		return true
	})
	return count
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Widgets = cloneNodes(n.Widgets)
	c.Items = cloneItems(n.Items)
	c.Tabs = cloneItems(n.Tabs)
	return &c
}

func cloneNodes(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

func cloneItems(items []*ListItem) []*ListItem {
	if items == nil {
		return nil
	}
	out := make([]*ListItem, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		out[i] = &ListItem{Label: item.Label, Panels: cloneNodes(item.Panels)}
	}
	return out
}
