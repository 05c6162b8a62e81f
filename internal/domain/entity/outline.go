package entity

// OutlineRow is one line of a tab outline: either a node or a list/tabs
// item header.
type OutlineRow struct {
	Node *Node
	Item *ListItem
	// Container addresses the slice holding the row; Index is its position.
	Container Path
	Index     int
	Depth     int
}

// Selection returns the selection of a node row.
func (r OutlineRow) Selection() Selection {
	return NewSelection(r.Container, r.Index, r.Node)
}

// Outline flattens a tab's panel tree depth-first, in render order.
func (t *Tab) Outline() []OutlineRow {
	if t == nil {
		return nil
	}
	return outlineNodes(nil, nil, t.Panels, 0)
}

func outlineNodes(rows []OutlineRow, base Path, nodes []*Node, depth int) []OutlineRow {
	for i, n := range nodes {
		if n == nil {
			continue
		}
		rows = append(rows, OutlineRow{Node: n, Container: base, Index: i, Depth: depth})
		at := base.Append(Index(i))
		switch n.Kind {
		case NodePanel, NodeWidget:
			rows = outlineNodes(rows, at.Append(Key(KeyWidgets)), n.Widgets, depth+1)
		case NodeList:
			rows = outlineItems(rows, at, KeyItems, n.Items, depth+1)
		case NodeTabs:
			rows = outlineItems(rows, at, KeyTabs, n.Tabs, depth+1)
		}
	}
	return rows
}

func outlineItems(rows []OutlineRow, at Path, key string, items []*ListItem, depth int) []OutlineRow {
	container := at.Append(Key(key))
	for j, item := range items {
		if item == nil {
			continue
		}
		rows = append(rows, OutlineRow{Item: item, Container: container, Index: j, Depth: depth})
		rows = outlineNodes(rows, container.Append(Index(j), Key(KeyPanels)), item.Panels, depth+1)
	}
	return rows
}
