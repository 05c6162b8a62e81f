package entity

// ClampIndex clamps i to [0, length].
func ClampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

func insertAt[T any](s []T, i int, items ...T) []T {
	i = ClampIndex(i, len(s))
	out := make([]T, 0, len(s)+len(items))
	out = append(out, s[:i]...)
	out = append(out, items...)
	return append(out, s[i:]...)
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// InsertNodes inserts nodes into the container at a clamped index.
func InsertNodes(container *[]*Node, index int, nodes ...*Node) int {
	index = ClampIndex(index, len(*container))
	*container = insertAt(*container, index, nodes...)
	return index
}

// RemoveNode detaches the node at index from the container.
func RemoveNode(container *[]*Node, index int) (*Node, error) {
	if index < 0 || index >= len(*container) {
		return nil, ErrIndexOutOfRange
	}
	n := (*container)[index]
	*container = removeAt(*container, index)
	return n, nil
}

// ReorderItems moves the item at from to the clamped index to.
func ReorderItems(items *[]*ListItem, from, to int) error {
	if from < 0 || from >= len(*items) {
		return ErrIndexOutOfRange
	}
	item := (*items)[from]
	*items = removeAt(*items, from)
	*items = insertAt(*items, to, item)
	return nil
}
