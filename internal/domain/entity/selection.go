package entity

import (
	"fmt"
	"strconv"
	"strings"
)

const nullProperty = "null"

// Selection addresses a placed item: container path, index and the
// item's primary property key (empty when the item has none).
type Selection struct {
	Path     Path
	Index    int
	Property string
}

// NewSelection builds the selection of node placed at path/index.
func NewSelection(path Path, index int, node *Node) Selection {
	sel := Selection{Path: path, Index: index}
	if node != nil {
		sel.Property = node.Property
	}
	return sel
}

func (s Selection) String() string {
	prop := s.Property
	if prop == "" {
		prop = nullProperty
	}
	return fmt.Sprintf("%s_%d_%s", s.Path.String(), s.Index, prop)
}

// ParseSelection parses the path_index_property form.
func ParseSelection(s string) (Selection, error) {
	parts := strings.SplitN(s, "_", 3)
	if len(parts) < 2 {
		return Selection{}, fmt.Errorf("invalid selection %q", s)
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return Selection{}, fmt.Errorf("invalid selection index %q: %w", parts[1], err)
	}
	sel := Selection{Path: ParsePath(parts[0]), Index: index}
	if len(parts) == 3 && parts[2] != nullProperty {
		sel.Property = parts[2]
	}
	return sel, nil
}
