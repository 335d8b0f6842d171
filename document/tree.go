package document

// treeNode wraps one level of a decoded tree. Only map[string]any levels
// have members and only []any levels have elements, matching what
// encoding/json and YAML decoders produce for untyped targets.
type treeNode struct {
	value any
}

func (n treeNode) Member(name string) (any, bool) {
	m, ok := n.value.(map[string]any)
	if !ok {
		return nil, false
	}

	v, ok := m[name]
	if !ok {
		return nil, false
	}

	return wrapTree(v), true
}

func (n treeNode) Len() int {
	s, ok := n.value.([]any)
	if !ok {
		return 0
	}

	return len(s)
}

func (n treeNode) At(i int) any {
	s, ok := n.value.([]any)
	if !ok || i < 0 || i >= len(s) {
		return nil
	}

	return wrapTree(s[i])
}

func (n treeNode) Value() any {
	return n.value
}

func wrapTree(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		return treeNode{value: v}
	default:
		return v
	}
}
