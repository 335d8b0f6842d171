package document

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// jsonNode is a lazy view over a gjson result. Hops scan the raw bytes;
// nothing decodes until a hop reaches a scalar or Value materializes a
// container.
type jsonNode struct {
	result gjson.Result
}

// Member scans object keys for a byte-for-byte match. gjson's query
// syntax is bypassed on purpose: keys containing dots, brackets, or
// wildcards stay plain names.
func (n jsonNode) Member(name string) (any, bool) {
	if !n.result.IsObject() {
		return nil, false
	}

	var match gjson.Result
	found := false
	n.result.ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			match = value
			found = true
			return false
		}
		return true
	})
	if !found {
		return nil, false
	}

	return wrapJSON(match), true
}

// Len reports the element count for arrays and zero for everything else.
func (n jsonNode) Len() int {
	if !n.result.IsArray() {
		return 0
	}

	return int(n.result.Get("#").Int())
}

// At returns the i-th array element. Indexes outside [0, Len()) and
// non-array nodes yield nil.
func (n jsonNode) At(i int) any {
	if !n.result.IsArray() || i < 0 || i >= n.Len() {
		return nil
	}

	return wrapJSON(n.result.Get(strconv.Itoa(i)))
}

// Value materializes the node: scalars as native Go values, containers as
// map[string]any / []any trees.
func (n jsonNode) Value() any {
	return n.result.Value()
}

// wrapJSON keeps containers resolvable and hands scalars back natively.
// JSON null becomes untyped nil, so a null member propagates through the
// rest of a path the same way a nil getter result does.
func wrapJSON(r gjson.Result) any {
	if r.IsObject() || r.IsArray() {
		return jsonNode{result: r}
	}

	return r.Value()
}
