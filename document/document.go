// Package document adapts raw and decoded payloads for path resolution.
//
// Event payloads in Go services often arrive as JSON or YAML rather than
// as typed object graphs. The Node views returned by JSON, YAML, and Tree
// implement the objpath capability interfaces, so a dotted path resolves
// over a payload's keys and arrays exactly as it would over getters and
// slices:
//
//	node, err := document.JSON(body)
//	if err != nil { ... }
//	title := objpath.Resolve(node, "items[0].title")
//
// Member names match keys byte for byte; no query syntax applies.
package document

import (
	"errors"
	"fmt"

	"github.com/go-objpath/objpath"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON indicates data that is not well-formed JSON.
	ErrInvalidJSON = errors.New("document: invalid JSON")

	// ErrInvalidYAML indicates data that is not well-formed YAML.
	ErrInvalidYAML = errors.New("document: invalid YAML")
)

// Node is a resolvable view over one level of a document. Member and
// element hops return native Go values for scalars and further Nodes for
// containers, so paths keep resolving without the caller unwrapping
// anything in between.
type Node interface {
	objpath.MemberAccessor
	objpath.Sequence

	// Value returns the node's underlying Go value, materializing
	// containers into map[string]any / []any trees.
	Value() any
}

// JSON returns a Node over raw JSON without decoding it up front; member
// and index hops scan the underlying bytes on demand.
func JSON(data []byte) (Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	return jsonNode{result: gjson.ParseBytes(data)}, nil
}

// YAML decodes data and returns a Node over the resulting tree.
func YAML(data []byte) (Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return treeNode{value: v}, nil
}

// Tree returns a Node over an already-decoded tree of map[string]any and
// []any values, as produced by encoding/json or YAML decoders.
func Tree(v any) Node {
	return treeNode{value: v}
}

// Value unwraps v when it is a Node, so callers can compare or serialize
// a resolution result without caring whether the path ended on a
// container. Everything else passes through unchanged.
func Value(v any) any {
	if n, ok := v.(Node); ok {
		return n.Value()
	}

	return v
}
