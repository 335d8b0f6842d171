package document

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/go-objpath/objpath"
	"github.com/theory/jsonpath"
)

var storePayload = []byte(`{
  "store": {
    "name": "corner",
    "books": [
      {"title": "Sword of Honour", "price": 12.99, "tags": ["fiction", "war"]},
      {"title": "Moby Dick", "price": 8.99, "tags": ["fiction", "sea"]}
    ]
  }
}`)

// Dotted paths cover a subset of JSONPath: singular name and index
// segments. Over that subset both engines must select the same values.
func TestResolutionMatchesJSONPath(t *testing.T) {
	t.Parallel()

	var data any
	if err := json.Unmarshal(storePayload, &data); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	fromJSON, err := JSON(storePayload)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	tests := []struct {
		name  string
		path  string
		query string
	}{
		{name: "top-level member", path: "store.name", query: "$.store.name"},
		{name: "array element member", path: "store.books[1].title", query: "$.store.books[1].title"},
		{name: "nested array scalar", path: "store.books[0].tags[1]", query: "$.store.books[0].tags[1]"},
		{name: "numeric member", path: "store.books[1].price", query: "$.store.books[1].price"},
		{name: "whole element", path: "store.books[0]", query: "$.store.books[0]"},
		{name: "whole array", path: "store.books", query: "$.store.books"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := jsonpath.Parse(tt.query)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.query, err)
			}

			selected := p.Select(data)
			if len(selected) != 1 {
				t.Fatalf("Select(%q) returned %d nodes, want 1", tt.query, len(selected))
			}

			for view, root := range map[string]any{"json": fromJSON, "tree": Tree(data)} {
				got, ok := objpath.Lookup(root, tt.path)
				if !ok {
					t.Fatalf("%s: Lookup(%q) reported a miss", view, tt.path)
				}
				if !reflect.DeepEqual(Value(got), selected[0]) {
					t.Fatalf("%s: Lookup(%q) = %#v, want %#v", view, tt.path, Value(got), selected[0])
				}
			}
		})
	}
}

func TestMissesMatchEmptySelections(t *testing.T) {
	t.Parallel()

	var data any
	if err := json.Unmarshal(storePayload, &data); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	fromJSON, err := JSON(storePayload)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	tests := []struct {
		name  string
		path  string
		query string
	}{
		{name: "absent member", path: "store.missing", query: "$.store.missing"},
		{name: "index out of range", path: "store.books[9]", query: "$.store.books[9]"},
		{name: "member of a scalar", path: "store.name.title", query: "$.store.name.title"},
		{name: "index into an object", path: "store[0]", query: "$.store[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := jsonpath.Parse(tt.query)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.query, err)
			}

			if selected := p.Select(data); len(selected) != 0 {
				t.Fatalf("Select(%q) returned %d nodes, want none", tt.query, len(selected))
			}

			for view, root := range map[string]any{"json": fromJSON, "tree": Tree(data)} {
				if v, ok := objpath.Lookup(root, tt.path); ok || v != nil {
					t.Fatalf("%s: Lookup(%q) = (%v, %t), want (nil, false)", view, tt.path, v, ok)
				}
			}
		})
	}
}
