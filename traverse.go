package objpath

import (
	"reflect"

	"github.com/go-objpath/objpath/internal/token"
)

// walk applies tokens in order starting from root. The first structural
// miss (unknown member, non-sequence under an indexer, index out of range)
// reports found=false and abandons the remaining tokens. A hop that yields
// nil stops the walk with found=true: null propagates, the unreached
// tokens are irrelevant.
func walk(root any, tokens []token.Token) (any, bool) {
	current := root

	for _, tok := range tokens {
		if isNil(current) {
			return nil, true
		}

		if tok.Name != "" {
			v, ok := member(current, tok.Name)
			if !ok {
				return nil, false
			}
			current = v
		}

		if tok.HasIndex && !isNil(current) {
			v, ok := elem(current, tok.Index)
			if !ok {
				return nil, false
			}
			current = v
		}
	}

	if isNil(current) {
		return nil, true
	}

	return current, true
}

// member looks up name on v: the MemberAccessor capability if implemented,
// otherwise an exported method with no parameters and exactly one result.
// Struct fields are never read; a type shares exactly what its method set
// exports.
func member(v any, name string) (any, bool) {
	if a, ok := v.(MemberAccessor); ok {
		return a.Member(name)
	}

	m := reflect.ValueOf(v).MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	if t := m.Type(); t.NumIn() != 0 || t.NumOut() != 1 {
		return nil, false
	}

	return m.Call(nil)[0].Interface(), true
}

// elem indexes into v: the Sequence capability if implemented, otherwise
// slices and arrays through reflection. Strings and maps are not indexable.
func elem(v any, index int) (any, bool) {
	if s, ok := v.(Sequence); ok {
		if index < 0 || index >= s.Len() {
			return nil, false
		}
		return s.At(index), true
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false
	}
	if index < 0 || index >= rv.Len() {
		return nil, false
	}

	return rv.Index(index).Interface(), true
}

// isNil reports whether v is nil, including typed nils carried in a
// non-nil interface, so that a getter returning a nil pointer propagates
// the same way an untyped nil does.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}

	return false
}
