package objpath

import (
	"errors"
	"fmt"
	"testing"
)

func TestConverterConvert(t *testing.T) {
	t.Parallel()

	root := newTestRoot()

	tests := []struct {
		name      string
		value     any
		parameter any
		want      any
	}{
		{name: "resolves path parameter", value: root, parameter: "Child.Name", want: "First Child"},
		{name: "resolves indexed path", value: root, parameter: "ItemArray[0].Title", want: "Item Zero"},
		{name: "nil value", value: nil, parameter: "Title", want: nil},
		{name: "typed nil value", value: (*testRoot)(nil), parameter: "Title", want: nil},
		{name: "non-string parameter", value: root, parameter: 42, want: nil},
		{name: "nil parameter", value: root, parameter: nil, want: nil},
		{name: "miss collapses to nil", value: root, parameter: "Nope", want: nil},
		{name: "nil hop collapses to nil", value: &testRoot{}, parameter: "Child.Name", want: nil},
	}

	var c Converter
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := c.Convert(tt.value, tt.parameter); got != tt.want {
				t.Fatalf("Convert(%v, %v) = %v, want %v", tt.value, tt.parameter, got, tt.want)
			}
		})
	}
}

func TestConverterUsesOwnResolver(t *testing.T) {
	t.Parallel()

	r := New()
	c := Converter{Resolver: r}
	root := newTestRoot()

	if got := c.Convert(root, "Title"); got != "Test Root" {
		t.Fatalf("Convert() = %v, want %q", got, "Test Root")
	}
	if stats := r.CacheStats(); stats.Entries != 1 {
		t.Fatalf("CacheStats().Entries = %d, want 1", stats.Entries)
	}
}

func TestConvertBackNotSupported(t *testing.T) {
	t.Parallel()

	var c Converter

	v, err := c.ConvertBack("anything", "Title")
	if v != nil {
		t.Fatalf("ConvertBack() value = %v, want nil", v)
	}
	if !errors.Is(err, ErrNotSupported) {
		t.Fatalf("ConvertBack() error = %v, want ErrNotSupported", err)
	}

	wrapped := fmt.Errorf("binding update: %w", err)
	if !errors.Is(wrapped, ErrNotSupported) {
		t.Fatalf("wrapped error %v should match ErrNotSupported", wrapped)
	}
}
