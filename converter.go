package objpath

// Converter adapts path resolution to two-argument value-conversion
// boundaries, where the inbound value is the object graph and the
// conversion parameter carries the path expression. Data-binding layers
// and template engines call through such hooks without knowing about
// resolvers.
//
// The zero value is ready to use and resolves through the process-wide
// resolver.
type Converter struct {
	// Resolver, when non-nil, handles resolution instead of the
	// process-wide resolver.
	Resolver *Resolver
}

// Convert resolves the path carried in parameter against value. A nil
// value or a parameter that is not a string yields nil without attempting
// resolution, as does any miss during resolution itself.
func (c Converter) Convert(value any, parameter any) any {
	if isNil(value) {
		return nil
	}

	path, ok := parameter.(string)
	if !ok {
		return nil
	}

	if c.Resolver != nil {
		return c.Resolver.Resolve(value, path)
	}

	return Resolve(value, path)
}

// ConvertBack always returns ErrNotSupported. Resolution is one-way, and a
// conversion boundary asking for the reverse direction is misconfigured;
// the failure is loud so the misuse surfaces during development.
func (c Converter) ConvertBack(value any, parameter any) (any, error) {
	return nil, ErrNotSupported
}
