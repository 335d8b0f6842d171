package objpath

// defaultResolver backs the package-level functions. Its cache is shared
// process-wide and never evicts, which fits paths authored in markup or
// configuration: few, static, and reused for the process lifetime.
var defaultResolver = New()

// Lookup resolves path against root using the process-wide resolver.
// See Resolver.Lookup for the contract.
func Lookup(root any, path string) (any, bool) {
	return defaultResolver.Lookup(root, path)
}

// Resolve resolves path against root using the process-wide resolver,
// collapsing misses and nil results to nil. See Resolver.Resolve.
func Resolve(root any, path string) any {
	return defaultResolver.Resolve(root, path)
}
