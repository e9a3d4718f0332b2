package cssmodules

// ResolveContext is the second argument passed to a Resolver.
type ResolveContext struct {
	// Request is the absolute path of the file that referenced the
	// specifier being resolved.
	Request string
}

// Resolver maps a specifier, relative to the file that referenced it, to
// an absolute filesystem path. It returns ok=false when the specifier
// cannot be resolved; the Locator turns that into a ResolutionError
// naming both the specifier and the requesting file.
//
// A Resolver is pure with respect to the Locator: any side effects belong
// to its implementation, not to the Locator's contract.
type Resolver func(specifier string, ctx ResolveContext) (path string, ok bool)

// adaptResolver wraps a user Resolver into a strict form that returns a
// ResolutionError instead of a boolean false.
func adaptResolver(r Resolver) func(specifier, requestingFile string) (string, error) {
	return func(specifier, requestingFile string) (string, error) {
		path, ok := r(specifier, ResolveContext{Request: requestingFile})
		if !ok {
			return "", &ResolutionError{Specifier: specifier, RequestingFile: requestingFile}
		}
		return path, nil
	}
}
