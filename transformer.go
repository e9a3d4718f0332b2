package cssmodules

// TransformContext is passed to a Transformer alongside the raw source.
type TransformContext struct {
	// From is the absolute path of the file being transformed.
	From string
	// Resolve is the Locator's adapted resolver, exposed so a
	// transformer can resolve its own references (e.g. SCSS partials)
	// without reimplementing resolution.
	Resolve func(specifier, requestingFile string) (string, error)
	// IsIgnored reports whether a specifier is a remote URL the
	// transformer should not attempt to follow itself.
	IsIgnored func(specifier string) bool
}

// Transformer is an optional preprocessor stage (SCSS, Less, ...). It
// returns NotHandled to mean "I don't recognize this input", and the
// gateway then behaves as if no transformer were configured at all.
type Transformer func(source string, ctx TransformContext) TransformOutcome

// runTransformer applies the transformer gateway contract: no transformer
// configured, or NotHandled returned, both fall through to the original
// source unchanged; a Handled outcome has its dependency list normalised
// (structured non-file protocols fail the load, remote specifiers are
// filtered) before being returned.
func runTransformer(t Transformer, source string, ctx TransformContext) (css string, srcMap *SourceMap, deps []string, err error) {
	if t == nil {
		return source, nil, nil, nil
	}

	outcome := t(source, ctx)
	switch o := outcome.(type) {
	case NotHandled:
		return source, nil, nil, nil
	case Handled:
		normalized, err := normalizeDependencies(o.Dependencies, ctx.From)
		if err != nil {
			return "", nil, nil, err
		}
		return o.CSS, o.Map, normalized, nil
	default:
		// Unknown/zero-value outcome: treat like NotHandled rather than
		// silently dropping the source.
		return source, nil, nil, nil
	}
}

func normalizeDependencies(deps []Dependency, requestingFile string) ([]string, error) {
	out := make([]string, 0, len(deps))
	for _, d := range deps {
		switch dep := d.(type) {
		case FilePathDependency:
			path := string(dep)
			if isIgnored(path) {
				continue
			}
			out = append(out, path)
		case StructuredDependency:
			if dep.Protocol != "file" {
				return nil, &UnsupportedProtocolError{
					Protocol:       dep.Protocol,
					Pathname:       dep.Pathname,
					RequestingFile: requestingFile,
				}
			}
			if isIgnored(dep.Pathname) {
				continue
			}
			out = append(out, dep.Pathname)
		}
	}
	return out, nil
}
