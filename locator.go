package cssmodules

import (
	"os"
	"strings"
)

// Options configures a Locator. Either field left nil falls back to the
// bundled default.
type Options struct {
	// Transformer preprocesses a stylesheet before it is parsed. Defaults
	// to DefaultTransformer when nil.
	Transformer Transformer
	// Resolver maps specifiers to absolute paths. Defaults to
	// DefaultResolver when nil.
	Resolver Resolver
}

// Locator discovers and memoizes the externally visible tokens of CSS
// Modules stylesheets. A Locator is not safe for concurrent use: a second
// Load issued while one is already in flight on the same Locator fails
// with ConcurrentLoadError rather than racing its cache.
type Locator struct {
	resolver    Resolver
	transformer Transformer
	cache       *cache
	statFn      func(string) (int64, error)
	readFn      func(string) ([]byte, error)
	inFlight    bool
}

// New builds a Locator. A zero Options value is valid and selects both
// defaults.
func New(opts Options) *Locator {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = DefaultResolver()
	}
	transformer := opts.Transformer
	if transformer == nil {
		transformer = DefaultTransformer()
	}

	return &Locator{
		resolver:    resolver,
		transformer: transformer,
		cache:       newCache(),
		statFn:      statMTimeMS,
		readFn:      os.ReadFile,
		inFlight:    false,
	}
}

func statMTimeMS(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.ModTime().UnixMilli(), nil
}

// Load discovers the tokens exposed by the stylesheet at filePath,
// tracing @import and @value ... from references transitively. Results
// are cached and reused across calls as long as the file and everything
// it transitively depends on remain unchanged on disk.
func (l *Locator) Load(filePath string) (LoadResult, error) {
	if l.inFlight {
		return LoadResult{}, &ConcurrentLoadError{}
	}
	l.inFlight = true
	defer func() { l.inFlight = false }()

	return l.load(filePath)
}

// load implements the Load engine's recursive procedure. It is called
// both for the top-level request and for every transitive @import/@value
// import, but never touches l.inFlight itself; that guard exists only
// at the Load boundary.
func (l *Locator) load(filePath string) (_ LoadResult, err error) {
	mtime, err := l.statFn(filePath)
	if err != nil {
		return LoadResult{}, &IOError{FilePath: filePath, Op: "stat", Err: err}
	}

	if !l.cache.isStale(filePath, l.statFn) {
		entry, _ := l.cache.get(filePath)
		return entry.result, nil
	}

	// Insert a sentinel before recursing so a cycle back to filePath sees
	// an (empty but present) entry at the current mtime instead of
	// recursing forever.
	l.cache.set(filePath, mtime, LoadResult{})
	// A failed load drops its sentinel, so a later Load of the unchanged
	// file reports the error again instead of the empty placeholder.
	defer func() {
		if err != nil {
			delete(l.cache.entries, filePath)
		}
	}()

	raw, err := l.readFn(filePath)
	if err != nil {
		return LoadResult{}, &IOError{FilePath: filePath, Op: "read", Err: err}
	}

	ctx := TransformContext{
		From:      filePath,
		Resolve:   l.resolveAdapted,
		IsIgnored: isIgnored,
	}
	css, srcMap, transformDeps, err := runTransformer(l.transformer, string(raw), ctx)
	if err != nil {
		return LoadResult{}, err
	}

	doc, err := parseCSS(css, filePath, srcMap)
	if err != nil {
		return LoadResult{}, err
	}

	localNames := enumerateLocalTokens(doc.classSelectors)

	var deps []string
	seenDep := make(map[string]bool)
	appendDep := func(path string) {
		if path == filePath || seenDep[path] {
			return
		}
		seenDep[path] = true
		deps = append(deps, path)
	}
	for _, d := range transformDeps {
		appendDep(d)
	}

	var tokens []Token

	for _, imp := range doc.imports {
		spec, ok := extractImportSpecifier(imp.Raw)
		if !ok || isIgnored(spec) {
			continue
		}
		resolved, err := l.resolveAdapted(spec, filePath)
		if err != nil {
			return LoadResult{}, err
		}
		childResult, err := l.load(resolved)
		if err != nil {
			return LoadResult{}, err
		}
		appendDep(resolved)
		for _, d := range childResult.Dependencies {
			appendDep(d)
		}
		tokens = append(tokens, childResult.Tokens...)
	}

	for _, occ := range doc.classSelectors {
		if _, ok := localNames[occ.Name]; ok {
			tokens = append(tokens, Token{Name: occ.Name, OriginalLocation: occ.Loc})
		}
	}

	for _, node := range doc.values {
		switch v := node.(type) {
		case ValueDeclaration:
			tokens = append(tokens, Token{Name: v.TokenName, OriginalLocation: v.Loc})

		case ValueImportDeclaration:
			if isIgnored(v.From) {
				continue
			}
			resolved, err := l.resolveAdapted(v.From, filePath)
			if err != nil {
				return LoadResult{}, err
			}
			childResult, err := l.load(resolved)
			if err != nil {
				return LoadResult{}, err
			}
			appendDep(resolved)
			for _, d := range childResult.Dependencies {
				appendDep(d)
			}

			childByName := make(map[string]Token, len(childResult.Tokens))
			for _, t := range childResult.Tokens {
				if _, ok := childByName[t.Name]; !ok {
					childByName[t.Name] = t
				}
			}
			for _, spec := range v.Imports {
				srcTok, ok := childByName[spec.Imported]
				if !ok {
					continue
				}
				imported := ""
				if spec.Local != spec.Imported {
					imported = spec.Imported
				}
				tokens = append(tokens, Token{
					Name:             spec.Local,
					ImportedName:     imported,
					OriginalLocation: srcTok.OriginalLocation,
				})
			}
		}
	}

	result := LoadResult{
		Dependencies: deps,
		Tokens:       dedupTokens(tokens),
	}
	l.cache.set(filePath, mtime, result)
	return result, nil
}

func (l *Locator) resolveAdapted(specifier, requestingFile string) (string, error) {
	return adaptResolver(l.resolver)(specifier, requestingFile)
}

// extractImportSpecifier pulls the quoted or url(...)-wrapped target out
// of an @import at-rule's raw argument. It returns ok=false on anything
// it cannot make sense of, per the edge case of skipping @import targets
// that fail to parse rather than failing the whole load.
func extractImportSpecifier(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if strings.HasPrefix(strings.ToLower(s), "url(") {
		end := strings.IndexByte(s, ')')
		if end == -1 {
			return "", false
		}
		s = strings.TrimSpace(s[len("url(") : end])
	} else if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	}

	s = strings.Trim(s, `"'`)
	if s == "" {
		return "", false
	}
	return s, true
}

// dedupTokens removes exact duplicate Token values while preserving
// first-seen order.
func dedupTokens(tokens []Token) []Token {
	seen := make(map[Token]struct{}, len(tokens))
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
