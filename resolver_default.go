package cssmodules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// stylesheetExtensions are tried, in order, when a specifier has no
// extension of its own.
var stylesheetExtensions = []string{"", ".css", ".scss", ".less"}

// DefaultResolver returns the filesystem Resolver used when a Locator is
// constructed without one: relative/absolute specifiers are resolved
// directly off the requesting file's directory; bare specifiers
// ("bootstrap/dist/css/bootstrap") are looked up node_modules-style by
// walking upward from the requesting file's directory, skipping any
// directory a .gitignore at the walk root excludes.
func DefaultResolver() Resolver {
	return func(specifier string, ctx ResolveContext) (string, bool) {
		if isIgnored(specifier) {
			return "", false
		}
		dir := filepath.Dir(ctx.Request)
		if strings.HasPrefix(specifier, ".") || strings.HasPrefix(specifier, "/") || filepath.IsAbs(specifier) {
			return resolveRelative(dir, specifier)
		}
		return resolveNodeModules(dir, specifier)
	}
}

// resolveRelative resolves a relative or absolute specifier against dir,
// probing stylesheetExtensions when the literal path does not exist.
func resolveRelative(dir, specifier string) (string, bool) {
	base := specifier
	if !filepath.IsAbs(base) {
		base = filepath.Join(dir, specifier)
	}
	return probeExtensions(base)
}

// resolveNodeModules walks upward from dir looking for
// <ancestor>/node_modules/<specifier>[ext], the way Node resolution does,
// skipping candidates that the nearest .gitignore at or above dir (loaded
// once, before the walk) excludes.
func resolveNodeModules(dir, specifier string) (string, bool) {
	gi := loadGitIgnoreNear(dir)

	current := dir
	for {
		candidateDir := filepath.Join(current, "node_modules")
		candidate := filepath.Join(candidateDir, specifier)

		if gi == nil || !gi.MatchesPath(candidate) {
			if resolved, ok := probeExtensions(candidate); ok {
				return resolved, true
			}
			if resolved, ok := probeGlob(candidateDir, specifier); ok {
				return resolved, true
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// probeExtensions returns the first of base, base+".css", base+".scss",
// base+".less" that exists as a regular file.
func probeExtensions(base string) (string, bool) {
	for _, ext := range stylesheetExtensions {
		candidate := base + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// probeGlob falls back to a doublestar match under candidateDir for
// specifiers that name a package directory rather than a file
// ("pkg-name" -> "pkg-name/*.css").
func probeGlob(candidateDir, specifier string) (string, bool) {
	pattern := filepath.Join(candidateDir, specifier, "*.css")
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// loadGitIgnoreNear loads the nearest .gitignore at or above dir, if any.
// Failure to find or parse one is not an error: resolution simply proceeds
// without directory skipping.
func loadGitIgnoreNear(dir string) *ignore.GitIgnore {
	current := dir
	for {
		path := filepath.Join(current, ".gitignore")
		if gi, err := ignore.CompileIgnoreFile(path); err == nil {
			return gi
		}
		parent := filepath.Dir(current)
		if parent == current {
			return nil
		}
		current = parent
	}
}
