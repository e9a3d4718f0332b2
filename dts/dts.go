// Package dts formats a cssmodules.LoadResult into a TypeScript
// declaration file describing the module's exported tokens. It has no
// knowledge of CSS, preprocessors, or the filesystem; it only consumes
// the Locator's public result type, matching the locator/formatter split
// this repository draws between discovery and the outer tooling built on
// top of it.
package dts

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/yacobolo/cssmodules"
)

// Options controls the shape of the generated declaration.
type Options struct {
	// NamedExports emits one `export declare const <camelName>: string;` per
	// token instead of the default single default-export interface.
	NamedExports bool
}

// Format renders the TypeScript declaration for result's tokens.
// Token names are taken verbatim for the default-export interface (they
// are valid CSS Modules property keys quoted as string literals); named
// exports use a camelCase identifier derived from the token name, the
// way the bundled SCSS/Less backend's source already favors kebab-case
// class names.
func Format(result cssmodules.LoadResult, opts Options) string {
	names := tokenNames(result)

	var sb strings.Builder
	sb.WriteString("// Code generated by cssmodules; DO NOT EDIT.\n\n")

	if opts.NamedExports {
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("export declare const %s: string;\n", toCamelCase(name)))
		}
		return sb.String()
	}

	sb.WriteString("declare const styles: {\n")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  readonly %q: string;\n", name))
	}
	sb.WriteString("};\n\nexport default styles;\n")
	return sb.String()
}

// tokenNames returns the de-duplicated, sorted set of token names in
// result. Sorting makes the generated file's diff stable across runs
// regardless of the order tokens were discovered in.
func tokenNames(result cssmodules.LoadResult) []string {
	seen := make(map[string]struct{}, len(result.Tokens))
	names := make([]string, 0, len(result.Tokens))
	for _, tok := range result.Tokens {
		if _, ok := seen[tok.Name]; ok {
			continue
		}
		seen[tok.Name] = struct{}{}
		names = append(names, tok.Name)
	}
	sort.Strings(names)
	return names
}

// toCamelCase converts a kebab-case or snake_case class name into a
// camelCase TypeScript identifier.
func toCamelCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return name
	}
	for i, part := range parts {
		if i == 0 || len(part) == 0 {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, "")
}
