// Package cssmodules discovers the externally visible tokens of a CSS
// Modules stylesheet (class selectors and @value bindings), tracing
// @import and @value ... from references transitively so a downstream
// tool can emit a typed mapping for them.
//
// # Locator
//
// The Locator is the entry point. Given a root stylesheet path it resolves
// and parses the file, applies an optional preprocessor transform, extracts
// the locally defined tokens, recurses into every reachable @import and
// @value import, and memoises the result under a mtime-based invalidation
// policy:
//
//	loc := cssmodules.New(cssmodules.Options{})
//	result, err := loc.Load("/abs/path/to/button.module.css")
//
// Generating the .d.ts text, writing files, and watching for changes are
// concerns of callers (see package dts and cmd/cssmodules), not of the
// Locator itself.
//
// # Transformer and Resolver
//
// Locator accepts a Transformer to run a preprocessor (SCSS, Less, ...)
// ahead of parsing and a Resolver to turn @import/@value specifiers into
// absolute paths. Both default to the built-in implementations
// (DefaultTransformer, DefaultResolver) when omitted from Options.
package cssmodules
