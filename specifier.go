package cssmodules

import "strings"

// isIgnored reports whether a specifier names a remote resource (http:// or
// https://) that the Locator never attempts to resolve or read. Applied
// uniformly before any resolution attempt: @import targets, @value import
// sources, and dependencies reported by a Transformer.
func isIgnored(specifier string) bool {
	return strings.HasPrefix(specifier, "http://") || strings.HasPrefix(specifier, "https://")
}
