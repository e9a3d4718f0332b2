package cssmodules

// enumerateLocalTokens builds the set of class names that are locally
// scoped somewhere in the document. A name that appears both inside and
// outside :global(...) is still treated as local; resolving that
// ambiguity precisely would require tracking it per-occurrence instead
// of per-name, which the Load engine does not do (see design notes).
func enumerateLocalTokens(selectors []classSelectorOccurrence) map[string]struct{} {
	names := make(map[string]struct{}, len(selectors))
	for _, occ := range selectors {
		if !occ.Global {
			names[occ.Name] = struct{}{}
		}
	}
	return names
}
