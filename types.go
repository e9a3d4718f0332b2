package cssmodules

// Location is a point in an original (pre-transform) source file.
//
// Line is 1-based, Column is 0-based. When a transformer supplies a source
// map, positions are looked up through it; otherwise they are taken
// directly from the transformed file, so FilePath may name either the
// original or the transformed sheet depending on whether a map was
// available.
type Location struct {
	FilePath string
	Line     int
	Column   int
}

// Token is an identifier exposed by a stylesheet to its consumers: a local
// class name or an @value binding.
//
// ImportedName is set only when this token is re-exported under an alias
// that differs from the name it was declared under in the defining sheet
// (@value alias from "./src.css" where alias != the source name). It is
// the empty string otherwise.
//
// OriginalLocation is always the definition site in the sheet that
// declared the token, never the location of the importing reference.
type Token struct {
	Name             string
	ImportedName     string
	OriginalLocation Location
}

// LoadResult is what Locator.Load returns for a single stylesheet.
type LoadResult struct {
	// Dependencies is the de-duplicated set of absolute paths this sheet
	// transitively depends on, excluding the sheet itself, in first-seen
	// order.
	Dependencies []string
	// Tokens is de-duplicated by structural equality over the full
	// record (Name + ImportedName + OriginalLocation), in first-seen
	// order.
	Tokens []Token
}

// cacheEntry is the cache's record for one absolute file path.
type cacheEntry struct {
	mtimeMS int64
	result  LoadResult
}
