package cssmodules

import "fmt"

// SyntaxError is a CSS/preprocessor parse failure. It carries the file and
// position of the failure and is propagated verbatim; a single syntax
// error aborts the entire load, and partial results are never returned.
type SyntaxError struct {
	FilePath string
	Line     int
	Column   int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error: %s", e.FilePath, e.Line, e.Column, e.Msg)
}

// ResolutionError means the configured Resolver reported "not found" for a
// specifier. It names both the specifier and the file that referenced it.
type ResolutionError struct {
	Specifier      string
	RequestingFile string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: cannot resolve %q", e.RequestingFile, e.Specifier)
}

// UnsupportedProtocolError means a Transformer reported a structured
// dependency whose protocol is not "file".
type UnsupportedProtocolError struct {
	Protocol       string
	Pathname       string
	RequestingFile string
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("%s: unsupported dependency protocol %q (%s)", e.RequestingFile, e.Protocol, e.Pathname)
}

// ConcurrentLoadError means a second top-level Load was issued on a
// Locator while one was already in flight.
type ConcurrentLoadError struct{}

func (e *ConcurrentLoadError) Error() string {
	return "cssmodules: a load is already in flight on this Locator"
}

// IOError wraps a stat/read failure encountered while loading a file.
type IOError struct {
	FilePath string
	Op       string // "stat" or "read"
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.FilePath, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
