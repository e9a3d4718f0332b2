package cssmodules

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// importAtRule is a collected @import, with its raw (unparsed) argument.
// Specifier extraction from the raw argument happens in the Load engine,
// not here; the collector only reports what it saw.
type importAtRule struct {
	Raw string
	Loc Location
}

// classSelectorOccurrence is one class selector appearance in the AST,
// paired with its position and whether it was scoped by :global(...) /
// bare :global.
type classSelectorOccurrence struct {
	Name   string
	Loc    Location
	Global bool
}

// cssDocument is the output of parseCSS: the three node streams a parsed
// stylesheet exposes.
type cssDocument struct {
	imports        []importAtRule
	values         []AtValueNode
	classSelectors []classSelectorOccurrence
}

// posTracker advances a 1-based line / 0-based column cursor across raw
// lexer token text, so every token's start position can be recovered
// without the lexer itself reporting offsets.
type posTracker struct {
	line int
	col  int
}

func newPosTracker() *posTracker {
	return &posTracker{line: 1, col: 0}
}

func (p *posTracker) advance(text []byte) {
	for _, b := range text {
		if b == '\n' {
			p.line++
			p.col = 0
		} else {
			p.col++
		}
	}
}

// tok is one lexer token plus the position it started at.
type tok struct {
	tt   css.TokenType
	text []byte
	line int
	col  int
}

func nextTok(lexer *css.Lexer, tracker *posTracker) tok {
	line, col := tracker.line, tracker.col
	tt, text := lexer.Next()
	tracker.advance(text)
	return tok{tt: tt, text: text, line: line, col: col}
}

// parseCSS parses transformed CSS source, source-map aware: when m is
// non-nil, every reported Location is translated through it back to the
// original file; otherwise positions name `from` directly.
func parseCSS(source, from string, m *SourceMap) (*cssDocument, error) {
	doc := &cssDocument{}
	tracker := newPosTracker()
	resolveLoc := buildPositionMapper(from, m)
	lexer := css.NewLexer(parse.NewInputString(source))

	if err := scanRules(lexer, tracker, resolveLoc, doc, false); err != nil {
		return nil, err
	}
	return doc, nil
}

// scanRules is the top-level rule dispatcher, also used recursively for
// the body of an at-rule block (@media, @supports, @keyframes, ...):
// @import and @value at-rules are collected directly; any other at-rule
// has its prelude skipped and, if it wraps a block, its body recursed
// into so selectors nested inside remain visible; everything else is
// treated as the start of a selector list. When nested is true, scanRules
// returns as soon as it consumes the RightBraceToken closing its block.
func scanRules(lexer *css.Lexer, tracker *posTracker, resolveLoc positionMapper, doc *cssDocument, nested bool) error {
	for {
		t := nextTok(lexer, tracker)
		if t.tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				loc := resolveLoc(t.line, t.col)
				return &SyntaxError{FilePath: loc.FilePath, Line: loc.Line, Column: loc.Column, Msg: err.Error()}
			}
			return nil
		}
		if t.tt == css.WhitespaceToken || t.tt == css.CommentToken {
			continue
		}
		if nested && t.tt == css.RightBraceToken {
			return nil
		}

		if t.tt == css.AtKeywordToken {
			switch string(t.text) {
			case "@import":
				raw := collectRawUntilSemicolon(lexer, tracker)
				doc.imports = append(doc.imports, importAtRule{Raw: raw, Loc: resolveLoc(t.line, t.col)})
			case "@value":
				raw := collectRawUntilSemicolon(lexer, tracker)
				node, err := parseAtValueRaw(raw, resolveLoc(t.line, t.col))
				if err != nil {
					loc := resolveLoc(t.line, t.col)
					return &SyntaxError{FilePath: loc.FilePath, Line: loc.Line, Column: loc.Column, Msg: err.Error()}
				}
				doc.values = append(doc.values, node)
			default:
				if err := skipAtRulePrelude(lexer, tracker, doc, resolveLoc); err != nil {
					return err
				}
			}
			continue
		}

		occs := scanSelectorList(lexer, tracker, resolveLoc, t)
		doc.classSelectors = append(doc.classSelectors, occs...)
	}
}

// skipAtRulePrelude consumes an unrecognized at-rule's prelude (e.g. the
// "screen" of "@media screen"). A prelude ending in ';' is a
// statement-only at-rule (@charset, @namespace, ...) with nothing
// further to do; one ending in '{' wraps a block whose body is recursed
// into via scanRules so nested class selectors are still found.
func skipAtRulePrelude(lexer *css.Lexer, tracker *posTracker, doc *cssDocument, resolveLoc positionMapper) error {
	for {
		t := nextTok(lexer, tracker)
		switch t.tt {
		case css.ErrorToken:
			return nil
		case css.SemicolonToken:
			return nil
		case css.LeftBraceToken:
			return scanRules(lexer, tracker, resolveLoc, doc, true)
		}
	}
}

// collectRawUntilSemicolon concatenates token text from the current
// position up to (but not including) the terminating ';', used to grab
// an at-rule's raw argument for the @import/@value node shapes.
func collectRawUntilSemicolon(lexer *css.Lexer, tracker *posTracker) string {
	var sb strings.Builder
	for {
		t := nextTok(lexer, tracker)
		if t.tt == css.ErrorToken || t.tt == css.SemicolonToken {
			break
		}
		if t.tt == css.LeftBraceToken {
			// Malformed at-rule (missing ';'); stop rather than consume
			// an unrelated rule's body.
			break
		}
		sb.Write(t.text)
	}
	return sb.String()
}

// scanSelectorList walks a selector prelude, starting at first (already
// read by the caller) through the opening '{' of its declaration block,
// returning every class selector it contains along with whether :global
// scoping applies to it. The declaration block itself is skipped
// unread; the Locator has no use for property values.
func scanSelectorList(lexer *css.Lexer, tracker *posTracker, resolveLoc positionMapper, first tok) []classSelectorOccurrence {
	var occs []classSelectorOccurrence
	mode := false // ambient :global/:local mode for the selector currently being scanned
	pendingKeyword := ""

	emit := func(name string, line, col int, global bool) {
		occs = append(occs, classSelectorOccurrence{Name: name, Loc: resolveLoc(line, col), Global: global})
	}

	t := first
	for {
		if t.tt == css.ErrorToken {
			return occs
		}

		if pendingKeyword != "" {
			kw := pendingKeyword
			pendingKeyword = ""
			if t.tt == css.LeftParenthesisToken {
				scanGlobalLocalFunction(lexer, tracker, kw == "global", emit)
				t = nextTok(lexer, tracker)
				continue
			}
			// Bare :global / :local keyword (no parens): sets the
			// ambient mode for the rest of this selector, then falls
			// through to process t normally below.
			mode = kw == "global"
		}

		switch t.tt {
		case css.LeftBraceToken:
			skipBlock(lexer, tracker)
			return occs

		case css.CommaToken:
			mode = false

		case css.DelimToken:
			if len(t.text) > 0 && t.text[0] == '.' {
				nt := nextTok(lexer, tracker)
				if nt.tt == css.IdentToken {
					emit(string(nt.text), t.line, t.col, mode)
				}
				t = nextTok(lexer, tracker)
				continue
			}

		case css.ColonToken:
			nt := nextTok(lexer, tracker)
			// The lexer reports "global(" / "local(" as a single function
			// token, so the functional form is recognized here directly.
			if fn := strings.TrimSuffix(string(nt.text), "("); nt.tt == css.FunctionToken && (fn == "global" || fn == "local") {
				scanGlobalLocalFunction(lexer, tracker, fn == "global", emit)
				t = nextTok(lexer, tracker)
				continue
			}
			if nt.tt == css.IdentToken && (string(nt.text) == "global" || string(nt.text) == "local") {
				pendingKeyword = string(nt.text)
				t = nextTok(lexer, tracker)
				continue
			}
			t = nt
			continue
		}

		t = nextTok(lexer, tracker)
	}
}

// scanGlobalLocalFunction scans the parenthesised argument of a
// functional :global(...) / :local(...) pseudo-class, emitting every
// class selector found inside with a fixed Global flag regardless of the
// ambient mode. The opening '(' has already been consumed by the caller.
func scanGlobalLocalFunction(lexer *css.Lexer, tracker *posTracker, isGlobal bool, emit func(name string, line, col int, global bool)) {
	depth := 1
	for depth > 0 {
		t := nextTok(lexer, tracker)
		switch t.tt {
		case css.ErrorToken:
			return
		case css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.DelimToken:
			if len(t.text) > 0 && t.text[0] == '.' {
				if nt := nextTok(lexer, tracker); nt.tt == css.IdentToken {
					emit(string(nt.text), t.line, t.col, isGlobal)
				}
			}
		}
	}
}

// skipBlock consumes tokens from just after a '{' to its matching '}'.
func skipBlock(lexer *css.Lexer, tracker *posTracker) {
	depth := 1
	for depth > 0 {
		t := nextTok(lexer, tracker)
		if t.tt == css.ErrorToken {
			return
		}
		switch t.tt {
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

// atValueImportRe recognizes the import shape of @value's raw argument:
// one or more "name" / "name as alias" clauses, then "from '...'".
var atValueImportRe = regexp.MustCompile(`(?s)^(.+?)\s+from\s+['"](.+)['"]\s*$`)

// parseAtValueRaw parses the raw argument of an @value at-rule (text
// between "@value" and the terminating ";") into one of the two AtValue
// node shapes.
func parseAtValueRaw(raw string, loc Location) (AtValueNode, error) {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), ";"))
	if raw == "" {
		return nil, fmt.Errorf("empty @value declaration")
	}

	if m := atValueImportRe.FindStringSubmatch(raw); m != nil {
		namesPart, from := m[1], strings.TrimSpace(m[2])
		var imports []ValueImportSpecifier
		for _, piece := range strings.Split(namesPart, ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if fields := strings.Fields(piece); len(fields) == 3 && fields[1] == "as" {
				imports = append(imports, ValueImportSpecifier{Local: fields[2], Imported: fields[0]})
			} else {
				imports = append(imports, ValueImportSpecifier{Local: piece, Imported: piece})
			}
		}
		return ValueImportDeclaration{From: from, Imports: imports, Loc: loc}, nil
	}

	colon := strings.Index(raw, ":")
	if colon < 0 {
		return nil, fmt.Errorf("malformed @value declaration %q", raw)
	}
	name := strings.TrimSpace(raw[:colon])
	if name == "" {
		return nil, fmt.Errorf("malformed @value declaration %q", raw)
	}
	return ValueDeclaration{TokenName: name, Loc: loc}, nil
}
