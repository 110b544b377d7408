package parse

import (
	"strings"
	"unicode"
)

// Parser recognizes some prefix of a Context's remaining input and returns
// the Context advanced past it, with whatever it produced pushed onto the
// value stack - or the same Context with an error recorded, unconsumed,
// for parse_error so callers can backtrack.
type Parser func(Context) Context

// Any consumes and pushes a single code point, failing only at EOF.
func Any() Parser {
	return func(c Context) Context {
		r, ok := c.Peek()
		if !ok {
			return c.fail(ErrParse, "unexpected end of input")
		}

		return c.Advance().Push(r)
	}
}

// EOF succeeds, pushing nothing, iff there is no more input.
func EOF() Parser {
	return func(c Context) Context {
		if !c.AtEOF() {
			return c.fail(ErrParse, "expected end of input")
		}

		return c
	}
}

// Literal matches an exact, case-sensitive string and pushes it.
func Literal(s string) Parser {
	rs := []rune(s)

	return func(c Context) Context {
		cur := c
		for _, want := range rs {
			got, ok := cur.Peek()
			if !ok || got != want {
				return c.fail(ErrParse, "expected '"+s+"'")
			}

			cur = cur.Advance()
		}

		return cur.Push(s)
	}
}

// IWS skips zero or more inline whitespace characters (space and tab; not
// newlines, which are meaningful for diagnostics but never required by the
// grammar). It always succeeds and pushes nothing.
func IWS() Parser {
	return func(c Context) Context {
		for {
			r, ok := c.Peek()
			if !ok || (r != ' ' && r != '\t') {
				return c
			}

			c = c.Advance()
		}
	}
}

// WS skips zero or more whitespace characters, including newlines.
func WS() Parser {
	return func(c Context) Context {
		for {
			r, ok := c.Peek()
			if !ok || !unicode.IsSpace(r) {
				return c
			}

			c = c.Advance()
		}
	}
}

// ILiteral matches a literal preceded by optional whitespace, newlines
// included - the whitespace-tolerant token matcher used throughout the
// surface grammar.
func ILiteral(s string) Parser {
	lit := Literal(s)

	return func(c Context) Context {
		c = WS()(c)
		if !c.Ok() {
			return c
		}

		return lit(c)
	}
}

// isIdentStart/isIdentPart follow the JS identifier convention referenced
// by the grammar: a letter or underscore, then letters, digits or
// underscores.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Identifier matches a js_identifier-shaped token, skipping leading
// whitespace, and pushes the matched string.
func Identifier() Parser {
	return func(c Context) Context {
		c = WS()(c)
		if !c.Ok() {
			return c
		}

		start := c
		r, ok := c.Peek()
		if !ok || !isIdentStart(r) {
			return start.fail(ErrParse, "expected identifier")
		}

		var sb strings.Builder

		for {
			r, ok := c.Peek()
			if !ok || !isIdentPart(r) {
				break
			}

			sb.WriteRune(r)
			c = c.Advance()
		}

		return c.Push(sb.String())
	}
}

// CharsUntil consumes every rune up to (but not including) the first
// occurrence of sentinel that stands on a word boundary - sentinel is a
// keyword, not an arbitrary substring, so an "end" embedded inside a
// longer identifier (append, vendor, depend, ...) never matches - and
// pushes the consumed text. It fails if sentinel never occurs before EOF.
func CharsUntil(sentinel string) Parser {
	return func(c Context) Context {
		var sb strings.Builder
		cur := c
		lastConsumed := rune(0)
		haveLast := false

		for {
			if strings.HasPrefix(string(cur.input), sentinel) && sentinelIsWordBoundary(lastConsumed, haveLast, cur.input, sentinel) {
				return cur.Push(sb.String())
			}

			r, ok := cur.Peek()
			if !ok {
				return c.fail(ErrParse, "expected '"+sentinel+"' before end of input")
			}

			sb.WriteRune(r)
			lastConsumed = r
			haveLast = true
			cur = cur.Advance()
		}
	}
}

// sentinelIsWordBoundary reports whether a sentinel match at the start of
// input is not itself part of a larger identifier: the character before
// it (if any) and the character right after it (if any) must not be
// identifier characters.
func sentinelIsWordBoundary(before rune, haveBefore bool, input []rune, sentinel string) bool {
	if haveBefore && isIdentPart(before) {
		return false
	}

	after := input[len([]rune(sentinel)):]
	if len(after) > 0 && isIdentPart(after[0]) {
		return false
	}

	return true
}
