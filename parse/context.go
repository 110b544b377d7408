// Package parse implements the primitive parsers and combinators the block
// schema layer is built from. Each parser is a pure function of a Context:
// it consumes some of the remaining input and returns a new Context with an
// updated input cursor, an updated value stack, and either no error or a
// parse/block/internal error recorded on it. No parser performs I/O or
// mutates anything outside of the Context (and the side-band Data it
// carries, which is the identifier map and type hierarchy being built up
// over the course of one parse).
package parse

import (
	"github.com/rez-lang/rez/idmap"
	"github.com/rez-lang/rez/source"
	"github.com/rez-lang/rez/typeh"
)

// EntryPoint is a logical (line, col) captured when a parser that cares
// about source positions - chiefly a block builder - starts matching.
type EntryPoint struct {
	Line, Col int
}

// Data is the side-band state threaded through every Context of a single
// parse. It is shared by pointer across every Context derived from the
// same parse (including backtracked ones): the identifier map and type
// hierarchy are genuinely mutated as parsing proceeds, and backtracking
// over already-registered identifiers is not undone, matching the spec's
// lenient, append-only registration model.
type Data struct {
	Source source.LogicalFile
	IDs    *idmap.Map
	Hier   *typeh.Hierarchy
}

// Context is the parser state threaded through every combinator.
type Context struct {
	input []rune

	// line and col describe the logical position of input[0] (1-based).
	line, col int

	// ast is the stack of values produced so far for the current
	// subsequence. Combinators push exactly what their contract promises
	// and nothing else.
	ast []interface{}

	entryPoints []EntryPoint

	// commitStack mirrors the nesting of Sequence calls: each Sequence
	// pushes a fresh "not yet committed" frame, Commit() sets the top
	// frame to true, and a Sequence pops its frame when it returns.
	commitStack []bool

	err *Error

	Data *Data
}

// NewContext creates a Context ready to parse src from the beginning.
func NewContext(src string, data *Data) Context {
	return Context{
		input: []rune(src),
		line:  1,
		col:   1,
		Data:  data,
	}
}

// Err returns the current error, or nil if the context is in a healthy
// state.
func (c Context) Err() *Error {
	return c.err
}

// Ok reports whether the context has no pending error.
func (c Context) Ok() bool {
	return c.err == nil
}

// Pos returns the current logical (line, col).
func (c Context) Pos() EntryPoint {
	return EntryPoint{Line: c.line, Col: c.col}
}

// AtEOF reports whether there is no more input to consume.
func (c Context) AtEOF() bool {
	return len(c.input) == 0
}

// Peek returns the next rune without consuming it, and whether one exists.
func (c Context) Peek() (rune, bool) {
	if len(c.input) == 0 {
		return 0, false
	}

	return c.input[0], true
}

// Advance consumes the next rune, updating line/col bookkeeping, and
// returns the new Context. It must only be called when AtEOF is false.
func (c Context) Advance() Context {
	r := c.input[0]
	c.input = c.input[1:]

	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}

	return c
}

// Push appends a value to the AST stack.
func (c Context) Push(v interface{}) Context {
	c.ast = append(c.ast, v)
	return c
}

// Mark returns the current stack depth, used by combinators (and by value
// and block parsers built on top of them) to know how many values some
// already-run parser contributed.
func (c Context) Mark() int {
	return len(c.ast)
}

// SliceFrom returns (and removes) every AST value pushed since base.
func (c Context) SliceFrom(base int) (Context, []interface{}) {
	vals := append([]interface{}{}, c.ast[base:]...)
	c.ast = c.ast[:base]

	return c, vals
}

func (c Context) mark() int {
	return c.Mark()
}

func (c Context) sliceFrom(base int) (Context, []interface{}) {
	return c.SliceFrom(base)
}

// PushEntry records the current position as a new entry point, used by the
// block schema layer to remember where a block's "@label" started.
func (c Context) PushEntry() Context {
	c.entryPoints = append(c.entryPoints, c.Pos())
	return c
}

// TopEntry returns the innermost still-open entry point. It panics if there
// is none, which would indicate a bug in the combinator nesting rather than
// a malformed input.
func (c Context) TopEntry() EntryPoint {
	if len(c.entryPoints) == 0 {
		panic("parse: TopEntry called with no open entry point")
	}

	return c.entryPoints[len(c.entryPoints)-1]
}

// PopEntry discards the innermost entry point.
func (c Context) PopEntry() Context {
	c.entryPoints = c.entryPoints[:len(c.entryPoints)-1]
	return c
}

// pushCommitFrame opens a new commit scope for an enclosing Sequence.
func (c Context) pushCommitFrame() Context {
	c.commitStack = append(c.commitStack, false)
	return c
}

// popCommitFrame closes the innermost commit scope and reports whether it
// had been committed.
func (c Context) popCommitFrame() (Context, bool) {
	n := len(c.commitStack)
	committed := c.commitStack[n-1]
	c.commitStack = c.commitStack[:n-1]

	return c, committed
}

// commit marks the innermost open commit scope as committed. It is a
// no-op (not a bug) when called outside of any Sequence, so commit() can be
// used defensively.
func (c Context) commit() Context {
	if len(c.commitStack) == 0 {
		return c
	}

	c.commitStack[len(c.commitStack)-1] = true

	return c
}

// Fail records a backtrackable parse failure (ErrParse). Use FailKind for
// block-level or internal errors.
func (c Context) Fail(msg string) Context {
	return c.failKind(ErrParse, msg)
}

// FailKind records a failure of a specific kind, for callers outside this
// package that need to raise a block-level or internal error directly
// (e.g. the block schema layer reporting a LogicalFile resolution
// failure as an internal error rather than a backtrackable one).
func (c Context) FailKind(kind ErrorKind, msg string) Context {
	return c.failKind(kind, msg)
}

func (c Context) failKind(kind ErrorKind, msg string) Context {
	c.err = &Error{
		Kind:    kind,
		Message: msg,
		Line:    c.line,
		Col:     c.col,
	}

	return c
}

func (c Context) fail(kind ErrorKind, msg string) Context {
	return c.failKind(kind, msg)
}
