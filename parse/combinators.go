package parse

// SeqOpts customizes a Sequence's post-processing.
type SeqOpts struct {
	// Ast transforms the list of values the sequence's children pushed
	// into the single value the sequence itself pushes. If nil, the raw
	// []interface{} is pushed as-is.
	Ast func([]interface{}) interface{}

	// Ctx runs after the sequence has succeeded and pushed its value,
	// and may rewrite the context arbitrarily - most notably to replace
	// the top-of-stack value with a fully built AST node, or to register
	// an identifier. This is the side-effecting "context transform"
	// combinator the block schema layer is built on.
	Ctx func(Context) Context

	// Entry, when true, records the position at which this sequence
	// started as a new entry point before running its children, and
	// leaves it open for Ctx to read via c.TopEntry(), popping it only
	// after Ctx has run.
	Entry bool
}

// Sequence runs each parser in ps in order. Its children's pushed values
// become one pushed list (or whatever opts.Ast reduces that list to).
// A failure before any child calls Commit() backtracks (ErrParse); a
// failure after is reported as ErrBlockNotMatched and not retried by an
// enclosing Choice or Many.
func Sequence(opts SeqOpts, ps ...Parser) Parser {
	return func(c Context) Context {
		start := c

		if opts.Entry {
			c = c.PushEntry()
		}

		c = c.pushCommitFrame()
		base := c.mark()

		for _, p := range ps {
			c = p(c)
			if !c.Ok() {
				var committed bool
				c, committed = c.popCommitFrame()

				if opts.Entry {
					c = c.PopEntry()
				}

				if committed && c.err.Kind == ErrParse {
					c.err = &Error{
						Kind:    ErrBlockNotMatched,
						Message: c.err.Message,
						Line:    c.err.Line,
						Col:     c.err.Col,
					}

					return c
				}

				if c.err.Fatal() {
					return c
				}

				// Not committed: fully backtrack to the state before
				// this sequence began, but keep the more specific
				// failure message for diagnostics.
				reverted := start
				reverted.err = c.err

				return reverted
			}
		}

		var vals []interface{}
		c, vals = c.sliceFrom(base)

		var result interface{} = vals
		if opts.Ast != nil {
			result = opts.Ast(vals)
		}

		c = c.Push(result)

		c, _ = c.popCommitFrame()

		if opts.Ctx != nil {
			c = opts.Ctx(c)
		}

		if opts.Entry {
			c = c.PopEntry()
		}

		return c
	}
}

// Choice tries each parser in order and returns the first that succeeds.
// A fatal (committed or internal) failure from any alternative is
// propagated immediately rather than tried around.
func Choice(ps ...Parser) Parser {
	return func(c Context) Context {
		var last *Error

		for _, p := range ps {
			attempt := p(c)
			if attempt.Ok() {
				return attempt
			}

			if attempt.err.Fatal() {
				return attempt
			}

			last = attempt.err
		}

		failed := c
		if last != nil {
			failed.err = last
		} else {
			failed = c.fail(ErrParse, "no alternative matched")
		}

		return failed
	}
}

// Many runs p repeatedly until it fails to backtrack, then pushes one
// value: the list of everything its successful iterations pushed. It
// never fails itself (zero iterations is success with an empty list),
// unless an iteration fails fatally.
func Many(p Parser) Parser {
	return func(c Context) Context {
		base := c.mark()

		for {
			attempt := p(c)
			if !attempt.Ok() {
				if attempt.err.Fatal() {
					return attempt
				}

				break
			}

			if len(attempt.input) == len(c.input) {
				// p succeeded without consuming input; looping would
				// never terminate.
				c = attempt
				break
			}

			c = attempt
		}

		var vals []interface{}
		c, vals = c.sliceFrom(base)

		return c.Push(vals)
	}
}

// Optional runs p once. On a backtrackable failure it produces nothing -
// no value is pushed, and no input is consumed. A fatal failure from p is
// still propagated.
func Optional(p Parser) Parser {
	return func(c Context) Context {
		attempt := p(c)
		if attempt.Ok() {
			return attempt
		}

		if attempt.err.Fatal() {
			return attempt
		}

		return c
	}
}

// NotLookahead succeeds, consuming nothing and pushing nothing, iff p would
// fail to backtrack at the current position.
func NotLookahead(p Parser) Parser {
	return func(c Context) Context {
		attempt := p(c)
		if attempt.Ok() {
			return c.fail(ErrParse, "unexpected match in negative lookahead")
		}

		if attempt.err.Fatal() {
			return attempt
		}

		return c
	}
}

// Ignore runs p and discards whatever it pushed, keeping only its effect on
// the remaining input.
func Ignore(p Parser) Parser {
	return func(c Context) Context {
		base := c.mark()

		c = p(c)
		if !c.Ok() {
			return c
		}

		c, _ = c.sliceFrom(base)

		return c
	}
}

// Commit marks the innermost enclosing Sequence as committed: from this
// point on, a failure inside that sequence is a block-level error rather
// than something an enclosing Choice or Many may try around.
func Commit() Parser {
	return func(c Context) Context {
		return c.commit()
	}
}

// Map runs p and, on success, replaces the value it pushed with fn of that
// value. It is a convenience for single-child transforms (the value
// layer's boolean literal uses it) instead of a bespoke Sequence.
func Map(p Parser, fn func(interface{}) interface{}) Parser {
	return func(c Context) Context {
		base := c.mark()

		c = p(c)
		if !c.Ok() {
			return c
		}

		var vals []interface{}
		c, vals = c.sliceFrom(base)

		if len(vals) != 1 {
			panic("parse: Map requires its parser to push exactly one value")
		}

		return c.Push(fn(vals[0]))
	}
}
