// Package block implements the block schema layer: one structural parser
// per block shape (auto-id, required-id, optional-attrs-id, with-children,
// id-with-children, delimited-text, derive statement), sharing the
// post-match procedure that resolves a block's source position, builds its
// attribute map, constructs its typed node, and registers its id.
package block

import (
	"github.com/rez-lang/rez/node"
	"github.com/rez-lang/rez/parse"
	"github.com/rez-lang/rez/token"
	"github.com/rez-lang/rez/value"
)

// attrParser recognizes one `name: value` attribute, pushing exactly one
// node.Attribute.
func attrParser() parse.Parser {
	return func(c parse.Context) parse.Context {
		c = parse.WS()(c)
		if !c.Ok() {
			return c
		}

		start := c

		c = parse.Identifier()(c)
		if !c.Ok() {
			return start.Fail("expected attribute name")
		}

		var names []interface{}
		c, names = c.SliceFrom(c.Mark() - 1)
		name := names[0].(string)

		c = parse.WS()(c)

		r, ok := c.Peek()
		if !ok || r != ':' {
			return start.Fail("expected ':' after attribute name")
		}

		c = c.Advance()

		base := c.Mark()

		c = value.Literal()(c)
		if !c.Ok() {
			return c
		}

		var vals []interface{}
		c, vals = c.SliceFrom(base)
		v := vals[0].(value.Value)

		return c.Push(node.Attribute{Name: name, Type: v.Type, Value: v})
	}
}

// AttrStatement exposes the bare `name: value` grammar for callers that
// allow top-level attributes outside of any block - the root game's own
// engine_version, in particular.
func AttrStatement() parse.Parser {
	return attrParser()
}

// attrList recognizes zero or more attributes separated by free
// whitespace and pushes them in source order, duplicates included;
// toAttrMap later keeps the last occurrence of each name, matching the
// data-model invariant that attribute maps never carry two entries for the
// same name.
func attrList() parse.Parser {
	return parse.Many(attrParser())
}

// toAttrMap converts a slice of node.Attribute (in source order) into an
// AttrMap, last occurrence winning.
func toAttrMap(raw []interface{}) node.AttrMap {
	m := node.AttrMap{}

	for _, r := range raw {
		a := r.(node.Attribute)
		m[a.Name] = a
	}

	return m
}

// resolvePos turns an entry point's logical line into a source position via
// the parse context's LogicalFile collaborator. A LogicalFile that cannot
// resolve the line is an internal error, per the external interfaces
// contract: resolve_line must be total over the range of line numbers the
// parser can produce.
func resolvePos(c parse.Context, entry parse.EntryPoint) (parse.Context, token.Pos) {
	file, line, err := c.Data.Source.ResolveLine(entry.Line)
	if err != nil {
		return c.FailKind(parse.ErrInternal, err.Error()), token.Pos{}
	}

	return c, token.Pos{File: file, Line: line, Col: entry.Col}
}

// registerID records id in the identifier map under kind at pos, following
// the collision rule: a second definition becomes a list, newest first.
func registerID(c parse.Context, id, kind string, pos token.Pos) {
	if id == "" {
		return
	}

	c.Data.IDs.Register(id, kind, pos)
}
