package block

import (
	"strings"

	"github.com/rez-lang/rez/node"
	"github.com/rez-lang/rez/parse"
	"github.com/rez-lang/rez/token"
	"github.com/rez-lang/rez/value"
)

// Build constructs the typed node for a matched block: given its id (the
// parsed identifier, or for auto-id blocks the one idFn generated), its
// attribute map and resolved position, it returns the node to register and
// attach to its parent.
type Build func(id string, attrs node.AttrMap, pos token.Pos) node.Node

func header(label string) parse.Parser {
	return parse.Ignore(parse.ILiteral("@" + label))
}

// popSeqChildren recovers the flat list of values pushed by a Sequence's
// non-ignored children, undoing the one level of wrapping Sequence itself
// applies when opts.Ast is nil.
func popSeqChildren(c parse.Context) (parse.Context, []interface{}) {
	var raw []interface{}
	c, raw = c.SliceFrom(c.Mark() - 1)

	return c, raw[0].([]interface{})
}

func bracedAttrs() parse.Parser {
	return parse.Sequence(parse.SeqOpts{},
		parse.Ignore(parse.ILiteral("{")),
		attrList(),
		parse.Ignore(parse.ILiteral("}")),
	)
}

// AutoID builds `@<label> { <attrs> }`. The body is an attribute list
// only; once matched, idFn derives the id from the parsed attributes (a
// name attribute, typically).
func AutoID(label, kind string, idFn func(node.AttrMap, token.Pos) string, build Build) parse.Parser {
	return parse.Sequence(parse.SeqOpts{
		Entry: true,
		Ctx: func(c parse.Context) parse.Context {
			entry := c.TopEntry()

			var children []interface{}
			c, children = popSeqChildren(c)

			attrsRaw := children[0].([]interface{})
			attrs := toAttrMap(attrsRaw)

			c, pos := resolvePos(c, entry)
			if !c.Ok() {
				return c
			}

			id := idFn(attrs, pos)

			n := build(id, attrs, pos)
			registerID(c, id, kind, pos)

			return c.Push(n)
		},
	},
		header(label),
		parse.Ignore(parse.ILiteral("{")),
		attrList(),
		parse.Ignore(parse.ILiteral("}")),
	)
}

// RequiredID builds `@<label> <identifier> { <attrs> }`.
func RequiredID(label, kind string, build Build) parse.Parser {
	return parse.Sequence(parse.SeqOpts{
		Entry: true,
		Ctx: func(c parse.Context) parse.Context {
			entry := c.TopEntry()

			var children []interface{}
			c, children = popSeqChildren(c)

			id := children[0].(string)
			attrsRaw := children[1].([]interface{})
			attrs := toAttrMap(attrsRaw)

			c, pos := resolvePos(c, entry)
			if !c.Ok() {
				return c
			}

			n := build(id, attrs, pos)
			registerID(c, id, kind, pos)

			return c.Push(n)
		},
	},
		header(label),
		parse.Commit(),
		parse.Identifier(),
		parse.Ignore(parse.ILiteral("{")),
		attrList(),
		parse.Ignore(parse.ILiteral("}")),
	)
}

// OptionalAttrsID builds `@<label> <identifier> [ { <attrs> } ]`. When the
// brace section is absent, attrs defaults to the empty map.
func OptionalAttrsID(label, kind string, build Build) parse.Parser {
	return parse.Sequence(parse.SeqOpts{
		Entry: true,
		Ctx: func(c parse.Context) parse.Context {
			entry := c.TopEntry()

			var children []interface{}
			c, children = popSeqChildren(c)

			id := children[0].(string)

			attrs := node.AttrMap{}
			if len(children) > 1 {
				wrapped := children[1].([]interface{})
				attrsRaw := wrapped[0].([]interface{})
				attrs = toAttrMap(attrsRaw)
			}

			c, pos := resolvePos(c, entry)
			if !c.Ok() {
				return c
			}

			n := build(id, attrs, pos)
			registerID(c, id, kind, pos)

			return c.Push(n)
		},
	},
		header(label),
		parse.Commit(),
		parse.Identifier(),
		parse.Optional(bracedAttrs()),
	)
}

// WithChildren builds `@<label> { (<child> | <attr>)* }`. childParser
// recognizes one nested child block and pushes its node.Node; addFn folds
// a matched child into the node build is about to construct. Because the
// attribute list and the children are interleaved in source order, the
// discriminator the spec calls is_node is just a type assertion against
// node.Node: anything childParser can produce satisfies it, anything
// attrParser produces does not.
func WithChildren(label string, childParser parse.Parser, build func(attrs node.AttrMap, pos token.Pos) node.Node, addFn func(parent node.Node, child node.Node)) parse.Parser {
	return parse.Sequence(parse.SeqOpts{
		Entry: true,
		Ctx: func(c parse.Context) parse.Context {
			entry := c.TopEntry()

			var children []interface{}
			c, children = popSeqChildren(c)

			mixed := children[0].([]interface{})

			attrs, nodes := partition(mixed)

			c, pos := resolvePos(c, entry)
			if !c.Ok() {
				return c
			}

			n := build(attrs, pos)

			for _, child := range nodes {
				addFn(n, child)
			}

			return c.Push(n)
		},
	},
		header(label),
		parse.Ignore(parse.ILiteral("{")),
		parse.Many(parse.Choice(childParser, attrParser())),
		parse.Ignore(parse.ILiteral("}")),
	)
}

// IDWithChildren combines RequiredID and WithChildren: `@<label>
// <identifier> { (<child> | <attr>)* }`.
func IDWithChildren(label, kind string, childParser parse.Parser, build func(id string, attrs node.AttrMap, pos token.Pos) node.Node, addFn func(parent node.Node, child node.Node)) parse.Parser {
	return parse.Sequence(parse.SeqOpts{
		Entry: true,
		Ctx: func(c parse.Context) parse.Context {
			entry := c.TopEntry()

			var children []interface{}
			c, children = popSeqChildren(c)

			id := children[0].(string)
			mixed := children[1].([]interface{})

			attrs, nodes := partition(mixed)

			c, pos := resolvePos(c, entry)
			if !c.Ok() {
				return c
			}

			n := build(id, attrs, pos)
			registerID(c, id, kind, pos)

			for _, child := range nodes {
				addFn(n, child)
			}

			return c.Push(n)
		},
	},
		header(label),
		parse.Commit(),
		parse.Identifier(),
		parse.Ignore(parse.ILiteral("{")),
		parse.Many(parse.Choice(childParser, attrParser())),
		parse.Ignore(parse.ILiteral("}")),
	)
}

func partition(mixed []interface{}) (node.AttrMap, []node.Node) {
	attrs := node.AttrMap{}

	var nodes []node.Node

	for _, item := range mixed {
		if n, ok := item.(node.Node); ok {
			nodes = append(nodes, n)
			continue
		}

		a := item.(node.Attribute)
		attrs[a.Name] = a
	}

	return attrs, nodes
}

// DelimitedText builds `@<label> [ { <attrs> } ] begin ... end`, storing the
// span strictly between the sentinels under key (trimmed of surrounding
// whitespace) as a string attribute alongside any declared attributes (a
// helper's arg list, typically), then hands the merged map to build. The
// result is anonymous: delimited-text blocks do not register an id.
func DelimitedText(label, key string, build func(attrs node.AttrMap, pos token.Pos) node.Node) parse.Parser {
	return parse.Sequence(parse.SeqOpts{
		Entry: true,
		Ctx: func(c parse.Context) parse.Context {
			entry := c.TopEntry()

			var children []interface{}
			c, children = popSeqChildren(c)

			attrs := node.AttrMap{}
			if len(children) > 1 {
				if wrapped, ok := children[0].([]interface{}); ok {
					attrsRaw := wrapped[0].([]interface{})
					attrs = toAttrMap(attrsRaw)
				}
			}

			text := strings.TrimSpace(children[len(children)-1].(string))

			c, pos := resolvePos(c, entry)
			if !c.Ok() {
				return c
			}

			attrs[key] = node.Attribute{Name: key, Type: value.TypeString, Value: value.String(text)}

			n := build(attrs, pos)

			return c.Push(n)
		},
	},
		header(label),
		parse.Optional(bracedAttrs()),
		parse.Ignore(parse.ILiteral("begin")),
		parse.CharsUntil("end"),
		parse.Ignore(parse.ILiteral("end")),
	)
}
