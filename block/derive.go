package block

import (
	"github.com/rez-lang/rez/parse"
	"github.com/rez-lang/rez/value"
)

// Derive recognizes `@derive <:tag> <:parent>`, a top-level statement
// rather than a block, and registers the edge in the shared type
// hierarchy. It pushes nothing: there is no node for the validation driver
// to traverse here.
func Derive() parse.Parser {
	return parse.Sequence(parse.SeqOpts{
		Ctx: func(c parse.Context) parse.Context {
			var children []interface{}
			c, children = popSeqChildren(c)

			tag := children[0].(value.Value).Keyword
			parent := children[1].(value.Value).Keyword

			c.Data.Hier.Derive(tag, parent)

			return c
		},
	},
		header("derive"),
		value.KeywordLiteral(),
		value.KeywordLiteral(),
	)
}
