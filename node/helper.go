package node

import "github.com/rez-lang/rez/value"

// Helper is an anonymous script fragment (it carries no id), captured
// verbatim by a delimited-text block, parameterized by an arg list.
type Helper struct {
	Base

	Body string
}

func (h *Helper) NodeType() string   { return "helper" }
func (h *Helper) PreProcess(g *Game) {}
func (h *Helper) Process(g *Game)    {}
func (h *Helper) Children() []Node   { return nil }

// Validators closes over the helper's own arg list to reject duplicate
// parameter names - a check that only makes sense relative to this one
// node's declared arguments, not a generic builder.
func (h *Helper) Validators() []Validator {
	args, _ := h.Attrs["args"]

	return []Validator{
		IfPresent("args", CollOf([]value.Type{value.TypeKeyword})),
		NodePasses(func(n Node, g *Game) error {
			if args.Value.Type != value.TypeList && args.Value.Type != value.TypeSet {
				return nil
			}

			seen := map[string]bool{}

			for _, a := range args.Value.List {
				if a.Type != value.TypeKeyword {
					continue
				}

				if seen[a.Keyword] {
					return errf("node %q: duplicate helper argument %q", n.ID(), a.Keyword)
				}

				seen[a.Keyword] = true
			}

			return nil
		}),
	}
}
