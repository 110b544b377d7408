package node

import "github.com/rez-lang/rez/tmpl"

// Card is a single displayable unit of content within a scene.
type Card struct {
	Base

	Compiled *tmpl.Envelope
}

func (c *Card) NodeType() string   { return "card" }
func (c *Card) PreProcess(g *Game) {}

func (c *Card) Process(g *Game) {
	content, ok := c.Attrs["content"]
	if !ok {
		return
	}

	c.Compiled = tmpl.Compile("card:"+c.ID(), "article", "rez-card", content.Value.String)
}

func (c *Card) Children() []Node { return nil }

func (c *Card) Validators() []Validator {
	return []Validator{
		Present("content"),
		NodePasses(func(n Node, g *Game) error {
			card := n.(*Card)
			if card.Compiled != nil && card.Compiled.SourceErr != nil {
				return errf("node %q: content template: %v", card.ID(), card.Compiled.SourceErr)
			}

			return nil
		}),
	}
}
