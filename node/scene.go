package node

import "github.com/rez-lang/rez/tmpl"

// Scene is a location the player can be in; it owns zero or more slots and
// points to the card the player sees on entry.
type Scene struct {
	Base

	Slots    []*Slot
	Compiled *tmpl.Envelope
}

func (s *Scene) NodeType() string   { return "scene" }
func (s *Scene) PreProcess(g *Game) {}

func (s *Scene) Process(g *Game) {
	layout, ok := s.Attrs["layout"]
	if !ok {
		return
	}

	s.Compiled = tmpl.Compile("scene:"+s.ID(), "section", "rez-scene", layout.Value.String)
}

func (s *Scene) Children() []Node {
	out := make([]Node, 0, len(s.Slots))
	for _, sl := range s.Slots {
		out = append(out, sl)
	}

	return out
}

func (s *Scene) Validators() []Validator {
	return []Validator{
		IfPresent("initial_card", RefersTo("card")),
		NodePasses(func(n Node, g *Game) error {
			sc := n.(*Scene)
			if sc.Compiled != nil && sc.Compiled.SourceErr != nil {
				return errf("node %q: layout template: %v", sc.ID(), sc.Compiled.SourceErr)
			}

			return nil
		}),
	}
}

// AddSlot folds a parsed child slot into the scene.
func (s *Scene) AddSlot(sl *Slot) {
	s.Slots = append(s.Slots, sl)
}
