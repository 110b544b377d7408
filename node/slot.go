package node

// Slot declares what item types a container (inventory, scene, etc.)
// accepts via its "accepts" attribute (a keyword or a set of keywords).
type Slot struct {
	Base
}

func (s *Slot) NodeType() string        { return "slot" }
func (s *Slot) PreProcess(g *Game)      {}
func (s *Slot) Process(g *Game)         {}
func (s *Slot) Children() []Node        { return nil }
func (s *Slot) Validators() []Validator {
	return []Validator{
		Present("accepts"),
	}
}
