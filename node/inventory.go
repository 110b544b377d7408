package node

import "github.com/rez-lang/rez/value"

// Inventory holds a collection of slots. apply_effects defaults to false
// when absent.
type Inventory struct {
	Base

	Slots []*Slot
}

func (inv *Inventory) NodeType() string { return "inventory" }

func (inv *Inventory) PreProcess(g *Game) {
	if _, ok := inv.Attrs["apply_effects"]; !ok {
		inv.Attrs["apply_effects"] = Attribute{
			Name:  "apply_effects",
			Type:  value.TypeBoolean,
			Value: value.Boolean(false),
		}
	}
}

func (inv *Inventory) Process(g *Game) {}

func (inv *Inventory) Children() []Node {
	out := make([]Node, 0, len(inv.Slots))
	for _, s := range inv.Slots {
		out = append(out, s)
	}

	return out
}

func (inv *Inventory) Validators() []Validator {
	return []Validator{
		IfPresent("apply_effects", HasType(value.TypeBoolean)),
	}
}

// AddSlot folds a parsed child slot into the inventory, per the
// block-with-children add_fn contract.
func (inv *Inventory) AddSlot(s *Slot) {
	inv.Slots = append(inv.Slots, s)
}
