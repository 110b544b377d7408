package node

import "github.com/rez-lang/rez/value"

// Item is a pickable/usable game object. Its pre_process step expands the
// type keyword through the type hierarchy into a tags set, per the fan-out
// rule: for every ancestor of the declared type, a tag is inserted.
type Item struct {
	Base
}

func (i *Item) NodeType() string { return "item" }

func (i *Item) PreProcess(g *Game) {
	typ, ok := i.Attrs["type"]
	if !ok || typ.Value.Type != value.TypeKeyword {
		return
	}

	existing := map[string]bool{}

	if tags, ok := i.Attrs["tags"]; ok {
		for _, t := range tags.Value.List {
			if t.Type == value.TypeKeyword {
				existing[t.Keyword] = true
			}
		}
	}

	existing[typ.Value.Keyword] = true

	for _, ancestor := range g.Hier.FanOut(typ.Value.Keyword) {
		existing[ancestor] = true
	}

	tags := make([]value.Value, 0, len(existing))
	for t := range existing {
		tags = append(tags, value.Keyword(t))
	}

	i.Attrs["tags"] = Attribute{Name: "tags", Type: value.TypeSet, Value: value.Set(tags)}
}

func (i *Item) Process(g *Game) {}

func (i *Item) Children() []Node { return nil }

// Validators enforces the item's declared validation rules: a consumable
// item must declare uses, and every item with a keyword type must be
// accepted by at least one slot somewhere in the game.
func (i *Item) Validators() []Validator {
	return []Validator{
		IfPresent("consumable", HasType(value.TypeBoolean, ValidateIfValue(
			value.Boolean(true),
			OtherAttrsPresent([]string{"uses"}),
		))),
		NodePasses(itemAcceptedBySomeSlot),
	}
}

func itemAcceptedBySomeSlot(n Node, g *Game) error {
	item := n.(*Item)

	typ, ok := item.Attrs["type"]
	if !ok || typ.Value.Type != value.TypeKeyword {
		return nil
	}

	for _, slot := range g.Slots {
		accepts, ok := slot.Attrs["accepts"]
		if !ok {
			continue
		}

		if accepts.Value.Type == value.TypeKeyword && g.Hier.IsA(typ.Value.Keyword, accepts.Value.Keyword) {
			return nil
		}

		for _, v := range accepts.Value.List {
			if v.Type == value.TypeKeyword && g.Hier.IsA(typ.Value.Keyword, v.Keyword) {
				return nil
			}
		}
	}

	return errf("No slot found accepting type %s for item %s", typ.Value.Keyword, item.ID())
}
