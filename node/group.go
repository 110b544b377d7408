package node

// Group is a tag-based selection of assets; it must declare at least one
// of include_tags or exclude_tags.
type Group struct {
	Base
}

func (gr *Group) NodeType() string { return "group" }
func (gr *Group) PreProcess(g *Game) {}
func (gr *Group) Process(g *Game)  {}
func (gr *Group) Children() []Node { return nil }

func (gr *Group) Validators() []Validator {
	return []Validator{
		OneOfPresent([]string{"include_tags", "exclude_tags"}, false),
	}
}
