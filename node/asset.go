package node

// Asset is a referenceable media resource (image, audio, etc.).
type Asset struct {
	Base
}

func (a *Asset) NodeType() string   { return "asset" }
func (a *Asset) PreProcess(g *Game) {}
func (a *Asset) Process(g *Game)    {}
func (a *Asset) Children() []Node   { return nil }

func (a *Asset) Validators() []Validator {
	return []Validator{
		Present("type"),
	}
}
