// Package node implements the AST node model, the validator DSL, and the
// validation driver together. The three are kept in one package on
// purpose: the validator builders need deep access to a node's attribute
// map and to the game's identifier map and type hierarchy, and splitting
// them across packages would either force those fields public in ways
// nothing else needs or create an import cycle between "the nodes" and
// "the things that validate nodes". Each concern still lives in its own
// file.
package node

import (
	"github.com/rez-lang/rez/idmap"
	"github.com/rez-lang/rez/token"
	"github.com/rez-lang/rez/typeh"
	"github.com/rez-lang/rez/value"
)

// AttrMap is an attribute list converted to a map keyed by name, per the
// block schema layer's shared post-match procedure.
type AttrMap map[string]Attribute

// Attribute is one named, typed value attached to a block.
type Attribute struct {
	Name  string
	Type  value.Type
	Value value.Value
}

// Node is the uniform capability set every variant exposes.
type Node interface {
	NodeType() string
	ID() string
	Pos() token.Pos
	AttrMap() AttrMap
	PreProcess(g *Game)
	Process(g *Game)
	Children() []Node
	Validators() []Validator
}

// Base holds the fields common to every variant. Variants embed it and
// implement the rest of Node themselves.
type Base struct {
	Ident    string
	Position token.Pos
	Attrs    AttrMap
	Status   string
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

func NewBase(id string, pos token.Pos, attrs AttrMap) Base {
	return Base{Ident: id, Position: pos, Attrs: attrs, Status: StatusOK}
}

func (b *Base) ID() string         { return b.Ident }
func (b *Base) Pos() token.Pos     { return b.Position }
func (b *Base) AttrMap() AttrMap   { return b.Attrs }
func (b *Base) markError(msg string) {
	b.Status = StatusError
}

// attr looks up a named attribute, returning ok=false when absent.
func (b *Base) attr(name string) (Attribute, bool) {
	a, ok := b.Attrs[name]
	return a, ok
}

// Game is the root variant: it aggregates every sub-collection by kind and
// owns the identifier map and type hierarchy built up during parsing.
type Game struct {
	Base

	Scenes      []*Scene
	Cards       []*Card
	Items       []*Item
	Inventories []*Inventory
	Slots       []*Slot
	Groups      []*Group
	Assets      []*Asset
	Helpers     []*Helper
	Tasks       map[string]*TaskDef

	IDs  *idmap.Map
	Hier *typeh.Hierarchy

	EngineVersion string
}

func NewGame(ids *idmap.Map, hier *typeh.Hierarchy) *Game {
	return &Game{
		Base:  NewBase("", token.Pos{}, AttrMap{}),
		Tasks: map[string]*TaskDef{},
		IDs:   ids,
		Hier:  hier,
	}
}

func (g *Game) NodeType() string { return "game" }

// Children returns every owned node, in the declared collection order,
// used by the validation driver for traversal.
func (g *Game) Children() []Node {
	var out []Node

	for _, s := range g.Scenes {
		out = append(out, s)
	}

	for _, c := range g.Cards {
		out = append(out, c)
	}

	for _, i := range g.Items {
		out = append(out, i)
	}

	for _, inv := range g.Inventories {
		out = append(out, inv)
	}

	for _, sl := range g.Slots {
		out = append(out, sl)
	}

	for _, gr := range g.Groups {
		out = append(out, gr)
	}

	for _, a := range g.Assets {
		out = append(out, a)
	}

	for _, h := range g.Helpers {
		out = append(out, h)
	}

	return out
}

// PreProcess runs pre_process on every owned node. The game has no
// defaults of its own to set.
func (g *Game) PreProcess(_ *Game) {
	for _, c := range g.Children() {
		c.PreProcess(g)
	}
}

// Process runs process on every owned node. The game has no templated
// fields of its own to compile.
func (g *Game) Process(_ *Game) {
	for _, c := range g.Children() {
		c.Process(g)
	}
}

func (g *Game) Validators() []Validator {
	return []Validator{
		IfPresent("engine_version", HasType(value.TypeString, ValuePasses(
			func(v value.Value) bool { return isValidSemver(v.String) },
			"a valid semantic version",
		))),
	}
}
