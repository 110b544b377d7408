package node

import (
	"testing"

	"github.com/rez-lang/rez/idmap"
	"github.com/rez-lang/rez/token"
	"github.com/rez-lang/rez/typeh"
	"github.com/rez-lang/rez/value"
)

func newTaskGame(tasks map[string]*TaskDef) *Game {
	g := NewGame(idmap.New(), typeh.New())
	g.Tasks = tasks

	return g
}

func TestValidateTaskChildBounds(t *testing.T) {
	g := newTaskGame(map[string]*TaskDef{
		"sequence": {Base: NewBase("sequence", token.Pos{}, AttrMap{}), MinChildren: 1, MaxChildren: 2},
	})

	tooFew := &value.Node{TaskID: "sequence"}
	if err := validateTask(nil, g, tooFew); err == nil {
		t.Fatal("expected an error: sequence requires at least one child")
	}

	tooMany := &value.Node{TaskID: "sequence", Children: []value.Node{{TaskID: "sequence"}, {TaskID: "sequence"}, {TaskID: "sequence"}}}
	if err := validateTask(nil, g, tooMany); err == nil {
		t.Fatal("expected an error: sequence allows at most two children")
	}
}

func TestValidateTaskUnboundedMaxChildren(t *testing.T) {
	g := newTaskGame(map[string]*TaskDef{
		"sequence": {Base: NewBase("sequence", token.Pos{}, AttrMap{}), MinChildren: 0, MaxChildren: -1},
	})

	many := &value.Node{TaskID: "sequence", Children: make([]value.Node, 50)}
	for i := range many.Children {
		many.Children[i] = value.Node{TaskID: "sequence"}
	}

	if err := validateTask(nil, g, many); err != nil {
		t.Fatalf("did not expect a max-children error when MaxChildren is negative: %v", err)
	}
}

func TestValidateTaskRequiredOptions(t *testing.T) {
	g := newTaskGame(map[string]*TaskDef{
		"wait": {Base: NewBase("wait", token.Pos{}, AttrMap{}), Options: []string{"duration"}},
	})

	missing := &value.Node{TaskID: "wait"}
	if err := validateTask(nil, g, missing); err == nil {
		t.Fatal("expected an error: wait requires a duration option")
	}

	present := &value.Node{TaskID: "wait", Options: map[string]value.Value{"duration": value.Number(3)}}
	if err := validateTask(nil, g, present); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateTaskRecursesIntoChildren(t *testing.T) {
	g := newTaskGame(map[string]*TaskDef{
		"sequence": {Base: NewBase("sequence", token.Pos{}, AttrMap{}), MaxChildren: -1},
		"wait":     {Base: NewBase("wait", token.Pos{}, AttrMap{}), Options: []string{"duration"}},
	})

	tree := &value.Node{
		TaskID:   "sequence",
		Children: []value.Node{{TaskID: "wait"}},
	}

	err := validateTask(nil, g, tree)
	if err == nil {
		t.Fatal("expected the missing duration option on the nested wait task to surface")
	}
}
