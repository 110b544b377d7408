package rez

import (
	"github.com/rez-lang/rez/idmap"
	"github.com/rez-lang/rez/node"
	"github.com/rez-lang/rez/parse"
	"github.com/rez-lang/rez/source"
	"github.com/rez-lang/rez/token"
	"github.com/rez-lang/rez/typeh"
)

// Parse runs the structural block parser over src (named name for
// position reporting) and returns the populated, pre_process'd and
// process'd root Game node. tasks supplies the behaviour-tree task
// catalog the validator checks btree attributes against - the grammar
// has no `@task` block, so the caller owns that catalog the same way it
// owns the engine downstream of this module.
func Parse(name, src string, tasks map[string]*node.TaskDef) (*node.Game, error) {
	ids := idmap.New()
	hier := typeh.New()

	data := &parse.Data{
		Source: source.NewSingleFile(name, src),
		IDs:    ids,
		Hier:   hier,
	}

	c := parse.NewContext(src, data)

	c = parse.Many(statement())(c)
	if !c.Ok() {
		return nil, parseError(name, c.Err())
	}

	var raw []interface{}
	c, raw = c.SliceFrom(c.Mark() - 1)
	stmts := raw[0].([]interface{})

	c = parse.WS()(c)
	c = parse.EOF()(c)

	if !c.Ok() {
		return nil, parseError(name, c.Err())
	}

	game := node.NewGame(ids, hier)
	if tasks != nil {
		game.Tasks = tasks
	}

	for _, s := range stmts {
		if a, ok := s.(node.Attribute); ok {
			game.Attrs[a.Name] = a

			if a.Name == "engine_version" {
				game.EngineVersion = a.Value.String
			}

			continue
		}

		if n, ok := s.(node.Node); ok {
			addToGame(game, n)
		}
	}

	if err := hier.CheckCycles(); err != nil {
		return nil, err
	}

	game.PreProcess(game)
	game.Process(game)

	return game, nil
}

// Compile is Parse followed immediately by validation, the full pipeline
// a CLI or test harness drives end to end.
func Compile(name, src string, tasks map[string]*node.TaskDef) (*node.Game, *node.Validation, error) {
	game, err := Parse(name, src, tasks)
	if err != nil {
		return nil, nil, err
	}

	return game, node.Validate(game), nil
}

func addToGame(g *node.Game, n node.Node) {
	switch v := n.(type) {
	case *node.Item:
		g.Items = append(g.Items, v)
	case *node.Card:
		g.Cards = append(g.Cards, v)
	case *node.Scene:
		g.Scenes = append(g.Scenes, v)
	case *node.Inventory:
		g.Inventories = append(g.Inventories, v)
	case *node.Slot:
		g.Slots = append(g.Slots, v)
	case *node.Group:
		g.Groups = append(g.Groups, v)
	case *node.Asset:
		g.Assets = append(g.Assets, v)
	case *node.Helper:
		g.Helpers = append(g.Helpers, v)
	}
}

func parseError(name string, e *parse.Error) error {
	pos := token.Pos{File: name, Line: e.Line, Col: e.Col}

	return token.NewPosError(pos, e.Message).SetHint(string(e.Kind))
}
