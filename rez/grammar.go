// Package rez wires the primitive parsers, the block schema layer and the
// node model into one document-level grammar, and exposes the compiler's
// public entry point: parse, then pre_process/process, then validate.
package rez

import (
	"github.com/rez-lang/rez/block"
	"github.com/rez-lang/rez/node"
	"github.com/rez-lang/rez/parse"
	"github.com/rez-lang/rez/token"
)

func buildItem(id string, attrs node.AttrMap, pos token.Pos) node.Node {
	return &node.Item{Base: node.NewBase(id, pos, attrs)}
}

func buildCard(id string, attrs node.AttrMap, pos token.Pos) node.Node {
	return &node.Card{Base: node.NewBase(id, pos, attrs)}
}

func buildGroup(id string, attrs node.AttrMap, pos token.Pos) node.Node {
	return &node.Group{Base: node.NewBase(id, pos, attrs)}
}

func buildAsset(id string, attrs node.AttrMap, pos token.Pos) node.Node {
	return &node.Asset{Base: node.NewBase(id, pos, attrs)}
}

func buildSlot(id string, attrs node.AttrMap, pos token.Pos) node.Node {
	return &node.Slot{Base: node.NewBase(id, pos, attrs)}
}

func buildInventory(attrs node.AttrMap, pos token.Pos) node.Node {
	return &node.Inventory{Base: node.NewBase("", pos, attrs)}
}

func buildScene(id string, attrs node.AttrMap, pos token.Pos) node.Node {
	return &node.Scene{Base: node.NewBase(id, pos, attrs)}
}

func buildHelper(attrs node.AttrMap, pos token.Pos) node.Node {
	body := ""
	if a, ok := attrs["body"]; ok {
		body = a.Value.String
	}

	return &node.Helper{Base: node.NewBase("", pos, attrs), Body: body}
}

func addSlotToInventory(parent node.Node, child node.Node) {
	parent.(*node.Inventory).AddSlot(child.(*node.Slot))
}

func addSlotToScene(parent node.Node, child node.Node) {
	parent.(*node.Scene).AddSlot(child.(*node.Slot))
}

// itemBlock: shape 2, required-id - `@item sword { ... }`.
func itemBlock() parse.Parser { return block.RequiredID("item", "item", buildItem) }

// cardBlock: shape 2, required-id.
func cardBlock() parse.Parser { return block.RequiredID("card", "card", buildCard) }

// groupBlock: shape 2, required-id.
func groupBlock() parse.Parser { return block.RequiredID("group", "group", buildGroup) }

// slotBlock: shape 3, optional-attrs id - `@slot main [ { accepts: :weapon } ]`.
func slotBlock() parse.Parser { return block.OptionalAttrsID("slot", "slot", buildSlot) }

// assetBlock: shape 1, auto-id - `@asset { name: "wood_texture" ... }`.
func assetBlock() parse.Parser {
	return block.AutoID("asset", "asset", nameOrGenerated("asset"), buildAsset)
}

// inventoryBlock: shape 4, with-children, no id of its own - owns a set of
// slots declared inline.
func inventoryBlock() parse.Parser {
	return block.WithChildren("inventory", slotBlock(), buildInventory, addSlotToInventory)
}

// sceneBlock: shape 5, id-with-children - owns a set of slots declared
// inline, alongside its own attributes (layout, initial_card, ...).
func sceneBlock() parse.Parser {
	return block.IDWithChildren("scene", "scene", slotBlock(), buildScene, addSlotToScene)
}

// helperBlock: shape 6, delimited text - a verbatim script fragment.
func helperBlock() parse.Parser {
	return block.DelimitedText("helper", "body", buildHelper)
}

// statement matches exactly one top-level construct: any block, the
// @derive statement, or a bare `name: value` attribute of the game itself.
func statement() parse.Parser {
	return parse.Choice(
		itemBlock(),
		cardBlock(),
		groupBlock(),
		slotBlock(),
		assetBlock(),
		inventoryBlock(),
		sceneBlock(),
		helperBlock(),
		block.Derive(),
		block.AttrStatement(),
	)
}
