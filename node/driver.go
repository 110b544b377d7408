package node

import "fmt"

// Finding pairs a validation error with the node it was raised against.
type Finding struct {
	Node    Node
	Message string
}

// Validation is the validation driver's output: every error found, and a
// description of every node visited, in traversal order.
type Validation struct {
	Game      *Game
	Errors    []Finding
	Validated []string
}

// OK reports whether validation found no errors.
func (v *Validation) OK() bool { return len(v.Errors) == 0 }

// Validate walks the game tree from the root, running validate_specification
// then validate_children at every node, in that order. Error order within a
// node follows declared validator order; children appear after their
// parent; siblings appear in Children() order. This is the one entry point
// downstream consumers call once process() has run.
func Validate(g *Game) *Validation {
	v := &Validation{Game: g}
	validateNode(g, g, v)

	return v
}

func validateNode(n Node, g *Game, v *Validation) {
	validateSpecification(n, g, v)
	validateChildren(n, g, v)
	v.Validated = append(v.Validated, describe(n))
}

func validateSpecification(n Node, g *Game, v *Validation) {
	for _, validator := range n.Validators() {
		if err := validator(n, g); err != nil {
			v.Errors = append(v.Errors, Finding{Node: n, Message: err.Error()})
		}
	}
}

func validateChildren(n Node, g *Game, v *Validation) {
	for _, c := range n.Children() {
		validateNode(c, g, v)
	}
}

func describe(n Node) string {
	if n.ID() == "" {
		return n.NodeType()
	}

	return fmt.Sprintf("%s:%s", n.NodeType(), n.ID())
}
