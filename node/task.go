package node

import (
	"strings"

	"github.com/rez-lang/rez/value"
)

// TaskDef is a behaviour-tree task declaration: the id a btree node's
// TaskID resolves against, its child-count bounds, and the option keys it
// requires to be present.
type TaskDef struct {
	Base

	MinChildren int
	MaxChildren int // <0 means unbounded
	Options     []string
}

func (t *TaskDef) NodeType() string          { return "task" }
func (t *TaskDef) PreProcess(g *Game)        {}
func (t *TaskDef) Process(g *Game)           {}
func (t *TaskDef) Children() []Node          { return nil }
func (t *TaskDef) Validators() []Validator   { return nil }

// validateTask recursively validates a behaviour-tree node against the
// game's task declarations, per the five-step procedure: look up the task,
// check child-count bounds, check required options, recurse into children,
// and concatenate every child error into one message.
func validateTask(n Node, g *Game, tree *value.Node) error {
	def, ok := g.Tasks[tree.TaskID]
	if !ok {
		return errf("unknown task %q", tree.TaskID)
	}

	if def.MinChildren >= 0 && len(tree.Children) < def.MinChildren {
		return errf("task %q requires at least %d child(ren), got %d", tree.TaskID, def.MinChildren, len(tree.Children))
	}

	if def.MaxChildren >= 0 && len(tree.Children) > def.MaxChildren {
		return errf("task %q allows at most %d child(ren), got %d", tree.TaskID, def.MaxChildren, len(tree.Children))
	}

	for _, want := range def.Options {
		if _, ok := tree.Options[want]; !ok {
			return errf("task %q missing required option %q", tree.TaskID, want)
		}
	}

	var childErrs []string

	for i := range tree.Children {
		if err := validateTask(n, g, &tree.Children[i]); err != nil {
			childErrs = append(childErrs, err.Error())
		}
	}

	if len(childErrs) > 0 {
		return errf("task %q: %s", tree.TaskID, strings.Join(childErrs, ", "))
	}

	return nil
}
