package node

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/rez-lang/rez/value"
)

// Validator is a function (node, game) -> ok | error(message), matching
// the validator DSL's core shape. nil return means success.
type Validator func(n Node, g *Game) error

// ChainedValidator is a function (attr, node, game) -> ok | error(message),
// invoked only on a builder's local success.
type ChainedValidator func(a Attribute, n Node, g *Game) error

func errf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Present passes iff key is in the node's attributes, then runs chain (if
// given) against that attribute.
func Present(key string, chain ...ChainedValidator) Validator {
	return func(n Node, g *Game) error {
		a, ok := n.AttrMap()[key]
		if !ok {
			return errf("node %q: missing required attribute %q", n.ID(), key)
		}

		return runChain(chain, a, n, g)
	}
}

// IfPresent passes automatically when key is absent; otherwise it runs
// chain.
func IfPresent(key string, chain ...ChainedValidator) Validator {
	return func(n Node, g *Game) error {
		a, ok := n.AttrMap()[key]
		if !ok {
			return nil
		}

		return runChain(chain, a, n, g)
	}
}

// Either passes if v1 passes or v2 passes; otherwise reports both errors.
func Either(v1, v2 Validator) Validator {
	return func(n Node, g *Game) error {
		e1 := v1(n, g)
		if e1 == nil {
			return nil
		}

		e2 := v2(n, g)
		if e2 == nil {
			return nil
		}

		return errf("node %q: neither alternative held: %v; %v", n.ID(), e1, e2)
	}
}

// OneOfPresent passes when at least one of keys is present; if exclusive,
// passes only when exactly one is present.
func OneOfPresent(keys []string, exclusive bool) Validator {
	return func(n Node, g *Game) error {
		var found []string

		for _, k := range keys {
			if _, ok := n.AttrMap()[k]; ok {
				found = append(found, k)
			}
		}

		if len(found) == 0 {
			return errf("node %q: expected one of %s to be present", n.ID(), strings.Join(keys, ", "))
		}

		if exclusive && len(found) > 1 {
			return errf("node %q: expected exactly one of %s, found %s", n.ID(), strings.Join(keys, ", "), strings.Join(found, ", "))
		}

		return nil
	}
}

// OtherAttrsPresent passes when every key in keys is present. It is meant
// to be used as the chain of an IfPresent: "if A is set, B and C are
// required".
func OtherAttrsPresent(keys []string, chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		var missing []string

		for _, k := range keys {
			if _, ok := n.AttrMap()[k]; !ok {
				missing = append(missing, k)
			}
		}

		if len(missing) > 0 {
			return errf("node %q: attribute %q requires %s to be present", n.ID(), a.Name, strings.Join(missing, ", "))
		}

		return runChain(chain, a, n, g)
	}
}

// HasType passes when the attribute's type tag equals t.
func HasType(t value.Type, chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		if a.Value.Type != t {
			return errf("node %q: attribute %q expected type %s, got %s", n.ID(), a.Name, t, a.Value.Type)
		}

		return runChain(chain, a, n, g)
	}
}

// ValueOneOf passes when the attribute's value is one of values (rendered
// form comparison - adequate for scalar types).
func ValueOneOf(values []value.Value, chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		for _, v := range values {
			if v.Render() == a.Value.Render() && v.Type == a.Value.Type {
				return runChain(chain, a, n, g)
			}
		}

		return errf("node %q: attribute %q value %s not among allowed values", n.ID(), a.Name, a.Value.Render())
	}
}

// NotEmpty passes when a collection attribute has at least one entry.
func NotEmpty(chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		if len(a.Value.List) == 0 {
			return errf("node %q: attribute %q must not be empty", n.ID(), a.Name)
		}

		return runChain(chain, a, n, g)
	}
}

// CollOf passes when every element of a collection attribute has a type
// tag in types.
func CollOf(types []value.Type, chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		for _, el := range a.Value.List {
			if !typeIn(el.Type, types) {
				return errf("node %q: attribute %q has element of type %s, expected one of %v", n.ID(), a.Name, el.Type, types)
			}
		}

		return runChain(chain, a, n, g)
	}
}

func typeIn(t value.Type, types []value.Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}

	return false
}

// ListReferences passes when every element of a collection attribute is an
// elem_ref that the game's identifier map resolves to kind.
func ListReferences(kind string, chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		for _, el := range a.Value.List {
			if el.Type != value.TypeElemRef {
				return errf("node %q: attribute %q has non-reference element %s", n.ID(), a.Name, el.Render())
			}

			if !g.IDs.IsKind(el.ElemRef, kind) {
				return errf("node %q: attribute %q references %q which is not a %s", n.ID(), a.Name, el.ElemRef, kind)
			}
		}

		return runChain(chain, a, n, g)
	}
}

// RefersTo passes when a scalar elem_ref attribute resolves in the
// identifier map to kind.
func RefersTo(kind string, chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		if a.Value.Type != value.TypeElemRef {
			return errf("node %q: attribute %q is not a reference", n.ID(), a.Name)
		}

		if !g.IDs.IsKind(a.Value.ElemRef, kind) {
			return errf("node %q: attribute %q references %q which is not a %s", n.ID(), a.Name, a.Value.ElemRef, kind)
		}

		return runChain(chain, a, n, g)
	}
}

// ValuePasses passes when pred(value) holds. desc names the predicate for
// error messages.
func ValuePasses(pred func(value.Value) bool, desc string, chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		if !pred(a.Value) {
			return errf("node %q: attribute %q does not satisfy %s", n.ID(), a.Name, desc)
		}

		return runChain(chain, a, n, g)
	}
}

// ValidateIfValue runs chain only when the attribute's value equals
// testval; otherwise it passes automatically.
func ValidateIfValue(testval value.Value, chain ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		if a.Value.Type != testval.Type || a.Value.Render() != testval.Render() {
			return nil
		}

		return chain(a, n, g)
	}
}

// IsBTree passes when the attribute is a well-formed behaviour tree (type
// btree with a non-nil root) whose nodes validate against the game's task
// declarations (see validateTask).
func IsBTree(chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		if a.Value.Type != value.TypeBTree || a.Value.BTree == nil {
			return errf("node %q: attribute %q is not a behaviour tree", n.ID(), a.Name)
		}

		if err := validateTask(n, g, a.Value.BTree); err != nil {
			return errf("node %q: attribute %q: %v", n.ID(), a.Name, err)
		}

		return runChain(chain, a, n, g)
	}
}

// HasParams passes when a function attribute was called with exactly count
// positional or named arguments.
func HasParams(count int, chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		if a.Value.Type != value.TypeFunc || a.Value.Func == nil {
			return errf("node %q: attribute %q is not a function", n.ID(), a.Name)
		}

		if len(a.Value.Func.Args) != count {
			return errf("node %q: attribute %q expects %d argument(s), got %d", n.ID(), a.Name, count, len(a.Value.Func.Args))
		}

		return runChain(chain, a, n, g)
	}
}

// ExpectsParams passes when a function attribute was called with exactly
// the named parameters in names, in any order.
func ExpectsParams(names []string, chain ...ChainedValidator) ChainedValidator {
	return func(a Attribute, n Node, g *Game) error {
		if a.Value.Type != value.TypeFunc || a.Value.Func == nil {
			return errf("node %q: attribute %q is not a function", n.ID(), a.Name)
		}

		have := map[string]bool{}
		for _, p := range a.Value.Func.Params {
			have[p] = true
		}

		want := map[string]bool{}

		for _, w := range names {
			want[w] = true

			if !have[w] {
				return errf("node %q: attribute %q missing parameter %q", n.ID(), a.Name, w)
			}
		}

		for _, p := range a.Value.Func.Params {
			if !want[p] {
				return errf("node %q: attribute %q has unexpected parameter %q", n.ID(), a.Name, p)
			}
		}

		return runChain(chain, a, n, g)
	}
}

// NodePasses is a free-form validator over (node, game).
func NodePasses(fn func(Node, *Game) error) Validator {
	return func(n Node, g *Game) error {
		return fn(n, g)
	}
}

func runChain(chain []ChainedValidator, a Attribute, n Node, g *Game) error {
	if len(chain) == 0 {
		return nil
	}

	return chain[0](a, n, g)
}

func isValidSemver(s string) bool {
	v := s
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	return semver.IsValid(v)
}
