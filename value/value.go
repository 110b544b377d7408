// Package value implements the attribute-value literal layer: the
// tagged (type, payload) representation every attribute's value carries,
// and the minimal concrete tokenizer that recognizes number, string,
// boolean, keyword, list, set, function and behaviour-tree literals from
// source text. A real deployment of the block parser could swap this
// layer for a richer one without the block schema or validator layers
// noticing, since both only ever see the Type/Value shape below.
package value

import "fmt"

// Type is the closed set of attribute value kinds.
type Type string

const (
	TypeNumber  Type = "number"
	TypeString  Type = "string"
	TypeBoolean Type = "boolean"
	TypeKeyword Type = "keyword"
	TypeSet     Type = "set"
	TypeList    Type = "list"
	TypeFunc    Type = "function"
	TypeElemRef Type = "elem_ref"
	TypeBTree   Type = "btree"
)

// Value is a tagged (type, payload) pair. Collection payloads hold more
// Values, so collections may be heterogeneously tagged.
type Value struct {
	Type    Type
	Number  float64
	String  string
	Boolean bool
	Keyword string
	ElemRef string
	List    []Value
	Func    *Func
	BTree   *Node
}

// Func is a function-typed attribute value: a name and either a positional
// or named argument list. Params is empty for positional calls and holds
// one name per Args entry, in order, for named calls; has_params checks
// len(Args), expects_params checks Params.
type Func struct {
	Name   string
	Params []string
	Args   []Value
}

// Node is one node of a behaviour tree: a task reference, its option
// bindings, and its children.
type Node struct {
	TaskID   string
	Options  map[string]Value
	Children []Node
}

func Number(n float64) Value  { return Value{Type: TypeNumber, Number: n} }
func String(s string) Value   { return Value{Type: TypeString, String: s} }
func Boolean(b bool) Value    { return Value{Type: TypeBoolean, Boolean: b} }
func Keyword(k string) Value  { return Value{Type: TypeKeyword, Keyword: k} }
func ElemRef(id string) Value { return Value{Type: TypeElemRef, ElemRef: id} }
func List(vs []Value) Value   { return Value{Type: TypeList, List: vs} }
func Set(vs []Value) Value    { return Value{Type: TypeSet, List: vs} }
func FuncVal(f *Func) Value   { return Value{Type: TypeFunc, Func: f} }
func BTreeVal(n *Node) Value  { return Value{Type: TypeBTree, BTree: n} }

// Render renders a value for error messages.
func (v Value) Render() string {
	switch v.Type {
	case TypeNumber:
		return fmt.Sprintf("%v", v.Number)
	case TypeString:
		return fmt.Sprintf("%q", v.String)
	case TypeBoolean:
		return fmt.Sprintf("%v", v.Boolean)
	case TypeKeyword:
		return ":" + v.Keyword
	case TypeElemRef:
		return "#" + v.ElemRef
	case TypeList, TypeSet:
		return fmt.Sprintf("%v element(s)", len(v.List))
	case TypeFunc:
		if v.Func != nil {
			return v.Func.Name + "(...)"
		}

		return "function"
	case TypeBTree:
		return "btree"
	default:
		return "<unknown>"
	}
}
