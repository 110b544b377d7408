package value

import (
	"testing"

	"github.com/rez-lang/rez/parse"
)

func parseLiteral(t *testing.T, src string) Value {
	t.Helper()

	c := parse.NewContext(src, &parse.Data{})
	c = Literal()(c)

	if !c.Ok() {
		t.Fatalf("unexpected error parsing %q: %v", src, c.Err())
	}

	var vals []interface{}
	c, vals = c.SliceFrom(c.Mark() - 1)

	return vals[0].(Value)
}

func TestLiteralScalars(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Value
	}{
		{name: "number", src: "42", want: Number(42)},
		{name: "negative number", src: "-3.5", want: Number(-3.5)},
		{name: "string", src: `"hello"`, want: String("hello")},
		{name: "escaped string", src: `"a\"b"`, want: String(`a"b`)},
		{name: "boolean true", src: "true", want: Boolean(true)},
		{name: "boolean false", src: "false", want: Boolean(false)},
		{name: "keyword", src: ":weapon", want: Keyword("weapon")},
		{name: "ref", src: "#intro", want: ElemRef("intro")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLiteral(t, tt.src)

			if got.Type != tt.want.Type || got.Render() != tt.want.Render() {
				t.Fatalf("got %v (%s), want %v (%s)", got, got.Render(), tt.want, tt.want.Render())
			}
		})
	}
}

func TestLiteralList(t *testing.T) {
	got := parseLiteral(t, "[:a :b 3]")

	if got.Type != TypeList {
		t.Fatalf("expected a list, got %s", got.Type)
	}

	if len(got.List) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(got.List))
	}

	if got.List[0].Keyword != "a" || got.List[1].Keyword != "b" || got.List[2].Number != 3 {
		t.Fatalf("unexpected list contents: %v", got.List)
	}
}

func TestLiteralSet(t *testing.T) {
	got := parseLiteral(t, `#{:a :b}`)

	if got.Type != TypeSet {
		t.Fatalf("expected a set, got %s", got.Type)
	}

	if len(got.List) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got.List))
	}
}

func TestLiteralFuncPositional(t *testing.T) {
	got := parseLiteral(t, `roll(2, 6)`)

	if got.Type != TypeFunc {
		t.Fatalf("expected a function, got %s", got.Type)
	}

	if got.Func.Name != "roll" || len(got.Func.Args) != 2 {
		t.Fatalf("unexpected func value: %+v", got.Func)
	}

	if len(got.Func.Params) != 0 {
		t.Fatalf("expected no named params for a positional call, got %v", got.Func.Params)
	}
}

func TestLiteralFuncNamed(t *testing.T) {
	got := parseLiteral(t, `roll(dice: 2, sides: 6)`)

	if got.Func.Name != "roll" || len(got.Func.Args) != 2 {
		t.Fatalf("unexpected func value: %+v", got.Func)
	}

	if len(got.Func.Params) != 2 || got.Func.Params[0] != "dice" || got.Func.Params[1] != "sides" {
		t.Fatalf("unexpected params: %v", got.Func.Params)
	}
}

func TestLiteralBTree(t *testing.T) {
	got := parseLiteral(t, `sequence<> { wait<duration: 3> attack<target: #goblin> }`)

	if got.Type != TypeBTree {
		t.Fatalf("expected a btree, got %s", got.Type)
	}

	if got.BTree.TaskID != "sequence" {
		t.Fatalf("got task id %q, want sequence", got.BTree.TaskID)
	}

	if len(got.BTree.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(got.BTree.Children))
	}

	if got.BTree.Children[0].TaskID != "wait" || got.BTree.Children[0].Options["duration"].Number != 3 {
		t.Fatalf("unexpected first child: %+v", got.BTree.Children[0])
	}

	if got.BTree.Children[1].TaskID != "attack" || got.BTree.Children[1].Options["target"].ElemRef != "goblin" {
		t.Fatalf("unexpected second child: %+v", got.BTree.Children[1])
	}
}
