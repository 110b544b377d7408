package parse

import "testing"

func newTestContext(src string) Context {
	return NewContext(src, &Data{})
}

func TestSequencePushesOneFlattenedValue(t *testing.T) {
	c := newTestContext("ab")
	c = Sequence(SeqOpts{}, Literal("a"), Literal("b"))(c)

	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}

	var vals []interface{}
	c, vals = c.SliceFrom(c.Mark() - 1)

	children := vals[0].([]interface{})
	if len(children) != 2 || children[0] != "a" || children[1] != "b" {
		t.Fatalf("unexpected children: %v", children)
	}
}

func TestSequenceBacktracksBeforeCommit(t *testing.T) {
	c := newTestContext("xy")
	c = Sequence(SeqOpts{}, Literal("a"), Literal("b"))(c)

	if c.Ok() {
		t.Fatal("expected failure")
	}

	if c.Err().Fatal() {
		t.Fatal("expected a backtrackable parse error before any Commit()")
	}
}

func TestSequenceBlockNotMatchedAfterCommit(t *testing.T) {
	c := newTestContext("ax")
	c = Sequence(SeqOpts{}, Literal("a"), Commit(), Literal("b"))(c)

	if c.Ok() {
		t.Fatal("expected failure")
	}

	if !c.Err().Fatal() {
		t.Fatal("expected a non-backtrackable error after Commit()")
	}

	if c.Err().Kind != ErrBlockNotMatched {
		t.Fatalf("expected ErrBlockNotMatched, got %s", c.Err().Kind)
	}
}

func TestChoiceTriesAlternatives(t *testing.T) {
	c := newTestContext("b")
	c = Choice(Literal("a"), Literal("b"))(c)

	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}
}

func TestChoicePropagatesFatalError(t *testing.T) {
	c := newTestContext("ax")
	c = Choice(
		Sequence(SeqOpts{}, Literal("a"), Commit(), Literal("b")),
		Literal("ax"),
	)(c)

	if c.Ok() {
		t.Fatal("expected failure")
	}

	if !c.Err().Fatal() {
		t.Fatal("expected the committed failure to propagate instead of trying the second alternative")
	}
}

func TestManyPushesOneFlattenedList(t *testing.T) {
	c := newTestContext("aaa")
	c = Many(Literal("a"))(c)

	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}

	var vals []interface{}
	c, vals = c.SliceFrom(c.Mark() - 1)

	items := vals[0].([]interface{})
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
}

func TestManyZeroIterationsSucceeds(t *testing.T) {
	c := newTestContext("b")
	c = Many(Literal("a"))(c)

	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}

	var vals []interface{}
	c, vals = c.SliceFrom(c.Mark() - 1)

	items := vals[0].([]interface{})
	if len(items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(items))
	}
}

func TestOptionalBacktracksCleanly(t *testing.T) {
	c := newTestContext("b")
	before := c.Mark()

	c = Optional(Literal("a"))(c)
	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}

	if c.Mark() != before {
		t.Fatal("expected Optional to push nothing on a backtrackable failure")
	}
}

func TestIgnoreDropsPushedValue(t *testing.T) {
	c := newTestContext("a")
	before := c.Mark()

	c = Ignore(Literal("a"))(c)
	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}

	if c.Mark() != before {
		t.Fatal("expected Ignore to discard the pushed value")
	}
}

func TestMapTransformsPushedValue(t *testing.T) {
	c := newTestContext("a")
	c = Map(Literal("a"), func(v interface{}) interface{} {
		return v.(string) + "!"
	})(c)

	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}

	var vals []interface{}
	c, vals = c.SliceFrom(c.Mark() - 1)

	if vals[0] != "a!" {
		t.Fatalf("got %v, want a!", vals[0])
	}
}
