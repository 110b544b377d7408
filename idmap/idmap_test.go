package idmap

import (
	"testing"

	"github.com/rez-lang/rez/token"
)

func TestRegisterAndResolve(t *testing.T) {
	m := New()
	m.Register("sword", "item", token.Pos{File: "a.rez", Line: 1, Col: 1})

	e, ok := m.Resolve("sword")
	if !ok {
		t.Fatal("expected sword to resolve")
	}

	if e.Kind != "item" || e.Pos.Line != 1 {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestRegisterCollisionNewestFirst(t *testing.T) {
	m := New()
	m.Register("a", "item", token.Pos{Line: 1})
	m.Register("a", "item", token.Pos{Line: 5})

	entries, ok := m.Lookup("a")
	if !ok {
		t.Fatal("expected a to be registered")
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Pos.Line != 5 {
		t.Fatalf("expected the newest registration first, got line %d", entries[0].Pos.Line)
	}

	if entries[1].Pos.Line != 1 {
		t.Fatalf("expected the oldest registration second, got line %d", entries[1].Pos.Line)
	}
}

func TestCollisions(t *testing.T) {
	m := New()
	m.Register("a", "item", token.Pos{Line: 1})
	m.Register("b", "item", token.Pos{Line: 2})
	m.Register("a", "item", token.Pos{Line: 3})

	got := m.Collisions()
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected only %q to collide, got %v", "a", got)
	}
}

func TestIsKind(t *testing.T) {
	m := New()
	m.Register("sword", "item", token.Pos{Line: 1})

	if !m.IsKind("sword", "item") {
		t.Fatal("expected sword to be an item")
	}

	if m.IsKind("sword", "card") {
		t.Fatal("did not expect sword to be a card")
	}

	if m.IsKind("missing", "item") {
		t.Fatal("did not expect an unregistered id to be any kind")
	}
}

func TestLookupMissing(t *testing.T) {
	m := New()

	if _, ok := m.Lookup("nope"); ok {
		t.Fatal("expected lookup of an unregistered id to fail")
	}

	if _, ok := m.Resolve("nope"); ok {
		t.Fatal("expected resolve of an unregistered id to fail")
	}
}
