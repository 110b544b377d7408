package typeh

import (
	"reflect"
	"sort"
	"testing"
)

func TestIsATransitive(t *testing.T) {
	h := New()
	h.Derive("sword", "weapon")
	h.Derive("weapon", "item")

	if !h.IsA("sword", "weapon") {
		t.Fatal("expected sword is_a weapon")
	}

	if !h.IsA("sword", "item") {
		t.Fatal("expected sword is_a item transitively")
	}

	if !h.IsA("sword", "sword") {
		t.Fatal("expected a tag to be is_a itself")
	}

	if h.IsA("item", "sword") {
		t.Fatal("did not expect the derivation to run backwards")
	}
}

func TestFanOut(t *testing.T) {
	h := New()
	h.Derive("sword", "weapon")
	h.Derive("weapon", "item")
	h.Derive("weapon", "equippable")

	got := h.FanOut("sword")
	sort.Strings(got)

	want := []string{"equippable", "item", "weapon"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFanOutExcludesSelf(t *testing.T) {
	h := New()
	h.Derive("sword", "weapon")

	for _, tag := range h.FanOut("sword") {
		if tag == "sword" {
			t.Fatal("FanOut should not include the tag itself")
		}
	}
}

func TestCheckCyclesDetectsCycle(t *testing.T) {
	h := New()
	h.Derive("a", "b")
	h.Derive("b", "c")
	h.Derive("c", "a")

	if err := h.CheckCycles(); err == nil {
		t.Fatal("expected a cycle to be detected")
	}
}

func TestCheckCyclesAcceptsDAG(t *testing.T) {
	h := New()
	h.Derive("sword", "weapon")
	h.Derive("weapon", "item")
	h.Derive("shield", "item")

	if err := h.CheckCycles(); err != nil {
		t.Fatalf("did not expect an error for an acyclic graph: %v", err)
	}
}

func TestDeriveDuplicateEdgeIsNoOp(t *testing.T) {
	h := New()
	h.Derive("sword", "weapon")
	h.Derive("sword", "weapon")

	if got := h.FanOut("sword"); len(got) != 1 {
		t.Fatalf("expected a duplicate edge to not be added twice, got %v", got)
	}
}
