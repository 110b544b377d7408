package token

import (
	"strings"
	"testing"
)

func TestPosString(t *testing.T) {
	p := Pos{File: "room.rez", Line: 3, Col: 5}

	if got := p.String(); got != "room.rez:3:5" {
		t.Fatalf("got %q, want %q", got, "room.rez:3:5")
	}
}

func TestPosErrorErrorUsesFirstDetail(t *testing.T) {
	err := NewPosError(Pos{File: "room.rez", Line: 1, Col: 1}, "unexpected token")

	if got := err.Error(); got != "unexpected token" {
		t.Fatalf("got %q, want %q", got, "unexpected token")
	}
}

func TestPosErrorErrorIncludesCause(t *testing.T) {
	err := NewPosError(Pos{File: "room.rez", Line: 1, Col: 1}, "parse failed").
		SetCause(errOops)

	want := "parse failed: oops"
	if got := err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type stubLines struct{}

func (stubLines) Line(file string, line int) string {
	if file == "room.rez" && line == 2 {
		return `@item sword { type: :weapon }`
	}

	return ""
}

func TestPosErrorExplainPointsAtTheColumn(t *testing.T) {
	err := NewPosError(Pos{File: "room.rez", Line: 2, Col: 15}, "missing required attribute").
		SetHint("block_not_matched").
		SetLines(stubLines{})

	out := err.Explain()

	if !containsAll(out, "room.rez:2:15", "missing required attribute", "hint: block_not_matched", "^~~~") {
		t.Fatalf("explain output missing expected parts: %s", out)
	}
}

func TestPosErrorExplainMultipleDetailsShareIndentButNotRepeatedFileHeader(t *testing.T) {
	err := NewPosError(
		Pos{File: "room.rez", Line: 2, Col: 15},
		"defined here",
		NewErrDetail(Pos{File: "room.rez", Line: 4, Col: 3}, "conflicts with this"),
	)

	out := err.Explain()

	if !containsAll(out, "defined here", "conflicts with this", "...") {
		t.Fatalf("explain output missing expected parts: %s", out)
	}

	if got := strings.Count(out, "room.rez:"); got != 1 {
		t.Fatalf("expected the file header once for two details in the same file, got %d: %s", got, out)
	}
}

var errOops = oopsError{}

type oopsError struct{}

func (oopsError) Error() string { return "oops" }

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}

	return true
}
