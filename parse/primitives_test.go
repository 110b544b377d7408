package parse

import "testing"

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    string
		wantErr bool
	}{
		{name: "simple", src: "sword", want: "sword"},
		{name: "with underscore", src: "_hidden_item", want: "_hidden_item"},
		{name: "with digits", src: "item2", want: "item2"},
		{name: "leading whitespace", src: "  sword", want: "sword"},
		{name: "leading digit fails", src: "2sword", wantErr: true},
		{name: "empty fails", src: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(tt.src)
			c = Identifier()(c)

			if tt.wantErr {
				if c.Ok() {
					t.Fatal("expected an error")
				}

				return
			}

			if !c.Ok() {
				t.Fatalf("unexpected error: %v", c.Err())
			}

			var vals []interface{}
			c, vals = c.SliceFrom(c.Mark() - 1)

			if vals[0] != tt.want {
				t.Fatalf("got %q, want %q", vals[0], tt.want)
			}
		})
	}
}

func TestCharsUntil(t *testing.T) {
	c := newTestContext("hello end rest")
	c = CharsUntil("end")(c)

	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}

	var vals []interface{}
	c, vals = c.SliceFrom(c.Mark() - 1)

	if vals[0] != "hello " {
		t.Fatalf("got %q, want %q", vals[0], "hello ")
	}
}

func TestCharsUntilSkipsSentinelEmbeddedInLongerWord(t *testing.T) {
	c := newTestContext("print(append(a, b)) end")
	c = CharsUntil("end")(c)

	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}

	var vals []interface{}
	c, vals = c.SliceFrom(c.Mark() - 1)

	want := "print(append(a, b)) "
	if vals[0] != want {
		t.Fatalf("got %q, want %q", vals[0], want)
	}
}

func TestCharsUntilMissingSentinelFails(t *testing.T) {
	c := newTestContext("hello")
	c = CharsUntil("end")(c)

	if c.Ok() {
		t.Fatal("expected an error when the sentinel never occurs")
	}
}

func TestILiteralSkipsInlineWhitespace(t *testing.T) {
	c := newTestContext("   @item")
	c = ILiteral("@item")(c)

	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}
}

func TestEOF(t *testing.T) {
	c := newTestContext("")
	c = EOF()(c)

	if !c.Ok() {
		t.Fatalf("unexpected error: %v", c.Err())
	}

	c2 := newTestContext("x")
	c2 = EOF()(c2)

	if c2.Ok() {
		t.Fatal("expected EOF to fail with remaining input")
	}
}
