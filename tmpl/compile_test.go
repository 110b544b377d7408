package tmpl

import "testing"

func TestCompileAndRender(t *testing.T) {
	e := Compile("card:intro", "article", "rez-card", "Hello, {{.Name}}!")
	if e.SourceErr != nil {
		t.Fatalf("unexpected compile error: %v", e.SourceErr)
	}

	got, err := e.Render(struct{ Name string }{Name: "Maya"})
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}

	want := `<article class="rez-card">Hello, Maya!</article>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileInvalidTemplateRecordsSourceErr(t *testing.T) {
	e := Compile("card:broken", "article", "rez-card", "{{.Name")

	if e.SourceErr == nil {
		t.Fatal("expected an unterminated action to be recorded as SourceErr")
	}

	if _, err := e.Render(nil); err == nil {
		t.Fatal("expected Render to surface the compile error rather than panic")
	}
}

func TestRenderWithoutClass(t *testing.T) {
	e := Compile("scene:empty", "section", "", "plain text")
	if e.SourceErr != nil {
		t.Fatalf("unexpected compile error: %v", e.SourceErr)
	}

	got, err := e.Render(nil)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}

	want := "<section>plain text</section>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
