package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSSMinification(t *testing.T) {
	m := newMinifier()
	input := `
		body {
			color: #fff;
			margin: 0  ;
		}
	`
	got, err := m.String("text/css", input)
	if err != nil {
		t.Fatalf("CSS minification failed: %v", err)
	}
	if want := `body{color:#fff;margin:0}`; got != want {
		t.Errorf("CSS minification mismatch:\nGot:      %q\nExpected: %q", got, want)
	}
}

func TestHTMLMinification_KeepsTemplateActions(t *testing.T) {
	m := newMinifier()
	input := `{{define "score-content"}}
<h2>Score:   {{.state.Score}}</h2>
{{with .previousWords}}
<ul>
    {{range .}}<li>{{.Word}} - {{formatScore .Score}}</li>{{end}}
</ul>
{{end}}
{{end}}`
	got, err := m.String("text/html", input)
	if err != nil {
		t.Fatalf("HTML minification failed: %v", err)
	}
	for _, action := range []string{`{{define "score-content"}}`, "{{.state.Score}}", "{{formatScore .Score}}", "{{range .}}", "{{end}}"} {
		if !strings.Contains(got, action) {
			t.Errorf("minified template lost %q:\n%s", action, got)
		}
	}
	if len(got) >= len(input) {
		t.Errorf("HTML was not reduced: %d >= %d bytes", len(got), len(input))
	}
}

func TestMinifyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "dist", "static")

	files := map[string]string{
		"css/style.css":   "body {\n  margin: 0 ;\n}\n",
		"fonts/font.woff": "FONTDATA",
	}
	for name, content := range files {
		path := filepath.Join(src, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := minifyTree(newMinifier(), src, dst); err != nil {
		t.Fatalf("minifyTree failed: %v", err)
	}

	css, err := os.ReadFile(filepath.Join(dst, "css/style.css"))
	if err != nil {
		t.Fatalf("minified CSS missing: %v", err)
	}
	if string(css) != "body{margin:0}" {
		t.Errorf("minified CSS = %q", css)
	}

	font, err := os.ReadFile(filepath.Join(dst, "fonts/font.woff"))
	if err != nil {
		t.Fatalf("copied font missing: %v", err)
	}
	if string(font) != "FONTDATA" {
		t.Errorf("font was modified: %q", font)
	}
}

func TestMinifyShippedTemplates(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "templates")
	if err := minifyTree(newMinifier(), "../../templates", dst); err != nil {
		t.Fatalf("minifyTree on templates failed: %v", err)
	}
	out, err := os.ReadFile(filepath.Join(dst, "score-content.html"))
	if err != nil {
		t.Fatalf("minified score-content.html missing: %v", err)
	}
	if !strings.Contains(string(out), `{{define "score-content"}}`) {
		t.Errorf("minified score-content.html lost its define action")
	}
}
