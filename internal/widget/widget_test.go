package widget

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadDescriptor(t *testing.T) {
	d, err := LoadDescriptor()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.URI != "ui://widget/pixabay-search.html" {
		t.Errorf("URI = %q", d.URI)
	}
	if d.Title == "" {
		t.Error("Title should not be empty")
	}
	if len(d.CSP.ResourceDomains) == 0 {
		t.Error("CSP resource domains should not be empty")
	}
}

func TestBuildHTML(t *testing.T) {
	t.Run("bundled assets", func(t *testing.T) {
		html, err := BuildHTML(Assets())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(html, `<div id="pixabay-root">`) {
			t.Error("document should contain the widget mount point")
		}
		if !strings.Contains(html, "<script type=\"module\">") {
			t.Error("document should embed the script")
		}
		if !strings.Contains(html, "<style>") {
			t.Error("document should embed the stylesheet")
		}
	})

	t.Run("missing script is fatal", func(t *testing.T) {
		bundle := fstest.MapFS{
			"assets/pixabay-search.css": &fstest.MapFile{Data: []byte("body {}")},
		}
		if _, err := BuildHTML(bundle); err == nil {
			t.Fatal("expected error for missing script")
		}
	})

	t.Run("missing stylesheet is tolerated", func(t *testing.T) {
		bundle := fstest.MapFS{
			"assets/pixabay-search.js": &fstest.MapFile{Data: []byte("console.log(1);")},
		}
		html, err := BuildHTML(bundle)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(html, "<style>") {
			t.Error("document should not contain a style block without a stylesheet")
		}
		if !strings.Contains(html, "console.log(1);") {
			t.Error("document should embed the script body")
		}
	})
}
