package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateCreatesSite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-blog")

	if err := Generate(dir, Data{Author: "Erin Writer"}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	cfg, err := os.ReadFile(filepath.Join(dir, "inkwell.yml"))
	if err != nil {
		t.Fatalf("inkwell.yml missing: %v", err)
	}
	if !strings.Contains(string(cfg), `name: "My Blog"`) {
		t.Errorf("config should carry the derived site name, got:\n%s", cfg)
	}
	if !strings.Contains(string(cfg), `author: "Erin Writer"`) {
		t.Errorf("config should carry the author, got:\n%s", cfg)
	}

	post, err := os.ReadFile(filepath.Join(dir, "content", "hello-world.md"))
	if err != nil {
		t.Fatalf("starter post missing: %v", err)
	}
	if !strings.Contains(string(post), "title: Hello, world") {
		t.Error("starter post should have front matter")
	}
	if strings.Contains(string(post), "{{") {
		t.Error("starter post should have no unexpanded template syntax")
	}

	if _, err := os.Stat(filepath.Join(dir, ".gitignore")); err != nil {
		t.Errorf(".gitignore missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "public", "uploads", ".gitkeep")); err != nil {
		t.Errorf("uploads dir missing: %v", err)
	}
}

func TestGenerateRefusesExistingDir(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(dir, Data{}); err == nil {
		t.Fatal("expected error for existing directory")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"my-blog", "My Blog"},
		{"blog", "Blog"},
		{"a-b-c", "A B C"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
