package inkwell

import (
	"strings"
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		want     string
	}{
		{"bare base", "https://example.com", nil, "https://example.com/"},
		{"directory path", "https://example.com", []string{"blog", "my-post"}, "https://example.com/blog/my-post/"},
		{"file path keeps no slash", "https://example.com", []string{"sitemap.xml"}, "https://example.com/sitemap.xml"},
		{"base with path", "https://example.com/sub", []string{"tags", "go"}, "https://example.com/sub/tags/go/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildURL(tt.base, tt.segments...); got != tt.want {
				t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
			}
		})
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"go", "", "  ", "web"})
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("FilterEmpty = %v, want [go web]", got)
	}
}

func TestFilterRelatedPosts(t *testing.T) {
	current := Post{Slug: "a", Tags: []string{"go", "web"}}
	posts := []Post{
		{Slug: "a", Tags: []string{"go"}},
		{Slug: "b", Tags: []string{"go"}},
		{Slug: "c", Tags: []string{"rust"}},
		{Slug: "d", Tags: []string{"web", "go"}},
	}
	related := FilterRelatedPosts(current, posts)
	if len(related) != 2 {
		t.Fatalf("got %d related posts, want 2", len(related))
	}
	if related[0].Slug != "b" || related[1].Slug != "d" {
		t.Errorf("related = [%s %s], want [b d]", related[0].Slug, related[1].Slug)
	}
	for _, p := range related {
		if p.Slug == current.Slug {
			t.Error("a post must not be related to itself")
		}
	}
}

func TestRobotsTxt(t *testing.T) {
	cfg := SiteConfig{URL: "https://example.com"}
	out := RobotsTxt(cfg)
	for _, want := range []string{
		"User-agent: *",
		"Disallow: /admin/",
		"Sitemap: https://example.com/sitemap.xml",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("robots.txt missing %q in %q", want, out)
		}
	}
}
