package inkwell

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func setupBuild(t *testing.T) (SiteConfig, *Builder) {
	t.Helper()
	root := t.TempDir()
	cfg := SiteConfig{
		Name:        "Test Site",
		URL:         "https://example.com",
		Description: "A site under test.",
		Author:      "Erin Writer",
		Social:      Social{GitHub: "erock"},
		ContentDir:  setupContentDir(t),
		StaticDir:   filepath.Join(root, "public"),
		OutputDir:   filepath.Join(root, "dist"),
		CacheDir:    filepath.Join(root, ".inkwell"),
	}
	cfg.setDefaults()
	return cfg, NewBuilder(cfg, zerolog.Nop())
}

func readOutput(t *testing.T, cfg SiteConfig, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func TestBuildWritesAllArtifacts(t *testing.T) {
	cfg, b := setupBuild(t)

	result, err := b.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if result.Posts != 2 {
		t.Errorf("Posts = %d, want 2 (draft excluded)", result.Posts)
	}

	for _, rel := range []string{
		"index.html",
		"blog/first-post/index.html",
		"blog/second-post/index.html",
		"tags/go/index.html",
		"tags/testing/index.html",
		"feed.xml",
		"sitemap.xml",
		"robots.txt",
		"og/home.png",
		"og/first-post.png",
		"og/second-post.png",
		"assets/theme.css",
		"favicon.svg",
	} {
		if !fileExists(filepath.Join(cfg.OutputDir, rel)) {
			t.Errorf("missing artifact %s", rel)
		}
	}
}

func TestBuildPageContent(t *testing.T) {
	cfg, b := setupBuild(t)
	if _, err := b.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	home := readOutput(t, cfg, "index.html")
	if !strings.Contains(home, "Written by Erin Writer") {
		t.Error("home page should carry the author line")
	}
	if !strings.Contains(home, `href="https://github.com/erock"`) {
		t.Error("home page should link the github profile as prefix+handle")
	}
	if !strings.Contains(home, `datetime="2024-01-15"`) {
		t.Error("home page should render the authored date string verbatim")
	}

	post := readOutput(t, cfg, "blog/first-post/index.html")
	if !strings.Contains(post, "<strong>world</strong>") {
		t.Error("post page should contain rendered markdown")
	}
	if !strings.Contains(post, `og/first-post.png`) {
		t.Error("post page should reference its og image")
	}

	robots := readOutput(t, cfg, "robots.txt")
	if !strings.Contains(robots, "Disallow: /admin/") {
		t.Error("robots.txt should exclude the dashboard")
	}
	if !strings.Contains(robots, "Sitemap: https://example.com/sitemap.xml") {
		t.Errorf("robots.txt should advertise the sitemap, got %q", robots)
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	cfg, b := setupBuild(t)

	first, err := b.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if first.Written == 0 {
		t.Fatal("first build should write artifacts")
	}
	homeBefore := readOutput(t, cfg, "index.html")
	feedBefore := readOutput(t, cfg, "feed.xml")

	second, err := b.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}
	if second.Written != 0 {
		t.Errorf("second build wrote %d artifacts, want 0", second.Written)
	}
	if second.Skipped != first.Written {
		t.Errorf("second build skipped %d, want %d", second.Skipped, first.Written)
	}

	if readOutput(t, cfg, "index.html") != homeBefore {
		t.Error("rebuild changed index.html")
	}
	if readOutput(t, cfg, "feed.xml") != feedBefore {
		t.Error("rebuild changed feed.xml; feed timestamps must come from post dates")
	}
}

func TestBuildForceRewrites(t *testing.T) {
	_, b := setupBuild(t)

	first, err := b.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	forced, err := b.Build(context.Background(), BuildOptions{Force: true})
	if err != nil {
		t.Fatal(err)
	}
	if forced.Written != first.Written {
		t.Errorf("forced build wrote %d, want %d", forced.Written, first.Written)
	}
}

func TestBuildPrunesRemovedPosts(t *testing.T) {
	cfg, b := setupBuild(t)

	if _, err := b.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(cfg.ContentDir, "first.md")); err != nil {
		t.Fatal(err)
	}

	result, err := b.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if result.Pruned == 0 {
		t.Fatal("expected stale artifacts to be pruned")
	}
	if fileExists(filepath.Join(cfg.OutputDir, "blog/first-post/index.html")) {
		t.Error("removed post's page should be pruned from the output")
	}
	if fileExists(filepath.Join(cfg.OutputDir, "og/first-post.png")) {
		t.Error("removed post's og image should be pruned from the output")
	}
}

func TestBuildIncludesDraftsWhenAsked(t *testing.T) {
	cfg, b := setupBuild(t)

	if _, err := b.Build(context.Background(), BuildOptions{IncludeDrafts: true}); err != nil {
		t.Fatal(err)
	}
	if !fileExists(filepath.Join(cfg.OutputDir, "blog/work-in-progress/index.html")) {
		t.Error("draft page should be rendered with IncludeDrafts")
	}
}

func TestBuildStaticThemeOverrideWins(t *testing.T) {
	cfg, b := setupBuild(t)
	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.StaticDir, "theme.css"), []byte("body{color:hotpink}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatal(err)
	}

	css := readOutput(t, cfg, "assets/theme.css")
	if !strings.Contains(css, "hotpink") {
		t.Error("built assets/theme.css should be the static dir override, not the embedded theme")
	}
	if fileExists(filepath.Join(cfg.OutputDir, "theme.css")) {
		t.Error("the override must only be emitted at the path pages link to")
	}
}

func TestRebuildWithAssetOverridesIsIdempotent(t *testing.T) {
	cfg, b := setupBuild(t)
	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.StaticDir, "theme.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.StaticDir, "favicon.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatal(err)
	}
	second, err := b.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if second.Written != 0 {
		t.Errorf("second build wrote %d artifacts, want 0 with static overrides present", second.Written)
	}

	if got := readOutput(t, cfg, "favicon.svg"); got != "<svg/>" {
		t.Errorf("favicon.svg = %q, want the static dir override", got)
	}
}

func TestBuildCopiesStaticDir(t *testing.T) {
	cfg, b := setupBuild(t)
	if err := os.MkdirAll(filepath.Join(cfg.StaticDir, "uploads"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.StaticDir, "uploads", "pic.jpg"), []byte("jpegbytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := readOutput(t, cfg, "uploads/pic.jpg"); got != "jpegbytes" {
		t.Errorf("static file copied with content %q", got)
	}
}
