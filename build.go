package inkwell

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-press/inkwell/ogimage"
	"github.com/inkwell-press/inkwell/views"
)

// Builder renders the whole site into the output directory. Artifacts are
// fingerprinted in a SQLite cache under the cache dir, so an unchanged
// page is skipped on rebuild and a removed page is pruned from the output.
type Builder struct {
	cfg SiteConfig
	log zerolog.Logger
}

// BuildOptions control a single build run.
type BuildOptions struct {
	IncludeDrafts bool // render draft posts too (dev builds)
	Force         bool // rewrite every artifact, ignoring the cache
}

// BuildResult summarizes what a build run did.
type BuildResult struct {
	Written  int
	Skipped  int
	Pruned   int
	Posts    int
	Duration time.Duration
}

// NewBuilder creates a Builder for the given site.
func NewBuilder(cfg SiteConfig, logger zerolog.Logger) *Builder {
	return &Builder{cfg: cfg, log: logger}
}

// Build renders every page, feed, og image and asset into cfg.OutputDir.
// Running it twice over unchanged content produces byte-identical output
// and writes nothing the second time.
func (b *Builder) Build(ctx context.Context, opts BuildOptions) (BuildResult, error) {
	start := time.Now()

	source := NewSource(b.cfg.ContentDir)
	posts, err := source.Load(opts.IncludeDrafts)
	if err != nil {
		return BuildResult{}, err
	}

	cache, err := OpenBuildCache(filepath.Join(b.cfg.CacheDir, "build.db"))
	if err != nil {
		return BuildResult{}, err
	}
	defer cache.Close()

	run := &buildRun{
		builder: b,
		cache:   cache,
		force:   opts.Force,
		keep:    make(map[string]bool),
	}

	if err := b.renderPages(ctx, run, posts); err != nil {
		return BuildResult{}, err
	}
	if err := b.renderFeeds(run, posts); err != nil {
		return BuildResult{}, err
	}
	if err := b.renderOGImages(ctx, run, posts); err != nil {
		return BuildResult{}, err
	}
	if err := b.emitAssets(run); err != nil {
		return BuildResult{}, err
	}
	if err := b.copyStatic(ctx, run); err != nil {
		return BuildResult{}, err
	}

	pruned, err := b.prune(run)
	if err != nil {
		return BuildResult{}, err
	}

	result := BuildResult{
		Written:  run.written,
		Skipped:  run.skipped,
		Pruned:   pruned,
		Posts:    len(posts),
		Duration: time.Since(start),
	}
	b.log.Info().
		Int("posts", result.Posts).
		Int("written", result.Written).
		Int("skipped", result.Skipped).
		Int("pruned", result.Pruned).
		Dur("elapsed", result.Duration).
		Msg("build finished")
	return result, nil
}

type buildRun struct {
	builder *Builder
	cache   *BuildCache
	force   bool
	keep    map[string]bool
	written int
	skipped int
}

// emit writes one artifact at relPath under the output dir, unless its
// checksum already matches the cached fingerprint.
func (r *buildRun) emit(relPath string, data []byte) error {
	r.keep[relPath] = true
	sum := Checksum(data)

	if !r.force {
		prev, err := r.cache.Fingerprint(relPath)
		if err != nil {
			return err
		}
		if prev == sum && fileExists(filepath.Join(r.builder.cfg.OutputDir, relPath)) {
			r.skipped++
			return nil
		}
	}

	dst := filepath.Join(r.builder.cfg.OutputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return err
	}
	if err := r.cache.SetFingerprint(relPath, sum); err != nil {
		return err
	}
	r.builder.log.Debug().Str("path", relPath).Msg("wrote artifact")
	r.written++
	return nil
}

func (b *Builder) renderPages(ctx context.Context, run *buildRun, posts []Post) error {
	site := viewSite(b.cfg)
	tags := CollectTags(posts)
	vposts := viewPosts(posts)

	home, err := RenderBytes(ctx, views.Home(site, vposts, "", tags))
	if err != nil {
		return fmt.Errorf("render home: %w", err)
	}
	if err := run.emit("index.html", home); err != nil {
		return err
	}

	for _, p := range posts {
		related := FilterRelatedPosts(p, posts)
		page, err := RenderBytes(ctx, views.PostPage(site, viewPost(p), viewPosts(related)))
		if err != nil {
			return fmt.Errorf("render post %s: %w", p.Slug, err)
		}
		if err := run.emit(filepath.Join("blog", p.Slug, "index.html"), page); err != nil {
			return err
		}
	}

	for _, tag := range tags {
		var tagged []Post
		for _, p := range posts {
			for _, t := range p.Tags {
				if t == tag {
					tagged = append(tagged, p)
					break
				}
			}
		}
		page, err := RenderBytes(ctx, views.Home(site, viewPosts(tagged), tag, tags))
		if err != nil {
			return fmt.Errorf("render tag %s: %w", tag, err)
		}
		if err := run.emit(filepath.Join("tags", tag, "index.html"), page); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) renderFeeds(run *buildRun, posts []Post) error {
	var feed bytes.Buffer
	if err := WriteFeed(&feed, b.cfg, posts); err != nil {
		return fmt.Errorf("render feed: %w", err)
	}
	if err := run.emit("feed.xml", feed.Bytes()); err != nil {
		return err
	}

	var sm bytes.Buffer
	if err := WriteSitemap(&sm, b.cfg, posts); err != nil {
		return fmt.Errorf("render sitemap: %w", err)
	}
	if err := run.emit("sitemap.xml", sm.Bytes()); err != nil {
		return err
	}

	return run.emit("robots.txt", []byte(RobotsTxt(b.cfg)))
}

func (b *Builder) renderOGImages(ctx context.Context, run *buildRun, posts []Post) error {
	var buf bytes.Buffer
	if err := ogimage.EncodePNG(&buf, ogimage.Card{
		Title:       b.cfg.Name,
		Description: b.cfg.Description,
		Author:      b.cfg.Author,
		Site:        b.cfg.URL,
	}); err != nil {
		return fmt.Errorf("render og card: %w", err)
	}
	if err := run.emit(filepath.Join("og", "home.png"), buf.Bytes()); err != nil {
		return err
	}

	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return err
		}
		buf.Reset()
		if err := ogimage.EncodePNG(&buf, ogimage.Card{
			Title:       p.Title,
			Description: p.Description,
			Date:        p.Date,
			Author:      b.cfg.Author,
			Site:        b.cfg.URL,
		}); err != nil {
			return fmt.Errorf("render og card %s: %w", p.Slug, err)
		}
		if err := run.emit(filepath.Join("og", p.Slug+".png"), buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// emitAssets writes the stylesheet and favicon at the paths pages link
// to. A file of the same name in the static dir wins over the embedded
// default, matching what the dev server serves.
func (b *Builder) emitAssets(run *buildRun) error {
	css, err := b.staticOrEmbedded("theme.css", themeCSSBytes)
	if err != nil {
		return err
	}
	if err := run.emit(filepath.Join("assets", "theme.css"), css); err != nil {
		return err
	}
	icon, err := b.staticOrEmbedded("favicon.svg", faviconBytes)
	if err != nil {
		return err
	}
	return run.emit("favicon.svg", icon)
}

// staticOrEmbedded returns the user's override from the static dir when
// present, the embedded default otherwise.
func (b *Builder) staticOrEmbedded(name string, embedded func() ([]byte, error)) ([]byte, error) {
	override := filepath.Join(b.cfg.StaticDir, name)
	if fileExists(override) {
		return os.ReadFile(override)
	}
	return embedded()
}

func (b *Builder) copyStatic(ctx context.Context, run *buildRun) error {
	root := b.cfg.StaticDir
	info, err := os.Stat(root)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return nil
	}
	if err != nil {
		return err
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return ctx.Err()
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		// Already emitted by emitAssets at the paths pages link to.
		if rel == "theme.css" || rel == "favicon.svg" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return run.emit(rel, data)
	})
}

// prune removes output files whose source no longer exists, using the
// cache as the record of what previous builds produced.
func (b *Builder) prune(run *buildRun) (int, error) {
	stale, err := run.cache.Prune(run.keep)
	if err != nil {
		return 0, err
	}
	for _, rel := range stale {
		full := filepath.Join(b.cfg.OutputDir, rel)
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			return 0, err
		}
		b.log.Debug().Str("path", rel).Msg("pruned artifact")
		// drop now-empty parent dirs up to the output root
		for dir := filepath.Dir(full); dir != filepath.Clean(b.cfg.OutputDir); dir = filepath.Dir(dir) {
			if os.Remove(dir) != nil {
				break
			}
		}
	}
	return len(stale), nil
}
