package inkwell

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/inkwell-press/inkwell/markdown"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("inkwell: post not found")

// Source loads posts from a directory of Markdown files and writes them
// back when the authoring dashboard saves changes.
type Source struct {
	dir      string
	renderer *markdown.Renderer
}

// NewSource creates a Source over the given content directory.
func NewSource(dir string) *Source {
	return &Source{dir: dir, renderer: markdown.NewRenderer()}
}

// Dir returns the content directory backing this source.
func (s *Source) Dir() string {
	return s.dir
}

// Load walks the content directory and returns all posts ordered by date
// descending (slug ascending on ties, so output is stable). Drafts are
// excluded unless includeDrafts is set. A missing title, an unparseable
// date, or a duplicate slug fails the whole load with the offending file
// named in the error.
func (s *Source) Load(includeDrafts bool) ([]Post, error) {
	var posts []Post
	seen := make(map[string]string) // slug -> source path

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		post, err := s.parse(path, src)
		if err != nil {
			return err
		}
		if prev, dup := seen[post.Slug]; dup {
			return fmt.Errorf("duplicate slug %q: %s and %s", post.Slug, prev, path)
		}
		seen[post.Slug] = path
		if post.Draft && !includeDrafts {
			return nil
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inkwell: load content: %w", err)
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Time.Equal(posts[j].Time) {
			return posts[i].Time.After(posts[j].Time)
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts, nil
}

func (s *Source) parse(path string, src []byte) (Post, error) {
	doc, err := markdown.ParseDocument(path, src)
	if err != nil {
		return Post{}, err
	}
	if strings.TrimSpace(doc.Meta.Title) == "" {
		return Post{}, fmt.Errorf("%s: front matter is missing a title", path)
	}
	if strings.TrimSpace(doc.Meta.Date) == "" {
		return Post{}, fmt.Errorf("%s: front matter is missing a date", path)
	}
	t, err := markdown.ParseDate(doc.Meta.Date)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", path, err)
	}

	postSlug := strings.TrimSpace(doc.Meta.Slug)
	if postSlug == "" {
		postSlug = slug.Make(doc.Meta.Title)
	}
	if postSlug == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		postSlug = slug.Make(base)
	}

	html, err := s.renderer.Render(doc.Body)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", path, err)
	}

	return Post{
		Title:       strings.TrimSpace(doc.Meta.Title),
		Date:        strings.TrimSpace(doc.Meta.Date),
		Time:        t,
		Tags:        normalizeTags(doc.Meta.Tags),
		Description: strings.TrimSpace(doc.Meta.Description),
		Slug:        postSlug,
		Link:        "/blog/" + postSlug + "/",
		Hero:        strings.TrimSpace(doc.Meta.Hero),
		Markdown:    string(doc.Body),
		HTML:        string(html),
		Draft:       doc.Meta.Draft,
		SourcePath:  path,
	}, nil
}

// GetPost returns a single post by slug, drafts included.
func (s *Source) GetPost(postSlug string) (Post, error) {
	posts, err := s.Load(true)
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == postSlug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// ReplacePost saves p and, when the slug changed, removes the source file
// that previously held the post under oldSlug.
func (s *Source) ReplacePost(oldSlug string, p Post) error {
	if err := s.SavePost(p); err != nil {
		return err
	}
	if oldSlug == "" || oldSlug == p.Slug {
		return nil
	}
	if err := s.DeletePost(oldSlug); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// SavePost writes a post back as <slug>.md in the content directory, front
// matter first. An existing file for the slug is replaced in place.
func (s *Source) SavePost(p Post) error {
	if p.Slug == "" {
		return errors.New("inkwell: save post: slug is required")
	}
	meta := markdown.FrontMatter{
		Title:       p.Title,
		Date:        p.Date,
		Description: p.Description,
		Tags:        p.Tags,
		Slug:        p.Slug,
		Hero:        p.Hero,
		Draft:       p.Draft,
	}
	head, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("inkwell: encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(head)
	buf.WriteString("---\n\n")
	buf.WriteString(strings.TrimLeft(p.Markdown, "\n"))
	if !strings.HasSuffix(buf.String(), "\n") {
		buf.WriteString("\n")
	}

	path := p.SourcePath
	if path == "" {
		if existing, err := s.GetPost(p.Slug); err == nil {
			path = existing.SourcePath
		} else {
			path = filepath.Join(s.dir, p.Slug+".md")
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// DeletePost removes the Markdown file backing the given slug.
func (s *Source) DeletePost(postSlug string) error {
	post, err := s.GetPost(postSlug)
	if err != nil {
		return err
	}
	return os.Remove(post.SourcePath)
}

// CollectTags returns the sorted, deduplicated lowercase tags of posts.
func CollectTags(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func normalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
