// Package markdown turns Markdown sources with YAML front matter into
// structured documents. Markdown-to-HTML conversion is delegated entirely
// to goldmark; front matter extraction to adrg/frontmatter.
package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// FrontMatter is the YAML metadata block at the top of a post file.
// Date stays a string so templates can render it exactly as authored.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Slug        string   `yaml:"slug,omitempty"`
	Hero        string   `yaml:"hero,omitempty"`
	Draft       bool     `yaml:"draft,omitempty"`
}

// Document is a parsed post file: metadata plus the Markdown body with the
// front matter delimiters stripped.
type Document struct {
	Meta FrontMatter
	Body []byte
	Path string
}

// ParseDocument extracts front matter and body from src.
func ParseDocument(path string, src []byte) (Document, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return Document{}, fmt.Errorf("parse front matter of %s: %w", path, err)
	}
	return Document{Meta: meta, Body: body, Path: path}, nil
}

// dateLayouts are the accepted front-matter date formats: a plain ISO date
// or a full RFC3339 timestamp.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses a front-matter date string.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC3339", s)
}

// Renderer converts Markdown bodies to HTML. It is stateless and safe for
// concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a Renderer with GFM extensions, footnotes, and
// automatic heading IDs enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				// Posts are authored locally, so inline HTML is trusted.
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts the Markdown body to HTML.
func (r *Renderer) Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}
