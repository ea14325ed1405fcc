// Package views renders the site's pages as templ components. Components
// are built with templ.ComponentFunc writing HTML directly, so the same
// components serve both the dev server and the static builder.
package views

// Site holds site-wide settings rendered into every page.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
	Social      Social
}

// Social carries account handles for the footer links.
type Social struct {
	GitHub   string
	Twitter  string
	LinkedIn string
}

// Post is the template-facing view of a blog post. HTML is the rendered
// Markdown body; Date is the front-matter date string verbatim.
type Post struct {
	Title       string
	Date        string
	Description string
	Tags        []string
	Slug        string
	Link        string
	Hero        string
	Markdown    string
	HTML        string
	Draft       bool
}

// PageMeta carries per-page OpenGraph and SEO metadata into the head.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string // og:image, absolute URL
	OGType      string // "website" or "article"
}
