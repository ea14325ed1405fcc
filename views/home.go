package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Home renders the post listing, optionally filtered to activeTag.
func Home(site Site, posts []Post, activeTag string, tags []string) templ.Component {
	title := site.Name
	canonical := buildURL(site.URL)
	if activeTag != "" {
		title = activeTag + " — " + site.Name
		canonical = buildURL(site.URL, "tags", activeTag)
	}
	meta := PageMeta{
		Title:       title,
		Description: site.Description,
		URL:         canonical,
		Image:       buildURL(site.URL) + "og/home.png",
		OGType:      "website",
	}
	return Layout(site, meta, WebsiteJsonLD(site), homeBody(posts, activeTag, tags))
}

func homeBody(posts []Post, activeTag string, tags []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(tags) > 0 {
			if _, err := io.WriteString(w, "<nav class=\"tags\">\n"); err != nil {
				return err
			}
			fmt.Fprintf(w, "<a class=\"%s\" href=\"/\">all</a>\n", tagClass(activeTag == ""))
			for _, tag := range tags {
				fmt.Fprintf(w, "<a class=\"%s\" href=\"/tags/%s/\">%s</a>\n",
					tagClass(tag == activeTag), esc(PathEscape(tag)), esc(tag))
			}
			if _, err := io.WriteString(w, "</nav>\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "<ul class=\"post-list\">\n"); err != nil {
			return err
		}
		for _, p := range posts {
			fmt.Fprintf(w, "<li>\n<time datetime=\"%s\">%s</time>\n", esc(p.Date), esc(FormatDate(p.Date)))
			fmt.Fprintf(w, "<a href=\"%s\">%s</a>\n", esc(p.Link), esc(p.Title))
			if p.Draft {
				fmt.Fprintf(w, "<span class=\"draft-badge\">draft</span>\n")
			}
			if p.Description != "" {
				fmt.Fprintf(w, "<p>%s</p>\n", esc(p.Description))
			}
			fmt.Fprintf(w, "</li>\n")
		}
		if len(posts) == 0 {
			fmt.Fprintf(w, "<li class=\"empty\">Nothing here yet.</li>\n")
		}
		_, err := io.WriteString(w, "</ul>\n")
		return err
	})
}

func tagClass(active bool) string {
	if active {
		return "tag tag-active"
	}
	return "tag"
}
