package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PostPage renders a single article with its related-posts block.
func PostPage(site Site, post Post, related []Post) templ.Component {
	meta := PageMeta{
		Title:       post.Title + " — " + site.Name,
		Description: post.Description,
		URL:         buildURL(site.URL, "blog", post.Slug),
		Image:       buildURL(site.URL) + "og/" + PathEscape(post.Slug) + ".png",
		OGType:      "article",
	}
	return Layout(site, meta, BlogPostingJsonLD(site, post), postBody(site, post, related))
}

func postBody(site Site, post Post, related []Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<article>\n<h1>%s</h1>\n", esc(post.Title))
		fmt.Fprintf(w, "<p class=\"post-meta\"><time datetime=\"%s\">%s</time>", esc(post.Date), esc(FormatDate(post.Date)))
		if site.Author != "" {
			fmt.Fprintf(w, " · %s", esc(site.Author))
		}
		if _, err := io.WriteString(w, "</p>\n"); err != nil {
			return err
		}
		if len(post.Tags) > 0 {
			if _, err := io.WriteString(w, "<p class=\"post-tags\">"); err != nil {
				return err
			}
			for i, tag := range post.Tags {
				if i > 0 {
					io.WriteString(w, " ")
				}
				fmt.Fprintf(w, "<a class=\"tag\" href=\"/tags/%s/\">%s</a>", esc(PathEscape(tag)), esc(tag))
			}
			if _, err := io.WriteString(w, "</p>\n"); err != nil {
				return err
			}
		}
		if post.Hero != "" {
			fmt.Fprintf(w, "<img class=\"hero\" src=\"%s\" alt=\"%s\"/>\n", esc(post.Hero), esc(post.Title))
		}

		// post.HTML is goldmark output, written as-is.
		if _, err := io.WriteString(w, post.HTML); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</article>\n"); err != nil {
			return err
		}

		if len(related) > 0 {
			if _, err := io.WriteString(w, "<aside class=\"related\">\n<h2>Related posts</h2>\n<ul>\n"); err != nil {
				return err
			}
			for _, r := range related {
				fmt.Fprintf(w, "<li><a href=\"%s\">%s</a></li>\n", esc(r.Link), esc(r.Title))
			}
			if _, err := io.WriteString(w, "</ul>\n</aside>\n"); err != nil {
				return err
			}
		}
		return nil
	})
}
