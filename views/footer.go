package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Footer renders the author line and outbound profile links. Each social
// href is a fixed prefix plus the configured handle; absent handles are
// simply not rendered. The RSS link is always present.
func Footer(site Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<footer class=\"site-footer\">\n"); err != nil {
			return err
		}
		if site.Author != "" {
			fmt.Fprintf(w, "<p class=\"author\">Written by %s</p>\n", esc(site.Author))
		}
		if _, err := io.WriteString(w, "<ul class=\"social\">\n"); err != nil {
			return err
		}
		if site.Social.GitHub != "" {
			fmt.Fprintf(w, "<li><a href=\"%s\" rel=\"me noopener\">github</a></li>\n", esc(GitHubURL(site.Social.GitHub)))
		}
		if site.Social.Twitter != "" {
			fmt.Fprintf(w, "<li><a href=\"%s\" rel=\"me noopener\">twitter</a></li>\n", esc(TwitterURL(site.Social.Twitter)))
		}
		if site.Social.LinkedIn != "" {
			fmt.Fprintf(w, "<li><a href=\"%s\" rel=\"me noopener\">linkedin</a></li>\n", esc(LinkedInURL(site.Social.LinkedIn)))
		}
		fmt.Fprintf(w, "<li><a href=\"/feed.xml\">rss</a></li>\n")
		_, err := io.WriteString(w, "</ul>\n</footer>\n")
		return err
	})
}
