package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in the site shell: head metadata, OpenGraph tags,
// JSON-LD, header, and footer.
func Layout(site Site, meta PageMeta, jsonLD string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>\n<html lang=\"en\">\n<head>\n"); err != nil {
			return err
		}
		fmt.Fprintf(w, "<meta charset=\"utf-8\"/>\n")
		fmt.Fprintf(w, "<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
		fmt.Fprintf(w, "<title>%s</title>\n", esc(meta.Title))
		if meta.Description != "" {
			fmt.Fprintf(w, "<meta name=\"description\" content=\"%s\"/>\n", esc(meta.Description))
		}
		if meta.URL != "" {
			fmt.Fprintf(w, "<link rel=\"canonical\" href=\"%s\"/>\n", esc(meta.URL))
		}
		fmt.Fprintf(w, "<link rel=\"alternate\" type=\"application/rss+xml\" title=\"%s\" href=\"/feed.xml\"/>\n", esc(site.Name))
		fmt.Fprintf(w, "<link rel=\"icon\" href=\"/favicon.svg\" type=\"image/svg+xml\"/>\n")
		fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"/assets/theme.css\"/>\n")

		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		fmt.Fprintf(w, "<meta property=\"og:type\" content=\"%s\"/>\n", esc(ogType))
		fmt.Fprintf(w, "<meta property=\"og:site_name\" content=\"%s\"/>\n", esc(site.Name))
		fmt.Fprintf(w, "<meta property=\"og:title\" content=\"%s\"/>\n", esc(meta.Title))
		if meta.Description != "" {
			fmt.Fprintf(w, "<meta property=\"og:description\" content=\"%s\"/>\n", esc(meta.Description))
		}
		if meta.URL != "" {
			fmt.Fprintf(w, "<meta property=\"og:url\" content=\"%s\"/>\n", esc(meta.URL))
		}
		if meta.Image != "" {
			fmt.Fprintf(w, "<meta property=\"og:image\" content=\"%s\"/>\n", esc(meta.Image))
			fmt.Fprintf(w, "<meta name=\"twitter:card\" content=\"summary_large_image\"/>\n")
		}
		if jsonLD != "" {
			fmt.Fprintf(w, "<script type=\"application/ld+json\">%s</script>\n", jsonLD)
		}
		if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
			return err
		}

		fmt.Fprintf(w, "<header class=\"site-header\">\n")
		fmt.Fprintf(w, "<a class=\"site-title\" href=\"/\">%s</a>\n", esc(site.Name))
		fmt.Fprintf(w, "<nav><a href=\"/\">posts</a> <a href=\"/feed.xml\">rss</a></nav>\n")
		fmt.Fprintf(w, "</header>\n<main>\n")

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "</main>\n"); err != nil {
			return err
		}
		if err := Footer(site).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}
