package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	meta := PageMeta{Title: "Not found — " + site.Name, OGType: "website"}
	return Layout(site, meta, "", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>404</h1>\n<p>That page doesn't exist. <a href=\"/\">Back home</a>.</p>\n")
		return err
	}))
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	meta := PageMeta{Title: "Something broke — " + site.Name, OGType: "website"}
	return Layout(site, meta, "", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>500</h1>\n<p>Something went wrong. Try again in a moment.</p>\n")
		return err
	}))
}
