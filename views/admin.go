package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// AdminLogin renders the dashboard password form.
func AdminLogin(site Site, showError bool, csrfToken string) templ.Component {
	meta := PageMeta{Title: "Sign in — " + site.Name}
	return Layout(site, meta, "", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>Sign in</h1>\n")
		if showError {
			fmt.Fprintf(w, "<p class=\"error\">Wrong password.</p>\n")
		}
		fmt.Fprintf(w, "<form method=\"post\" action=\"/admin/login/\">\n")
		fmt.Fprintf(w, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\"/>\n", esc(csrfToken))
		fmt.Fprintf(w, "<input type=\"password\" name=\"password\" autofocus required/>\n")
		fmt.Fprintf(w, "<button type=\"submit\">Sign in</button>\n</form>\n")
		return nil
	}))
}

// AdminDashboard lists every post, drafts included, with edit links.
func AdminDashboard(site Site, posts []Post, message, csrfToken string) templ.Component {
	meta := PageMeta{Title: "Dashboard — " + site.Name}
	return Layout(site, meta, "", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>Posts</h1>\n")
		if message != "" {
			fmt.Fprintf(w, "<p class=\"notice\">%s</p>\n", esc(message))
		}
		fmt.Fprintf(w, "<p><a href=\"/admin/post/new/\">New post</a> · <form class=\"inline\" method=\"post\" action=\"/admin/logout/\"><input type=\"hidden\" name=\"_csrf\" value=\"%s\"/><button type=\"submit\">Sign out</button></form></p>\n", esc(csrfToken))
		fmt.Fprintf(w, "<table class=\"admin-posts\">\n<thead><tr><th>Date</th><th>Title</th><th>Status</th></tr></thead>\n<tbody>\n")
		for _, p := range posts {
			status := "published"
			if p.Draft {
				status = "draft"
			}
			fmt.Fprintf(w, "<tr><td>%s</td><td><a href=\"/admin/post/%s/\">%s</a></td><td>%s</td></tr>\n",
				esc(p.Date), esc(PathEscape(p.Slug)), esc(p.Title), status)
		}
		fmt.Fprintf(w, "</tbody>\n</table>\n")
		return nil
	}))
}

// AdminForm renders the Markdown editor for one post. An empty post is a
// "new post" form.
func AdminForm(site Site, post Post, csrfToken string) templ.Component {
	meta := PageMeta{Title: "Edit — " + site.Name}
	return Layout(site, meta, "", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := "Edit post"
		if post.Slug == "" {
			heading = "New post"
		}
		fmt.Fprintf(w, "<h1>%s</h1>\n", heading)
		fmt.Fprintf(w, "<form method=\"post\" action=\"/admin/save/\">\n")
		fmt.Fprintf(w, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\"/>\n", esc(csrfToken))
		fmt.Fprintf(w, "<input type=\"hidden\" name=\"original_slug\" value=\"%s\"/>\n", esc(post.Slug))
		fmt.Fprintf(w, "<label>Title <input name=\"title\" value=\"%s\" required/></label>\n", esc(post.Title))
		fmt.Fprintf(w, "<label>Slug <input name=\"slug\" value=\"%s\"/></label>\n", esc(post.Slug))
		fmt.Fprintf(w, "<label>Date <input name=\"date\" value=\"%s\" placeholder=\"YYYY-MM-DD\"/></label>\n", esc(post.Date))
		fmt.Fprintf(w, "<label>Tags <input name=\"tags\" value=\"%s\"/></label>\n", esc(JoinTags(post.Tags)))
		fmt.Fprintf(w, "<label>Description <input name=\"description\" value=\"%s\"/></label>\n", esc(post.Description))
		fmt.Fprintf(w, "<label>Hero image <input name=\"hero\" value=\"%s\"/></label>\n", esc(post.Hero))
		fmt.Fprintf(w, "<label>Body <textarea name=\"content\" rows=\"24\">%s</textarea></label>\n", esc(post.Markdown))
		draftChecked := ""
		if post.Draft {
			draftChecked = " checked"
		}
		fmt.Fprintf(w, "<label><input type=\"checkbox\" name=\"draft\"%s/> Draft</label>\n", draftChecked)
		fmt.Fprintf(w, "<button type=\"submit\">Save</button>\n</form>\n")
		if post.Slug != "" {
			fmt.Fprintf(w, "<form method=\"post\" action=\"/admin/delete/%s/\" onsubmit=\"return confirm('Delete this post?')\">\n", esc(PathEscape(post.Slug)))
			fmt.Fprintf(w, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\"/>\n", esc(csrfToken))
			fmt.Fprintf(w, "<button class=\"danger\" type=\"submit\">Delete</button>\n</form>\n")
		}
		return nil
	}))
}

// AdminImages lists uploaded images with delete controls.
func AdminImages(site Site, images []ImageInfo, csrfToken string) templ.Component {
	meta := PageMeta{Title: "Images — " + site.Name}
	return Layout(site, meta, "", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>Images</h1>\n")
		fmt.Fprintf(w, "<form method=\"post\" action=\"/admin/images/upload/\" enctype=\"multipart/form-data\">\n")
		fmt.Fprintf(w, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\"/>\n", esc(csrfToken))
		fmt.Fprintf(w, "<input type=\"file\" name=\"image\" accept=\"image/*\" required/>\n")
		fmt.Fprintf(w, "<button type=\"submit\">Upload</button>\n</form>\n<ul class=\"images\">\n")
		for _, img := range images {
			fmt.Fprintf(w, "<li><code>/uploads/%s</code> (%dx%d)", esc(img.Filename), img.Width, img.Height)
			fmt.Fprintf(w, " <form class=\"inline\" method=\"post\" action=\"/admin/images/delete/%s/\"><input type=\"hidden\" name=\"_csrf\" value=\"%s\"/><button type=\"submit\">delete</button></form></li>\n",
				esc(PathEscape(img.Filename)), esc(csrfToken))
		}
		fmt.Fprintf(w, "</ul>\n")
		return nil
	}))
}

// ImageInfo is the template-facing view of an uploaded image.
type ImageInfo struct {
	Filename string
	Width    int
	Height   int
}
