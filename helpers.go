package inkwell

import (
	"net/url"
	"path"
	"strings"

	"github.com/inkwell-press/inkwell/views"
)

// BuildURL joins a base URL with path segments. Directory-style paths
// get a trailing slash; paths ending in a file extension do not.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if path.Ext(u.Path) == "" && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FilterRelatedPosts finds posts that share at least one tag with current.
func FilterRelatedPosts(current Post, posts []Post) []Post {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		tagSet[t] = struct{}{}
	}
	var related []Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[t]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// viewSite converts SiteConfig into the template-facing site record.
func viewSite(cfg SiteConfig) views.Site {
	return views.Site{
		Name:        cfg.Name,
		URL:         cfg.URL,
		Description: cfg.Description,
		Author:      cfg.Author,
		Social: views.Social{
			GitHub:   cfg.Social.GitHub,
			Twitter:  cfg.Social.Twitter,
			LinkedIn: cfg.Social.LinkedIn,
		},
	}
}

func viewPost(p Post) views.Post {
	return views.Post{
		Title:       p.Title,
		Date:        p.Date,
		Description: p.Description,
		Tags:        p.Tags,
		Slug:        p.Slug,
		Link:        p.Link,
		Hero:        p.Hero,
		Markdown:    p.Markdown,
		HTML:        p.HTML,
		Draft:       p.Draft,
	}
}

func viewPosts(posts []Post) []views.Post {
	out := make([]views.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, viewPost(p))
	}
	return out
}
