package inkwell

import (
	"io"

	"github.com/snabb/sitemap"
)

// NewSitemap builds the sitemap for the home page, every post, and every
// tag index. LastMod for the home page is the newest post date so the
// document stays reproducible across builds.
func NewSitemap(cfg SiteConfig, posts []Post) *sitemap.Sitemap {
	sm := sitemap.New()

	home := &sitemap.URL{
		Loc:        BuildURL(cfg.URL),
		ChangeFreq: sitemap.Weekly,
	}
	if len(posts) > 0 {
		home.LastMod = &posts[0].Time
	}
	sm.Add(home)

	for i := range posts {
		p := posts[i]
		sm.Add(&sitemap.URL{
			Loc:        BuildURL(cfg.URL, "blog", p.Slug),
			LastMod:    &posts[i].Time,
			ChangeFreq: sitemap.Monthly,
		})
	}
	for _, tag := range CollectTags(posts) {
		u := &sitemap.URL{
			Loc:        BuildURL(cfg.URL, "tags", tag),
			ChangeFreq: sitemap.Weekly,
		}
		if len(posts) > 0 {
			u.LastMod = &posts[0].Time
		}
		sm.Add(u)
	}
	return sm
}

// WriteSitemap writes the sitemap XML to w.
func WriteSitemap(w io.Writer, cfg SiteConfig, posts []Post) error {
	_, err := NewSitemap(cfg, posts).WriteTo(w)
	return err
}
