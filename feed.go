package inkwell

import (
	"fmt"
	"io"

	"github.com/gorilla/feeds"
)

// NewFeed builds the site RSS feed. The feed timestamps come from post
// dates, never from the wall clock, so the output is reproducible.
func NewFeed(cfg SiteConfig, posts []Post) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       cfg.Name,
		Link:        &feeds.Link{Href: BuildURL(cfg.URL)},
		Description: cfg.Description,
	}
	if cfg.Author != "" {
		feed.Author = &feeds.Author{Name: cfg.Author}
	}
	if len(posts) > 0 {
		feed.Created = posts[0].Time
	}
	for _, p := range posts {
		postURL := BuildURL(cfg.URL, "blog", p.Slug)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          postURL,
			Title:       p.Title,
			Link:        &feeds.Link{Href: postURL},
			Description: p.Description,
			Created:     p.Time,
		})
	}
	return feed
}

// WriteFeed writes the RSS 2.0 rendition of the feed to w.
func WriteFeed(w io.Writer, cfg SiteConfig, posts []Post) error {
	if err := NewFeed(cfg, posts).WriteRss(w); err != nil {
		return fmt.Errorf("inkwell: write rss: %w", err)
	}
	return nil
}
