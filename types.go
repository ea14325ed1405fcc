package inkwell

import "time"

// Post is the core content type, loaded from a Markdown file with YAML
// front matter and rendered by templates and the static builder.
type Post struct {
	Title       string
	Date        string // date string exactly as authored in front matter
	Time        time.Time
	Tags        []string
	Description string
	Slug        string
	Link        string
	Hero        string
	Markdown    string
	HTML        string
	Draft       bool
	SourcePath  string
}

// Image describes an uploaded asset under the static uploads directory.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}
