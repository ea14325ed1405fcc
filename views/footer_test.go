package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderToString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestFooterSocialLinksArePrefixPlusHandle(t *testing.T) {
	site := Site{
		Author: "Erin Writer",
		Social: Social{
			GitHub:   "erock",
			Twitter:  "erockhandle",
			LinkedIn: "erin-writer",
		},
	}
	out := renderToString(t, Footer(site))

	for _, want := range []string{
		`href="https://github.com/erock"`,
		`href="https://twitter.com/erockhandle"`,
		`href="https://www.linkedin.com/in/erin-writer"`,
		`href="/feed.xml"`,
		"Written by Erin Writer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestFooterOmitsAbsentHandles(t *testing.T) {
	out := renderToString(t, Footer(Site{Social: Social{GitHub: "erock"}}))

	if !strings.Contains(out, "https://github.com/erock") {
		t.Error("github link should be present")
	}
	if strings.Contains(out, "twitter.com") || strings.Contains(out, "linkedin.com") {
		t.Error("absent handles must not produce links")
	}
	if !strings.Contains(out, `href="/feed.xml"`) {
		t.Error("rss link is always present")
	}
}

func TestFooterOmitsAuthorWhenEmpty(t *testing.T) {
	out := renderToString(t, Footer(Site{}))
	if strings.Contains(out, "Written by") {
		t.Error("author line should be omitted without an author")
	}
}

func TestProfileURLHelpers(t *testing.T) {
	if got := GitHubURL("erock"); got != "https://github.com/erock" {
		t.Errorf("GitHubURL = %q", got)
	}
	if got := TwitterURL("erock"); got != "https://twitter.com/erock" {
		t.Errorf("TwitterURL = %q", got)
	}
	if got := LinkedInURL("erock"); got != "https://www.linkedin.com/in/erock" {
		t.Errorf("LinkedInURL = %q", got)
	}
}
