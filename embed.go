package inkwell

import (
	"embed"
	"fmt"
	"os"
)

// EmbeddedAssets holds the default theme shipped with the binary. A site
// can override any of these by placing a file of the same name in its
// static directory.
//
//go:embed embedded
var EmbeddedAssets embed.FS

func themeCSSBytes() ([]byte, error) {
	return EmbeddedAssets.ReadFile("embedded/theme.css")
}

func faviconBytes() ([]byte, error) {
	return EmbeddedAssets.ReadFile("embedded/favicon.svg")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// RobotsTxt renders the robots policy for a site: everything is
// crawlable except the authoring dashboard, and the sitemap is
// advertised at its canonical URL.
func RobotsTxt(cfg SiteConfig) string {
	return fmt.Sprintf("User-agent: *\nDisallow: /admin/\nAllow: /\n\nSitemap: %s\n",
		BuildURL(cfg.URL, "sitemap.xml"))
}
