// Package scaffold creates a new inkwell site directory from embedded
// template files.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

// Templates contains the scaffold files. They use Go text/template
// syntax and carry a .tmpl suffix that is stripped on output.
//
//go:embed all:templates
var Templates embed.FS

// Data holds the variables available to every scaffold template.
type Data struct {
	SiteName string
	Author   string
	Date     string // today, YYYY-MM-DD
}

// Generate writes a fresh site into dir. It refuses to touch a directory
// that already exists.
func Generate(dir string, data Data) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}
	if data.SiteName == "" {
		data.SiteName = titleCase(filepath.Base(dir))
	}
	if data.Date == "" {
		data.Date = time.Now().Format("2006-01-02")
	}

	const root = "templates"
	return fs.WalkDir(Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dir, rel), ".tmpl")

		// Files named "dot<name>" become ".<name>"; embed.FS skips
		// real dotfiles otherwise.
		if base := filepath.Base(outPath); strings.HasPrefix(base, "dot") && len(base) > 3 {
			outPath = filepath.Join(filepath.Dir(outPath), "."+base[3:])
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		return tmpl.Execute(f, data)
	})
}

// titleCase converts a hyphenated or lowercase name to a display name.
// e.g. "my-blog" -> "My Blog".
func titleCase(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
