package inkwell

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writePostFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func setupContentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writePostFile(t, dir, "first.md", `---
title: First Post
date: 2024-01-15
description: The first one.
tags:
  - go
  - testing
---

Hello **world**.
`)
	writePostFile(t, dir, "second.md", `---
title: Second Post
date: 2024-03-02
tags:
  - go
---

Later post.
`)
	writePostFile(t, dir, "draft.md", `---
title: Work in Progress
date: 2024-04-01
draft: true
---

Not done yet.
`)
	return dir
}

func TestLoadOrdersNewestFirst(t *testing.T) {
	s := NewSource(setupContentDir(t))

	posts, err := s.Load(false)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2 (draft excluded)", len(posts))
	}
	if posts[0].Slug != "second-post" || posts[1].Slug != "first-post" {
		t.Errorf("order = [%s %s], want [second-post first-post]", posts[0].Slug, posts[1].Slug)
	}
}

func TestLoadIncludesDrafts(t *testing.T) {
	s := NewSource(setupContentDir(t))

	posts, err := s.Load(true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	if !posts[0].Draft {
		t.Error("newest post should be the draft")
	}
}

func TestLoadPostFields(t *testing.T) {
	s := NewSource(setupContentDir(t))

	post, err := s.GetPost("first-post")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if post.Title != "First Post" {
		t.Errorf("Title = %q, want %q", post.Title, "First Post")
	}
	if post.Date != "2024-01-15" {
		t.Errorf("Date = %q, want the authored string verbatim", post.Date)
	}
	if post.Link != "/blog/first-post/" {
		t.Errorf("Link = %q, want /blog/first-post/", post.Link)
	}
	if post.Description != "The first one." {
		t.Errorf("Description = %q", post.Description)
	}
	if !reflect.DeepEqual(post.Tags, []string{"go", "testing"}) {
		t.Errorf("Tags = %v, want [go testing]", post.Tags)
	}
	if !strings.Contains(post.HTML, "<strong>world</strong>") {
		t.Errorf("HTML = %q, want rendered markdown", post.HTML)
	}
}

func TestLoadMissingTitleFails(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "bad.md", "---\ndate: 2024-01-01\n---\n\nbody\n")

	if _, err := NewSource(dir).Load(false); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestLoadBadDateFails(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "bad.md", "---\ntitle: Bad\ndate: January 1st\n---\n\nbody\n")

	if _, err := NewSource(dir).Load(false); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestLoadDuplicateSlugFails(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "a.md", "---\ntitle: Same Post\ndate: 2024-01-01\n---\n\na\n")
	writePostFile(t, dir, "b.md", "---\ntitle: Other\ndate: 2024-01-02\nslug: same-post\n---\n\nb\n")

	_, err := NewSource(dir).Load(false)
	if err == nil {
		t.Fatal("expected duplicate slug error")
	}
	if !strings.Contains(err.Error(), "same-post") {
		t.Errorf("error %q should name the duplicate slug", err)
	}
}

func TestSlugFromFrontMatterWins(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "whatever.md", "---\ntitle: A Title\ndate: 2024-01-01\nslug: custom-slug\n---\n\nbody\n")

	post, err := NewSource(dir).GetPost("custom-slug")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if post.Slug != "custom-slug" {
		t.Errorf("Slug = %q, want custom-slug", post.Slug)
	}
}

func TestGetPostNotFound(t *testing.T) {
	s := NewSource(setupContentDir(t))

	_, err := s.GetPost("nope")
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSavePostRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewSource(dir)

	post := Post{
		Title:       "Saved Post",
		Date:        "2024-05-10",
		Description: "From the dashboard.",
		Tags:        []string{"meta"},
		Slug:        "saved-post",
		Markdown:    "# Heading\n\nSome *body* text.\n",
	}
	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	got, err := s.GetPost("saved-post")
	if err != nil {
		t.Fatalf("GetPost after save failed: %v", err)
	}
	if got.Title != post.Title {
		t.Errorf("Title = %q, want %q", got.Title, post.Title)
	}
	if got.Date != post.Date {
		t.Errorf("Date = %q, want %q", got.Date, post.Date)
	}
	if strings.TrimSpace(got.Markdown) != strings.TrimSpace(post.Markdown) {
		t.Errorf("Markdown = %q, want %q", got.Markdown, post.Markdown)
	}

	// Saving again without changes must leave the file byte-identical.
	before, err := os.ReadFile(got.SourcePath)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SavePost(got); err != nil {
		t.Fatalf("second SavePost failed: %v", err)
	}
	after, err := os.ReadFile(got.SourcePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("re-saving an unchanged post should be byte-identical")
	}
}

func TestDeletePost(t *testing.T) {
	dir := setupContentDir(t)
	s := NewSource(dir)

	if err := s.DeletePost("first-post"); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if _, err := s.GetPost("first-post"); err != ErrNotFound {
		t.Fatalf("post should be gone, got err=%v", err)
	}
	if err := s.DeletePost("first-post"); err != ErrNotFound {
		t.Fatalf("deleting again should return ErrNotFound, got %v", err)
	}
}

func TestReplacePostRenamesSlug(t *testing.T) {
	dir := t.TempDir()
	s := NewSource(dir)

	post := Post{Title: "Old Name", Date: "2024-05-10", Slug: "old-name", Markdown: "body"}
	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	post.Slug = "new-name"
	post.SourcePath = ""
	if err := s.ReplacePost("old-name", post); err != nil {
		t.Fatalf("ReplacePost failed: %v", err)
	}

	if _, err := s.GetPost("new-name"); err != nil {
		t.Fatalf("renamed post missing: %v", err)
	}
	if _, err := s.GetPost("old-name"); err != ErrNotFound {
		t.Fatalf("old slug should be gone, got err=%v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("content dir has %d files, want 1", len(entries))
	}
}

func TestReplacePostSameSlugKeepsFile(t *testing.T) {
	dir := setupContentDir(t)
	s := NewSource(dir)

	post, err := s.GetPost("first-post")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	post.Markdown = "updated body"
	if err := s.ReplacePost("first-post", post); err != nil {
		t.Fatalf("ReplacePost failed: %v", err)
	}

	got, err := s.GetPost("first-post")
	if err != nil {
		t.Fatalf("GetPost after replace failed: %v", err)
	}
	if !strings.Contains(got.Markdown, "updated body") {
		t.Errorf("body not updated: %q", got.Markdown)
	}
}

func TestCollectTags(t *testing.T) {
	posts := []Post{
		{Tags: []string{"go", "testing"}},
		{Tags: []string{"go", "web"}},
	}
	got := CollectTags(posts)
	want := []string{"go", "testing", "web"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectTags = %v, want %v", got, want)
	}
}
