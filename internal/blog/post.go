// Package blog loads markdown posts from the content directory and renders
// them for the site.
package blog

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)

// Post is a parsed markdown file.
type Post struct {
	Title   string   `yaml:"title" json:"title"`
	Date    string   `yaml:"date" json:"date"`
	Slug    string   `yaml:"slug" json:"slug"`
	Excerpt string   `yaml:"excerpt" json:"excerpt"`
	Tags    []string `yaml:"tags" json:"tags"`
	Episode string   `yaml:"episode" json:"episode,omitempty"`
	VideoID string   `yaml:"videoId" json:"videoId,omitempty"`
	Body    string   `yaml:"-" json:"-"`
}

// SlugFromFilename strips a leading YYYY-MM-DD- and the .md extension.
func SlugFromFilename(filename string) string {
	return strings.TrimSuffix(datePrefix.ReplaceAllString(filename, ""), ".md")
}

// Parse reads the YAML front matter and body of a post file.
func Parse(filename string, raw []byte) (Post, error) {
	header, body := splitFrontMatter(raw)

	var p Post
	if len(header) > 0 {
		if err := yaml.Unmarshal(header, &p); err != nil {
			return Post{}, fmt.Errorf("front matter in %s: %w", filename, err)
		}
	}
	if p.Title == "" {
		p.Title = "Untitled"
	}
	if p.Slug == "" {
		p.Slug = SlugFromFilename(filename)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.Body = string(body)
	return p, nil
}

// splitFrontMatter expects the file to open with a "---" line. Anything else
// is all body.
func splitFrontMatter(raw []byte) (header, body []byte) {
	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	rest, ok := bytes.CutPrefix(raw, []byte("---\n"))
	if !ok {
		return nil, raw
	}
	if after, ok := cutDelimiter(rest); ok {
		return nil, after
	}
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, raw
	}
	after, ok := cutDelimiter(rest[end+1:])
	if !ok {
		return nil, raw
	}
	return rest[:end], after
}

// cutDelimiter reports whether b starts with a "---" line and returns what
// follows it.
func cutDelimiter(b []byte) ([]byte, bool) {
	line, after, _ := bytes.Cut(b, []byte("\n"))
	if string(bytes.TrimSpace(line)) != "---" {
		return nil, false
	}
	return after, true
}
