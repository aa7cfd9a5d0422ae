package dedup

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
)

// ParseFrontMatter splits a leading "---" delimited header from the body and
// pulls out the title line. Without a closing delimiter the whole content is
// treated as body.
func ParseFrontMatter(content string) (title, body string) {
	lines := strings.Split(content, "\n")
	inHeader := false
	bodyStart := 0

	for i, line := range lines {
		if trim(line) == "---" {
			if !inHeader {
				inHeader = true
				continue
			}
			bodyStart = i + 1
			break
		}
		if inHeader && strings.HasPrefix(line, "title:") {
			title = unquote(trim(strings.Replace(line, "title:", "", 1)))
		}
	}

	body = trim(strings.Join(lines[bodyStart:], "\n"))
	return title, body
}

// trim strips whitespace and byte order marks from both ends, so a file
// saved with a BOM still opens its header on the first line.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}

// unquote drops one leading and one trailing quote character, if present.
func unquote(s string) string {
	if strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "'") {
		s = s[1:]
	}
	if strings.HasSuffix(s, `"`) || strings.HasSuffix(s, "'") {
		s = s[:len(s)-1]
	}
	return s
}

// LoadCorpus reads every .md file in cfg.SourceDir in name order. A missing
// or unreadable directory yields an empty corpus.
func LoadCorpus(cfg Config) []Document {
	entries, err := os.ReadDir(cfg.SourceDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("dedup: cannot read %s: %v", cfg.SourceDir, err)
		}
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(cfg.SourceDir, name))
		if err != nil {
			log.Warnf("dedup: skipping %s: %v", name, err)
			continue
		}
		title, body := ParseFrontMatter(string(raw))
		docs = append(docs, Document{
			Filename: name,
			Title:    title,
			Body:     body,
			Words:    Tokenize(body, cfg.StopWords),
		})
	}
	return docs
}
