// Command blogdedup reports blog posts whose wording overlaps too much.
//
// With no arguments it checks every pair of posts in CONTENT_DIR. With
// -candidate it checks one unpublished file against the published posts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"

	"github.com/mithunxcpu/portfolio/internal/config"
	"github.com/mithunxcpu/portfolio/internal/dedup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("blogdedup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", cfg.Content.PostsDir, "directory of markdown posts")
	threshold := fs.Float64("threshold", cfg.Content.DedupThreshold, "report pairs with overlap above this fraction")
	candidate := fs.String("candidate", "", "check this markdown file against the existing posts")
	jsonOut := fs.Bool("json", false, "output as JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.SetOutput(stderr)

	dcfg := dedup.DefaultConfig(*dir)
	dcfg.OverlapThreshold = *threshold

	var results []dedup.Result
	if *candidate != "" {
		raw, err := os.ReadFile(*candidate)
		if err != nil {
			fmt.Fprintf(stderr, "read candidate: %v\n", err)
			return 1
		}
		title, body := dedup.ParseFrontMatter(string(raw))
		if title == "" {
			title = filepath.Base(*candidate)
		}
		if sameDir(*candidate, *dir) {
			log.Warnf("%s is inside %s and will be compared with itself", *candidate, *dir)
		}
		results = dedup.CheckCandidate(dcfg, body, title)
	} else {
		results = dedup.CheckCorpus(dcfg)
	}

	if *jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return 1
		}
		return 0
	}
	fmt.Fprint(stdout, dedup.Summary(results))
	return 0
}

func sameDir(file, dir string) bool {
	a, err := filepath.Abs(filepath.Dir(file))
	if err != nil {
		return false
	}
	b, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	return a == b
}
