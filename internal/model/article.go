package model

import (
	"sort"
	"strings"
	"time"
)

// Article is one externally published post, parsed from the feed
// dump file.
type Article struct {
	Title     string
	Link      string
	Published time.Time
	Tags      []string
}

// PublishedLabel formats the publish date for display.
func (a Article) PublishedLabel() string { return DateLabel(a.Published) }

// articleDateLayouts cover the two date styles the feed dump uses,
// e.g. "Fri, 19 Dec 2025 13:16:15 GMT" and its numeric-offset twin.
var articleDateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
}

// ParseArticleDate parses a feed-dump date line. A timestamp with a
// bare zone name is taken as UTC. Failure yields the zero time.
func ParseArticleDate(value string) time.Time {
	for _, layout := range articleDateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if _, offset := t.Zone(); offset == 0 {
			return t.UTC()
		}
		return t
	}
	return time.Time{}
}

// ParseArticles parses the plaintext feed dump: blocks of
// "Title:"/"Link:"/"Date:"/"Tags:" lines separated by a line of three
// hyphens. Blocks missing a title or link are dropped. The result is
// sorted by publish date, newest first, dateless entries last.
func ParseArticles(text string) []Article {
	var articles []Article
	for _, block := range splitBlocks(text) {
		if a, ok := parseArticleBlock(block); ok {
			articles = append(articles, a)
		}
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})
	return articles
}

func splitBlocks(text string) []string {
	var blocks []string
	var current []string
	flush := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

func parseArticleBlock(block string) (Article, bool) {
	var a Article
	for _, line := range strings.Split(block, "\n") {
		switch {
		case strings.HasPrefix(line, "Title:"):
			a.Title = strings.TrimSpace(strings.TrimPrefix(line, "Title:"))
		case strings.HasPrefix(line, "Link:"):
			a.Link = strings.TrimSpace(strings.TrimPrefix(line, "Link:"))
		case strings.HasPrefix(line, "Date:"):
			a.Published = ParseArticleDate(strings.TrimSpace(strings.TrimPrefix(line, "Date:")))
		case strings.HasPrefix(line, "Tags:"):
			a.Tags = parseArticleTags(strings.TrimSpace(strings.TrimPrefix(line, "Tags:")))
		}
	}
	if a.Title == "" || a.Link == "" {
		return Article{}, false
	}
	return a, true
}

// parseArticleTags handles the literal "None" as well as a bracketed
// list whose elements may be quoted, e.g. ['go', "cli"].
func parseArticleTags(raw string) []string {
	if raw == "" || strings.EqualFold(raw, "none") {
		return nil
	}
	raw = strings.Trim(raw, "[]")
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.Trim(part, " '\"")
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
