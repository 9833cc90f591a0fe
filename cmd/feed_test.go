package cmd

import (
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aueskinj/Resume/internal/model"
)

func TestFormatEntry(t *testing.T) {
	t.Run("entry with categories", func(t *testing.T) {
		block := formatEntry(&gofeed.Item{
			Title:      "Shipping a static site",
			Link:       "https://example.com/shipping",
			Published:  "Fri, 19 Dec 2025 13:16:15 GMT",
			Categories: []string{"go", "cli"},
		})
		assert.Equal(t, "Title: Shipping a static site\n"+
			"Link: https://example.com/shipping\n"+
			"Date: Fri, 19 Dec 2025 13:16:15 GMT\n"+
			"Tags: ['go', 'cli']\n"+
			"---\n", block)
	})

	t.Run("entry without categories prints None", func(t *testing.T) {
		block := formatEntry(&gofeed.Item{
			Title: "Untagged",
			Link:  "https://example.com/untagged",
		})
		assert.Contains(t, block, "Tags: None\n")
	})
}

// The feed command's output must round-trip through the build-side
// article parser, since its stdout is what gets pasted into the dump.
func TestFormatEntryRoundTrip(t *testing.T) {
	dump := formatEntry(&gofeed.Item{
		Title:      "First",
		Link:       "https://example.com/first",
		Published:  "Fri, 19 Dec 2025 13:16:15 GMT",
		Categories: []string{"go", "cli"},
	}) + formatEntry(&gofeed.Item{
		Title:     "Second",
		Link:      "https://example.com/second",
		Published: "Mon, 01 Jan 2024 09:00:00 GMT",
	})

	articles := model.ParseArticles(dump)
	require.Len(t, articles, 2)
	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, []string{"go", "cli"}, articles[0].Tags)
	assert.Equal(t, "Dec 19, 2025", articles[0].PublishedLabel())
	assert.Empty(t, articles[1].Tags)
}
