package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(name, language, pushed string, fork bool, topics ...string) *Post {
	return NewPost(RawRepo{
		Name:     name,
		Language: language,
		PushedAt: pushed,
		Fork:     fork,
		Topics:   topics,
	})
}

func TestBuildTagsGrouping(t *testing.T) {
	a := post("alpha", "Go", "2024-03-01T00:00:00Z", true)
	b := post("bravo", "Go", "2024-01-01T00:00:00Z", false)
	tags := BuildTags([]*Post{a, b})

	byName := make(map[string]Tag)
	for _, tag := range tags {
		byName[tag.Name] = tag
	}

	require.Contains(t, byName, "Go")
	require.Contains(t, byName, "fork")
	assert.Equal(t, 2, byName["Go"].Count)
	assert.Len(t, byName["Go"].Posts, 2)
	assert.Equal(t, 1, byName["fork"].Count)
	assert.Equal(t, "alpha", byName["fork"].Posts[0].Name)
}

func TestBuildTagsOrdering(t *testing.T) {
	a := post("alpha", "go", "2024-01-01T00:00:00Z", false, "CLI")
	b := post("bravo", "Python", "2024-03-01T00:00:00Z", false, "api")
	tags := BuildTags([]*Post{a, b})

	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	assert.Equal(t, []string{"api", "CLI", "go", "Python"}, names)
}

func TestBuildTagsMemberOrder(t *testing.T) {
	older := post("older", "Go", "2024-01-01T00:00:00Z", false)
	newer := post("newer", "Go", "2024-03-01T00:00:00Z", false)
	tags := BuildTags([]*Post{older, newer})

	require.Len(t, tags, 1)
	assert.Equal(t, "newer", tags[0].Posts[0].Name)
	assert.Equal(t, "older", tags[0].Posts[1].Name)
}

func TestBuildTagsSlug(t *testing.T) {
	p := post("alpha", "C++", "2024-01-01T00:00:00Z", false)
	tags := BuildTags([]*Post{p})
	require.Len(t, tags, 1)
	assert.Equal(t, "c", tags[0].Slug)
}

func TestSortPosts(t *testing.T) {
	undated := post("undated", "Go", "", false)
	older := post("older", "Go", "2024-01-01T00:00:00Z", false)
	newer := post("newer", "Go", "2024-03-01T00:00:00Z", false)

	posts := []*Post{undated, older, newer}
	SortPosts(posts)

	assert.Equal(t, "newer", posts[0].Name)
	assert.Equal(t, "older", posts[1].Name)
	assert.Equal(t, "undated", posts[2].Name)
}

func TestBuildStats(t *testing.T) {
	t.Run("aggregates", func(t *testing.T) {
		posts := []*Post{
			post("alpha", "Go", "2024-03-01T00:00:00Z", true),
			post("bravo", "Go", "2024-02-01T00:00:00Z", false),
			post("charlie", "Python", "2024-01-01T00:00:00Z", false),
		}
		SortPosts(posts)
		stats := BuildStats(posts)

		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 1, stats.Forks)
		assert.Equal(t, 2, stats.Languages)
		assert.Equal(t, "Mar 01, 2024", stats.LastPushed)
	})

	t.Run("empty input", func(t *testing.T) {
		stats := BuildStats(nil)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, "n/a", stats.LastPushed)
	})
}
