package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArticleDate(t *testing.T) {
	t.Run("named zone taken as utc", func(t *testing.T) {
		got := ParseArticleDate("Fri, 19 Dec 2025 13:16:15 GMT")
		assert.True(t, got.Equal(time.Date(2025, 12, 19, 13, 16, 15, 0, time.UTC)))
	})

	t.Run("numeric offset", func(t *testing.T) {
		got := ParseArticleDate("Thu, 01 Feb 2024 10:00:00 +0300")
		assert.True(t, got.Equal(time.Date(2024, 2, 1, 7, 0, 0, 0, time.UTC)))
	})

	t.Run("garbage yields zero", func(t *testing.T) {
		assert.True(t, ParseArticleDate("yesterday").IsZero())
	})
}

func TestParseArticles(t *testing.T) {
	dump := `Title: Older Post
Link: https://example.com/older
Date: Mon, 01 Jan 2024 09:00:00 GMT
Tags: ['a', 'b']
---
Title: Newer Post
Link: https://example.com/newer
Date: Fri, 19 Dec 2025 13:16:15 GMT
Tags: None
---
Title: No Link Here
Date: Mon, 01 Jan 2024 09:00:00 GMT
Tags: None
---
Title: Undated Post
Link: https://example.com/undated
Tags: None
---
`
	articles := ParseArticles(dump)
	require.Len(t, articles, 3)

	t.Run("sorted newest first, dateless last", func(t *testing.T) {
		assert.Equal(t, "Newer Post", articles[0].Title)
		assert.Equal(t, "Older Post", articles[1].Title)
		assert.Equal(t, "Undated Post", articles[2].Title)
		assert.True(t, articles[2].Published.IsZero())
	})

	t.Run("bracketed quoted tags", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, articles[1].Tags)
	})

	t.Run("tags none means empty", func(t *testing.T) {
		assert.Empty(t, articles[0].Tags)
	})

	t.Run("blocks without a link are dropped", func(t *testing.T) {
		for _, a := range articles {
			assert.NotEqual(t, "No Link Here", a.Title)
		}
	})
}

func TestParseArticleTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"none literal", "None", nil},
		{"none lowercase", "none", nil},
		{"empty", "", nil},
		{"single quoted", "['go']", []string{"go"}},
		{"double quoted", `["go", "cli"]`, []string{"go", "cli"}},
		{"mixed spacing", "[ 'a' ,'b' ]", []string{"a", "b"}},
		{"unquoted", "[a, b]", []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseArticleTags(tc.in))
		})
	}
}

func TestPublishedLabel(t *testing.T) {
	a := Article{Published: time.Date(2025, 12, 19, 13, 16, 15, 0, time.UTC)}
	assert.Equal(t, "Dec 19, 2025", a.PublishedLabel())
	assert.Equal(t, "n/a", Article{}.PublishedLabel())
}
