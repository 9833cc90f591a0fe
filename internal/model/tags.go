package model

import (
	"sort"
	"strings"
)

// Tag is one label shared by a group of posts.
type Tag struct {
	Name  string
	Slug  string
	Count int
	Posts []*Post
}

// Stats are the aggregate figures shown on the home page.
type Stats struct {
	Total      int
	Forks      int
	Languages  int
	LastPushed string
}

// SortPosts orders posts by sort key, most recent activity first.
func SortPosts(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].SortKey.After(posts[j].SortKey)
	})
}

// BuildTags groups posts by every tag they carry. A post with N tags
// lands in N groups. Each group's members are ordered by sort key
// descending; the group list itself is alphabetical, case-insensitive.
func BuildTags(posts []*Post) []Tag {
	groups := make(map[string][]*Post)
	for _, p := range posts {
		for _, tag := range p.Tags {
			groups[tag] = append(groups[tag], p)
		}
	}
	tags := make([]Tag, 0, len(groups))
	for name, members := range groups {
		SortPosts(members)
		tags = append(tags, Tag{
			Name:  name,
			Slug:  Slugify(name),
			Count: len(members),
			Posts: members,
		})
	}
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i].Name) < strings.ToLower(tags[j].Name)
	})
	return tags
}

// BuildStats computes the home page aggregates. The posts slice must
// already be sorted most-recent first; the last-pushed label comes
// from its head.
func BuildStats(posts []*Post) Stats {
	stats := Stats{Total: len(posts), LastPushed: "n/a"}
	languages := make(map[string]struct{})
	for _, p := range posts {
		if p.Fork {
			stats.Forks++
		}
		if p.Language != "" {
			languages[p.Language] = struct{}{}
		}
	}
	stats.Languages = len(languages)
	if len(posts) > 0 {
		stats.LastPushed = posts[0].PushedLabel()
	}
	return stats
}
