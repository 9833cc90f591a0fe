package model

import (
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultSlug stands in when a repository name contains no
	// alphanumeric characters at all.
	DefaultSlug = "repo"

	// SummaryLimit caps the summary shown on listing pages.
	SummaryLimit = 180

	noDescription = "No description yet."
	dateLabel     = "Jan 02, 2006"
)

// RawLicense is the license object nested inside a repository record.
type RawLicense struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// RawRepo mirrors one element of the repository metadata snapshot.
// Every field is optional; normalization supplies the defaults.
type RawRepo struct {
	Name            string      `json:"name"`
	FullName        string      `json:"full_name"`
	Description     string      `json:"description"`
	HTMLURL         string      `json:"html_url"`
	Homepage        string      `json:"homepage"`
	Language        string      `json:"language"`
	Topics          []string    `json:"topics"`
	License         *RawLicense `json:"license"`
	Fork            bool        `json:"fork"`
	DefaultBranch   string      `json:"default_branch"`
	StargazersCount int         `json:"stargazers_count"`
	ForksCount      int         `json:"forks_count"`
	WatchersCount   int         `json:"watchers_count"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
	PushedAt        string      `json:"pushed_at"`
}

// Post is a normalized repository record, ready to render. Build one
// with NewPost; the derived fields (Slug, Summary, SortKey, Tags,
// Plan) are computed there and never mutated afterwards.
type Post struct {
	Slug          string
	Name          string
	FullName      string
	Description   string
	Summary       string
	HTMLURL       string
	Homepage      string
	Language      string
	Topics        []string
	License       string
	Fork          bool
	DefaultBranch string
	Stars         int
	Forks         int
	Watchers      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PushedAt      time.Time

	// SortKey is the freshest activity signal available: pushed,
	// else updated, else created, else the zero time.
	SortKey time.Time

	// Tags is the language first, then "fork" for forks, then the
	// topics in their original order.
	Tags []string

	// Plan is the planned-changes blurb, set only for forks.
	Plan string
}

// NewPost normalizes a raw repository record. Malformed or missing
// optional fields fall back to defaults; this never fails.
func NewPost(raw RawRepo) *Post {
	name := raw.Name
	if name == "" {
		name = "untitled"
	}
	fullName := raw.FullName
	if fullName == "" {
		fullName = name
	}
	description := strings.TrimSpace(raw.Description)
	if description == "" {
		description = noDescription
	}
	language := raw.Language
	if language == "" {
		language = "Unspecified"
	}
	branch := raw.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	license := ""
	if raw.License != nil {
		license = raw.License.Name
	}

	p := &Post{
		Slug:          Slugify(name),
		Name:          name,
		FullName:      fullName,
		Description:   description,
		Summary:       summarize(description),
		HTMLURL:       raw.HTMLURL,
		Homepage:      raw.Homepage,
		Language:      language,
		Topics:        raw.Topics,
		License:       license,
		Fork:          raw.Fork,
		DefaultBranch: branch,
		Stars:         raw.StargazersCount,
		Forks:         raw.ForksCount,
		Watchers:      raw.WatchersCount,
		CreatedAt:     ParseDate(raw.CreatedAt),
		UpdatedAt:     ParseDate(raw.UpdatedAt),
		PushedAt:      ParseDate(raw.PushedAt),
	}

	switch {
	case !p.PushedAt.IsZero():
		p.SortKey = p.PushedAt
	case !p.UpdatedAt.IsZero():
		p.SortKey = p.UpdatedAt
	default:
		p.SortKey = p.CreatedAt
	}

	p.Tags = buildPostTags(p)
	if p.Fork {
		p.Plan = plannedChanges(p.Language)
	}
	return p
}

// CreatedLabel formats the creation date for display.
func (p *Post) CreatedLabel() string { return DateLabel(p.CreatedAt) }

// UpdatedLabel formats the last-updated date for display.
func (p *Post) UpdatedLabel() string { return DateLabel(p.UpdatedAt) }

// PushedLabel formats the last-pushed date for display.
func (p *Post) PushedLabel() string { return DateLabel(p.PushedAt) }

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier: lower-cased, every run of
// characters outside [a-z0-9] collapsed to one hyphen, hyphens
// trimmed from both ends. An empty result becomes DefaultSlug.
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = nonSlug.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return DefaultSlug
	}
	return value
}

// ParseDate parses an ISO-8601 timestamp, with or without an offset
// (a trailing Z means UTC). Anything unparsable yields the zero time.
func ParseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DateLabel renders a timestamp as a short human date, or "n/a" for
// the zero time.
func DateLabel(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	return t.Format(dateLabel)
}

func summarize(description string) string {
	runes := []rune(description)
	if len(runes) <= SummaryLimit {
		return description
	}
	return string(runes[:SummaryLimit-3]) + "..."
}

func buildPostTags(p *Post) []string {
	tags := []string{}
	if p.Language != "" {
		tags = append(tags, p.Language)
	}
	if p.Fork {
		tags = append(tags, "fork")
	}
	tags = append(tags, p.Topics...)
	return tags
}

const planPreamble = "Keep this fork close to upstream while tailoring it for my workflows. " +
	"Document setup, add CI, and keep dependencies up to date."

// plannedChanges picks a language-appropriate variant of the fork
// plan. The match is a loose substring check on the language name.
func plannedChanges(language string) string {
	lang := strings.ToLower(language)
	if lang == "" {
		lang = "project"
	}
	var extra string
	switch {
	case strings.Contains(lang, "python"):
		extra = " Add type hints, tighten linting (ruff/black), and flesh out tests before feature work."
	case strings.Contains(lang, "js") || strings.Contains(lang, "typescript"):
		extra = " Add linting/formatting, wire a minimal test runner, and improve DX docs."
	case lang == "c" || lang == "cpp" || lang == "c++":
		extra = " Add formatting/tooling, improve README build steps, and harden with small unit tests."
	default:
		extra = " Improve docs, add CI coverage, and ship small quality-of-life fixes."
	}
	return planPreamble + extra
}
