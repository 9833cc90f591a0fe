package site

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/aueskinj/Resume/internal/config"
	"github.com/aueskinj/Resume/internal/model"
)

// featuredCount is how many posts the home page highlights when no
// explicit featured list is configured.
const featuredCount = 3

// homeArticleCount caps the external articles shown on the home page.
const homeArticleCount = 3

// PinnedEntry is one hand-authored detail page, keyed by exact
// repository name in the pinned content file. The body is markdown.
type PinnedEntry struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Site is the fully loaded and aggregated input to rendering.
type Site struct {
	Config      config.Config
	Posts       []*model.Post
	Articles    []model.Article
	Tags        []model.Tag
	Stats       model.Stats
	Featured    []*model.Post
	Pinned      map[string]PinnedEntry
	GeneratedAt string
}

// Load reads every input, normalizes the records, and computes the
// aggregates. Only the repository data file is required; the feed
// dump and pinned content file may be absent.
func Load(cfg config.Config) (*Site, error) {
	posts, err := LoadPosts(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	model.SortPosts(posts)

	articles, err := LoadArticles(cfg.FeedFile)
	if err != nil {
		return nil, err
	}

	pinned, err := LoadPinned(cfg.PinnedFile)
	if err != nil {
		return nil, err
	}

	s := &Site{
		Config:      cfg,
		Posts:       posts,
		Articles:    articles,
		Tags:        model.BuildTags(posts),
		Stats:       model.BuildStats(posts),
		Pinned:      pinned,
		GeneratedAt: model.DateLabel(time.Now().UTC()),
	}
	s.Featured = s.featured()

	log.WithFields(log.Fields{
		"posts":    len(s.Posts),
		"articles": len(s.Articles),
		"tags":     len(s.Tags),
		"pinned":   len(s.Pinned),
	}).Debug("Site data loaded")
	return s, nil
}

// LoadPosts reads and normalizes the repository metadata snapshot.
// A missing or unreadable data file is fatal to the build.
func LoadPosts(path string) ([]*model.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("repository data file %s: %w", path, err)
	}
	var raw []model.RawRepo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing repository data file %s: %w", path, err)
	}
	posts := make([]*model.Post, 0, len(raw))
	for _, r := range raw {
		posts = append(posts, model.NewPost(r))
	}
	return posts, nil
}

// LoadArticles reads the feed dump. A missing file simply means no
// external articles.
func LoadArticles(path string) ([]model.Article, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.WithField("path", path).Debug("No feed dump found, skipping external articles")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading feed dump %s: %w", path, err)
	}
	return model.ParseArticles(string(data)), nil
}

// LoadPinned reads the keyed pinned-content file. A missing file
// means no pinned pages.
func LoadPinned(path string) (map[string]PinnedEntry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading pinned content file %s: %w", path, err)
	}
	pinned := make(map[string]PinnedEntry)
	if err := yaml.Unmarshal(data, &pinned); err != nil {
		return nil, fmt.Errorf("parsing pinned content file %s: %w", path, err)
	}
	return pinned, nil
}

// featured resolves the configured featured list against the loaded
// posts, falling back to the top posts by stars then recency.
func (s *Site) featured() []*model.Post {
	if len(s.Config.Featured) > 0 {
		byName := make(map[string]*model.Post, len(s.Posts))
		for _, p := range s.Posts {
			byName[p.Name] = p
		}
		var picks []*model.Post
		for _, name := range s.Config.Featured {
			if p, ok := byName[name]; ok {
				picks = append(picks, p)
			} else {
				log.WithField("name", name).Warn("Featured repository not found in data file")
			}
		}
		if len(picks) > 0 {
			return picks
		}
	}

	ranked := make([]*model.Post, len(s.Posts))
	copy(ranked, s.Posts)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Stars != ranked[j].Stars {
			return ranked[i].Stars > ranked[j].Stars
		}
		return ranked[i].SortKey.After(ranked[j].SortKey)
	})
	if len(ranked) > featuredCount {
		ranked = ranked[:featuredCount]
	}
	return ranked
}

// homeArticles is the slice of articles the home page shows.
func (s *Site) homeArticles() []model.Article {
	if len(s.Articles) > homeArticleCount {
		return s.Articles[:homeArticleCount]
	}
	return s.Articles
}
