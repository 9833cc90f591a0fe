package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aueskinj/Resume/internal/config"
	"github.com/aueskinj/Resume/internal/model"
)

// PageData is the context every template receives. RootPrefix is the
// relative path back to the site root (".", "..", "../..") so asset
// and nav links work from any output depth.
type PageData struct {
	SiteTitle   string
	BaseURL     string
	Title       string
	Description string
	RootPrefix  string
	GeneratedAt string
}

type homeData struct {
	PageData
	Featured []*model.Post
	Posts    []*model.Post
	Stats    model.Stats
	Articles []model.Article
}

type projectsData struct {
	PageData
	Posts []*model.Post
}

type tagsData struct {
	PageData
	Tags []model.Tag
}

type tagData struct {
	PageData
	Tag   model.Tag
	Posts []*model.Post
}

type postData struct {
	PageData
	Repo *model.Post
}

type pinnedData struct {
	PageData
	Repo *model.Post
	Body template.HTML
}

// Build runs the whole pipeline: load inputs, reset the output
// directory, copy assets, render every page. It returns the number of
// repository posts rendered.
func Build(cfg config.Config) (int, error) {
	s, err := Load(cfg)
	if err != nil {
		return 0, err
	}
	if err := s.Render(); err != nil {
		return 0, err
	}
	return len(s.Posts), nil
}

// Render writes the complete site into the output directory. The
// directory is deleted and rebuilt from scratch on every run.
func (s *Site) Render() error {
	cfg := s.Config

	templates, err := parseTemplates(cfg.TemplatesDir)
	if err != nil {
		return err
	}

	log.WithField("dir", cfg.OutputDir).Debug("Resetting output directory")
	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to remove output directory %s: %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	if _, err := os.Stat(cfg.AssetsDir); err == nil {
		if err := copyDirContents(cfg.AssetsDir, filepath.Join(cfg.OutputDir, "assets")); err != nil {
			return fmt.Errorf("failed to copy assets: %w", err)
		}
	} else {
		log.WithField("dir", cfg.AssetsDir).Warn("Assets directory not found, skipping copy")
	}

	base := PageData{
		SiteTitle:   cfg.SiteTitle,
		BaseURL:     cfg.BaseURL,
		GeneratedAt: s.GeneratedAt,
	}

	home := homeData{
		PageData: base,
		Featured: s.Featured,
		Posts:    s.Posts,
		Stats:    s.Stats,
		Articles: s.homeArticles(),
	}
	home.Title = "Home"
	home.Description = "Blog listing of repositories and forks"
	home.RootPrefix = "."
	if err := renderPage(templates, "index.html", home, filepath.Join(cfg.OutputDir, "index.html")); err != nil {
		return err
	}

	projects := projectsData{PageData: base, Posts: s.Posts}
	projects.Title = "Projects"
	projects.Description = "Every public repository, newest activity first"
	projects.RootPrefix = ".."
	if err := renderPage(templates, "projects.html", projects, filepath.Join(cfg.OutputDir, "projects", "index.html")); err != nil {
		return err
	}

	tagsIndex := tagsData{PageData: base, Tags: s.Tags}
	tagsIndex.Title = "Tags"
	tagsIndex.Description = "Browse repositories by language or topic"
	tagsIndex.RootPrefix = ".."
	if err := renderPage(templates, "tags.html", tagsIndex, filepath.Join(cfg.OutputDir, "tags", "index.html")); err != nil {
		return err
	}

	for _, tag := range s.Tags {
		page := tagData{PageData: base, Tag: tag, Posts: tag.Posts}
		page.Title = "Tag: " + tag.Name
		page.Description = "Repositories tagged with " + tag.Name
		page.RootPrefix = "../.."
		dest := filepath.Join(cfg.OutputDir, "tags", tag.Slug, "index.html")
		if err := renderPage(templates, "tag.html", page, dest); err != nil {
			return err
		}
	}

	for _, post := range s.Posts {
		page := postData{PageData: base, Repo: post}
		page.Title = post.Name
		page.Description = post.Summary
		page.RootPrefix = "../.."
		dest := filepath.Join(cfg.OutputDir, "posts", post.Slug, "index.html")
		if err := renderPage(templates, "post.html", page, dest); err != nil {
			return err
		}
	}

	if err := s.renderPinned(templates, base); err != nil {
		return err
	}

	return nil
}

// renderPinned writes one detail page per pinned entry that names a
// loaded repository. Entries pointing at unknown names are skipped
// with a warning rather than failing the build.
func (s *Site) renderPinned(templates *template.Template, base PageData) error {
	if len(s.Pinned) == 0 {
		return nil
	}
	byName := make(map[string]*model.Post, len(s.Posts))
	for _, p := range s.Posts {
		byName[p.Name] = p
	}
	titleCaser := cases.Title(language.English)
	for name, entry := range s.Pinned {
		post, ok := byName[name]
		if !ok {
			log.WithField("name", name).Warn("Pinned entry has no matching repository, skipping")
			continue
		}
		body, err := renderMarkdown(entry.Body)
		if err != nil {
			return fmt.Errorf("rendering pinned body for %s: %w", name, err)
		}
		page := pinnedData{PageData: base, Repo: post, Body: body}
		page.Title = entry.Title
		if page.Title == "" {
			page.Title = titleCaser.String(strings.ReplaceAll(post.Slug, "-", " "))
		}
		page.Description = post.Summary
		page.RootPrefix = "../.."
		dest := filepath.Join(s.Config.OutputDir, "pinned", post.Slug, "index.html")
		if err := renderPage(templates, "pinned.html", page, dest); err != nil {
			return err
		}
	}
	return nil
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

func renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// parseTemplates loads every .html file under the templates dir.
// base.html and the partials are parsed first so page templates can
// reference the shared blocks they define.
func parseTemplates(dir string) (*template.Template, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("templates directory %s not found", dir)
	}

	var basePath string
	var partials []string
	var pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}
		switch {
		case d.Name() == "base.html" && filepath.Dir(path) == dir:
			basePath = path
		case strings.HasPrefix(filepath.Dir(path), filepath.Join(dir, "partials")):
			partials = append(partials, path)
		default:
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find templates in %s: %w", dir, err)
	}
	if basePath == "" {
		return nil, fmt.Errorf("base.html not found in templates directory %s", dir)
	}

	funcs := template.FuncMap{"slugify": model.Slugify}
	templates, err := template.New("base.html").Funcs(funcs).ParseFiles(append([]string{basePath}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base template and partials: %w", err)
	}
	if len(pages) > 0 {
		templates, err = templates.ParseFiles(pages...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page templates: %w", err)
		}
	}
	return templates, nil
}

func renderPage(templates *template.Template, name string, data interface{}, dest string) error {
	if templates.Lookup(name) == nil {
		return fmt.Errorf("template %s not found", name)
	}
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dest, err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", dest, err)
	}
	defer out.Close()
	if err := templates.ExecuteTemplate(out, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s for %s: %w", name, dest, err)
	}
	log.WithFields(log.Fields{"template": name, "dest": dest}).Debug("Rendered page")
	return nil
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		return copyFile(path, dstPath)
	})
}

func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", dstFile, err)
	}

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}
