package config

// Config holds everything the build needs to know about the site and
// where its inputs and outputs live. All paths are relative to the
// working directory unless absolute.
type Config struct {
	SiteTitle    string   `mapstructure:"siteTitle"`
	Description  string   `mapstructure:"description"`
	BaseURL      string   `mapstructure:"baseURL"`
	OutputDir    string   `mapstructure:"outputDir"`
	AssetsDir    string   `mapstructure:"assetsDir"`
	TemplatesDir string   `mapstructure:"templatesDir"`
	DataFile     string   `mapstructure:"dataFile"`
	FeedFile     string   `mapstructure:"feedFile"`
	PinnedFile   string   `mapstructure:"pinnedFile"`
	FeedURL      string   `mapstructure:"feedURL"`
	Featured     []string `mapstructure:"featured"`
}
