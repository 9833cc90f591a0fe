package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aueskinj/Resume/internal/config"
)

var cfgFile string
var verbose bool
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "resume",
	Short: "Personal portfolio and blog generator",
	Long: `resume turns a JSON snapshot of repository metadata and a
feed dump of external articles into a static portfolio site.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("siteTitle", "My Portfolio")
	v.SetDefault("description", "Projects, forks, and writing")
	v.SetDefault("baseURL", "")
	v.SetDefault("outputDir", "dist")
	v.SetDefault("assetsDir", "assets")
	v.SetDefault("templatesDir", "templates")
	v.SetDefault("dataFile", "public_repos.json")
	v.SetDefault("feedFile", "medium.txt")
	v.SetDefault("pinnedFile", "pinned.yaml")
	v.SetDefault("feedURL", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("RESUME")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			log.Debug("No config file found, using defaults and environment variables")
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.WithField("file", v.ConfigFileUsed()).Debug("Using config file")
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}
