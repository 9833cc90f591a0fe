package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/spf13/cobra"
)

const feedFetchTimeout = 30 * time.Second

var feedURLFlag string

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Fetches the article feed and prints it in feed-dump format",
	Long: `The feed command fetches the configured syndication feed and prints
one block per entry to standard output, in the Title/Link/Date/Tags
format the build command consumes. It writes no files; redirect or
paste the output into the feed dump file yourself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url := feedURLFlag
		if url == "" {
			url = appConfig.FeedURL
		}
		if url == "" {
			return fmt.Errorf("no feed URL configured; set feedURL in the config file or pass --url")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), feedFetchTimeout)
		defer cancel()

		feed, err := gofeed.NewParser().ParseURLWithContext(url, ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch feed %s: %w", url, err)
		}

		for _, item := range feed.Items {
			fmt.Fprint(cmd.OutOrStdout(), formatEntry(item))
		}
		return nil
	},
}

// formatEntry renders one feed entry as a dump block. The date is the
// feed's own published string when present so the build-side parser
// sees the original timezone form.
func formatEntry(item *gofeed.Item) string {
	date := item.Published
	if date == "" && item.PublishedParsed != nil {
		date = item.PublishedParsed.UTC().Format("Mon, 02 Jan 2006 15:04:05 MST")
	}

	tags := "None"
	if len(item.Categories) > 0 {
		quoted := make([]string, len(item.Categories))
		for i, c := range item.Categories {
			quoted[i] = "'" + c + "'"
		}
		tags = "[" + strings.Join(quoted, ", ") + "]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", item.Title)
	fmt.Fprintf(&b, "Link: %s\n", item.Link)
	fmt.Fprintf(&b, "Date: %s\n", date)
	fmt.Fprintf(&b, "Tags: %s\n", tags)
	b.WriteString("---\n")
	return b.String()
}

func init() {
	feedCmd.Flags().StringVar(&feedURLFlag, "url", "", "feed URL (overrides the configured feedURL)")
	rootCmd.AddCommand(feedCmd)
}
