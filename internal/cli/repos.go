package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/guijosegon/portfolio/internal/application"
	"github.com/guijosegon/portfolio/internal/domain/model"
)

var reposJSON bool

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Print the repository list shown on the portfolio page",
	Long: `Print the display list: public repositories without forks or hidden
names, most recently pushed first. The list is read through the same shared
cache the server uses, so a fresh entry is printed without contacting GitHub.`,
	Args: cobra.NoArgs,
	RunE: runRepos,
}

func init() {
	reposCmd.Flags().BoolVar(&reposJSON, "json", false, "Print the list as JSON")
}

func runRepos(cmd *cobra.Command, _ []string) error {
	d, err := openDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()

	showcase := application.DefaultShowcase()
	list := showcase.Project(d.cache.Load(cmd.Context()))

	return printRepos(cmd.OutOrStdout(), list, showcase, reposJSON, time.Now())
}

type repoLine struct {
	Name     string    `json:"name"`
	URL      string    `json:"html_url"`
	PushedAt time.Time `json:"pushed_at"`
	Featured bool      `json:"featured"`
	Activity string    `json:"activity"`
	Tags     []string  `json:"tags"`
}

// printRepos writes list either as a JSON array or as an aligned table.
func printRepos(w io.Writer, list []model.Repository, showcase application.Showcase, asJSON bool, now time.Time) error {
	featured, _ := showcase.Partition(list)
	isFeatured := make(map[int64]bool, len(featured))
	for _, r := range featured {
		isFeatured[r.ID] = true
	}

	lines := make([]repoLine, 0, len(list))
	for _, r := range list {
		tags, ok := showcase.TagsFor(r.Name)
		if !ok {
			tags = []string{}
		}
		lines = append(lines, repoLine{
			Name:     r.Name,
			URL:      r.URL,
			PushedAt: r.PushedAt,
			Featured: isFeatured[r.ID],
			Activity: application.ClassifyActivity(r.PushedAt, now).String(),
			Tags:     tags,
		})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(lines); err != nil {
			return fmt.Errorf("encode repositories: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPUSHED\tACTIVITY\tFEATURED\tTAGS")
	for _, l := range lines {
		star := ""
		if l.Featured {
			star = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			l.Name, l.PushedAt.Format(time.DateOnly), l.Activity, star, strings.Join(l.Tags, ", "))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write repositories: %w", err)
	}
	return nil
}
