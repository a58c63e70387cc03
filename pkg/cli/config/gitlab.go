package config

import (
	"log/slog"

	"github.com/relops-lab/glgate/pkg/service/gitlab"
	"github.com/urfave/cli/v3"
)

// GitLab holds upstream API configuration
type GitLab struct {
	BaseURL  string
	Token    string
	MaxPages int
}

// Flags returns CLI flags for GitLab configuration
func (g *GitLab) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitlab-url",
			Usage:       "GitLab base URL",
			Category:    "GitLab",
			Value:       "https://gitlab.com/",
			Sources:     cli.EnvVars("GITLAB_URL"),
			Destination: &g.BaseURL,
		},
		&cli.StringFlag{
			Name:        "gitlab-token",
			Usage:       "GitLab personal access token",
			Category:    "GitLab",
			Sources:     cli.EnvVars("GITLAB_TOKEN"),
			Destination: &g.Token,
		},
		&cli.IntFlag{
			Name:        "gitlab-max-pages",
			Usage:       "Maximum pages fetched per item listing (0 = unlimited)",
			Category:    "GitLab",
			Value:       0,
			Sources:     cli.EnvVars("GITLAB_MAX_PAGES"),
			Destination: &g.MaxPages,
		},
	}
}

// Configure creates the GitLab API client. A missing token is not a
// startup error; it surfaces as a validation failure on each call.
func (g *GitLab) Configure(opts ...gitlab.Option) *gitlab.Client {
	return gitlab.New(g.BaseURL, g.Token, opts...)
}

// LogValue returns structured log value. The token itself never appears
// in logs.
func (g GitLab) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", g.BaseURL),
		slog.Bool("has_token", g.Token != ""),
		slog.Int("max_pages", g.MaxPages),
	)
}
