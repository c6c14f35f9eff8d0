package config

import (
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for the optional Slack admin notification
type Slack struct {
	oauthToken string
	channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for submission notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("WARDRISK_SLACK_OAUTH_TOKEN"),
			Destination: &s.oauthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for submission notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("WARDRISK_SLACK_CHANNEL"),
			Destination: &s.channel,
		},
	}
}

// IsConfigured reports whether Slack notifications are enabled
func (s *Slack) IsConfigured() bool {
	return s.oauthToken != "" && s.channel != ""
}

// OAuthToken returns the configured OAuth token
func (s *Slack) OAuthToken() string {
	return s.oauthToken
}

// Channel returns the configured channel
func (s *Slack) Channel() string {
	return s.channel
}
