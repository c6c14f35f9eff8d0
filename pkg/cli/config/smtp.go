package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/umlindi-lab/wardrisk/pkg/service/mail"
)

// SMTP holds CLI flags for outbound mail configuration
type SMTP struct {
	host        string
	port        int
	username    string
	password    string
	from        string
	adminEmails []string
}

// Flags returns CLI flags for SMTP configuration
func (s *SMTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "smtp-host",
			Usage:       "SMTP server host (empty disables mail notifications)",
			Sources:     cli.EnvVars("WARDRISK_SMTP_HOST"),
			Destination: &s.host,
		},
		&cli.IntFlag{
			Name:        "smtp-port",
			Usage:       "SMTP server port",
			Value:       587,
			Sources:     cli.EnvVars("WARDRISK_SMTP_PORT"),
			Destination: &s.port,
		},
		&cli.StringFlag{
			Name:        "smtp-username",
			Usage:       "SMTP username",
			Sources:     cli.EnvVars("WARDRISK_SMTP_USERNAME"),
			Destination: &s.username,
		},
		&cli.StringFlag{
			Name:        "smtp-password",
			Usage:       "SMTP password",
			Sources:     cli.EnvVars("WARDRISK_SMTP_PASSWORD"),
			Destination: &s.password,
		},
		&cli.StringFlag{
			Name:        "smtp-from",
			Usage:       "Sender address for notification mail",
			Sources:     cli.EnvVars("WARDRISK_SMTP_FROM"),
			Destination: &s.from,
		},
		&cli.StringSliceFlag{
			Name:        "admin-email",
			Usage:       "Admin recipient for submission notifications (repeatable)",
			Sources:     cli.EnvVars("WARDRISK_ADMIN_EMAILS"),
			Destination: &s.adminEmails,
		},
	}
}

// IsConfigured reports whether mail notifications are enabled
func (s *SMTP) IsConfigured() bool {
	return s.host != ""
}

// AdminEmails returns the configured admin recipients
func (s *SMTP) AdminEmails() []string {
	return s.adminEmails
}

// Configure builds the SMTP notifier
func (s *SMTP) Configure() (*mail.Notifier, error) {
	if !s.IsConfigured() {
		return nil, goerr.New("smtp-host is not configured")
	}
	if s.from == "" {
		return nil, goerr.New("smtp-from is required when SMTP is configured")
	}

	return mail.New(s.host, s.port, s.username, s.password, s.from)
}
