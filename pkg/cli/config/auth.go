package config

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/usecase"
)

// Auth holds CLI flags for the shared-secret login gate
type Auth struct {
	accessSecret string
	adminSecret  string
	tokenTTL     time.Duration
}

// Flags returns CLI flags for auth configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "access-secret",
			Usage:       "Shared secret for survey access (empty disables the login gate)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("WARDRISK_ACCESS_SECRET"),
			Destination: &a.accessSecret,
		},
		&cli.StringFlag{
			Name:        "admin-secret",
			Usage:       "Shared secret granting admin access",
			Category:    "Authentication",
			Sources:     cli.EnvVars("WARDRISK_ADMIN_SECRET"),
			Destination: &a.adminSecret,
		},
		&cli.DurationFlag{
			Name:        "token-ttl",
			Usage:       "Lifetime of issued login tokens",
			Category:    "Authentication",
			Value:       12 * time.Hour,
			Sources:     cli.EnvVars("WARDRISK_TOKEN_TTL"),
			Destination: &a.tokenTTL,
		},
	}
}

// IsConfigured reports whether the login gate is enabled
func (a *Auth) IsConfigured() bool {
	return a.accessSecret != ""
}

// Configure builds the auth use case
func (a *Auth) Configure(repo interfaces.Repository) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(repo, a.accessSecret, a.adminSecret,
		usecase.WithTokenTTL(a.tokenTTL))
}
