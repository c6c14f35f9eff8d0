package config

import (
	"github.com/urfave/cli/v3"

	"github.com/umlindi-lab/wardrisk/pkg/service/geo"
)

// Wards holds CLI flags for ward boundary configuration
type Wards struct {
	path        string
	propertyKey string
}

// Flags returns CLI flags for ward configuration
func (w *Wards) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "wards",
			Usage:       "Path to the ward boundary GeoJSON (empty disables map resolution)",
			Sources:     cli.EnvVars("WARDRISK_WARDS"),
			Destination: &w.path,
		},
		&cli.StringFlag{
			Name:        "ward-property",
			Usage:       "GeoJSON feature property holding the ward name",
			Sources:     cli.EnvVars("WARDRISK_WARD_PROPERTY"),
			Destination: &w.propertyKey,
		},
	}
}

// IsConfigured reports whether ward boundaries are configured
func (w *Wards) IsConfigured() bool {
	return w.path != ""
}

// Configure loads the ward boundary resolver
func (w *Wards) Configure() (*geo.Resolver, error) {
	return geo.NewResolver(w.path, w.propertyKey)
}
