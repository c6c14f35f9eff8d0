package config

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
)

// Storage holds CLI flags for artifact storage configuration
type Storage struct {
	outputDir     string
	masterPath    string
	retentionDays int
}

// Flags returns CLI flags for storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory for per-submission artifacts",
			Value:       "responses",
			Sources:     cli.EnvVars("WARDRISK_OUTPUT_DIR"),
			Destination: &s.outputDir,
		},
		&cli.StringFlag{
			Name:        "master-path",
			Usage:       "Path of the append-only master dataset CSV",
			Value:       "responses/master_dataset.csv",
			Sources:     cli.EnvVars("WARDRISK_MASTER_PATH"),
			Destination: &s.masterPath,
		},
		&cli.IntFlag{
			Name:        "retention-days",
			Usage:       "Days to keep dated response folders (0 disables pruning)",
			Value:       30,
			Sources:     cli.EnvVars("WARDRISK_RETENTION_DAYS"),
			Destination: &s.retentionDays,
		},
	}
}

// OutputDir returns the artifact output directory
func (s *Storage) OutputDir() string {
	return s.outputDir
}

// RetentionAge returns the configured retention period, zero when pruning
// is disabled.
func (s *Storage) RetentionAge() time.Duration {
	if s.retentionDays <= 0 {
		return 0
	}
	return time.Duration(s.retentionDays) * 24 * time.Hour
}

// Configure builds the submission store for the given schema variant
func (s *Storage) Configure(variant types.SchemaVariant) (*export.Store, error) {
	return export.NewStore(s.outputDir, s.masterPath, variant)
}
