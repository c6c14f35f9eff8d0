package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/umlindi-lab/wardrisk/pkg/domain/model/config"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

// Catalog holds CLI flags for the question catalog
type Catalog struct {
	path    string
	variant string
}

// catalogFile is the TOML shape of a catalog file
type catalogFile struct {
	Variant           string         `toml:"variant"`
	Hazards           []string       `toml:"hazards"`
	Levels            []string       `toml:"levels"`
	HazardQuestions   []questionFile `toml:"hazard_question"`
	CapacityQuestions []questionFile `toml:"capacity_question"`
}

type questionFile struct {
	Text    string   `toml:"text"`
	Options []string `toml:"options"`
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a TOML catalog file (empty for the built-in catalog)",
			Sources:     cli.EnvVars("WARDRISK_CATALOG"),
			Destination: &c.path,
		},
		&cli.StringFlag{
			Name:        "schema-variant",
			Usage:       "Schema variant (scored or descriptive), overrides the catalog file",
			Sources:     cli.EnvVars("WARDRISK_SCHEMA_VARIANT"),
			Destination: &c.variant,
		},
	}
}

// Configure loads and validates the catalog
func (c *Catalog) Configure() (*domainConfig.Catalog, error) {
	cat := domainConfig.DefaultCatalog()

	if c.path != "" {
		data, err := os.ReadFile(c.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read catalog file", goerr.T(types.ErrTagDataLoad), goerr.V("path", c.path))
		}

		var file catalogFile
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse catalog file", goerr.T(types.ErrTagDataLoad), goerr.V("path", c.path))
		}

		cat = fromFile(&file)
		logging.Default().Info("Loaded catalog file", "path", c.path)
	}

	if c.variant != "" {
		variant, err := types.ParseSchemaVariant(c.variant)
		if err != nil {
			return nil, err
		}
		cat.Variant = variant
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

func fromFile(file *catalogFile) *domainConfig.Catalog {
	cat := &domainConfig.Catalog{
		Variant: types.SchemaVariant(file.Variant),
		Hazards: file.Hazards,
	}
	if cat.Variant == "" {
		cat.Variant = types.VariantScored
	}

	for _, l := range file.Levels {
		cat.Levels = append(cat.Levels, types.Level(l))
	}
	if len(cat.Levels) == 0 {
		cat.Levels = types.DefaultLevels()
	}

	for _, q := range file.HazardQuestions {
		cat.HazardQuestions = append(cat.HazardQuestions, toQuestion(q))
	}
	for _, q := range file.CapacityQuestions {
		cat.CapacityQuestions = append(cat.CapacityQuestions, toQuestion(q))
	}

	return cat
}

func toQuestion(q questionFile) domainConfig.Question {
	question := domainConfig.Question{Text: q.Text}
	for _, o := range q.Options {
		question.Options = append(question.Options, types.Level(o))
	}
	return question
}
