package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/umlindi-lab/wardrisk/pkg/cli/config"
)

func cmdValidate() *cli.Command {
	var catalogCfg config.Catalog
	var wardsCfg config.Wards

	var flags []cli.Flag
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, wardsCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the catalog and ward boundary files",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ok := color.New(color.FgGreen).SprintFunc()
			warn := color.New(color.FgYellow).SprintFunc()

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}

			fmt.Printf("%s catalog: variant=%s hazards=%d levels=%d hazard_questions=%d capacity_questions=%d\n",
				ok("OK"),
				catalog.Variant,
				len(catalog.Hazards),
				len(catalog.Levels),
				len(catalog.HazardQuestions),
				len(catalog.CapacityQuestions),
			)

			if !wardsCfg.IsConfigured() {
				fmt.Printf("%s wards: no boundary file specified, map resolution will be disabled\n", warn("SKIP"))
				return nil
			}

			resolver, err := wardsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "ward boundary validation failed")
			}

			wards := resolver.Wards()
			fmt.Printf("%s wards: features=%d\n", ok("OK"), len(wards))
			if len(wards) == 0 {
				fmt.Printf("%s wards: no feature exposes a ward name, check --ward-property\n", warn("WARN"))
			}

			return nil
		},
	}
}
