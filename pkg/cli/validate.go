package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/cli/config"
	"github.com/secmon-lab/controltower/pkg/domain/types"
	"github.com/secmon-lab/controltower/pkg/repository/memory"
	"github.com/secmon-lab/controltower/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var seedFile string

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a seed file and check its consistency",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "seed-file",
				Usage:       "TOML seed file to validate",
				Required:    true,
				Sources:     cli.EnvVars("CONTROLTOWER_SEED_FILE"),
				Destination: &seedFile,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()
			today := types.DateOf(time.Now())

			// Step 1: Parse and validate every record
			seed, err := config.LoadSeedFile(seedFile, today)
			if err != nil {
				return goerr.Wrap(err, "seed validation failed")
			}

			// Step 2: Load into a repository to catch storage constraints
			if _, err := memory.NewWithSeed(ctx, seed); err != nil {
				return goerr.Wrap(err, "seed cannot be loaded")
			}

			logger.Info("Seed validation passed",
				"path", seedFile,
				"suppliers", len(seed.Suppliers),
				"plants", len(seed.Plants),
				"risks", len(seed.Risks),
			)

			// Step 3: Consistency check
			issues := config.Inspect(seed, today)
			if len(issues) > 0 {
				for _, issue := range issues {
					logger.Warn("Seed consistency issue found",
						"risk_id", issue.RiskID,
						"message", issue.Message,
					)
				}
				return fmt.Errorf("seed consistency check found %d issue(s)", len(issues))
			}

			logger.Info("Seed consistency check passed")
			return nil
		},
	}
}
