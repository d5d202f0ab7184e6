package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// filterFlags binds risk filter flags to f
func filterFlags(f *model.RiskFilters) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"q"},
			Usage:       "Match component name, component ID or supplier name",
			Category:    "Filter",
			Destination: &f.SearchQuery,
		},
		&cli.StringFlag{
			Name:        "severity",
			Usage:       "CRITICAL, HIGH, MEDIUM, LOW or ALL",
			Category:    "Filter",
			Destination: &f.Severity,
		},
		&cli.StringFlag{
			Name:        "root-cause",
			Usage:       "Root cause category or ALL",
			Category:    "Filter",
			Destination: &f.RootCauseCategory,
		},
		&cli.StringFlag{
			Name:        "supplier",
			Usage:       "Supplier ID",
			Category:    "Filter",
			Destination: &f.SupplierID,
		},
		&cli.StringFlag{
			Name:        "plant",
			Usage:       "Plant ID",
			Category:    "Filter",
			Destination: &f.PlantID,
		},
		&cli.BoolFlag{
			Name:        "critical",
			Usage:       "Only critical risks",
			Category:    "Filter",
			Destination: &f.OnlyCritical,
		},
		&cli.BoolFlag{
			Name:        "next-two-weeks",
			Usage:       "Only disruptions starting within 14 days",
			Category:    "Filter",
			Destination: &f.OnlyNextTwoWeeks,
		},
		&cli.IntFlag{
			Name:        "horizon",
			Usage:       "Time horizon in weeks (1 to 4, 0 for no limit)",
			Category:    "Filter",
			Destination: &f.TimeHorizon,
		},
	}
}

func jsonFlag(dst *bool) cli.Flag {
	return &cli.BoolFlag{
		Name:        "json",
		Usage:       "Print the response envelope as JSON",
		Destination: dst,
	}
}

// envelopeError converts a failed envelope into a command error
func envelopeError[T any](resp *model.Envelope[T], values ...goerr.Option) error {
	if resp.Success {
		return nil
	}
	return goerr.New(resp.Message, append(values, goerr.V("reason", resp.Reason))...)
}

func output[T any](ctx context.Context, w io.Writer, asJSON bool, resp *model.Envelope[T], render func(io.Writer, T)) {
	if asJSON {
		safe.EncodeJSON(ctx, w, resp)
		return
	}
	if resp.Success {
		render(w, resp.Data)
	}
}

func cmdRisks() *cli.Command {
	var filters model.RiskFilters
	var asJSON bool
	b := newBackend()

	flags := append(filterFlags(&filters), jsonFlag(&asJSON))
	flags = append(flags, b.flags()...)

	return &cli.Command{
		Name:  "risks",
		Usage: "List component risks, highest score first",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			_, uc, err := b.build(ctx)
			if err != nil {
				return err
			}

			resp := uc.Risk.ListRisks(ctx, &filters)
			output(ctx, c.Root().Writer, asJSON, resp, renderRisks)
			return envelopeError(resp)
		},
	}
}

func cmdTimeline() *cli.Command {
	var filters model.RiskFilters
	var selected string
	var asJSON bool
	b := newBackend()

	flags := append(filterFlags(&filters),
		&cli.StringFlag{
			Name:        "selected",
			Usage:       "Risk ID to put first (defaults to the highest score)",
			Destination: &selected,
		},
		jsonFlag(&asJSON),
	)
	flags = append(flags, b.flags()...)

	return &cli.Command{
		Name:  "timeline",
		Usage: "Show the disruption timeline",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			_, uc, err := b.build(ctx)
			if err != nil {
				return err
			}

			resp := uc.Risk.GetTimeline(ctx, &filters, selected)
			output(ctx, c.Root().Writer, asJSON, resp, renderTimeline)
			return envelopeError(resp)
		},
	}
}

func cmdCoach() *cli.Command {
	var asJSON bool
	b := newBackend()

	return &cli.Command{
		Name:      "coach",
		Usage:     "Explain a risk and list its mitigation options",
		ArgsUsage: "<riskId>",
		Flags:     append([]cli.Flag{jsonFlag(&asJSON)}, b.flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("coach requires exactly one risk ID")
			}
			riskID := c.Args().Get(0)

			_, uc, err := b.build(ctx)
			if err != nil {
				return err
			}

			resp := uc.Coach.GetCoachData(ctx, riskID)
			output(ctx, c.Root().Writer, asJSON, resp, renderCoach)
			return envelopeError(resp, goerr.V("risk_id", riskID))
		},
	}
}

func cmdExecute() *cli.Command {
	var asJSON bool
	b := newBackend()

	return &cli.Command{
		Name:      "execute",
		Usage:     "Execute a mitigation option for a risk",
		ArgsUsage: "<riskId> <mitigationId>",
		Flags:     append([]cli.Flag{jsonFlag(&asJSON)}, b.flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return goerr.New("execute requires a risk ID and a mitigation ID")
			}
			riskID, mitigationID := c.Args().Get(0), c.Args().Get(1)

			_, uc, err := b.build(ctx)
			if err != nil {
				return err
			}

			resp := uc.Mitigation.Execute(ctx, mitigationID, riskID)
			if asJSON {
				safe.EncodeJSON(ctx, c.Root().Writer, resp)
			} else if resp.Data != nil {
				renderExecution(c.Root().Writer, resp.Data)
			}

			// an unsuccessful simulated outcome is a valid answer
			if resp.Reason == model.ReasonExecutionFailure {
				return nil
			}
			return envelopeError(resp, goerr.V("risk_id", riskID), goerr.V("mitigation_id", mitigationID))
		},
	}
}
