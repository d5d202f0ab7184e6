package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controltower/pkg/cli"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "controltower.log")
	base := []string{"controltower", "--log-format", "json", "--log-output", logPath}
	return cli.Run(context.Background(), append(base, args...), "test")
}

func TestRun_Risks(t *testing.T) {
	t.Run("lists risks", func(t *testing.T) {
		gt.NoError(t, run(t, "risks", "--latency", "0", "--critical"))
	})

	t.Run("json output", func(t *testing.T) {
		gt.NoError(t, run(t, "risks", "--latency", "0", "--json", "--severity", "HIGH"))
	})

	t.Run("invalid filter", func(t *testing.T) {
		gt.Error(t, run(t, "risks", "--latency", "0", "--severity", "EXTREME"))
	})

	t.Run("seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.toml")
		content := `
[[supplier]]
id = "SUP001"
name = "Acme Electronics"

[[plant]]
id = "PLT001"
name = "Austin Assembly"

[[risk]]
id = "RISK001"
component_id = "IC-78201-A"
component_name = "Power Management IC"
supplier_id = "SUP001"
plant_id = "PLT001"
demand_per_day = 2500
current_stock = 7500
disruption_start = "today+2"
disruption_end = "today+14"
severity = "CRITICAL"
root_cause_category = "FACTORY_STRIKE"
risk_score = 92
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
		gt.NoError(t, run(t, "risks", "--latency", "0", "--seed-file", path))
	})

	t.Run("missing seed file", func(t *testing.T) {
		gt.Error(t, run(t, "risks", "--latency", "0", "--seed-file", filepath.Join(t.TempDir(), "none.toml")))
	})
}

func TestRun_Timeline(t *testing.T) {
	gt.NoError(t, run(t, "timeline", "--latency", "0", "--horizon", "2", "--selected", "RISK004"))
}

func TestRun_Coach(t *testing.T) {
	t.Run("known risk", func(t *testing.T) {
		gt.NoError(t, run(t, "coach", "--latency", "0", "RISK001"))
	})

	t.Run("unknown risk", func(t *testing.T) {
		gt.Error(t, run(t, "coach", "--latency", "0", "RISK404"))
	})

	t.Run("missing argument", func(t *testing.T) {
		gt.Error(t, run(t, "coach", "--latency", "0"))
	})
}

func TestRun_Execute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gt.NoError(t, run(t, "execute", "--latency", "0", "--execution-delay", "0", "--success-rate", "1", "RISK001", "MIT-RISK001-1"))
	})

	t.Run("simulated failure is not an error", func(t *testing.T) {
		gt.NoError(t, run(t, "execute", "--latency", "0", "--execution-delay", "0", "--success-rate", "0", "RISK001", "MIT-RISK001-1"))
	})

	t.Run("unknown mitigation", func(t *testing.T) {
		gt.Error(t, run(t, "execute", "--latency", "0", "--execution-delay", "0", "RISK001", "MIT-RISK002-1"))
	})

	t.Run("unknown risk", func(t *testing.T) {
		gt.Error(t, run(t, "execute", "--latency", "0", "--execution-delay", "0", "RISK999", "MIT-RISK999-1"))
	})
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"controltower", "--log-level", "loud", "risks"}, "test")
	gt.Error(t, err)
}
