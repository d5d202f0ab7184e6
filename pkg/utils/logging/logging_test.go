package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controltower/pkg/utils/logging"
)

func TestFrom(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf, slog.LevelInfo, nil)

	ctx := logging.With(context.Background(), logger)
	logging.From(ctx).Info("hello", "risk_id", "RISK001")

	gt.S(t, buf.String()).Contains(`"risk_id":"RISK001"`)
}

func TestFrom_FallsBackToDefault(t *testing.T) {
	gt.V(t, logging.From(context.Background())).Equal(logging.Default())
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	before := logging.Default()
	logging.SetDefault(nil)
	gt.V(t, logging.Default()).Equal(before)
}
