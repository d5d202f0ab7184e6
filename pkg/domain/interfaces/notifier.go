package interfaces

import (
	"context"

	"github.com/secmon-lab/controltower/pkg/domain/model"
)

// Notifier announces mitigation activity to people outside the dashboard
type Notifier interface {
	NotifyMitigation(ctx context.Context, risk *model.ComponentRisk, option *model.MitigationOption, result *model.MitigationExecutionResult) error
}
