package safe

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/secmon-lab/controltower/pkg/utils/logging"
)

// Close closes closer and logs a failure. A nil closer is ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Warn("failed to close", slog.Any("error", err))
	}
}

// EncodeJSON writes v as JSON to w and logs a failure. Used once the response
// status has been sent and nothing else can be reported to the client.
func EncodeJSON(ctx context.Context, w io.Writer, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.From(ctx).Warn("failed to encode JSON", slog.Any("error", err))
	}
}
