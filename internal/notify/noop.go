package notify

import (
	"context"
	"log/slog"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded anomalies. It is
// used when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards anomalies with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendAnomaly logs and discards an anomaly.
func (n *NoOpNotifier) SendAnomaly(_ context.Context, a *domain.Anomaly) error {
	n.log.Debug("notification discarded (no backend configured)",
		"org_id", a.OrgID,
		"anomaly_type", a.Type,
		"severity", a.Severity,
	)
	return nil
}

// compile-time interface check.
var _ Notifier = (*NoOpNotifier)(nil)
