// Package notify defines the notification interface and implementations
// for anomaly delivery.
package notify

import (
	"context"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// Notifier defines the interface for delivering detected anomalies to an
// operator-facing channel. Delivery is best effort: detection never fails
// because a webhook is down.
type Notifier interface {
	SendAnomaly(ctx context.Context, a *domain.Anomaly) error
}
