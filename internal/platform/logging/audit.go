package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// LogAuditEvent logs a structured audit event.
//
// Args:
//   - action: what was attempted (e.g. "relay")
//   - actor: who triggered it; anonymous web submissions use "website-form"
//   - resourceType: the kind of resource (e.g. "inquiry")
//   - resourceID: correlation identifier for the resource, usually the request ID
//   - result: AuditSuccess or AuditFailure
//   - details: optional additional details
func LogAuditEvent(
	ctx context.Context,
	action, actor, resourceType, resourceID, result string,
	details map[string]any,
) {
	LoggerFromContext(ctx).Info("audit event",
		zap.String("audit.action", action),
		zap.String("audit.actor", actor),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
		zap.Any("audit.details", details),
	)
}
