package bootstrap

import "context"

// AuditLog is one lifecycle entry of the running process (start, shutdown).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
