package audit

import (
	"context"
	"log/slog"

	"github.com/dangerclosesec/catalog/internal/model"
)

// Change describes one administrative schema mutation.
type Change struct {
	Scope      model.Scope
	Action     string
	TargetType string
	TargetID   string
	Actor      string
	Details    map[string]interface{}
}

// Logger defines the interface for auditing schema operations
type Logger interface {
	// LogSchemaChange records a schema mutation. Failures to record never undo
	// the mutation itself.
	LogSchemaChange(ctx context.Context, change Change) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogSchemaChange implements Logger.LogSchemaChange
func (l *NoOpLogger) LogSchemaChange(ctx context.Context, change Change) error {
	return nil
}

type auditRepository interface {
	Create(ctx context.Context, log *model.SchemaAuditLog) error
}

// DBLogger persists schema changes as audit log rows.
type DBLogger struct {
	repo   auditRepository
	logger *slog.Logger
}

func NewDBLogger(repo auditRepository, logger *slog.Logger) *DBLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &DBLogger{repo: repo, logger: logger}
}

// LogSchemaChange implements Logger.LogSchemaChange
func (l *DBLogger) LogSchemaChange(ctx context.Context, change Change) error {
	entry := &model.SchemaAuditLog{
		Scope:      change.Scope,
		Action:     change.Action,
		TargetType: change.TargetType,
		TargetID:   change.TargetID,
		Actor:      change.Actor,
		Details:    model.JSONMap(change.Details),
	}

	if err := l.repo.Create(ctx, entry); err != nil {
		l.logger.Warn("failed to record schema change",
			"action", change.Action,
			"target", change.TargetID,
			"error", err,
		)
		return err
	}

	return nil
}

type actorKey struct{}

// WithActor attaches the acting administrator to ctx.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the acting administrator stored in ctx, if any.
func ActorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
