package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/catalog/internal/audit"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	entries []*model.SchemaAuditLog
	err     error
}

func (r *recordingRepo) Create(ctx context.Context, log *model.SchemaAuditLog) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, log)
	return nil
}

func TestDBLoggerRecordsChange(t *testing.T) {
	repo := &recordingRepo{}
	logger := audit.NewDBLogger(repo, nil)

	err := logger.LogSchemaChange(context.Background(), audit.Change{
		Scope:      model.ScopeSurvey,
		Action:     model.ActionFieldCreate,
		TargetType: "field",
		TargetID:   "f-1",
		Actor:      "admin-1",
		Details:    map[string]interface{}{"field_key": "nps_score"},
	})
	require.NoError(t, err)
	require.Len(t, repo.entries, 1)

	entry := repo.entries[0]
	assert.Equal(t, model.ScopeSurvey, entry.Scope)
	assert.Equal(t, model.ActionFieldCreate, entry.Action)
	assert.Equal(t, "admin-1", entry.Actor)
	assert.Equal(t, "nps_score", entry.Details["field_key"])
}

func TestDBLoggerReturnsRepositoryError(t *testing.T) {
	repo := &recordingRepo{err: errors.New("db down")}
	logger := audit.NewDBLogger(repo, nil)

	err := logger.LogSchemaChange(context.Background(), audit.Change{Action: model.ActionModuleDelete})
	assert.EqualError(t, err, "db down")
}

func TestActorContext(t *testing.T) {
	ctx := audit.WithActor(context.Background(), "admin-7")
	assert.Equal(t, "admin-7", audit.ActorFrom(ctx))
	assert.Equal(t, "", audit.ActorFrom(context.Background()))
}
