package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserAudit() *domain.UserAudit {
	return &domain.UserAudit{
		ID: uuid.New(), UserID: uuid.New(), EventType: domain.AuditUserCreated,
		Detail: map[string]any{"reference_id": "ref-001"}, ActorID: "actor-1",
		CorrelationID: "corr-1", SessionID: "sess-1", IPAddress: "203.0.113.5", UserAgent: "Mozilla/5.0",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func userAuditColumnNames() []string {
	return []string{"id", "user_id", "event_type", "detail", "actor_id", "correlation_id",
		"session_id", "ip_address", "user_agent", "created_at"}
}

func TestUserAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserAuditRepo(mock)
	a := newTestUserAudit()
	detail, err := json.Marshal(a.Detail)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_audits").
		WithArgs(a.ID, a.UserID, a.EventType, detail, a.ActorID, a.CorrelationID,
			a.SessionID, a.IPAddress, a.UserAgent, a.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAuditRepo_ListByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserAuditRepo(mock)
	a := newTestUserAudit()
	detail, err := json.Marshal(a.Detail)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .+ FROM user_audits WHERE user_id").
		WithArgs(a.UserID.String(), 50).
		WillReturnRows(pgxmock.NewRows(userAuditColumnNames()).AddRow(
			a.ID, a.UserID, a.EventType, detail, a.ActorID, a.CorrelationID,
			a.SessionID, a.IPAddress, a.UserAgent, a.CreatedAt,
		))

	result, err := repo.ListByUserID(context.Background(), a.UserID.String(), 0)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "ref-001", result[0].Detail["reference_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAuditRepo_ListByUserID_RespectsLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserAuditRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM user_audits WHERE user_id").
		WithArgs("user-1", 5).
		WillReturnRows(pgxmock.NewRows(userAuditColumnNames()))

	result, err := repo.ListByUserID(context.Background(), "user-1", 5)
	assert.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
