package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserAuditRepo implements ports.UserAuditRepository. Rows are append-only:
// no Update or Delete method exists on this repository by design.
type UserAuditRepo struct {
	pool Pool
}

// NewUserAuditRepo creates a new UserAuditRepo.
func NewUserAuditRepo(pool Pool) *UserAuditRepo {
	return &UserAuditRepo{pool: pool}
}

// Create inserts a new audit row within a database transaction.
func (r *UserAuditRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.UserAudit) error {
	detail, err := json.Marshal(a.Detail)
	if err != nil {
		return fmt.Errorf("marshal audit detail: %w", err)
	}

	query := `INSERT INTO user_audits (id, user_id, event_type, detail, actor_id, correlation_id,
		session_id, ip_address, user_agent, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = tx.Exec(ctx, query,
		a.ID, a.UserID, a.EventType, detail, a.ActorID, a.CorrelationID,
		a.SessionID, a.IPAddress, a.UserAgent, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user audit: %w", err)
	}
	return nil
}

// ListByUserID fetches the most recent audit rows for a user, newest first.
func (r *UserAuditRepo) ListByUserID(ctx context.Context, userID string, limit int) ([]domain.UserAudit, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, user_id, event_type, detail, actor_id, correlation_id, session_id,
		ip_address, user_agent, created_at FROM user_audits WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list user audits: %w", err)
	}
	defer rows.Close()

	var audits []domain.UserAudit
	for rows.Next() {
		a := domain.UserAudit{}
		var detail []byte
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.EventType, &detail, &a.ActorID, &a.CorrelationID,
			&a.SessionID, &a.IPAddress, &a.UserAgent, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user audit row: %w", err)
		}
		if len(detail) > 0 {
			if err := json.Unmarshal(detail, &a.Detail); err != nil {
				return nil, fmt.Errorf("unmarshal audit detail: %w", err)
			}
		}
		audits = append(audits, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user audit rows: %w", err)
	}
	return audits, nil
}
