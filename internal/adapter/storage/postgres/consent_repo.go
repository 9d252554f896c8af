package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ConsentRepo implements ports.ConsentRepository. Rows are append-only:
// a withdrawal writes a new row, Update/Delete are intentionally absent.
type ConsentRepo struct {
	pool Pool
}

// NewConsentRepo creates a new ConsentRepo.
func NewConsentRepo(pool Pool) *ConsentRepo {
	return &ConsentRepo{pool: pool}
}

// Create inserts a new consent row within a database transaction.
func (r *ConsentRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.Consent) error {
	query := `INSERT INTO consents (id, user_id, consent_key, granted, consent_version, granted_at,
		withdrawn_at, source, legal_basis, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		c.ID, c.UserID, c.ConsentKey, c.Granted, c.ConsentVersion, c.GrantedAt,
		c.WithdrawnAt, c.Source, c.LegalBasis, c.IPAddress, c.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("insert consent: %w", err)
	}
	return nil
}

// ListByUserID fetches the full consent ledger for a user, newest first.
func (r *ConsentRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Consent, error) {
	query := `SELECT id, user_id, consent_key, granted, consent_version, granted_at, withdrawn_at,
		source, legal_basis, ip_address, user_agent FROM consents WHERE user_id = $1
		ORDER BY COALESCE(granted_at, withdrawn_at) DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list consents: %w", err)
	}
	defer rows.Close()

	var consents []domain.Consent
	for rows.Next() {
		c := domain.Consent{}
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.ConsentKey, &c.Granted, &c.ConsentVersion, &c.GrantedAt,
			&c.WithdrawnAt, &c.Source, &c.LegalBasis, &c.IPAddress, &c.UserAgent,
		); err != nil {
			return nil, fmt.Errorf("scan consent row: %w", err)
		}
		consents = append(consents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate consent rows: %w", err)
	}
	return consents, nil
}

// GetLatest fetches the most recent consent row for (userID, consentKey),
// the one a caller should consult to decide whether consent currently holds.
func (r *ConsentRepo) GetLatest(ctx context.Context, userID string, consentKey string) (*domain.Consent, error) {
	query := `SELECT id, user_id, consent_key, granted, consent_version, granted_at, withdrawn_at,
		source, legal_basis, ip_address, user_agent FROM consents
		WHERE user_id = $1 AND consent_key = $2
		ORDER BY COALESCE(granted_at, withdrawn_at) DESC LIMIT 1`

	c := &domain.Consent{}
	err := r.pool.QueryRow(ctx, query, userID, consentKey).Scan(
		&c.ID, &c.UserID, &c.ConsentKey, &c.Granted, &c.ConsentVersion, &c.GrantedAt,
		&c.WithdrawnAt, &c.Source, &c.LegalBasis, &c.IPAddress, &c.UserAgent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest consent: %w", err)
	}
	return c, nil
}
