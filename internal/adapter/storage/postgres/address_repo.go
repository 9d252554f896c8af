package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AddressRepo implements ports.AddressRepository.
type AddressRepo struct {
	pool Pool
}

// NewAddressRepo creates a new AddressRepo.
func NewAddressRepo(pool Pool) *AddressRepo {
	return &AddressRepo{pool: pool}
}

// Create inserts a new address within a database transaction.
func (r *AddressRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Address) error {
	query := `INSERT INTO addresses (id, user_id, type, line1_enc, line2_enc, city_enc, postal_enc,
		country_enc, primary_flag, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		a.ID, a.UserID, a.Type, a.Line1Enc, a.Line2Enc, a.CityEnc, a.PostalEnc,
		a.CountryEnc, a.Primary, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// GetByID fetches an address by UUID string.
func (r *AddressRepo) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	query := `SELECT id, user_id, type, line1_enc, line2_enc, city_enc, postal_enc, country_enc,
		primary_flag, created_at FROM addresses WHERE id = $1`
	return r.scanAddress(r.pool.QueryRow(ctx, query, id))
}

// ListByUserID fetches all addresses for a user, primary first.
func (r *AddressRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Address, error) {
	query := `SELECT id, user_id, type, line1_enc, line2_enc, city_enc, postal_enc, country_enc,
		primary_flag, created_at FROM addresses WHERE user_id = $1 ORDER BY primary_flag DESC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	var addrs []domain.Address
	for rows.Next() {
		a := domain.Address{}
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Type, &a.Line1Enc, &a.Line2Enc, &a.CityEnc, &a.PostalEnc,
			&a.CountryEnc, &a.Primary, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		addrs = append(addrs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address rows: %w", err)
	}
	return addrs, nil
}

// Update persists mutated address fields within a database transaction.
func (r *AddressRepo) Update(ctx context.Context, tx pgx.Tx, a *domain.Address) error {
	query := `UPDATE addresses SET type = $1, line1_enc = $2, line2_enc = $3, city_enc = $4,
		postal_enc = $5, country_enc = $6, primary_flag = $7 WHERE id = $8`

	tag, err := tx.Exec(ctx, query,
		a.Type, a.Line1Enc, a.Line2Enc, a.CityEnc, a.PostalEnc, a.CountryEnc, a.Primary, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("address not found: %s", a.ID)
	}
	return nil
}

// Delete removes an address within a database transaction.
func (r *AddressRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("address not found: %s", id)
	}
	return nil
}

// UnsetPrimary clears the primary flag on every address of a user except
// exceptID (on every address of the user when exceptID is empty),
// preserving the at-most-one-primary invariant before a new primary
// address is inserted or flipped.
func (r *AddressRepo) UnsetPrimary(ctx context.Context, tx pgx.Tx, userID string, exceptID string) error {
	query := `UPDATE addresses SET primary_flag = false WHERE user_id = $1 AND id != $2`
	args := []any{userID, exceptID}
	if exceptID == "" {
		query = `UPDATE addresses SET primary_flag = false WHERE user_id = $1`
		args = args[:1]
	}
	_, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unset primary address: %w", err)
	}
	return nil
}

// PromoteMostRecent flags the most-recently-created remaining address of
// userID as primary. A no-op if the user has no addresses left, since there
// is nothing to promote.
func (r *AddressRepo) PromoteMostRecent(ctx context.Context, tx pgx.Tx, userID string) error {
	query := `UPDATE addresses SET primary_flag = true WHERE id = (
		SELECT id FROM addresses WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1
	)`
	_, err := tx.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("promote most recent address: %w", err)
	}
	return nil
}

func (r *AddressRepo) scanAddress(row pgx.Row) (*domain.Address, error) {
	a := &domain.Address{}
	err := row.Scan(
		&a.ID, &a.UserID, &a.Type, &a.Line1Enc, &a.Line2Enc, &a.CityEnc, &a.PostalEnc,
		&a.CountryEnc, &a.Primary, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan address: %w", err)
	}
	return a, nil
}
