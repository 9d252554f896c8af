package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts a new user within a database transaction.
func (r *UserRepo) Create(ctx context.Context, tx pgx.Tx, u *domain.User) error {
	query := `INSERT INTO users (id, reference_id, first_name_enc, last_name_enc, email_enc, email_hmac,
		phone_enc, phone_hmac, dob_enc, gender, active, archived_at, anonymized, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := tx.Exec(ctx, query,
		u.ID, u.ReferenceID, u.FirstNameEnc, u.LastNameEnc, u.EmailEnc, u.EmailHMAC,
		u.PhoneEnc, u.PhoneHMAC, u.DOBEnc, u.Gender, u.Active, u.ArchivedAt, u.Anonymized,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by UUID string.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, reference_id, first_name_enc, last_name_enc, email_enc, email_hmac,
		phone_enc, phone_hmac, dob_enc, gender, active, archived_at, anonymized, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

// GetByReferenceID fetches a user by its stable, externally visible reference id.
func (r *UserRepo) GetByReferenceID(ctx context.Context, referenceID string) (*domain.User, error) {
	query := `SELECT id, reference_id, first_name_enc, last_name_enc, email_enc, email_hmac,
		phone_enc, phone_hmac, dob_enc, gender, active, archived_at, anonymized, created_at, updated_at
		FROM users WHERE reference_id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, referenceID))
}

// GetByEmailHMAC fetches a user by the deterministic HMAC search index on email.
func (r *UserRepo) GetByEmailHMAC(ctx context.Context, emailHMAC string) (*domain.User, error) {
	query := `SELECT id, reference_id, first_name_enc, last_name_enc, email_enc, email_hmac,
		phone_enc, phone_hmac, dob_enc, gender, active, archived_at, anonymized, created_at, updated_at
		FROM users WHERE email_hmac = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, emailHMAC))
}

// GetByPhoneHMAC fetches a user by the deterministic HMAC search index on phone.
func (r *UserRepo) GetByPhoneHMAC(ctx context.Context, phoneHMAC string) (*domain.User, error) {
	query := `SELECT id, reference_id, first_name_enc, last_name_enc, email_enc, email_hmac,
		phone_enc, phone_hmac, dob_enc, gender, active, archived_at, anonymized, created_at, updated_at
		FROM users WHERE phone_hmac = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, phoneHMAC))
}

// Update persists mutated user fields within a database transaction.
func (r *UserRepo) Update(ctx context.Context, tx pgx.Tx, u *domain.User) error {
	query := `UPDATE users SET first_name_enc = $1, last_name_enc = $2, email_enc = $3, email_hmac = $4,
		phone_enc = $5, phone_hmac = $6, dob_enc = $7, gender = $8, active = $9, archived_at = $10,
		anonymized = $11, updated_at = $12 WHERE id = $13`

	tag, err := tx.Exec(ctx, query,
		u.FirstNameEnc, u.LastNameEnc, u.EmailEnc, u.EmailHMAC,
		u.PhoneEnc, u.PhoneHMAC, u.DOBEnc, u.Gender, u.Active, u.ArchivedAt,
		u.Anonymized, u.UpdatedAt, u.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", u.ID)
	}
	return nil
}

// List fetches users with active-only filtering and pagination, for
// admin/support search surfaces. HMAC indexes are never used here; this
// is an administrative browse, not a lookup.
func (r *UserRepo) List(ctx context.Context, params ports.UserListParams) ([]domain.User, int64, error) {
	where := ""
	if params.ActiveOnly {
		where = "WHERE active = true"
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM users %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	dataQuery := fmt.Sprintf(`SELECT id, reference_id, first_name_enc, last_name_enc, email_enc, email_hmac,
		phone_enc, phone_hmac, dob_enc, gender, active, archived_at, anonymized, created_at, updated_at
		FROM users %s ORDER BY created_at DESC LIMIT $1 OFFSET $2`, where)

	rows, err := r.pool.Query(ctx, dataQuery, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u := domain.User{}
		if err := rows.Scan(
			&u.ID, &u.ReferenceID, &u.FirstNameEnc, &u.LastNameEnc, &u.EmailEnc, &u.EmailHMAC,
			&u.PhoneEnc, &u.PhoneHMAC, &u.DOBEnc, &u.Gender, &u.Active, &u.ArchivedAt, &u.Anonymized,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, total, nil
}

func (r *UserRepo) scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.ID, &u.ReferenceID, &u.FirstNameEnc, &u.LastNameEnc, &u.EmailEnc, &u.EmailHMAC,
		&u.PhoneEnc, &u.PhoneHMAC, &u.DOBEnc, &u.Gender, &u.Active, &u.ArchivedAt, &u.Anonymized,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}
