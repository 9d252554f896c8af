package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// VendorProfileRepo implements ports.VendorProfileRepository.
type VendorProfileRepo struct {
	pool Pool
}

// NewVendorProfileRepo creates a new VendorProfileRepo.
func NewVendorProfileRepo(pool Pool) *VendorProfileRepo {
	return &VendorProfileRepo{pool: pool}
}

const vendorColumns = `id, name, email, phone, bank_account_number, ifsc, account_holder_name,
	commission_rate, active, verified, created_at, updated_at`

// Create inserts a new vendor profile. Unlike the other repositories here,
// vendor profile writes are not staged through the Payment Orchestrator's
// outbox — onboarding is an administrative action with its own event path.
func (r *VendorProfileRepo) Create(ctx context.Context, v *domain.VendorProfile) error {
	query := `INSERT INTO vendor_profiles (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Name, v.Email, v.Phone, v.BankAccountNumber, v.IFSC, v.AccountHolderName,
		v.CommissionRate, v.Active, v.Verified, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor profile: %w", err)
	}
	return nil
}

// GetByID fetches a vendor profile by UUID string.
func (r *VendorProfileRepo) GetByID(ctx context.Context, id string) (*domain.VendorProfile, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendor_profiles WHERE id = $1`

	v := &domain.VendorProfile{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.BankAccountNumber, &v.IFSC, &v.AccountHolderName,
		&v.CommissionRate, &v.Active, &v.Verified, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor profile: %w", err)
	}
	return v, nil
}

// Update persists mutated vendor profile fields.
func (r *VendorProfileRepo) Update(ctx context.Context, v *domain.VendorProfile) error {
	query := `UPDATE vendor_profiles SET name = $1, email = $2, phone = $3, bank_account_number = $4,
		ifsc = $5, account_holder_name = $6, commission_rate = $7, active = $8, verified = $9,
		updated_at = $10 WHERE id = $11`

	tag, err := r.pool.Exec(ctx, query,
		v.Name, v.Email, v.Phone, v.BankAccountNumber, v.IFSC, v.AccountHolderName,
		v.CommissionRate, v.Active, v.Verified, v.UpdatedAt, v.ID,
	)
	if err != nil {
		return fmt.Errorf("update vendor profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vendor profile not found: %s", v.ID)
	}
	return nil
}
