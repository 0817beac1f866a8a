package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/agency"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type agencyRepository struct {
	db *database.DB
}

func NewAgencyRepository(db *database.DB) agency.Repository {
	return &agencyRepository{db: db}
}

const agencyColumns = `id, name, code, address, phone, is_active, created_at, updated_at`

func scanAgency(row pgx.Row) (agency.Agency, error) {
	var a agency.Agency
	err := row.Scan(
		&a.ID, &a.Name, &a.Code, &a.Address, &a.Phone,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements agency.Repository.
func (r *agencyRepository) Create(ctx context.Context, newAgency agency.Agency) (agency.Agency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO agencies (name, code, address, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAgency.Name,
		newAgency.Code,
		newAgency.Address,
		newAgency.Phone,
	).Scan(&newAgency.ID, &newAgency.IsActive, &newAgency.CreatedAt, &newAgency.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "agencies_name_key") {
			return agency.Agency{}, agency.ErrNameAlreadyUsed
		}
		return agency.Agency{}, fmt.Errorf("failed to create agency: %w", err)
	}

	return newAgency, nil
}

// GetByID implements agency.Repository.
func (r *agencyRepository) GetByID(ctx context.Context, id string) (agency.Agency, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE id = $1`

	a, err := scanAgency(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return agency.Agency{}, agency.ErrAgencyNotFound
		}
		return agency.Agency{}, fmt.Errorf("failed to get agency: %w", err)
	}

	return a, nil
}

// GetByCode implements agency.Repository.
func (r *agencyRepository) GetByCode(ctx context.Context, code string) (agency.Agency, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE code = $1`

	a, err := scanAgency(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return agency.Agency{}, agency.ErrAgencyNotFound
		}
		return agency.Agency{}, fmt.Errorf("failed to get agency by code: %w", err)
	}

	return a, nil
}

// CodeExists implements agency.Repository.
func (r *agencyRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM agencies WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check agency code: %w", err)
	}

	return exists, nil
}

// Update implements agency.Repository.
func (r *agencyRepository) Update(ctx context.Context, a agency.Agency) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE agencies
		SET name = $2, address = $3, phone = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, a.ID, a.Name, a.Address, a.Phone, a.IsActive)
	if err != nil {
		if isUniqueViolation(err, "agencies_name_key") {
			return agency.ErrNameAlreadyUsed
		}
		return fmt.Errorf("failed to update agency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return agency.ErrAgencyNotFound
	}

	return nil
}
