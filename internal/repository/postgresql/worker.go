package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepository{db: db}
}

const workerColumns = `
	w.id, w.agency_id, w.email, w.password_hash, w.first_name, w.last_name,
	w.role, w.phone, w.latitude, w.longitude, w.travel_radius,
	w.is_active, w.created_at, w.updated_at
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.AgencyID, &w.Email, &w.PasswordHash, &w.FirstName, &w.LastName,
		&w.Role, &w.Phone, &w.Latitude, &w.Longitude, &w.TravelRadius,
		&w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// Create implements worker.Repository.
func (r *workerRepository) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (
			agency_id, email, password_hash, first_name, last_name,
			role, phone, latitude, longitude, travel_radius
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newWorker.AgencyID,
		newWorker.Email,
		newWorker.PasswordHash,
		newWorker.FirstName,
		newWorker.LastName,
		newWorker.Role,
		newWorker.Phone,
		newWorker.Latitude,
		newWorker.Longitude,
		newWorker.TravelRadius,
	).Scan(&newWorker.ID, &newWorker.IsActive, &newWorker.CreatedAt, &newWorker.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "workers_email_key") {
			return worker.Worker{}, worker.ErrEmailAlreadyUsed
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return newWorker, nil
}

// GetByID implements worker.Repository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers w WHERE w.id = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// GetByEmail implements worker.Repository.
func (r *workerRepository) GetByEmail(ctx context.Context, email string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers w WHERE LOWER(w.email) = LOWER($1)`

	w, err := scanWorker(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by email: %w", err)
	}

	return w, nil
}

// Update implements worker.Repository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET first_name = $2, last_name = $3, role = $4, phone = $5,
			latitude = $6, longitude = $7, travel_radius = $8,
			is_active = $9, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		w.ID, w.FirstName, w.LastName, w.Role, w.Phone,
		w.Latitude, w.Longitude, w.TravelRadius, w.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// List implements worker.Repository.
// Deactivate implements worker.Repository. The row is kept so assignments
// and reviews referencing the worker stay intact.
func (r *workerRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepository) List(ctx context.Context, filter worker.Filter, agencyID string) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"w.agency_id = $1", "w.is_active = TRUE"}
	args := []any{agencyID}

	if filter.Role != "" {
		args = append(args, filter.Role)
		conditions = append(conditions, fmt.Sprintf("w.role = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(w.first_name ILIKE $%d OR w.last_name ILIKE $%d OR w.email ILIKE $%d)", n, n, n,
		))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM workers w WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := fmt.Sprintf(`
		SELECT `+workerColumns+`
		FROM workers w
		WHERE `+where+`
		ORDER BY w.first_name, w.last_name
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, total, rows.Err()
}
