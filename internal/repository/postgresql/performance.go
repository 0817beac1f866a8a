package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/performance"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type performanceRepository struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.Repository {
	return &performanceRepository{db: db}
}

const performanceColumns = `
	p.id, p.worker_id, p.shift_id, p.wellness_score, p.rating,
	p.status, p.comments, p.reviewed_by, p.created_at, p.updated_at
`

// Create implements performance.Repository.
func (r *performanceRepository) Create(ctx context.Context, review performance.StaffPerformance) (performance.StaffPerformance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff_performances (
			worker_id, shift_id, wellness_score, rating, status, comments, reviewed_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		review.WorkerID,
		review.ShiftID,
		review.WellnessScore,
		review.Rating,
		review.Status,
		review.Comments,
		review.ReviewedBy,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "staff_performances_worker_shift_key") {
			return performance.StaffPerformance{}, performance.ErrDuplicateReview
		}
		return performance.StaffPerformance{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return review, nil
}

// GetByID implements performance.Repository.
func (r *performanceRepository) GetByID(ctx context.Context, id string) (performance.StaffPerformance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + performanceColumns + ` FROM staff_performances p WHERE p.id = $1`

	var p performance.StaffPerformance
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.WorkerID, &p.ShiftID, &p.WellnessScore, &p.Rating,
		&p.Status, &p.Comments, &p.ReviewedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.StaffPerformance{}, performance.ErrReviewNotFound
		}
		return performance.StaffPerformance{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	return p, nil
}

// ListByShift implements performance.Repository.
func (r *performanceRepository) ListByShift(ctx context.Context, shiftID string) ([]performance.StaffPerformance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + performanceColumns + `,
			   w.first_name || ' ' || w.last_name AS worker_name
		FROM staff_performances p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.shift_id = $1
		ORDER BY p.created_at
	`

	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.StaffPerformance
	for rows.Next() {
		var p performance.StaffPerformance
		err := rows.Scan(
			&p.ID, &p.WorkerID, &p.ShiftID, &p.WellnessScore, &p.Rating,
			&p.Status, &p.Comments, &p.ReviewedBy, &p.CreatedAt, &p.UpdatedAt,
			&p.WorkerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, p)
	}

	return reviews, rows.Err()
}

// ListByWorker implements performance.Repository.
func (r *performanceRepository) ListByWorker(ctx context.Context, workerID string) ([]performance.StaffPerformance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + performanceColumns + `, s.name AS shift_name
		FROM staff_performances p
		JOIN shifts s ON s.id = p.shift_id
		WHERE p.worker_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.StaffPerformance
	for rows.Next() {
		var p performance.StaffPerformance
		err := rows.Scan(
			&p.ID, &p.WorkerID, &p.ShiftID, &p.WellnessScore, &p.Rating,
			&p.Status, &p.Comments, &p.ReviewedBy, &p.CreatedAt, &p.UpdatedAt,
			&p.ShiftName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, p)
	}

	return reviews, rows.Err()
}
