package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

const assignmentColumns = `
	a.id, a.shift_id, a.worker_id, a.role, a.status,
	a.attendance_status, a.completion_time, a.latitude, a.longitude,
	a.signature_path, a.created_at, a.updated_at
`

func scanAssignment(row pgx.Row) (assignment.ShiftAssignment, error) {
	var a assignment.ShiftAssignment
	err := row.Scan(
		&a.ID, &a.ShiftID, &a.WorkerID, &a.Role, &a.Status,
		&a.AttendanceStatus, &a.CompletionTime, &a.Latitude, &a.Longitude,
		&a.SignaturePath, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements assignment.Repository.
func (r *assignmentRepository) Create(ctx context.Context, newAssignment assignment.ShiftAssignment) (assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (
			shift_id, worker_id, role, status,
			attendance_status, completion_time, latitude, longitude, signature_path
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAssignment.ShiftID,
		newAssignment.WorkerID,
		newAssignment.Role,
		newAssignment.Status,
		newAssignment.AttendanceStatus,
		newAssignment.CompletionTime,
		newAssignment.Latitude,
		newAssignment.Longitude,
		newAssignment.SignaturePath,
	).Scan(&newAssignment.ID, &newAssignment.CreatedAt, &newAssignment.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "shift_assignments_worker_shift_key") {
			return assignment.ShiftAssignment{}, assignment.ErrAlreadyAssigned
		}
		return assignment.ShiftAssignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return newAssignment, nil
}

// GetByID implements assignment.Repository.
func (r *assignmentRepository) GetByID(ctx context.Context, id string) (assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM shift_assignments a WHERE a.id = $1`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.ShiftAssignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.ShiftAssignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

// GetByShiftAndWorker implements assignment.Repository.
func (r *assignmentRepository) GetByShiftAndWorker(ctx context.Context, shiftID, workerID string) (*assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments a
		WHERE a.shift_id = $1 AND a.worker_id = $2
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, shiftID, workerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return &a, nil
}

// ListByShift implements assignment.Repository.
func (r *assignmentRepository) ListByShift(ctx context.Context, shiftID string) ([]assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `,
			   w.first_name || ' ' || w.last_name AS worker_name,
			   w.email AS worker_email
		FROM shift_assignments a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.shift_id = $1
		ORDER BY a.created_at
	`

	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.ShiftAssignment
	for rows.Next() {
		var a assignment.ShiftAssignment
		err := rows.Scan(
			&a.ID, &a.ShiftID, &a.WorkerID, &a.Role, &a.Status,
			&a.AttendanceStatus, &a.CompletionTime, &a.Latitude, &a.Longitude,
			&a.SignaturePath, &a.CreatedAt, &a.UpdatedAt,
			&a.WorkerName, &a.WorkerEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// ListByWorker implements assignment.Repository.
func (r *assignmentRepository) ListByWorker(ctx context.Context, workerID string) ([]assignment.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `, s.name AS shift_name
		FROM shift_assignments a
		JOIN shifts s ON s.id = a.shift_id
		WHERE a.worker_id = $1
		ORDER BY s.shift_date DESC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.ShiftAssignment
	for rows.Next() {
		var a assignment.ShiftAssignment
		err := rows.Scan(
			&a.ID, &a.ShiftID, &a.WorkerID, &a.Role, &a.Status,
			&a.AttendanceStatus, &a.CompletionTime, &a.Latitude, &a.Longitude,
			&a.SignaturePath, &a.CreatedAt, &a.UpdatedAt,
			&a.ShiftName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// Update implements assignment.Repository.
func (r *assignmentRepository) Update(ctx context.Context, a assignment.ShiftAssignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_assignments
		SET role = $2, status = $3, attendance_status = $4,
			completion_time = $5, latitude = $6, longitude = $7,
			signature_path = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		a.ID, a.Role, a.Status, a.AttendanceStatus,
		a.CompletionTime, a.Latitude, a.Longitude, a.SignaturePath,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// Delete implements assignment.Repository.
func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}
