package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}

// confirmedCountExpr counts confirmed assignments per shift; capacity math
// in the domain layer relies on it.
const confirmedCountExpr = `(
	SELECT COUNT(*) FROM shift_assignments sa
	WHERE sa.shift_id = s.id AND sa.status = 'confirmed'
)`

const shiftColumns = `
	s.id, s.agency_id, s.name, s.code,
	s.shift_date, s.end_date, s.start_time, s.end_time,
	s.is_overnight, s.duration_hours,
	s.shift_role, s.shift_type, s.status, s.capacity, s.hourly_rate,
	s.address, s.latitude, s.longitude, s.notes,
	s.is_completed, s.completion_time, s.signature_path,
	s.is_active, s.created_at, s.updated_at
`

func scanShift(row pgx.Row, withCount bool) (shift.Shift, error) {
	var s shift.Shift
	dest := []any{
		&s.ID, &s.AgencyID, &s.Name, &s.Code,
		&s.ShiftDate, &s.EndDate, &s.StartTime, &s.EndTime,
		&s.IsOvernight, &s.DurationHours,
		&s.ShiftRole, &s.ShiftType, &s.Status, &s.Capacity, &s.HourlyRate,
		&s.Address, &s.Latitude, &s.Longitude, &s.Notes,
		&s.IsCompleted, &s.CompletionTime, &s.SignaturePath,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	}
	if withCount {
		dest = append(dest, &s.ConfirmedCount)
	}
	return s, row.Scan(dest...)
}

// Create implements shift.Repository.
func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			agency_id, name, code,
			shift_date, end_date, start_time, end_time,
			is_overnight, duration_hours,
			shift_role, shift_type, status, capacity, hourly_rate,
			address, latitude, longitude, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17, $18
		) RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newShift.AgencyID,
		newShift.Name,
		newShift.Code,
		newShift.ShiftDate,
		newShift.EndDate,
		newShift.StartTime,
		newShift.EndTime,
		newShift.IsOvernight,
		newShift.DurationHours,
		newShift.ShiftRole,
		newShift.ShiftType,
		newShift.Status,
		newShift.Capacity,
		newShift.HourlyRate,
		newShift.Address,
		newShift.Latitude,
		newShift.Longitude,
		newShift.Notes,
	).Scan(&newShift.ID, &newShift.IsActive, &newShift.CreatedAt, &newShift.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "shifts_agency_date_name_key") {
			return shift.Shift{}, shift.ErrNameTaken
		}
		if isUniqueViolation(err, "shifts_code_key") {
			return shift.Shift{}, shift.ErrCodeGeneration
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// GetByID implements shift.Repository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `, ` + confirmedCountExpr + ` AS confirmed_count
		FROM shifts s
		WHERE s.id = $1 AND s.is_active = TRUE
	`

	s, err := scanShift(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// GetByIDForUpdate implements shift.Repository. The FOR UPDATE lock on the
// shift row serializes concurrent bookings and completions; the confirmed
// count is read in a second query inside the same transaction because
// locking queries cannot carry aggregate subqueries.
func (r *shiftRepository) GetByIDForUpdate(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		WHERE s.id = $1 AND s.is_active = TRUE
		FOR UPDATE OF s
	`

	s, err := scanShift(q.QueryRow(ctx, query, id), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to lock shift: %w", err)
	}

	countQuery := `
		SELECT COUNT(*) FROM shift_assignments sa
		WHERE sa.shift_id = $1 AND sa.status = 'confirmed'
	`
	if err := q.QueryRow(ctx, countQuery, id).Scan(&s.ConfirmedCount); err != nil {
		return shift.Shift{}, fmt.Errorf("failed to count confirmed assignments: %w", err)
	}

	return s, nil
}

// List implements shift.Repository.
func (r *shiftRepository) List(ctx context.Context, filter shift.Filter, agencyID string) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"s.agency_id = $1", "s.is_active = TRUE"}
	args := []any{agencyID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", len(args)))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		conditions = append(conditions, fmt.Sprintf("s.shift_role = $%d", len(args)))
	}
	if filter.DateFrom != "" {
		args = append(args, filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("s.shift_date >= $%d", len(args)))
	}
	if filter.DateTo != "" {
		args = append(args, filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("s.shift_date <= $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(s.name ILIKE $%d OR s.code ILIKE $%d)", n, n))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM shifts s WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := fmt.Sprintf(`
		SELECT `+shiftColumns+`, `+confirmedCountExpr+` AS confirmed_count
		FROM shifts s
		WHERE `+where+`
		ORDER BY s.shift_date, s.start_time
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, total, rows.Err()
}

// Update implements shift.Repository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $2, shift_date = $3, end_date = $4,
			start_time = $5, end_time = $6, is_overnight = $7,
			duration_hours = $8, shift_role = $9, shift_type = $10,
			status = $11, capacity = $12, hourly_rate = $13,
			address = $14, latitude = $15, longitude = $16, notes = $17,
			is_completed = $18, completion_time = $19, signature_path = $20,
			updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`

	tag, err := q.Exec(ctx, query,
		s.ID, s.Name, s.ShiftDate, s.EndDate,
		s.StartTime, s.EndTime, s.IsOvernight,
		s.DurationHours, s.ShiftRole, s.ShiftType,
		s.Status, s.Capacity, s.HourlyRate,
		s.Address, s.Latitude, s.Longitude, s.Notes,
		s.IsCompleted, s.CompletionTime, s.SignaturePath,
	)
	if err != nil {
		if isUniqueViolation(err, "shifts_agency_date_name_key") {
			return shift.ErrNameTaken
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Deactivate implements shift.Repository.
func (r *shiftRepository) Deactivate(ctx context.Context, id string, agencyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND agency_id = $2 AND is_active = TRUE
	`

	tag, err := q.Exec(ctx, query, id, agencyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// CodeExists implements shift.Repository.
func (r *shiftRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM shifts WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check shift code: %w", err)
	}

	return exists, nil
}

// CloseEnded implements shift.Repository. End timestamps are computed the
// same way as Shift.EndsAt, with overnight shifts rolling to the next day.
func (r *shiftRepository) CloseEnded(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = 'closed', updated_at = NOW()
		WHERE status = 'open'
		  AND is_active = TRUE
		  AND (end_date + end_time
				+ CASE WHEN is_overnight
					AND (end_date + end_time) <= (shift_date + start_time)
					THEN INTERVAL '1 day' ELSE INTERVAL '0' END) < $1
	`

	tag, err := q.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to close ended shifts: %w", err)
	}

	return tag.RowsAffected(), nil
}
