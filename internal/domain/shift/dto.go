package shift

import (
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type Filter struct {
	Status   string `json:"status"`
	Role     string `json:"role"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}
}

type CreateShiftRequest struct {
	Name        string   `json:"name"`
	ShiftDate   string   `json:"shift_date"`
	EndDate     string   `json:"end_date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	IsOvernight bool     `json:"is_overnight"`
	ShiftRole   string   `json:"shift_role"`
	ShiftType   string   `json:"shift_type"`
	Capacity    int      `json:"capacity"`
	HourlyRate  *float64 `json:"hourly_rate"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Notes       *string  `json:"notes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.ShiftDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ShiftDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if _, ok := validator.IsValidTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	} else if _, ok := validator.IsValidTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.ShiftRole != "" && !validator.IsInSlice(r.ShiftRole, ValidWorkRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_role",
			Message: "shift_role is not a recognized work role",
		})
	}

	if r.ShiftType != "" && !validator.IsInSlice(r.ShiftType, ValidTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of regular, overtime, holiday, emergency",
		})
	}

	if r.Capacity < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity",
			Message: "capacity must be at least 1",
		})
	}

	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name"`
	ShiftDate   *string  `json:"shift_date"`
	EndDate     *string  `json:"end_date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	IsOvernight *bool    `json:"is_overnight"`
	ShiftRole   *string  `json:"shift_role"`
	ShiftType   *string  `json:"shift_type"`
	Status      *string  `json:"status"`
	Capacity    *int     `json:"capacity"`
	HourlyRate  *float64 `json:"hourly_rate"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Notes       *string  `json:"notes"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.ShiftDate != nil {
		if _, ok := validator.IsValidDate(*r.ShiftDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_date",
				Message: "shift_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.StartTime != nil {
		if _, ok := validator.IsValidTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}

	if r.ShiftRole != nil && !validator.IsInSlice(*r.ShiftRole, ValidWorkRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_role",
			Message: "shift_role is not a recognized work role",
		})
	}
	if r.ShiftType != nil && !validator.IsInSlice(*r.ShiftType, ValidTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of regular, overtime, holiday, emergency",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognized shift status",
		})
	}

	if r.Capacity != nil && *r.Capacity < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity",
			Message: "capacity must be at least 1",
		})
	}
	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID             string   `json:"id"`
	AgencyID       string   `json:"agency_id"`
	Name           string   `json:"name"`
	Code           string   `json:"code"`
	ShiftDate      string   `json:"shift_date"`
	EndDate        string   `json:"end_date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	IsOvernight    bool     `json:"is_overnight"`
	DurationHours  float64  `json:"duration_hours"`
	ShiftRole      string   `json:"shift_role"`
	ShiftType      string   `json:"shift_type"`
	Status         string   `json:"status"`
	Capacity       int      `json:"capacity"`
	ConfirmedCount int      `json:"confirmed_count"`
	AvailableSlots int      `json:"available_slots"`
	IsFull         bool     `json:"is_full"`
	HourlyRate     *float64 `json:"hourly_rate,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	IsCompleted    bool     `json:"is_completed"`
	CompletionTime *string  `json:"completion_time,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

func ToShiftResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:             s.ID,
		AgencyID:       s.AgencyID,
		Name:           s.Name,
		Code:           s.Code,
		ShiftDate:      s.ShiftDate.Format("2006-01-02"),
		EndDate:        s.EndDate.Format("2006-01-02"),
		StartTime:      s.StartTime.Format("15:04"),
		EndTime:        s.EndTime.Format("15:04"),
		IsOvernight:    s.IsOvernight,
		DurationHours:  s.DurationHours,
		ShiftRole:      s.ShiftRole,
		ShiftType:      string(s.ShiftType),
		Status:         string(s.Status),
		Capacity:       s.Capacity,
		ConfirmedCount: s.ConfirmedCount,
		AvailableSlots: s.AvailableSlots(),
		IsFull:         s.IsFull(),
		HourlyRate:     s.HourlyRate,
		Address:        s.Address,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
		Notes:          s.Notes,
		IsCompleted:    s.IsCompleted,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
	if s.CompletionTime != nil {
		formatted := s.CompletionTime.Format(time.RFC3339)
		resp.CompletionTime = &formatted
	}
	return resp
}

type ListShiftsResponse struct {
	Shifts     []ShiftResponse `json:"shifts"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}
