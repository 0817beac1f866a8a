package performance

import (
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	ShiftID       string  `json:"-"`
	WorkerID      string  `json:"worker_id"`
	WellnessScore float64 `json:"wellness_score"`
	Rating        float64 `json:"rating"`
	Status        string  `json:"status"`
	Comments      *string `json:"comments"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if r.WellnessScore < 0 || r.WellnessScore > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "wellness_score",
			Message: "wellness_score must be between 0 and 100",
		})
	}

	if r.Rating < 0 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 0 and 5",
		})
	}

	if !validator.IsInSlice(r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Excellent, Good, Average, Poor",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewResponse struct {
	ID            string  `json:"id"`
	WorkerID      string  `json:"worker_id"`
	WorkerName    *string `json:"worker_name,omitempty"`
	ShiftID       string  `json:"shift_id"`
	ShiftName     *string `json:"shift_name,omitempty"`
	WellnessScore float64 `json:"wellness_score"`
	Rating        float64 `json:"rating"`
	Status        string  `json:"status"`
	Comments      *string `json:"comments,omitempty"`
	ReviewedBy    string  `json:"reviewed_by"`
	CreatedAt     string  `json:"created_at"`
}

func ToReviewResponse(p StaffPerformance) ReviewResponse {
	return ReviewResponse{
		ID:            p.ID,
		WorkerID:      p.WorkerID,
		WorkerName:    p.WorkerName,
		ShiftID:       p.ShiftID,
		ShiftName:     p.ShiftName,
		WellnessScore: p.WellnessScore,
		Rating:        p.Rating,
		Status:        string(p.Status),
		Comments:      p.Comments,
		ReviewedBy:    p.ReviewedBy,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

type ListReviewsResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	TotalCount int              `json:"total_count"`
}
