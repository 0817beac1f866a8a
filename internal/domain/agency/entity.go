package agency

import "time"

// Code prefix and random segment length for generated agency codes,
// e.g. "AG-3F9A01BC".
const (
	CodePrefix = "AG-"
	CodeLength = 8
)

type Agency struct {
	ID        string
	Name      string
	Code      string
	Address   *string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
