package worker

import "time"

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
)

var ValidRoles = []string{
	string(RoleStaff),
	string(RoleManager),
	string(RoleOwner),
	string(RoleAdmin),
}

// IsElevated reports whether the role carries agency management rights.
func (r Role) IsElevated() bool {
	return r == RoleManager || r == RoleOwner || r == RoleAdmin
}

// IsAdmin reports whether the role may act across agency boundaries.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type Worker struct {
	ID           string
	AgencyID     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	Phone        *string
	// Geofencing profile: home coordinates plus how far, in miles,
	// the worker is willing to travel for a shift.
	Latitude     *float64
	Longitude    *float64
	TravelRadius float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	AgencyName *string
}

func (w *Worker) FullName() string {
	if w.LastName == "" {
		return w.FirstName
	}
	return w.FirstName + " " + w.LastName
}

// HasLocation reports whether the worker has both coordinates set.
func (w *Worker) HasLocation() bool {
	return w.Latitude != nil && w.Longitude != nil
}

// Actor identifies the authenticated worker performing an operation,
// extracted from JWT claims by the HTTP layer. Services take it as an
// explicit parameter so authorization decisions are visible at call sites.
type Actor struct {
	WorkerID string
	AgencyID string
	Role     Role
}

func (a Actor) IsElevated() bool {
	return a.Role.IsElevated()
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
