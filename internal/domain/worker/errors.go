package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrEmailAlreadyUsed = errors.New("email is already registered")
	ErrWorkerInactive   = errors.New("worker account is inactive")
	ErrNoAgency         = errors.New("worker is not associated with an agency")
	ErrSelfDeactivation = errors.New("you cannot deactivate your own account")
)
