package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
)

// actorFromRequest builds the acting worker identity from the verified
// token claims.
func actorFromRequest(r *http.Request) (worker.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return worker.Actor{}, auth.ErrInvalidToken
	}

	workerID, ok := claims["worker_id"].(string)
	if !ok || workerID == "" {
		return worker.Actor{}, auth.ErrInvalidToken
	}
	agencyID, ok := claims["agency_id"].(string)
	if !ok {
		return worker.Actor{}, auth.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return worker.Actor{}, auth.ErrInvalidToken
	}

	return worker.Actor{
		WorkerID: workerID,
		AgencyID: agencyID,
		Role:     worker.Role(role),
	}, nil
}
