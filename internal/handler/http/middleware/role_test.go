package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithRole(t *testing.T, role string) *http.Request {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set("role", role))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	return r.WithContext(jwtauth.NewContext(r.Context(), tok, nil))
}

func serve(mw func(http.Handler) http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mw(next).ServeHTTP(rec, r)
	return rec
}

func TestRequireElevated(t *testing.T) {
	cases := []struct {
		role       string
		wantStatus int
	}{
		{role: "manager", wantStatus: http.StatusNoContent},
		{role: "owner", wantStatus: http.StatusNoContent},
		{role: "admin", wantStatus: http.StatusNoContent},
		{role: "staff", wantStatus: http.StatusForbidden},
	}
	for _, tc := range cases {
		rec := serve(RequireElevated, requestWithRole(t, tc.role))
		assert.Equal(t, tc.wantStatus, rec.Code, "role %q", tc.role)
	}
}

func TestRequireOwner(t *testing.T) {
	cases := []struct {
		role       string
		wantStatus int
	}{
		{role: "owner", wantStatus: http.StatusNoContent},
		{role: "admin", wantStatus: http.StatusNoContent},
		{role: "manager", wantStatus: http.StatusForbidden},
		{role: "staff", wantStatus: http.StatusForbidden},
	}
	for _, tc := range cases {
		rec := serve(RequireOwner, requestWithRole(t, tc.role))
		assert.Equal(t, tc.wantStatus, rec.Code, "role %q", tc.role)
	}
}

func TestRequireOwner_MissingToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := serve(RequireOwner, r)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
