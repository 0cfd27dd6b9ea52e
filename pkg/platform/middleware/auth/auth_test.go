package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	id "maricheck/pkg/domain"
	"maricheck/pkg/requestcontext"

	"github.com/stretchr/testify/suite"
)

type stubValidator struct {
	valid string
}

func (v stubValidator) ValidateSession(token string) (*SessionClaims, error) {
	if token != v.valid {
		return nil, errors.New("bad token")
	}
	return &SessionClaims{AdminID: id.AdminID(1), Username: "admin"}, nil
}

type RequireAdminSuite struct {
	suite.Suite
	handler http.Handler
	seen    string
}

func TestRequireAdminSuite(t *testing.T) {
	suite.Run(t, new(RequireAdminSuite))
}

func (s *RequireAdminSuite) SetupTest() {
	s.seen = ""
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = RequireAdmin(stubValidator{valid: "good"}, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.seen = requestcontext.Username(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
}

func (s *RequireAdminSuite) TestRequireAdmin() {
	s.Run("missing session is unauthorized", func() {
		rr := httptest.NewRecorder()
		s.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/crew", nil))
		s.Equal(http.StatusUnauthorized, rr.Code)
		s.Empty(s.seen)
	})

	s.Run("invalid bearer token is unauthorized", func() {
		req := httptest.NewRequest(http.MethodGet, "/admin/crew", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rr := httptest.NewRecorder()
		s.handler.ServeHTTP(rr, req)
		s.Equal(http.StatusUnauthorized, rr.Code)
	})

	s.Run("bearer token injects admin", func() {
		req := httptest.NewRequest(http.MethodGet, "/admin/crew", nil)
		req.Header.Set("Authorization", "Bearer good")
		rr := httptest.NewRecorder()
		s.handler.ServeHTTP(rr, req)
		s.Equal(http.StatusNoContent, rr.Code)
		s.Equal("admin", s.seen)
	})

	s.Run("cookie session is accepted", func() {
		req := httptest.NewRequest(http.MethodGet, "/admin/crew", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
		rr := httptest.NewRecorder()
		s.handler.ServeHTTP(rr, req)
		s.Equal(http.StatusNoContent, rr.Code)
	})
}
