package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"maricheck/internal/admin/handler/mocks"
	"maricheck/internal/admin/models"
	dErrors "maricheck/pkg/domain-errors"
	auth "maricheck/pkg/platform/middleware/auth"
	"maricheck/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.service = mocks.NewMockService(gomock.NewController(s.T()))
	h := New(s.service, nil, WithSecureCookie(true))
	s.router = chi.NewRouter()
	h.Register(s.router)
	h.RegisterAuthenticated(s.router)
}

func (s *HandlerSuite) sessionCookie(header http.Header) *http.Cookie {
	for _, c := range (&http.Response{Header: header}).Cookies() {
		if c.Name == auth.SessionCookie {
			return c
		}
	}
	return nil
}

func (s *HandlerSuite) TestLogin() {
	s.Run("sets the session cookie", func() {
		expires := time.Now().Add(8 * time.Hour).UTC().Truncate(time.Second)
		s.service.EXPECT().Login(gomock.Any(), "admin", "admin123").Return(&models.Session{
			Token:     "signed.jwt.token",
			ExpiresAt: expires,
			Admin:     &models.Admin{ID: 1, Username: "admin"},
		}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/login",
			map[string]string{"username": "Admin", "password": "admin123"})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		cookie := s.sessionCookie(rr.Header())
		s.Require().NotNil(cookie)
		s.Equal("signed.jwt.token", cookie.Value)
		s.True(cookie.HttpOnly)
		s.True(cookie.Secure)
		s.Equal(http.SameSiteLaxMode, cookie.SameSite)

		resp := testutil.UnmarshalResponse[SessionResponse](s.T(), rr)
		s.Equal("admin", resp.Username)
		s.True(expires.Equal(resp.ExpiresAt))
	})

	s.Run("bad credentials", func() {
		s.service.EXPECT().Login(gomock.Any(), "admin", "wrong").
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "Invalid username or password"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/login",
			map[string]string{"username": "admin", "password": "wrong"})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeUnauthorized))
		s.Nil(s.sessionCookie(rr.Header()))
	})

	s.Run("missing fields never reach the service", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/admin/login", map[string]string{"username": "admin"})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})
}

func (s *HandlerSuite) TestLogout() {
	s.service.EXPECT().Logout(gomock.Any())

	req := testutil.WithAdmin(testutil.NewRequest(s.T(), http.MethodPost, "/admin/logout"), 1, "admin")
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatusOK(s.T(), rr)
	cookie := s.sessionCookie(rr.Header())
	s.Require().NotNil(cookie)
	s.Empty(cookie.Value)
	s.Negative(cookie.MaxAge)
	testutil.AssertJSONContains(s.T(), rr, "message", "You have been logged out.")
}

func (s *HandlerSuite) TestMe() {
	rr := testutil.DoRequest(s.router, testutil.WithAdmin(testutil.NewRequest(s.T(), http.MethodGet, "/admin/me"), 3, "ops"))
	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[MeResponse](s.T(), rr)
	s.Equal(int64(3), resp.ID)
	s.Equal("ops", resp.Username)

	rr = testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/admin/me"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, string(dErrors.CodeUnauthorized))
}
