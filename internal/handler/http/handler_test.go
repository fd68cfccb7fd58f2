package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"offerdeck/internal/config"
	"offerdeck/internal/logger"
	"offerdeck/internal/mock"
	"offerdeck/internal/service"
	"offerdeck/models"
)

// testMocks bundles the mocked service layer behind a router built the same
// way production builds it.
type testMocks struct {
	auth   *mock.MockAuthService
	offers *mock.MockOfferService
	upload *mock.MockUploadService
}

func newTestRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, *testMocks, *Handler) {
	t.Helper()

	mocks := &testMocks{
		auth:   mock.NewMockAuthService(ctrl),
		offers: mock.NewMockOfferService(ctrl),
		upload: mock.NewMockUploadService(ctrl),
	}

	services := &service.Services{
		AuthService:   mocks.auth,
		OfferService:  mocks.offers,
		UploadService: mocks.upload,
	}

	h := NewHandler(services, config.App{Environment: "development"}, logger.Nop())
	return h.Init(), mocks, h
}

func sessionToken(adminID, email, name string) models.Token {
	return models.Token{
		Claims: models.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: adminID},
			Email:            email,
			Name:             name,
		},
		SignedString: "signed-token",
	}
}

// expectAdmission wires the auth mock to admit the session cookie used by
// authenticatedRequest.
func (m *testMocks) expectAdmission() {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), "signed-token").
		Return(sessionToken("admin-id", "admin@offers-system.com", "Administrator"), nil)
}

func authenticatedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: "signed-token"})
	return req
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
