package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"leadforge/internal/delivery/http/middleware"
	"leadforge/internal/delivery/http/response"
	"leadforge/internal/delivery/http/validator"
	"leadforge/internal/domain/service"
	mockSvc "leadforge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testAccessToken = "test-access-token"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// newTestAuth accepts testAccessToken as an access token of userID.
func newTestAuth(t *testing.T, userID uuid.UUID) *middleware.AuthMiddleware {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(testAccessToken).Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"user"},
		Type:   service.TokenTypeAccess,
	}, nil).Maybe()

	return middleware.NewAuthMiddleware(tokenSvc)
}

func doRequest(e *echo.Echo, method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testAccessToken)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())

	return envelope.Data
}

func ptr[T any](v T) *T {
	return &v
}

