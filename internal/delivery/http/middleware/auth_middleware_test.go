package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadforge/internal/delivery/http/response"
	"leadforge/internal/domain/entity"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	mockSvc "leadforge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRequest(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthenticate_ValidAccessToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"user", "bogus"},
		Type:   service.TokenTypeAccess,
	}, nil)

	c, rec := newAuthRequest("Bearer good")
	called := false
	err := m.Authenticate(func(c echo.Context) error {
		called = true
		got, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, got)
		assert.Equal(t, entity.Roles{entity.RoleUser}, GetRoles(c))

		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(tokenSvc *mockSvc.MockTokenService)
		wantCode string
	}{
		{
			name:     "missing header",
			wantCode: "MISSING_TOKEN",
		},
		{
			name:     "not bearer",
			header:   "Basic abc",
			wantCode: "INVALID_TOKEN",
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name:   "refresh token",
			header: "Bearer refresh",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("refresh").Return(&service.Claims{
					UserID: uuid.New(),
					Type:   service.TokenTypeRefresh,
				}, nil)
			},
			wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			c, rec := newAuthRequest(tt.header)
			err := m.Authenticate(func(c echo.Context) error {
				t.Fatal("next must not be called")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeResponse(t, rec)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c, rec := newAuthRequest("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleUser, entity.RoleAdmin})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newAuthRequest("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleUser})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newAuthRequest("")
	require.NoError(t, m.RequireRole(entity.RoleUser)(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
