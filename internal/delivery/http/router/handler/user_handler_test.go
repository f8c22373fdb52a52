package handler

import (
	"net/http"
	"testing"

	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/errors"
	mockUsecase "leadforge/internal/mocks/usecase"
	"leadforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/health", HealthCheck)
	g := e.Group("/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/refresh", h.RefreshToken)
	g.POST("/logout", h.Logout)
	g.GET("/status", h.Status, newTestAuth(t, userID).Authenticate)

	return e, userUC, userID
}

func TestRegister(t *testing.T) {
	e, userUC, _ := newUserTestServer(t)
	user := &entity.User{ID: uuid.New(), Username: "casey", Email: "casey@example.com", Tier: entity.TierFree}

	userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "casey", Email: "casey@example.com", Password: "correct horse"}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/register",
		`{"username":"casey","email":"casey@example.com","password":"correct horse"}`, false)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[entity.User](t, rec)
	assert.Equal(t, user.ID, got.ID)
	assert.NotContains(t, rec.Body.String(), "correct horse")
}

func TestRegister_Rejected(t *testing.T) {
	t.Run("invalid email never reaches the usecase", func(t *testing.T) {
		e, _, _ := newUserTestServer(t)

		rec := doRequest(e, http.MethodPost, "/auth/register",
			`{"username":"casey","email":"not-an-email","password":"correct horse"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeEnvelope(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "email must be a valid email", body.Error.Details)
	})

	t.Run("duplicate", func(t *testing.T) {
		e, userUC, _ := newUserTestServer(t)
		userUC.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists.WithDetails("email already registered"), "tx"))

		rec := doRequest(e, http.MethodPost, "/auth/register",
			`{"username":"casey","email":"casey@example.com","password":"correct horse"}`, false)

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeEnvelope(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "USER_ALREADY_EXISTS", body.Error.Code)
		assert.Equal(t, "email already registered", body.Error.Details)
	})
}

func TestLogin(t *testing.T) {
	e, userUC, _ := newUserTestServer(t)
	user := &entity.User{ID: uuid.New(), Username: "casey"}

	userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Identifier: "casey", Password: "correct horse"}).
		Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"identifier":"casey","password":"correct horse"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[map[string]any](t, rec)
	assert.Equal(t, "access", data["access_token"])
	assert.Equal(t, "refresh", data["refresh_token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	e, userUC, _ := newUserTestServer(t)
	userUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"identifier":"casey","password":"nope"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}

func TestRefreshToken(t *testing.T) {
	e, userUC, _ := newUserTestServer(t)
	userUC.EXPECT().
		RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "refresh"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "new-access"}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/refresh", `{"refresh_token":"refresh"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new-access", decodeData[map[string]string](t, rec)["access_token"])
}

func TestLogout(t *testing.T) {
	e, userUC, _ := newUserTestServer(t)
	userUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh"}).Return(nil)

	rec := doRequest(e, http.MethodPost, "/auth/logout", `{"refresh_token":"refresh"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestLogout_MissingToken(t *testing.T) {
	e, _, _ := newUserTestServer(t)

	rec := doRequest(e, http.MethodPost, "/auth/logout", `{}`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatus(t *testing.T) {
	e, userUC, userID := newUserTestServer(t)
	userUC.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.User{ID: userID, Username: "casey"}, nil)

	rec := doRequest(e, http.MethodGet, "/auth/status", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[map[string]any](t, rec)
	assert.Equal(t, true, data["logged_in"])

	rec = doRequest(e, http.MethodGet, "/auth/status", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e, _, _ := newUserTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeData[map[string]string](t, rec)["status"])
}
