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

type leadHandlerFixtures struct {
	e      *echo.Echo
	leadUC *mockUsecase.MockLeadUsecase
	userID uuid.UUID
}

func newLeadTestServer(t *testing.T) *leadHandlerFixtures {
	t.Helper()

	userID := uuid.New()
	leadUC := mockUsecase.NewMockLeadUsecase(t)
	h := NewLeadHandler(LeadHandlerParams{LeadUC: leadUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/leads", newTestAuth(t, userID).Authenticate)
	g.POST("", h.SaveLead)
	g.GET("", h.ListLeads)
	g.GET("/:id", h.GetLead)
	g.PUT("/:id", h.UpdateLead)
	g.DELETE("/:id", h.DeleteLead)
	g.POST("/:id/enrich", h.RefreshLead)
	g.GET("/:id/qrcode", h.LeadQRCode)

	return &leadHandlerFixtures{e: e, leadUC: leadUC, userID: userID}
}

func sampleLead(userID uuid.UUID) *entity.SavedLead {
	return &entity.SavedLead{
		ID:     uuid.New(),
		UserID: userID,
		OSMID:  ptr("node/1"),
		Name:   "Daily Grind",
		Phone:  ptr("+15182730000"),
		Status: entity.LeadStatusNew,
	}
}

func TestSaveLead_Created(t *testing.T) {
	fx := newLeadTestServer(t)
	lead := sampleLead(fx.userID)

	fx.leadUC.EXPECT().
		SaveLead(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.SaveLeadInput) bool {
			return in.OSMID == "node/1" && in.Name == "Daily Grind" &&
				in.Phone != nil && *in.Phone == "(518) 273-0000" && in.Status == ""
		})).
		Return(lead, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/leads",
		`{"osm_id":"node/1","name":"Daily Grind","phone_number":"(518) 273-0000","latitude":42.73,"longitude":-73.69}`, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[entity.SavedLead](t, rec)
	assert.Equal(t, lead.ID, got.ID)
	assert.Equal(t, "+15182730000", *got.Phone)
}

func TestSaveLead_AlreadySavedReturnsExisting(t *testing.T) {
	fx := newLeadTestServer(t)
	existing := sampleLead(fx.userID)

	fx.leadUC.EXPECT().
		SaveLead(mock.Anything, fx.userID, mock.Anything).
		Return(existing, errors.WithStack(domainerrors.ErrLeadAlreadySaved.WrapMessage("lead exists")))

	rec := doRequest(fx.e, http.MethodPost, "/api/leads", `{"osm_id":"node/1","name":"Daily Grind"}`, true)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "LEAD_ALREADY_SAVED", body.Error.Code)
	got := decodeData[entity.SavedLead](t, rec)
	assert.Equal(t, existing.ID, got.ID)
}

func TestSaveLead_Rejected(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		authenticated bool
		wantStatus    int
		wantCode      string
	}{
		{
			name:          "no token",
			body:          `{"osm_id":"node/1","name":"Daily Grind"}`,
			authenticated: false,
			wantStatus:    http.StatusUnauthorized,
			wantCode:      "MISSING_TOKEN",
		},
		{
			name:          "missing name",
			body:          `{"osm_id":"node/1"}`,
			authenticated: true,
			wantStatus:    http.StatusBadRequest,
			wantCode:      "VALIDATION_FAILED",
		},
		{
			name:          "unknown status",
			body:          `{"osm_id":"node/1","name":"Daily Grind","status":"Ghosted"}`,
			authenticated: true,
			wantStatus:    http.StatusBadRequest,
			wantCode:      "VALIDATION_FAILED",
		},
		{
			name:          "latitude out of range",
			body:          `{"osm_id":"node/1","name":"Daily Grind","latitude":123}`,
			authenticated: true,
			wantStatus:    http.StatusBadRequest,
			wantCode:      "VALIDATION_FAILED",
		},
		{
			name:          "malformed body",
			body:          `{"name":`,
			authenticated: true,
			wantStatus:    http.StatusBadRequest,
			wantCode:      "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newLeadTestServer(t)

			rec := doRequest(fx.e, http.MethodPost, "/api/leads", tt.body, tt.authenticated)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeEnvelope(t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestListLeads(t *testing.T) {
	fx := newLeadTestServer(t)
	leads := []*entity.SavedLead{sampleLead(fx.userID), sampleLead(fx.userID)}
	fx.leadUC.EXPECT().ListLeads(mock.Anything, fx.userID).Return(leads, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/leads", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]entity.SavedLead](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, leads[0].ID, got[0].ID)
}

func TestGetLead(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := newLeadTestServer(t)
		lead := sampleLead(fx.userID)
		fx.leadUC.EXPECT().GetLead(mock.Anything, fx.userID, lead.ID).Return(lead, nil)

		rec := doRequest(fx.e, http.MethodGet, "/api/leads/"+lead.ID.String(), "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, lead.ID, decodeData[entity.SavedLead](t, rec).ID)
	})

	t.Run("other owner is not found", func(t *testing.T) {
		fx := newLeadTestServer(t)
		leadID := uuid.New()
		fx.leadUC.EXPECT().GetLead(mock.Anything, fx.userID, leadID).Return(nil, domainerrors.ErrLeadNotFound)

		rec := doRequest(fx.e, http.MethodGet, "/api/leads/"+leadID.String(), "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeEnvelope(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "LEAD_NOT_FOUND", body.Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := newLeadTestServer(t)

		rec := doRequest(fx.e, http.MethodGet, "/api/leads/not-a-uuid", "", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateLead(t *testing.T) {
	fx := newLeadTestServer(t)
	lead := sampleLead(fx.userID)
	lead.Status = entity.LeadStatusFollowedUp
	lead.Notes = ptr("call back Friday")

	fx.leadUC.EXPECT().
		UpdateLead(mock.Anything, fx.userID, lead.ID, &usecase.UpdateLeadInput{
			Status: ptr("Followed Up"),
			Notes:  ptr("call back Friday"),
		}).
		Return(lead, nil)

	rec := doRequest(fx.e, http.MethodPut, "/api/leads/"+lead.ID.String(),
		`{"status":"Followed Up","notes":"call back Friday"}`, true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[entity.SavedLead](t, rec)
	assert.Equal(t, entity.LeadStatusFollowedUp, got.Status)
}

func TestUpdateLead_InvalidStatus(t *testing.T) {
	fx := newLeadTestServer(t)

	rec := doRequest(fx.e, http.MethodPut, "/api/leads/"+uuid.NewString(), `{"status":"Maybe Later"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteLead(t *testing.T) {
	fx := newLeadTestServer(t)
	leadID := uuid.New()
	fx.leadUC.EXPECT().DeleteLead(mock.Anything, fx.userID, leadID).Return(nil)

	rec := doRequest(fx.e, http.MethodDelete, "/api/leads/"+leadID.String(), "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestRefreshLead(t *testing.T) {
	fx := newLeadTestServer(t)
	lead := sampleLead(fx.userID)
	lead.GooglePlaceID = ptr("ChIJ123")
	fx.leadUC.EXPECT().RefreshLead(mock.Anything, fx.userID, lead.ID).Return(lead, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/leads/"+lead.ID.String()+"/enrich", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[entity.SavedLead](t, rec)
	require.NotNil(t, got.GooglePlaceID)
	assert.Equal(t, "ChIJ123", *got.GooglePlaceID)
}

func TestLeadQRCode(t *testing.T) {
	fx := newLeadTestServer(t)
	leadID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\nfake")
	fx.leadUC.EXPECT().LeadQRCode(mock.Anything, fx.userID, leadID).Return(png, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/leads/"+leadID.String()+"/qrcode", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
