package handler

import (
	"log/slog"
	"net/http"

	"leadforge/internal/delivery/http/middleware"
	"leadforge/internal/delivery/http/response"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/errors"
	"leadforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeadHandlerParams holds dependencies for LeadHandler, injected by Fx.
type LeadHandlerParams struct {
	fx.In

	LeadUC usecase.LeadUsecase
	Logger *slog.Logger
}

// LeadHandler serves the saved lead routes. Every route is owner-scoped.
type LeadHandler struct {
	leadUC usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler.
func NewLeadHandler(params LeadHandlerParams) *LeadHandler {
	return &LeadHandler{
		leadUC: params.LeadUC,
		logger: params.Logger,
	}
}

// SaveLeadRequest mirrors a search result plus the user's annotations.
type SaveLeadRequest struct {
	GooglePlaceID  string   `json:"google_place_id"`
	OSMID          string   `json:"osm_id"`
	Name           string   `json:"name" validate:"required"`
	Address        *string  `json:"address"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,longitude"`
	Phone          *string  `json:"phone_number"`
	Website        *string  `json:"website"`
	Categories     []string `json:"categories"`
	PhotoURL       *string  `json:"photo_url"`
	Rating         *float64 `json:"rating"`
	RatingCount    *int     `json:"user_ratings_total"`
	MapsURL        *string  `json:"google_maps_url"`
	OpeningHours   []string `json:"opening_hours"`
	BusinessStatus *string  `json:"business_status"`
	PriceLevel     *int     `json:"price_level"`
	Status         string   `json:"status" validate:"omitempty,lead_status"`
	Notes          *string  `json:"notes"`
}

// UpdateLeadRequest is the body of PUT /api/leads/:id.
type UpdateLeadRequest struct {
	Status *string `json:"status" validate:"omitempty,lead_status"`
	Notes  *string `json:"notes"`
}

// SaveLead handles POST /api/leads. A repeat save answers 409 with the stored lead.
func (h *LeadHandler) SaveLead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SaveLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.leadUC.SaveLead(c.Request().Context(), userID, &usecase.SaveLeadInput{
		GooglePlaceID:  req.GooglePlaceID,
		OSMID:          req.OSMID,
		Name:           req.Name,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Phone:          req.Phone,
		Website:        req.Website,
		Categories:     req.Categories,
		PhotoURL:       req.PhotoURL,
		Rating:         req.Rating,
		RatingCount:    req.RatingCount,
		MapsURL:        req.MapsURL,
		OpeningHours:   req.OpeningHours,
		BusinessStatus: req.BusinessStatus,
		PriceLevel:     req.PriceLevel,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrLeadAlreadySaved) && lead != nil {
			return response.Outcome(c, http.StatusConflict, domainerrors.ErrLeadAlreadySaved.ErrorCode(), lead,
				domainerrors.ErrLeadAlreadySaved.Message())
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, lead, "Lead saved successfully")
}

// ListLeads handles GET /api/leads.
func (h *LeadHandler) ListLeads(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	leads, err := h.leadUC.ListLeads(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leads, "")
}

// GetLead handles GET /api/leads/:id.
func (h *LeadHandler) GetLead(c echo.Context) error {
	userID, leadID, err := h.ids(c)
	if err != nil {
		return err
	}

	lead, err := h.leadUC.GetLead(c.Request().Context(), userID, leadID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lead, "")
}

// UpdateLead handles PUT /api/leads/:id.
func (h *LeadHandler) UpdateLead(c echo.Context) error {
	userID, leadID, err := h.ids(c)
	if err != nil {
		return err
	}

	var req UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.leadUC.UpdateLead(c.Request().Context(), userID, leadID, &usecase.UpdateLeadInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead updated successfully")
}

// DeleteLead handles DELETE /api/leads/:id.
func (h *LeadHandler) DeleteLead(c echo.Context) error {
	userID, leadID, err := h.ids(c)
	if err != nil {
		return err
	}

	if err := h.leadUC.DeleteLead(c.Request().Context(), userID, leadID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Lead deleted successfully")
}

// RefreshLead handles POST /api/leads/:id/enrich.
func (h *LeadHandler) RefreshLead(c echo.Context) error {
	userID, leadID, err := h.ids(c)
	if err != nil {
		return err
	}

	lead, err := h.leadUC.RefreshLead(c.Request().Context(), userID, leadID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead refreshed successfully")
}

// LeadQRCode handles GET /api/leads/:id/qrcode.
func (h *LeadHandler) LeadQRCode(c echo.Context) error {
	userID, leadID, err := h.ids(c)
	if err != nil {
		return err
	}

	png, err := h.leadUC.LeadQRCode(c.Request().Context(), userID, leadID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ids returns the caller and the :id path parameter.
func (h *LeadHandler) ids(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthorized
	}

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidRequest.WithDetails("invalid lead id")
	}

	return userID, leadID, nil
}
