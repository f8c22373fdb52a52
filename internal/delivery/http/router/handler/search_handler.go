package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"leadforge/internal/delivery/http/response"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/errors"
	"leadforge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// MIMEApplicationGeoJSON is the media type of GeoJSON documents.
const MIMEApplicationGeoJSON = "application/geo+json"

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves the lead search routes.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchPlaces handles GET /api/search/osm-places.
func (h *SearchHandler) SearchPlaces(c echo.Context) error {
	outcome, err := h.search(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Outcome(c, outcomeHTTPStatus(outcome.Status), string(outcome.Status), outcome, outcome.Message)
}

// SearchPlacesGeoJSON handles GET /api/search/osm-places/geojson. The outcome
// status, message and location travel as foreign members of the collection.
func (h *SearchHandler) SearchPlacesGeoJSON(c echo.Context) error {
	outcome, err := h.search(c)
	if err != nil {
		return errors.WithStack(err)
	}

	fc, err := toFeatureCollection(outcome)
	if err != nil {
		return errors.Wrap(err, "failed to build feature collection")
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode feature collection")
	}

	return c.Blob(outcomeHTTPStatus(outcome.Status), MIMEApplicationGeoJSON, body)
}

// Categories handles GET /api/search/categories.
func (h *SearchHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string][]string{"categories": h.searchUC.Categories()}, "")
}

func (h *SearchHandler) search(c echo.Context) (*entity.SearchOutcome, error) {
	input, err := parseSearchInput(c)
	if err != nil {
		return nil, err
	}

	outcome, err := h.searchUC.Search(c.Request().Context(), input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return outcome, nil
}

func parseSearchInput(c echo.Context) (*usecase.SearchInput, error) {
	input := &usecase.SearchInput{
		Query:    c.QueryParam("query"),
		Location: c.QueryParam("location"),
		Enrich:   parseFlag(c.QueryParam("enrich_google")),
	}

	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domainerrors.ErrInvalidRequest.WithDetails("limit must be an integer")
		}
		input.Limit = limit
	}

	return input, nil
}

func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// outcomeHTTPStatus keeps "nothing found" answers at 200 so clients can show
// the message; only an upstream failure is an HTTP error.
func outcomeHTTPStatus(status entity.SearchStatus) int {
	switch status {
	case entity.SearchStatusUpstreamError:
		return http.StatusBadGateway
	case entity.SearchStatusUnsupportedQuery:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

func toFeatureCollection(outcome *entity.SearchOutcome) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{
		"status": outcome.Status,
		"count":  outcome.Count,
	}
	if outcome.Message != "" {
		fc.ExtraMembers["message"] = outcome.Message
	}
	if outcome.Location != nil {
		fc.ExtraMembers["location"] = outcome.Location
		bound := outcome.Location.BoundingBox.Bound()
		fc.BBox = geojson.NewBBox(bound)
	}

	for i := range outcome.Results {
		result := &outcome.Results[i]
		if result.Latitude == nil || result.Longitude == nil {
			continue
		}

		properties, err := resultProperties(result)
		if err != nil {
			return nil, err
		}

		feature := geojson.NewFeature(orb.Point{*result.Longitude, *result.Latitude})
		feature.ID = result.OSMID
		feature.Properties = properties
		fc.Append(feature)
	}

	return fc, nil
}

func resultProperties(result *entity.SearchResult) (geojson.Properties, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	properties := geojson.Properties{}
	if err := json.Unmarshal(raw, &properties); err != nil {
		return nil, errors.WithStack(err)
	}
	delete(properties, "latitude")
	delete(properties, "longitude")

	return properties, nil
}
