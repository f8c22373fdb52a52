package overpass

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"leadforge/config"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/service"
	"leadforge/internal/infra/upstream"

	"go.uber.org/fx"
)

const upstreamName = "overpass"

type interpreterResponse struct {
	Elements []entity.RawPlaceElement `json:"elements"`
}

// Client implements service.PlaceSource.
type Client struct {
	endpoint     string
	queryTimeout time.Duration
	http         *upstream.Client
	logger       *slog.Logger
}

// Params holds dependencies for the client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the client from the overpass config section.
func New(params Params) service.PlaceSource {
	return NewClient(params.Config.Overpass, params.Logger)
}

// NewClient builds a client whose HTTP timeout exceeds the declared query timeout by cfg.ClientPadding.
func NewClient(cfg *config.OverpassConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint:     cfg.URL,
		queryTimeout: cfg.QueryTimeout,
		http: upstream.NewClient(upstream.Options{
			Name:      upstreamName,
			Timeout:   cfg.QueryTimeout + cfg.ClientPadding,
			UserAgent: cfg.UserAgent,
		}, logger),
		logger: logger,
	}
}

// Fetch posts the query as the "data" form field and returns the raw elements.
func (c *Client) Fetch(ctx context.Context, conditions []entity.TagCondition, bbox entity.BoundingBox, limit int) ([]entity.RawPlaceElement, error) {
	query, err := BuildQuery(conditions, bbox, limit, c.queryTimeout)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(upstreamName, 0, err)
	}

	c.logger.Debug("Querying Overpass", slog.String("query", query))

	var resp interpreterResponse
	if err := c.http.PostFormJSON(ctx, c.endpoint, url.Values{"data": {query}}, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("Overpass elements received", slog.Int("count", len(resp.Elements)))

	return resp.Elements, nil
}
