package impl

import (
	"context"
	"log/slog"
	"strings"

	"leadforge/config"
	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/domain/constants"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/repository"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	"leadforge/internal/usecase"
	"leadforge/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// leadService implements the LeadUsecase interface.
type leadService struct {
	txManager     repository.TransactionManager
	leadRepo      repository.LeadRepository
	enricher      usecase.Enricher
	publisher     service.EventPublisher
	qrCodeService service.QRCodeService
	defaultRegion string
	logger        *slog.Logger
}

// LeadServiceParams holds dependencies for LeadService, injected by Fx.
type LeadServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	LeadRepo      repository.LeadRepository
	Enricher      usecase.Enricher
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewLeadService is the constructor for leadService.
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	region := "US"
	if params.Config != nil && params.Config.Leads != nil && params.Config.Leads.DefaultRegion != "" {
		region = params.Config.Leads.DefaultRegion
	}

	return &leadService{
		txManager:     params.TxManager,
		leadRepo:      params.LeadRepo,
		enricher:      params.Enricher,
		publisher:     params.Publisher,
		qrCodeService: params.QRCodeService,
		defaultRegion: region,
		logger:        params.Logger,
	}
}

func (srv *leadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveLead stores a lead once per owner and external id.
func (srv *leadService) SaveLead(ctx context.Context, userID uuid.UUID, input *usecase.SaveLeadInput) (*entity.SavedLead, error) {
	lead, err := srv.buildLead(userID, input)
	if err != nil {
		return nil, err
	}
	googleID, osmID := derefString(lead.GooglePlaceID), derefString(lead.OSMID)

	var existing *entity.SavedLead
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		found, findErr := leadRepo.FindByExternalID(ctx, userID, googleID, osmID)
		if findErr == nil {
			existing = found

			return domainerrors.ErrLeadAlreadySaved.WrapMessage("lead already saved")
		}
		if !errors.Is(findErr, repository.ErrLeadNotFound) {
			return errors.Wrap(findErr, "failed to look up existing lead")
		}

		return leadRepo.Create(ctx, lead)
	})

	if errors.Is(err, domainerrors.ErrLeadAlreadySaved) {
		if existing == nil {
			// Lost a race with a concurrent save; the winner is visible after rollback.
			existing, _ = srv.leadRepo.FindByExternalID(ctx, userID, googleID, osmID)
		}
		srv.log(ctx).Info("Lead already saved", slog.Any("userID", userID), slog.String("osm_id", osmID), slog.String("google_place_id", googleID))

		return existing, errors.WithStack(err)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to save lead", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute save lead transaction")
	}

	srv.log(ctx).Info("Lead saved", slog.Any("userID", userID), slog.Any("leadID", lead.ID))
	srv.publishSaved(ctx, lead)

	return lead, nil
}

func (srv *leadService) buildLead(userID uuid.UUID, input *usecase.SaveLeadInput) (*entity.SavedLead, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	googleID := strings.TrimSpace(input.GooglePlaceID)
	osmID := strings.TrimSpace(input.OSMID)
	if googleID == "" && osmID == "" {
		return nil, domainerrors.ErrLeadIdentifierRequired
	}

	status := entity.LeadStatusNew
	if s := strings.TrimSpace(input.Status); s != "" {
		status = entity.LeadStatus(s)
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidLeadStatus.WithDetails(s)
		}
	}

	lead := &entity.SavedLead{
		UserID:         userID,
		Name:           name,
		Address:        input.Address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Phone:          srv.normalizePhone(input.Phone),
		Website:        input.Website,
		Categories:     input.Categories,
		PhotoURL:       input.PhotoURL,
		Rating:         input.Rating,
		RatingCount:    input.RatingCount,
		MapsURL:        input.MapsURL,
		OpeningHours:   input.OpeningHours,
		BusinessStatus: input.BusinessStatus,
		PriceLevel:     input.PriceLevel,
		Status:         status,
		Notes:          input.Notes,
	}
	if googleID != "" {
		lead.GooglePlaceID = &googleID
	}
	if osmID != "" {
		lead.OSMID = &osmID
	}

	return lead, nil
}

func (srv *leadService) normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	normalized := util.NormalizePhone(*phone, srv.defaultRegion)
	if normalized == "" {
		return nil
	}

	return &normalized
}

func (srv *leadService) publishSaved(ctx context.Context, lead *entity.SavedLead) {
	event := &service.LeadEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          constants.LeadEventSaved,
		LeadID:        lead.ID.String(),
		UserID:        lead.UserID.String(),
		GooglePlaceID: derefString(lead.GooglePlaceID),
		OSMID:         derefString(lead.OSMID),
		Name:          lead.Name,
		Address:       derefString(lead.Address),
		Latitude:      lead.Latitude,
		Longitude:     lead.Longitude,
	}

	if err := srv.publisher.PublishLeadEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish lead event", slog.Any("leadID", lead.ID), slog.Any("error", err))
	}
}

// ListLeads returns the owner's leads, newest first.
func (srv *leadService) ListLeads(ctx context.Context, userID uuid.UUID) ([]*entity.SavedLead, error) {
	leads, err := srv.leadRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	return leads, nil
}

// GetLead returns one of the owner's leads.
func (srv *leadService) GetLead(ctx context.Context, userID, leadID uuid.UUID) (*entity.SavedLead, error) {
	lead, err := srv.leadRepo.FindByID(ctx, userID, leadID)
	if err != nil {
		return nil, mapLeadNotFound(err)
	}

	return lead, nil
}

// UpdateLead changes the status and notes of a lead.
func (srv *leadService) UpdateLead(ctx context.Context, userID, leadID uuid.UUID, input *usecase.UpdateLeadInput) (*entity.SavedLead, error) {
	var status entity.LeadStatus
	if input.Status != nil {
		status = entity.LeadStatus(strings.TrimSpace(*input.Status))
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidLeadStatus.WithDetails(*input.Status)
		}
	}

	var updated *entity.SavedLead
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		lead, err := leadRepo.FindByID(ctx, userID, leadID)
		if err != nil {
			return mapLeadNotFound(err)
		}

		if input.Status != nil {
			lead.Status = status
		}
		if input.Notes != nil {
			lead.Notes = input.Notes
		}

		if err := leadRepo.Update(ctx, lead); err != nil {
			return mapLeadNotFound(err)
		}
		updated = lead

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update lead")
	}

	srv.log(ctx).Info("Lead updated", slog.Any("leadID", leadID), slog.String("status", string(updated.Status)))

	return updated, nil
}

// DeleteLead removes one of the owner's leads.
func (srv *leadService) DeleteLead(ctx context.Context, userID, leadID uuid.UUID) error {
	if err := srv.leadRepo.Delete(ctx, userID, leadID); err != nil {
		return mapLeadNotFound(err)
	}
	srv.log(ctx).Info("Lead deleted", slog.Any("leadID", leadID))

	return nil
}

// RefreshLead re-runs enrichment for the lead and stores the merged result.
// The lead is returned unchanged when enrichment yields nothing.
func (srv *leadService) RefreshLead(ctx context.Context, userID, leadID uuid.UUID) (*entity.SavedLead, error) {
	lead, err := srv.GetLead(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}

	if !srv.enricher.Enabled() {
		srv.log(ctx).Debug("Enrichment not configured, lead left unchanged", slog.Any("leadID", leadID))

		return lead, nil
	}

	record := srv.enricher.Enrich(ctx, &entity.EnrichmentQuery{
		Name:         lead.Name,
		Address:      derefString(lead.Address),
		Lat:          lead.Latitude,
		Lon:          lead.Longitude,
		KnownPlaceID: derefString(lead.GooglePlaceID),
	})
	if record == nil {
		srv.log(ctx).Info("No enrichment found for lead", slog.Any("leadID", leadID))

		return lead, nil
	}

	lead.ApplyEnrichment(record)
	lead.Phone = srv.normalizePhone(lead.Phone)

	if err := srv.leadRepo.Update(ctx, lead); err != nil {
		return nil, mapLeadNotFound(err)
	}
	srv.log(ctx).Info("Lead enriched", slog.Any("leadID", leadID), slog.String("google_place_id", record.PlaceID))

	return lead, nil
}

// RefreshLeadFromEvent refreshes the lead named by a published event. Events
// that can never succeed are reported as ErrInvalidRequest or ErrLeadNotFound.
func (srv *leadService) RefreshLeadFromEvent(ctx context.Context, event *service.LeadEvent) error {
	if event == nil {
		return domainerrors.ErrInvalidRequest.WithDetails("empty lead event")
	}
	if event.Type != constants.LeadEventSaved {
		srv.log(ctx).Info("Ignoring lead event", slog.String("type", event.Type))

		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails("invalid user_id in lead event")
	}
	leadID, err := uuid.Parse(event.LeadID)
	if err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails("invalid lead_id in lead event")
	}

	if _, err := srv.RefreshLead(ctx, userID, leadID); err != nil {
		return errors.Wrap(err, "failed to refresh lead from event")
	}

	return nil
}

// LeadQRCode renders the lead's best link as a QR code.
func (srv *leadService) LeadQRCode(ctx context.Context, userID, leadID uuid.UUID) ([]byte, error) {
	lead, err := srv.GetLead(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GeneratePNG(lead.BestLink())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate lead QR code")
	}

	return png, nil
}

func mapLeadNotFound(err error) error {
	if errors.Is(err, repository.ErrLeadNotFound) {
		return domainerrors.ErrLeadNotFound
	}

	return errors.WithStack(err)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
