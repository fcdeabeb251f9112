package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pinpoint/internal/models/db_models"
	"pinpoint/internal/models/request_models"
	"pinpoint/internal/models/response_models"
	"pinpoint/internal/repositories"
	"pinpoint/pkg/events"
	"pinpoint/pkg/geocode"
	"pinpoint/pkg/utils"
)

type FirmServiceInterface interface {
	ListFirms(ctx context.Context, term string, page, perPage int) (response_models.Document, error)
	CreateFirm(ctx context.Context, req request_models.CreateFirmRequest) (response_models.Document, error)
	GetFirm(ctx context.Context, id string) (response_models.Document, error)
	UpdateFirm(ctx context.Context, id string, req request_models.UpdateFirmRequest) (response_models.Document, error)
	DiscardFirm(ctx context.Context, id string) error
	AddPinBalance(ctx context.Context, id string, req request_models.CreatePinBalanceRequest) (response_models.Document, error)
}

type FirmService struct {
	firmRepo  repositories.FirmRepository
	geocoder  geocode.Client
	publisher events.Publisher
	photos    utils.PhotoStore
}

func NewFirmService(
	firmRepo repositories.FirmRepository,
	geocoder geocode.Client,
	publisher events.Publisher,
	photos utils.PhotoStore,
) FirmServiceInterface {
	return &FirmService{
		firmRepo:  firmRepo,
		geocoder:  geocoder,
		publisher: publisher,
		photos:    photos,
	}
}

func (s *FirmService) ListFirms(ctx context.Context, term string, page, perPage int) (response_models.Document, error) {
	params := repositories.PageParams{Page: page, PerPage: perPage}.Normalized()

	firms, total, err := s.firmRepo.List(ctx, term, params)
	if err != nil {
		log.Error().Err(err).Msg("error listing firms")
		return response_models.Document{}, utils.ErrDatabaseError
	}

	meta := response_models.Meta{
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		TotalPages:  repositories.TotalPages(total, params.PerPage),
	}
	return response_models.FirmListDocument(firms, meta, response_models.FirmListIncludes), nil
}

func (s *FirmService) CreateFirm(ctx context.Context, req request_models.CreateFirmRequest) (response_models.Document, error) {
	firm := db_models.Firm{
		Name:                 req.Name,
		PhoneNumber:          req.PhoneNumber,
		About:                req.About,
		BusinessType:         req.BusinessType,
		Keywords:             req.Keywords,
		Hashtags:             req.Hashtags,
		Status:               req.Status,
		Checked:              req.Checked,
		Street:               req.Street,
		City:                 req.City,
		State:                req.State,
		Zip:                  req.Zip,
		Lat:                  req.Lat,
		Lng:                  req.Lng,
		StripeCustomerToken:  req.StripeCustomerToken,
		StripeCardLastDigits: req.StripeCardLastDigits,
		StripeCardBrand:      req.StripeCardBrand,
		Balance:              req.Balance,
		OwnerID:              req.OwnerID,
	}

	applyDefaultSchedules(&firm)

	if errs := s.storePhoto(&firm, req.Photo, firm.Validate()); len(errs) > 0 {
		return response_models.ValidationErrors(errs), nil
	}

	s.geocodeFirm(ctx, &firm)

	if err := s.firmRepo.Create(ctx, &firm); err != nil {
		log.Error().Err(err).Msg("error creating firm")
		return response_models.Document{}, utils.ErrDatabaseError
	}

	s.dispatchDynamicLink(ctx, "Firm", firm.ID)

	return response_models.FirmDocument(&firm, response_models.NoIncludes), nil
}

func (s *FirmService) GetFirm(ctx context.Context, id string) (response_models.Document, error) {
	firm, err := s.fetchFirm(ctx, id)
	if err != nil {
		return response_models.Document{}, err
	}

	doc := response_models.FirmDocument(firm, response_models.FirmDetailIncludes)
	res := doc.Data.(response_models.Resource)

	if balance, err := s.firmRepo.AvailableBalance(ctx, firm.ID); err == nil {
		res.Attributes["available_balance"] = balance
	}
	if counters, err := s.firmRepo.Counters(ctx, firm.ID); err == nil {
		res.Attributes["pins_count"] = counters.Pins
		res.Attributes["likes_count"] = counters.Likes
		res.Attributes["reports_count"] = counters.Reports
		res.Attributes["reached_users_count"] = counters.ReachedUsers
	}
	return doc, nil
}

func (s *FirmService) UpdateFirm(ctx context.Context, id string, req request_models.UpdateFirmRequest) (response_models.Document, error) {
	firm, err := s.fetchFirm(ctx, id)
	if err != nil {
		return response_models.Document{}, err
	}

	addressChanged := applyFirmUpdate(firm, req)
	applyDefaultSchedules(firm)

	photo := ""
	if req.Photo != nil {
		photo = *req.Photo
	}
	if errs := s.storePhoto(firm, photo, firm.Validate()); len(errs) > 0 {
		return response_models.ValidationErrors(errs), nil
	}

	// Re-geocode when the address moved and the caller did not pin
	// coordinates explicitly.
	if addressChanged && req.Lat == nil && req.Lng == nil {
		firm.Lat, firm.Lng = 0, 0
		s.geocodeFirm(ctx, firm)
	}

	if err := s.firmRepo.Update(ctx, firm); err != nil {
		log.Error().Err(err).Msg("error updating firm")
		return response_models.Document{}, utils.ErrDatabaseError
	}

	return response_models.FirmDocument(firm, response_models.NoIncludes), nil
}

func (s *FirmService) DiscardFirm(ctx context.Context, id string) error {
	firmID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrFirmNotFound
	}

	firm, err := s.firmRepo.GetByID(ctx, firmID)
	if err != nil {
		log.Error().Err(err).Msg("error fetching firm")
		return utils.ErrDatabaseError
	}
	if firm == nil {
		exists, err := s.firmRepo.Exists(ctx, firmID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if exists {
			// Already discarded; re-discarding is a no-op.
			return nil
		}
		return utils.ErrFirmNotFound
	}

	if err := s.firmRepo.DiscardFirm(ctx, firmID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrCascadeFailed, err)
	}
	return nil
}

func (s *FirmService) AddPinBalance(ctx context.Context, id string, req request_models.CreatePinBalanceRequest) (response_models.Document, error) {
	firm, err := s.fetchFirm(ctx, id)
	if err != nil {
		return response_models.Document{}, err
	}

	balance := db_models.PinBalance{
		FirmID:        firm.ID,
		AmountInCents: req.AmountInCents,
		Comment:       req.Comment,
	}
	if errs := balance.Validate(); len(errs) > 0 {
		return response_models.ValidationErrors(errs), nil
	}

	if err := s.firmRepo.CreatePinBalance(ctx, &balance); err != nil {
		log.Error().Err(err).Msg("error creating pin balance")
		return response_models.Document{}, utils.ErrDatabaseError
	}

	return s.GetFirm(ctx, id)
}

func (s *FirmService) fetchFirm(ctx context.Context, id string) (*db_models.Firm, error) {
	firmID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrFirmNotFound
	}
	firm, err := s.firmRepo.GetByID(ctx, firmID)
	if err != nil {
		log.Error().Err(err).Msg("error fetching firm")
		return nil, utils.ErrDatabaseError
	}
	if firm == nil {
		return nil, utils.ErrFirmNotFound
	}
	return firm, nil
}

// storePhoto decodes and stores a submitted photo payload, folding any
// storage failure into the validation error list.
func (s *FirmService) storePhoto(firm *db_models.Firm, payload string, errs []db_models.FieldError) []db_models.FieldError {
	if payload == "" {
		return errs
	}
	url, err := s.photos.SaveBase64(payload)
	if err != nil {
		return append(errs, db_models.InvalidField("photo", err.Error()))
	}
	firm.Photo = url
	return errs
}

// geocodeFirm resolves the firm's address when coordinates are missing.
// Provider failures are reported but never block the save; the firm simply
// stays ungeolocated.
func (s *FirmService) geocodeFirm(ctx context.Context, firm *db_models.Firm) {
	if firm.Geolocated() || firm.Address() == "" {
		return
	}
	lat, lng, err := s.geocoder.Geocode(ctx, firm.Address())
	if err != nil {
		log.Warn().Err(err).Str("address", firm.Address()).Msg("geocoding failed; saving ungeolocated")
		return
	}
	firm.Lat, firm.Lng = lat, lng
}

func (s *FirmService) dispatchDynamicLink(ctx context.Context, resourceType string, id uuid.UUID) {
	// Fire-and-forget: the link worker owns retries.
	_ = s.publisher.PublishDynamicLinkCreated(ctx, events.DynamicLinkCreatedEvent{
		ResourceType: resourceType,
		ResourceID:   id.String(),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	})
}

// applyFirmUpdate copies submitted fields onto the firm and reports whether
// any address component changed.
func applyFirmUpdate(firm *db_models.Firm, req request_models.UpdateFirmRequest) bool {
	if req.Name != nil {
		firm.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		firm.PhoneNumber = *req.PhoneNumber
	}
	if req.About != nil {
		firm.About = *req.About
	}
	if req.BusinessType != nil {
		firm.BusinessType = *req.BusinessType
	}
	if req.Keywords != nil {
		firm.Keywords = *req.Keywords
	}
	if req.Hashtags != nil {
		firm.Hashtags = *req.Hashtags
	}
	if req.Status != nil {
		firm.Status = *req.Status
	}
	if req.Checked != nil {
		firm.Checked = *req.Checked
	}
	if req.StripeCustomerToken != nil {
		firm.StripeCustomerToken = *req.StripeCustomerToken
	}
	if req.StripeCardLastDigits != nil {
		firm.StripeCardLastDigits = *req.StripeCardLastDigits
	}
	if req.StripeCardBrand != nil {
		firm.StripeCardBrand = *req.StripeCardBrand
	}
	if req.Balance != nil {
		firm.Balance = *req.Balance
	}
	if req.OwnerID != nil {
		firm.OwnerID = *req.OwnerID
	}
	if req.Lat != nil {
		firm.Lat = *req.Lat
	}
	if req.Lng != nil {
		firm.Lng = *req.Lng
	}

	addressChanged := false
	if req.Street != nil && *req.Street != firm.Street {
		firm.Street = *req.Street
		addressChanged = true
	}
	if req.City != nil && *req.City != firm.City {
		firm.City = *req.City
		addressChanged = true
	}
	if req.State != nil && *req.State != firm.State {
		firm.State = *req.State
		addressChanged = true
	}
	if req.Zip != nil && *req.Zip != firm.Zip {
		firm.Zip = *req.Zip
		addressChanged = true
	}
	return addressChanged
}
