// FILE: internal/service/venue_service.go
package service

import (
	"context"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/pkg/logger"
	"qrcapture-be/internal/repository/unitofwork"
	"qrcapture-be/pkg/upload"

	"github.com/google/uuid"
)

// FileBlob is a stored upload ready to serve.
type FileBlob struct {
	Data        []byte
	Filename    string
	ContentType string
}

type IVenueService interface {
	Get(ctx context.Context, venueId uuid.UUID) (*dto.VenueResponse, error)
	UpdateSettings(ctx context.Context, venueId uuid.UUID, req *dto.VenueSettingsRequest) (*dto.VenueResponse, error)
	UploadMenu(ctx context.Context, venueId uuid.UUID, data []byte, filename string) error
	UploadLogo(ctx context.Context, venueId uuid.UUID, data []byte, filename string) error
	GetCapturePage(ctx context.Context, slug string) (*dto.CapturePageResponse, error)
	GetMenu(ctx context.Context, slug string) (*FileBlob, error)
	GetLogo(ctx context.Context, slug string) (*FileBlob, error)
}

type venueService struct {
	uowFactory  unitofwork.RepositoryFactory
	menuProfile upload.Profile
	logoProfile upload.Profile
	log         logger.ILogger
}

func NewVenueService(
	uowFactory unitofwork.RepositoryFactory,
	menuProfile upload.Profile,
	logoProfile upload.Profile,
	log logger.ILogger,
) IVenueService {
	return &venueService{
		uowFactory:  uowFactory,
		menuProfile: menuProfile,
		logoProfile: logoProfile,
		log:         log,
	}
}

func (s *venueService) Get(ctx context.Context, venueId uuid.UUID) (*dto.VenueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	venue, err := uow.VenueRepository().FindById(ctx, venueId)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}
	return toVenueResponse(venue), nil
}

func (s *venueService) UpdateSettings(ctx context.Context, venueId uuid.UUID, req *dto.VenueSettingsRequest) (*dto.VenueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	venue, err := uow.VenueRepository().FindById(ctx, venueId)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if venue == nil {
		uow.Rollback()
		return nil, ErrVenueNotFound
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Phone != nil {
		venue.Phone = *req.Phone
	}
	if req.WelcomeMessage != nil {
		venue.WelcomeMessage = *req.WelcomeMessage
	}
	if req.ThankYouMessage != nil {
		venue.ThankYouMessage = *req.ThankYouMessage
	}
	if req.PrimaryColor != nil {
		venue.PrimaryColor = *req.PrimaryColor
	}

	if err := uow.VenueRepository().Update(ctx, venue); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toVenueResponse(venue), nil
}

func (s *venueService) UploadMenu(ctx context.Context, venueId uuid.UUID, data []byte, filename string) error {
	return s.storeUpload(ctx, venueId, data, filename, s.menuProfile, func(v *entity.Venue, res *upload.Result) {
		v.MenuData = res.Data
		v.MenuFilename = res.Filename
		v.MenuContentType = res.ContentType
	})
}

func (s *venueService) UploadLogo(ctx context.Context, venueId uuid.UUID, data []byte, filename string) error {
	return s.storeUpload(ctx, venueId, data, filename, s.logoProfile, func(v *entity.Venue, res *upload.Result) {
		v.LogoData = res.Data
		v.LogoFilename = res.Filename
		v.LogoContentType = res.ContentType
	})
}

// storeUpload runs the upload pipeline before touching the database, so an
// oversized or malformed file is rejected without a transaction.
func (s *venueService) storeUpload(
	ctx context.Context,
	venueId uuid.UUID,
	data []byte,
	filename string,
	profile upload.Profile,
	assign func(*entity.Venue, *upload.Result),
) error {
	result, err := upload.Process(data, filename, profile)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	venue, err := uow.VenueRepository().FindById(ctx, venueId)
	if err != nil {
		uow.Rollback()
		return err
	}
	if venue == nil {
		uow.Rollback()
		return ErrVenueNotFound
	}

	assign(venue, result)

	if err := uow.VenueRepository().Update(ctx, venue); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}

func (s *venueService) GetCapturePage(ctx context.Context, slug string) (*dto.CapturePageResponse, error) {
	venue, err := s.activeVenueBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &dto.CapturePageResponse{
		Slug:            venue.Slug,
		Name:            venue.Name,
		WelcomeMessage:  venue.WelcomeMessage,
		PrimaryColor:    venue.PrimaryColor,
		HasMenu:         venue.HasMenu(),
		HasLogo:         venue.HasLogo(),
		ThankYouMessage: venue.ThankYouMessage,
	}, nil
}

func (s *venueService) GetMenu(ctx context.Context, slug string) (*FileBlob, error) {
	venue, err := s.activeVenueBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !venue.HasMenu() {
		return nil, ErrVenueNotFound
	}
	return &FileBlob{
		Data:        venue.MenuData,
		Filename:    venue.MenuFilename,
		ContentType: venue.MenuContentType,
	}, nil
}

func (s *venueService) GetLogo(ctx context.Context, slug string) (*FileBlob, error) {
	venue, err := s.activeVenueBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !venue.HasLogo() {
		return nil, ErrVenueNotFound
	}
	return &FileBlob{
		Data:        venue.LogoData,
		Filename:    venue.LogoFilename,
		ContentType: venue.LogoContentType,
	}, nil
}

func (s *venueService) activeVenueBySlug(ctx context.Context, slug string) (*entity.Venue, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	venue, err := uow.VenueRepository().FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}
	if !venue.Active || !venue.SubscriptionStatus.Grants() {
		return nil, ErrSubscriptionRequired
	}
	return venue, nil
}

func toVenueResponse(v *entity.Venue) *dto.VenueResponse {
	return &dto.VenueResponse{
		Id:                 v.Id,
		Slug:               v.Slug,
		Name:               v.Name,
		Email:              v.Email,
		Phone:              v.Phone,
		WelcomeMessage:     v.WelcomeMessage,
		ThankYouMessage:    v.ThankYouMessage,
		PrimaryColor:       v.PrimaryColor,
		PaymentProvider:    string(v.PaymentProvider),
		SubscriptionStatus: string(v.SubscriptionStatus),
		Active:             v.Active,
		HasMenu:            v.HasMenu(),
		HasLogo:            v.HasLogo(),
		CaptureURL:         v.CaptureURL(),
		CreatedAt:          v.CreatedAt,
	}
}
