// FILE: internal/service/lead_service.go
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/pkg/logger"
	"qrcapture-be/internal/repository/specification"
	"qrcapture-be/internal/repository/unitofwork"
	"qrcapture-be/pkg/events"

	"github.com/google/uuid"
)

// Dashboard lists cap at the most recent leads; exports are unbounded.
const leadListLimit = 100

type ILeadService interface {
	Capture(ctx context.Context, slug string, req *dto.CaptureLeadRequest) (*dto.LeadResponse, error)
	List(ctx context.Context, venueId uuid.UUID) (*dto.LeadListResponse, error)
	UpdateNotes(ctx context.Context, venueId, leadId uuid.UUID, notes string) error
	ExportCSV(ctx context.Context, venueId uuid.UUID) ([]byte, error)
}

type leadService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IEventPublisher
	log        logger.ILogger
}

func NewLeadService(uowFactory unitofwork.RepositoryFactory, publisher IEventPublisher, log logger.ILogger) ILeadService {
	return &leadService{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

// Capture records a visitor submission against the venue behind the slug.
// The venue must be active and its subscription in a granting state; a
// lapsed or past-due subscription turns the page off.
func (s *leadService) Capture(ctx context.Context, slug string, req *dto.CaptureLeadRequest) (*dto.LeadResponse, error) {
	if req.Phone == "" && req.Email == "" {
		return nil, ErrContactRequired
	}

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

	source := entity.LeadSource(req.Source)
	if source == "" {
		source = entity.LeadSourceQR
	}

	lead := &entity.Lead{
		Id:      uuid.New(),
		VenueId: venue.Id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Source:  source,
	}

	if err := uow.LeadRepository().Create(ctx, lead); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, events.TypeLeadCaptured, map[string]interface{}{
			"lead_id":  lead.Id.String(),
			"venue_id": venue.Id.String(),
		})
		if err != nil {
			s.log.Error("lead", "failed to publish lead captured event", map[string]interface{}{
				"lead_id": lead.Id,
				"error":   err.Error(),
			})
		}
	}

	return toLeadResponse(lead), nil
}

func (s *leadService) List(ctx context.Context, venueId uuid.UUID) (*dto.LeadListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	leadsRepo := uow.LeadRepository()

	leads, err := leadsRepo.FindAll(ctx,
		specification.VenueOwnedBy{VenueID: venueId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: leadListLimit},
	)
	if err != nil {
		return nil, err
	}

	total, err := leadsRepo.Count(ctx, specification.VenueOwnedBy{VenueID: venueId})
	if err != nil {
		return nil, err
	}

	res := &dto.LeadListResponse{
		Leads: make([]*dto.LeadResponse, 0, len(leads)),
		Total: total,
	}
	for _, l := range leads {
		res.Leads = append(res.Leads, toLeadResponse(l))
	}
	return res, nil
}

func (s *leadService) UpdateNotes(ctx context.Context, venueId, leadId uuid.UUID, notes string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	leadsRepo := uow.LeadRepository()

	// Ownership check keeps one tenant from annotating another's leads.
	lead, err := leadsRepo.FindOne(ctx,
		specification.ByID{ID: leadId},
		specification.VenueOwnedBy{VenueID: venueId},
	)
	if err != nil {
		return err
	}
	if lead == nil {
		return ErrLeadNotFound
	}

	return leadsRepo.UpdateNotes(ctx, leadId, notes)
}

func (s *leadService) ExportCSV(ctx context.Context, venueId uuid.UUID) ([]byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	leads, err := uow.LeadRepository().FindAll(ctx,
		specification.VenueOwnedBy{VenueID: venueId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"name", "phone", "email", "source", "notes", "created_at"}); err != nil {
		return nil, err
	}
	for _, l := range leads {
		record := []string{
			l.Name,
			l.Phone,
			l.Email,
			string(l.Source),
			l.Notes,
			l.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		Id:        l.Id,
		Name:      l.Name,
		Phone:     l.Phone,
		Email:     l.Email,
		Source:    string(l.Source),
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
}
