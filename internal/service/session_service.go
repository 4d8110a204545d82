// FILE: internal/service/session_service.go
package service

import (
	"context"
	"strings"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/repository/memory"
	"qrcapture-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ISessionService handles the email-only dashboard login. Possession of the
// signup email is the whole credential; tokens are opaque and expire from the
// in-memory store.
type ISessionService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Resolve(token string) (uuid.UUID, bool)
	Logout(token string)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, sessions *memory.SessionRepository) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

func (s *sessionService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	venue, err := uow.VenueRepository().FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}

	token := uuid.NewString()
	s.sessions.Save(token, venue.Id)

	return &dto.LoginResponse{
		Token: token,
		Venue: toVenueResponse(venue),
	}, nil
}

func (s *sessionService) Resolve(token string) (uuid.UUID, bool) {
	return s.sessions.Get(token)
}

func (s *sessionService) Logout(token string) {
	s.sessions.Delete(token)
}
