package mapper

import (
	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}
	return &entity.Lead{
		Id:        l.Id,
		VenueId:   l.VenueId,
		Phone:     l.Phone,
		Email:     l.Email,
		Name:      l.Name,
		Source:    entity.LeadSource(l.Source),
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}
	return &model.Lead{
		Id:        l.Id,
		VenueId:   l.VenueId,
		Phone:     l.Phone,
		Email:     l.Email,
		Name:      l.Name,
		Source:    string(l.Source),
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
}
