package mapper

import (
	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/model"
)

type VenueMapper struct{}

func NewVenueMapper() *VenueMapper {
	return &VenueMapper{}
}

func (m *VenueMapper) ToEntity(v *model.Venue) *entity.Venue {
	if v == nil {
		return nil
	}
	return &entity.Venue{
		Id:                   v.Id,
		Slug:                 v.Slug,
		Name:                 v.Name,
		Email:                v.Email,
		Phone:                v.Phone,
		WelcomeMessage:       v.WelcomeMessage,
		ThankYouMessage:      v.ThankYouMessage,
		PrimaryColor:         v.PrimaryColor,
		LogoData:             v.LogoData,
		LogoFilename:         v.LogoFilename,
		LogoContentType:      v.LogoContentType,
		MenuData:             v.MenuData,
		MenuFilename:         v.MenuFilename,
		MenuContentType:      v.MenuContentType,
		PaymentProvider:      entity.PaymentProvider(v.PaymentProvider),
		StripeCustomerId:     v.StripeCustomerId,
		StripeSubscriptionId: v.StripeSubscriptionId,
		PaypalSubscriptionId: v.PaypalSubscriptionId,
		SubscriptionStatus:   entity.SubscriptionStatus(v.SubscriptionStatus),
		Active:               v.Active,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}

func (m *VenueMapper) ToModel(v *entity.Venue) *model.Venue {
	if v == nil {
		return nil
	}
	return &model.Venue{
		Id:                   v.Id,
		Slug:                 v.Slug,
		Name:                 v.Name,
		Email:                v.Email,
		Phone:                v.Phone,
		WelcomeMessage:       v.WelcomeMessage,
		ThankYouMessage:      v.ThankYouMessage,
		PrimaryColor:         v.PrimaryColor,
		LogoData:             v.LogoData,
		LogoFilename:         v.LogoFilename,
		LogoContentType:      v.LogoContentType,
		MenuData:             v.MenuData,
		MenuFilename:         v.MenuFilename,
		MenuContentType:      v.MenuContentType,
		PaymentProvider:      string(v.PaymentProvider),
		StripeCustomerId:     v.StripeCustomerId,
		StripeSubscriptionId: v.StripeSubscriptionId,
		PaypalSubscriptionId: v.PaypalSubscriptionId,
		SubscriptionStatus:   string(v.SubscriptionStatus),
		Active:               v.Active,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}
