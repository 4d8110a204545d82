package model

import (
	"time"

	"github.com/google/uuid"
)

type Venue struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug string    `gorm:"type:varchar(16);uniqueIndex;not null"`

	Name  string `gorm:"type:varchar(200);not null"`
	Email string `gorm:"type:varchar(200);not null;index"`
	Phone string `gorm:"type:varchar(50)"`

	WelcomeMessage  string `gorm:"type:text;default:'Welcome! Enter your info for exclusive offers.'"`
	ThankYouMessage string `gorm:"type:text;default:'Thanks! We''ll be in touch soon.'"`
	PrimaryColor    string `gorm:"type:varchar(7);default:'#6366f1'"`

	LogoData        []byte `gorm:"type:bytea"`
	LogoFilename    string `gorm:"type:varchar(255)"`
	LogoContentType string `gorm:"type:varchar(100)"`

	MenuData        []byte `gorm:"type:bytea"`
	MenuFilename    string `gorm:"type:varchar(255)"`
	MenuContentType string `gorm:"type:varchar(100)"`

	PaymentProvider      string  `gorm:"type:varchar(20);not null;default:'stripe'"`
	StripeCustomerId     *string `gorm:"type:varchar(100);index"`
	StripeSubscriptionId *string `gorm:"type:varchar(100);index"`
	PaypalSubscriptionId *string `gorm:"type:varchar(100);index"`
	SubscriptionStatus   string  `gorm:"type:varchar(50);not null;default:'trialing'"`

	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	// Relations
	Leads []*Lead `gorm:"foreignKey:VenueId;constraint:OnDelete:CASCADE"`
}

func (Venue) TableName() string {
	return "venues"
}
