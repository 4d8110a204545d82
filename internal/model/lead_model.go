package model

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VenueId uuid.UUID `gorm:"type:uuid;not null;index"`

	Phone string `gorm:"type:varchar(50)"`
	Email string `gorm:"type:varchar(200)"`
	Name  string `gorm:"type:varchar(200)"`

	Source    string    `gorm:"type:varchar(50);not null;default:'qr'"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
