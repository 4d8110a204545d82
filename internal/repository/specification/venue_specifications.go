package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

// ByEmailInsensitive matches the dedup identity key: lowercased email.
type ByEmailInsensitive struct {
	Email string
}

func (s ByEmailInsensitive) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = ?", strings.ToLower(s.Email))
}

type ActiveVenues struct{}

func (s ActiveVenues) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

type VenueOwnedBy struct {
	VenueID uuid.UUID
}

func (s VenueOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("venue_id = ?", s.VenueID)
}
