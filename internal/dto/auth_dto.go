// FILE: internal/dto/auth_dto.go
package dto

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginResponse struct {
	Token string         `json:"token"`
	Venue *VenueResponse `json:"venue"`
}
