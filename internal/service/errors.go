// FILE: internal/service/errors.go
package service

import "errors"

var (
	ErrVenueNotFound        = errors.New("venue not found")
	ErrLeadNotFound         = errors.New("lead not found")
	ErrSubscriptionRequired = errors.New("subscription required")
	ErrContactRequired      = errors.New("phone or email is required")
	ErrBillingUnavailable   = errors.New("billing is not configured")
	ErrNoBillingAccount     = errors.New("no billing account on file")
)
