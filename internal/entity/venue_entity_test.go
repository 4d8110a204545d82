// FILE: internal/entity/venue_entity_test.go
package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSubscriptionStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want SubscriptionStatus
	}{
		{"trialing", SubscriptionStatusTrialing},
		{"active", SubscriptionStatusActive},
		{"past_due", SubscriptionStatusPastDue},
		{"canceled", SubscriptionStatusCanceled},
		{"incomplete", SubscriptionStatusUnknown},
		{"incomplete_expired", SubscriptionStatusUnknown},
		{"unpaid", SubscriptionStatusUnknown},
		{"", SubscriptionStatusUnknown},
		{"ACTIVE", SubscriptionStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSubscriptionStatus(tt.raw))
		})
	}
}

func TestSubscriptionStatusGrants(t *testing.T) {
	assert.True(t, SubscriptionStatusActive.Grants())
	assert.True(t, SubscriptionStatusTrialing.Grants())
	assert.False(t, SubscriptionStatusPastDue.Grants())
	assert.False(t, SubscriptionStatusCanceled.Grants())
	assert.False(t, SubscriptionStatusUnknown.Grants())
}

func TestVenueCaptureURL(t *testing.T) {
	v := &Venue{Slug: "abcd1234"}
	assert.Equal(t, "/c/abcd1234", v.CaptureURL())
}
