package models

import (
	"errors"
	"time"
)

var ErrNoQuotaRemaining = errors.New("no quota remaining")

// Subscription is one purchased access period. A user may hold several,
// overlapping or historical. Expiry and cancellation are status
// transitions; rows are never deleted by business logic.
type Subscription struct {
	BaseModel
	UserID       string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Tier         SubscriptionTier `gorm:"not null" json:"tier"`
	BillingCycle BillingCycle     `gorm:"not null" json:"billing_cycle"`
	// MaxMessages is nil for an unlimited ceiling (ENTERPRISE).
	MaxMessages  *int               `json:"max_messages"`
	MessagesUsed int                `gorm:"not null;default:0" json:"messages_used"`
	Price        float64            `gorm:"type:decimal(10,2);not null" json:"price"`
	StartDate    time.Time          `gorm:"not null" json:"start_date"`
	EndDate      time.Time          `gorm:"not null" json:"end_date"`
	RenewalDate  time.Time          `gorm:"not null" json:"renewal_date"`
	AutoRenew    bool               `gorm:"not null;default:true" json:"auto_renew"`
	Status       SubscriptionStatus `gorm:"not null;default:'ACTIVE'" json:"status"`
}

// IsActive reports whether the subscription admits requests at now:
// status ACTIVE and now within [StartDate, EndDate].
func (s *Subscription) IsActive(now time.Time) bool {
	return s.Status == SubscriptionStatusActive &&
		!now.Before(s.StartDate) &&
		!now.After(s.EndDate)
}

// IsExpired reports whether the access period has ended at now,
// regardless of status.
func (s *Subscription) IsExpired(now time.Time) bool {
	return now.After(s.EndDate)
}

// HasQuota reports whether at least one message remains in the period.
func (s *Subscription) HasQuota() bool {
	if s.MaxMessages == nil {
		return true
	}
	return s.MessagesUsed < *s.MaxMessages
}

// RemainingQuota returns the quota left in the current period.
func (s *Subscription) RemainingQuota() MessageLimit {
	if s.MaxMessages == nil {
		return UnlimitedMessages()
	}
	return LimitedMessages(*s.MaxMessages - s.MessagesUsed)
}

// UseMessage consumes one message from the period's quota. Unlimited
// subscriptions admit without counting.
func (s *Subscription) UseMessage() error {
	if !s.HasQuota() {
		return ErrNoQuotaRemaining
	}
	if s.MaxMessages != nil {
		s.MessagesUsed++
	}
	return nil
}

// Cancel moves the subscription to its terminal state and turns off
// auto-renewal. There is no way back to ACTIVE.
func (s *Subscription) Cancel() {
	s.AutoRenew = false
	s.Status = SubscriptionStatusCancelled
}

// Renew starts a fresh billing period at now: usage resets, the period
// rolls forward by one cycle length, and the renewal date tracks the
// new end date. Status stays ACTIVE.
func (s *Subscription) Renew(now time.Time) {
	s.MessagesUsed = 0
	s.StartDate = now
	s.EndDate = AddCycle(now, s.BillingCycle)
	s.RenewalDate = s.EndDate
}

// MarkRenewalFailed records a failed renewal payment: the subscription
// goes INACTIVE and stops auto-renewing. Dates and usage are untouched.
func (s *Subscription) MarkRenewalFailed() {
	s.Status = SubscriptionStatusInactive
	s.AutoRenew = false
}

// AddCycle advances t by one billing period.
func AddCycle(t time.Time, cycle BillingCycle) time.Time {
	if cycle == CycleYearly {
		return t.AddDate(1, 0, 0)
	}
	return t.AddDate(0, 1, 0)
}
