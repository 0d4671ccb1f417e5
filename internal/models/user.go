package models

import (
	"errors"
	"time"
)

// FreeMessageLimit is the monthly free allotment for every user.
const FreeMessageLimit = 3

var ErrNoFreeMessages = errors.New("no free messages remaining")

type User struct {
	BaseModel
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	Name               string    `gorm:"not null" json:"name"`
	FreeMessagesUsed   int       `gorm:"not null;default:0" json:"free_messages_used"`
	LastFreeQuotaReset time.Time `gorm:"not null" json:"last_free_quota_reset"`

	// Relations
	Subscriptions []Subscription `gorm:"foreignKey:UserID" json:"-"`
}

// NeedsQuotaReset reports whether the free counter was last reset
// before the start of the calendar month containing now.
func (u *User) NeedsQuotaReset(now time.Time) bool {
	monthStart := MonthStart(now)
	return u.LastFreeQuotaReset.Before(monthStart)
}

// ResetFreeQuota zeroes the free counter and records the reset time.
func (u *User) ResetFreeQuota(now time.Time) {
	u.FreeMessagesUsed = 0
	u.LastFreeQuotaReset = now
}

// MaybeResetFreeQuota applies the lazy monthly reset. It reports
// whether the state changed; calling it twice within the same month is
// a no-op the second time.
func (u *User) MaybeResetFreeQuota(now time.Time) bool {
	if !u.NeedsQuotaReset(now) {
		return false
	}
	u.ResetFreeQuota(now)
	return true
}

func (u *User) CanUseFreeMessage() bool {
	return u.FreeMessagesUsed < FreeMessageLimit
}

// UseFreeMessage consumes one unit of the free allotment.
func (u *User) UseFreeMessage() error {
	if !u.CanUseFreeMessage() {
		return ErrNoFreeMessages
	}
	u.FreeMessagesUsed++
	return nil
}

// MonthStart returns the first instant of the calendar month
// containing t, in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
