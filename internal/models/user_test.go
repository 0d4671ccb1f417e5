package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_NeedsQuotaReset(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("reset last month", func(t *testing.T) {
		u := &User{LastFreeQuotaReset: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)}
		assert.True(t, u.NeedsQuotaReset(now))
	})

	t.Run("reset this month", func(t *testing.T) {
		u := &User{LastFreeQuotaReset: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)}
		assert.False(t, u.NeedsQuotaReset(now))
	})

	t.Run("reset exactly at month start", func(t *testing.T) {
		u := &User{LastFreeQuotaReset: MonthStart(now)}
		assert.False(t, u.NeedsQuotaReset(now))
	})

	t.Run("one second before month start", func(t *testing.T) {
		u := &User{LastFreeQuotaReset: MonthStart(now).Add(-time.Second)}
		assert.True(t, u.NeedsQuotaReset(now))
	})
}

func TestUser_MaybeResetFreeQuota(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	u := &User{
		FreeMessagesUsed:   3,
		LastFreeQuotaReset: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
	}

	changed := u.MaybeResetFreeQuota(now)
	assert.True(t, changed)
	assert.Equal(t, 0, u.FreeMessagesUsed)
	assert.Equal(t, now, u.LastFreeQuotaReset)

	// Second invocation in the same month is a no-op.
	u.FreeMessagesUsed = 2
	changed = u.MaybeResetFreeQuota(now.Add(time.Hour))
	assert.False(t, changed)
	assert.Equal(t, 2, u.FreeMessagesUsed)
}

func TestUser_UseFreeMessage(t *testing.T) {
	u := &User{FreeMessagesUsed: 0}

	for i := 1; i <= FreeMessageLimit; i++ {
		require.True(t, u.CanUseFreeMessage())
		require.NoError(t, u.UseFreeMessage())
		assert.Equal(t, i, u.FreeMessagesUsed)
	}

	assert.False(t, u.CanUseFreeMessage())
	err := u.UseFreeMessage()
	assert.ErrorIs(t, err, ErrNoFreeMessages)
	assert.Equal(t, FreeMessageLimit, u.FreeMessagesUsed)
}

func TestMonthStart(t *testing.T) {
	got := MonthStart(time.Date(2025, time.June, 15, 23, 59, 59, 123, time.UTC))
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), got)
}
