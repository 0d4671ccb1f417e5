package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"askmind_backend/internal/models"
)

func TestPrice(t *testing.T) {
	cases := []struct {
		tier  models.SubscriptionTier
		cycle models.BillingCycle
		want  float64
	}{
		{models.TierBasic, models.CycleMonthly, 9.99},
		{models.TierBasic, models.CycleYearly, 99.99},
		{models.TierPro, models.CycleMonthly, 29.99},
		{models.TierPro, models.CycleYearly, 299.99},
		{models.TierEnterprise, models.CycleMonthly, 99.99},
		{models.TierEnterprise, models.CycleYearly, 999.99},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Price(tc.tier, tc.cycle), "%s %s", tc.tier, tc.cycle)
	}
}

func TestMaxMessages(t *testing.T) {
	assert.Equal(t, models.LimitedMessages(10), MaxMessages(models.TierBasic))
	assert.Equal(t, models.LimitedMessages(100), MaxMessages(models.TierPro))
	assert.True(t, MaxMessages(models.TierEnterprise).Unlimited)
}

// Every advertised tier and cycle combination must carry a positive
// price and a usable message ceiling.
func TestCatalogTotality(t *testing.T) {
	for _, tier := range Tiers() {
		for _, cycle := range Cycles() {
			assert.Greater(t, Price(tier, cycle), 0.0, "%s %s", tier, cycle)
		}
		assert.False(t, MaxMessages(tier).IsZero(), "%s", tier)
	}
}
