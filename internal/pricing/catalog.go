// Package pricing holds the static subscription price table. The table
// is read-only after process start and total over every tier and
// billing cycle combination.
package pricing

import (
	"askmind_backend/internal/models"
)

type planPricing struct {
	monthly     float64
	yearly      float64
	maxMessages models.MessageLimit
}

var catalog = map[models.SubscriptionTier]planPricing{
	models.TierBasic: {
		monthly:     9.99,
		yearly:      99.99,
		maxMessages: models.LimitedMessages(10),
	},
	models.TierPro: {
		monthly:     29.99,
		yearly:      299.99,
		maxMessages: models.LimitedMessages(100),
	},
	models.TierEnterprise: {
		monthly:     99.99,
		yearly:      999.99,
		maxMessages: models.UnlimitedMessages(),
	},
}

// Price returns the period price for a tier and billing cycle.
// Unknown tiers are a programmer error; the HTTP layer validates tier
// and cycle before they reach here.
func Price(tier models.SubscriptionTier, cycle models.BillingCycle) float64 {
	p := catalog[tier]
	if cycle == models.CycleYearly {
		return p.yearly
	}
	return p.monthly
}

// MaxMessages returns the per-period message ceiling for a tier.
func MaxMessages(tier models.SubscriptionTier) models.MessageLimit {
	return catalog[tier].maxMessages
}

// Tiers lists the known tiers.
func Tiers() []models.SubscriptionTier {
	return []models.SubscriptionTier{models.TierBasic, models.TierPro, models.TierEnterprise}
}

// Cycles lists the known billing cycles.
func Cycles() []models.BillingCycle {
	return []models.BillingCycle{models.CycleMonthly, models.CycleYearly}
}
