package models

type SubscriptionTier string
type BillingCycle string
type SubscriptionStatus string

const (
	TierBasic      SubscriptionTier = "BASIC"
	TierPro        SubscriptionTier = "PRO"
	TierEnterprise SubscriptionTier = "ENTERPRISE"

	CycleMonthly BillingCycle = "MONTHLY"
	CycleYearly  BillingCycle = "YEARLY"

	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusInactive  SubscriptionStatus = "INACTIVE"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
)

// Valid reports whether the tier is one of the known tiers.
func (t SubscriptionTier) Valid() bool {
	switch t {
	case TierBasic, TierPro, TierEnterprise:
		return true
	}
	return false
}

// Valid reports whether the cycle is one of the known billing cycles.
func (c BillingCycle) Valid() bool {
	switch c {
	case CycleMonthly, CycleYearly:
		return true
	}
	return false
}
