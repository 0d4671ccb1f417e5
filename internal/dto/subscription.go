package dto

// CreateSubscriptionRequest is the body of POST /subscriptions.
// AutoRenew defaults to true when omitted.
type CreateSubscriptionRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid4"`
	Tier         string `json:"tier" validate:"required,oneof=BASIC PRO ENTERPRISE"`
	BillingCycle string `json:"billing_cycle" validate:"required,oneof=MONTHLY YEARLY"`
	AutoRenew    *bool  `json:"auto_renew" validate:"omitempty"`
}
