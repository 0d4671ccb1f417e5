package apperrors

// Error codes surfaced to API clients.
const (
	CodeValidationError      ErrorCode = "VALIDATION_ERROR"
	CodeQuotaExceeded        ErrorCode = "QUOTA_EXCEEDED"
	CodeSubscriptionRequired ErrorCode = "SUBSCRIPTION_REQUIRED"
	CodePaymentFailed        ErrorCode = "PAYMENT_FAILED"
	CodeResourceNotFound     ErrorCode = "RESOURCE_NOT_FOUND"
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
)
