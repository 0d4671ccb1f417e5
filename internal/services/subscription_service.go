package services

import (
	"time"

	"askmind_backend/internal/apperrors"
	"askmind_backend/internal/logger"
	"askmind_backend/internal/models"
	"askmind_backend/internal/pricing"
	"askmind_backend/internal/repositories"
)

// SubscriptionService owns subscription purchase, cancellation, and
// the periodic lifecycle sweeps.
type SubscriptionService interface {
	CreateSubscription(userID string, tier models.SubscriptionTier, cycle models.BillingCycle, autoRenew bool) (*models.Subscription, error)
	GetUserSubscriptions(userID string) ([]models.Subscription, error)
	CancelSubscription(id string) (*models.Subscription, error)

	// ProcessRenewals attempts renewal for every due subscription.
	// Failure of one never aborts the rest.
	ProcessRenewals(now time.Time) error
	// ProcessExpirations marks ACTIVE subscriptions whose period ended
	// as EXPIRED.
	ProcessExpirations(now time.Time) error
}

type SubscriptionServiceImpl struct {
	subRepo  repositories.SubscriptionRepository
	userRepo repositories.UserRepository
	decide   PaymentDecider
	clock    func() time.Time
}

// NewSubscriptionService wires the lifecycle manager. decide simulates
// the renewal payment outcome; clock may be nil for wall time.
func NewSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	decide PaymentDecider,
	clock func() time.Time,
) SubscriptionService {
	if clock == nil {
		clock = time.Now
	}
	return &SubscriptionServiceImpl{
		subRepo:  subRepo,
		userRepo: userRepo,
		decide:   decide,
		clock:    clock,
	}
}

func (s *SubscriptionServiceImpl) CreateSubscription(userID string, tier models.SubscriptionTier, cycle models.BillingCycle, autoRenew bool) (*models.Subscription, error) {
	if !tier.Valid() || !cycle.Valid() {
		return nil, apperrors.NewBadRequestError("Unknown tier or billing cycle")
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	limit := pricing.MaxMessages(tier)
	var maxMessages *int
	if !limit.Unlimited {
		n := limit.Count
		maxMessages = &n
	}

	startDate := s.clock()
	endDate := models.AddCycle(startDate, cycle)

	subscription := &models.Subscription{
		UserID:       userID,
		Tier:         tier,
		BillingCycle: cycle,
		MaxMessages:  maxMessages,
		Price:        pricing.Price(tier, cycle),
		StartDate:    startDate,
		EndDate:      endDate,
		RenewalDate:  endDate,
		AutoRenew:    autoRenew,
		Status:       models.SubscriptionStatusActive,
	}

	if err := s.subRepo.Create(subscription); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("subscription created",
		"subscription_id", subscription.ID,
		"user_id", userID,
		"tier", tier,
		"billing_cycle", cycle,
	)
	return subscription, nil
}

func (s *SubscriptionServiceImpl) GetUserSubscriptions(userID string) ([]models.Subscription, error) {
	subs, err := s.subRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subs, nil
}

func (s *SubscriptionServiceImpl) CancelSubscription(id string) (*models.Subscription, error) {
	subscription, err := s.subRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	subscription.Cancel()
	if err := s.subRepo.Save(subscription); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("subscription cancelled", "subscription_id", subscription.ID, "user_id", subscription.UserID)
	return subscription, nil
}

func (s *SubscriptionServiceImpl) ProcessRenewals(now time.Time) error {
	renewable, err := s.subRepo.FindRenewable(now)
	if err != nil {
		return err
	}

	for i := range renewable {
		subscription := &renewable[i]

		if !s.decide() {
			subscription.MarkRenewalFailed()
			if err := s.subRepo.Save(subscription); err != nil {
				logger.WithError(err).Error("failed to persist renewal failure", "subscription_id", subscription.ID)
				continue
			}
			logger.Info("renewal payment failed, subscription deactivated",
				"subscription_id", subscription.ID,
				"user_id", subscription.UserID,
			)
			continue
		}

		subscription.Renew(now)
		if err := s.subRepo.Save(subscription); err != nil {
			logger.WithError(err).Error("failed to persist renewal", "subscription_id", subscription.ID)
			continue
		}
		logger.Info("subscription renewed",
			"subscription_id", subscription.ID,
			"user_id", subscription.UserID,
			"end_date", subscription.EndDate,
		)
	}

	return nil
}

func (s *SubscriptionServiceImpl) ProcessExpirations(now time.Time) error {
	expired, err := s.subRepo.FindExpired(now)
	if err != nil {
		return err
	}

	for i := range expired {
		subscription := &expired[i]
		subscription.Status = models.SubscriptionStatusExpired
		if err := s.subRepo.Save(subscription); err != nil {
			logger.WithError(err).Error("failed to mark subscription expired", "subscription_id", subscription.ID)
			continue
		}
		logger.Info("subscription expired", "subscription_id", subscription.ID, "user_id", subscription.UserID)
	}

	return nil
}
