package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"askmind_backend/internal/models"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository interface {
	FindByID(id string) (*models.Subscription, error)
	FindByUserID(userID string) ([]models.Subscription, error)
	FindActiveByUserID(userID string) ([]models.Subscription, error)
	Create(subscription *models.Subscription) error
	Save(subscription *models.Subscription) error

	// FindRenewable returns subscriptions due for a renewal attempt:
	// renewal date reached, auto-renew on, still ACTIVE.
	FindRenewable(now time.Time) ([]models.Subscription, error)
	// FindExpired returns subscriptions whose period ended while still
	// marked ACTIVE.
	FindExpired(now time.Time) ([]models.Subscription, error)

	// DebitUsage atomically consumes one message if quota remains.
	// Unlimited subscriptions admit without incrementing. It reports
	// whether the debit was applied, so a raced-away last unit shows
	// up as false instead of an overdraft.
	DebitUsage(id string) (bool, error)
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

func (r *SubscriptionRepositoryImpl) FindByID(id string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := r.db.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindByUserID(userID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) FindActiveByUserID(userID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.
		Where("user_id = ? AND status = ?", userID, models.SubscriptionStatusActive).
		Order("id ASC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) Create(subscription *models.Subscription) error {
	return r.db.Create(subscription).Error
}

func (r *SubscriptionRepositoryImpl) Save(subscription *models.Subscription) error {
	return r.db.Save(subscription).Error
}

func (r *SubscriptionRepositoryImpl) FindRenewable(now time.Time) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.
		Where("renewal_date <= ? AND auto_renew = ? AND status = ?",
			now, true, models.SubscriptionStatusActive).
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) FindExpired(now time.Time) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.
		Where("end_date < ? AND status = ?", now, models.SubscriptionStatusActive).
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) DebitUsage(id string) (bool, error) {
	// Conditional increment so two concurrent debits can not both take
	// the last unit. NULL max_messages is the unlimited ceiling and is
	// admitted without counting.
	result := r.db.Exec(`
		UPDATE subscriptions
		SET messages_used = CASE
			WHEN max_messages IS NULL THEN messages_used
			ELSE messages_used + 1
		END,
		updated_at = NOW()
		WHERE id = ?
		AND (max_messages IS NULL OR messages_used < max_messages)
	`, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
