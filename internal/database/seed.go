package database

import (
	"time"

	"gorm.io/gorm"

	"askmind_backend/internal/logger"
	"askmind_backend/internal/models"
	"askmind_backend/internal/pricing"
)

type userSeed struct {
	ID               string
	Email            string
	Name             string
	FreeMessagesUsed int
}

var userSeeds = []userSeed{
	{"123e4567-e89b-42d3-a456-426614174000", "john.doe@example.com", "John Doe", 0},
	{"123e4567-e89b-42d3-a456-426614174001", "jane.smith@example.com", "Jane Smith", 2},
	{"123e4567-e89b-42d3-a456-426614174002", "bob.wilson@example.com", "Bob Wilson", 3},
	{"123e4567-e89b-42d3-a456-426614174003", "alice.johnson@example.com", "Alice Johnson", 1},
	{"123e4567-e89b-42d3-a456-426614174004", "charlie.brown@example.com", "Charlie Brown", 0},
}

// SeedDemoData loads a small demo dataset: users with varied free
// quota usage and subscriptions across tiers and statuses. Existing
// rows are left alone, so seeding is safe to run at every startup.
func SeedDemoData(db *gorm.DB) error {
	now := time.Now()

	users := make([]models.User, 0, len(userSeeds))
	for _, seed := range userSeeds {
		var existing models.User
		err := db.First(&existing, "email = ?", seed.Email).Error
		if err == nil {
			users = append(users, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		user := models.User{
			BaseModel:          models.BaseModel{ID: seed.ID},
			Email:              seed.Email,
			Name:               seed.Name,
			FreeMessagesUsed:   seed.FreeMessagesUsed,
			LastFreeQuotaReset: now,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		users = append(users, user)
	}

	subscriptionSeeds := []models.Subscription{
		// Bob exhausted his free quota and runs on BASIC with most of
		// the period already used.
		demoSubscription(users[2].ID, models.TierBasic, models.CycleMonthly,
			models.SubscriptionStatusActive, 8, now.AddDate(0, 0, -10), true),
		// Alice holds an active PRO with plenty left.
		demoSubscription(users[3].ID, models.TierPro, models.CycleMonthly,
			models.SubscriptionStatusActive, 12, now.AddDate(0, 0, -5), true),
		// Charlie is on a yearly ENTERPRISE plan.
		demoSubscription(users[4].ID, models.TierEnterprise, models.CycleYearly,
			models.SubscriptionStatusActive, 0, now.AddDate(0, -2, 0), true),
		// Jane cancelled a BASIC plan last month.
		demoSubscription(users[1].ID, models.TierBasic, models.CycleMonthly,
			models.SubscriptionStatusCancelled, 10, now.AddDate(0, -1, -3), false),
	}

	for i := range subscriptionSeeds {
		sub := &subscriptionSeeds[i]
		var count int64
		db.Model(&models.Subscription{}).
			Where("user_id = ? AND tier = ? AND status = ?", sub.UserID, sub.Tier, sub.Status).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(sub).Error; err != nil {
			return err
		}
	}

	messageSeeds := []models.ChatMessage{
		{
			UserID:     users[1].ID,
			Question:   "What is the capital of France?",
			Answer:     "That's a great question! Based on my knowledge, here's what I can tell you...",
			TokensUsed: 87,
			CreatedAt:  now.AddDate(0, 0, -2),
		},
		{
			UserID:     users[1].ID,
			Question:   "How does photosynthesis work?",
			Answer:     "I understand your question. Let me provide you with a comprehensive answer...",
			TokensUsed: 112,
			CreatedAt:  now.AddDate(0, 0, -1),
		},
		{
			UserID:     users[2].ID,
			Question:   "Explain quantum computing in simple terms.",
			Answer:     "That's an interesting topic. Allow me to explain...",
			TokensUsed: 134,
			CreatedAt:  now.AddDate(0, 0, -3),
		},
	}

	var messageCount int64
	if err := db.Model(&models.ChatMessage{}).Count(&messageCount).Error; err != nil {
		return err
	}
	if messageCount == 0 {
		for i := range messageSeeds {
			if err := db.Create(&messageSeeds[i]).Error; err != nil {
				return err
			}
		}
	}

	logger.Info("demo data seeded", "users", len(users), "subscriptions", len(subscriptionSeeds))
	return nil
}

func demoSubscription(
	userID string,
	tier models.SubscriptionTier,
	cycle models.BillingCycle,
	status models.SubscriptionStatus,
	messagesUsed int,
	startDate time.Time,
	autoRenew bool,
) models.Subscription {
	limit := pricing.MaxMessages(tier)
	var maxMessages *int
	if !limit.Unlimited {
		n := limit.Count
		maxMessages = &n
	}

	endDate := models.AddCycle(startDate, cycle)

	return models.Subscription{
		UserID:       userID,
		Tier:         tier,
		BillingCycle: cycle,
		MaxMessages:  maxMessages,
		MessagesUsed: messagesUsed,
		Price:        pricing.Price(tier, cycle),
		StartDate:    startDate,
		EndDate:      endDate,
		RenewalDate:  endDate,
		AutoRenew:    autoRenew,
		Status:       status,
	}
}
