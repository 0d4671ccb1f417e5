package repositories

import (
	"time"

	"gorm.io/gorm"

	"askmind_backend/internal/models"
)

// PaginatedMessages is one page of a user's chat history, newest first.
type PaginatedMessages struct {
	Data       []models.ChatMessage `json:"data"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}

type ChatMessageRepository interface {
	Create(message *models.ChatMessage) error
	FindByUserID(userID string, page, limit int) (*PaginatedMessages, error)
	// MonthlyUsageCount counts a user's messages within the calendar
	// month containing the given instant.
	MonthlyUsageCount(userID string, month time.Time) (int64, error)
}

type ChatMessageRepositoryImpl struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &ChatMessageRepositoryImpl{db: db}
}

func (r *ChatMessageRepositoryImpl) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *ChatMessageRepositoryImpl) FindByUserID(userID string, page, limit int) (*PaginatedMessages, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := r.db.Model(&models.ChatMessage{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var messages []models.ChatMessage
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &PaginatedMessages{
		Data:       messages,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (r *ChatMessageRepositoryImpl) MonthlyUsageCount(userID string, month time.Time) (int64, error) {
	start := models.MonthStart(month)
	end := start.AddDate(0, 1, 0)

	var count int64
	err := r.db.Model(&models.ChatMessage{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Count(&count).Error
	return count, err
}
