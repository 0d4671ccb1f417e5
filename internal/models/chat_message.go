package models

import "time"

// ChatMessage is one answered question, recorded after the quota debit
// and the generated answer.
type ChatMessage struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	TokensUsed int       `gorm:"not null" json:"tokens_used"`
	CreatedAt  time.Time `gorm:"default:now();index" json:"created_at"`
}
