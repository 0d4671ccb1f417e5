package dto

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid4"`
	Question string `json:"question" validate:"required,min=1,max=4000"`
}

// HistoryQuery paginates a user's chat history.
type HistoryQuery struct {
	Page  int `form:"page" validate:"omitempty,min=1"`
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}
