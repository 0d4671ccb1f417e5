package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"askmind_backend/internal/dto"
	"askmind_backend/internal/services"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	chat := r.Group("/chat")
	{
		chat.POST("", h.Chat)
		chat.GET("/history/:userId", h.GetHistory)
		chat.GET("/usage/:userId", h.GetUsage)
	}
}

// Chat godoc
// @Summary      Ask a question
// @Description  Admits the request against the user's free allotment or best subscription, generates an answer, and records the exchange.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ChatRequest  true  "Chat request"
// @Success      200  {object}  map[string]interface{}
// @Failure      402  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.chatService.ProcessChat(c.Request.Context(), req.UserID, req.Question)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    message,
	})
}

// GetHistory godoc
// @Summary      Chat history
// @Description  Returns a user's answered questions, newest first.
// @Tags         chat
// @Produce      json
// @Param        userId  path   string  true   "User ID"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /chat/history/{userId} [get]
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID := c.Param("userId")

	var query dto.HistoryQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	history, err := h.chatService.History(userID, query.Page, query.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    history,
	})
}

// GetUsage godoc
// @Summary      Quota usage
// @Description  Returns the user's free-quota state and current-month message count.
// @Tags         chat
// @Produce      json
// @Param        userId  path  string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /chat/usage/{userId} [get]
func (h *ChatHandler) GetUsage(c *gin.Context) {
	userID := c.Param("userId")

	usage, err := h.chatService.MonthlyUsage(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    usage,
	})
}
