package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"askmind_backend/internal/dto"
	"askmind_backend/internal/models"
	"askmind_backend/internal/services"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	subscriptions := r.Group("/subscriptions")
	{
		subscriptions.POST("", h.Create)
		subscriptions.GET("/user/:userId", h.GetUserSubscriptions)
		subscriptions.PATCH("/:id/cancel", h.Cancel)
	}
}

// Create godoc
// @Summary      Purchase a subscription
// @Description  Creates an ACTIVE subscription priced from the catalog for the chosen tier and billing cycle.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateSubscriptionRequest  true  "Subscription request"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	autoRenew := true
	if req.AutoRenew != nil {
		autoRenew = *req.AutoRenew
	}

	subscription, err := h.subscriptionService.CreateSubscription(
		req.UserID,
		models.SubscriptionTier(req.Tier),
		models.BillingCycle(req.BillingCycle),
		autoRenew,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    subscription,
	})
}

// GetUserSubscriptions godoc
// @Summary      List a user's subscriptions
// @Tags         subscriptions
// @Produce      json
// @Param        userId  path  string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /subscriptions/user/{userId} [get]
func (h *SubscriptionHandler) GetUserSubscriptions(c *gin.Context) {
	userID := c.Param("userId")

	subscriptions, err := h.subscriptionService.GetUserSubscriptions(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    subscriptions,
	})
}

// Cancel godoc
// @Summary      Cancel a subscription
// @Description  Moves the subscription to its terminal CANCELLED state and turns off auto-renewal.
// @Tags         subscriptions
// @Produce      json
// @Param        id  path  string  true  "Subscription ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /subscriptions/{id}/cancel [patch]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	subscription, err := h.subscriptionService.CancelSubscription(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    subscription,
	})
}
