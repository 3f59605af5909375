package api

import (
	"errors"
	"net/http"

	reqdto "aquaflow/internal/handler/dto/request"
	resdto "aquaflow/internal/handler/dto/response"
	"aquaflow/internal/handler/httperr"
	"aquaflow/internal/handler/middleware"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	cmds commands.SubscriptionCommands
	q    queries.SubscriptionQueries
}

func NewSubscriptionHandler(cmds commands.SubscriptionCommands, q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds, q: q}
}

// @Summary Get subscription
// @Description Get the authenticated user's subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /subscriptions [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	view, err := h.q.GetByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrSubscriptionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Subscription not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load subscription", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionView(view))
}

// @Summary Create subscription
// @Description Create an active subscription and schedule its service reminders
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSubscriptionRequest true "Create subscription request"
// @Success 201 {object} resdto.CreateSubscriptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrSubscriptionExists) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Subscription already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create subscription failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateSubscriptionResponse{
		SubscriptionID: result.SubscriptionID.String(),
	})
}

// @Summary Start card subscription
// @Description Register the user with the card provider and open a payment intent
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SubscribeResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /subscriptions/subscribe [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	result, err := h.cmds.Subscribe(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, commands.ErrUserNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Subscription setup failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SubscribeResponse{
		SubscriptionID: result.SubscriptionRef,
		ClientSecret:   result.ClientSecret,
	})
}
