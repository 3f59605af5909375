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

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Create payment intent
// @Description Open a card payment for the monthly subscription amount
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	result, err := h.cmds.CreateIntent(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentIntentResponse{ClientSecret: result.ClientSecret})
}

// @Summary Initiate ZainCash payment
// @Description Open a wallet payment and return the redirect URL
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ZainCashInitiateRequest true "Initiate request"
// @Success 200 {object} resdto.ZainCashInitiateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /zaincash/initiate [post]
func (h *PaymentHandler) ZainCashInitiate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.ZainCashInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ZainCashInitiate(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPaymentAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Amount must be a positive number", nil)
		case errors.Is(err, commands.ErrUserNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment initiation failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.ZainCashInitiateResponse{
		TransactionID: result.TransactionID,
		PaymentURL:    result.PaymentURL,
	})
}

// @Summary Verify ZainCash payment
// @Description Verify a wallet transaction and settle it when completed
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} resdto.ZainCashVerifyResponse
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /zaincash/verify/{transactionId} [get]
func (h *PaymentHandler) ZainCashVerify(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	transactionID := c.Param("transactionId")
	result, err := h.cmds.ZainCashVerify(c.Request.Context(), userID, transactionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
		case errors.Is(err, commands.ErrPaymentVerifyRejected):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment was not completed", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment verification failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromZainCashVerify(result))
}

// @Summary ZainCash callback
// @Description Receive the gateway's asynchronous status update
// @Tags payments
// @Accept json
// @Success 200 "OK"
// @Failure 400 {object} httperr.Response
// @Router /zaincash/callback [post]
func (h *PaymentHandler) ZainCashCallback(c *gin.Context) {
	var req reqdto.ZainCashCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid callback payload", nil)
		return
	}
	if err := h.cmds.ZainCashCallback(c.Request.Context(), req.TransactionID, req.Status); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Callback processing failed", nil)
		return
	}
	c.Status(http.StatusOK)
}
