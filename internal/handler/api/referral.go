package api

import (
	"errors"
	"net/http"

	"aquaflow/internal/domain/referral"
	reqdto "aquaflow/internal/handler/dto/request"
	resdto "aquaflow/internal/handler/dto/response"
	"aquaflow/internal/handler/httperr"
	"aquaflow/internal/handler/middleware"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	cmds commands.ReferralCommands
	q    queries.ReferralQueries
}

func NewReferralHandler(cmds commands.ReferralCommands, q queries.ReferralQueries) *ReferralHandler {
	return &ReferralHandler{cmds: cmds, q: q}
}

// @Summary Get referral summary
// @Description Get the authenticated user's referral code, referrals and rewards
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReferralSummaryResponse
// @Failure 401 {object} httperr.Response
// @Router /referrals [get]
func (h *ReferralHandler) GetSummary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	summary, err := h.q.GetSummary(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load referrals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReferralSummary(summary))
}

// @Summary Redeem a referral code
// @Description Redeem another user's referral code and grant them the referral reward
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemReferralRequest true "Redeem referral request"
// @Success 201 {object} resdto.RedeemReferralResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /referrals [post]
func (h *ReferralHandler) Redeem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.RedeemReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RedeemCode(c.Request.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReferralCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invalid referral code", nil)
		case errors.Is(err, referral.ErrSelfReferral):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot use your own referral code", nil)
		case errors.Is(err, commands.ErrAlreadyReferred):
			httperr.AbortWithError(c, http.StatusConflict, err, "Referral code already redeemed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to redeem referral code", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRedeemedReferral(result.Referral, result.Reward))
}

// @Summary List rewards
// @Description List the authenticated user's referral rewards
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RewardResponse
// @Failure 401 {object} httperr.Response
// @Router /rewards [get]
func (h *ReferralHandler) ListRewards(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	rewards, err := h.q.ListRewards(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load rewards", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardViews(rewards))
}
