package api

import (
	"errors"
	"net/http"

	resdto "aquaflow/internal/handler/dto/response"
	"aquaflow/internal/handler/httperr"
	"aquaflow/internal/handler/middleware"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EcoImpactHandler struct {
	cmds commands.EcoImpactCommands
	q    queries.EcoImpactQueries
}

func NewEcoImpactHandler(cmds commands.EcoImpactCommands, q queries.EcoImpactQueries) *EcoImpactHandler {
	return &EcoImpactHandler{cmds: cmds, q: q}
}

// @Summary Get eco impact
// @Description Get the authenticated user's eco-impact snapshot, computing it when absent
// @Tags eco-impact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EcoImpactResponse
// @Failure 401 {object} httperr.Response
// @Router /eco-impact [get]
func (h *EcoImpactHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	view, err := h.q.GetCurrent(c.Request.Context(), userID)
	if err == nil {
		c.JSON(http.StatusOK, resdto.FromEcoImpactView(view))
		return
	}
	if !errors.Is(err, queries.ErrEcoImpactNotFound) {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load eco impact", nil)
		return
	}
	// First read for this user; build the snapshot from the ledger.
	snapshot, err := h.cmds.Recompute(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute eco impact", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEcoImpactSnapshot(snapshot))
}

// @Summary Recalculate eco impact
// @Description Recompute the snapshot from the full consumption history
// @Tags eco-impact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EcoImpactResponse
// @Failure 401 {object} httperr.Response
// @Router /eco-impact/calculate [post]
func (h *EcoImpactHandler) Calculate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	snapshot, err := h.cmds.Recompute(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute eco impact", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEcoImpactSnapshot(snapshot))
}
