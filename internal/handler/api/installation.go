package api

import (
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

type InstallationHandler struct {
	cmds commands.InstallationCommands
	q    queries.InstallationQueries
}

func NewInstallationHandler(cmds commands.InstallationCommands, q queries.InstallationQueries) *InstallationHandler {
	return &InstallationHandler{cmds: cmds, q: q}
}

// @Summary List installations
// @Description List the authenticated user's installation appointments
// @Tags installations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InstallationResponse
// @Failure 401 {object} httperr.Response
// @Router /installations [get]
func (h *InstallationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load installations", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInstallationList(items))
}

// @Summary Schedule installation
// @Description Book an installation appointment and its day-before reminder
// @Tags installations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleInstallationRequest true "Schedule installation request"
// @Success 201 {object} resdto.ScheduleInstallationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /installations [post]
func (h *InstallationHandler) Schedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.ScheduleInstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Schedule(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Schedule installation failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.ScheduleInstallationResponse{
		InstallationID: result.InstallationID.String(),
	})
}
