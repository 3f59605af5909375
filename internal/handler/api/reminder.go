package api

import (
	"errors"
	"net/http"

	"aquaflow/internal/domain/reminder"
	reqdto "aquaflow/internal/handler/dto/request"
	resdto "aquaflow/internal/handler/dto/response"
	"aquaflow/internal/handler/httperr"
	"aquaflow/internal/handler/middleware"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReminderHandler struct {
	cmds  commands.ReminderCommands
	q     queries.ReminderQueries
	clock clock.Clock
}

func NewReminderHandler(cmds commands.ReminderCommands, q queries.ReminderQueries, clk clock.Clock) *ReminderHandler {
	return &ReminderHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary List reminders
// @Description List the authenticated user's reminders, newest scheduled first
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReminderResponse
// @Failure 401 {object} httperr.Response
// @Router /reminders [get]
func (h *ReminderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reminders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReminderList(items))
}

// @Summary Update reminder status
// @Description Advance a reminder along pending, sent, read
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Param request body reqdto.UpdateReminderStatusRequest true "Update status request"
// @Success 200 {object} resdto.ReminderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reminders/{id}/status [patch]
func (h *ReminderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	actorRole, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing role context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateReminderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.MarkStatus(c.Request.Context(), id, actorID, actorRole, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown reminder status", nil)
		case errors.Is(err, reminder.ErrTransitionNotAllowed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Status transition not allowed", nil)
		case errors.Is(err, commands.ErrReminderNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Reminder belongs to another user", nil)
		case errors.Is(err, commands.ErrReminderNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reminder not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update reminder failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReminderEntity(updated))
}

// @Summary List pending due reminders
// @Description List pending reminders whose scheduled date has arrived, for the dispatch poller
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PendingReminderResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/reminders/pending [get]
func (h *ReminderHandler) ListPending(c *gin.Context) {
	items, err := h.q.ListPendingDue(c.Request.Context(), h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pending reminders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPendingReminderList(items))
}
