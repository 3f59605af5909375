package api

import (
	"errors"
	"net/http"
	"time"

	"aquaflow/internal/domain/usage"
	reqdto "aquaflow/internal/handler/dto/request"
	resdto "aquaflow/internal/handler/dto/response"
	"aquaflow/internal/handler/httperr"
	"aquaflow/internal/handler/middleware"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	cmds commands.UsageCommands
	q    queries.UsageQueries
}

func NewUsageHandler(cmds commands.UsageCommands, q queries.UsageQueries) *UsageHandler {
	return &UsageHandler{cmds: cmds, q: q}
}

// @Summary List water usage
// @Description List the authenticated user's consumption entries, optionally bounded by date
// @Tags water-usage
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (RFC3339)"
// @Param endDate query string false "Range end (RFC3339)"
// @Success 200 {array} resdto.UsageEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /water-usage [get]
func (h *UsageHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	filters, err := parseUsageFilters(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date filter", nil)
		return
	}
	items, err := h.q.ListByUser(c.Request.Context(), userID, filters)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidUsageRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Range start is after end", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load usage", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsageList(items))
}

// @Summary Record water usage
// @Description Append a consumption entry and refresh the eco-impact snapshot
// @Tags water-usage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordUsageRequest true "Record usage request"
// @Success 201 {object} resdto.RecordUsageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /water-usage [post]
func (h *UsageHandler) Record(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RecordUsage(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, usage.ErrUnparsableLitres):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Litres used is not a number", nil)
		case errors.Is(err, usage.ErrNonPositiveLitres):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Litres used must be positive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Record usage failed", nil)
		}
		return
	}
	resp := resdto.RecordUsageResponse{EntryID: result.EntryID.String()}
	if result.Snapshot != nil {
		resp.EcoImpact = resdto.FromEcoImpactSnapshot(result.Snapshot)
	}
	c.JSON(http.StatusCreated, resp)
}

func parseUsageFilters(c *gin.Context) (queries.UsageFilters, error) {
	var filters queries.UsageFilters
	if s := c.Query("startDate"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return filters, err
		}
		filters.From = &t
	}
	if s := c.Query("endDate"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return filters, err
		}
		filters.To = &t
	}
	return filters, nil
}
