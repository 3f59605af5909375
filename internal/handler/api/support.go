package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"aquaflow/internal/domain/support"
	reqdto "aquaflow/internal/handler/dto/request"
	resdto "aquaflow/internal/handler/dto/response"
	"aquaflow/internal/handler/httperr"
	"aquaflow/internal/handler/middleware"
	"aquaflow/internal/pkg/config"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

type SupportHandler struct {
	cmds      commands.SupportCommands
	q         queries.SupportTicketQueries
	uploadCfg config.UploadConfig
}

func NewSupportHandler(cmds commands.SupportCommands, q queries.SupportTicketQueries, cfg config.Config) *SupportHandler {
	return &SupportHandler{cmds: cmds, q: q, uploadCfg: cfg.Upload}
}

// @Summary List support tickets
// @Description List the authenticated user's support tickets
// @Tags support
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TicketResponse
// @Failure 401 {object} httperr.Response
// @Router /support-tickets [get]
func (h *SupportHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tickets", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketList(items))
}

// @Summary Create support ticket
// @Description Open a support ticket with an optional image attachment
// @Tags support
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Ticket title"
// @Param description formData string true "Ticket description"
// @Param image formData file false "Image attachment (jpeg, png, gif)"
// @Success 201 {object} resdto.CreateTicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /support-tickets [post]
func (h *SupportHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	var imageURL *string
	if file, err := c.FormFile("image"); err == nil {
		url, saveErr := h.saveImage(c, file)
		if saveErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, saveErr, "Invalid image upload", nil)
			return
		}
		imageURL = &url
	}
	result, err := h.cmds.CreateTicket(c.Request.Context(), userID, commands.CreateTicketRequest{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, support.ErrEmptyTitle), errors.Is(err, support.ErrEmptyDescription):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create ticket failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateTicketResponse{TicketID: result.TicketID.String()})
}

// saveImage persists the upload under a generated name and returns the
// public path served by the uploads route.
func (h *SupportHandler) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", errs.New("unsupported image type")
	}
	if file.Size > h.uploadCfg.MaxSizeByte {
		return "", errs.New("image exceeds the size limit")
	}
	name := uuid.NewString() + ext
	dst := filepath.Join(h.uploadCfg.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", errs.Wrap(err, "failed to store image")
	}
	return "/uploads/" + name, nil
}
