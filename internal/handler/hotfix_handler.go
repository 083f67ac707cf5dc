package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

type hotfixService interface {
	List(ctx context.Context, day models.Date, schoolID int64) ([]models.LessonHotfix, error)
	Get(ctx context.Context, id int64) (*models.LessonHotfix, error)
	Create(ctx context.Context, req service.CreateHotfixRequest) (*models.LessonHotfix, error)
	Delete(ctx context.Context, id int64) error
}

// HotfixHandler exposes one-day lesson overrides.
type HotfixHandler struct {
	service hotfixService
}

// NewHotfixHandler constructs a hotfix handler.
func NewHotfixHandler(svc hotfixService) *HotfixHandler {
	return &HotfixHandler{service: svc}
}

// Create godoc
// @Summary Create hotfix
// @Description Overrides one lesson on for_date. Without lesson_id and with is_existing=false the whole school day is cancelled, which needs teacher access and school_id.
// @Tags Hotfixes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateHotfixRequest true "Hotfix payload"
// @Success 201 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /lessons [patch]
func (h *HotfixHandler) Create(c *gin.Context) {
	var req service.CreateHotfixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid hotfix payload"))
		return
	}
	if req.CancelsDay() && !callerFromContext(c).Allows(models.AccessTeacher) {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "cancelling a whole day requires teacher access"))
		return
	}
	hotfix, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, hotfix)
}

// List godoc
// @Summary List hotfixes of a date
// @Tags Hotfixes
// @Produce json
// @Param for_date query string true "Date, YYYY-MM-DD"
// @Param school_id query int true "School ID"
// @Success 200 {object} response.Envelope
// @Router /lessons/hotfix [get]
func (h *HotfixHandler) List(c *gin.Context) {
	day, err := models.ParseDate(c.Query("for_date"))
	if err != nil {
		response.Error(c, bindError(err, "for_date must be YYYY-MM-DD"))
		return
	}
	schoolID, err := queryID(c, "school_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	hotfixes, err := h.service.List(c.Request.Context(), day, schoolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, hotfixes)
}

// Get godoc
// @Summary Get hotfix
// @Tags Hotfixes
// @Produce json
// @Param id path int true "Hotfix ID"
// @Success 200 {object} response.Envelope
// @Router /lessons/hotfix/{id} [get]
func (h *HotfixHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	hotfix, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, hotfix)
}

// Delete godoc
// @Summary Delete hotfix
// @Tags Hotfixes
// @Security BearerAuth
// @Param id path int true "Hotfix ID"
// @Success 204
// @Router /lessons/hotfix/{id} [delete]
func (h *HotfixHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
