package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

type lessonService interface {
	List(ctx context.Context, q service.LessonQuery) ([]models.LessonDetail, error)
	Nearest(ctx context.Context, q service.DayQuery) (*models.DayLessons, error)
	Today(ctx context.Context, q service.DayQuery) (*models.DayLessons, error)
	OnWeekday(ctx context.Context, q service.DayQuery, weekday int) (*models.DayLessons, error)
	Get(ctx context.Context, id int64) (*models.LessonDetail, error)
	Create(ctx context.Context, req service.CreateLessonRequest) (*models.Lesson, bool, error)
	AddSubgroup(ctx context.Context, req service.LinkSubgroupRequest) (*models.LessonSubgroup, bool, error)
	Delete(ctx context.Context, id int64) error
}

// LessonHandler exposes lesson queries and lesson management.
type LessonHandler struct {
	service lessonService
}

// NewLessonHandler constructs a lesson handler.
func NewLessonHandler(svc lessonService) *LessonHandler {
	return &LessonHandler{service: svc}
}

// List godoc
// @Summary List lessons of a class or subgroup
// @Tags Lessons
// @Produce json
// @Param class_id query int false "Class ID"
// @Param subgroup_id query int false "Subgroup ID"
// @Param teacher_id query int false "Teacher ID"
// @Param weekday query int false "Weekday, 0 = Monday"
// @Param is_odd_week query bool false "Week parity"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lessons [get]
func (h *LessonHandler) List(c *gin.Context) {
	var q service.LessonQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err, "invalid lesson query"))
		return
	}
	lessons, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lessons, map[string]interface{}{"count": len(lessons)})
}

// Nearest godoc
// @Summary Nearest day with lessons
// @Description Searches today and the following six days; today counts until its last lesson ends.
// @Tags Lessons
// @Produce json
// @Param class_id query int false "Class ID"
// @Param subgroup_id query int false "Subgroup ID"
// @Param teacher_id query int false "Teacher ID"
// @Param double query bool false "Merge double lessons"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lessons/nearest [get]
func (h *LessonHandler) Nearest(c *gin.Context) {
	q, ok := bindDayQuery(c)
	if !ok {
		return
	}
	day, err := h.service.Nearest(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, day)
}

// Today godoc
// @Summary Lessons of today
// @Tags Lessons
// @Produce json
// @Param class_id query int false "Class ID"
// @Param subgroup_id query int false "Subgroup ID"
// @Param double query bool false "Merge double lessons"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lessons/today [get]
func (h *LessonHandler) Today(c *gin.Context) {
	q, ok := bindDayQuery(c)
	if !ok {
		return
	}
	day, err := h.service.Today(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, day)
}

// Weekday godoc
// @Summary Lessons of the next occurrence of a weekday
// @Tags Lessons
// @Produce json
// @Param weekday query int true "Weekday, 0 = Monday"
// @Param class_id query int false "Class ID"
// @Param subgroup_id query int false "Subgroup ID"
// @Param double query bool false "Merge double lessons"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lessons/weekday [get]
func (h *LessonHandler) Weekday(c *gin.Context) {
	weekday, err := strconv.Atoi(c.Query("weekday"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "weekday is required"))
		return
	}
	q, ok := bindDayQuery(c)
	if !ok {
		return
	}
	day, err := h.service.OnWeekday(c.Request.Context(), q, weekday)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, day)
}

func bindDayQuery(c *gin.Context) (service.DayQuery, bool) {
	var q service.DayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err, "invalid lesson query"))
		return q, false
	}
	return q, true
}

// Get godoc
// @Summary Get lesson
// @Tags Lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	lesson, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson)
}

// Create godoc
// @Summary Create lesson
// @Description Returns 200 with the stored lesson when an identical one already exists.
// @Tags Lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateLessonRequest true "Lesson payload"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope
// @Router /lessons [post]
func (h *LessonHandler) Create(c *gin.Context) {
	var req service.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid lesson payload"))
		return
	}
	lesson, created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedOrExisting(c, lesson, created)
}

// AddSubgroup godoc
// @Summary Link lesson to subgroup
// @Tags Lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.LinkSubgroupRequest true "Link payload"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope
// @Router /lessons/subgroups [post]
func (h *LessonHandler) AddSubgroup(c *gin.Context) {
	var req service.LinkSubgroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid lesson subgroup payload"))
		return
	}
	link, created, err := h.service.AddSubgroup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedOrExisting(c, link, created)
}

// Delete godoc
// @Summary Delete lesson
// @Tags Lessons
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Success 204
// @Router /lessons/{id} [delete]
func (h *LessonHandler) Delete(c *gin.Context) {
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
