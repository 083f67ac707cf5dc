package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/service"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// ClassHandler exposes class and subgroup endpoints.
type ClassHandler struct {
	service *service.ClassService
}

// NewClassHandler constructs a class handler.
func NewClassHandler(svc *service.ClassService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List godoc
// @Summary List classes of a school
// @Tags Classes
// @Produce json
// @Param school_id query int true "School ID"
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	schoolID, err := queryID(c, "school_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	classes, err := h.service.List(c.Request.Context(), schoolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes)
}

// Get godoc
// @Summary Get class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	class, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, class)
}

// Create godoc
// @Summary Create class
// @Tags Classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateClassRequest true "Class payload"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid payload"))
		return
	}
	class, created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedOrExisting(c, class, created)
}

// Delete godoc
// @Summary Delete class
// @Tags Classes
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 204
// @Router /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
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

// ListSubgroups godoc
// @Summary List subgroups of a class
// @Tags Subgroups
// @Produce json
// @Param class_id query int true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /subgroups [get]
func (h *ClassHandler) ListSubgroups(c *gin.Context) {
	classID, err := queryID(c, "class_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	subgroups, err := h.service.ListSubgroups(c.Request.Context(), classID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subgroups)
}

// GetSubgroup godoc
// @Summary Get subgroup
// @Tags Subgroups
// @Produce json
// @Param id path int true "Subgroup ID"
// @Success 200 {object} response.Envelope
// @Router /subgroups/{id} [get]
func (h *ClassHandler) GetSubgroup(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	subgroup, err := h.service.GetSubgroup(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subgroup)
}

// CreateSubgroup godoc
// @Summary Create subgroup
// @Tags Subgroups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateSubgroupRequest true "Subgroup payload"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope
// @Router /subgroups [post]
func (h *ClassHandler) CreateSubgroup(c *gin.Context) {
	var req service.CreateSubgroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid payload"))
		return
	}
	subgroup, created, err := h.service.CreateSubgroup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedOrExisting(c, subgroup, created)
}

// DeleteSubgroup godoc
// @Summary Delete subgroup
// @Tags Subgroups
// @Security BearerAuth
// @Param id path int true "Subgroup ID"
// @Success 204
// @Router /subgroups/{id} [delete]
func (h *ClassHandler) DeleteSubgroup(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.DeleteSubgroup(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
