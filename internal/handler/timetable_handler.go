package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/middleware"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
	"github.com/noah-isme/timetable-api/pkg/spreadsheet"
)

const timetableFileField = "lessons_file"

type timetableImporter interface {
	ReadRows(filename string, r io.ReadSeeker) ([]spreadsheet.Row, error)
	Import(ctx context.Context, schoolID int64, rows []spreadsheet.Row) (*models.ImportReport, error)
	ImportHotfixes(ctx context.Context, schoolID int64, rows []spreadsheet.Row) (*models.ImportReport, error)
}

type timetableExporter interface {
	Timetable(ctx context.Context, scope service.Scope, format service.ExportFormat) (*service.ExportFile, error)
}

// TimetableHandler handles bulk timetable uploads and exports.
type TimetableHandler struct {
	importer    timetableImporter
	exporter    timetableExporter
	maxFileSize int64
}

// NewTimetableHandler constructs a timetable handler. maxFileSize <= 0 disables the upload limit.
func NewTimetableHandler(importer timetableImporter, exporter timetableExporter, maxFileSize int64) *TimetableHandler {
	return &TimetableHandler{importer: importer, exporter: exporter, maxFileSize: maxFileSize}
}

// RegisterRoutes mounts export and both imports on group. Imports require teacher access.
func (h *TimetableHandler) RegisterRoutes(group *gin.RouterGroup, audit func(action string) gin.HandlerFunc) {
	teacherOnly := middleware.RequireAccess(models.AccessTeacher)
	group.GET("/export", h.Export)
	group.POST("", teacherOnly, audit("timetable.import"), h.Import)
	group.PATCH("", teacherOnly, audit("timetable.import_hotfixes"), h.ImportHotfixes)
}

// Import godoc
// @Summary Import weekly timetable
// @Description Creates classes, subgroups, teachers and lessons from an xls, xlsx, html, yaml or csv file.
// @Tags Timetable
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param school_id formData int true "School ID"
// @Param lessons_file formData file true "Timetable file"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /timetable [post]
func (h *TimetableHandler) Import(c *gin.Context) {
	schoolID, rows, ok := h.readUpload(c)
	if !ok {
		return
	}
	report, err := h.importer.Import(c.Request.Context(), schoolID, rows)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// ImportHotfixes godoc
// @Summary Import hotfixes
// @Description Each row patches the next occurrence of the lesson starting at its weekday and time.
// @Tags Timetable
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param school_id formData int true "School ID"
// @Param lessons_file formData file true "Hotfix file"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /timetable [patch]
func (h *TimetableHandler) ImportHotfixes(c *gin.Context) {
	schoolID, rows, ok := h.readUpload(c)
	if !ok {
		return
	}
	report, err := h.importer.ImportHotfixes(c.Request.Context(), schoolID, rows)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

func (h *TimetableHandler) readUpload(c *gin.Context) (int64, []spreadsheet.Row, bool) {
	schoolID, err := strconv.ParseInt(c.PostForm("school_id"), 10, 64)
	if err != nil || schoolID <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "school_id is required"))
		return 0, nil, false
	}

	header, err := c.FormFile(timetableFileField)
	if err != nil {
		response.Error(c, bindError(err, timetableFileField+" is required"))
		return 0, nil, false
	}
	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		response.Error(c, appErrors.ErrPayloadTooLarge)
		return 0, nil, false
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Internal(err, "failed to open upload"))
		return 0, nil, false
	}
	defer file.Close()

	rows, err := h.importer.ReadRows(header.Filename, file)
	if err != nil {
		response.Error(c, err)
		return 0, nil, false
	}
	return schoolID, rows, true
}

// Export godoc
// @Summary Export weekly timetable
// @Tags Timetable
// @Produce text/csv
// @Produce application/pdf
// @Param class_id query int false "Class ID"
// @Param subgroup_id query int false "Subgroup ID"
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /timetable/export [get]
func (h *TimetableHandler) Export(c *gin.Context) {
	var scope service.Scope
	if err := c.ShouldBindQuery(&scope); err != nil {
		response.Error(c, bindError(err, "invalid export query"))
		return
	}
	file, err := h.exporter.Timetable(c.Request.Context(), scope, service.ExportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+file.Filename+"\"")
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
