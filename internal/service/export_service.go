package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/pkg/export"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type lessonLister interface {
	List(ctx context.Context, q LessonQuery) ([]models.LessonDetail, error)
}

type csvRenderer interface {
	Render(table export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(table export.Table) ([]byte, error)
}

// ExportFile is a rendered timetable ready to be sent.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders a scope's weekly timetable.
type ExportService struct {
	lessons lessonLister
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(lessons lessonLister, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter("")
	}
	return &ExportService{lessons: lessons, csv: csv, pdf: pdf, logger: logger}
}

// Timetable renders every lesson of the scope, grouped by weekday.
func (s *ExportService) Timetable(ctx context.Context, scope Scope, format ExportFormat) (*ExportFile, error) {
	if format == "" {
		format = ExportCSV
	}
	if format != ExportCSV && format != ExportPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	lessons, err := s.lessons.List(ctx, LessonQuery{Scope: scope})
	if err != nil {
		return nil, err
	}
	table := timetableTable(scope, lessons)

	var body []byte
	contentType := "text/csv"
	if format == ExportPDF {
		body, err = s.pdf.Render(table)
		contentType = "application/pdf"
	} else {
		body, err = s.csv.Render(table)
	}
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render timetable")
	}

	s.logger.Debug("timetable exported", zap.String("format", string(format)), zap.Int("lessons", len(lessons)))
	return &ExportFile{
		Filename:    fmt.Sprintf("%s.%s", scopeSlug(scope), format),
		ContentType: contentType,
		Body:        body,
	}, nil
}

func timetableTable(scope Scope, lessons []models.LessonDetail) export.Table {
	sorted := make([]models.LessonDetail, len(lessons))
	copy(sorted, lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weekday < sorted[j].Weekday
	})

	table := export.Table{
		Title:   "Timetable " + strings.ReplaceAll(scopeSlug(scope), "-", " "),
		Headers: []string{"weekday", "start", "end", "name", "room", "teacher", "week"},
	}
	for _, lesson := range sorted {
		table.Rows = append(table.Rows, []string{
			weekdayName(lesson.Weekday),
			lesson.StartTime.String(),
			lesson.EndTime.String(),
			lesson.Name,
			lesson.Room,
			lesson.Teacher.Name,
			weekLabel(lesson.IsOddWeek),
		})
	}
	return table
}

func weekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return fmt.Sprintf("%d", weekday)
	}
	return weekdayNames[weekday]
}

func weekLabel(isOdd *bool) string {
	switch {
	case isOdd == nil:
		return "every"
	case *isOdd:
		return "odd"
	default:
		return "even"
	}
}

func scopeSlug(scope Scope) string {
	var parts []string
	if scope.ClassID != nil {
		parts = append(parts, fmt.Sprintf("class-%d", *scope.ClassID))
	}
	if scope.SubgroupID != nil {
		parts = append(parts, fmt.Sprintf("subgroup-%d", *scope.SubgroupID))
	}
	if len(parts) == 0 {
		return "timetable"
	}
	return strings.Join(parts, "-")
}
