package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/pkg/clock"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/spreadsheet"
)

const defaultSubgroupName = "1"

type importClasses interface {
	Create(ctx context.Context, req CreateClassRequest) (*models.Class, bool, error)
	FindByKey(ctx context.Context, schoolID int64, number int, letter string) (*models.Class, error)
	CreateSubgroup(ctx context.Context, req CreateSubgroupRequest) (*models.Subgroup, bool, error)
	FindSubgroup(ctx context.Context, classID int64, name string) (*models.Subgroup, error)
}

type importTeachers interface {
	Ensure(ctx context.Context, name string) (*models.Teacher, bool, error)
}

type importLessons interface {
	List(ctx context.Context, q LessonQuery) ([]models.LessonDetail, error)
	Create(ctx context.Context, req CreateLessonRequest) (*models.Lesson, bool, error)
	AddSubgroup(ctx context.Context, req LinkSubgroupRequest) (*models.LessonSubgroup, bool, error)
}

type importHotfixes interface {
	Create(ctx context.Context, req CreateHotfixRequest) (*models.LessonHotfix, error)
}

type importMetrics interface {
	AddImportedRows(mode, result string, n int)
}

// TimetableConfig tunes the importer.
type TimetableConfig struct {
	XLSCharset string
}

// TimetableService bulk-loads lessons and hotfixes from uploaded timetables.
type TimetableService struct {
	classes  importClasses
	teachers importTeachers
	lessons  importLessons
	hotfixes importHotfixes
	metrics  importMetrics
	clock    clock.Clock
	cfg      TimetableConfig
	logger   *zap.Logger
}

// NewTimetableService constructs a TimetableService.
func NewTimetableService(classes importClasses, teachers importTeachers, lessons importLessons, hotfixes importHotfixes, metrics importMetrics, clk clock.Clock, cfg TimetableConfig, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.NewSystem(nil)
	}
	return &TimetableService{classes: classes, teachers: teachers, lessons: lessons, hotfixes: hotfixes, metrics: metrics, clock: clk, cfg: cfg, logger: logger}
}

// ReadRows decodes an uploaded file; the format follows the file extension.
func (s *TimetableService) ReadRows(filename string, r io.ReadSeeker) ([]spreadsheet.Row, error) {
	format, err := spreadsheet.FormatFromFilename(filename)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unsupported timetable file")
	}
	rows, err := spreadsheet.Read(format, r, spreadsheet.Options{XLSCharset: s.cfg.XLSCharset})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnprocessable.Code, appErrors.ErrUnprocessable.Status, "failed to read timetable file")
	}
	return rows, nil
}

// lessonRow is an uploaded row with its cells parsed.
type lessonRow struct {
	ClassNumber int
	ClassLetter string
	Subgroup    string
	Weekday     int
	Start       models.TimeOfDay
	End         models.TimeOfDay
	Name        string
	Room        string
	Teacher     string
	IsOddWeek   *bool
}

// Import creates the classes, subgroups, teachers and lessons named by rows.
// Rows are processed independently; rejected rows are reported and skipped.
func (s *TimetableService) Import(ctx context.Context, schoolID int64, rows []spreadsheet.Row) (*models.ImportReport, error) {
	report := &models.ImportReport{Rows: len(rows)}
	for _, raw := range rows {
		created, err := s.importLesson(ctx, schoolID, raw)
		if err != nil {
			if fatal(err) {
				return nil, err
			}
			report.Failed++
			report.Errors = append(report.Errors, models.ImportRowError{Line: raw.Line, Message: rowMessage(err)})
			continue
		}
		if created {
			report.Created++
		} else {
			report.Existing++
		}
	}
	s.record("lessons", report)
	s.logger.Info("timetable imported",
		zap.Int64("school_id", schoolID),
		zap.Int("rows", report.Rows),
		zap.Int("created", report.Created),
		zap.Int("existing", report.Existing),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *TimetableService) importLesson(ctx context.Context, schoolID int64, raw spreadsheet.Row) (bool, error) {
	row, err := parseRow(raw)
	if err != nil {
		return false, err
	}
	class, _, err := s.classes.Create(ctx, CreateClassRequest{SchoolID: schoolID, Number: row.ClassNumber, Letter: row.ClassLetter})
	if err != nil {
		return false, err
	}
	subgroup, _, err := s.classes.CreateSubgroup(ctx, CreateSubgroupRequest{ClassID: class.ID, Name: row.Subgroup})
	if err != nil {
		return false, err
	}
	teacher, _, err := s.teachers.Ensure(ctx, row.Teacher)
	if err != nil {
		return false, err
	}
	lesson, created, err := s.lessons.Create(ctx, CreateLessonRequest{
		SchoolID:  schoolID,
		Name:      row.Name,
		StartTime: row.Start,
		EndTime:   row.End,
		Weekday:   row.Weekday,
		IsOddWeek: row.IsOddWeek,
		Room:      row.Room,
		TeacherID: teacher.ID,
	})
	if err != nil {
		return false, err
	}
	if _, _, err := s.lessons.AddSubgroup(ctx, LinkSubgroupRequest{LessonID: lesson.ID, SubgroupID: subgroup.ID}); err != nil {
		return false, err
	}
	return created, nil
}

// ImportHotfixes turns every row into a hotfix for the next occurrence of its
// weekday, today included. The row overrides the subgroup's lesson starting at
// the same time.
func (s *TimetableService) ImportHotfixes(ctx context.Context, schoolID int64, rows []spreadsheet.Row) (*models.ImportReport, error) {
	report := &models.ImportReport{Rows: len(rows)}
	today := models.DateOf(s.clock.Now())
	for _, raw := range rows {
		if err := s.importHotfix(ctx, schoolID, today, raw); err != nil {
			if fatal(err) {
				return nil, err
			}
			report.Failed++
			report.Errors = append(report.Errors, models.ImportRowError{Line: raw.Line, Message: rowMessage(err)})
			continue
		}
		report.Created++
	}
	s.record("hotfixes", report)
	s.logger.Info("timetable hotfixes imported",
		zap.Int64("school_id", schoolID),
		zap.Int("rows", report.Rows),
		zap.Int("created", report.Created),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *TimetableService) importHotfix(ctx context.Context, schoolID int64, today models.Date, raw spreadsheet.Row) error {
	row, err := parseRow(raw)
	if err != nil {
		return err
	}
	class, err := s.classes.FindByKey(ctx, schoolID, row.ClassNumber, row.ClassLetter)
	if err != nil {
		return err
	}
	subgroup, err := s.classes.FindSubgroup(ctx, class.ID, row.Subgroup)
	if err != nil {
		return err
	}
	weekday := row.Weekday
	lessons, err := s.lessons.List(ctx, LessonQuery{Scope: Scope{SubgroupID: &subgroup.ID}, Weekday: &weekday})
	if err != nil {
		return err
	}
	var target *models.LessonDetail
	for i := range lessons {
		if lessons[i].StartTime != row.Start {
			continue
		}
		if row.IsOddWeek != nil && !lessons[i].RunsInWeek(*row.IsOddWeek) {
			continue
		}
		target = &lessons[i]
		break
	}
	if target == nil {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no lesson starts at %s", row.Start))
	}

	teacher, _, err := s.teachers.Ensure(ctx, row.Teacher)
	if err != nil {
		return err
	}
	name, room := row.Name, row.Room
	start, end := row.Start, row.End
	existing := true
	_, err = s.hotfixes.Create(ctx, CreateHotfixRequest{
		LessonID:   &target.ID,
		ForDate:    today.AddDays(positiveMod(row.Weekday-today.Weekday(), 7)),
		IsExisting: &existing,
		Name:       &name,
		StartTime:  &start,
		EndTime:    &end,
		Room:       &room,
		TeacherID:  &teacher.ID,
	})
	return err
}

func (s *TimetableService) record(mode string, report *models.ImportReport) {
	if s.metrics == nil {
		return
	}
	s.metrics.AddImportedRows(mode, "created", report.Created)
	s.metrics.AddImportedRows(mode, "existing", report.Existing)
	s.metrics.AddImportedRows(mode, "failed", report.Failed)
}

// fatal reports whether err should abort the whole import rather than one row.
func fatal(err error) bool {
	return appErrors.FromError(err).Status >= 500
}

func rowMessage(err error) string {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func parseRow(raw spreadsheet.Row) (lessonRow, error) {
	invalid := func(format string, args ...interface{}) error {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf(format, args...))
	}

	number, letter, err := ParseClassName(raw.Class)
	if err != nil {
		return lessonRow{}, invalid("%v", err)
	}
	weekday, err := ParseWeekday(raw.Weekday)
	if err != nil {
		return lessonRow{}, invalid("%v", err)
	}
	start, err := models.ParseTimeOfDay(raw.Start)
	if err != nil {
		return lessonRow{}, invalid("start: %v", err)
	}
	end, err := models.ParseTimeOfDay(raw.End)
	if err != nil {
		return lessonRow{}, invalid("end: %v", err)
	}
	week, err := ParseWeek(raw.Week)
	if err != nil {
		return lessonRow{}, invalid("%v", err)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return lessonRow{}, invalid("lesson name is empty")
	}
	if strings.TrimSpace(raw.Teacher) == "" {
		return lessonRow{}, invalid("teacher is empty")
	}

	subgroup := strings.TrimSpace(raw.Subgroup)
	if subgroup == "" {
		subgroup = defaultSubgroupName
	}
	return lessonRow{
		ClassNumber: number,
		ClassLetter: letter,
		Subgroup:    subgroup,
		Weekday:     weekday,
		Start:       start,
		End:         end,
		Name:        strings.TrimSpace(raw.Name),
		Room:        strings.TrimSpace(raw.Room),
		Teacher:     strings.TrimSpace(raw.Teacher),
		IsOddWeek:   week,
	}, nil
}

// ParseClassName splits "10Б" or "10 б" into its number and upper-cased letter.
func ParseClassName(raw string) (int, string, error) {
	raw = strings.TrimSpace(raw)
	i := 0
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	number, err := strconv.Atoi(raw[:i])
	if err != nil {
		return 0, "", fmt.Errorf("invalid class %q", raw)
	}
	letter := strings.ToUpper(strings.TrimFunc(raw[i:], func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	}))
	if letter == "" {
		return 0, "", fmt.Errorf("class %q has no letter", raw)
	}
	return number, letter, nil
}

var weekdayAliases = map[string]int{
	"monday": 0, "mon": 0, "понедельник": 0, "пн": 0,
	"tuesday": 1, "tue": 1, "вторник": 1, "вт": 1,
	"wednesday": 2, "wed": 2, "среда": 2, "ср": 2,
	"thursday": 3, "thu": 3, "четверг": 3, "чт": 3,
	"friday": 4, "fri": 4, "пятница": 4, "пт": 4,
	"saturday": 5, "sat": 5, "суббота": 5, "сб": 5,
	"sunday": 6, "sun": 6, "воскресенье": 6, "вс": 6,
}

// ParseWeekday accepts 0-6 (Monday first) or an English or Russian day name.
func ParseWeekday(raw string) (int, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday %d out of range", n)
		}
		return n, nil
	}
	if n, ok := weekdayAliases[raw]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("invalid weekday %q", raw)
}

// ParseWeek reads the week column: empty means every week.
func ParseWeek(raw string) (*bool, error) {
	odd, even := true, false
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "every", "all", "*", "-":
		return nil, nil
	case "odd", "1", "true", "нечет", "нечетная", "нечётная":
		return &odd, nil
	case "even", "2", "false", "чет", "четная", "чётная":
		return &even, nil
	default:
		return nil, fmt.Errorf("invalid week %q", raw)
	}
}
