package service

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/configs"
	"github.com/sam002696/tuition-management-backend/internals/constants"
	connModel "github.com/sam002696/tuition-management-backend/internals/features/connections/model"
	"github.com/sam002696/tuition-management-backend/internals/features/home/teacher/dto"
	detailsModel "github.com/sam002696/tuition-management-backend/internals/features/tuition/details/model"
	eventModel "github.com/sam002696/tuition-management-backend/internals/features/tuition/events/model"
	userDTO "github.com/sam002696/tuition-management-backend/internals/features/users/user/dto"
)

const defaultDurationMin = 60

type Caller struct {
	ID   uuid.UUID
	Role string
}

type DashboardService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Now: time.Now}
}

// Dashboard assembles the teacher home payload for one calendar day.
// dateYmd is optional; empty means today in the app timezone.
func (s *DashboardService) Dashboard(caller Caller, dateYmd string) (*dto.DashboardResponse, error) {
	if caller.Role != constants.RoleTeacher {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyTeachersDashboard)
	}

	loc := configs.AppLocation()
	now := s.Now().In(loc)

	day := now
	if dateYmd != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateYmd, loc)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The date does not match the format Y-m-d.")
		}
		day = parsed
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	var events []eventModel.TuitionEventModel
	if err := s.DB.
		Preload("Student").
		Where("teacher_id = ? AND scheduled_at >= ? AND scheduled_at < ?", caller.ID, dayStart, dayEnd).
		Order("scheduled_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	detailsByStudent, err := s.loadDetails(caller.ID, events)
	if err != nil {
		return nil, err
	}

	var studentsTotal int64
	if err := s.DB.Model(&connModel.ConnectionRequestModel{}).
		Where("teacher_id = ? AND status = ? AND is_active = ?", caller.ID, connModel.StatusAccepted, true).
		Distinct("student_id").
		Count(&studentsTotal).Error; err != nil {
		return nil, err
	}

	var newStudentsToday int64
	if err := s.DB.Model(&connModel.ConnectionRequestModel{}).
		Where("teacher_id = ? AND status = ? AND is_active = ?", caller.ID, connModel.StatusAccepted, true).
		Where("updated_at >= ? AND updated_at < ?", dayStart, dayEnd).
		Distinct("student_id").
		Count(&newStudentsToday).Error; err != nil {
		return nil, err
	}

	var classesTotal int64
	if err := s.DB.Model(&detailsModel.TuitionDetailsModel{}).
		Where("teacher_id = ?", caller.ID).
		Count(&classesTotal).Error; err != nil {
		return nil, err
	}

	var pendingRequests int64
	if err := s.DB.Model(&connModel.ConnectionRequestModel{}).
		Where("teacher_id = ? AND status = ?", caller.ID, connModel.StatusPending).
		Count(&pendingRequests).Error; err != nil {
		return nil, err
	}

	resp := BuildDashboard(now, dayStart, events, detailsByStudent)
	resp.Overview.PendingRequests = pendingRequests
	resp.Stats.StudentsTotal = studentsTotal
	resp.Stats.NewStudentsToday = newStudentsToday
	resp.Stats.ClassesTotal = classesTotal
	return resp, nil
}

func (s *DashboardService) loadDetails(teacherID uuid.UUID, events []eventModel.TuitionEventModel) (map[uuid.UUID]*detailsModel.TuitionDetailsModel, error) {
	out := make(map[uuid.UUID]*detailsModel.TuitionDetailsModel)
	if len(events) == 0 {
		return out, nil
	}
	seen := make(map[uuid.UUID]bool, len(events))
	ids := make([]uuid.UUID, 0, len(events))
	for _, ev := range events {
		if !seen[ev.StudentID] {
			seen[ev.StudentID] = true
			ids = append(ids, ev.StudentID)
		}
	}
	var records []detailsModel.TuitionDetailsModel
	if err := s.DB.
		Where("teacher_id = ? AND student_id IN ?", teacherID, ids).
		Find(&records).Error; err != nil {
		return nil, err
	}
	for i := range records {
		out[records[i].StudentID] = &records[i]
	}
	return out, nil
}

// BuildDashboard is the pure assembly step over already-loaded rows, so
// the schedule math is testable without a database.
func BuildDashboard(
	now time.Time,
	dayStart time.Time,
	events []eventModel.TuitionEventModel,
	detailsByStudent map[uuid.UUID]*detailsModel.TuitionDetailsModel,
) *dto.DashboardResponse {
	schedule := make([]dto.ScheduleItem, 0, len(events))
	studentSeen := make(map[uuid.UUID]bool, len(events))

	var next *dto.NextClass
	eligible := 0
	attended := 0

	for _, ev := range events {
		startsAt := ev.ScheduledAt.In(now.Location())
		schedule = append(schedule, dto.ScheduleItem{
			ID:            ev.ID,
			Title:         ev.Title,
			Student:       userDTO.ToUserSummary(ev.Student),
			StartsAtISO:   startsAt.Format(time.RFC3339),
			StartsAtHuman: startsAt.Format("3:04 PM"),
			DurationMin:   DurationFor(detailsByStudent[ev.StudentID]),
			Status:        StatusLabel(ev.Status, startsAt, now),
			JoinNow:       CanJoinNow(ev.Status, startsAt, now),
		})
		studentSeen[ev.StudentID] = true

		if !startsAt.After(now) {
			eligible++
			if ev.Status == eventModel.StatusStarted || ev.Status == eventModel.StatusCompleted {
				attended++
			}
		}
		if startsAt.After(now) && next == nil {
			next = &dto.NextClass{
				ID:              ev.ID,
				Title:           ev.Title,
				StartsAtISO:     startsAt.Format(time.RFC3339),
				StartsInMinutes: minutesBetween(now, startsAt),
			}
		}
	}

	return &dto.DashboardResponse{
		Meta: dto.Meta{
			Date:     dayStart.Format("2006-01-02"),
			NowISO:   now.Format(time.RFC3339),
			Timezone: configs.AppTimezone,
		},
		Overview: dto.Overview{
			SessionsToday:  len(events),
			StudentsToday:  len(studentSeen),
			AttendanceRate: AttendanceRate(attended, eligible),
			NextClass:      next,
		},
		Stats: dto.Stats{
			ClassesToday: len(events),
		},
		ScheduleToday: schedule,
	}
}

// DurationFor derives session length in minutes from the pair's tuition
// details: hours_per_day for monthly, hours_per_class for course, clamped
// to a 30-minute floor. 60 only when no record or no hours are stored.
func DurationFor(td *detailsModel.TuitionDetailsModel) int {
	if td == nil {
		return defaultDurationMin
	}
	var hours *float64
	switch td.TuitionType {
	case detailsModel.TypeMonthlyBased:
		if td.HoursPerDay != nil {
			h := float64(*td.HoursPerDay)
			hours = &h
		}
	case detailsModel.TypeCourse:
		hours = td.HoursPerClass
	}
	if hours == nil {
		return defaultDurationMin
	}
	mins := int(math.Round(*hours * 60))
	if mins < 30 {
		return 30
	}
	return mins
}

// StatusLabel maps a stored status plus clock position to the display
// label shown on the schedule.
func StatusLabel(status string, startsAt, now time.Time) string {
	switch status {
	case eventModel.StatusStarted:
		return dto.LabelLive
	case eventModel.StatusCompleted:
		return dto.LabelCompleted
	}
	diff := minutesBetween(now, startsAt)
	switch {
	case diff <= -5:
		return dto.LabelOverdue
	case diff > 0 && diff <= 30:
		return dto.LabelStartingSoon
	default:
		return dto.LabelUpcoming
	}
}

// CanJoinNow reports whether the join action should be enabled: already
// started, or within the 15-minute window before start.
func CanJoinNow(status string, startsAt, now time.Time) bool {
	if status == eventModel.StatusStarted {
		return true
	}
	diff := minutesBetween(now, startsAt)
	return diff >= 0 && diff <= 15
}

// AttendanceRate is attended/eligible as a percentage rounded to one
// decimal, or nil when no session has reached its scheduled time yet.
func AttendanceRate(attended, eligible int) *float64 {
	if eligible == 0 {
		return nil
	}
	rate := math.Round(float64(attended)/float64(eligible)*1000) / 10
	return &rate
}

// minutesBetween truncates toward zero, matching whole-minute clock math.
func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from).Minutes())
}
