package dto

import (
	"github.com/google/uuid"

	userDTO "github.com/sam002696/tuition-management-backend/internals/features/users/user/dto"
)

// Display-only schedule statuses derived from scheduled_at vs now plus
// the stored event status. Never persisted.
const (
	LabelLive         = "live"
	LabelCompleted    = "completed"
	LabelOverdue      = "overdue"
	LabelStartingSoon = "starting_soon"
	LabelUpcoming     = "upcoming"
)

type Meta struct {
	Date     string `json:"date"`
	NowISO   string `json:"now_iso"`
	Timezone string `json:"timezone"`
}

type NextClass struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	StartsAtISO     string    `json:"starts_at_iso"`
	StartsInMinutes int       `json:"starts_in_minutes"`
}

type Overview struct {
	SessionsToday   int        `json:"sessions_today"`
	StudentsToday   int        `json:"students_today"`
	AttendanceRate  *float64   `json:"attendance_rate"`
	PendingRequests int64      `json:"pending_requests"`
	NextClass       *NextClass `json:"next_class"`
}

type Stats struct {
	StudentsTotal    int64 `json:"students_total"`
	NewStudentsToday int64 `json:"new_students_today"`
	ClassesTotal     int64 `json:"classes_total"`
	ClassesToday     int   `json:"classes_today"`
}

type ScheduleItem struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title"`
	Student       *userDTO.UserSummary `json:"student"`
	StartsAtISO   string               `json:"starts_at_iso"`
	StartsAtHuman string               `json:"starts_at_human"`
	DurationMin   int                  `json:"duration_min"`
	Status        string               `json:"status"`
	JoinNow       bool                 `json:"join_now"`
}

type DashboardResponse struct {
	Meta          Meta           `json:"meta"`
	Overview      Overview       `json:"overview"`
	Stats         Stats          `json:"stats"`
	ScheduleToday []ScheduleItem `json:"schedule_today"`
}
