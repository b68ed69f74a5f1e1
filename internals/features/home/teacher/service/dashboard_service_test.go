package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	detailsModel "github.com/sam002696/tuition-management-backend/internals/features/tuition/details/model"
	eventModel "github.com/sam002696/tuition-management-backend/internals/features/tuition/events/model"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestDurationFor(t *testing.T) {
	t.Run("monthly based uses hours per day", func(t *testing.T) {
		td := &detailsModel.TuitionDetailsModel{
			TuitionType: detailsModel.TypeMonthlyBased,
			HoursPerDay: intPtr(2),
		}
		assert.Equal(t, 120, DurationFor(td))
	})

	t.Run("course based uses hours per class", func(t *testing.T) {
		td := &detailsModel.TuitionDetailsModel{
			TuitionType:   detailsModel.TypeCourse,
			HoursPerClass: floatPtr(1.5),
		}
		assert.Equal(t, 90, DurationFor(td))
	})

	t.Run("short sessions are floored at 30 minutes", func(t *testing.T) {
		td := &detailsModel.TuitionDetailsModel{
			TuitionType:   detailsModel.TypeCourse,
			HoursPerClass: floatPtr(0.25),
		}
		assert.Equal(t, 30, DurationFor(td))
	})

	t.Run("defaults to 60 without a record or hours", func(t *testing.T) {
		assert.Equal(t, 60, DurationFor(nil))
		assert.Equal(t, 60, DurationFor(&detailsModel.TuitionDetailsModel{
			TuitionType: detailsModel.TypeMonthlyBased,
		}))
	})

	t.Run("an explicit zero clamps to the floor rather than defaulting", func(t *testing.T) {
		assert.Equal(t, 30, DurationFor(&detailsModel.TuitionDetailsModel{
			TuitionType: detailsModel.TypeMonthlyBased,
			HoursPerDay: intPtr(0),
		}))
		assert.Equal(t, 30, DurationFor(&detailsModel.TuitionDetailsModel{
			TuitionType:   detailsModel.TypeCourse,
			HoursPerClass: floatPtr(0),
		}))
	})
}

func TestStatusLabel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stored lifecycle statuses win over the clock", func(t *testing.T) {
		past := now.Add(-2 * time.Hour)
		assert.Equal(t, "live", StatusLabel(eventModel.StatusStarted, past, now))
		assert.Equal(t, "completed", StatusLabel(eventModel.StatusCompleted, past, now))
	})

	t.Run("overdue once five minutes past start", func(t *testing.T) {
		assert.Equal(t, "overdue", StatusLabel(eventModel.StatusAccepted, now.Add(-5*time.Minute), now))
		assert.Equal(t, "upcoming", StatusLabel(eventModel.StatusAccepted, now.Add(-4*time.Minute), now))
	})

	t.Run("starting soon inside the half hour window", func(t *testing.T) {
		assert.Equal(t, "starting_soon", StatusLabel(eventModel.StatusAccepted, now.Add(30*time.Minute), now))
		assert.Equal(t, "starting_soon", StatusLabel(eventModel.StatusAccepted, now.Add(1*time.Minute), now))
		assert.Equal(t, "upcoming", StatusLabel(eventModel.StatusAccepted, now.Add(31*time.Minute), now))
	})
}

func TestCanJoinNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, CanJoinNow(eventModel.StatusStarted, now.Add(-3*time.Hour), now))
	assert.True(t, CanJoinNow(eventModel.StatusAccepted, now, now))
	assert.True(t, CanJoinNow(eventModel.StatusAccepted, now.Add(15*time.Minute), now))
	assert.False(t, CanJoinNow(eventModel.StatusAccepted, now.Add(16*time.Minute), now))
	assert.False(t, CanJoinNow(eventModel.StatusAccepted, now.Add(-1*time.Minute), now))
}

func TestAttendanceRate(t *testing.T) {
	t.Run("nil when nothing has reached its scheduled time", func(t *testing.T) {
		assert.Nil(t, AttendanceRate(0, 0))
	})

	t.Run("percentage rounded to one decimal", func(t *testing.T) {
		rate := AttendanceRate(2, 3)
		require.NotNil(t, rate)
		assert.Equal(t, 66.7, *rate)
	})
}

func TestBuildDashboard(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)
	dayStart := time.Date(2025, 6, 1, 0, 0, 0, 0, loc)

	studentA := uuid.New()
	studentB := uuid.New()

	events := []eventModel.TuitionEventModel{
		{
			ID:          uuid.New(),
			StudentID:   studentA,
			Title:       "Physics",
			ScheduledAt: now.Add(-3 * time.Hour),
			Status:      eventModel.StatusCompleted,
		},
		{
			ID:          uuid.New(),
			StudentID:   studentA,
			Title:       "Math",
			ScheduledAt: now.Add(-10 * time.Minute),
			Status:      eventModel.StatusAccepted,
		},
		{
			ID:          uuid.New(),
			StudentID:   studentB,
			Title:       "Chemistry",
			ScheduledAt: now.Add(45 * time.Minute),
			Status:      eventModel.StatusAccepted,
		},
	}
	details := map[uuid.UUID]*detailsModel.TuitionDetailsModel{
		studentA: {TuitionType: detailsModel.TypeMonthlyBased, HoursPerDay: intPtr(2)},
	}

	resp := BuildDashboard(now, dayStart, events, details)

	assert.Equal(t, "2025-06-01", resp.Meta.Date)
	assert.Equal(t, 3, resp.Overview.SessionsToday)
	assert.Equal(t, 2, resp.Overview.StudentsToday)
	assert.Equal(t, 3, resp.Stats.ClassesToday)

	// Two sessions reached their start time, one of them was held.
	require.NotNil(t, resp.Overview.AttendanceRate)
	assert.Equal(t, 50.0, *resp.Overview.AttendanceRate)

	require.NotNil(t, resp.Overview.NextClass)
	assert.Equal(t, "Chemistry", resp.Overview.NextClass.Title)
	assert.Equal(t, 45, resp.Overview.NextClass.StartsInMinutes)

	require.Len(t, resp.ScheduleToday, 3)
	assert.Equal(t, 120, resp.ScheduleToday[0].DurationMin)
	assert.Equal(t, 60, resp.ScheduleToday[2].DurationMin)
	assert.Equal(t, "completed", resp.ScheduleToday[0].Status)
	assert.Equal(t, "overdue", resp.ScheduleToday[1].Status)
	assert.Equal(t, "upcoming", resp.ScheduleToday[2].Status)
	assert.False(t, resp.ScheduleToday[1].JoinNow)
}
