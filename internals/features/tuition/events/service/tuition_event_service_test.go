package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sam002696/tuition-management-backend/internals/constants"
	notifService "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/service"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/events/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/events/model"
)

func newEventServiceWithMock(t *testing.T, now time.Time) (*TuitionEventService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	svc := NewTuitionEventService(db, notifService.NewNotifier(db, nil))
	svc.Now = func() time.Time { return now }
	return svc, mock
}

func eventStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code, fe.Message
}

func TestCreateEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	teacher := Caller{ID: uuid.New(), Role: constants.RoleTeacher, Name: "Ayesha"}
	studentID := uuid.New()

	t.Run("students cannot schedule", func(t *testing.T) {
		svc, _ := newEventServiceWithMock(t, now)
		_, err := svc.Create(Caller{ID: studentID, Role: constants.RoleStudent}, dto.CreateEventRequest{
			StudentID:   studentID,
			Title:       "Algebra",
			ScheduledAt: now.Add(time.Hour),
		})
		code, msg := eventStatus(t, err)
		assert.Equal(t, fiber.StatusForbidden, code)
		assert.Equal(t, constants.ErrOnlyTeachersCanCreateEvents, msg)
	})

	t.Run("scheduled time must be after now", func(t *testing.T) {
		svc, _ := newEventServiceWithMock(t, now)
		for _, at := range []time.Time{now, now.Add(-time.Minute)} {
			_, err := svc.Create(teacher, dto.CreateEventRequest{
				StudentID:   studentID,
				Title:       "Algebra",
				ScheduledAt: at,
			})
			code, msg := eventStatus(t, err)
			assert.Equal(t, fiber.StatusUnprocessableEntity, code)
			assert.Equal(t, "The scheduled at must be a date after now.", msg)
		}
	})

	t.Run("no accepted connection means no event", func(t *testing.T) {
		svc, mock := newEventServiceWithMock(t, now)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "connection_requests"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := svc.Create(teacher, dto.CreateEventRequest{
			StudentID:   studentID,
			Title:       "Algebra",
			ScheduledAt: now.Add(time.Hour),
		})
		code, msg := eventStatus(t, err)
		assert.Equal(t, fiber.StatusForbidden, code)
		assert.Equal(t, "Student is not connected or request not accepted.", msg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connected pair schedules a pending event", func(t *testing.T) {
		svc, mock := newEventServiceWithMock(t, now)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "connection_requests"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "tuition_events"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()

		event, err := svc.Create(teacher, dto.CreateEventRequest{
			StudentID:   studentID,
			Title:       "Algebra",
			ScheduledAt: now.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, event.Status)
		assert.Equal(t, teacher.ID, event.TeacherID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRespondEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	student := Caller{ID: uuid.New(), Role: constants.RoleStudent, Name: "Rafi"}

	t.Run("an event owned by another student reads as absent", func(t *testing.T) {
		svc, mock := newEventServiceWithMock(t, now)
		mock.ExpectQuery(`SELECT (.+) FROM "tuition_events"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := svc.Respond(student, uuid.New(), model.StatusAccepted)
		code, msg := eventStatus(t, err)
		assert.Equal(t, fiber.StatusNotFound, code)
		assert.Equal(t, "Tuition event not found.", msg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owning student accepts", func(t *testing.T) {
		svc, mock := newEventServiceWithMock(t, now)
		id, teacherID := uuid.New(), uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM "tuition_events"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "teacher_id", "student_id", "status"}).
				AddRow(id.String(), teacherID.String(), student.ID.String(), model.StatusPending))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "tuition_events" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()

		event, err := svc.Respond(student, id, model.StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, model.StatusAccepted, event.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
