package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sam002696/tuition-management-backend/internals/constants"
	"github.com/sam002696/tuition-management-backend/internals/features/connections/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/connections/model"
	notifService "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/service"
)

func newServiceWithMock(t *testing.T) (*ConnectionService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewConnectionService(db, notifService.NewNotifier(db, nil)), mock
}

func fiberStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code, fe.Message
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func studentRows(id uuid.UUID, customID string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "role", "custom_id"}).
		AddRow(id.String(), "Rafi", constants.RoleStudent, customID)
}

func connectionRows(id, teacherID, studentID uuid.UUID, status string, isActive bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "teacher_id", "student_id", "status", "is_active"}).
		AddRow(id.String(), teacherID.String(), studentID.String(), status, isActive)
}

func TestSendRequestBlockedByExistingConnection(t *testing.T) {
	teacher := Caller{ID: uuid.New(), Role: constants.RoleTeacher, Name: "Ayesha"}
	studentID := uuid.New()

	t.Run("accepted pair yields 409", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(studentRows(studentID, "S0171000000"))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "connection_requests"`).
			WillReturnRows(countRows(1))

		_, err := svc.SendRequest(teacher, dto.SendRequest{CustomID: "S0171000000"})
		code, msg := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusConflict, code)
		assert.Equal(t, "You are already connected with this student.", msg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pending pair yields 409", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(studentRows(studentID, "S0171000000"))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "connection_requests"`).
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "connection_requests"`).
			WillReturnRows(countRows(1))

		_, err := svc.SendRequest(teacher, dto.SendRequest{CustomID: "S0171000000"})
		code, msg := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusConflict, code)
		assert.Equal(t, "A pending request already exists for this student.", msg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejected pair does not block a re-send", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(studentRows(studentID, "S0171000000"))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "connection_requests"`).
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "connection_requests"`).
			WillReturnRows(countRows(0))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "connection_requests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()
		// Counterparty inbox write.
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()

		connection, err := svc.SendRequest(teacher, dto.SendRequest{CustomID: "S0171000000"})
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, connection.Status)
		assert.True(t, connection.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("losing the insert race reports the same 409", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(studentRows(studentID, "S0171000000"))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "connection_requests"`).
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "connection_requests"`).
			WillReturnRows(countRows(0))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "connection_requests"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		_, err := svc.SendRequest(teacher, dto.SendRequest{CustomID: "S0171000000"})
		code, msg := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusConflict, code)
		assert.Equal(t, "A pending request already exists for this student.", msg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("students cannot send", func(t *testing.T) {
		svc, _ := newServiceWithMock(t)
		_, err := svc.SendRequest(Caller{ID: uuid.New(), Role: constants.RoleStudent}, dto.SendRequest{CustomID: "S0171000000"})
		code, msg := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusForbidden, code)
		assert.Equal(t, constants.ErrOnlyTeachersCanSendRequests, msg)
	})
}

func TestRespondToRequest(t *testing.T) {
	student := Caller{ID: uuid.New(), Role: constants.RoleStudent, Name: "Rafi"}

	t.Run("a request owned by another student reads as absent", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM "connection_requests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := svc.RespondToRequest(student, uuid.New(), model.StatusAccepted)
		code, msg := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusNotFound, code)
		assert.Equal(t, "Connection request not found.", msg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("teachers cannot respond", func(t *testing.T) {
		svc, _ := newServiceWithMock(t)
		_, err := svc.RespondToRequest(Caller{ID: uuid.New(), Role: constants.RoleTeacher}, uuid.New(), model.StatusAccepted)
		code, _ := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusForbidden, code)
	})

	t.Run("only accepted or rejected are settable", func(t *testing.T) {
		svc, _ := newServiceWithMock(t)
		_, err := svc.RespondToRequest(student, uuid.New(), "pending")
		code, _ := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	})

	t.Run("owning student accepts", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		id, teacherID := uuid.New(), uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM "connection_requests"`).
			WillReturnRows(connectionRows(id, teacherID, student.ID, model.StatusPending, true))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "connection_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()

		connection, err := svc.RespondToRequest(student, id, model.StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, model.StatusAccepted, connection.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDisconnectConnection(t *testing.T) {
	teacherID := uuid.New()
	teacher := Caller{ID: teacherID, Role: constants.RoleTeacher}

	t.Run("rejected row cannot be disconnected", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		id := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM "connection_requests"`).
			WillReturnRows(connectionRows(id, teacherID, uuid.New(), model.StatusRejected, true))

		_, err := svc.DisconnectConnection(teacher, id)
		code, msg := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusNotFound, code)
		assert.Equal(t, "Connection not found or already inactive", msg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already inactive row cannot be disconnected again", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		id := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM "connection_requests"`).
			WillReturnRows(connectionRows(id, teacherID, uuid.New(), model.StatusAccepted, false))

		_, err := svc.DisconnectConnection(teacher, id)
		code, _ := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusNotFound, code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("only the teacher on the row may disconnect", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		id := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM "connection_requests"`).
			WillReturnRows(connectionRows(id, teacherID, uuid.New(), model.StatusAccepted, true))

		_, err := svc.DisconnectConnection(Caller{ID: uuid.New(), Role: constants.RoleStudent}, id)
		code, msg := fiberStatus(t, err)
		assert.Equal(t, fiber.StatusForbidden, code)
		assert.Equal(t, constants.ErrOnlyTeacherCanDisconnect, msg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("accepted and active row goes inactive", func(t *testing.T) {
		svc, mock := newServiceWithMock(t)
		id := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM "connection_requests"`).
			WillReturnRows(connectionRows(id, teacherID, uuid.New(), model.StatusAccepted, true))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "connection_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		connection, err := svc.DisconnectConnection(teacher, id)
		require.NoError(t, err)
		assert.False(t, connection.IsActive)
		assert.Equal(t, model.StatusAccepted, connection.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
