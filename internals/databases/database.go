package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/configs"
	connectionModel "github.com/sam002696/tuition-management-backend/internals/features/connections/model"
	notificationModel "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/model"
	detailsModel "github.com/sam002696/tuition-management-backend/internals/features/tuition/details/model"
	eventModel "github.com/sam002696/tuition-management-backend/internals/features/tuition/events/model"
	authModel "github.com/sam002696/tuition-management-backend/internals/features/users/auth/model"
	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=tuition_backend&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer friendly (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected")
}

// Migrate keeps the schema in sync and installs the indexes AutoMigrate
// cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.PasswordResetTokenModel{},
		&connectionModel.ConnectionRequestModel{},
		&detailsModel.TuitionDetailsModel{},
		&eventModel.TuitionEventModel{},
		&notificationModel.NotificationModel{},
	); err != nil {
		return err
	}

	// Race-safety backstop for duplicate sends: at most one non-rejected
	// request per (teacher, student) pair. Rejected rows stay out of the
	// index so a pair can be re-requested after a rejection.
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_connection_requests_open_pair
		ON connection_requests (teacher_id, student_id)
		WHERE status <> 'rejected'
	`).Error
}
