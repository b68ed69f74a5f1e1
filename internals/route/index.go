package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/constants"
	connectionRoute "github.com/sam002696/tuition-management-backend/internals/features/connections/route"
	notificationRoute "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/route"
	teacherHomeRoute "github.com/sam002696/tuition-management-backend/internals/features/home/teacher/route"
	tuitionDetailsRoute "github.com/sam002696/tuition-management-backend/internals/features/tuition/details/route"
	tuitionEventRoute "github.com/sam002696/tuition-management-backend/internals/features/tuition/events/route"
	authRoute "github.com/sam002696/tuition-management-backend/internals/features/users/auth/route"
	authMiddleware "github.com/sam002696/tuition-management-backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	startTime = time.Now()

	BaseRoutes(app)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Mounting public auth routes...")
	authRoute.PublicAuthRoutes(api, db)

	// ===================== PRIVATE =====================
	log.Println("[INFO] Mounting private routes...")
	private := api.Group("/", authMiddleware.AuthMiddleware(db))

	authRoute.ProtectedAuthRoutes(private, db)
	connectionRoute.ConnectionRoutes(private, db, rdb)
	tuitionDetailsRoute.TuitionDetailsRoutes(private, db)
	tuitionEventRoute.TuitionEventRoutes(private, db, rdb)
	notificationRoute.NotificationRoutes(private, db)

	// ===================== TEACHER ONLY =====================
	log.Println("[INFO] Mounting teacher-only routes...")
	teacherOnly := private.Group("/",
		authMiddleware.OnlyRoles(constants.ErrOnlyTeachersDashboard, constants.RoleTeacher),
	)
	teacherHomeRoute.TeacherHomeRoutes(teacherOnly, db)
}
