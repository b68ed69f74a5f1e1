package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/redis/go-redis/v9"

	"github.com/sam002696/tuition-management-backend/internals/configs"
	database "github.com/sam002696/tuition-management-backend/internals/databases"
	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
	loggerMiddleware "github.com/sam002696/tuition-management-backend/internals/middlewares/logger"
	routes "github.com/sam002696/tuition-management-backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(loggerMiddleware.RequestLogger())

	database.ConnectDB()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	if err := userModel.BackfillCustomIDs(database.DB); err != nil {
		log.Printf("[WARN] custom_id backfill failed: %v", err)
	}

	var rdb *redis.Client
	if configs.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	}

	routes.SetupRoutes(app, database.DB, rdb)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// errorHandler renders every error through the response envelope.
// Services raise *fiber.Error with their exact status and message;
// anything else is an internal failure whose detail is only exposed
// in local runs.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else if configs.IsLocal() {
		message = err.Error()
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return helper.JsonError(c, code, message)
}
