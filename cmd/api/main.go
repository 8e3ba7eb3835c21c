package main

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/Massi21022535/Asistencia-Back/api/swagger"
	"github.com/Massi21022535/Asistencia-Back/internal/handler"
	"github.com/Massi21022535/Asistencia-Back/internal/repository"
	"github.com/Massi21022535/Asistencia-Back/internal/router"
	"github.com/Massi21022535/Asistencia-Back/internal/service"
	"github.com/Massi21022535/Asistencia-Back/pkg/cache"
	"github.com/Massi21022535/Asistencia-Back/pkg/config"
	"github.com/Massi21022535/Asistencia-Back/pkg/database"
	"github.com/Massi21022535/Asistencia-Back/pkg/logger"

	"go.uber.org/zap"
)

// @title Asistencia API
// @version 1.0.0
// @description Classroom attendance backend: session tokens, presence ledger and attendance reports
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.Database.MigrationsDir); err != nil {
		logr.Sugar().Fatalw("failed to run migrations", "error", err)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The rate limiter fails open without Redis; marking must not
		// depend on the cache being reachable.
		logr.Sugar().Warnw("redis unavailable, rate limiting disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	assignmentRepo := repository.NewTeachingAssignmentRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     "asistencia-api",
	})
	sessionSvc := service.NewSessionService(sessionRepo, assignmentRepo, validate, logr, cfg.Attendance.FrontendURL)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, sessionRepo, studentRepo, enrollmentRepo, assignmentRepo, validate, logr)
	reportSvc := service.NewReportService(attendanceRepo, sessionRepo, assignmentRepo, logr)
	groupSvc := service.NewGroupService(groupRepo, assignmentRepo, studentRepo, logr)
	noteSvc := service.NewNoteService(noteRepo, assignmentRepo, validate, logr)

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Attendance: handler.NewAttendanceHandler(attendanceSvc, metrics),
		Teacher:    handler.NewTeacherHandler(groupSvc, sessionSvc, attendanceSvc, reportSvc, noteSvc, metrics),
		Director:   handler.NewDirectorHandler(groupSvc, reportSvc),
	}

	r := router.New(cfg, logr, authSvc, metrics, redisClient, handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
