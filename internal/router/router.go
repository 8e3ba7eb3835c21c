package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Massi21022535/Asistencia-Back/internal/handler"
	"github.com/Massi21022535/Asistencia-Back/internal/middleware"
	"github.com/Massi21022535/Asistencia-Back/internal/models"
	"github.com/Massi21022535/Asistencia-Back/internal/service"
	"github.com/Massi21022535/Asistencia-Back/pkg/config"
	"github.com/Massi21022535/Asistencia-Back/pkg/logger"
	corsmiddleware "github.com/Massi21022535/Asistencia-Back/pkg/middleware/cors"
	reqidmiddleware "github.com/Massi21022535/Asistencia-Back/pkg/middleware/requestid"
)

// Handlers groups the HTTP handlers wired into the router.
type Handlers struct {
	Auth       *handler.AuthHandler
	Attendance *handler.AttendanceHandler
	Teacher    *handler.TeacherHandler
	Director   *handler.DirectorHandler
}

// New builds the gin engine with all middleware and routes.
func New(cfg *config.Config, logr *zap.Logger, auth *service.AuthService, metrics *service.MetricsService, redisClient *redis.Client, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.Deadline(cfg.Database.QueryTimeout))

	api.POST("/auth/login", h.Auth.Login)

	markLimit := rateLimitFor(cfg, redisClient, metrics, logr)
	api.POST("/attendance/mark", markLimit, h.Attendance.Mark)

	teacher := api.Group("/teacher", middleware.JWT(auth), middleware.RequireRoles(models.RoleTeacher))
	{
		teacher.GET("/groups", h.Teacher.Groups)
		teacher.GET("/groups/:groupID/students", h.Teacher.Students)
		teacher.GET("/groups/:groupID/sessions", h.Teacher.ListSessions)
		teacher.POST("/groups/:groupID/sessions", h.Teacher.OpenSession)
		teacher.DELETE("/groups/:groupID/sessions/:sessionID", h.Teacher.DeleteSession)
		teacher.POST("/groups/:groupID/sessions/:sessionID/attendance", h.Teacher.BulkMark)
		teacher.GET("/sessions/:sessionID/attendance", h.Teacher.SessionDetail)
		teacher.GET("/groups/:groupID/report", h.Teacher.GroupReport)
		teacher.POST("/groups/:groupID/students/:studentID/notes", h.Teacher.CreateNote)
		teacher.GET("/groups/:groupID/students/:studentID/notes", h.Teacher.ListNotes)
	}

	director := api.Group("/director", middleware.JWT(auth), middleware.RequireRoles(models.RoleDirector))
	{
		director.GET("/groups", h.Director.Groups)
		director.GET("/groups/:groupID/report", h.Director.GroupReport)
		director.GET("/sessions/:sessionID/attendance", h.Director.SessionDetail)
	}

	return r
}

func rateLimitFor(cfg *config.Config, client *redis.Client, metrics *service.MetricsService, logr *zap.Logger) gin.HandlerFunc {
	window := cfg.Attendance.MarkRateWindow
	if window <= 0 {
		window = time.Minute
	}
	return middleware.RateLimit(client, cfg.Attendance.MarkRateLimit, window, metrics, logr)
}
