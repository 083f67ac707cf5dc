package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/timetable-api/api/swagger"
	"github.com/noah-isme/timetable-api/internal/handler"
	"github.com/noah-isme/timetable-api/internal/middleware"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/repository"
	"github.com/noah-isme/timetable-api/internal/service"
	"github.com/noah-isme/timetable-api/pkg/cache"
	"github.com/noah-isme/timetable-api/pkg/clock"
	"github.com/noah-isme/timetable-api/pkg/config"
	"github.com/noah-isme/timetable-api/pkg/database"
	"github.com/noah-isme/timetable-api/pkg/export"
	"github.com/noah-isme/timetable-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/timetable-api/pkg/middleware/requestid"
)

// @title Timetable API
// @version 1.0.0
// @description Weekly lesson timetables with odd/even weeks, double lessons and one-day hotfixes.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	validate := validator.New()
	clk := clock.NewSystem(cfg.Location())

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	schoolRepo := repository.NewSchoolRepository(db)
	classRepo := repository.NewClassRepository(db)
	subgroupRepo := repository.NewSubgroupRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	semesterRepo := repository.NewSemesterRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	hotfixRepo := repository.NewHotfixRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(redisClient, logr)

	schoolSvc := service.NewSchoolService(schoolRepo, validate, logr)
	classSvc := service.NewClassService(classRepo, subgroupRepo, schoolRepo, validate, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, validate, logr)
	semesterSvc := service.NewSemesterService(semesterRepo, schoolRepo, clk, validate, logr)
	hotfixSvc := service.NewHotfixService(hotfixRepo, lessonRepo, teacherRepo, metricsSvc, validate, logr)
	lessonSvc := service.NewLessonService(service.LessonServiceDeps{
		Lessons:   lessonRepo,
		Schools:   schoolRepo,
		Classes:   classRepo,
		Subgroups: subgroupRepo,
		Teachers:  teacherRepo,
		Semesters: semesterRepo,
		Hotfixes:  hotfixSvc,
		Metrics:   metricsSvc,
		Clock:     clk,
	}, validate, logr)
	timetableSvc := service.NewTimetableService(classSvc, teacherSvc, lessonSvc, hotfixSvc, metricsSvc, clk,
		service.TimetableConfig{XLSCharset: cfg.Import.XLSCharset}, logr)
	exportSvc := service.NewExportService(lessonSvc, logr, nil, export.NewPDFExporter(cfg.Export.PDFFontPath))
	authSvc := service.NewAuthService(userRepo, tokenRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})

	schoolHandler := handler.NewSchoolHandler(schoolSvc)
	classHandler := handler.NewClassHandler(classSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	semesterHandler := handler.NewSemesterHandler(semesterSvc)
	lessonHandler := handler.NewLessonHandler(lessonSvc)
	hotfixHandler := handler.NewHotfixHandler(hotfixSvc)
	timetableHandler := handler.NewTimetableHandler(timetableSvc, exportSvc, cfg.Import.MaxFileSizeBytes)
	authHandler := handler.NewAuthHandler(authSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, db)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS))
	if metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc))
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	r.GET("/health", metricsHandler.Health)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	teacherOnly := middleware.RequireAccess(models.AccessTeacher)
	adminOnly := middleware.RequireAccess(models.AccessAdmin)
	audit := func(action string) gin.HandlerFunc { return middleware.Audit(logr, action) }

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.Auth(authSvc))

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", middleware.RequireAccess(models.AccessClassPresident), authHandler.Logout)
	auth.GET("/me", middleware.RequireAccess(models.AccessClassPresident), authHandler.Me)
	auth.POST("/users", adminOnly, audit("user.create"), authHandler.Register)
	auth.DELETE("/users/:id", adminOnly, audit("user.delete"), authHandler.DeleteUser)

	schools := api.Group("/schools")
	schools.GET("", schoolHandler.List)
	schools.GET("/:id", schoolHandler.Get)
	schools.POST("", teacherOnly, audit("school.create"), schoolHandler.Create)
	schools.DELETE("/:id", adminOnly, audit("school.delete"), schoolHandler.Delete)

	classes := api.Group("/classes")
	classes.GET("", classHandler.List)
	classes.GET("/:id", classHandler.Get)
	classes.POST("", teacherOnly, audit("class.create"), classHandler.Create)
	classes.DELETE("/:id", adminOnly, audit("class.delete"), classHandler.Delete)

	subgroups := api.Group("/subgroups")
	subgroups.GET("", classHandler.ListSubgroups)
	subgroups.GET("/:id", classHandler.GetSubgroup)
	subgroups.POST("", teacherOnly, audit("subgroup.create"), classHandler.CreateSubgroup)
	subgroups.DELETE("/:id", adminOnly, audit("subgroup.delete"), classHandler.DeleteSubgroup)

	teachers := api.Group("/teachers")
	teachers.GET("", teacherHandler.List)
	teachers.GET("/:id", teacherHandler.Get)
	teachers.POST("", teacherOnly, audit("teacher.create"), teacherHandler.Create)
	teachers.DELETE("/:id", adminOnly, audit("teacher.delete"), teacherHandler.Delete)

	semesters := api.Group("/semesters")
	semesters.GET("", semesterHandler.List)
	semesters.GET("/current", semesterHandler.Current)
	semesters.GET("/:id", semesterHandler.Get)
	semesters.POST("", teacherOnly, audit("semester.create"), semesterHandler.Create)
	semesters.DELETE("/:id", adminOnly, audit("semester.delete"), semesterHandler.Delete)

	lessons := api.Group("/lessons")
	lessons.GET("", lessonHandler.List)
	lessons.GET("/nearest", lessonHandler.Nearest)
	lessons.GET("/today", lessonHandler.Today)
	lessons.GET("/weekday", lessonHandler.Weekday)
	lessons.GET("/hotfix", hotfixHandler.List)
	lessons.GET("/hotfix/:id", hotfixHandler.Get)
	lessons.GET("/:id", lessonHandler.Get)
	lessons.POST("", teacherOnly, audit("lesson.create"), lessonHandler.Create)
	lessons.POST("/subgroups", teacherOnly, audit("lesson.link_subgroup"), lessonHandler.AddSubgroup)
	lessons.PATCH("", middleware.RequireAccess(models.AccessClassPresident), audit("hotfix.create"), hotfixHandler.Create)
	lessons.DELETE("/hotfix/:id", middleware.RequireAccess(models.AccessClassPresident), audit("hotfix.delete"), hotfixHandler.Delete)
	lessons.DELETE("/:id", teacherOnly, audit("lesson.delete"), lessonHandler.Delete)

	timetableHandler.RegisterRoutes(api.Group("/timetable"), audit)

	if metricsSvc != nil {
		api.GET("/metrics/summary", adminOnly, metricsHandler.Summary)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
