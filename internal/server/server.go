package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"taskmanager/internal/config"
	"taskmanager/internal/directory"
	"taskmanager/internal/handler"
	"taskmanager/internal/middleware"
	"taskmanager/internal/model"
	"taskmanager/internal/notify"
	"taskmanager/internal/repository"
	"taskmanager/internal/task"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// notifier is a task.Notifier that may hold queued work at shutdown.
type notifier interface {
	task.Notifier
	Close(ctx context.Context) error
}

type Server struct {
	Engine   *gin.Engine
	DB       *gorm.DB
	Config   *config.Config
	Notifier task.Notifier
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := db.AutoMigrate(&model.TeamMember{}, &model.Task{}, &model.TaskComment{}, &model.TaskActivityLog{}); err != nil {
		return nil, fmt.Errorf("❌ failed to prepare schema: %w", err)
	}

	s := &Server{
		DB:       db,
		Config:   cfg,
		Notifier: newNotifier(cfg),
	}
	s.Engine = s.routes()
	return s, nil
}

func newNotifier(cfg *config.Config) task.Notifier {
	if cfg.SlackWebhookURL == "" {
		log.Println("⚠️  SLACK_WEBHOOK_URL not set, notifications will only be logged")
		return notify.LogNotifier{DefaultChannel: cfg.SlackDefaultChannel}
	}
	return notify.NewSlackNotifier(notify.SlackOptions{
		WebhookURL:     cfg.SlackWebhookURL,
		DefaultChannel: cfg.SlackDefaultChannel,
		Timeout:        cfg.SlackTimeout,
		QueueSize:      cfg.SlackQueueSize,
	})
}

func (s *Server) routes() *gin.Engine {
	setGinMode(s.Config.GinMode)

	// Setup Gin
	r := gin.Default()
	r.Use(middleware.CORS(s.Config.AllowedOrigins), middleware.RequestID())

	// Initialize repositories
	memberRepo := repository.NewTeamMemberRepository(s.DB)
	taskRepo := repository.NewTaskRepository(s.DB)
	commentRepo := repository.NewCommentRepository(s.DB)
	activityRepo := repository.NewActivityLogRepository(s.DB)

	// Core services
	members := directory.New(memberRepo)
	tasks := task.NewService(taskRepo, commentRepo, activityRepo, members, s.Notifier, task.Channels{
		Default:  s.Config.SlackDefaultChannel,
		Announce: s.Config.SlackAnnounceChannel,
	})

	// Initialize handlers
	memberHandler := handler.NewTeamMemberHandler(members)
	taskHandler := handler.NewTaskHandler(tasks)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Task Manager API")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/team-members", memberHandler.Register)
		api.GET("/team-members", memberHandler.List)

		api.GET("/tasks", taskHandler.List)
		api.POST("/tasks", taskHandler.Create)
		api.GET("/tasks/:id", taskHandler.Get)
		api.PUT("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)
		api.GET("/tasks/:id/comments", taskHandler.Comments)

		api.GET("/task-activity-log/:taskId", taskHandler.ActivityLog)
	}
	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	if n, ok := s.Notifier.(notifier); ok {
		if err := n.Close(ctx); err != nil {
			log.Printf("⚠️  Pending notifications dropped: %v", err)
		}
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("✅ Server exited properly")
}

func setGinMode(mode string) {
	switch strings.ToLower(mode) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
