package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Dias221467/StudyTask_Manager/internal/config"
	"github.com/Dias221467/StudyTask_Manager/internal/database"
	"github.com/Dias221467/StudyTask_Manager/internal/handlers"
	"github.com/Dias221467/StudyTask_Manager/internal/repository"
	"github.com/Dias221467/StudyTask_Manager/internal/services"
	"github.com/Dias221467/StudyTask_Manager/pkg/email"
	"github.com/Dias221467/StudyTask_Manager/pkg/logger"
	"github.com/rs/cors"
)

type repositories struct {
	tasks         repository.TaskRepository
	notifications repository.NotificationRepository
	users         repository.UserRepository
}

func openRepositories(cfg *config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case "mongo":
		db, err := database.ConnectDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			tasks:         repository.NewMongoTaskRepository(db),
			notifications: repository.NewMongoNotificationRepository(db),
			users:         repository.NewMongoUserRepository(db),
		}, nil
	case "postgres":
		db, err := database.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			tasks:         repository.NewPostgresTaskRepository(db),
			notifications: repository.NewPostgresNotificationRepository(db),
			users:         repository.NewPostgresUserRepository(db),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	repos, err := openRepositories(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}
	logger.Log.WithField("driver", cfg.StorageDriver).Info("Storage ready")

	var mailer email.Sender
	if cfg.SMTP.Enabled() {
		mailer = email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Sender, cfg.SMTP.Password)
	} else {
		logger.Log.Warn("SMTP not configured, new accounts are verified automatically")
	}

	// --- Services ---
	notificationService := services.NewNotificationService(repos.notifications, repos.tasks, cfg.Location)
	taskService := services.NewTaskService(repos.tasks, repos.notifications)
	analyticsService := services.NewAnalyticsService(taskService)
	authService := services.NewAuthService(repos.users, mailer, cfg.JWTSecret, cfg.TokenExpiry, cfg.AppBaseURL)

	// --- Handlers ---
	router := handlers.NewRouter(handlers.Router{
		Auth:          handlers.NewAuthHandler(authService),
		Tasks:         handlers.NewTaskHandler(taskService),
		Analytics:     handlers.NewAnalyticsHandler(analyticsService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		JWTSecret:     cfg.JWTSecret,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := cfg.Port
	logger.Log.Infof("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(router)))
}
