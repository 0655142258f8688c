package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/handlers"
	"portfolio/internal/logger"
	"portfolio/internal/mailer"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
	"portfolio/internal/storage"
	"portfolio/pkg/mailqueue"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// --- Database ---
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Experience{},
		&models.Education{},
		&models.Certificate{},
		&models.Resume{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- File Storage ---
	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload directory: %v", err)
	}

	// --- Mailer ---
	// With MAIL_QUEUE_URL set, contact mail goes through AMQP and a consumer
	// goroutine drains the queue into the SMTP relay. Without it, sends go
	// straight to the relay.
	smtpMailer := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	var mail mailer.Mailer = smtpMailer
	if cfg.MailQueueURL != "" {
		mqClient, err := mailqueue.NewClient(mailqueue.Config{URL: cfg.MailQueueURL})
		if err != nil {
			log.Fatalf("Failed to initialize mail queue client: %v", err)
		}
		defer mqClient.Close()

		if err := mqClient.Consume(smtpMailer.Send); err != nil {
			log.Fatalf("Failed to start mail queue consumer: %v", err)
		}
		mail = mailqueue.NewQueueMailer(mqClient)
	}

	// --- Repositories ---
	adminRepo := repositories.NewGORMAdminRepository(db)
	profileRepo := repositories.NewGORMProfileRepository(db)
	skillRepo := repositories.NewGORMSkillRepository(db)
	projectRepo := repositories.NewGORMProjectRepository(db)
	experienceRepo := repositories.NewGORMExperienceRepository(db)
	educationRepo := repositories.NewGORMEducationRepository(db)
	certificateRepo := repositories.NewGORMCertificateRepository(db)
	resumeRepo := repositories.NewGORMResumeRepository(db)

	// --- Services ---
	authService := services.NewAuthService(adminRepo, cfg.JWTSecret)
	profileService := services.NewProfileService(profileRepo, files)
	skillService := services.NewSkillService(skillRepo)
	projectService := services.NewProjectService(projectRepo, files)
	experienceService := services.NewExperienceService(experienceRepo)
	educationService := services.NewEducationService(educationRepo)
	certificateService := services.NewCertificateService(certificateRepo, files)
	resumeService := services.NewResumeService(resumeRepo, files)
	publicService := services.NewPublicService(
		profileRepo, skillRepo, projectRepo, experienceRepo,
		educationRepo, certificateRepo, resumeRepo,
	)
	contactService := services.NewContactService(mail, cfg.ContactRecipient, log)

	if err := authService.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}

	// --- Handlers ---
	publicHandler := handlers.NewPublicHandler(publicService, resumeService, contactService, log)
	authHandler := handlers.NewAuthHandler(authService, log)
	dashboardHandler := handlers.NewDashboardHandler(
		profileService, skillService, projectService, experienceService,
		educationService, certificateService, resumeService, log,
	)
	profileHandler := handlers.NewProfileHandler(profileService, publicService, log)
	skillHandler := handlers.NewSkillHandler(skillService, publicService, log)
	projectHandler := handlers.NewProjectHandler(projectService, publicService, log)
	experienceHandler := handlers.NewExperienceHandler(experienceService, publicService, log)
	educationHandler := handlers.NewEducationHandler(educationService, publicService, log)
	certificateHandler := handlers.NewCertificateHandler(certificateService, publicService, log)
	resumeHandler := handlers.NewResumeHandler(resumeService, publicService, log)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		Views:     html.New("./views", ".html"),
		BodyLimit: cfg.MaxUploadBytes(),
	})

	app.Use(fiberlogger.New())

	app.Static("/static", "./static")
	app.Static("/uploads", cfg.UploadDir)

	// --- Routes ---
	publicHandler.RegisterRoutes(app)
	authHandler.RegisterPublicRoutes(app)

	admin := app.Group("/admin", middleware.AuthRequired(authService))
	authHandler.RegisterRoutes(admin)
	dashboardHandler.RegisterRoutes(admin)
	profileHandler.RegisterRoutes(admin)
	skillHandler.RegisterRoutes(admin)
	projectHandler.RegisterRoutes(admin)
	experienceHandler.RegisterRoutes(admin)
	educationHandler.RegisterRoutes(admin)
	certificateHandler.RegisterRoutes(admin)
	resumeHandler.RegisterRoutes(admin)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("Starting server on %s", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}
	log.Info("Server gracefully stopped")
}
