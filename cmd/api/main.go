package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/kossayboubaker/TruckNavi-nouveau/internal/application/analytics"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/auth"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/leave"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/notification"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/trip"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/infrastructure/mail"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/infrastructure/postgres"
	httpRouter "github.com/kossayboubaker/TruckNavi-nouveau/internal/interfaces/http"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/interfaces/ws"
	"github.com/kossayboubaker/TruckNavi-nouveau/pkg/config"
	"github.com/kossayboubaker/TruckNavi-nouveau/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	tripRepo := postgres.NewTripRepository(pool)
	leaveRepo := postgres.NewLeaveRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	hub := ws.NewHub(log)
	go hub.Run()

	mailer := mail.NewSMTPMailer(cfg.Mail)

	notifUC := notification.NewUseCase(notifRepo, hub)
	jwtCfg := auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, notifUC, mailer, jwtCfg, cfg.App.BaseURL)
	google := auth.NewGoogleOAuth(
		cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL,
		userRepo, jwtCfg,
	)
	tripUC := trip.NewUseCase(tripRepo, userRepo, notifUC)
	leaveUC := leave.NewUseCase(leaveRepo, userRepo, notifUC)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TruckNavi API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Google:      google,
		NotifUC:     notifUC,
		TripUC:      tripUC,
		LeaveUC:     leaveUC,
		DashboardUC: dashboardUC,
		Hub:         hub,
		JWTSecret:   cfg.JWT.Secret,
		AppEnv:      cfg.App.Env,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
