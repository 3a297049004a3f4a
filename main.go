package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/acadhub-2025/records-service/internal/config"
	"github.com/acadhub-2025/records-service/internal/events"
	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories/memory"
	"github.com/acadhub-2025/records-service/internal/services"
	"github.com/acadhub-2025/records-service/internal/validator"
)

// The records core has no transport of its own: a presentation host embeds
// the service manager and drives it directly. Running this binary stands the
// core up with an empty in-memory state and keeps the audit router draining
// domain events until interrupted.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	seed := cfg.SystemDefaults()
	repo := memory.NewRepository(models.SystemConfig{
		CollegeName:     seed.CollegeName,
		LogoLeft:        seed.LogoLeft,
		LogoRight:       seed.LogoRight,
		CurrentYear:     seed.CurrentYear,
		CurrentSemester: seed.CurrentSemester,
	})

	bus := events.NewBus(logger)
	defer bus.Close()

	v := validator.New()
	serviceManager := services.NewServiceManager(repo, logger, v, bus, services.ServiceManagerConfig{
		Analytics: services.AnalyticsPolicy{
			PassGPAThreshold: cfg.PassGPAThreshold,
			PassRateWeight:   cfg.PassRateWeight,
			AttendanceWeight: cfg.AttendanceWeight,
			CATPassMark:      cfg.CATPassMark,
		},
		Admin: services.AdminCredentials{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		},
	})

	router, err := events.NewAuditRouter(bus, logger)
	if err != nil {
		log.Fatalf("Failed to build audit router: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := router.Run(ctx); err != nil {
			log.Fatalf("Audit router stopped: %v", err)
		}
	}()

	current, err := serviceManager.Cycle().Current(ctx)
	if err != nil {
		log.Fatalf("Failed to read system config: %v", err)
	}
	logger.Info("records core ready",
		"environment", cfg.Environment,
		"college", current.CollegeName,
		"year", current.CurrentYear,
		"semester", current.CurrentSemester)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	cancel()
	if err := router.Close(); err != nil {
		log.Printf("Failed to close audit router: %v", err)
	}
}
