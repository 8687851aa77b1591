package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"doctorsportal/cmd/internal/config"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/metrics"
	"doctorsportal/cmd/internal/routes"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "doctors-portal",
		Short:         "Doctors portal booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(serveCmd(), seedCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert services (name and slots) from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "services.json", "JSON array of services")
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log.SetLevel(parseLevel(cfg.LogLevel))
	return cfg, nil
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer closeRepositories(repos)

	validate := validator.New()
	tokens := utils.NewTokenSigner(cfg.AccessTokenSecret, cfg.TokenTTL)

	// Getting services
	treatmentService := service.NewTreatmentService(repos.Treatments, repos.Bookings, validate)
	bookingService := service.NewBookingService(repos.Bookings, validate)
	userService := service.NewUserService(repos.Users, validate, tokens)
	doctorService := service.NewDoctorService(repos.Doctors, validate)

	// Getting routes
	handlers := &routes.Handlers{
		Treatments: routes.NewTreatmentDefault(treatmentService),
		Bookings:   routes.NewBookingDefault(bookingService),
		Users:      routes.NewUserDefault(userService),
		Doctors:    routes.NewDoctorDefault(doctorService),
	}

	collector := metrics.NewCollector()

	e := echo.New()
	e.HideBanner = true
	e.IPExtractor = echo.ExtractIPDirect()
	e.HTTPErrorHandler = routes.ErrorHandler(e)
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infof("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(collector.Middleware())

	routes.Register(e, handlers, routes.Options{
		Tokens:         tokens,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	e.GET("/metrics", collector.Handler())

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Doctors Uncle is running on port %s", cfg.Port)
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func runSeed(ctx context.Context, file string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateStore(); err != nil {
		return err
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	var services []*entity.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer closeRepositories(repos)

	treatmentService := service.NewTreatmentService(repos.Treatments, repos.Bookings, validator.New())
	n, err := treatmentService.Seed(ctx, services)
	log.Infof("seeded %d of %d services", n, len(services))
	return err
}

func closeRepositories(repos *repositories) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repos.Close(ctx); err != nil {
		log.Errorf("failed to close database: %v", err)
	}
}

func parseLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
