package main

import (
	"Polyclinic/cache"
	"Polyclinic/config"
	"Polyclinic/database"
	"Polyclinic/handlers"
	"Polyclinic/logger"
	"Polyclinic/repositories"
	"Polyclinic/routes"
	"Polyclinic/services"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "polyclinic",
		Short:        "Clinic reporting over a fixed patient, doctor and appointment dataset",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(reportCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the reports HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid configuration")
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func reportCmd() *cobra.Command {
	var (
		doctorID uint
		years    int
	)

	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Print a report to stdout",
		Long:  "Print a report to stdout. Available reports: " + strings.Join(services.ReportNames, ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := runReport(newReportService(nil), args[0], doctorID, years)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), lines)
		},
	}

	cmd.Flags().UintVar(&doctorID, "doctor-id", 1, "doctor id for the patients-by-doctor report")
	cmd.Flags().IntVar(&years, "years", services.DefaultExperienceYears, "minimum experience for the experienced-doctors report")
	return cmd
}

// newReportService wires the seeded snapshot into a ReportService.
func newReportService(now func() time.Time) *services.ReportService {
	repository := repositories.NewClinicRepository(database.SeedClinic())
	return services.NewReportService(repository, now)
}

func runReport(service *services.ReportService, name string, doctorID uint, years int) ([]string, error) {
	switch name {
	case services.ReportExperiencedDoctors:
		return service.DoctorsWithExperienceAtLeast(years), nil
	case services.ReportPatientsByDoctor:
		return service.PatientsByDoctor(doctorID), nil
	case services.ReportHealthyPatients:
		return service.HealthyPatients(), nil
	case services.ReportAppointmentsLastMonth:
		return service.AppointmentCountsByDoctorLastMonth(), nil
	case services.ReportTopDiagnoses:
		return service.Top5Diagnoses(), nil
	case services.ReportMultiDoctorPatients:
		return service.PatientsOver30WithMultipleDoctors(), nil
	default:
		return nil, fmt.Errorf("unknown report %q, expected one of: %s", name, strings.Join(services.ReportNames, ", "))
	}
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "failed to write report")
		}
	}
	return nil
}

func serve(ctx context.Context, cfg *config.AppConfig) error {
	lg := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.IsDev()})
	log.Logger = lg

	var redisClient *redis.Client
	if cfg.CacheEnabled() {
		client, err := database.NewRedisClient(ctx, database.DefaultRedisConfig(cfg.RedisAddress), lg)
		if err != nil {
			return errors.Wrap(err, "failed to initialize Redis client")
		}
		redisClient = client
		defer func() {
			database.LogRedisPool(redisClient, lg)
			if err := redisClient.Close(); err != nil {
				lg.Warn().Err(err).Msg("failed to close Redis client")
			}
		}()
	} else {
		lg.Info().Msg("REDIS_URL not set, report cache disabled")
	}

	reportCache := services.NewReportCache(cache.NewCache(redisClient), cfg.ReportCacheTTL, cfg.ReportCacheTimeout, lg)
	reportHandler := handlers.NewReportHandler(newReportService(nil), reportCache)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        routes.SetupRoutes(cfg, reportHandler, lg),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	return runServer(ctx, srv, lg)
}

// runServer serves until SIGINT/SIGTERM or ctx cancellation, then shuts down
// gracefully.
func runServer(ctx context.Context, srv *http.Server, lg zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		lg.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server failed")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	lg.Info().Msg("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server shutdown failed")
	}
	if err := <-errCh; err != nil {
		return errors.Wrap(err, "server failed")
	}

	lg.Info().Msg("server exited gracefully")
	return nil
}
