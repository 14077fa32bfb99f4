package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	httpapi "github.com/wellmindzone/telemed/internal/api/http"
	"github.com/wellmindzone/telemed/internal/config"
	"github.com/wellmindzone/telemed/internal/coordinator"
	"github.com/wellmindzone/telemed/internal/repository"
	"github.com/wellmindzone/telemed/internal/repository/model"
	"github.com/wellmindzone/telemed/internal/service"
	"github.com/wellmindzone/telemed/lib/auth"
	"github.com/wellmindzone/telemed/lib/logger/sl"
	"github.com/wellmindzone/telemed/lib/logger/slogpretty"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	var (
		patientRepo     repository.PatientRepository
		doctorRepo      repository.DoctorRepository
		appointmentRepo repository.AppointmentRepository
	)

	if cfg.Database.DSN != "" {
		db, err := connectDatabase(cfg.Database)
		if err != nil {
			log.Error("failed to connect database", sl.Err(err))
			os.Exit(1)
		}
		patientRepo = repository.NewPostgresPatientRepository(db)
		doctorRepo = repository.NewPostgresDoctorRepository(db)
		appointmentRepo = repository.NewPostgresAppointmentRepository(db)
	} else {
		log.Warn("database dsn is empty, using in-memory record store")
		patientRepo = repository.NewInMemoryPatientRepository()
		doctorRepo = repository.NewInMemoryDoctorRepository()
		appointmentRepo = repository.NewInMemoryAppointmentRepository()
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	patientService := service.NewPatientService(patientRepo, tokens, log)
	doctorService := service.NewDoctorService(doctorRepo, tokens, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, log)

	coord := coordinator.New(log, coordinator.Options{
		SendBuffer:          cfg.Signaling.SendBuffer,
		StreamRequestLimit:  cfg.Signaling.StreamRequestLimit,
		StreamRequestWindow: cfg.Signaling.StreamRequestWin,
	})

	patientController := httpapi.NewPatientController(patientService, appointmentService)
	doctorController := httpapi.NewDoctorController(doctorService, appointmentService)
	signalingController := httpapi.NewSignalingController(coord, cfg.Signaling.HeartbeatInterval, log)

	router := httpapi.SetupRouter(patientController, doctorController, signalingController, cfg.HTTP.AllowedOrigins)

	log.Info("starting application", slog.String("addr", cfg.HTTP.Address))
	if err := router.Run(cfg.HTTP.Address); err != nil {
		log.Error("http server stopped", sl.Err(err))
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Patient{}, &model.Doctor{}, &model.Appointment{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
