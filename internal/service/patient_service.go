package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/domain"
	"github.com/wellmindzone/telemed/internal/repository"
	"github.com/wellmindzone/telemed/lib/auth"
	"github.com/wellmindzone/telemed/lib/logger/sl"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const bcryptCost = 10

type PatientService struct {
	patients repository.PatientRepository
	tokens   *auth.TokenIssuer
	log      *slog.Logger
}

func NewPatientService(patients repository.PatientRepository, tokens *auth.TokenIssuer, log *slog.Logger) *PatientService {
	if log == nil {
		log = slog.Default()
	}
	return &PatientService{patients: patients, tokens: tokens, log: log}
}

func (s *PatientService) Register(ctx context.Context, name, email, gender, mobile string, age int, password string) (*domain.Patient, error) {
	const op = "service.patient.register"
	log := s.log.With(slog.String("op", op), slog.String("email", email))

	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return nil, err
	}

	patient := domain.NewPatient(name, email, gender, mobile, age, string(hash))
	if err := s.patients.Create(ctx, patient); err != nil {
		log.Info("failed to create patient", sl.Err(err))
		return nil, err
	}

	log.Info("patient registered", slog.String("patient_id", patient.ID.String()))
	return patient, nil
}

func (s *PatientService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "service.patient.login"
	log := s.log.With(slog.String("op", op), slog.String("email", email))

	patient, err := s.patients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Error("failed to look up patient", sl.Err(err))
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(patient.ID.String())
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return "", err
	}

	log.Info("patient logged in", slog.String("patient_id", patient.ID.String()))
	return token, nil
}

func (s *PatientService) List(ctx context.Context) ([]*domain.Patient, error) {
	return s.patients.List(ctx)
}

func (s *PatientService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "service.patient.delete"
	if err := s.patients.Delete(ctx, id); err != nil {
		s.log.Info("failed to delete patient", slog.String("op", op), sl.Err(err))
		return err
	}
	return nil
}
