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

type DoctorService struct {
	doctors repository.DoctorRepository
	tokens  *auth.TokenIssuer
	log     *slog.Logger
}

func NewDoctorService(doctors repository.DoctorRepository, tokens *auth.TokenIssuer, log *slog.Logger) *DoctorService {
	if log == nil {
		log = slog.Default()
	}
	return &DoctorService{doctors: doctors, tokens: tokens, log: log}
}

func (s *DoctorService) Register(ctx context.Context, name, email, gender, mobile string, age int, password string) (*domain.Doctor, error) {
	const op = "service.doctor.register"
	log := s.log.With(slog.String("op", op), slog.String("email", email))

	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return nil, err
	}

	doctor := domain.NewDoctor(name, email, gender, mobile, age, string(hash))
	if err := s.doctors.Create(ctx, doctor); err != nil {
		log.Info("failed to create doctor", sl.Err(err))
		return nil, err
	}

	log.Info("doctor registered", slog.String("doctor_id", doctor.ID.String()))
	return doctor, nil
}

func (s *DoctorService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "service.doctor.login"
	log := s.log.With(slog.String("op", op), slog.String("email", email))

	doctor, err := s.doctors.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Error("failed to look up doctor", sl.Err(err))
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(doctor.ID.String())
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return "", err
	}

	log.Info("doctor logged in", slog.String("doctor_id", doctor.ID.String()))
	return token, nil
}

func (s *DoctorService) List(ctx context.Context) ([]*domain.Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *DoctorService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "service.doctor.delete"
	if err := s.doctors.Delete(ctx, id); err != nil {
		s.log.Info("failed to delete doctor", slog.String("op", op), sl.Err(err))
		return err
	}
	return nil
}
