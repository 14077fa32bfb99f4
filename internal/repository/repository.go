package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/domain"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrPatientEmailExists  = errors.New("patient with email already exists")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorEmailExists   = errors.New("doctor with email already exists")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	GetByEmail(ctx context.Context, email string) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Doctor, error)
	List(ctx context.Context) ([]*domain.Doctor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	List(ctx context.Context) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
