package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/domain"
)

type PatientInteractor interface {
	Register(ctx context.Context, name, email, gender, mobile string, age int, password string) (*domain.Patient, error)
	Login(ctx context.Context, email, password string) (string, error)
	List(ctx context.Context) ([]*domain.Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DoctorInteractor interface {
	Register(ctx context.Context, name, email, gender, mobile string, age int, password string) (*domain.Doctor, error)
	Login(ctx context.Context, email, password string) (string, error)
	List(ctx context.Context) ([]*domain.Doctor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AppointmentInteractor interface {
	Schedule(ctx context.Context, patientName, doctorName, dateAndTime, notes string) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
