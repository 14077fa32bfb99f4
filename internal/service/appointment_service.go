package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/domain"
	"github.com/wellmindzone/telemed/internal/repository"
	"github.com/wellmindzone/telemed/lib/logger/sl"
)

type AppointmentService struct {
	appointments repository.AppointmentRepository
	log          *slog.Logger
}

func NewAppointmentService(appointments repository.AppointmentRepository, log *slog.Logger) *AppointmentService {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentService{appointments: appointments, log: log}
}

func (s *AppointmentService) Schedule(ctx context.Context, patientName, doctorName, dateAndTime, notes string) (*domain.Appointment, error) {
	const op = "service.appointment.schedule"
	log := s.log.With(slog.String("op", op))

	if patientName == "" || doctorName == "" || dateAndTime == "" {
		return nil, errors.New("patient name, doctor name and date are required")
	}

	appointment := domain.NewAppointment(patientName, doctorName, dateAndTime, notes)
	if err := s.appointments.Create(ctx, appointment); err != nil {
		log.Error("failed to create appointment", sl.Err(err))
		return nil, err
	}

	log.Info("appointment scheduled",
		slog.String("appointment_id", appointment.ID.String()),
		slog.String("doctor", doctorName),
	)
	return appointment, nil
}

func (s *AppointmentService) List(ctx context.Context) ([]*domain.Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *AppointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "service.appointment.delete"
	if err := s.appointments.Delete(ctx, id); err != nil {
		s.log.Info("failed to delete appointment", slog.String("op", op), sl.Err(err))
		return err
	}
	return nil
}
