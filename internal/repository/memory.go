package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/domain"
)

type InMemoryPatientRepository struct {
	mu       sync.RWMutex
	patients map[uuid.UUID]*domain.Patient
	emails   map[string]uuid.UUID
}

func NewInMemoryPatientRepository() *InMemoryPatientRepository {
	return &InMemoryPatientRepository{
		patients: make(map[uuid.UUID]*domain.Patient),
		emails:   make(map[string]uuid.UUID),
	}
}

func (r *InMemoryPatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[patient.Email]; ok {
		return ErrPatientEmailExists
	}

	r.patients[patient.ID] = patient
	r.emails[patient.Email] = patient.ID
	return nil
}

func (r *InMemoryPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.patients[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (r *InMemoryPatientRepository) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return nil, ErrPatientNotFound
	}
	patient, ok := r.patients[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (r *InMemoryPatientRepository) List(ctx context.Context) ([]*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Patient, 0, len(r.patients))
	for _, patient := range r.patients {
		result = append(result, patient)
	}
	return result, nil
}

func (r *InMemoryPatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	patient, ok := r.patients[id]
	if !ok {
		return ErrPatientNotFound
	}

	delete(r.emails, patient.Email)
	delete(r.patients, id)
	return nil
}

type InMemoryDoctorRepository struct {
	mu      sync.RWMutex
	doctors map[uuid.UUID]*domain.Doctor
	emails  map[string]uuid.UUID
}

func NewInMemoryDoctorRepository() *InMemoryDoctorRepository {
	return &InMemoryDoctorRepository{
		doctors: make(map[uuid.UUID]*domain.Doctor),
		emails:  make(map[string]uuid.UUID),
	}
}

func (r *InMemoryDoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[doctor.Email]; ok {
		return ErrDoctorEmailExists
	}

	r.doctors[doctor.ID] = doctor
	r.emails[doctor.Email] = doctor.ID
	return nil
}

func (r *InMemoryDoctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor, ok := r.doctors[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func (r *InMemoryDoctorRepository) GetByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func (r *InMemoryDoctorRepository) List(ctx context.Context) ([]*domain.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Doctor, 0, len(r.doctors))
	for _, doctor := range r.doctors {
		result = append(result, doctor)
	}
	return result, nil
}

func (r *InMemoryDoctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doctor, ok := r.doctors[id]
	if !ok {
		return ErrDoctorNotFound
	}

	delete(r.emails, doctor.Email)
	delete(r.doctors, id)
	return nil
}

type InMemoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[uuid.UUID]*domain.Appointment
}

func NewInMemoryAppointmentRepository() *InMemoryAppointmentRepository {
	return &InMemoryAppointmentRepository{
		appointments: make(map[uuid.UUID]*domain.Appointment),
	}
}

func (r *InMemoryAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *InMemoryAppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0, len(r.appointments))
	for _, appointment := range r.appointments {
		result = append(result, appointment)
	}
	return result, nil
}

func (r *InMemoryAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return ErrAppointmentNotFound
	}

	delete(r.appointments, id)
	return nil
}
