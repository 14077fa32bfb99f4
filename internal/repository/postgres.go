package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/domain"
	"github.com/wellmindzone/telemed/internal/repository/model"
	"gorm.io/gorm"
)

type PostgresPatientRepository struct {
	db *gorm.DB
}

func NewPostgresPatientRepository(db *gorm.DB) *PostgresPatientRepository {
	return &PostgresPatientRepository{db: db}
}

func (r *PostgresPatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if patient == nil {
		return errors.New("patient is nil")
	}

	if err := r.db.WithContext(ctx).Create(toModelPatient(patient)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPatientEmailExists
		}
		return err
	}
	return nil
}

func (r *PostgresPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var patient model.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	return toDomainPatient(&patient), nil
}

func (r *PostgresPatientRepository) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var patient model.Patient
	err := r.db.WithContext(ctx).First(&patient, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	return toDomainPatient(&patient), nil
}

func (r *PostgresPatientRepository) List(ctx context.Context) ([]*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var patients []model.Patient
	if err := r.db.WithContext(ctx).Find(&patients).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, toDomainPatient(&patients[i]))
	}
	return result, nil
}

func (r *PostgresPatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Patient{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

type PostgresDoctorRepository struct {
	db *gorm.DB
}

func NewPostgresDoctorRepository(db *gorm.DB) *PostgresDoctorRepository {
	return &PostgresDoctorRepository{db: db}
}

func (r *PostgresDoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doctor == nil {
		return errors.New("doctor is nil")
	}

	if err := r.db.WithContext(ctx).Create(toModelDoctor(doctor)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDoctorEmailExists
		}
		return err
	}
	return nil
}

func (r *PostgresDoctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doctor model.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	return toDomainDoctor(&doctor), nil
}

func (r *PostgresDoctorRepository) GetByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doctor model.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	return toDomainDoctor(&doctor), nil
}

func (r *PostgresDoctorRepository) List(ctx context.Context) ([]*domain.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doctors []model.Doctor
	if err := r.db.WithContext(ctx).Find(&doctors).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Doctor, 0, len(doctors))
	for i := range doctors {
		result = append(result, toDomainDoctor(&doctors[i]))
	}
	return result, nil
}

func (r *PostgresDoctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Doctor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

type PostgresAppointmentRepository struct {
	db *gorm.DB
}

func NewPostgresAppointmentRepository(db *gorm.DB) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{db: db}
}

func (r *PostgresAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if appointment == nil {
		return errors.New("appointment is nil")
	}

	return r.db.WithContext(ctx).Create(toModelAppointment(appointment)).Error
}

func (r *PostgresAppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var appointments []model.Appointment
	if err := r.db.WithContext(ctx).Find(&appointments).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, toDomainAppointment(&appointments[i]))
	}
	return result, nil
}

func (r *PostgresAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func toModelPatient(p *domain.Patient) *model.Patient {
	return &model.Patient{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Gender:       p.Gender,
		Mobile:       p.Mobile,
		Age:          p.Age,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt.UTC(),
		UpdatedAt:    p.UpdatedAt.UTC(),
	}
}

func toDomainPatient(p *model.Patient) *domain.Patient {
	return &domain.Patient{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Gender:       p.Gender,
		Mobile:       p.Mobile,
		Age:          p.Age,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt.UTC(),
		UpdatedAt:    p.UpdatedAt.UTC(),
	}
}

func toModelDoctor(d *domain.Doctor) *model.Doctor {
	return &model.Doctor{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Gender:       d.Gender,
		Mobile:       d.Mobile,
		Age:          d.Age,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func toDomainDoctor(d *model.Doctor) *domain.Doctor {
	return &domain.Doctor{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Gender:       d.Gender,
		Mobile:       d.Mobile,
		Age:          d.Age,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func toModelAppointment(a *domain.Appointment) *model.Appointment {
	return &model.Appointment{
		ID:          a.ID,
		PatientName: a.PatientName,
		DoctorName:  a.DoctorName,
		DateAndTime: a.DateAndTime,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt.UTC(),
	}
}

func toDomainAppointment(a *model.Appointment) *domain.Appointment {
	return &domain.Appointment{
		ID:          a.ID,
		PatientName: a.PatientName,
		DoctorName:  a.DoctorName,
		DateAndTime: a.DateAndTime,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt.UTC(),
	}
}
