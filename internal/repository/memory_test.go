package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellmindzone/telemed/internal/domain"
)

func TestInMemoryPatientRepository(t *testing.T) {
	repo := NewInMemoryPatientRepository()
	ctx := context.Background()

	patient := domain.NewPatient("Alice", "a@x.com", "female", "5550001", 30, "hash")
	require.NoError(t, repo.Create(ctx, patient))

	got, err := repo.GetByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.Email, got.Email)

	got, err = repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, patient.ID, got.ID)

	dup := domain.NewPatient("Other", "a@x.com", "female", "5550002", 31, "hash")
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrPatientEmailExists)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, patient.ID))
	_, err = repo.GetByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, ErrPatientNotFound)

	// the email is free again after delete
	assert.NoError(t, repo.Create(ctx, dup))
}

func TestInMemoryDoctorRepository(t *testing.T) {
	repo := NewInMemoryDoctorRepository()
	ctx := context.Background()

	doctor := domain.NewDoctor("Dr. Bob", "b@x.com", "male", "5550003", 45, "hash")
	require.NoError(t, repo.Create(ctx, doctor))

	got, err := repo.GetByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, got.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	require.NoError(t, repo.Delete(ctx, doctor.ID))
	assert.ErrorIs(t, repo.Delete(ctx, doctor.ID), ErrDoctorNotFound)
}

func TestInMemoryAppointmentRepository(t *testing.T) {
	repo := NewInMemoryAppointmentRepository()
	ctx := context.Background()

	appointment := domain.NewAppointment("Alice", "Dr. Bob", "2026-09-01 10:00", "")
	require.NoError(t, repo.Create(ctx, appointment))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, appointment.ID))
	assert.ErrorIs(t, repo.Delete(ctx, appointment.ID), ErrAppointmentNotFound)
}

func TestInMemoryRepositoriesHonorContext(t *testing.T) {
	repo := NewInMemoryPatientRepository()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Create(ctx, domain.NewPatient("Alice", "a@x.com", "female", "5550001", 30, "hash"))
	assert.ErrorIs(t, err, context.Canceled)
}
