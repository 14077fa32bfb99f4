package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellmindzone/telemed/internal/repository"
	"github.com/wellmindzone/telemed/lib/auth"
)

func newPatientService(t *testing.T) *PatientService {
	t.Helper()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewPatientService(repository.NewInMemoryPatientRepository(), tokens, nil)
}

func TestPatientRegisterAndLogin(t *testing.T) {
	s := newPatientService(t)
	ctx := context.Background()

	patient, err := s.Register(ctx, "Alice", "a@x.com", "female", "5550001", 30, "secret")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", patient.Email)
	assert.NotEmpty(t, patient.PasswordHash)
	assert.NotEqual(t, "secret", patient.PasswordHash)

	token, err := s.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestPatientLoginWrongPassword(t *testing.T) {
	s := newPatientService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "Alice", "a@x.com", "female", "5550001", 30, "secret")
	require.NoError(t, err)

	_, err = s.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPatientLoginUnknownEmail(t *testing.T) {
	s := newPatientService(t)

	_, err := s.Login(context.Background(), "nobody@x.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPatientRegisterDuplicateEmail(t *testing.T) {
	s := newPatientService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "Alice", "a@x.com", "female", "5550001", 30, "secret")
	require.NoError(t, err)

	_, err = s.Register(ctx, "Other Alice", "a@x.com", "female", "5550002", 31, "secret2")
	assert.ErrorIs(t, err, repository.ErrPatientEmailExists)
}

func TestPatientRegisterMissingFields(t *testing.T) {
	s := newPatientService(t)

	_, err := s.Register(context.Background(), "", "a@x.com", "", "", 0, "secret")
	assert.Error(t, err)
}

func TestPatientDelete(t *testing.T) {
	s := newPatientService(t)
	ctx := context.Background()

	patient, err := s.Register(ctx, "Alice", "a@x.com", "female", "5550001", 30, "secret")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, patient.ID))

	err = s.Delete(ctx, patient.ID)
	assert.ErrorIs(t, err, repository.ErrPatientNotFound)
}
