package domain

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered patient account.
type Patient struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Gender       string    `json:"gender"`
	Mobile       string    `json:"mobile"`
	Age          int       `json:"age"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewPatient(name, email, gender, mobile string, age int, passwordHash string) *Patient {
	now := time.Now().UTC()
	return &Patient{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Gender:       gender,
		Mobile:       mobile,
		Age:          age,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
