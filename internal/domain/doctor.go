package domain

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a registered doctor account.
type Doctor struct {
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

func NewDoctor(name, email, gender, mobile string, age int, passwordHash string) *Doctor {
	now := time.Now().UTC()
	return &Doctor{
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
