package model

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	Gender       string    `gorm:"size:32;not null"`
	Mobile       string    `gorm:"size:32;not null"`
	Age          int
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type Doctor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	Gender       string    `gorm:"size:32;not null"`
	Mobile       string    `gorm:"size:32;not null"`
	Age          int
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PatientName string    `gorm:"size:255;not null"`
	DoctorName  string    `gorm:"size:255;not null"`
	DateAndTime string    `gorm:"size:64;not null"`
	Notes       string    `gorm:"size:4000"`
	CreatedAt   time.Time `gorm:"not null"`
}
