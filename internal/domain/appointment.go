package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a scheduled consultation between a patient and a doctor.
// DateAndTime stays a caller-formatted string, the record store does not
// interpret it.
type Appointment struct {
	ID          uuid.UUID `json:"id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`
	DateAndTime string    `json:"date_and_time"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewAppointment(patientName, doctorName, dateAndTime, notes string) *Appointment {
	return &Appointment{
		ID:          uuid.New(),
		PatientName: patientName,
		DoctorName:  doctorName,
		DateAndTime: dateAndTime,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
}
