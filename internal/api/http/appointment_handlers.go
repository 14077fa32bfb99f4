package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/repository"
	"github.com/wellmindzone/telemed/internal/service"
)

// Appointment endpoints are mounted under both /api/patient and /api/doctor,
// so the handlers are shared.

func scheduleAppointment(ctx *gin.Context, appointments service.AppointmentInteractor) {
	type request struct {
		PatientName string `json:"patient_name" binding:"required"`
		DoctorName  string `json:"doctor_name" binding:"required"`
		DateAndTime string `json:"date_and_time" binding:"required"`
		Notes       string `json:"notes"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	appointment, err := appointments.Schedule(ctx.Request.Context(), req.PatientName, req.DoctorName, req.DateAndTime, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Appointment registered successfully", "appointment": appointment})
}

func listAppointments(ctx *gin.Context, appointments service.AppointmentInteractor) {
	result, err := appointments.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": result})
}

func deleteAppointment(ctx *gin.Context, appointments service.AppointmentInteractor) {
	type request struct {
		AppointmentID string `json:"appointment_id" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	if err := appointments.Delete(ctx.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
