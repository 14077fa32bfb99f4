package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/repository"
	"github.com/wellmindzone/telemed/internal/service"
)

type PatientController struct {
	patients     service.PatientInteractor
	appointments service.AppointmentInteractor
}

func NewPatientController(patients service.PatientInteractor, appointments service.AppointmentInteractor) *PatientController {
	return &PatientController{patients: patients, appointments: appointments}
}

func (c *PatientController) Register(ctx *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Gender   string `json:"gender"`
		Mobile   string `json:"mobile"`
		Age      int    `json:"age"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patient, err := c.patients.Register(ctx.Request.Context(), req.Name, req.Email, req.Gender, req.Mobile, req.Age, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrPatientEmailExists) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Patient registered successfully", "patient": patient})
}

func (c *PatientController) Login(ctx *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := c.patients.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

func (c *PatientController) List(ctx *gin.Context) {
	patients, err := c.patients.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": patients})
}

func (c *PatientController) Delete(ctx *gin.Context) {
	type request struct {
		PatientID string `json:"patient_id" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := uuid.Parse(req.PatientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	if err := c.patients.Delete(ctx.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrPatientNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *PatientController) ScheduleAppointment(ctx *gin.Context) {
	scheduleAppointment(ctx, c.appointments)
}

func (c *PatientController) Appointments(ctx *gin.Context) {
	listAppointments(ctx, c.appointments)
}

func (c *PatientController) DeleteAppointment(ctx *gin.Context) {
	deleteAppointment(ctx, c.appointments)
}
