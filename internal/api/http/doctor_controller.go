package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/repository"
	"github.com/wellmindzone/telemed/internal/service"
)

type DoctorController struct {
	doctors      service.DoctorInteractor
	appointments service.AppointmentInteractor
}

func NewDoctorController(doctors service.DoctorInteractor, appointments service.AppointmentInteractor) *DoctorController {
	return &DoctorController{doctors: doctors, appointments: appointments}
}

func (c *DoctorController) Register(ctx *gin.Context) {
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

	doctor, err := c.doctors.Register(ctx.Request.Context(), req.Name, req.Email, req.Gender, req.Mobile, req.Age, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrDoctorEmailExists) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Doctor registered successfully", "doctor": doctor})
}

func (c *DoctorController) Login(ctx *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := c.doctors.Login(ctx.Request.Context(), req.Email, req.Password)
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

func (c *DoctorController) List(ctx *gin.Context) {
	doctors, err := c.doctors.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": doctors})
}

func (c *DoctorController) Delete(ctx *gin.Context) {
	type request struct {
		DoctorID string `json:"doctor_id" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := uuid.Parse(req.DoctorID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	if err := c.doctors.Delete(ctx.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrDoctorNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *DoctorController) ScheduleAppointment(ctx *gin.Context) {
	scheduleAppointment(ctx, c.appointments)
}

func (c *DoctorController) Appointments(ctx *gin.Context) {
	listAppointments(ctx, c.appointments)
}

func (c *DoctorController) DeleteAppointment(ctx *gin.Context) {
	deleteAppointment(ctx, c.appointments)
}
