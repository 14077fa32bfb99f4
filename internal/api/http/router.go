package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	patientController *PatientController,
	doctorController *DoctorController,
	signalingController *SignalingController,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(config))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	if patientController != nil {
		patients := api.Group("/patient")
		patients.POST("/register-patient", patientController.Register)
		patients.POST("/login-patient", patientController.Login)
		patients.GET("/get-patients", patientController.List)
		patients.POST("/delete-patient", patientController.Delete)
		patients.POST("/schedule-appointment", patientController.ScheduleAppointment)
		patients.GET("/appointments", patientController.Appointments)
		patients.POST("/delete-appointment", patientController.DeleteAppointment)
	}

	if doctorController != nil {
		doctors := api.Group("/doctor")
		doctors.POST("/register-doctor", doctorController.Register)
		doctors.POST("/login-doctor", doctorController.Login)
		doctors.GET("/get-doctors", doctorController.List)
		doctors.POST("/delete-doctor", doctorController.Delete)
		doctors.POST("/schedule-appointment", doctorController.ScheduleAppointment)
		doctors.GET("/appointments", doctorController.Appointments)
		doctors.POST("/delete-appointment", doctorController.DeleteAppointment)
	}

	if signalingController != nil {
		router.GET("/ws", signalingController.Connect)
	}

	return router
}
