package routes

import (
	"github.com/gin-gonic/gin"

	"curanet/internal/cache"
	"curanet/internal/config"
	"curanet/internal/handlers"
	"curanet/internal/middleware"
	"curanet/internal/models"
	"curanet/internal/repository"
	"curanet/internal/services"
)

// SetupRoutes configures the application routes. c may be nil.
func SetupRoutes(router *gin.Engine, store repository.Store, c cache.Cache, cfg *config.Config) {
	hospitalHandler := handlers.NewHospitalHandler(services.NewHospitalService(store, c))
	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(store, c))
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(store, c))
	healthHandler := handlers.NewHealthHandler(store)

	// Writes require a token only when a secret is configured.
	guard := func(roles ...models.Role) []gin.HandlerFunc {
		if !cfg.AuthEnabled() {
			return nil
		}
		return []gin.HandlerFunc{
			middleware.AuthMiddleware(cfg.Auth.JWTSecret),
			middleware.RoleAuthMiddleware(roles...),
		}
	}
	with := func(mw []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, mw...), h)
	}

	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)

	hospitalRoutes := router.Group("/hospitals")
	{
		hospitalRoutes.POST("/", with(guard(models.RoleAdmin), hospitalHandler.CreateHospital)...)
		hospitalRoutes.GET("/", hospitalHandler.GetHospitals)
		hospitalRoutes.GET("/:id", hospitalHandler.GetHospitalByID)
		hospitalRoutes.GET("/:id/doctors", hospitalHandler.GetHospitalDoctors)
	}

	doctorRoutes := router.Group("/doctors")
	{
		doctorRoutes.POST("/", with(guard(models.RoleAdmin), doctorHandler.CreateDoctor)...)
		doctorRoutes.GET("/", doctorHandler.GetDoctors)
		doctorRoutes.GET("/:id", doctorHandler.GetDoctorByID)
	}

	patientRoutes := router.Group("/patients")
	{
		patientRoutes.POST("/", with(guard(models.RoleAdmin, models.RoleStaff, models.RoleDoctor), patientHandler.CreatePatient)...)
		patientRoutes.GET("/", patientHandler.GetPatients)
		patientRoutes.GET("/:id", patientHandler.GetPatientByID)
		patientRoutes.GET("/medical-id/:medical_id", patientHandler.GetPatientByMedicalID)
	}
}
