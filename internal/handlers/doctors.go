package handlers

import (
	"github.com/gin-gonic/gin"

	"curanet/internal/services"
	"curanet/internal/utils"
)

// DoctorHandler handles doctor-related requests.
type DoctorHandler struct {
	service *services.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// CreateDoctor handles creating a doctor at an existing hospital.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req services.CreateDoctorInput
	if !utils.BindJSON(c, &req) {
		return
	}

	doctor, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, doctor)
}

func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, doctors)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	doctor, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, doctor)
}
