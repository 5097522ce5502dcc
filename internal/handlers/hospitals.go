package handlers

import (
	"github.com/gin-gonic/gin"

	"curanet/internal/services"
	"curanet/internal/utils"
)

// HospitalHandler handles hospital-related requests.
type HospitalHandler struct {
	service *services.HospitalService
}

// NewHospitalHandler creates a new HospitalHandler.
func NewHospitalHandler(service *services.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

// CreateHospital handles creating a new hospital.
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req services.CreateHospitalInput
	if !utils.BindJSON(c, &req) {
		return
	}

	hospital, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, hospital)
}

// GetHospitals handles listing every hospital.
func (h *HospitalHandler) GetHospitals(c *gin.Context) {
	hospitals, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, hospitals)
}

// GetHospitalByID handles fetching one hospital.
func (h *HospitalHandler) GetHospitalByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	hospital, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, hospital)
}

// GetHospitalDoctors handles listing the doctors of one hospital.
func (h *HospitalHandler) GetHospitalDoctors(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	doctors, err := h.service.ListDoctors(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, doctors)
}
