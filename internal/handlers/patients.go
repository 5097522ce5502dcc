package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"curanet/internal/services"
	"curanet/internal/utils"
)

// PatientHandler handles patient-related requests.
type PatientHandler struct {
	service *services.PatientService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// CreatePatient handles registering a patient. A taken medical_id is a 409.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req services.CreatePatientInput
	if !utils.BindJSON(c, &req) {
		return
	}

	patient, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, patient)
}

// GetPatients handles listing every patient.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, patients)
}

// GetPatientByID handles fetching one patient.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	patient, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, patient)
}

// GetPatientByMedicalID handles looking a patient up by medical id.
func (h *PatientHandler) GetPatientByMedicalID(c *gin.Context) {
	medicalID := strings.TrimSpace(c.Param("medical_id"))
	if medicalID == "" {
		utils.BadRequest(c, "medical_id is required")
		return
	}

	patient, err := h.service.GetByMedicalID(c.Request.Context(), medicalID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, patient)
}
