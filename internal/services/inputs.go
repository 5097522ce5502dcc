package services

import (
	"strings"

	"curanet/internal/utils"
)

// CreateHospitalInput is the payload accepted by HospitalService.Create.
type CreateHospitalInput struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Address string  `json:"address" binding:"required,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
}

func (in *CreateHospitalInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = trimOptional(in.Phone)
}

// CreateDoctorInput is the payload accepted by DoctorService.Create.
type CreateDoctorInput struct {
	FirstName      string  `json:"first_name" binding:"required,max=100"`
	LastName       *string `json:"last_name" binding:"omitempty,max=100"`
	Specialization string  `json:"specialization" binding:"required,max=100"`
	HospitalID     uint    `json:"hospital_id" binding:"required"`
}

func (in *CreateDoctorInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = trimOptional(in.LastName)
	in.Specialization = strings.TrimSpace(in.Specialization)
}

// CreatePatientInput is the payload accepted by PatientService.Create.
// DoctorID is optional; when set it must name an existing doctor.
type CreatePatientInput struct {
	FirstName string  `json:"first_name" binding:"required,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	MedicalID string  `json:"medical_id" binding:"required,min=6,max=20"`
	Phone     *string `json:"phone" binding:"omitempty,max=30"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	DoctorID  *uint   `json:"doctor_id" binding:"omitempty,gt=0"`
}

func (in *CreatePatientInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = trimOptional(in.LastName)
	in.MedicalID = strings.TrimSpace(in.MedicalID)
	in.Phone = trimOptional(in.Phone)
	in.Email = trimOptional(in.Email)
}

// trimOptional trims s and turns blank values into nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

type normalizer interface {
	normalize()
}

// check normalizes in and validates it, before any store access.
func check(in normalizer) error {
	in.normalize()
	if err := utils.Validate(in); err != nil {
		return newValidationError(err)
	}
	return nil
}
