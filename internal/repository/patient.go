package repository

import (
	"context"

	"curanet/internal/models"
)

func (s *GormStore) CreatePatient(ctx context.Context, patient *models.Patient) error {
	return translate(s.db.WithContext(ctx).Omit("Doctor").Create(patient).Error)
}

func (s *GormStore) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := first(s.db.WithContext(ctx), &patient, id); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *GormStore) GetPatientByMedicalID(ctx context.Context, medicalID string) (*models.Patient, error) {
	var patient models.Patient
	if err := first(s.db.WithContext(ctx).Where("medical_id = ?", medicalID), &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *GormStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	patients := []models.Patient{}
	if err := s.db.WithContext(ctx).Order("id").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
