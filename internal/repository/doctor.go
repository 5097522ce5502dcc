package repository

import (
	"context"

	"curanet/internal/models"
)

// CreateDoctor inserts the doctor row only; an attached Hospital is never
// written through the association.
func (s *GormStore) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return translate(s.db.WithContext(ctx).Omit("Hospital").Create(doctor).Error)
}

func (s *GormStore) GetDoctor(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := first(s.db.WithContext(ctx).Preload("Hospital"), &doctor, id); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *GormStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	if err := s.db.WithContext(ctx).Preload("Hospital").Order("id").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *GormStore) ListDoctorsByHospital(ctx context.Context, hospitalID uint) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := s.db.WithContext(ctx).
		Preload("Hospital").
		Where("hospital_id = ?", hospitalID).
		Order("id").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
