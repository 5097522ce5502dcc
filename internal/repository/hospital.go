package repository

import (
	"context"

	"curanet/internal/models"
)

func (s *GormStore) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	return translate(s.db.WithContext(ctx).Create(hospital).Error)
}

func (s *GormStore) GetHospital(ctx context.Context, id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := first(s.db.WithContext(ctx), &hospital, id); err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (s *GormStore) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	hospitals := []models.Hospital{}
	if err := s.db.WithContext(ctx).Order("id").Find(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}
