package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"curanet/internal/cache"
	"curanet/internal/models"
	"curanet/internal/repository"
)

// HospitalService implements the write and read paths for hospitals.
type HospitalService struct {
	store repository.Store
	cache cache.Cache
}

// NewHospitalService creates a new HospitalService. A nil cache disables caching.
func NewHospitalService(store repository.Store, c cache.Cache) *HospitalService {
	if c == nil {
		c = cache.Noop{}
	}
	return &HospitalService{store: store, cache: c}
}

// Create validates in and inserts a hospital.
func (s *HospitalService) Create(ctx context.Context, in CreateHospitalInput) (*models.Hospital, error) {
	if err := check(&in); err != nil {
		return nil, err
	}

	hospital := &models.Hospital{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	}
	if err := s.store.CreateHospital(ctx, hospital); err != nil {
		return nil, fmt.Errorf("insert hospital: %w", err)
	}

	zerolog.Ctx(ctx).Info().Uint("hospital_id", hospital.ID).Msg("hospital created")
	remember(ctx, s.cache, cache.Key("hospital", hospital.ID), hospital)
	return hospital, nil
}

// List returns every hospital.
func (s *HospitalService) List(ctx context.Context) ([]models.Hospital, error) {
	hospitals, err := s.store.ListHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	return hospitals, nil
}

// Get returns the hospital with the given id or ErrHospitalNotFound.
func (s *HospitalService) Get(ctx context.Context, id uint) (*models.Hospital, error) {
	key := cache.Key("hospital", id)
	var cached models.Hospital
	if recall(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	hospital, err := s.store.GetHospital(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrHospitalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hospital %d: %w", id, err)
	}

	remember(ctx, s.cache, key, hospital)
	return hospital, nil
}

// ListDoctors returns the doctors of an existing hospital.
func (s *HospitalService) ListDoctors(ctx context.Context, hospitalID uint) ([]models.Doctor, error) {
	if _, err := s.Get(ctx, hospitalID); err != nil {
		return nil, err
	}
	doctors, err := s.store.ListDoctorsByHospital(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("list doctors of hospital %d: %w", hospitalID, err)
	}
	return doctors, nil
}

// recall reads key from c into dest. Cache failures count as misses.
func recall(ctx context.Context, c cache.Cache, key string, dest interface{}) bool {
	hit, err := c.Get(ctx, key, dest)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache read failed")
		return false
	}
	return hit
}

// remember stores value under key. Failures are logged and otherwise ignored.
func remember(ctx context.Context, c cache.Cache, key string, value interface{}) {
	if err := c.Set(ctx, key, value); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
