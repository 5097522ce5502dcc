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

// DoctorService implements the write and read paths for doctors.
type DoctorService struct {
	store repository.Store
	cache cache.Cache
}

// NewDoctorService creates a new DoctorService. A nil cache disables caching.
func NewDoctorService(store repository.Store, c cache.Cache) *DoctorService {
	if c == nil {
		c = cache.Noop{}
	}
	return &DoctorService{store: store, cache: c}
}

// Create validates in, checks that the referenced hospital exists and inserts
// the doctor. The lookup and the insert share one transaction; the foreign key
// still rejects a hospital that disappears in between.
func (s *DoctorService) Create(ctx context.Context, in CreateDoctorInput) (*models.Doctor, error) {
	if err := check(&in); err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Specialization: in.Specialization,
		HospitalID:     in.HospitalID,
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		hospital, err := tx.GetHospital(ctx, in.HospitalID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrHospitalNotFound
		}
		if err != nil {
			return fmt.Errorf("look up hospital %d: %w", in.HospitalID, err)
		}

		if err := tx.CreateDoctor(ctx, doctor); err != nil {
			if errors.Is(err, repository.ErrForeignKey) {
				return ErrHospitalNotFound
			}
			return fmt.Errorf("insert doctor: %w", err)
		}
		doctor.Hospital = hospital
		return nil
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Uint("doctor_id", doctor.ID).
		Uint("hospital_id", doctor.HospitalID).
		Msg("doctor created")
	remember(ctx, s.cache, cache.Key("doctor", doctor.ID), doctor)
	return doctor, nil
}

// List returns every doctor with its hospital.
func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.store.ListDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

// Get returns the doctor with the given id or ErrDoctorNotFound.
func (s *DoctorService) Get(ctx context.Context, id uint) (*models.Doctor, error) {
	key := cache.Key("doctor", id)
	var cached models.Doctor
	if recall(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	doctor, err := s.store.GetDoctor(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get doctor %d: %w", id, err)
	}

	remember(ctx, s.cache, key, doctor)
	return doctor, nil
}
