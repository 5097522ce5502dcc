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

// PatientService implements the write and read paths for patients.
type PatientService struct {
	store repository.Store
	cache cache.Cache
}

// NewPatientService creates a new PatientService. A nil cache disables caching.
func NewPatientService(store repository.Store, c cache.Cache) *PatientService {
	if c == nil {
		c = cache.Noop{}
	}
	return &PatientService{store: store, cache: c}
}

// Create validates in, rejects a medical_id that is already taken, checks the
// optional doctor reference and inserts the patient. The unique index on
// medical_id is the final guard against concurrent creates.
func (s *PatientService) Create(ctx context.Context, in CreatePatientInput) (*models.Patient, error) {
	if err := check(&in); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		MedicalID: in.MedicalID,
		Phone:     in.Phone,
		Email:     in.Email,
		DoctorID:  in.DoctorID,
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		_, err := tx.GetPatientByMedicalID(ctx, in.MedicalID)
		switch {
		case err == nil:
			return ErrDuplicateMedicalID
		case !errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("look up medical id: %w", err)
		}

		if in.DoctorID != nil {
			_, err := tx.GetDoctor(ctx, *in.DoctorID)
			if errors.Is(err, repository.ErrNotFound) {
				return ErrDoctorNotFound
			}
			if err != nil {
				return fmt.Errorf("look up doctor %d: %w", *in.DoctorID, err)
			}
		}

		err = tx.CreatePatient(ctx, patient)
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return ErrDuplicateMedicalID
		case errors.Is(err, repository.ErrForeignKey):
			return ErrDoctorNotFound
		case err != nil:
			return fmt.Errorf("insert patient: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Uint("patient_id", patient.ID).Msg("patient created")
	remember(ctx, s.cache, cache.Key("patient", patient.ID), patient)
	return patient, nil
}

// List returns every patient.
func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.store.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// Get returns the patient with the given id or ErrPatientNotFound.
func (s *PatientService) Get(ctx context.Context, id uint) (*models.Patient, error) {
	key := cache.Key("patient", id)
	var cached models.Patient
	if recall(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	patient, err := s.store.GetPatient(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}

	remember(ctx, s.cache, key, patient)
	return patient, nil
}

// GetByMedicalID looks a patient up by natural key.
func (s *PatientService) GetByMedicalID(ctx context.Context, medicalID string) (*models.Patient, error) {
	patient, err := s.store.GetPatientByMedicalID(ctx, medicalID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get patient by medical id: %w", err)
	}
	return patient, nil
}
