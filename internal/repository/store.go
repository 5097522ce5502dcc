// Package repository owns every query against the hospitals, doctors and
// patients tables.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"curanet/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKey is returned when an insert references a missing parent row.
	ErrForeignKey = errors.New("foreign key violation")
)

// Store is the persistence contract used by the services.
type Store interface {
	// Transaction runs fn against a Store bound to a single database
	// transaction. The transaction commits when fn returns nil.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	CreateHospital(ctx context.Context, hospital *models.Hospital) error
	GetHospital(ctx context.Context, id uint) (*models.Hospital, error)
	ListHospitals(ctx context.Context) ([]models.Hospital, error)

	CreateDoctor(ctx context.Context, doctor *models.Doctor) error
	GetDoctor(ctx context.Context, id uint) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	ListDoctorsByHospital(ctx context.Context, hospitalID uint) ([]models.Doctor, error)

	CreatePatient(ctx context.Context, patient *models.Patient) error
	GetPatient(ctx context.Context, id uint) (*models.Patient, error)
	GetPatientByMedicalID(ctx context.Context, medicalID string) (*models.Patient, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)

	Ping(ctx context.Context) error
}

// GormStore implements Store on top of GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// first loads a single row into dest, mapping gorm.ErrRecordNotFound to ErrNotFound.
func first(q *gorm.DB, dest interface{}, conds ...interface{}) error {
	err := q.First(dest, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// translate maps the dialect-neutral errors GORM produces with
// TranslateError enabled onto this package's sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	}
	return err
}
