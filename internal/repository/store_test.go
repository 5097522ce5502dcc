package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"curanet/internal/models"
)

func setupMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewGormStore(db), mock
}

func TestGormStore_CreateHospital(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `hospitals`")).
		WithArgs("General", "1 Main St", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	h := &models.Hospital{Name: "General", Address: "1 Main St"}
	require.NoError(t, store.CreateHospital(context.Background(), h))

	assert.Equal(t, uint(1), h.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GetHospital_NotFound(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `hospitals` WHERE `hospitals`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone"}))

	h, err := store.GetHospital(context.Background(), 999)
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ListDoctors_PreloadsHospital(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `doctors` ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "specialization", "hospital_id"}).
			AddRow(1, "Jane", nil, "Cardiology", 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `hospitals` WHERE `hospitals`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone"}).
			AddRow(1, "General", "1 Main St", nil))

	doctors, err := store.ListDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)

	assert.Equal(t, "Jane", doctors[0].FirstName)
	assert.Nil(t, doctors[0].LastName)
	require.NotNil(t, doctors[0].Hospital)
	assert.Equal(t, "General", doctors[0].Hospital.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ListPatients_Empty(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `patients` ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "medical_id"}))

	patients, err := store.ListPatients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, patients)
	assert.Empty(t, patients)
}

func TestGormStore_GetPatientByMedicalID(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `patients` WHERE medical_id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "medical_id", "email"}).
			AddRow(7, "Adarsh", "INS123987", "adarsh@example.com"))

	p, err := store.GetPatientByMedicalID(context.Background(), "INS123987")
	require.NoError(t, err)

	assert.Equal(t, uint(7), p.ID)
	require.NotNil(t, p.Email)
	assert.Equal(t, "adarsh@example.com", *p.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreatePatient_DuplicateKeyIsTranslated(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `patients`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'INS123987' for key 'idx_patients_medical_id'"})
	mock.ExpectRollback()

	err := store.CreatePatient(context.Background(), &models.Patient{FirstName: "Adarsh", MedicalID: "INS123987"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreateDoctor_ForeignKeyIsTranslated(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `doctors`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"})
	mock.ExpectRollback()

	err := store.CreateDoctor(context.Background(), &models.Doctor{FirstName: "Jane", Specialization: "Cardiology", HospitalID: 999})
	assert.ErrorIs(t, err, ErrForeignKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Transaction_CommitsCheckAndInsert(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `hospitals` WHERE `hospitals`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "phone"}).
			AddRow(1, "General", "1 Main St", nil))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `doctors`")).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	doctor := &models.Doctor{FirstName: "Jane", Specialization: "Cardiology", HospitalID: 1}
	err := store.Transaction(context.Background(), func(tx Store) error {
		if _, err := tx.GetHospital(context.Background(), doctor.HospitalID); err != nil {
			return err
		}
		return tx.CreateDoctor(context.Background(), doctor)
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), doctor.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Transaction_RollsBackOnError(t *testing.T) {
	store, mock := setupMockStore(t)
	errBoom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := store.Transaction(context.Background(), func(tx Store) error {
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
