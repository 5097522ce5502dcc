// Package repotest provides an in-memory repository.Store for tests.
package repotest

import (
	"context"
	"sync"

	"curanet/internal/models"
	"curanet/internal/repository"
)

// MemStore is a repository.Store kept in memory. It enforces the same unique
// and foreign-key constraints as the SQL schema. Set Fail[method] to make a
// method return that error.
type MemStore struct {
	mu sync.Mutex

	hospitals map[uint]models.Hospital
	doctors   map[uint]models.Doctor
	patients  map[uint]models.Patient
	nextID    map[string]uint

	Fail  map[string]error
	Calls map[string]int
}

// New returns an empty MemStore.
func New() *MemStore {
	return &MemStore{
		hospitals: map[uint]models.Hospital{},
		doctors:   map[uint]models.Doctor{},
		patients:  map[uint]models.Patient{},
		nextID:    map[string]uint{},
		Fail:      map[string]error{},
		Calls:     map[string]int{},
	}
}

var _ repository.Store = (*MemStore)(nil)

func (m *MemStore) hit(method string) error {
	m.Calls[method]++
	return m.Fail[method]
}

func (m *MemStore) next(table string) uint {
	m.nextID[table]++
	return m.nextID[table]
}

// Transaction runs fn and restores the previous contents if it fails.
func (m *MemStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	m.mu.Lock()
	if err := m.hit("Transaction"); err != nil {
		m.mu.Unlock()
		return err
	}
	snapshot := m.snapshot()
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.restore(snapshot)
		m.mu.Unlock()
		return err
	}
	return nil
}

type snapshot struct {
	hospitals map[uint]models.Hospital
	doctors   map[uint]models.Doctor
	patients  map[uint]models.Patient
	nextID    map[string]uint
}

func (m *MemStore) snapshot() snapshot {
	s := snapshot{
		hospitals: make(map[uint]models.Hospital, len(m.hospitals)),
		doctors:   make(map[uint]models.Doctor, len(m.doctors)),
		patients:  make(map[uint]models.Patient, len(m.patients)),
		nextID:    make(map[string]uint, len(m.nextID)),
	}
	for k, v := range m.hospitals {
		s.hospitals[k] = v
	}
	for k, v := range m.doctors {
		s.doctors[k] = v
	}
	for k, v := range m.patients {
		s.patients[k] = v
	}
	for k, v := range m.nextID {
		s.nextID[k] = v
	}
	return s
}

func (m *MemStore) restore(s snapshot) {
	m.hospitals, m.doctors, m.patients, m.nextID = s.hospitals, s.doctors, s.patients, s.nextID
}

func (m *MemStore) CreateHospital(_ context.Context, hospital *models.Hospital) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("CreateHospital"); err != nil {
		return err
	}
	hospital.ID = m.next("hospitals")
	m.hospitals[hospital.ID] = *hospital
	return nil
}

func (m *MemStore) GetHospital(_ context.Context, id uint) (*models.Hospital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("GetHospital"); err != nil {
		return nil, err
	}
	h, ok := m.hospitals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &h, nil
}

func (m *MemStore) ListHospitals(context.Context) ([]models.Hospital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("ListHospitals"); err != nil {
		return nil, err
	}
	out := []models.Hospital{}
	for id := uint(1); id <= m.nextID["hospitals"]; id++ {
		if h, ok := m.hospitals[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *MemStore) CreateDoctor(_ context.Context, doctor *models.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("CreateDoctor"); err != nil {
		return err
	}
	if _, ok := m.hospitals[doctor.HospitalID]; !ok {
		return repository.ErrForeignKey
	}
	doctor.ID = m.next("doctors")
	row := *doctor
	row.Hospital = nil
	m.doctors[doctor.ID] = row
	return nil
}

func (m *MemStore) withHospital(d models.Doctor) models.Doctor {
	if h, ok := m.hospitals[d.HospitalID]; ok {
		d.Hospital = &h
	}
	return d
}

func (m *MemStore) GetDoctor(_ context.Context, id uint) (*models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("GetDoctor"); err != nil {
		return nil, err
	}
	d, ok := m.doctors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d = m.withHospital(d)
	return &d, nil
}

func (m *MemStore) ListDoctors(context.Context) ([]models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("ListDoctors"); err != nil {
		return nil, err
	}
	return m.doctorsWhere(func(models.Doctor) bool { return true }), nil
}

func (m *MemStore) ListDoctorsByHospital(_ context.Context, hospitalID uint) ([]models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("ListDoctorsByHospital"); err != nil {
		return nil, err
	}
	return m.doctorsWhere(func(d models.Doctor) bool { return d.HospitalID == hospitalID }), nil
}

func (m *MemStore) doctorsWhere(keep func(models.Doctor) bool) []models.Doctor {
	out := []models.Doctor{}
	for id := uint(1); id <= m.nextID["doctors"]; id++ {
		if d, ok := m.doctors[id]; ok && keep(d) {
			out = append(out, m.withHospital(d))
		}
	}
	return out
}

func (m *MemStore) CreatePatient(_ context.Context, patient *models.Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("CreatePatient"); err != nil {
		return err
	}
	for _, p := range m.patients {
		if p.MedicalID == patient.MedicalID {
			return repository.ErrDuplicateKey
		}
	}
	if patient.DoctorID != nil {
		if _, ok := m.doctors[*patient.DoctorID]; !ok {
			return repository.ErrForeignKey
		}
	}
	patient.ID = m.next("patients")
	m.patients[patient.ID] = *patient
	return nil
}

func (m *MemStore) GetPatient(_ context.Context, id uint) (*models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("GetPatient"); err != nil {
		return nil, err
	}
	p, ok := m.patients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (m *MemStore) GetPatientByMedicalID(_ context.Context, medicalID string) (*models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("GetPatientByMedicalID"); err != nil {
		return nil, err
	}
	for _, p := range m.patients {
		if p.MedicalID == medicalID {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MemStore) ListPatients(context.Context) ([]models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("ListPatients"); err != nil {
		return nil, err
	}
	out := []models.Patient{}
	for id := uint(1); id <= m.nextID["patients"]; id++ {
		if p, ok := m.patients[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemStore) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hit("Ping")
}

// Len reports how many rows a table holds ("hospitals", "doctors" or "patients").
func (m *MemStore) Len(table string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch table {
	case "hospitals":
		return len(m.hospitals)
	case "doctors":
		return len(m.doctors)
	case "patients":
		return len(m.patients)
	}
	return 0
}

// TotalCalls returns the number of store calls made so far.
func (m *MemStore) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		n += c
	}
	return n
}
