package models

// Doctor works at exactly one hospital. Deleting the hospital deletes its doctors.
type Doctor struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	FirstName      string  `gorm:"size:100;not null" json:"first_name"`
	LastName       *string `gorm:"size:100" json:"last_name"`
	Specialization string  `gorm:"size:100;not null" json:"specialization"`
	HospitalID     uint    `gorm:"not null;index" json:"hospital_id"`

	// Relations (preloaded on reads)
	Hospital *Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"hospital,omitempty"`
}
