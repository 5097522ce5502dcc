package models

// Patient is a person with a unique medical id, optionally assigned to a doctor.
// Deleting the doctor clears DoctorID.
type Patient struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"size:100;not null" json:"first_name"`
	LastName  *string `gorm:"size:100" json:"last_name"`
	MedicalID string  `gorm:"size:20;not null;uniqueIndex" json:"medical_id"`
	Phone     *string `gorm:"size:30" json:"phone"`
	Email     *string `gorm:"size:255" json:"email"`
	DoctorID  *uint   `gorm:"index" json:"doctor_id"`

	Doctor *Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
