package models

// Hospital is a care site that employs doctors.
type Hospital struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	Address string  `gorm:"size:255;not null" json:"address"`
	Phone   *string `gorm:"size:30" json:"phone"`
}
