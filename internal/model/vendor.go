package model

import (
	"time"
)

// Vendor represents a supplier that receives RFPs and submits proposals
type Vendor struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null;index"`
	Email         string    `json:"email" gorm:"type:varchar(255);not null"`
	Phone         string    `json:"phone" gorm:"type:varchar(50)"`
	Address       string    `json:"address" gorm:"type:text"`
	ContactPerson string    `json:"contact_person" gorm:"type:varchar(255)"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationship
	Proposals []Proposal `json:"-" gorm:"foreignKey:VendorID"`
}

// TableName specifies the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}
