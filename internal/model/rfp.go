package model

import (
	"time"

	"gorm.io/datatypes"
)

// RFP status values
const (
	RFPStatusDraft  = "draft"
	RFPStatusSent   = "sent"
	RFPStatusClosed = "closed"
)

// RFPItem is a single line item requested by an RFP
type RFPItem struct {
	Name           string            `json:"name"`
	Quantity       int               `json:"quantity"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// RFP represents a request for proposal sent out to vendors
type RFP struct {
	ID               uint                          `json:"id" gorm:"primaryKey;autoIncrement"`
	Title            string                        `json:"title" gorm:"type:varchar(255);not null"`
	Description      string                        `json:"description" gorm:"type:text"`
	Budget           *float64                      `json:"budget"`
	DeliveryDays     *int                          `json:"delivery_days"`
	PaymentTerms     *string                       `json:"payment_terms" gorm:"type:varchar(255)"`
	WarrantyRequired *string                       `json:"warranty_required" gorm:"type:varchar(255)"`
	Items            datatypes.JSONSlice[RFPItem]  `json:"items"`
	Requirements     datatypes.JSONSlice[string]   `json:"requirements"`
	Status           string                        `json:"status" gorm:"type:varchar(50);default:draft"`
	CreatedAt        time.Time                     `json:"created_at"`
	UpdatedAt        time.Time                     `json:"updated_at"`

	// Relationship
	Proposals []Proposal `json:"-" gorm:"foreignKey:RFPID"`
}

// TableName specifies the table name for RFP
func (RFP) TableName() string {
	return "rfps"
}
