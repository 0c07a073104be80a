package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProposalItem is a per-item price breakdown extracted from a vendor reply
type ProposalItem struct {
	Name           string            `json:"name"`
	Quantity       int               `json:"quantity"`
	UnitPrice      float64           `json:"unit_price"`
	TotalPrice     float64           `json:"total_price"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Proposal represents a vendor's response to an RFP. At most one proposal
// exists per (RFP, Vendor) pair; a repeated vendor reply overwrites the
// existing row.
type Proposal struct {
	ID                uint                              `json:"id" gorm:"primaryKey;autoIncrement"`
	RFPID             uint                              `json:"rfp_id" gorm:"not null;index"`
	VendorID          uint                              `json:"vendor_id" gorm:"not null;index"`
	TotalPrice        *float64                          `json:"total_price"`
	DeliveryDays      *int                              `json:"delivery_days"`
	PaymentTerms      *string                           `json:"payment_terms" gorm:"type:varchar(255)"`
	Warranty          *string                           `json:"warranty" gorm:"type:varchar(255)"`
	Items             datatypes.JSONSlice[ProposalItem] `json:"items"`
	TermsConditions   *string                           `json:"terms_conditions" gorm:"type:text"`
	RawResponse       string                            `json:"raw_response" gorm:"type:text"`
	ExtractedData     datatypes.JSONMap                 `json:"extracted_data"`
	CompletenessScore *float64                          `json:"completeness_score"`
	ReceivedAt        time.Time                         `json:"received_at"`
	CreatedAt         time.Time                         `json:"created_at"`
	UpdatedAt         time.Time                         `json:"updated_at"`

	// Relationships
	RFP    *RFP    `json:"-" gorm:"foreignKey:RFPID"`
	Vendor *Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
}

// TableName specifies the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}
