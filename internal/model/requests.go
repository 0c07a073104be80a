package model

import "time"

// VendorRequest represents the request structure for creating a vendor
type VendorRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	Notes         string `json:"notes"`
}

// VendorUpdateRequest allows partial vendor updates
type VendorUpdateRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contact_person"`
	Notes         *string `json:"notes"`
}

// RFPRequest represents the request structure for creating an RFP manually
type RFPRequest struct {
	Title            string    `json:"title" binding:"required"`
	Description      string    `json:"description"`
	Budget           *float64  `json:"budget"`
	DeliveryDays     *int      `json:"delivery_days"`
	PaymentTerms     *string   `json:"payment_terms"`
	WarrantyRequired *string   `json:"warranty_required"`
	Items            []RFPItem `json:"items"`
	Requirements     []string  `json:"requirements"`
}

// RFPUpdateRequest allows partial RFP updates, including the status
type RFPUpdateRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Budget           *float64   `json:"budget"`
	DeliveryDays     *int       `json:"delivery_days"`
	PaymentTerms     *string    `json:"payment_terms"`
	WarrantyRequired *string    `json:"warranty_required"`
	Items            *[]RFPItem `json:"items"`
	Requirements     *[]string  `json:"requirements"`
	Status           *string    `json:"status"`
}

// RFPFromTextRequest carries the free-text description to structure via AI
type RFPFromTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// ProposalRequest represents the request structure for creating a proposal
// manually (outside the email intake path)
type ProposalRequest struct {
	RFPID           uint           `json:"rfp_id" binding:"required"`
	VendorID        uint           `json:"vendor_id" binding:"required"`
	TotalPrice      *float64       `json:"total_price"`
	DeliveryDays    *int           `json:"delivery_days"`
	PaymentTerms    *string        `json:"payment_terms"`
	Warranty        *string        `json:"warranty"`
	Items           []ProposalItem `json:"items"`
	TermsConditions *string        `json:"terms_conditions"`
	RawResponse     string         `json:"raw_response"`
}

// ProposalUpdateRequest allows partial proposal updates
type ProposalUpdateRequest struct {
	TotalPrice      *float64        `json:"total_price"`
	DeliveryDays    *int            `json:"delivery_days"`
	PaymentTerms    *string         `json:"payment_terms"`
	Warranty        *string         `json:"warranty"`
	Items           *[]ProposalItem `json:"items"`
	TermsConditions *string         `json:"terms_conditions"`
}

// SendRFPRequest selects the RFP and the vendors to dispatch it to
type SendRFPRequest struct {
	RFPID     uint   `json:"rfp_id" binding:"required"`
	VendorIDs []uint `json:"vendor_ids" binding:"required,min=1"`
}

// SendResult is the per-vendor outcome of an RFP dispatch
type SendResult struct {
	VendorID   uint   `json:"vendor_id"`
	VendorName string `json:"vendor_name"`
	Status     string `json:"status"` // sent, failed
	Error      string `json:"error,omitempty"`
}

// SendRFPResponse is returned after attempting delivery to every vendor
type SendRFPResponse struct {
	Message string       `json:"message"`
	Results []SendResult `json:"results"`
}

// ReceiveEmailRequest is the simulated inbound-email webhook payload.
// RFPID is optional; when absent the RFP is inferred from the subject.
type ReceiveEmailRequest struct {
	FromEmail string `json:"from_email" binding:"required,email"`
	Subject   string `json:"subject"`
	Body      string `json:"body" binding:"required"`
	RFPID     *uint  `json:"rfp_id"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// MessageResponse is a simple confirmation payload
type MessageResponse struct {
	Message string `json:"message"`
}
