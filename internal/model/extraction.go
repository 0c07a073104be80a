package model

// RFPFields is the JSON shape the extraction client requests when turning
// free text into a structured RFP.
type RFPFields struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Budget           *float64  `json:"budget"`
	DeliveryDays     *int      `json:"delivery_days"`
	PaymentTerms     *string   `json:"payment_terms"`
	WarrantyRequired *string   `json:"warranty_required"`
	Items            []RFPItem `json:"items"`
	Requirements     []string  `json:"requirements"`
}

// ProposalFields is the JSON shape the extraction client requests when
// parsing a vendor email. CompletenessScore is the model's own estimate of
// how much of the RFP the email addressed; it is passed through verbatim.
type ProposalFields struct {
	TotalPrice        *float64       `json:"total_price"`
	DeliveryDays      *int           `json:"delivery_days"`
	PaymentTerms      *string        `json:"payment_terms"`
	Warranty          *string        `json:"warranty"`
	Items             []ProposalItem `json:"items"`
	TermsConditions   *string        `json:"terms_conditions"`
	CompletenessScore *float64       `json:"completeness_score"`
}

// RFPContext is the reduced view of an RFP embedded into extraction and
// comparison prompts.
type RFPContext struct {
	Title            string    `json:"title"`
	Budget           *float64  `json:"budget"`
	DeliveryDays     *int      `json:"delivery_days"`
	PaymentTerms     *string   `json:"payment_terms"`
	WarrantyRequired *string   `json:"warranty_required"`
	Items            []RFPItem `json:"items"`
}

// ProposalSummary is the reduced view of a proposal embedded into the
// comparison prompt.
type ProposalSummary struct {
	VendorName        string         `json:"vendor_name"`
	TotalPrice        *float64       `json:"total_price"`
	DeliveryDays      *int           `json:"delivery_days"`
	PaymentTerms      *string        `json:"payment_terms"`
	Warranty          *string        `json:"warranty"`
	CompletenessScore float64        `json:"completeness_score"`
	Items             []ProposalItem `json:"items"`
}

// RFPContextOf builds the prompt context for an RFP
func RFPContextOf(rfp *RFP) RFPContext {
	return RFPContext{
		Title:            rfp.Title,
		Budget:           rfp.Budget,
		DeliveryDays:     rfp.DeliveryDays,
		PaymentTerms:     rfp.PaymentTerms,
		WarrantyRequired: rfp.WarrantyRequired,
		Items:            rfp.Items,
	}
}

// SummaryOf builds the comparison prompt summary for a proposal
func SummaryOf(p *Proposal, vendorName string) ProposalSummary {
	score := 0.0
	if p.CompletenessScore != nil {
		score = *p.CompletenessScore
	}
	return ProposalSummary{
		VendorName:        vendorName,
		TotalPrice:        p.TotalPrice,
		DeliveryDays:      p.DeliveryDays,
		PaymentTerms:      p.PaymentTerms,
		Warranty:          p.Warranty,
		CompletenessScore: score,
		Items:             p.Items,
	}
}
