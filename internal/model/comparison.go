package model

// VendorComparison holds the per-vendor scores and rankings produced by the
// comparison call. Scores and ranks are whatever the model returned; no
// local normalization is applied.
type VendorComparison struct {
	VendorName   string   `json:"vendor_name"`
	Score        float64  `json:"score"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	PriceRank    int      `json:"price_rank"`
	DeliveryRank int      `json:"delivery_rank"`
}

// Recommendation is the model's pick of the best vendor with reasoning
type Recommendation struct {
	RecommendedVendor string `json:"recommended_vendor"`
	Reason            string `json:"reason"`
	Summary           string `json:"summary"`
}

// ComparisonResult is the full output of comparing an RFP's proposals
type ComparisonResult struct {
	Comparison     []VendorComparison `json:"comparison"`
	Recommendation Recommendation     `json:"recommendation"`
}
