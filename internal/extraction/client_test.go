package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfp-procurement-go/internal/model"
)

// fakeCompletionServer serves a canned chat-completion response and records
// the prompts it received
func fakeCompletionServer(t *testing.T, content string) (*httptest.Server, *[]string) {
	t.Helper()
	var prompts []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		for _, m := range req.Messages {
			prompts = append(prompts, m.Content)
		}

		resp := map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))

	return srv, &prompts
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL + "/v1",
	})
}

func TestTextToRFP(t *testing.T) {
	content := "```json\n" + `{
		"title": "Office Laptops",
		"description": "20 laptops for the engineering team",
		"budget": 30000,
		"delivery_days": 14,
		"payment_terms": "net 30",
		"warranty_required": "2 years",
		"items": [{"name": "laptop", "quantity": 20, "specifications": {"ram": "16GB"}}],
		"requirements": ["on-site support"]
	}` + "\n```"

	srv, prompts := fakeCompletionServer(t, content)
	defer srv.Close()

	client := newTestClient(srv.URL)
	fields, err := client.TextToRFP(context.Background(), "we need 20 laptops")
	require.NoError(t, err)

	assert.Equal(t, "Office Laptops", fields.Title)
	require.NotNil(t, fields.Budget)
	assert.Equal(t, 30000.0, *fields.Budget)
	require.NotNil(t, fields.DeliveryDays)
	assert.Equal(t, 14, *fields.DeliveryDays)
	require.Len(t, fields.Items, 1)
	assert.Equal(t, "laptop", fields.Items[0].Name)
	assert.Equal(t, 20, fields.Items[0].Quantity)
	assert.Equal(t, []string{"on-site support"}, fields.Requirements)

	// The user text must appear in the prompt sent upstream
	found := false
	for _, p := range *prompts {
		if strings.Contains(p, "we need 20 laptops") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTextToRFPMalformedResponse(t *testing.T) {
	srv, _ := fakeCompletionServer(t, "Sorry, I cannot help with that.")
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.TextToRFP(context.Background(), "we need 20 laptops")
	require.Error(t, err)

	var extractionErr *Error
	assert.ErrorAs(t, err, &extractionErr)
}

func TestEmailToProposal(t *testing.T) {
	content := `{
		"total_price": 28500.50,
		"delivery_days": 10,
		"payment_terms": "net 45",
		"warranty": "3 years",
		"items": [{"name": "laptop", "quantity": 20, "unit_price": 1425.03, "total_price": 28500.50}],
		"terms_conditions": "prices valid 30 days",
		"completeness_score": 0.9
	}`

	srv, prompts := fakeCompletionServer(t, content)
	defer srv.Close()

	rfpCtx := model.RFPContext{Title: "Office Laptops"}

	client := newTestClient(srv.URL)
	fields, extracted, err := client.EmailToProposal(context.Background(), "we can offer 20 laptops for $28,500.50", rfpCtx)
	require.NoError(t, err)

	require.NotNil(t, fields.TotalPrice)
	assert.Equal(t, 28500.50, *fields.TotalPrice)
	require.NotNil(t, fields.DeliveryDays)
	assert.Equal(t, 10, *fields.DeliveryDays)
	require.NotNil(t, fields.CompletenessScore)
	assert.Equal(t, 0.9, *fields.CompletenessScore)
	require.Len(t, fields.Items, 1)

	// The raw decoded object is preserved for traceability
	assert.Equal(t, "net 45", extracted["payment_terms"])

	found := false
	for _, p := range *prompts {
		if strings.Contains(p, "Office Laptops") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCompareProposals(t *testing.T) {
	content := `{
		"comparison": [
			{"vendor_name": "Acme", "score": 85, "strengths": ["cheap"], "weaknesses": ["slow"], "price_rank": 1, "delivery_rank": 2},
			{"vendor_name": "Globex", "score": 78, "strengths": ["fast"], "weaknesses": ["expensive"], "price_rank": 2, "delivery_rank": 1}
		],
		"recommendation": {"recommended_vendor": "Acme", "reason": "best value", "summary": "Acme wins on price"}
	}`

	srv, _ := fakeCompletionServer(t, content)
	defer srv.Close()

	summaries := []model.ProposalSummary{
		{VendorName: "Acme"},
		{VendorName: "Globex"},
	}

	client := newTestClient(srv.URL)
	result, err := client.CompareProposals(context.Background(), model.RFPContext{Title: "Office Laptops"}, summaries)
	require.NoError(t, err)

	require.Len(t, result.Comparison, 2)
	assert.Equal(t, "Acme", result.Comparison[0].VendorName)
	assert.Equal(t, 85.0, result.Comparison[0].Score)
	assert.Equal(t, "Acme", result.Recommendation.RecommendedVendor)
}

func TestCompareProposalsAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.CompareProposals(context.Background(), model.RFPContext{}, nil)
	require.Error(t, err)

	var extractionErr *Error
	assert.ErrorAs(t, err, &extractionErr)
}
