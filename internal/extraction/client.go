package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"rfp-procurement-go/internal/model"
)

// Extractor converts unstructured text into the three fixed JSON shapes the
// workflow needs. Implementations make a single generation call per
// operation; there is no retry or multi-turn correction.
type Extractor interface {
	TextToRFP(ctx context.Context, text string) (*model.RFPFields, error)
	EmailToProposal(ctx context.Context, emailBody string, rfpCtx model.RFPContext) (*model.ProposalFields, map[string]interface{}, error)
	CompareProposals(ctx context.Context, rfpCtx model.RFPContext, summaries []model.ProposalSummary) (*model.ComparisonResult, error)
}

// Config holds the text-generation API settings
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// Client implements Extractor against an OpenAI-compatible chat completion
// endpoint. BaseURL is overridable so tests can point it at a local server.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
}

// NewClient creates a new extraction client
func NewClient(cfg Config) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &Client{
		api:         openai.NewClientWithConfig(clientConfig),
		model:       model,
		temperature: float32(temperature),
	}
}

// TextToRFP converts a natural-language procurement request into structured
// RFP fields.
func (c *Client) TextToRFP(ctx context.Context, text string) (*model.RFPFields, error) {
	prompt := fmt.Sprintf(`You are an AI assistant that helps convert procurement requests into structured RFPs.

User request: %s

Extract the following information and return it as a JSON object:
- title
- description
- budget
- delivery_days
- payment_terms
- warranty_required
- items (array with name, quantity, specifications)
- requirements (array)

Return ONLY valid JSON, no additional text.`, text)

	content, err := c.complete(ctx, "You extract structured data and always return valid JSON.", prompt)
	if err != nil {
		return nil, wrap("failed to parse RFP", err)
	}

	var fields model.RFPFields
	if err := c.decode(content, &fields); err != nil {
		return nil, wrap("failed to parse RFP", err)
	}

	logrus.Infof("Extracted RFP %q from free text", fields.Title)
	return &fields, nil
}

// EmailToProposal extracts structured proposal details from a vendor email.
// The second return value is the full decoded object, kept alongside the
// typed fields for traceability.
func (c *Client) EmailToProposal(ctx context.Context, emailBody string, rfpCtx model.RFPContext) (*model.ProposalFields, map[string]interface{}, error) {
	prompt := fmt.Sprintf(`You are an AI assistant that extracts proposal details from vendor email responses.

RFP Requirements:
%s

Vendor Email Response:
%s

Extract the following information and return it as JSON:
- total_price
- delivery_days
- payment_terms
- warranty
- items (with name, quantity, unit_price, total_price, specifications)
- terms_conditions
- completeness_score (0 to 1)

Return ONLY valid JSON, no additional text.`, renderRFPContext(rfpCtx), emailBody)

	content, err := c.complete(ctx, "Extract structured data and return JSON only.", prompt)
	if err != nil {
		return nil, nil, wrap("failed to extract proposal details", err)
	}

	raw, err := ExtractJSONObject(content)
	if err != nil {
		return nil, nil, wrap("failed to extract proposal details", err)
	}

	var fields model.ProposalFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, nil, wrap("failed to extract proposal details", err)
	}

	var full map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &full); err != nil {
		return nil, nil, wrap("failed to extract proposal details", err)
	}

	return &fields, full, nil
}

// CompareProposals asks the model to score, rank and recommend across all
// proposals for an RFP. Ranking logic is entirely the model's; the result
// is returned verbatim.
func (c *Client) CompareProposals(ctx context.Context, rfpCtx model.RFPContext, summaries []model.ProposalSummary) (*model.ComparisonResult, error) {
	summaryJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, wrap("failed to compare proposals", err)
	}

	prompt := fmt.Sprintf(`You are an AI assistant that helps procurement managers compare vendor proposals.

RFP Requirements:
Title: %s
Budget: %s
Delivery Required: %s days
Payment Terms Required: %s
Warranty Required: %s

Proposals:
%s

Return a JSON object with:
- comparison (array per vendor with vendor_name, score 0-100, strengths, weaknesses, price_rank, delivery_rank)
- recommendation (object with recommended_vendor, reason, summary)

Return JSON ONLY.`,
		rfpCtx.Title,
		orNA(floatString(rfpCtx.Budget)),
		orNA(intString(rfpCtx.DeliveryDays)),
		orNA(stringValue(rfpCtx.PaymentTerms)),
		orNA(stringValue(rfpCtx.WarrantyRequired)),
		string(summaryJSON))

	content, err := c.complete(ctx, "Compare proposals and output valid JSON only.", prompt)
	if err != nil {
		return nil, wrap("failed to compare proposals", err)
	}

	var result model.ComparisonResult
	if err := c.decode(content, &result); err != nil {
		return nil, wrap("failed to compare proposals", err)
	}

	return &result, nil
}

// complete makes a single chat completion call and returns the raw content
func (c *Client) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from generation API")
	}

	return resp.Choices[0].Message.Content, nil
}

// decode pulls the balanced JSON object out of content and unmarshals it
func (c *Client) decode(content string, v interface{}) error {
	raw, err := ExtractJSONObject(content)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), v)
}

// renderRFPContext renders the RFP summary block embedded into prompts
func renderRFPContext(rfpCtx model.RFPContext) string {
	itemsJSON, err := json.MarshalIndent(rfpCtx.Items, "", "  ")
	if err != nil {
		itemsJSON = []byte("[]")
	}

	return fmt.Sprintf(`RFP Title: %s
Budget: %s
Delivery Required: %s days
Payment Terms Required: %s
Warranty Required: %s
Items: %s`,
		rfpCtx.Title,
		orNA(floatString(rfpCtx.Budget)),
		orNA(intString(rfpCtx.DeliveryDays)),
		orNA(stringValue(rfpCtx.PaymentTerms)),
		orNA(stringValue(rfpCtx.WarrantyRequired)),
		string(itemsJSON))
}

func floatString(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%g", *f)
}

func intString(i *int) string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("%d", *i)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
