package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfp-procurement-go/internal/model"
)

func TestSendRFPWithoutCredentials(t *testing.T) {
	sender := NewSMTPSender(Config{
		Host: "smtp.example.com",
		Port: 587,
	})

	rfp := &model.RFP{ID: 1, Title: "Office Laptops"}
	err := sender.SendRFP(context.Background(), "vendor@example.com", "Acme", rfp)
	require.Error(t, err)

	var deliveryErr *DeliveryError
	assert.ErrorAs(t, err, &deliveryErr)
	assert.Contains(t, err.Error(), "failed to send email")
	assert.Contains(t, err.Error(), "credentials")
}

func TestSendRFPCancelledContext(t *testing.T) {
	sender := NewSMTPSender(Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user",
		Password: "pass",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.SendRFP(ctx, "vendor@example.com", "Acme", &model.RFP{ID: 1, Title: "Laptops"})
	require.Error(t, err)

	var deliveryErr *DeliveryError
	assert.ErrorAs(t, err, &deliveryErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildMessage(t *testing.T) {
	rfp := &model.RFP{
		ID:          7,
		Title:       "Office Laptops",
		Description: "20 laptops",
	}

	msg, err := buildMessage("buyer@example.com", "vendor@example.com", "Acme", rfp)
	require.NoError(t, err)

	raw := string(msg)
	assert.Contains(t, raw, "Subject: Request for Proposal: Office Laptops")
	assert.Contains(t, raw, "vendor@example.com")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "Dear Acme,")
}
