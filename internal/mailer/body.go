package mailer

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"rfp-procurement-go/internal/model"
)

// RenderTextBody builds the plain-text email body for an RFP. Optional
// fields are omitted entirely when unset rather than rendered empty.
func RenderTextBody(vendorName string, rfp *model.RFP) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", vendorName)
	b.WriteString("We are requesting a proposal for the following procurement:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", rfp.Title)
	fmt.Fprintf(&b, "Description: %s\n", rfp.Description)

	if rfp.Budget != nil {
		fmt.Fprintf(&b, "Budget: %s\n", FormatCurrency(*rfp.Budget))
	}
	if rfp.DeliveryDays != nil {
		fmt.Fprintf(&b, "Delivery Required: %d days\n", *rfp.DeliveryDays)
	}
	if rfp.PaymentTerms != nil {
		fmt.Fprintf(&b, "Payment Terms Required: %s\n", *rfp.PaymentTerms)
	}
	if rfp.WarrantyRequired != nil {
		fmt.Fprintf(&b, "Warranty Required: %s\n", *rfp.WarrantyRequired)
	}

	if len(rfp.Items) > 0 {
		b.WriteString("\nItems Required:\n")
		for _, item := range rfp.Items {
			fmt.Fprintf(&b, "- %s", item.Name)
			if item.Quantity > 0 {
				fmt.Fprintf(&b, " (Quantity: %d)", item.Quantity)
			}
			if specs := formatSpecs(item.Specifications); specs != "" {
				fmt.Fprintf(&b, " - %s", specs)
			}
			b.WriteString("\n")
		}
	}

	if len(rfp.Requirements) > 0 {
		b.WriteString("\nAdditional Requirements:\n")
		for _, req := range rfp.Requirements {
			fmt.Fprintf(&b, "- %s\n", req)
		}
	}

	b.WriteString("\n\nPlease reply to this email with your proposal including:\n")
	b.WriteString("- Total price\n")
	b.WriteString("- Delivery timeline\n")
	b.WriteString("- Payment terms\n")
	b.WriteString("- Warranty information\n")
	b.WriteString("- Itemized pricing (if applicable)\n")
	b.WriteString("- Any terms and conditions\n\n")
	b.WriteString("Thank you for your interest.\n\nBest regards,\nProcurement Team\n")

	return b.String()
}

// RenderHTMLBody builds the HTML email body for an RFP
func RenderHTMLBody(vendorName string, rfp *model.RFP) string {
	var b strings.Builder

	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<h2>Request for Proposal: %s</h2>", html.EscapeString(rfp.Title))
	fmt.Fprintf(&b, "<p>Dear %s,</p>", html.EscapeString(vendorName))
	b.WriteString("<p>We are requesting a proposal for the following procurement:</p>")

	b.WriteString("<h3>Details:</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>Title:</strong> %s</li>", html.EscapeString(rfp.Title))
	fmt.Fprintf(&b, "<li><strong>Description:</strong> %s</li>", html.EscapeString(rfp.Description))
	if rfp.Budget != nil {
		fmt.Fprintf(&b, "<li><strong>Budget:</strong> %s</li>", FormatCurrency(*rfp.Budget))
	}
	if rfp.DeliveryDays != nil {
		fmt.Fprintf(&b, "<li><strong>Delivery Required:</strong> %d days</li>", *rfp.DeliveryDays)
	}
	if rfp.PaymentTerms != nil {
		fmt.Fprintf(&b, "<li><strong>Payment Terms Required:</strong> %s</li>", html.EscapeString(*rfp.PaymentTerms))
	}
	if rfp.WarrantyRequired != nil {
		fmt.Fprintf(&b, "<li><strong>Warranty Required:</strong> %s</li>", html.EscapeString(*rfp.WarrantyRequired))
	}
	b.WriteString("</ul>")

	if len(rfp.Items) > 0 {
		b.WriteString("<h3>Items Required:</h3><ul>")
		for _, item := range rfp.Items {
			fmt.Fprintf(&b, "<li><strong>%s</strong>", html.EscapeString(item.Name))
			if item.Quantity > 0 {
				fmt.Fprintf(&b, " (Quantity: %d)", item.Quantity)
			}
			if specs := formatSpecs(item.Specifications); specs != "" {
				fmt.Fprintf(&b, " - %s", html.EscapeString(specs))
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}

	if len(rfp.Requirements) > 0 {
		b.WriteString("<h3>Additional Requirements:</h3><ul>")
		for _, req := range rfp.Requirements {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(req))
		}
		b.WriteString("</ul>")
	}

	b.WriteString("<h3>Please reply to this email with your proposal including:</h3><ul>")
	b.WriteString("<li>Total price</li>")
	b.WriteString("<li>Delivery timeline</li>")
	b.WriteString("<li>Payment terms</li>")
	b.WriteString("<li>Warranty information</li>")
	b.WriteString("<li>Itemized pricing (if applicable)</li>")
	b.WriteString("<li>Any terms and conditions</li>")
	b.WriteString("</ul>")
	b.WriteString("<p>Thank you for your interest.</p>")
	b.WriteString("<p>Best regards,<br>Procurement Team</p>")
	b.WriteString("</body></html>")

	return b.String()
}

// FormatCurrency renders an amount as US dollars with thousands grouping,
// e.g. 12345.6 -> $12,345.60
func FormatCurrency(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var grouped strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(ch)
	}

	return sign + "$" + grouped.String() + fracPart
}

// formatSpecs renders a specification map as "key: value, key: value"
func formatSpecs(specs map[string]string) string {
	if len(specs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, specs[k]))
	}
	return strings.Join(parts, ", ")
}
