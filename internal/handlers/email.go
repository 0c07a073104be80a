package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rfp-procurement-go/internal/model"
	"rfp-procurement-go/internal/repository"
)

// subjectRFPPattern pulls an RFP id out of subjects like "Re: RFP #12" or
// "RFP: 12 quote"
var subjectRFPPattern = regexp.MustCompile(`(?i)RFP[:\s#]*(\d+)`)

// SendRFP dispatches an RFP by email to the selected vendors. Vendor
// resolution is all-or-nothing; delivery is attempted per vendor and the
// per-vendor outcomes are reported. The RFP is marked sent regardless of
// delivery failures.
func (h *Handlers) SendRFP(c *gin.Context) {
	var req model.SendRFPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	rfp, err := h.repo.GetRFP(req.RFPID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "RFP not found", "no RFP with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get RFP", err.Error())
		return
	}

	vendors, err := h.repo.GetVendorsByIDs(req.VendorIDs)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Vendor not found", "one or more vendor IDs do not exist")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get vendors", err.Error())
		return
	}

	results := make([]model.SendResult, 0, len(vendors))
	sent := 0
	for _, vendor := range vendors {
		result := model.SendResult{
			VendorID:   vendor.ID,
			VendorName: vendor.Name,
		}

		if err := h.sender.SendRFP(c.Request.Context(), vendor.Email, vendor.Name, rfp); err != nil {
			h.metrics.EmailsFailed.Inc()
			logrus.Errorf("Failed to send RFP %d to vendor %d (%s): %v", rfp.ID, vendor.ID, vendor.Email, err)
			result.Status = "failed"
			result.Error = err.Error()
		} else {
			h.metrics.EmailsSent.Inc()
			logrus.Infof("Sent RFP %d to vendor %d (%s)", rfp.ID, vendor.ID, vendor.Email)
			result.Status = "sent"
			sent++
		}

		results = append(results, result)
	}

	rfp.Status = model.RFPStatusSent
	if err := h.repo.SaveRFP(rfp); err != nil {
		logrus.Errorf("Failed to mark RFP %d as sent: %v", rfp.ID, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to update RFP", err.Error())
		return
	}

	c.JSON(http.StatusOK, model.SendRFPResponse{
		Message: fmt.Sprintf("RFP sent to %d of %d vendors", sent, len(vendors)),
		Results: results,
	})
}

// ReceiveEmail ingests a vendor reply. The target RFP comes from the
// explicit rfp_id when given, otherwise from the subject line. The body is
// run through extraction and the result stored as the vendor's proposal for
// that RFP, replacing any earlier one.
func (h *Handlers) ReceiveEmail(c *gin.Context) {
	var req model.ReceiveEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	rfpID, ok := resolveRFPID(&req)
	if !ok {
		errorJSON(c, http.StatusBadRequest, "Cannot determine RFP", "no rfp_id given and none found in the subject")
		return
	}

	rfp, err := h.repo.GetRFP(rfpID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "RFP not found", "no RFP with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get RFP", err.Error())
		return
	}

	vendor, err := h.repo.GetVendorByEmail(req.FromEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Vendor not found", "no vendor registered with this email address")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get vendor", err.Error())
		return
	}

	h.metrics.ExtractionCalls.Inc()
	fields, extracted, err := h.extractor.EmailToProposal(c.Request.Context(), req.Body, model.RFPContextOf(rfp))
	if err != nil {
		h.metrics.ExtractionFailures.Inc()
		logrus.Errorf("Failed to extract proposal from email by %s: %v", req.FromEmail, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to extract proposal details", err.Error())
		return
	}

	proposal := model.Proposal{
		RFPID:             rfp.ID,
		VendorID:          vendor.ID,
		TotalPrice:        fields.TotalPrice,
		DeliveryDays:      fields.DeliveryDays,
		PaymentTerms:      fields.PaymentTerms,
		Warranty:          fields.Warranty,
		Items:             fields.Items,
		TermsConditions:   fields.TermsConditions,
		RawResponse:       req.Body,
		ExtractedData:     extracted,
		CompletenessScore: fields.CompletenessScore,
	}

	created, err := h.repo.UpsertProposal(&proposal)
	if err != nil {
		logrus.Errorf("Failed to store proposal from %s for RFP %d: %v", req.FromEmail, rfp.ID, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to store proposal", err.Error())
		return
	}

	h.metrics.ProposalsReceived.Inc()
	if created {
		logrus.Infof("Recorded new proposal %d from vendor %d for RFP %d", proposal.ID, vendor.ID, rfp.ID)
	} else {
		logrus.Infof("Replaced proposal %d from vendor %d for RFP %d", proposal.ID, vendor.ID, rfp.ID)
	}

	c.JSON(http.StatusOK, proposal)
}

// resolveRFPID picks the explicit id when present, otherwise scans the
// subject line
func resolveRFPID(req *model.ReceiveEmailRequest) (uint, bool) {
	if req.RFPID != nil {
		return *req.RFPID, true
	}

	match := subjectRFPPattern.FindStringSubmatch(req.Subject)
	if match == nil {
		return 0, false
	}

	id, err := strconv.ParseUint(match[1], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
