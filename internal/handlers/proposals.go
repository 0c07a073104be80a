package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rfp-procurement-go/internal/model"
	"rfp-procurement-go/internal/repository"
)

// CreateProposal records a proposal manually, outside the email intake path
func (h *Handlers) CreateProposal(c *gin.Context) {
	var req model.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if _, err := h.repo.GetRFP(req.RFPID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "RFP not found", "no RFP with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get RFP", err.Error())
		return
	}
	if _, err := h.repo.GetVendor(req.VendorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Vendor not found", "no vendor with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get vendor", err.Error())
		return
	}

	proposal := model.Proposal{
		RFPID:           req.RFPID,
		VendorID:        req.VendorID,
		TotalPrice:      req.TotalPrice,
		DeliveryDays:    req.DeliveryDays,
		PaymentTerms:    req.PaymentTerms,
		Warranty:        req.Warranty,
		Items:           req.Items,
		TermsConditions: req.TermsConditions,
		RawResponse:     req.RawResponse,
	}

	if err := h.repo.CreateProposal(&proposal); err != nil {
		logrus.Errorf("Failed to create proposal: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Failed to create proposal", err.Error())
		return
	}

	c.JSON(http.StatusCreated, proposal)
}

// GetProposals lists proposals, optionally filtered by ?rfp_id=
func (h *Handlers) GetProposals(c *gin.Context) {
	var rfpID *uint
	if raw := c.Query("rfp_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			errorJSON(c, http.StatusBadRequest, "Invalid RFP ID", err.Error())
			return
		}
		id := uint(parsed)
		rfpID = &id
	}

	proposals, err := h.repo.ListProposals(rfpID)
	if err != nil {
		logrus.Errorf("Failed to list proposals: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Failed to list proposals", err.Error())
		return
	}

	c.JSON(http.StatusOK, proposals)
}

// GetProposal returns a single proposal by ID, with its vendor
func (h *Handlers) GetProposal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid proposal ID", err.Error())
		return
	}

	proposal, err := h.repo.GetProposal(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Proposal not found", "no proposal with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get proposal", err.Error())
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// UpdateProposal applies a partial update to a proposal
func (h *Handlers) UpdateProposal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid proposal ID", err.Error())
		return
	}

	var req model.ProposalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	proposal, err := h.repo.GetProposal(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Proposal not found", "no proposal with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get proposal", err.Error())
		return
	}

	if req.TotalPrice != nil {
		proposal.TotalPrice = req.TotalPrice
	}
	if req.DeliveryDays != nil {
		proposal.DeliveryDays = req.DeliveryDays
	}
	if req.PaymentTerms != nil {
		proposal.PaymentTerms = req.PaymentTerms
	}
	if req.Warranty != nil {
		proposal.Warranty = req.Warranty
	}
	if req.Items != nil {
		proposal.Items = *req.Items
	}
	if req.TermsConditions != nil {
		proposal.TermsConditions = req.TermsConditions
	}

	if err := h.repo.SaveProposal(proposal); err != nil {
		logrus.Errorf("Failed to update proposal %d: %v", id, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to update proposal", err.Error())
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// DeleteProposal removes a proposal
func (h *Handlers) DeleteProposal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid proposal ID", err.Error())
		return
	}

	if _, err := h.repo.GetProposal(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Proposal not found", "no proposal with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get proposal", err.Error())
		return
	}

	if err := h.repo.DeleteProposal(uint(id)); err != nil {
		logrus.Errorf("Failed to delete proposal %d: %v", id, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to delete proposal", err.Error())
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "proposal deleted"})
}

// CompareProposals runs an AI comparison across every proposal received for
// an RFP and returns scores, ranks and a recommendation.
func (h *Handlers) CompareProposals(c *gin.Context) {
	if c.Param("id") != "rfp" {
		errorJSON(c, http.StatusNotFound, "Not found", "unknown route")
		return
	}

	id, err := strconv.ParseUint(c.Param("rfp_id"), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid RFP ID", err.Error())
		return
	}

	rfp, err := h.repo.GetRFP(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "RFP not found", "no RFP with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get RFP", err.Error())
		return
	}

	rfpID := uint(id)
	proposals, err := h.repo.ListProposals(&rfpID)
	if err != nil {
		logrus.Errorf("Failed to list proposals for RFP %d: %v", id, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to list proposals", err.Error())
		return
	}
	if len(proposals) == 0 {
		errorJSON(c, http.StatusNotFound, "No proposals found", "no proposals received for this RFP")
		return
	}

	summaries := make([]model.ProposalSummary, 0, len(proposals))
	for i := range proposals {
		name := "Unknown"
		if proposals[i].Vendor != nil {
			name = proposals[i].Vendor.Name
		}
		summaries = append(summaries, model.SummaryOf(&proposals[i], name))
	}

	h.metrics.ExtractionCalls.Inc()
	result, err := h.extractor.CompareProposals(c.Request.Context(), model.RFPContextOf(rfp), summaries)
	if err != nil {
		h.metrics.ExtractionFailures.Inc()
		logrus.Errorf("Failed to compare proposals for RFP %d: %v", id, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to compare proposals", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
