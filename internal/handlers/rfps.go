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

// CreateRFP creates an RFP from already-structured fields
func (h *Handlers) CreateRFP(c *gin.Context) {
	var req model.RFPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	rfp := model.RFP{
		Title:            req.Title,
		Description:      req.Description,
		Budget:           req.Budget,
		DeliveryDays:     req.DeliveryDays,
		PaymentTerms:     req.PaymentTerms,
		WarrantyRequired: req.WarrantyRequired,
		Items:            req.Items,
		Requirements:     req.Requirements,
		Status:           model.RFPStatusDraft,
	}

	if err := h.repo.CreateRFP(&rfp); err != nil {
		logrus.Errorf("Failed to create RFP: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Failed to create RFP", err.Error())
		return
	}

	c.JSON(http.StatusCreated, rfp)
}

// CreateRFPFromText structures a free-text procurement request into an RFP
// and persists it as a draft.
func (h *Handlers) CreateRFPFromText(c *gin.Context) {
	var req model.RFPFromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	h.metrics.ExtractionCalls.Inc()
	fields, err := h.extractor.TextToRFP(c.Request.Context(), req.Text)
	if err != nil {
		h.metrics.ExtractionFailures.Inc()
		logrus.Errorf("Failed to structure RFP from text: %v", err)
		errorJSON(c, http.StatusBadRequest, "Failed to parse RFP", err.Error())
		return
	}

	rfp := model.RFP{
		Title:            fields.Title,
		Description:      fields.Description,
		Budget:           fields.Budget,
		DeliveryDays:     fields.DeliveryDays,
		PaymentTerms:     fields.PaymentTerms,
		WarrantyRequired: fields.WarrantyRequired,
		Items:            fields.Items,
		Requirements:     fields.Requirements,
		Status:           model.RFPStatusDraft,
	}

	if err := h.repo.CreateRFP(&rfp); err != nil {
		logrus.Errorf("Failed to create RFP: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Failed to create RFP", err.Error())
		return
	}

	logrus.Infof("Created RFP %d from free text", rfp.ID)
	c.JSON(http.StatusCreated, rfp)
}

// GetRFPs lists all RFPs, newest first
func (h *Handlers) GetRFPs(c *gin.Context) {
	rfps, err := h.repo.ListRFPs()
	if err != nil {
		logrus.Errorf("Failed to list RFPs: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Failed to list RFPs", err.Error())
		return
	}

	c.JSON(http.StatusOK, rfps)
}

// GetRFP returns a single RFP by ID
func (h *Handlers) GetRFP(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
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

	c.JSON(http.StatusOK, rfp)
}

// UpdateRFP applies a partial update to an RFP, including status changes
func (h *Handlers) UpdateRFP(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid RFP ID", err.Error())
		return
	}

	var req model.RFPUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err.Error())
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

	if req.Title != nil {
		rfp.Title = *req.Title
	}
	if req.Description != nil {
		rfp.Description = *req.Description
	}
	if req.Budget != nil {
		rfp.Budget = req.Budget
	}
	if req.DeliveryDays != nil {
		rfp.DeliveryDays = req.DeliveryDays
	}
	if req.PaymentTerms != nil {
		rfp.PaymentTerms = req.PaymentTerms
	}
	if req.WarrantyRequired != nil {
		rfp.WarrantyRequired = req.WarrantyRequired
	}
	if req.Items != nil {
		rfp.Items = *req.Items
	}
	if req.Requirements != nil {
		rfp.Requirements = *req.Requirements
	}
	if req.Status != nil {
		rfp.Status = *req.Status
	}

	if err := h.repo.SaveRFP(rfp); err != nil {
		logrus.Errorf("Failed to update RFP %d: %v", id, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to update RFP", err.Error())
		return
	}

	c.JSON(http.StatusOK, rfp)
}

// DeleteRFP removes an RFP
func (h *Handlers) DeleteRFP(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid RFP ID", err.Error())
		return
	}

	if _, err := h.repo.GetRFP(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "RFP not found", "no RFP with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get RFP", err.Error())
		return
	}

	if err := h.repo.DeleteRFP(uint(id)); err != nil {
		logrus.Errorf("Failed to delete RFP %d: %v", id, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to delete RFP", err.Error())
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "RFP deleted"})
}
