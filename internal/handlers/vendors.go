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

// CreateVendor registers a new vendor
func (h *Handlers) CreateVendor(c *gin.Context) {
	var req model.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	vendor := model.Vendor{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		Notes:         req.Notes,
	}

	if err := h.repo.CreateVendor(&vendor); err != nil {
		logrus.Errorf("Failed to create vendor: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Failed to create vendor", err.Error())
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// GetVendors lists all vendors
func (h *Handlers) GetVendors(c *gin.Context) {
	vendors, err := h.repo.ListVendors()
	if err != nil {
		logrus.Errorf("Failed to list vendors: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Failed to list vendors", err.Error())
		return
	}

	c.JSON(http.StatusOK, vendors)
}

// GetVendor returns a single vendor by ID
func (h *Handlers) GetVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid vendor ID", err.Error())
		return
	}

	vendor, err := h.repo.GetVendor(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Vendor not found", "no vendor with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get vendor", err.Error())
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// UpdateVendor applies a partial update to a vendor
func (h *Handlers) UpdateVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid vendor ID", err.Error())
		return
	}

	var req model.VendorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	vendor, err := h.repo.GetVendor(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Vendor not found", "no vendor with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get vendor", err.Error())
		return
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.ContactPerson != nil {
		vendor.ContactPerson = *req.ContactPerson
	}
	if req.Notes != nil {
		vendor.Notes = *req.Notes
	}

	if err := h.repo.SaveVendor(vendor); err != nil {
		logrus.Errorf("Failed to update vendor %d: %v", id, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to update vendor", err.Error())
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// DeleteVendor removes a vendor. Proposals already received from the vendor
// are kept.
func (h *Handlers) DeleteVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid vendor ID", err.Error())
		return
	}

	if _, err := h.repo.GetVendor(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Vendor not found", "no vendor with the given ID")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to get vendor", err.Error())
		return
	}

	if err := h.repo.DeleteVendor(uint(id)); err != nil {
		logrus.Errorf("Failed to delete vendor %d: %v", id, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to delete vendor", err.Error())
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "vendor deleted"})
}
