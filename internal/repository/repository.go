package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rfp-procurement-go/internal/model"
)

// ErrNotFound is returned when a referenced record does not exist
var ErrNotFound = errors.New("record not found")

// Repository wraps all database access for vendors, RFPs and proposals
type Repository struct {
	db *gorm.DB
}

// New creates a new repository
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ---- Vendors ----

func (r *Repository) CreateVendor(vendor *model.Vendor) error {
	if err := r.db.Create(vendor).Error; err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

func (r *Repository) GetVendor(id uint) (*model.Vendor, error) {
	var vendor model.Vendor
	result := r.db.First(&vendor, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vendor: %w", result.Error)
	}
	return &vendor, nil
}

// GetVendorByEmail resolves a vendor by exact email match
func (r *Repository) GetVendorByEmail(email string) (*model.Vendor, error) {
	var vendor model.Vendor
	result := r.db.Where("email = ?", email).First(&vendor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vendor by email: %w", result.Error)
	}
	return &vendor, nil
}

// GetVendorsByIDs returns the vendors for the given ids. ErrNotFound is
// returned when any id does not resolve, so dispatch is all-or-nothing.
func (r *Repository) GetVendorsByIDs(ids []uint) ([]model.Vendor, error) {
	var vendors []model.Vendor
	result := r.db.Where("id IN ?", ids).Find(&vendors)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get vendors: %w", result.Error)
	}
	if len(vendors) != len(ids) {
		return nil, ErrNotFound
	}
	return vendors, nil
}

func (r *Repository) ListVendors() ([]model.Vendor, error) {
	var vendors []model.Vendor
	if err := r.db.Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

func (r *Repository) SaveVendor(vendor *model.Vendor) error {
	if err := r.db.Save(vendor).Error; err != nil {
		return fmt.Errorf("failed to save vendor: %w", err)
	}
	return nil
}

// DeleteVendor removes a vendor. Existing proposals keep their vendor id;
// deletion neither cascades nor blocks.
func (r *Repository) DeleteVendor(id uint) error {
	if err := r.db.Delete(&model.Vendor{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return nil
}

func (r *Repository) CountVendors() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Vendor{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count vendors: %w", err)
	}
	return count, nil
}

// ---- RFPs ----

func (r *Repository) CreateRFP(rfp *model.RFP) error {
	if rfp.Status == "" {
		rfp.Status = model.RFPStatusDraft
	}
	if err := r.db.Create(rfp).Error; err != nil {
		return fmt.Errorf("failed to create RFP: %w", err)
	}
	return nil
}

func (r *Repository) GetRFP(id uint) (*model.RFP, error) {
	var rfp model.RFP
	result := r.db.First(&rfp, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get RFP: %w", result.Error)
	}
	return &rfp, nil
}

// ListRFPs returns all RFPs, newest first
func (r *Repository) ListRFPs() ([]model.RFP, error) {
	var rfps []model.RFP
	if err := r.db.Order("created_at DESC").Find(&rfps).Error; err != nil {
		return nil, fmt.Errorf("failed to list RFPs: %w", err)
	}
	return rfps, nil
}

func (r *Repository) SaveRFP(rfp *model.RFP) error {
	if err := r.db.Save(rfp).Error; err != nil {
		return fmt.Errorf("failed to save RFP: %w", err)
	}
	return nil
}

func (r *Repository) DeleteRFP(id uint) error {
	if err := r.db.Delete(&model.RFP{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete RFP: %w", err)
	}
	return nil
}

func (r *Repository) CountRFPsByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.RFP{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count RFPs: %w", err)
	}
	return count, nil
}

// ---- Proposals ----

func (r *Repository) CreateProposal(p *model.Proposal) error {
	if p.ReceivedAt.IsZero() {
		p.ReceivedAt = time.Now()
	}
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create proposal: %w", err)
	}
	return nil
}

func (r *Repository) GetProposal(id uint) (*model.Proposal, error) {
	var p model.Proposal
	result := r.db.Preload("Vendor").First(&p, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", result.Error)
	}
	return &p, nil
}

// ListProposals returns proposals with their vendors, optionally filtered
// by RFP
func (r *Repository) ListProposals(rfpID *uint) ([]model.Proposal, error) {
	query := r.db.Preload("Vendor")
	if rfpID != nil {
		query = query.Where("rfp_id = ?", *rfpID)
	}

	var proposals []model.Proposal
	if err := query.Find(&proposals).Error; err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

func (r *Repository) SaveProposal(p *model.Proposal) error {
	if err := r.db.Save(p).Error; err != nil {
		return fmt.Errorf("failed to save proposal: %w", err)
	}
	return nil
}

func (r *Repository) DeleteProposal(id uint) error {
	if err := r.db.Delete(&model.Proposal{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	return nil
}

func (r *Repository) CountProposals() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Proposal{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count proposals: %w", err)
	}
	return count, nil
}

// GetProposalByRFPAndVendor finds the unique proposal for an (RFP, vendor)
// pair, or ErrNotFound
func (r *Repository) GetProposalByRFPAndVendor(rfpID, vendorID uint) (*model.Proposal, error) {
	var p model.Proposal
	result := r.db.Where("rfp_id = ? AND vendor_id = ?", rfpID, vendorID).First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", result.Error)
	}
	return &p, nil
}

// UpsertProposal inserts the proposal or, when one already exists for the
// same (RFP, vendor) pair, overwrites every field except the two keys.
// Fields absent from the new extraction end up null. Returns whether a new
// row was created.
func (r *Repository) UpsertProposal(p *model.Proposal) (bool, error) {
	existing, err := r.GetProposalByRFPAndVendor(p.RFPID, p.VendorID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return false, err
		}
		if err := r.CreateProposal(p); err != nil {
			return false, err
		}
		return true, nil
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	if p.ReceivedAt.IsZero() {
		p.ReceivedAt = time.Now()
	}
	if err := r.db.Save(p).Error; err != nil {
		return false, fmt.Errorf("failed to update proposal: %w", err)
	}
	return false, nil
}
