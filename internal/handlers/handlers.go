package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"rfp-procurement-go/internal/extraction"
	"rfp-procurement-go/internal/mailer"
	"rfp-procurement-go/internal/metrics"
	"rfp-procurement-go/internal/model"
	"rfp-procurement-go/internal/repository"
	"rfp-procurement-go/internal/scheduler"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	db        *gorm.DB
	repo      *repository.Repository
	extractor extraction.Extractor
	sender    mailer.Sender
	scheduler *scheduler.Scheduler
	metrics   *metrics.Metrics
}

// NewHandlers creates new HTTP handlers
func NewHandlers(db *gorm.DB, repo *repository.Repository, extractor extraction.Extractor, sender mailer.Sender, sched *scheduler.Scheduler, m *metrics.Metrics) *Handlers {
	return &Handlers{
		db:        db,
		repo:      repo,
		extractor: extractor,
		sender:    sender,
		scheduler: sched,
		metrics:   m,
	}
}

// SetupRoutes sets up all HTTP routes
func (h *Handlers) SetupRoutes(router *gin.Engine) {
	// Health check
	router.GET("/healthz", h.HealthCheck)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		vendors := api.Group("/vendors")
		{
			vendors.POST("", h.CreateVendor)
			vendors.GET("", h.GetVendors)
			vendors.GET("/:id", h.GetVendor)
			vendors.PUT("/:id", h.UpdateVendor)
			vendors.DELETE("/:id", h.DeleteVendor)
		}

		rfps := api.Group("/rfps")
		{
			rfps.POST("/from-text", h.CreateRFPFromText)
			rfps.POST("", h.CreateRFP)
			rfps.GET("", h.GetRFPs)
			rfps.GET("/:id", h.GetRFP)
			rfps.PUT("/:id", h.UpdateRFP)
			rfps.DELETE("/:id", h.DeleteRFP)
		}

		proposals := api.Group("/proposals")
		{
			proposals.POST("", h.CreateProposal)
			proposals.GET("", h.GetProposals)
			proposals.GET("/:id", h.GetProposal)
			proposals.PUT("/:id", h.UpdateProposal)
			proposals.DELETE("/:id", h.DeleteProposal)
			// Serves /proposals/rfp/:rfp_id/compare. The static "rfp"
			// segment cannot coexist with the ":id" wildcard in gin's
			// routing tree, so the wildcard is reused and checked in the
			// handler.
			proposals.GET("/:id/:rfp_id/compare", h.CompareProposals)
		}

		email := api.Group("/email")
		{
			email.POST("/send-rfp", h.SendRFP)
			email.POST("/receive", h.ReceiveEmail)
		}
	}
}

// errorJSON writes a uniform error payload
func errorJSON(c *gin.Context, code int, errType, message string) {
	c.JSON(code, model.ErrorResponse{
		Error:   errType,
		Message: message,
		Code:    code,
	})
}
