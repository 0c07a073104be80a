package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	ExtractionCalls    prometheus.Counter
	ExtractionFailures prometheus.Counter
	EmailsSent         prometheus.Counter
	EmailsFailed       prometheus.Counter
	ProposalsReceived  prometheus.Counter
	TotalVendors       prometheus.Gauge
	OpenRFPs           prometheus.Gauge
	TotalProposals     prometheus.Gauge
}

// NewMetrics creates new Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		ExtractionCalls: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rfp_procurement_extraction_calls",
			Help: "Total number of extraction calls made to the generation API",
		}),
		ExtractionFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rfp_procurement_extraction_failures",
			Help: "Total number of failed extraction calls",
		}),
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rfp_procurement_emails_sent",
			Help: "Total number of RFP emails delivered to vendors",
		}),
		EmailsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rfp_procurement_emails_failed",
			Help: "Total number of RFP email deliveries that failed",
		}),
		ProposalsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rfp_procurement_proposals_received",
			Help: "Total number of vendor proposals received via email intake",
		}),
		TotalVendors: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "rfp_procurement_total_vendors",
			Help: "Number of registered vendors",
		}),
		OpenRFPs: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "rfp_procurement_open_rfps",
			Help: "Number of RFPs in draft or sent status",
		}),
		TotalProposals: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "rfp_procurement_total_proposals",
			Help: "Total number of stored proposals",
		}),
	}
}
