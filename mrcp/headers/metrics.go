package headers

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ghettovoice/gomrcp/mrcp"
)

// Metrics tracks Prometheus metrics of header view construction.
//
// Methods handle nil receiver gracefully, so a nil *Metrics acts as a no-op.
type Metrics struct {
	// ViewsBuilt counts built views.
	// Labels: resource=[speechsynth, speechrecog]
	ViewsBuilt *prometheus.CounterVec

	// MalformedFields counts header values present on a message but not valid text.
	// Labels: resource, field=<header name>
	MalformedFields *prometheus.CounterVec

	// VendorParamsDropped counts vendor-specific parameters dropped because
	// their name or value is absent or malformed.
	// Labels: resource
	VendorParamsDropped *prometheus.CounterVec
}

// NewMetrics creates and registers header view metrics.
// If registerer is nil, [prometheus.DefaultRegisterer] is used.
// It panics if the metrics are already registered with the registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		ViewsBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mrcp_header_views_built_total",
				Help: "Total typed header views built by resource",
			},
			[]string{"resource"},
		),
		MalformedFields: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mrcp_header_fields_malformed_total",
				Help: "Total header values dropped as malformed text by resource and field",
			},
			[]string{"resource", "field"},
		),
		VendorParamsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mrcp_header_vendor_params_dropped_total",
				Help: "Total vendor-specific parameters dropped by resource",
			},
			[]string{"resource"},
		),
	}

	registerer.MustRegister(
		m.ViewsBuilt,
		m.MalformedFields,
		m.VendorParamsDropped,
	)
	return m
}

func (m *Metrics) viewBuilt(resource mrcp.ResourceType) {
	if m == nil {
		return
	}
	m.ViewsBuilt.WithLabelValues(resource.String()).Inc()
}

func (m *Metrics) malformedField(resource mrcp.ResourceType, field string) {
	if m == nil {
		return
	}
	m.MalformedFields.WithLabelValues(resource.String(), field).Inc()
}

func (m *Metrics) vendorParamsDropped(resource mrcp.ResourceType, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.VendorParamsDropped.WithLabelValues(resource.String()).Add(float64(n))
}
