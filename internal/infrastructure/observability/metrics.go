package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// CodecOperations counts parcel encode and decode calls by outcome.
	CodecOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "latlng",
			Name:      "codec_operations_total",
			Help:      "Total number of parcel encode and decode operations",
		},
		[]string{"operation", "outcome"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "latlng",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	once sync.Once
)

// InitMetrics registers all collectors with the default registry. Safe to
// call more than once.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.MustRegister(CodecOperations)
		prometheus.DefaultRegisterer.MustRegister(HTTPRequestDuration)
	})
}

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// CodecRecorder feeds codec outcomes into CodecOperations.
type CodecRecorder struct{}

func NewCodecRecorder() *CodecRecorder {
	InitMetrics()
	return &CodecRecorder{}
}

func (CodecRecorder) Observe(op string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	CodecOperations.WithLabelValues(op, outcome).Inc()
}
