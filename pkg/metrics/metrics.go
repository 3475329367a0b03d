package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RPC metrics
	RPCRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rlvm_rpc_requests_total",
			Help: "Total number of gRPC requests by service, method and status code",
		},
		[]string{"service", "method", "code"},
	)

	RPCRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rlvm_rpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)

	// Host metrics
	MountOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rlvm_mount_operations_total",
			Help: "Total number of mount and unmount operations by result",
		},
		[]string{"op", "result"},
	)

	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rlvm_host_commands_total",
			Help: "Total number of LVM and mkfs command invocations by result",
		},
		[]string{"command", "result"},
	)

	CommandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rlvm_host_command_duration_seconds",
			Help:    "Host command duration in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"command"},
	)

	// Volume group metrics
	ProvisionableBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rlvm_provisionable_bytes",
			Help: "Bytes that can still be provisioned in the managed volume group",
		},
	)

	LogicalVolumesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rlvm_logical_volumes_total",
			Help: "Number of logical volumes in the managed volume group at the last listing",
		},
	)
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultNoop    = "noop"
)

func init() {
	// Register all metrics
	prometheus.MustRegister(RPCRequestsTotal)
	prometheus.MustRegister(RPCRequestDuration)
	prometheus.MustRegister(MountOperationsTotal)
	prometheus.MustRegister(CommandsTotal)
	prometheus.MustRegister(CommandDuration)
	prometheus.MustRegister(ProvisionableBytes)
	prometheus.MustRegister(LogicalVolumesTotal)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// Timer measures the duration of an operation.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the time elapsed since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveDuration records the elapsed time on a histogram.
func (t *Timer) ObserveDuration(h prometheus.Observer) {
	h.Observe(t.Duration().Seconds())
}

// ObserveDurationVec records the elapsed time on a histogram vector.
func (t *Timer) ObserveDurationVec(h *prometheus.HistogramVec, labels ...string) {
	h.WithLabelValues(labels...).Observe(t.Duration().Seconds())
}
