package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	kernelCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mibctl",
			Subsystem: "kernel",
			Name:      "calls_total",
			Help:      "sysctl(2) calls issued, by phase and outcome.",
		},
		[]string{"phase", "outcome"},
	)
	kernelCallSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mibctl",
			Subsystem: "kernel",
			Name:      "call_duration_seconds",
			Help:      "sysctl(2) call latency, by phase.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"phase"},
	)
	localRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mibctl",
			Subsystem: "client",
			Name:      "local_rejections_total",
			Help:      "Requests rejected before reaching the kernel, by error kind.",
		},
		[]string{"kind"},
	)
)

// Registry holds the collectors. It is separate from the default registry so
// embedding programs can choose whether to expose it.
var Registry = prometheus.NewRegistry()

func RegisterMetrics() {
	registerOnce.Do(func() {
		Registry.MustRegister(kernelCalls, kernelCallSeconds, localRejections)
	})
}

// OutcomeOK labels a successful kernel call; failures use the errno class.
const OutcomeOK = "ok"

func RecordKernelCall(phase, outcome string) {
	RegisterMetrics()
	kernelCalls.WithLabelValues(phase, outcome).Inc()
}

func RecordLocalRejection(kind string) {
	RegisterMetrics()
	localRejections.WithLabelValues(kind).Inc()
}

// Gatherer exposes collected metrics for dumping from the CLI.
func Gatherer() prometheus.Gatherer {
	RegisterMetrics()
	return Registry
}
