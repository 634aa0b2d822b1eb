package observability

import (
	"time"

	"github.com/rs/zerolog"
)

// KernelCall describes one finished sysctl(2) call.
type KernelCall struct {
	Phase   string
	Address string
	Outcome string
	OldLen  int
	NewLen  int
	Elapsed time.Duration
}

// ObserveKernelCall counts c and logs it. Successful calls log at trace,
// absent names at debug and every other rejection at warn.
func ObserveKernelCall(logger *zerolog.Logger, c KernelCall) {
	RecordKernelCall(c.Phase, c.Outcome)
	kernelCallSeconds.WithLabelValues(c.Phase).Observe(c.Elapsed.Seconds())

	event := logger.Trace()
	switch c.Outcome {
	case OutcomeOK:
	case "not_found":
		event = logger.Debug()
	default:
		event = logger.Warn()
	}
	event.
		Str("phase", c.Phase).
		Str("addr", c.Address).
		Str("outcome", c.Outcome).
		Int("old", c.OldLen).
		Int("new", c.NewLen).
		Dur("duration", c.Elapsed).
		Msg("kernel_call")
}
