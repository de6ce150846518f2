package metrics_test

import (
	"testing"
	"time"

	"github.com/AndrewDonelson/sera/internal/metrics"
)

func TestNoop_ImplementsInterface(t *testing.T) {
	var r metrics.MetricsRecorder = metrics.Noop{}
	r.RecordEncode("json", 128, time.Millisecond)
	r.RecordDecode("json", 128, time.Millisecond)
	r.RecordFileOp("write", 128)
	r.RecordError("encode")
}
