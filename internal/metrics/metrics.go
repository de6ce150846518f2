// Package metrics provides the MetricsRecorder interface and a noop implementation.
package metrics

import "time"

// MetricsRecorder is the interface for recording operational metrics.
type MetricsRecorder interface {
	RecordEncode(engine string, size int, d time.Duration)
	RecordDecode(engine string, size int, d time.Duration)
	RecordFileOp(op string, size int)
	RecordError(op string)
}

// Noop is a MetricsRecorder that discards all data.
type Noop struct{}

func (Noop) RecordEncode(engine string, size int, d time.Duration) {}
func (Noop) RecordDecode(engine string, size int, d time.Duration) {}
func (Noop) RecordFileOp(op string, size int)                      {}
func (Noop) RecordError(op string)                                 {}
