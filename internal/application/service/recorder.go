package service

// Recorder receives pipeline events for metrics.
type Recorder interface {
	RenderCompleted(engine string, err error)
	TransformCompleted(format string)
	FiscalFallback(reason string)
}

// Fiscal fallback reasons.
const (
	FallbackMissingSnapshot = "missing_snapshot"
	FallbackLookupError     = "lookup_error"
)

type nopRecorder struct{}

func (nopRecorder) RenderCompleted(string, error) {}
func (nopRecorder) TransformCompleted(string)     {}
func (nopRecorder) FiscalFallback(string)         {}

// NopRecorder discards every event.
func NopRecorder() Recorder { return nopRecorder{} }
