package report

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for report rendering.
var (
	// ErrChartCaptureUnavailable is returned when the chart bitmap cannot be
	// produced. No document is emitted in that case.
	ErrChartCaptureUnavailable = constError("chart capture unavailable")
)
