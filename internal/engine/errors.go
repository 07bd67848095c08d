package engine

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for the calculation pipeline.
var (
	// ErrInvalidQuantity reports a non-numeric or non-positive quantity. It is
	// never fatal: the quantity is clamped to 1 and the error is only returned
	// alongside the clamped value so callers can log it.
	ErrInvalidQuantity = constError("invalid quantity")

	// ErrIndexOutOfRange reports a removal outside the line-item list.
	ErrIndexOutOfRange = constError("line item index out of range")

	// ErrInvalidSettings reports a Settings value that cannot be used.
	ErrInvalidSettings = constError("invalid footprint settings")
)
