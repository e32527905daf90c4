package survey

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for survey answer handling.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidCategory indicates a categorical field holds a value outside
	// its enumerated option set. Surfaced to the caller, never auto-corrected.
	ErrInvalidCategory = constError("invalid category value")

	// ErrUnknownField indicates a JSON key that is not part of the survey
	// schema. Unknown keys are rejected at construction, not ignored.
	ErrUnknownField = constError("unknown survey field")

	// ErrInvalidValue indicates a numeric field or flag holds a value of the
	// wrong shape (non-integral, negative flag, null).
	ErrInvalidValue = constError("invalid field value")
)
