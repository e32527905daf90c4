package history

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for history storage.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrNotFound indicates no history file exists yet for a user. This is
	// the valid empty state, distinct from a corrupted file, and callers
	// must handle it explicitly.
	ErrNotFound = constError("no history for user")

	// ErrCorrupted indicates the history file exists but cannot be read or
	// parsed. Hard failure; the store never attempts repair.
	ErrCorrupted = constError("history file corrupted")

	// ErrInvalidUserID indicates a user identifier that is not a safe file
	// name component.
	ErrInvalidUserID = constError("invalid user id")
)
