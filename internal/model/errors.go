package model

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for artifact loading and inference.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrSchemaMismatch indicates the input columns do not exactly match the
	// columns the artifacts were trained on. The estimate is aborted rather
	// than truncated or reordered.
	ErrSchemaMismatch = constError("schema mismatch")

	// ErrInvalidArtifact indicates an artifact file that cannot be used:
	// unparseable JSON, unknown type, or inconsistent dimensions.
	ErrInvalidArtifact = constError("invalid model artifact")

	// ErrUnsupportedVersion indicates an artifact written for a different
	// schema major version than this build supports.
	ErrUnsupportedVersion = constError("unsupported artifact schema version")

	// ErrNotFinite indicates inference produced NaN or infinity.
	ErrNotFinite = constError("non-finite model output")
)
