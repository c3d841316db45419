package domq

import "errors"

// Sentinel errors for resolution.
var (
	// ErrInvalidInput is returned by Resolve for inputs that are neither a
	// selector string, a node, nor a node slice. The reference behavior for
	// such inputs was a silent no-op; failing fast here is deliberate.
	ErrInvalidInput = errors.New("domq: unsupported input type")
)

// IsInvalidInput checks if err came from an unrecognized Resolve input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
