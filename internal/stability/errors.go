package stability

import "errors"

var (
	// ErrEmptyBatch is returned when no logs were selected for analysis.
	ErrEmptyBatch = errors.New("no logs selected")

	// ErrBadSubsetSize is returned when k lies outside [1, n].
	ErrBadSubsetSize = errors.New("combination size out of range")

	// ErrIncompatibleBatch is returned when the selected logs disagree on
	// image path, coarseness or segment size.
	ErrIncompatibleBatch = errors.New("selected logs are not comparable")

	// ErrMalformedLog is returned when a log's content cannot be turned
	// into a valid cell set.
	ErrMalformedLog = errors.New("malformed log")

	// ErrLogUnavailable is returned when a referenced log cannot be
	// loaded from storage.
	ErrLogUnavailable = errors.New("log unavailable")

	// ErrTooManyCombinations is returned when C(n, k) exceeds the
	// configured ceiling.
	ErrTooManyCombinations = errors.New("too many combinations")
)

// IsValidationError reports whether err is any of the input-shape errors
// above, i.e. a problem with the request rather than with the server.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrEmptyBatch,
		ErrBadSubsetSize,
		ErrIncompatibleBatch,
		ErrMalformedLog,
		ErrLogUnavailable,
		ErrTooManyCombinations,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
