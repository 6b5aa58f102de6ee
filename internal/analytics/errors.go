package analytics

import (
	"fmt"

	"park-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidData   = "INVALID_DATA"
	codeInvalidRating = "INVALID_RATING"
)

func errInvalidData(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidData, msg, nil)
}

func errInvalidRating() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRating, "Rating must be an integer between 1 and 5", nil)
}

// errStoreFailed wraps a persistence failure. The message is the client-safe
// text; cause stays internal.
func errStoreFailed(message string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(message, fmt.Errorf("store failed: %w", cause))
}
