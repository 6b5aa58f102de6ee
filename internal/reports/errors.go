package reports

import (
	"fmt"

	"park-analytics/internal/shared/svcerrors"
)

const codeInvalidType = "INVALID_TYPE"

func errInvalidType() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidType,
		"Invalid report type. Use: visitors, operational, or attractions", nil)
}

func errStoreFailed(message string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(message, fmt.Errorf("store failed: %w", cause))
}
