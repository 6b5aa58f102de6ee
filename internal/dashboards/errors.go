package dashboards

import (
	"fmt"

	"park-analytics/internal/shared/svcerrors"
)

const codeInvalidData = "INVALID_DATA"

func errInvalidData(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidData, msg, nil)
}

func errStoreFailed(message string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(message, fmt.Errorf("store failed: %w", cause))
}
