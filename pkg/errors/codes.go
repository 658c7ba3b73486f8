package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every module.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeTimeout            ErrorCode = "COMMON_007"
	ErrCodeValidation         ErrorCode = "COMMON_008"
	ErrCodeSerialization      ErrorCode = "COMMON_009"
	ErrCodeDatabaseError      ErrorCode = "COMMON_010"
	ErrCodeCacheError         ErrorCode = "COMMON_011"
)

// Aliases used throughout the codebase.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeRateLimit    = ErrCodeTooManyRequests
	CodeTimeout      = ErrCodeTimeout
	CodeDBError      = ErrCodeDatabaseError
	CodeCacheError   = ErrCodeCacheError
	CodeOK           = ErrorCode("OK")
)

// Source (external data provider) error codes.
//
// The distinction between SRC_001 (the provider could not be reached or kept
// failing) and SRC_005 (the provider answered and had nothing) matters: an
// unavailable source triggers fallback to the next provider, while an empty
// answer is terminal for that provider and is never retried.
const (
	ErrCodeSourceUnavailable ErrorCode = "SRC_001"
	ErrCodeSourceRateLimited ErrorCode = "SRC_002"
	ErrCodeSourceAuthMissing ErrorCode = "SRC_003"
	ErrCodeSourceParseError  ErrorCode = "SRC_004"
	ErrCodeSourceNoMatch     ErrorCode = "SRC_005"
)

// Classification module error codes.
const (
	ErrCodeClassifyEmptyQuery ErrorCode = "CLS_001"
	ErrCodeClassifyFailed     ErrorCode = "CLS_002"
)

// Enrichment module error codes.
const (
	ErrCodeEnrichFailed      ErrorCode = "ENR_001"
	ErrCodeEnrichUnknownKind ErrorCode = "ENR_002"
)

// Mapping / batch-seeding module error codes.
const (
	ErrCodeMappingInvalid      ErrorCode = "MAP_001"
	ErrCodeMappingDuplicate    ErrorCode = "MAP_002"
	ErrCodeMappingInsertFailed ErrorCode = "MAP_003"
	ErrCodeSeedSourceUnknown   ErrorCode = "MAP_004"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,

	ErrCodeSourceUnavailable: http.StatusServiceUnavailable,
	ErrCodeSourceRateLimited: http.StatusTooManyRequests,
	ErrCodeSourceAuthMissing: http.StatusBadGateway,
	ErrCodeSourceParseError:  http.StatusBadGateway,
	ErrCodeSourceNoMatch:     http.StatusNotFound,

	ErrCodeClassifyEmptyQuery: http.StatusBadRequest,
	ErrCodeClassifyFailed:     http.StatusInternalServerError,

	ErrCodeEnrichFailed:      http.StatusInternalServerError,
	ErrCodeEnrichUnknownKind: http.StatusBadRequest,

	ErrCodeMappingInvalid:      http.StatusUnprocessableEntity,
	ErrCodeMappingDuplicate:    http.StatusConflict,
	ErrCodeMappingInsertFailed: http.StatusInternalServerError,
	ErrCodeSeedSourceUnknown:   http.StatusBadRequest,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",

	ErrCodeSourceUnavailable: "data source unavailable",
	ErrCodeSourceRateLimited: "data source rate limited",
	ErrCodeSourceAuthMissing: "data source credential missing",
	ErrCodeSourceParseError:  "failed to parse data source response",
	ErrCodeSourceNoMatch:     "data source returned no match",

	ErrCodeClassifyEmptyQuery: "query must not be empty",
	ErrCodeClassifyFailed:     "input classification failed",

	ErrCodeEnrichFailed:      "enrichment failed",
	ErrCodeEnrichUnknownKind: "unknown enrichment kind",

	ErrCodeMappingInvalid:      "invalid disease-drug mapping",
	ErrCodeMappingDuplicate:    "mapping already exists",
	ErrCodeMappingInsertFailed: "failed to insert mapping",
	ErrCodeSeedSourceUnknown:   "unknown seed source",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
