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

// Common error codes
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeBadRequest    ErrorCode = "COMMON_002"
	ErrCodeNotFound      ErrorCode = "COMMON_003"
	ErrCodeConflict      ErrorCode = "COMMON_004"
	ErrCodeValidation    ErrorCode = "COMMON_005"
	ErrCodeSerialization ErrorCode = "COMMON_006"
	ErrCodeDatabaseError ErrorCode = "COMMON_007"
	ErrCodeCacheError    ErrorCode = "COMMON_008"
	ErrCodeDataLoad      ErrorCode = "COMMON_009"
	ErrCodeUnknown       ErrorCode = "COMMON_999"

	CodeOK ErrorCode = "OK"
)

// Molecule module error codes
const (
	ErrCodeMoleculeNotFound    ErrorCode = "MOL_001"
	ErrCodeMoleculeDataInvalid ErrorCode = "MOL_002"
)

// Ingredient profiling error codes
const (
	ErrCodeProfileFailed ErrorCode = "ING_001"
)

// Cocktail module error codes
const (
	ErrCodeCocktailNotFound    ErrorCode = "CKT_001"
	ErrCodeCocktailDataInvalid ErrorCode = "CKT_002"
	ErrCodeMeasureInvalid      ErrorCode = "CKT_003"
	ErrCodeModificationInvalid ErrorCode = "CKT_004"
)

// Recommendation module error codes
const (
	ErrCodeTargetInvalid       ErrorCode = "REC_001"
	ErrCodeNoCandidates        ErrorCode = "REC_002"
	ErrCodeSimulationFailed    ErrorCode = "REC_003"
	ErrCodePlausibilityInvalid ErrorCode = "REC_004"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:      http.StatusInternalServerError,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeConflict:      http.StatusConflict,
	ErrCodeValidation:    http.StatusUnprocessableEntity,
	ErrCodeSerialization: http.StatusInternalServerError,
	ErrCodeDatabaseError: http.StatusInternalServerError,
	ErrCodeCacheError:    http.StatusInternalServerError,
	ErrCodeDataLoad:      http.StatusInternalServerError,

	ErrCodeMoleculeNotFound:    http.StatusNotFound,
	ErrCodeMoleculeDataInvalid: http.StatusInternalServerError,

	ErrCodeProfileFailed: http.StatusInternalServerError,

	ErrCodeCocktailNotFound:    http.StatusNotFound,
	ErrCodeCocktailDataInvalid: http.StatusInternalServerError,
	ErrCodeMeasureInvalid:      http.StatusBadRequest,
	ErrCodeModificationInvalid: http.StatusBadRequest,

	ErrCodeTargetInvalid:       http.StatusBadRequest,
	ErrCodeNoCandidates:        http.StatusNotFound,
	ErrCodeSimulationFailed:    http.StatusInternalServerError,
	ErrCodePlausibilityInvalid: http.StatusBadRequest,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:      "internal server error",
	ErrCodeBadRequest:    "bad request",
	ErrCodeNotFound:      "resource not found",
	ErrCodeConflict:      "resource conflict",
	ErrCodeValidation:    "validation failed",
	ErrCodeSerialization: "serialization failed",
	ErrCodeDatabaseError: "database error",
	ErrCodeCacheError:    "cache error",
	ErrCodeDataLoad:      "failed to load data file",

	ErrCodeMoleculeNotFound:    "molecule not found",
	ErrCodeMoleculeDataInvalid: "invalid molecule record",

	ErrCodeProfileFailed: "ingredient profiling failed",

	ErrCodeCocktailNotFound:    "cocktail not found",
	ErrCodeCocktailDataInvalid: "invalid cocktail record",
	ErrCodeMeasureInvalid:      "invalid measure",
	ErrCodeModificationInvalid: "invalid modification",

	ErrCodeTargetInvalid:       "invalid balance target",
	ErrCodeNoCandidates:        "no candidate ingredients found",
	ErrCodeSimulationFailed:    "modification simulation failed",
	ErrCodePlausibilityInvalid: "invalid plausibility table",
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

// IsClientError returns true if the ErrorCode maps to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode maps to a 5xx HTTP status.
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
