package errors

import (
	"fmt"
)

type ErrorCode string

const (
	InvalidRecord          ErrorCode = "invalid_record"
	UnknownTransactionKind ErrorCode = "unknown_transaction_kind"
	MissingAmount          ErrorCode = "missing_amount"
	InvalidAmount          ErrorCode = "invalid_amount"
	MissingInputFile       ErrorCode = "missing_input_file"
	InternalError          ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// Predefined errors for common cases
var (
	ErrMissingAmount    = NewAppError(MissingAmount, "deposit and withdrawal records require an amount")
	ErrMissingInputFile = NewAppError(MissingInputFile, "no transactions filename passed")
)
