package handler

import (
	"errors"
	"net/http"
	"solpay/internal/core"
	"solpay/internal/solana"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// statusForError maps a service error to its http status. Unknown errors are internal.
func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrTransactionNotFound),
		errors.Is(err, core.ErrSenderNotFound),
		errors.Is(err, core.ErrReceiverNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrUserExists),
		errors.Is(err, core.ErrDuplicateTransaction),
		errors.Is(err, core.ErrInvalidStatus):
		return http.StatusConflict
	case errors.Is(err, solana.ErrDecode),
		errors.Is(err, solana.ErrFormat):
		return http.StatusBadRequest
	case errors.Is(err, solana.ErrFeePayerMismatch):
		return http.StatusForbidden
	case errors.Is(err, solana.ErrBroadcast),
		errors.Is(err, core.ErrOnChainFailure):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// statusForTransfer maps a transfer result to its http status.
func statusForTransfer(result core.TransferResult) int {
	switch result.Outcome {
	case core.OutcomeCompleted:
		return http.StatusOK
	case core.OutcomeUnknown:
		return http.StatusAccepted
	case core.OutcomeFailed:
		return http.StatusUnprocessableEntity
	}
	return statusForError(result.Reason)
}
