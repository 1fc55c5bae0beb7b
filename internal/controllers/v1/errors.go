package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
//
// Validation errors of the analysis engine and the models are
// client errors and therefore result in a 400.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Transaction errors
var (
	errTransactionTypeInvalid   = errors.New("the specified transaction type is invalid")
	errTransactionStatusInvalid = errors.New("the specified transaction status is invalid")
)

// Analysis errors
var (
	errMonthAndRange = errors.New("the month parameter can not be combined with from or until")
)
