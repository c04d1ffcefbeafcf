package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shadyltdcry-byte/classiklust/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodePlayerNotFound         = "PLAYER_NOT_FOUND"
	CodeInsufficientEnergy     = "INSUFFICIENT_ENERGY"
	CodeInvalidPlan            = "INVALID_PLAN"
	CodeUnknownAchievement     = "UNKNOWN_ACHIEVEMENT"
	CodeNotClaimable           = "NOT_CLAIMABLE"
	CodeAlreadyClaimed         = "ALREADY_CLAIMED"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"
	CodeSpinCooldown           = "SPIN_COOLDOWN"
	CodeInternalError          = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrInsufficientEnergy):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientEnergy, "Not enough energy; wait for regeneration"}}
	case errors.Is(err, model.ErrInvalidPlan):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlan, "Unknown VIP plan"}}
	case errors.Is(err, model.ErrUnknownAchievement):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownAchievement, "Unknown achievement"}}
	case errors.Is(err, model.ErrNotClaimable):
		return &httpError{http.StatusConflict, APIError{CodeNotClaimable, "Achievement is not claimable yet"}}
	case errors.Is(err, model.ErrAlreadyClaimed):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyClaimed, "Achievement reward already claimed"}}
	case errors.Is(err, model.ErrVersionConflict):
		return &httpError{http.StatusConflict, APIError{CodeConcurrentModification, "State was modified concurrently; retry"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewSpinCooldownError creates a rate-limited spin error
func NewSpinCooldownError() error {
	return &httpError{http.StatusTooManyRequests, APIError{CodeSpinCooldown, "Wheel spin is on cooldown"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
