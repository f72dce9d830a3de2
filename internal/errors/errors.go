package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when a user profile is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEnquiryNotFound is returned when an enquiry is not found.
	ErrEnquiryNotFound = errors.New("enquiry not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVendorNotEligible is returned when assigning an account that is not
	// an active vendor.
	ErrVendorNotEligible = errors.New("assignee must be an active vendor")
	// ErrAdminImmutable is returned when a status change targets an admin.
	ErrAdminImmutable = errors.New("admin accounts cannot be suspended")
	// ErrInvalidStatus is returned for an unknown user status value.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidRole is returned for an unknown role value at signup.
	ErrInvalidRole = errors.New("invalid role")
	// ErrEmptyInput is returned when a qualification request has no text.
	ErrEmptyInput = errors.New("requirement text is empty")
	// ErrNameRequired is returned when a catalog record is saved without a name.
	ErrNameRequired = errors.New("name is required")
	// ErrInvalidRating is returned when a product rating is outside 0-5.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	// ErrQualificationFailed is returned when the lead qualifier cannot
	// produce a structured result.
	ErrQualificationFailed = errors.New("lead qualification failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation failures are
// 4xx raised before any store round-trip; qualification failures surface as
// 502 since the upstream inference service is at fault.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEnquiryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ENQUIRY_NOT_FOUND")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrVendorNotEligible):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "VENDOR_NOT_ELIGIBLE")
	case errors.Is(err, ErrAdminImmutable):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "ADMIN_IMMUTABLE")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrEmptyInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_INPUT")
	case errors.Is(err, ErrNameRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NAME_REQUIRED")
	case errors.Is(err, ErrInvalidRating):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RATING")
	case errors.Is(err, ErrQualificationFailed):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "QUALIFICATION_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
