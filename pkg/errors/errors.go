package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Domain error codes. Clients branch on these, so the codes are part of the
// API contract and must stay stable.
const (
	CodeDuplicateGameID        = "DUPLICATE_GAME_ID"
	CodeGameNotFound           = "GAME_NOT_FOUND"
	CodeLicenseNotFound        = "LICENSE_NOT_FOUND"
	CodeListingNotFound        = "LISTING_NOT_FOUND"
	CodeInstanceNotFound       = "INSTANCE_NOT_FOUND"
	CodeIndexOutOfRange        = "INDEX_OUT_OF_RANGE"
	CodeNotPublisher           = "NOT_PUBLISHER"
	CodeNotOwner               = "NOT_OWNER"
	CodeNotAuthorized          = "NOT_AUTHORIZED"
	CodeInsufficientFee        = "INSUFFICIENT_FEE"
	CodeInsufficientFunds      = "INSUFFICIENT_FUNDS"
	CodeInsufficientBalance    = "INSUFFICIENT_BALANCE"
	CodeNoFundsAvailable       = "NO_FUNDS_AVAILABLE"
	CodeEmptyPool              = "EMPTY_POOL"
	CodeInvalidDiscountRate    = "INVALID_DISCOUNT_RATE"
	CodeInvalidRoyaltyRate     = "INVALID_ROYALTY_RATE"
	CodeSaleLocked             = "SALE_LOCKED"
	CodeResaleNotPermitted     = "RESALE_NOT_PERMITTED"
	CodeAuthLimitExceeded      = "AUTH_LIMIT_EXCEEDED"
	CodeMalformedLanguagePair  = "MALFORMED_LANGUAGE_PAIR"
)

func DuplicateGameID(id string) *AppError {
	return &AppError{
		Code:    CodeDuplicateGameID,
		Message: fmt.Sprintf("game %q is already registered", id),
		Status:  http.StatusConflict,
	}
}

func GameNotFound(id string) *AppError {
	return &AppError{
		Code:    CodeGameNotFound,
		Message: fmt.Sprintf("game %q not found", id),
		Status:  http.StatusNotFound,
	}
}

func LicenseNotFound(id string) *AppError {
	return &AppError{
		Code:    CodeLicenseNotFound,
		Message: fmt.Sprintf("license %q not found", id),
		Status:  http.StatusNotFound,
	}
}

func ListingNotFound(id string) *AppError {
	return &AppError{
		Code:    CodeListingNotFound,
		Message: fmt.Sprintf("listing %q not found", id),
		Status:  http.StatusNotFound,
	}
}

func InstanceNotFound(id string) *AppError {
	return &AppError{
		Code:    CodeInstanceNotFound,
		Message: fmt.Sprintf("license instance %q not found", id),
		Status:  http.StatusNotFound,
	}
}

func IndexOutOfRange(index int) *AppError {
	return &AppError{
		Code:    CodeIndexOutOfRange,
		Message: fmt.Sprintf("index %d is out of range", index),
		Status:  http.StatusNotFound,
	}
}

func NotPublisher() *AppError {
	return &AppError{
		Code:    CodeNotPublisher,
		Message: "capability does not grant publisher rights on this game",
		Status:  http.StatusForbidden,
	}
}

func NotOwner() *AppError {
	return &AppError{
		Code:    CodeNotOwner,
		Message: "caller does not own this license instance",
		Status:  http.StatusForbidden,
	}
}

func NotAuthorized() *AppError {
	return &AppError{
		Code:    CodeNotAuthorized,
		Message: "capability does not authorize this operation",
		Status:  http.StatusForbidden,
	}
}

func InsufficientFee(required uint64) *AppError {
	return &AppError{
		Code:    CodeInsufficientFee,
		Message: fmt.Sprintf("submission fee must be exactly %d token units", required),
		Status:  http.StatusPaymentRequired,
	}
}

func InsufficientFunds(required uint64) *AppError {
	return &AppError{
		Code:    CodeInsufficientFunds,
		Message: fmt.Sprintf("payment must be exactly %d token units", required),
		Status:  http.StatusPaymentRequired,
	}
}

func InsufficientBalance() *AppError {
	return &AppError{
		Code:    CodeInsufficientBalance,
		Message: "balance is smaller than the requested amount",
		Status:  http.StatusPaymentRequired,
	}
}

func NoFundsAvailable() *AppError {
	return &AppError{
		Code:    CodeNoFundsAvailable,
		Message: "pool holds no funds",
		Status:  http.StatusConflict,
	}
}

func EmptyPool() *AppError {
	return &AppError{
		Code:    CodeEmptyPool,
		Message: "cannot withdraw from an empty pool",
		Status:  http.StatusConflict,
	}
}

func InvalidDiscountRate(rate uint64) *AppError {
	return &AppError{
		Code:    CodeInvalidDiscountRate,
		Message: fmt.Sprintf("discount rate %d exceeds 10000 basis points", rate),
		Status:  http.StatusBadRequest,
	}
}

func InvalidRoyaltyRate(rate uint64) *AppError {
	return &AppError{
		Code:    CodeInvalidRoyaltyRate,
		Message: fmt.Sprintf("royalty rate %d exceeds 10000 basis points", rate),
		Status:  http.StatusBadRequest,
	}
}

func SaleLocked(gameID string) *AppError {
	return &AppError{
		Code:    CodeSaleLocked,
		Message: fmt.Sprintf("game %q is not currently on sale", gameID),
		Status:  http.StatusConflict,
	}
}

func ResaleNotPermitted() *AppError {
	return &AppError{
		Code:    CodeResaleNotPermitted,
		Message: "the originating license does not permit resale",
		Status:  http.StatusConflict,
	}
}

func AuthLimitExceeded() *AppError {
	return &AppError{
		Code:    CodeAuthLimitExceeded,
		Message: "activation limit for this license instance is exhausted",
		Status:  http.StatusConflict,
	}
}

func MalformedLanguagePair(key string) *AppError {
	return &AppError{
		Code:    CodeMalformedLanguagePair,
		Message: fmt.Sprintf("%q is not a two-letter language code", key),
		Status:  http.StatusBadRequest,
	}
}
