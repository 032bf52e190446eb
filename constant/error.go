package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPassword
	ErrInvalidNumber
	ErrBelowMinimum
	ErrBidTooLow
	ErrBidRejected
	ErrValidation
	ErrBackendUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrInvalidPassword:    "password invalid",
	ErrInvalidNumber:      "quantity or amount is not a valid positive number",
	ErrBelowMinimum:       "quantity is below the listing minimum order quantity",
	ErrBidTooLow:          "bid must be higher than the current minimum bid",
	ErrBidRejected:        "bid rejected by marketplace",
	ErrValidation:         "order rejected by marketplace",
	ErrBackendUnavailable: "marketplace backend unavailable",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusBadRequest,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrInvalidPassword:    http.StatusBadRequest,
	ErrInvalidNumber:      http.StatusBadRequest,
	ErrBelowMinimum:       http.StatusBadRequest,
	ErrBidTooLow:          http.StatusBadRequest,
	ErrBidRejected:        http.StatusBadRequest,
	ErrValidation:         http.StatusBadRequest,
	ErrBackendUnavailable: http.StatusBadGateway,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrInvalidPassword:    "0005",
	ErrInvalidNumber:      "0006",
	ErrBelowMinimum:       "0007",
	ErrBidTooLow:          "0008",
	ErrBidRejected:        "0009",
	ErrValidation:         "0010",
	ErrBackendUnavailable: "0011",
}
