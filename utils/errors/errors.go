package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/scrapmarket/constant"
)

// CustomError carries an error taxonomy entry plus an optional detail message.
// Detail is used to surface backend rejection reasons verbatim to the caller.
type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMessage builds a CustomError whose message overrides the
// taxonomy default, e.g. a server-side rejection detail.
func SetCustomErrorMessage(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}

// IsType reports whether err is a CustomError of the given taxonomy type.
func IsType(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}
