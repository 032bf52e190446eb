package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/scrapmarket/constant"
	"github.com/muhammadheryan/scrapmarket/utils/errors"
)

type response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		w.WriteHeader(ce.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(response{
			Code:    ce.ErrorCode(),
			Message: ce.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(response{
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
		Message: constant.ErrorTypeMessage[constant.ErrInternal],
	})
}
