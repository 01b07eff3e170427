package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

func decodeJsonBody(body io.Reader, target any) error {
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid json body, %w", err)
	}
	return nil
}

func respondWithJson(w http.ResponseWriter, statusCode int, responseBytes []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(responseBytes); err != nil {
		log.Errorf("cannot write response: %v", err)
	}
}

// handlerError maps service sentinel errors onto http status codes.
func handlerError(err error, w http.ResponseWriter) {
	var statusCode int
	switch {
	case errors.Is(err, raffle_errors.ErrInvalidAdminSecret):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, raffle_errors.ErrUnAuthorized):
		statusCode = http.StatusForbidden
	case errors.Is(err, raffle_errors.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, raffle_errors.ErrEntityAlreadyExist):
		statusCode = http.StatusConflict
	case errors.Is(err, raffle_errors.ErrInvalidRequest),
		errors.Is(err, raffle_errors.ErrCSVValidation):
		statusCode = http.StatusBadRequest
	default:
		http.Error(w, raffle_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), statusCode)
}

func marshalAndRespond(w http.ResponseWriter, statusCode int, response any) {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		log.Errorf("cannot marshal %v: %v", response, err)
		http.Error(w, raffle_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}
	respondWithJson(w, statusCode, responseBytes)
}
