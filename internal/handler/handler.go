package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"air-store/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// validate checks request DTO struct tags. A single instance caches
// struct metadata across requests.
var validate = validator.New()

// writeJSON writes a JSON response with the given status code. The
// header is already committed if encoding fails, so there is nothing
// left to report to the client.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error onto an HTTP response. Domain
// errors become 4xx with their code; anything else is a 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeProductNotFound:
			status = http.StatusNotFound
		case model.ErrCodeInvalidCheckoutState, model.ErrCodeSubmissionInProgress:
			status = http.StatusConflict
		}
		writeError(w, status, domainErr.Code, domainErr.Message, logger)
		return
	}

	var subErr *model.SubmissionError
	if errors.As(err, &subErr) {
		// The backend rejected the order; surface its detail verbatim.
		writeError(w, http.StatusBadGateway, model.ErrCodeSubmissionFailed, subErr.Error(), logger)
		return
	}

	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

// decodeJSON decodes and validates a request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return model.NewDomainError(
				model.ErrCodeMissingField,
				fmt.Sprintf("invalid field: %s", fieldErrs[0].Field()),
			)
		}
		return model.NewDomainError(model.ErrCodeMissingField, "invalid request body")
	}
	return nil
}
