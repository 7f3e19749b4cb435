package response

import (
	"encoding/json"
	"net/http"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/logger"

	"github.com/rs/zerolog/log"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error   *string `json:"error,omitempty"`
	Details *string `json:"details,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object inside the data envelope
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithBody sends payload as the whole body, for endpoints whose shape is fixed by clients
func WithBody(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError sends {error, details}. Errors that are not a Failure never leak their text.
func WithError(writer http.ResponseWriter, err error) {
	fail, ok := failure.As(err)
	if !ok {
		log.Error().Err(err).Msg("unhandled error")

		errMsg := constant.ResponseErrorInternal
		response(writer, http.StatusInternalServerError, Error{Error: &errMsg})

		return
	}

	body := Error{Error: &fail.Message}
	if fail.Details != "" {
		body.Details = &fail.Details
	}

	response(writer, fail.Code, body)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// NoCache marks the response as never cacheable.
func NoCache(writer http.ResponseWriter) {
	writer.Header().Set(constant.RequestHeaderCacheControl, "no-cache, no-store, must-revalidate")
	writer.Header().Set(constant.RequestHeaderPragma, "no-cache")
	writer.Header().Set(constant.RequestHeaderExpires, "0")
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
