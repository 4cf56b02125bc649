package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/latitune-backend/internal/domain"
	"github.com/heartmarshall/latitune-backend/internal/transport/middleware"
)

// Status is an application status code carried in the envelope meta.
type Status int

// Closed status table of the wire protocol.
const (
	StatusMissingParameters    Status = 10
	StatusInvalidParameters    Status = 11
	StatusSuccess              Status = 20
	StatusEmailExists          Status = 30
	StatusUsernameExists       Status = 31
	StatusInvalidAuth          Status = 32
	StatusUsernameDoesNotExist Status = 33
	StatusSongDoesNotExist     Status = 40
	StatusBlipDoesNotExist     Status = 50
	StatusCommentDoesNotExist  Status = 60
	StatusFavoriteDoesNotExist Status = 70
	StatusRateLimited          Status = 80
	StatusInternalError        Status = 90
)

var statusMessages = map[Status]string{
	StatusMissingParameters:    "Missing Required Parameters",
	StatusInvalidParameters:    "Invalid Parameters",
	StatusSuccess:              "Success",
	StatusEmailExists:          "Email already exists",
	StatusUsernameExists:       "Username already exists",
	StatusInvalidAuth:          "Invalid Authentication",
	StatusUsernameDoesNotExist: "Username does not exist",
	StatusSongDoesNotExist:     "Song ID does not exist",
	StatusBlipDoesNotExist:     "Blip ID does not exist",
	StatusCommentDoesNotExist:  "Comment ID does not exist",
	StatusFavoriteDoesNotExist: "Favorite ID does not exist",
	StatusRateLimited:          "Rate Limit Exceeded",
	StatusInternalError:        "Internal Error",
}

// Message returns the fixed message for s.
func (s Status) Message() string {
	return statusMessages[s]
}

// Meta is the envelope header. Error is omitted on success.
type Meta struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Envelope wraps every API response. Objects is never null.
type Envelope struct {
	Meta    Meta  `json:"meta"`
	Objects []any `json:"objects"`
}

func writeObjects[T any](w http.ResponseWriter, objs []T) {
	out := make([]any, len(objs))
	for i := range objs {
		out[i] = objs[i]
	}
	writeJSON(w, http.StatusOK, Envelope{Meta: Meta{Status: StatusSuccess}, Objects: out})
}

func writeObject(w http.ResponseWriter, obj any) {
	writeJSON(w, http.StatusOK, Envelope{Meta: Meta{Status: StatusSuccess}, Objects: []any{obj}})
}

func writeStatus(w http.ResponseWriter, s Status) {
	meta := Meta{Status: s}
	if s != StatusSuccess {
		meta.Error = s.Message()
	}

	code := http.StatusOK
	switch s {
	case StatusInternalError:
		code = http.StatusInternalServerError
	case StatusRateLimited:
		code = http.StatusTooManyRequests
	}
	writeJSON(w, code, Envelope{Meta: meta, Objects: []any{}})
}

// statusFor maps an error to its envelope status. Entity-specific errors are
// checked before the generic sentinels they wrap.
func statusFor(err error) Status {
	switch {
	case errors.Is(err, domain.ErrMissingParameter):
		return StatusMissingParameters
	case errors.Is(err, domain.ErrValidation):
		return StatusInvalidParameters
	case errors.Is(err, domain.ErrEmailTaken):
		return StatusEmailExists
	case errors.Is(err, domain.ErrUsernameTaken):
		return StatusUsernameExists
	case errors.Is(err, domain.ErrUsernameNotFound):
		return StatusUsernameDoesNotExist
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return StatusInvalidAuth
	case errors.Is(err, domain.ErrSongNotFound):
		return StatusSongDoesNotExist
	case errors.Is(err, domain.ErrBlipNotFound):
		return StatusBlipDoesNotExist
	case errors.Is(err, domain.ErrCommentNotFound):
		return StatusCommentDoesNotExist
	case errors.Is(err, domain.ErrFavoriteNotFound):
		return StatusFavoriteDoesNotExist
	default:
		return StatusInternalError
	}
}

// ErrorWriter renders errors as envelopes. Unexpected faults are logged and
// answered with StatusInternalError; their details never reach the client.
func ErrorWriter(logger *slog.Logger) middleware.ErrorWriter {
	log := logger.With("handler", "envelope")
	return func(w http.ResponseWriter, r *http.Request, err error) {
		s := statusFor(err)
		switch {
		case s != StatusInternalError:
		case errors.Is(err, context.Canceled):
			log.WarnContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
		default:
			log.ErrorContext(r.Context(), "internal error",
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()),
			)
		}
		writeStatus(w, s)
	}
}

// InternalErrorHandler answers with the internal error envelope. It serves as
// the panic fallback.
func InternalErrorHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, StatusInternalError)
	})
}

// RateLimitedHandler answers with the rate limited envelope.
func RateLimitedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, StatusRateLimited)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
