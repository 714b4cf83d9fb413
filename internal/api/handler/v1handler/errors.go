package v1handler

import (
	"context"
	"net/http"
	"strconv"
	"tally/pkg/logger"
	"tally/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// RetryAfter is the delay suggested to clients after a transient conflict.
const RetryAfter = 1

// Error is the body of every error response.
type Error struct {
	Code    string
	Message string
}

// ErrorResponse is an Error with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

type errorMapping struct {
	status  int
	message string
}

// messages for kinds whose error carries no message of its own
var mappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrNotFound:          {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized:      {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:         {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:        {http.StatusBadRequest, "bad request"},
	serrors.ErrValidation:        {http.StatusUnprocessableEntity, "validation failed"},
	serrors.ErrConflict:          {http.StatusConflict, "conflict"},
	serrors.ErrQuotaExceeded:     {http.StatusForbidden, "vote quota exceeded"},
	serrors.ErrDuplicateVote:     {http.StatusConflict, "already voted for this project"},
	serrors.ErrTransientConflict: {http.StatusServiceUnavailable, "please retry"},
	serrors.ErrTimeout:           {http.StatusGatewayTimeout, "timed out"},
	serrors.ErrUnavailable:       {http.StatusServiceUnavailable, "unavailable"},
	serrors.ErrRateLimited:       {http.StatusTooManyRequests, "too many requests"},
}

// NewError maps err to an error response. Errors without a semantic kind
// and internal errors are logged and never leak their message.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	internal := &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}

	var kind serrors.Kind
	if !errors.As(err, &kind) || kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))

		return internal
	}

	m, ok := mappings[kind]
	if !ok {
		logger.Error(ctx, "request failed with unmapped error kind", zap.Error(err))

		return internal
	}

	message := m.message
	var semantic *serrors.Error
	if errors.As(err, &semantic) && semantic.Message() != "" {
		message = semantic.Message()
	}

	return &ErrorResponse{
		StatusCode: m.status,
		Response:   Error{Code: kind.Error(), Message: message},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	if res.Response.Code == serrors.ErrTransientConflict.Error() {
		w.Header().Set("Retry-After", strconv.Itoa(RetryAfter))
	}

	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
			e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
