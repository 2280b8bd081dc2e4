package v1handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/serrors"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Code    string
	Message string
}

// Encode writes the body as {"code": ..., "detail": ...}.
func (b ErrorBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(b.Code)
	e.FieldStart("detail")
	e.Str(b.Message)
	e.ObjEnd()
}

// ErrorResponse pairs an ErrorBody with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

type kindMapping struct {
	kind    serrors.Kind
	status  int
	message string
}

var kindMappings = []kindMapping{ //nolint: gochecknoglobals
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "authentication required"},
	{serrors.ErrForbidden, http.StatusForbidden, "You do not have permission to perform this action."},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrBadGateway, http.StatusBadGateway, "upstream service error"},
}

// NewError maps err to its HTTP representation. Errors without a known
// kind become a 500 whose cause is logged and never returned.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	for _, m := range kindMappings {
		if !errors.Is(err, m.kind) {
			continue
		}

		msg := m.message
		var serr *serrors.Error
		if errors.As(err, &serr) && serr.Message() != "" {
			msg = serr.Message()
		}
		if m.status >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed", zap.Error(err))
		}

		return &ErrorResponse{
			StatusCode: m.status,
			Response:   ErrorBody{Code: m.kind.Error(), Message: msg},
		}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Response:   ErrorBody{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	res.Response.Encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}
