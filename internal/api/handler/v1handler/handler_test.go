package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"tally/internal/api/handler/v1handler"
	"testing"

	"tally/pkg/logger"
	"tally/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing name")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid payload: missing name", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_VoteRejections(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{serrors.With(serrors.ErrQuotaExceeded, "all 3 votes have already been used"), 403, "QUOTA_EXCEEDED"},
		{serrors.With(serrors.ErrDuplicateVote, "already voted for this project"), 409, "DUPLICATE_VOTE"},
		{serrors.Wrap(serrors.ErrTransientConflict, errors.New("lock timeout"), "please retry"), 503, "TRANSIENT_CONFLICT"},
		{serrors.With(serrors.ErrValidation, "score out of range"), 422, "VALIDATION"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			// wrapping by intermediate layers must not hide the kind
			res := h.NewError(ctx, fmt.Errorf("could not handle request: %w", tt.err))
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Response.Code)
		})
	}
}
