package ctxlog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/specialistvlad/rpncalc/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxlog.FromContext(ctx))
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
	assert.Same(t, slog.Default(), ctxlog.FromContext(ctxlog.WithLogger(context.Background(), nil)))
}
