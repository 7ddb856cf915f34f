package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goslang/internal/logging"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")
	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))

	logging.FromContext(ctx).Debug("check failed", logging.FieldCheck, "SL101")
	assert.Contains(t, buf.String(), "check=SL101")
}
