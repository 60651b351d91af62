package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLevel(t *testing.T) {
	t.Cleanup(func() { Init(true) })

	Init(true)
	assert.False(t, Log.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, Log.Enabled(context.Background(), slog.LevelInfo))

	Init(false)
	assert.True(t, Log.Enabled(context.Background(), slog.LevelDebug))
}
