package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello", "pid", 1)
	assert.Contains(t, buf.String(), "pid=1")
}

func TestNewLogger(t *testing.T) {
	var testCases = []struct {
		description string
		level       string
		format      string
		expectDebug bool
		expectWarn  bool
		expect      string
	}{
		{description: "debug text", level: "debug", expectDebug: true, expectWarn: true, expect: "level=DEBUG"},
		{description: "default warn", level: "", expectWarn: true, expect: "level=WARN"},
		{description: "error hides warn", level: "ERROR"},
		{description: "json", level: "info", format: "json", expectWarn: true, expect: `"level":"WARN"`},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewLogger(testCase.level, testCase.format, buf)
			assert.Equal(t, testCase.expectDebug, logger.Enabled(context.Background(), slog.LevelDebug))
			assert.Equal(t, testCase.expectWarn, logger.Enabled(context.Background(), slog.LevelWarn))
			logger.Debug("debug line")
			logger.Warn("warn line")
			if testCase.expect != "" {
				assert.Contains(t, buf.String(), testCase.expect)
			}
		})
	}
}
