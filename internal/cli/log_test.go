package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at warn level", log.WarnLevel, func(l *log.Logger) { l.Info("test") }, false},
		{"warn at warn level", log.WarnLevel, func(l *log.Logger) { l.Warn("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("scan completed")

	assert.Contains(t, buf.String(), "scan completed (")
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), custom)
	assert.Same(t, custom, loggerFromContext(ctx))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(newLogger(&buf, log.DebugLevel))
	ctx := context.Background()

	h.OnReadComplete(ctx, "go.mod", false, 0, time.Millisecond, nil)
	assert.Empty(t, buf.String(), "absent manifests are not logged")

	h.OnReadComplete(ctx, "Cargo.toml", true, 3, time.Millisecond, nil)
	h.OnReadComplete(ctx, "pom.xml", true, 0, time.Millisecond, errors.New("etree: invalid XML format"))
	h.OnScanComplete(ctx, "/project", 12, 4096, time.Millisecond, nil)
	h.OnClassifyComplete(ctx, []string{"Rust"})

	out := buf.String()
	assert.Contains(t, out, "Cargo.toml")
	assert.Contains(t, out, "pom.xml")
	assert.Contains(t, out, "scanned tree")
	assert.Contains(t, out, "classified stack")
}
