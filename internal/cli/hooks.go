package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/techstack/pkg/observability"
)

// logHooks writes analysis events to a logger at debug level.
type logHooks struct {
	observability.NoopAnalysisHooks
	logger *log.Logger
}

// NewLogHooks returns analysis hooks that log through l.
func NewLogHooks(l *log.Logger) observability.AnalysisHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnReadComplete(_ context.Context, manifest string, present bool, count int, d time.Duration, err error) {
	if !present {
		return
	}
	h.logger.Debug("read manifest",
		"manifest", manifest,
		"dependencies", count,
		"failed", err != nil,
		"duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnScanComplete(_ context.Context, root string, files int, bytes int64, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("scan failed", "root", root, "err", err)
		return
	}
	h.logger.Debug("scanned tree", "root", root, "files", files, "bytes", bytes, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnClassifyComplete(_ context.Context, labels []string) {
	h.logger.Debug("classified stack", "labels", labels)
}
