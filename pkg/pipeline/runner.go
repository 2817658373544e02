package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/deps/languages"
	"github.com/matzehuels/techstack/pkg/observability"
	"github.com/matzehuels/techstack/pkg/profile"
	"github.com/matzehuels/techstack/pkg/report"
	"github.com/matzehuels/techstack/pkg/stack"
)

// Runner executes analyses.
//
// The Runner is stateless apart from its reader list and logger, so multiple
// goroutines can safely use the same Runner against different roots.
type Runner struct {
	Readers []deps.Reader
	Logger  *log.Logger
}

// NewRunner creates a runner. If readers is nil, every supported reader is
// used in report order. If logger is nil, log.Default() is used.
func NewRunner(readers []deps.Reader, logger *log.Logger) *Runner {
	if readers == nil {
		readers = languages.Readers()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Readers: readers, Logger: logger}
}

// Analyze runs scan → collect → classify against root.
func (r *Runner) Analyze(ctx context.Context, root string, opts Options) (*Result, error) {
	result := &Result{}

	// Stage 1: Scan
	scanStart := time.Now()
	sizes, err := r.Scan(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.ScanTime = time.Since(scanStart)
	result.Stats.Files = sizes.Files
	result.Stats.Bytes = sizes.Bytes
	dist := sizes.Distribution()

	r.Logger.Info("scanned sources",
		"files", sizes.Files,
		"languages", len(dist),
		"duration", result.Stats.ScanTime)

	// Stage 2: Collect
	collectStart := time.Now()
	found, manifests, failed := r.Collect(ctx, root)
	result.Stats.CollectTime = time.Since(collectStart)
	result.Stats.Manifests = manifests
	result.Stats.Failed = failed

	r.Logger.Info("collected dependencies",
		"dependencies", len(found),
		"manifests", manifests,
		"failed", failed,
		"duration", result.Stats.CollectTime)

	// Stage 3: Classify
	labels := stack.Classify(dist.Languages(), deps.Names(found))
	observability.Analysis().OnClassifyComplete(ctx, labels)

	result.Report = report.Assemble(labels, dist, found)
	return result, nil
}

// Scan measures the language distribution of root.
func (r *Runner) Scan(ctx context.Context, root string, opts Options) (*profile.Stats, error) {
	hooks := observability.Analysis()
	hooks.OnScanStart(ctx, root)

	start := time.Now()
	stats, err := profile.Measure(root, profile.Options{Exclude: opts.Exclude})
	if err != nil {
		hooks.OnScanComplete(ctx, root, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnScanComplete(ctx, root, stats.Files, stats.Bytes, time.Since(start), nil)
	return stats, nil
}

// Collect runs every reader against root and returns the concatenated
// records with the number of manifests found and the number that failed.
func (r *Runner) Collect(ctx context.Context, root string) (found []deps.Dependency, manifests, failed int) {
	readers := make([]deps.Reader, len(r.Readers))
	for i, rd := range r.Readers {
		readers[i] = &instrumented{Reader: rd, ctx: ctx, seen: &manifests}
	}

	found = deps.Collect(root, readers, func(res deps.Result) {
		failed++
		r.Logger.Debug("skipping malformed manifest", "manifest", res.Manifest, "err", res.Err)
	})
	return found, manifests, failed
}
