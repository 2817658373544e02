package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/observability"
)

// instrumented reports each manifest read to the analysis hooks and counts
// manifests that were present.
type instrumented struct {
	deps.Reader
	ctx  context.Context
	seen *int
}

func (i *instrumented) Read(root string) deps.Result {
	hooks := observability.Analysis()
	hooks.OnReadStart(i.ctx, i.Type())

	start := time.Now()
	res := i.Reader.Read(root)
	if res.Present {
		*i.seen++
	}
	hooks.OnReadComplete(i.ctx, i.Type(), res.Present, len(res.Dependencies), time.Since(start), res.Err)
	return res
}
