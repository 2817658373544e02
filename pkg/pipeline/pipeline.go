// Package pipeline provides the analysis pipeline for techstack.
//
// This package runs the three analysis stages in a fixed order and
// assembles their outputs into a [report.Result]. The CLI is a thin
// wrapper around it; tests and other embedders use it directly.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Scan: Measure the language distribution of the source tree
//  2. Collect: Run every manifest reader and concatenate their records
//  3. Classify: Derive stack labels from languages and dependency names
//
// Only the scan stage can fail, and only when the project root is missing
// or is not a directory. Malformed manifests are logged at debug level and
// contribute nothing.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger) // nil selects every reader
//	result, err := runner.Analyze(ctx, root, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	_ = result.Report.Write(os.Stdout, report.FormatJSON, 2)
package pipeline

import (
	"time"

	"github.com/matzehuels/techstack/pkg/config"
	"github.com/matzehuels/techstack/pkg/report"
)

// Options configures an analysis run.
type Options struct {
	// Exclude holds extra doublestar patterns pruned from the source scan.
	Exclude []string
}

// OptionsFromConfig derives run options from loaded settings.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{Exclude: cfg.Scan.Exclude}
}

// Result holds the report and run statistics.
type Result struct {
	Report *report.Result
	Stats  Stats
}

// Stats describes the work an analysis performed.
type Stats struct {
	ScanTime    time.Duration
	CollectTime time.Duration
	Files       int   // Source files counted by the scan
	Bytes       int64 // Total size of counted files
	Manifests   int   // Manifests found in the root
	Failed      int   // Manifests present but unparsable
}
