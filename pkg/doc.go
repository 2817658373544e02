// Package pkg provides the core libraries for techstack project analysis.
//
// # Overview
//
// techstack reports what a project is built with: the languages in its
// source tree, the dependencies its manifests declare, and the frameworks
// those imply. The pkg directory is organized as:
//
//  1. [deps] - Manifest readers, one subpackage per ecosystem
//  2. [profile] - Language size distribution of the source tree
//  3. [stack] - Rule-table classification into stack labels
//  4. [report] - Result assembly and JSON/YAML serialization
//  5. [pipeline] - Orchestration (scan → collect → classify)
//  6. [config], [errors], [observability], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The data flow of one analysis:
//
//	Project root
//	     ├──→ [profile] (walk tree, sum bytes per language)
//	     └──→ [deps] readers (package.json, go.mod, Cargo.toml, ...)
//	                 ↓
//	          [stack] (languages + dependency names → labels)
//	                 ↓
//	          [report] (tech_stack, languages, dependencies)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Analyze(ctx, ".", pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	return result.Report.Write(os.Stdout, report.FormatJSON, 2)
//
// [deps]: github.com/matzehuels/techstack/pkg/deps
// [profile]: github.com/matzehuels/techstack/pkg/profile
// [stack]: github.com/matzehuels/techstack/pkg/stack
// [report]: github.com/matzehuels/techstack/pkg/report
// [pipeline]: github.com/matzehuels/techstack/pkg/pipeline
// [config]: github.com/matzehuels/techstack/pkg/config
// [errors]: github.com/matzehuels/techstack/pkg/errors
// [observability]: github.com/matzehuels/techstack/pkg/observability
// [buildinfo]: github.com/matzehuels/techstack/pkg/buildinfo
package pkg
