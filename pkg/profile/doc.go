// Package profile measures how much of a source tree each programming
// language accounts for.
//
// # Overview
//
// [Measure] walks the tree below a project root and sums the byte size of
// every regular file whose extension appears in the fixed extension table
// (see [Language]). [Stats.Distribution] turns those totals into
// percentages of the grand total, rounded to two decimal places:
//
//	stats, err := profile.Measure(root, profile.Options{})
//	if err != nil {
//	    return err // root is missing or not a directory
//	}
//	dist := stats.Distribution() // {"Go": 75, "Rust": 25}
//
// # Pruning
//
// Version-control metadata, dependency caches and build output directories
// (see [ExcludedDirs]) are pruned before descent, as is any directory whose
// root-relative slash path matches one of [Options.Exclude]. Exclude
// patterns use doublestar syntax, so "docs/**" and "**/fixtures" both work.
// Files matching an exclude pattern are skipped as well.
//
// # Failure Handling
//
// Only a missing or non-directory root is an error. Unreadable
// subdirectories and files whose size cannot be determined (broken
// symlinks, races with deletion) are skipped silently.
package profile
