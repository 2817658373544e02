package profile

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/matzehuels/techstack/pkg/errors"
)

// extensions maps a case-sensitive file extension to its language label.
var extensions = map[string]string{
	".py":   "Python",
	".js":   "JavaScript",
	".ts":   "TypeScript",
	".jsx":  "React JSX",
	".tsx":  "React TSX",
	".html": "HTML",
	".css":  "CSS",
	".go":   "Go",
	".java": "Java",
	".cpp":  "C++",
	".cc":   "C++",
	".cxx":  "C++",
	".hpp":  "C++",
	".c":    "C",
	".h":    "C",
	".rs":   "Rust",
	".md":   "Markdown",
	".json": "JSON",
	".yml":  "YAML",
	".yaml": "YAML",
}

// ExcludedDirs are directory names never descended into, at any depth.
var ExcludedDirs = map[string]bool{
	".git":          true,
	".svn":          true,
	".hg":           true,
	"node_modules":  true,
	"__pycache__":   true,
	".venv":         true,
	"venv":          true,
	"vendor":        true,
	"dist":          true,
	"build":         true,
	"target":        true,
	".agent":        true,
	".gemini":       true,
	".pytest_cache": true,
	".mypy_cache":   true,
	".next":         true,
}

// Options configures a scan.
type Options struct {
	// Exclude holds doublestar patterns matched against root-relative,
	// slash-separated paths. Matching directories are pruned and matching
	// files are skipped.
	Exclude []string
}

// Distribution maps a language label to its share of the total size, in
// percent with two decimal places.
type Distribution map[string]float64

// Languages returns the labels present in d.
func (d Distribution) Languages() []string {
	out := make([]string, 0, len(d))
	for lang := range d {
		out = append(out, lang)
	}
	return out
}

// Stats holds the raw totals of a scan.
type Stats struct {
	Sizes map[string]int64 // Bytes per language label
	Files int              // Number of counted files
	Bytes int64            // Sum of Sizes
}

// Language returns the label for a file name, following the convention
// that leading dots mark hidden files rather than extensions: ".json" has
// no extension while "a.json" does.
func Language(name string) (string, bool) {
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	lang, ok := extensions[ext]
	return lang, ok
}

// Scan measures root and returns its language distribution.
func Scan(root string, opts Options) (Distribution, error) {
	stats, err := Measure(root, opts)
	if err != nil {
		return nil, err
	}
	return stats.Distribution(), nil
}

// Measure walks root and sums file sizes per language.
func Measure(root string, opts Options) (*Stats, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "project root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "project root %s is not a directory", root)
	}

	stats := &Stats{Sizes: make(map[string]int64)}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if ExcludedDirs[d.Name()] || excluded(root, path, opts.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		lang, ok := Language(d.Name())
		if !ok || excluded(root, path, opts.Exclude) {
			return nil
		}
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			return nil
		}
		stats.Sizes[lang] += fi.Size()
		stats.Bytes += fi.Size()
		stats.Files++
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "walk %s", root)
	}
	return stats, nil
}

// Distribution converts the totals into percentages. A scan that counted
// zero bytes yields an empty, non-nil Distribution.
func (s *Stats) Distribution() Distribution {
	out := make(Distribution, len(s.Sizes))
	if s.Bytes == 0 {
		return out
	}
	for lang, size := range s.Sizes {
		out[lang] = round2(float64(size) / float64(s.Bytes) * 100)
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func excluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, p := range patterns {
		if doublestar.MatchUnvalidated(p, rel) {
			return true
		}
	}
	return false
}
