// Package stack derives human-readable technology labels from the
// languages found in a source tree and the names of its declared
// dependencies.
//
// Classification is table driven. Each [Rule] names a substring that is
// matched, case-insensitively, against every dependency name; a hit adds
// the rule's label. Ecosystem labels (Go, Rust, ...) are added whenever a
// file of the corresponding language was observed, and every remaining
// language is added under its own name. The result is a sorted set.
package stack

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Rule maps a dependency-name substring to a stack label.
type Rule struct {
	Pattern string // Lower-case substring matched against folded names
	Label   string
}

// Rules is the framework and library table, grouped by ecosystem.
var Rules = []Rule{
	// JavaScript / TypeScript
	{"react", "React"},
	{"next", "Next.js"},
	{"vue", "Vue.js"},
	{"express", "Express.js"},
	{"tailwindcss", "Tailwind CSS"},
	{"typescript", "TypeScript"},
	{"@angular/core", "Angular"},
	{"svelte", "Svelte"},

	// Python
	{"django", "Django"},
	{"flask", "Flask"},
	{"fastapi", "FastAPI"},
	{"pandas", "Pandas"},
	{"numpy", "NumPy"},
	{"torch", "PyTorch"},
	{"tensorflow", "TensorFlow"},

	// Go
	{"gin-gonic/gin", "Gin"},
	{"labstack/echo", "Echo"},
	{"gofiber/fiber", "Fiber"},

	// Rust
	{"actix-web", "Actix Web"},
	{"tokio", "Tokio"},
	{"rocket", "Rocket"},
	{"axum", "Axum"},

	// Java
	{"spring-boot", "Spring Boot"},
	{"hibernate", "Hibernate"},
	{"junit", "JUnit"},

	// C / C++
	{"qt5", "Qt"},
	{"qt6", "Qt"},
	{"boost", "Boost"},
	{"opencv", "OpenCV"},

	// Ruby / PHP
	{"rails", "Ruby on Rails"},
	{"laravel/framework", "Laravel"},
}

// Ecosystems are languages whose mere presence in the tree earns a label.
var Ecosystems = []string{"TypeScript", "Rust", "Go", "Java", "C++", "Python"}

// Classify returns the sorted, de-duplicated stack labels for the given
// detected languages and dependency names.
func Classify(languages, names []string) []string {
	labels := make(map[string]bool)

	fold := cases.Fold()
	folded := make([]string, len(names))
	for i, n := range names {
		folded[i] = fold.String(n)
	}
	for _, r := range Rules {
		for _, n := range folded {
			if strings.Contains(n, r.Pattern) {
				labels[r.Label] = true
				break
			}
		}
	}

	present := make(map[string]bool, len(languages))
	for _, l := range languages {
		present[l] = true
	}
	for _, eco := range Ecosystems {
		if present[eco] {
			labels[eco] = true
		}
	}
	for _, l := range languages {
		labels[l] = true
	}

	out := make([]string, 0, len(labels))
	for l := range labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
