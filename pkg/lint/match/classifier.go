package match

import "strings"

// Classifier maps a type name to a coarse architectural category
// ("service", "repository", ...). Classification by name suffix is
// inherently approximate; keeping it a pluggable strategy lets rules
// share one suffix set and lets tests swap it out.
type Classifier func(typeName string) (category string, ok bool)

// SuffixClassifier builds a classifier from a suffix-to-category table.
// Longer suffixes win when several match.
func SuffixClassifier(suffixes map[string]string) Classifier {
	return func(typeName string) (string, bool) {
		best, bestLen := "", 0
		for suffix, category := range suffixes {
			if strings.HasSuffix(typeName, suffix) && len(suffix) > bestLen {
				best, bestLen = category, len(suffix)
			}
		}
		return best, bestLen > 0
	}
}

// DefaultClassifier covers the conventional layer suffixes.
var DefaultClassifier = SuffixClassifier(map[string]string{
	"Service":    "service",
	"Repository": "repository",
	"Controller": "controller",
	"Provider":   "provider",
	"Cache":      "cache",
	"Client":     "client",
})
