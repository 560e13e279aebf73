package search

import (
	"sort"
	"strings"

	"github.com/llehouerou/announcer/internal/catalogue"
)

// minCoverage is the share of a word's trigrams that must occur in a
// transcription for the word to count as present.
const minCoverage = 0.4

// TrigramIndex performs in-memory trigram search with multi-word support.
type TrigramIndex struct {
	refs       []string
	trigrams   []map[string]struct{}
	normalized []string
}

// NewTrigramIndex builds a trigram index. It never fails.
func NewTrigramIndex(docs []catalogue.Document) (Index, error) {
	idx := &TrigramIndex{
		refs:       make([]string, len(docs)),
		trigrams:   make([]map[string]struct{}, len(docs)),
		normalized: make([]string, len(docs)),
	}
	for i, d := range docs {
		text := normalize(d.Text)
		idx.refs[i] = d.Ref
		idx.normalized[i] = text
		idx.trigrams[i] = generateTrigrams(text)
	}
	return idx, nil
}

// Search splits text into words; every word must match (AND).
// A blank query matches nothing.
func (idx *TrigramIndex) Search(text string) ([]Result, error) {
	words := strings.Fields(normalize(text))
	if len(words) == 0 {
		return nil, nil
	}

	wordTrigrams := make([]map[string]struct{}, len(words))
	for i, w := range words {
		wordTrigrams[i] = generateTrigrams(w)
	}

	var results []Result
	for i := range idx.refs {
		if score := idx.score(i, words, wordTrigrams); score > 0 {
			results = append(results, Result{Ref: idx.refs[i], Score: score})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return results, nil
}

func (idx *TrigramIndex) score(doc int, words []string, wordTrigrams []map[string]struct{}) float64 {
	text := idx.normalized[doc]
	total := 0.0

	for i, w := range words {
		// Too short for trigrams: plain substring.
		if len([]rune(w)) <= 2 {
			if !strings.Contains(text, w) {
				return 0
			}
			total++
			continue
		}

		coverage := trigramCoverage(wordTrigrams[i], idx.trigrams[doc])
		if coverage < minCoverage {
			return 0
		}
		if strings.Contains(text, w) {
			coverage += 0.5
		}
		total += coverage
	}

	return total / float64(len(words))
}

func normalize(s string) string {
	return strings.ToLower(s)
}

// generateTrigrams pads s with two spaces on each side so prefixes and
// suffixes get their own trigrams.
func generateTrigrams(s string) map[string]struct{} {
	if s == "" {
		return nil
	}

	tris := make(map[string]struct{})
	runes := []rune("  " + s + "  ")
	for i := 0; i <= len(runes)-3; i++ {
		tri := string(runes[i : i+3])
		if strings.TrimSpace(tri) != "" {
			tris[tri] = struct{}{}
		}
	}
	return tris
}

// trigramCoverage returns |query ∩ doc| / |query|.
func trigramCoverage(query, doc map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	n := 0
	for tri := range query {
		if _, ok := doc[tri]; ok {
			n++
		}
	}
	return float64(n) / float64(len(query))
}
