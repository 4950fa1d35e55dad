// Package suggest recommends items to add next, drawing on purchase
// history, the current season, and known substitutes for listed items.
package suggest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/catalog"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
)

// Source identifies why an item was suggested.
type Source string

const (
	SourceHistory    Source = "history"
	SourceSeasonal   Source = "seasonal"
	SourceSubstitute Source = "substitute"
)

// Suggestion is a single recommendation with a confidence score in (0, 1].
type Suggestion struct {
	ID         string
	Name       string
	Source     Source
	Confidence float64
}

const (
	maxSuggestions = 8
	maxHistory     = 5
	maxSeasonal    = 3
	maxSubstitutes = 2
)

// Generate builds suggestions from history frequency, the season for
// now, and substitutes for items already listed. Items already on the
// list are never suggested. Results are sorted by confidence and capped.
func Generate(list, history []shopping.Item, now time.Time) []Suggestion {
	onList := make(map[string]bool, len(list))
	for _, item := range list {
		onList[strings.ToLower(item.Name)] = true
	}

	var out []Suggestion
	out = append(out, fromHistory(history, onList)...)
	out = append(out, fromSeason(now, onList)...)
	out = append(out, fromSubstitutes(list, onList)...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// fromHistory picks the most frequently completed items not currently listed.
func fromHistory(history []shopping.Item, onList map[string]bool) []Suggestion {
	freq := make(map[string]int)
	for _, item := range history {
		name := strings.ToLower(item.Name)
		if !onList[name] {
			freq[name]++
		}
	}

	names := make([]string, 0, len(freq))
	for name := range freq {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if freq[names[i]] != freq[names[j]] {
			return freq[names[i]] > freq[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > maxHistory {
		names = names[:maxHistory]
	}

	out := make([]Suggestion, 0, len(names))
	for _, name := range names {
		confidence := float64(freq[name]) / 10
		if confidence > 1 {
			confidence = 1
		}
		out = append(out, Suggestion{
			ID:         "hist-" + name,
			Name:       name,
			Source:     SourceHistory,
			Confidence: confidence,
		})
	}
	return out
}

func fromSeason(now time.Time, onList map[string]bool) []Suggestion {
	var out []Suggestion
	for _, name := range catalog.Seasonal(catalog.CurrentSeason(now)) {
		if onList[strings.ToLower(name)] {
			continue
		}
		out = append(out, Suggestion{
			ID:         "seasonal-" + name,
			Name:       name,
			Source:     SourceSeasonal,
			Confidence: 0.7,
		})
		if len(out) == maxSeasonal {
			break
		}
	}
	return out
}

func fromSubstitutes(list []shopping.Item, onList map[string]bool) []Suggestion {
	var out []Suggestion
	for _, item := range list {
		count := 0
		for _, sub := range catalog.Substitutes(item.Name) {
			if onList[strings.ToLower(sub)] {
				continue
			}
			out = append(out, Suggestion{
				ID:         fmt.Sprintf("sub-%s-%s", item.ID, sub),
				Name:       sub,
				Source:     SourceSubstitute,
				Confidence: 0.6,
			})
			count++
			if count == maxSubstitutes {
				break
			}
		}
	}
	return out
}
