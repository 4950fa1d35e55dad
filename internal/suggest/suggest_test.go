package suggest

import (
	"testing"
	"time"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
)

// midJuly falls in summer; midJanuary in winter.
var (
	midJuly    = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
	midJanuary = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
)

func repeat(name string, n int) []shopping.Item {
	out := make([]shopping.Item, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, shopping.NewItem(name, 1, ""))
	}
	return out
}

func byName(suggestions []Suggestion, name string) (Suggestion, bool) {
	for _, s := range suggestions {
		if s.Name == name {
			return s, true
		}
	}
	return Suggestion{}, false
}

func TestGenerate_HistoryFrequency(t *testing.T) {
	history := append(repeat("milk", 3), repeat("bread", 1)...)

	got := Generate(nil, history, midJuly)

	milk, ok := byName(got, "milk")
	if !ok {
		t.Fatal("expected milk suggested from history")
	}
	if milk.Source != SourceHistory {
		t.Errorf("expected history source, got %s", milk.Source)
	}
	if milk.Confidence != 0.3 {
		t.Errorf("expected confidence 0.3 for 3 purchases, got %v", milk.Confidence)
	}

	bread, ok := byName(got, "bread")
	if !ok {
		t.Fatal("expected bread suggested from history")
	}
	if bread.Confidence != 0.1 {
		t.Errorf("expected confidence 0.1 for 1 purchase, got %v", bread.Confidence)
	}
}

func TestGenerate_HistoryConfidenceCapped(t *testing.T) {
	got := Generate(nil, repeat("milk", 25), midJuly)

	milk, ok := byName(got, "milk")
	if !ok {
		t.Fatal("expected milk suggested")
	}
	if milk.Confidence != 1 {
		t.Errorf("expected confidence capped at 1, got %v", milk.Confidence)
	}
}

func TestGenerate_ExcludesListedItems(t *testing.T) {
	list := []shopping.Item{shopping.NewItem("milk", 1, "")}
	history := repeat("milk", 5)

	got := Generate(list, history, midJuly)
	if _, ok := byName(got, "milk"); ok {
		t.Error("items already on the list must not be suggested")
	}
}

func TestGenerate_Seasonal(t *testing.T) {
	got := Generate(nil, nil, midJuly)

	watermelon, ok := byName(got, "watermelon")
	if !ok {
		t.Fatal("expected a summer suggestion in July")
	}
	if watermelon.Source != SourceSeasonal || watermelon.Confidence != 0.7 {
		t.Errorf("unexpected seasonal suggestion: %+v", watermelon)
	}

	seasonal := 0
	for _, s := range got {
		if s.Source == SourceSeasonal {
			seasonal++
		}
	}
	if seasonal != maxSeasonal {
		t.Errorf("expected %d seasonal suggestions, got %d", maxSeasonal, seasonal)
	}

	// A winter date yields winter produce instead.
	winter := Generate(nil, nil, midJanuary)
	if _, ok := byName(winter, "oranges"); !ok {
		t.Error("expected oranges suggested in January")
	}
	if _, ok := byName(winter, "watermelon"); ok {
		t.Error("watermelon is not a winter suggestion")
	}
}

func TestGenerate_Substitutes(t *testing.T) {
	list := []shopping.Item{shopping.NewItem("milk", 1, "")}

	got := Generate(list, nil, midJuly)

	almond, ok := byName(got, "almond milk")
	if !ok {
		t.Fatal("expected almond milk as a substitute for milk")
	}
	if almond.Source != SourceSubstitute || almond.Confidence != 0.6 {
		t.Errorf("unexpected substitute suggestion: %+v", almond)
	}
	if _, ok := byName(got, "soy milk"); !ok {
		t.Error("expected soy milk as a second substitute")
	}
}

func TestGenerate_SortedAndCapped(t *testing.T) {
	// Enough sources to exceed the cap: frequent history, season, substitutes.
	list := []shopping.Item{
		shopping.NewItem("milk", 1, ""),
		shopping.NewItem("sugar", 1, ""),
		shopping.NewItem("bread", 1, ""),
	}
	history := append(repeat("rice", 9), repeat("oil", 4)...)
	history = append(history, repeat("egg", 2)...)

	got := Generate(list, history, midJuly)

	if len(got) > maxSuggestions {
		t.Fatalf("expected at most %d suggestions, got %d", maxSuggestions, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Confidence < got[i].Confidence {
			t.Fatalf("suggestions not sorted by confidence: %+v", got)
		}
	}

	rice, ok := byName(got, "rice")
	if !ok {
		t.Fatal("expected the most frequent history item to survive the cap")
	}
	if got[0].Name != rice.Name {
		t.Errorf("expected rice (0.9) first, got %+v", got[0])
	}
}

func TestGenerate_Empty(t *testing.T) {
	// Only seasonal suggestions remain with no list and no history.
	got := Generate(nil, nil, midJuly)
	for _, s := range got {
		if s.Source != SourceSeasonal {
			t.Errorf("unexpected suggestion without history or list: %+v", s)
		}
	}
	if len(got) == 0 {
		t.Error("expected seasonal suggestions even with empty inputs")
	}
}
