// Package catalog holds the fixed, read-only product data tables: the
// static price list, seasonal item lists, and substitute suggestions.
// These are inputs to the command executor and the suggestion engine;
// nothing here mutates.
package catalog

import (
	"sort"
	"strings"
	"time"
)

// Entry is a priced catalog product.
type Entry struct {
	Name  string
	Price float64
}

// prices is the static price table, in rupees.
var prices = map[string]float64{
	"apple":  120,
	"banana": 60,
	"milk":   55,
	"bread":  45,
	"rice":   80,
	"sugar":  50,
	"oil":    150,
	"egg":    6,
}

// Price looks up a product price by case-insensitive name.
func Price(name string) (float64, bool) {
	p, ok := prices[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Under returns every catalog entry priced at or below ceiling,
// sorted by name for stable output.
func Under(ceiling float64) []Entry {
	var out []Entry
	for name, price := range prices {
		if price <= ceiling {
			out = append(out, Entry{Name: name, Price: price})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Season identifies a quarter of the year for seasonal suggestions.
type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
)

// seasonal lists a few in-season items per season.
var seasonal = map[Season][]string{
	Winter: {"oranges", "carrots", "spinach", "peas"},
	Spring: {"strawberries", "mangoes", "cucumber"},
	Summer: {"watermelon", "mangoes", "lemonade", "curd"},
	Fall:   {"apples", "pumpkin", "grapes"},
}

// substitutes maps an item to common replacements.
var substitutes = map[string][]string{
	"milk":   {"almond milk", "soy milk"},
	"butter": {"margarine", "olive oil"},
	"sugar":  {"honey", "jaggery"},
	"bread":  {"buns", "tortillas"},
	"rice":   {"quinoa", "couscous"},
	"egg":    {"tofu", "paneer"},
}

// CurrentSeason maps a point in time to its season.
// December through February is winter.
func CurrentSeason(now time.Time) Season {
	switch month := now.Month(); {
	case month == time.December || month <= time.February:
		return Winter
	case month >= time.March && month <= time.May:
		return Spring
	case month >= time.June && month <= time.August:
		return Summer
	default:
		return Fall
	}
}

// Seasonal returns the in-season item list for a season.
func Seasonal(s Season) []string {
	return seasonal[s]
}

// Substitutes returns known replacements for an item, if any.
func Substitutes(name string) []string {
	return substitutes[strings.ToLower(strings.TrimSpace(name))]
}
