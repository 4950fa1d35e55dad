// Package parser turns free-form instructions into structured commands.
// The local parser is a regex/lexicon classifier; an optional remote
// parser submits the instruction to a text-completion service and falls
// back to the local parser on any failure.
package parser

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/command"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/translator"
)

// ErrNoCommand reports an instruction that matched no known action or
// was missing a required item. Callers show a generic "could not
// understand" message; this is never a stack-level failure.
var ErrNoCommand = errors.New("no recognized command")

// Parser extracts a command from an instruction. A failed parse returns
// ErrNoCommand, never a partial command.
type Parser interface {
	Parse(ctx context.Context, text string) (*command.Command, error)
}

// actionPatterns classifies instructions in priority order; the first
// matching group wins.
var actionPatterns = []struct {
	action command.Action
	re     *regexp.Regexp
}{
	{command.ActionAdd, regexp.MustCompile(`\b(add|buy|get|append)\b`)},
	{command.ActionRemove, regexp.MustCompile(`\b(remove|delete)\b|\btake off\b`)},
	{command.ActionModify, regexp.MustCompile(`\b(modify|change|update|set)\b`)},
	{command.ActionSearch, regexp.MustCompile(`\b(search|find)\b|\blook for\b`)},
	{command.ActionClear, regexp.MustCompile(`\b(clear|empty)\b|\bdelete all\b`)},
	{command.ActionComplete, regexp.MustCompile(`\b(done|complete|completed|purchased|got)\b`)},
	{command.ActionPrice, regexp.MustCompile(`\b(price|cost|rate)\b|\bhow much\b`)},
}

var (
	numberRe     = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\b`)
	numberWordRe = regexp.MustCompile(`\b(one|two|three|four|five|six|seven|eight|nine|ten)\b`)
	unitRe       = regexp.MustCompile(`\b(bottles?|cans?|boxes?|bags?|packs?|pieces?|items?|kg|g|l|ml|pounds?|lbs?)\b`)
	stopWordRe   = regexp.MustCompile(`\b(to|my|the|a|an|of|list|please|with|quantity|for|is|are|me|some|under|below)\b`)
	nonLetterRe  = regexp.MustCompile(`[^a-z\s]`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

var numberWords = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// pluralUnits folds plural unit words onto their singular label.
var pluralUnits = map[string]string{
	"bottles": "bottle", "cans": "can", "boxes": "box", "bags": "bag",
	"packs": "pack", "pieces": "piece", "items": "item",
	"pounds": "pound", "lbs": "lb",
}

// Local is the heuristic regex/lexicon parser.
type Local struct {
	normalizer translator.Normalizer
}

// NewLocal creates a local parser that normalizes input through n first.
func NewLocal(n translator.Normalizer) *Local {
	return &Local{normalizer: n}
}

// Parse classifies the instruction and extracts its slots. The context
// is unused; the local parser never blocks.
func (p *Local) Parse(_ context.Context, text string) (*command.Command, error) {
	english := strings.TrimSpace(strings.ToLower(p.normalizer.Normalize(text)))
	if english == "" {
		return nil, ErrNoCommand
	}

	var action command.Action
	for _, ap := range actionPatterns {
		if ap.re.MatchString(english) {
			action = ap.action
			break
		}
	}
	if action == "" {
		return nil, ErrNoCommand
	}

	quantity := extractQuantity(english)
	unit := extractUnit(english)
	item := extractItem(english)

	cmd := &command.Command{
		Action:  action,
		Item:    item,
		Unit:    unit,
		Filters: map[string]float64{},
	}

	switch action {
	case command.ActionPrice:
		// A bare number on a price instruction is a ceiling, not a count.
		if quantity != nil {
			cmd.Filters[command.FilterPrice] = *quantity
		}
	case command.ActionAdd:
		if quantity == nil {
			quantity = command.Qty(1)
		}
		cmd.Quantity = quantity
	default:
		cmd.Quantity = quantity
	}

	if item == "" && requiresItem(action) {
		return nil, ErrNoCommand
	}
	return cmd, nil
}

func requiresItem(a command.Action) bool {
	switch a {
	case command.ActionAdd, command.ActionRemove, command.ActionModify,
		command.ActionComplete, command.ActionPrice:
		return true
	}
	return false
}

// extractQuantity prefers a numeric literal, then a spelled-out number.
func extractQuantity(text string) *float64 {
	if m := numberRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return command.Qty(v)
		}
	}
	if m := numberWordRe.FindStringSubmatch(text); m != nil {
		return command.Qty(numberWords[m[1]])
	}
	return nil
}

// extractUnit captures the first recognized unit word, singularized.
func extractUnit(text string) string {
	m := unitRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if singular, ok := pluralUnits[m[1]]; ok {
		return singular
	}
	return m[1]
}

// extractItem strips action triggers, stop words, units, numbers, and
// punctuation; whatever survives is the item name.
func extractItem(text string) string {
	for _, ap := range actionPatterns {
		text = ap.re.ReplaceAllString(text, " ")
	}
	text = stopWordRe.ReplaceAllString(text, " ")
	text = unitRe.ReplaceAllString(text, " ")
	text = numberRe.ReplaceAllString(text, " ")
	text = numberWordRe.ReplaceAllString(text, " ")
	text = nonLetterRe.ReplaceAllString(text, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
