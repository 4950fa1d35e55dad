package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/catalog"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
)

// Apply executes a command against the list and returns the updated list
// plus a human-readable confirmation message. The input list is never
// mutated; every change produces a fresh slice. Missing slots and unknown
// item references are normal outcomes reported through the message.
func Apply(cmd *Command, list []shopping.Item) ([]shopping.Item, string) {
	if cmd == nil || cmd.Action == "" {
		return list, "No command"
	}

	item := strings.ToLower(strings.TrimSpace(cmd.Item))
	display := shopping.TitleCase(item)

	switch normalizeAction(cmd.Action) {
	case ActionAdd:
		return applyAdd(cmd, list, item, display)
	case ActionRemove:
		return applyRemove(cmd, list, item, display)
	case ActionModify:
		return applyModify(cmd, list, item, display)
	case ActionClear:
		return []shopping.Item{}, "Cleared list"
	case ActionComplete:
		return applyComplete(list, item, display)
	case ActionSearch:
		return list, lookupPrice(item, display)
	case ActionPrice:
		return list, priceQuery(cmd, item, display)
	}
	return list, "Unsupported action"
}

func applyAdd(cmd *Command, list []shopping.Item, item, display string) ([]shopping.Item, string) {
	qty := 1.0
	if cmd.Quantity != nil {
		qty = *cmd.Quantity
	}
	if idx := shopping.Find(list, item); idx >= 0 {
		out := shopping.Clone(list)
		out[idx].Quantity += qty
		return out, fmt.Sprintf("Increased %s by %s", out[idx].Name, formatNumber(qty))
	}
	out := append(shopping.Clone(list), shopping.NewItem(item, qty, cmd.Unit))
	return out, fmt.Sprintf("Added %s", display)
}

func applyRemove(cmd *Command, list []shopping.Item, item, display string) ([]shopping.Item, string) {
	if item == "" {
		return list, "No item to remove"
	}
	idx := shopping.Find(list, item)
	if idx < 0 {
		return list, fmt.Sprintf("Item %s not found", display)
	}
	if cmd.Quantity == nil {
		return deleteAt(list, idx), fmt.Sprintf("Removed %s", list[idx].Name)
	}
	remaining := list[idx].Quantity - *cmd.Quantity
	if remaining > 0 {
		out := shopping.Clone(list)
		out[idx].Quantity = remaining
		return out, fmt.Sprintf("Decreased %s by %s", out[idx].Name, formatNumber(*cmd.Quantity))
	}
	return deleteAt(list, idx), fmt.Sprintf("Removed %s", list[idx].Name)
}

func applyModify(cmd *Command, list []shopping.Item, item, display string) ([]shopping.Item, string) {
	if item == "" {
		return list, "No item to modify"
	}
	idx := shopping.Find(list, item)
	if idx < 0 {
		return list, fmt.Sprintf("Item %s not found", display)
	}
	if cmd.Quantity == nil {
		return list, "No quantity provided"
	}
	out := shopping.Clone(list)
	out[idx].Quantity = *cmd.Quantity
	return out, fmt.Sprintf("Set %s quantity to %s", out[idx].Name, formatNumber(*cmd.Quantity))
}

func applyComplete(list []shopping.Item, item, display string) ([]shopping.Item, string) {
	if item == "" {
		return list, "No item to complete"
	}
	idx := shopping.Find(list, item)
	if idx < 0 {
		return list, fmt.Sprintf("Item %s not found", display)
	}
	out := shopping.Clone(list)
	out[idx].Completed = true
	return out, fmt.Sprintf("Marked %s as complete", out[idx].Name)
}

// lookupPrice reports a single product's price from the static table.
func lookupPrice(item, display string) string {
	if item == "" {
		return "Please specify an item to search"
	}
	if price, ok := catalog.Price(item); ok {
		return fmt.Sprintf("%s is available for ₹%s", display, formatNumber(price))
	}
	return fmt.Sprintf("%s not found in price list", display)
}

// priceQuery lists catalog items at or below the requested ceiling.
// Without a ceiling it falls back to a single-item lookup when an item
// was named ("how much is apple").
func priceQuery(cmd *Command, item, display string) string {
	ceiling, ok := cmd.Filters[FilterPrice]
	if !ok || ceiling <= 0 {
		if item != "" {
			return lookupPrice(item, display)
		}
		return "No price provided"
	}

	entries := catalog.Under(ceiling)
	if len(entries) == 0 {
		return fmt.Sprintf("No items under ₹%s", formatNumber(ceiling))
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s (₹%s)", shopping.TitleCase(e.Name), formatNumber(e.Price))
	}
	return fmt.Sprintf("Items under ₹%s: %s", formatNumber(ceiling), strings.Join(parts, ", "))
}

func deleteAt(list []shopping.Item, idx int) []shopping.Item {
	out := make([]shopping.Item, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
