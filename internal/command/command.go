// Package command defines the structured representation of a parsed
// instruction and the canonical executor that applies it to a shopping
// list. Both execution paths (direct and compiled-query) resolve to the
// semantics implemented here.
package command

// Action is the closed set of instruction kinds.
type Action string

const (
	ActionAdd      Action = "add"
	ActionRemove   Action = "remove"
	ActionModify   Action = "modify"
	ActionSearch   Action = "search"
	ActionClear    Action = "clear"
	ActionComplete Action = "complete"
	ActionPrice    Action = "price"
)

// FilterPrice is the filter key for a price-ceiling query.
const FilterPrice = "price"

// Command is a structured user instruction. Item is stored lowercase and
// Title-cased only for display. Quantity is nil when the instruction
// carried none; the executor applies per-action defaults.
type Command struct {
	Action   Action
	Item     string
	Quantity *float64
	Unit     string
	Filters  map[string]float64
}

// Qty is a convenience constructor for optional quantities.
func Qty(v float64) *float64 {
	return &v
}

// normalizeAction folds remote-parser synonyms onto the closed set.
func normalizeAction(a Action) Action {
	switch a {
	case "update":
		return ActionModify
	case "find":
		return ActionSearch
	}
	return a
}
