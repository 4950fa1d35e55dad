package shopping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	completedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	categoryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render formats the list for terminal display, one item per line.
func Render(list []Item) string {
	if len(list) == 0 {
		return "Shopping list is empty"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Shopping List (%d items)", len(list))))
	b.WriteString("\n")
	for _, item := range list {
		line := fmt.Sprintf("  %s %s", FormatQuantity(item), item.Name)
		if item.Completed {
			line = completedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString(categoryStyle.Render("  [" + item.Category + "]"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderPlain formats the list without styling, suitable for clipboard export.
func RenderPlain(list []Item) string {
	var b strings.Builder
	for _, item := range list {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s %s\n", mark, FormatQuantity(item), item.Name)
	}
	return b.String()
}

// FormatQuantity renders an item's quantity with its unit when present.
// Whole numbers drop the decimal point ("2", not "2.0").
func FormatQuantity(item Item) string {
	qty := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
	if item.Unit != "" {
		return qty + " " + item.Unit
	}
	return qty
}
