package shopping

import (
	"strings"
	"testing"
)

func TestNewItem(t *testing.T) {
	item := NewItem("milk", 2, "bottle")

	if item.ID == "" {
		t.Error("expected a generated ID")
	}
	if item.Name != "Milk" {
		t.Errorf("expected Title-cased name, got %q", item.Name)
	}
	if item.Quantity != 2 || item.Unit != "bottle" {
		t.Errorf("unexpected quantity/unit: %v %q", item.Quantity, item.Unit)
	}
	if item.Category != "dairy" {
		t.Errorf("expected category dairy, got %q", item.Category)
	}
	if item.Completed {
		t.Error("new item should not be completed")
	}
	if item.AddedAt.IsZero() {
		t.Error("expected AddedAt to be set")
	}

	other := NewItem("milk", 2, "bottle")
	if other.ID == item.ID {
		t.Error("IDs must be unique per item")
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"milk", "dairy"},
		{"Cheese", "dairy"},
		{"apple", "produce"},
		{"apples", "produce"},
		{"bread", "staples"},
		{"orange juice", "produce"}, // first keyword match wins
		{"soda", "beverages"},
		{"caviar", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		if got := Categorize(tt.name); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFind(t *testing.T) {
	list := []Item{
		NewItem("Milk", 1, ""),
		NewItem("Brown Bread", 1, ""),
	}

	tests := []struct {
		name string
		want int
	}{
		{"milk", 0},
		{"MILK", 0},
		{"  milk  ", 0},
		{"brown bread", 1},
		{"bread", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := Find(list, tt.name); got != tt.want {
			t.Errorf("Find(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}

	if Find(nil, "milk") != -1 {
		t.Error("Find on nil list should return -1")
	}
}

func TestClone(t *testing.T) {
	original := []Item{NewItem("milk", 1, "")}
	clone := Clone(original)

	clone[0].Quantity = 99
	if original[0].Quantity != 1 {
		t.Error("mutating the clone changed the original")
	}

	if got := Clone(nil); len(got) != 0 {
		t.Errorf("Clone(nil) = %+v, want empty", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"milk", "Milk"},
		{"MILK", "Milk"},
		{"brown bread", "Brown Bread"},
		{"  almond   milk  ", "Almond Milk"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.input); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{Quantity: 2}, "2"},
		{Item{Quantity: 1.5}, "1.5"},
		{Item{Quantity: 2, Unit: "kg"}, "2 kg"},
		{Item{Quantity: 0.25, Unit: "liter"}, "0.25 liter"},
	}

	for _, tt := range tests {
		if got := FormatQuantity(tt.item); got != tt.want {
			t.Errorf("FormatQuantity(%+v) = %q, want %q", tt.item, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	if got := Render(nil); got != "Shopping list is empty" {
		t.Errorf("unexpected empty render: %q", got)
	}

	list := []Item{NewItem("milk", 2, "")}
	got := Render(list)
	if !strings.Contains(got, "Shopping List (1 items)") {
		t.Errorf("missing header in %q", got)
	}
	if !strings.Contains(got, "Milk") || !strings.Contains(got, "[dairy]") {
		t.Errorf("missing item line in %q", got)
	}
}

func TestRenderPlain(t *testing.T) {
	list := []Item{
		NewItem("milk", 2, ""),
		NewItem("bread", 1, ""),
	}
	list[1].Completed = true

	got := RenderPlain(list)
	if !strings.Contains(got, "[ ] 2 Milk") {
		t.Errorf("missing open item in %q", got)
	}
	if !strings.Contains(got, "[x] 1 Bread") {
		t.Errorf("missing completed item in %q", got)
	}
}
