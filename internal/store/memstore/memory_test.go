package memstore

import (
	"testing"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
)

func TestEmptyStore(t *testing.T) {
	s := New()
	defer s.Close()

	list, err := s.LoadList()
	if err != nil {
		t.Fatalf("LoadList: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %+v", list)
	}

	history, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history, got %+v", history)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := New()

	want := []shopping.Item{
		shopping.NewItem("milk", 2, ""),
		shopping.NewItem("bread", 1, ""),
	}
	if err := s.SaveList(want); err != nil {
		t.Fatalf("SaveList: %v", err)
	}

	got, err := s.LoadList()
	if err != nil {
		t.Fatalf("LoadList: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Milk" || got[1].Name != "Bread" {
		t.Errorf("unexpected list: %+v", got)
	}

	// Mutating a loaded copy must not leak into the store.
	got[0].Quantity = 99
	reloaded, _ := s.LoadList()
	if reloaded[0].Quantity != 2 {
		t.Error("LoadList returned a live reference, not a copy")
	}
}

func TestSaveRecordsCompletedToHistory(t *testing.T) {
	s := New()

	list := []shopping.Item{
		shopping.NewItem("milk", 2, ""),
		shopping.NewItem("bread", 1, ""),
	}
	list[0].Completed = true

	if err := s.SaveList(list); err != nil {
		t.Fatalf("SaveList: %v", err)
	}

	history, _ := s.History()
	if len(history) != 1 || history[0].Name != "Milk" {
		t.Errorf("expected Milk in history, got %+v", history)
	}

	// Saving again appends another record for the still-completed item.
	if err := s.SaveList(list); err != nil {
		t.Fatalf("SaveList: %v", err)
	}
	history, _ = s.History()
	if len(history) != 2 {
		t.Errorf("expected 2 history records, got %d", len(history))
	}
}

func TestAppendHistory(t *testing.T) {
	s := New()

	if err := s.AppendHistory([]shopping.Item{shopping.NewItem("egg", 12, "")}); err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}

	history, _ := s.History()
	if len(history) != 1 || history[0].Name != "Egg" {
		t.Errorf("unexpected history: %+v", history)
	}
}

func TestClearKeepsHistory(t *testing.T) {
	s := New()

	list := []shopping.Item{shopping.NewItem("milk", 1, "")}
	list[0].Completed = true
	if err := s.SaveList(list); err != nil {
		t.Fatalf("SaveList: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	got, _ := s.LoadList()
	if len(got) != 0 {
		t.Errorf("expected cleared list, got %+v", got)
	}
	history, _ := s.History()
	if len(history) != 1 {
		t.Errorf("Clear must keep history, got %+v", history)
	}
}
