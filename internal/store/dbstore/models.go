package dbstore

import (
	"time"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
)

// ListItemModel is the persisted form of a live shopping list entry.
type ListItemModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	ItemID    string    `gorm:"size:64;not null;uniqueIndex"` // stable item identifier
	Name      string    `gorm:"size:120;not null"`
	Quantity  float64   `gorm:"not null"`
	Unit      string    `gorm:"size:40"`
	Category  string    `gorm:"size:40;not null"`
	Completed bool      `gorm:"not null;default:false"`
	AddedAt   time.Time `gorm:"not null"`
	Position  int       `gorm:"not null;index"` // preserves list order across saves
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for ListItemModel.
func (ListItemModel) TableName() string {
	return "list_items"
}

// ToItem converts the GORM model to a shopping.Item.
func (m *ListItemModel) ToItem() shopping.Item {
	return shopping.Item{
		ID:        m.ItemID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		Unit:      m.Unit,
		Category:  m.Category,
		Completed: m.Completed,
		AddedAt:   m.AddedAt,
	}
}

// HistoryItemModel records an item that was marked completed. Rows are
// append-only and feed suggestion frequency across sessions.
type HistoryItemModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	ItemID      string    `gorm:"size:64;not null;index"`
	Name        string    `gorm:"size:120;not null;index"`
	Quantity    float64   `gorm:"not null"`
	Unit        string    `gorm:"size:40"`
	Category    string    `gorm:"size:40;not null"`
	AddedAt     time.Time `gorm:"not null"`
	CompletedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for HistoryItemModel.
func (HistoryItemModel) TableName() string {
	return "history_items"
}

// ToItem converts the GORM model to a shopping.Item.
func (m *HistoryItemModel) ToItem() shopping.Item {
	return shopping.Item{
		ID:        m.ItemID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		Unit:      m.Unit,
		Category:  m.Category,
		Completed: true,
		AddedAt:   m.AddedAt,
	}
}

func fromItem(item shopping.Item, position int) ListItemModel {
	return ListItemModel{
		ItemID:    item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Category:  item.Category,
		Completed: item.Completed,
		AddedAt:   item.AddedAt,
		Position:  position,
	}
}

func historyFromItem(item shopping.Item) HistoryItemModel {
	return HistoryItemModel{
		ItemID:   item.ID,
		Name:     item.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Category: item.Category,
		AddedAt:  item.AddedAt,
	}
}
