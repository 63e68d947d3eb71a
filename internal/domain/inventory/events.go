package inventory

import "time"

// StockAddedEvent is emitted after stock is successfully added to an item.
type StockAddedEvent struct {
	Item       string
	Quantity   int
	Total      int
	OccurredAt time.Time
}

func (StockAddedEvent) EventName() string { return "stock.added" }

func NewStockAddedEvent(item string, quantity, total int) StockAddedEvent {
	return StockAddedEvent{
		Item:       item,
		Quantity:   quantity,
		Total:      total,
		OccurredAt: time.Now().UTC(),
	}
}

// StockRemovedEvent is emitted after stock is decremented but the item remains.
type StockRemovedEvent struct {
	Item       string
	Quantity   int
	Remaining  int
	OccurredAt time.Time
}

func (StockRemovedEvent) EventName() string { return "stock.removed" }

func NewStockRemovedEvent(item string, quantity, remaining int) StockRemovedEvent {
	return StockRemovedEvent{
		Item:       item,
		Quantity:   quantity,
		Remaining:  remaining,
		OccurredAt: time.Now().UTC(),
	}
}

// StockDepletedEvent is emitted when a removal drives an item to zero or
// below and the item is deleted from the inventory.
type StockDepletedEvent struct {
	Item       string
	Quantity   int
	OccurredAt time.Time
}

func (StockDepletedEvent) EventName() string { return "stock.depleted" }

func NewStockDepletedEvent(item string, quantity int) StockDepletedEvent {
	return StockDepletedEvent{
		Item:       item,
		Quantity:   quantity,
		OccurredAt: time.Now().UTC(),
	}
}
