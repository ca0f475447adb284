package domain

import "time"

// Inventory movement directions.
const (
	MovementIn  = "Entrada"
	MovementOut = "Saida"
)

type Product struct {
	ID       int
	HotelID  int
	Name     string
	Category string
	Unit     string
	AvgCost  float64
}

type InventoryMovement struct {
	ID        int
	HotelID   int
	ProductID int
	Kind      string
	Quantity  int
	Date      time.Time
}

type MaintenanceTicket struct {
	ID      int
	HotelID int
	RoomID  int
	Kind    string
	Start   time.Time
	End     time.Time
	Status  string
	Cost    float64
}

type Event struct {
	ID      int
	HotelID int
	Kind    string
	Start   time.Time
	End     time.Time
	Revenue float64
}
