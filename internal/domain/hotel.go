package domain

import "time"

type Hotel struct {
	ID         int
	Chain      string
	Name       string
	City       string
	State      string // UF
	Country    string
	Category   string // "4 estrelas" | "5 estrelas"
	Phone      string
	Email      string
	OpenedOn   time.Time
	TotalRooms int
}

type Room struct {
	ID       int
	HotelID  int
	Number   string
	Type     string
	BaseRate float64 // PrecoBase, already rounded to cents
	Floor    int
	Capacity int
	Status   string
}

type SalesChannel struct {
	ID   int
	Name string
}

type Service struct {
	ID          int
	Name        string
	Description string
	Price       float64
}

type Department struct {
	ID   int
	Name string
}

type Employee struct {
	ID           int
	HotelID      int
	FirstName    string
	LastName     string
	Role         string
	DepartmentID int
	HiredOn      time.Time
	Salary       int
}

type Supplier struct {
	ID          int
	HotelID     int
	CompanyName string
	Category    string
	Phone       string
	Email       string
	City        string
	State       string
	Country     string
}
