package domain

import "time"

// Booking statuses as they appear in the exported Reservas table.
const (
	StatusConfirmed = "Confirmada"
	StatusCancelled = "Cancelada"
	StatusNoShow    = "No-Show"
)

type Customer struct {
	ID         int
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	City       string
	State      string
	Country    string
	BirthDate  time.Time
	Gender     string
	Document   string // CPF
	SignedUpOn time.Time
}

type Booking struct {
	ID         int
	HotelID    int
	RoomID     int
	CustomerID int
	ChannelID  int
	BookedOn   time.Time
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	Status     string

	// StayValue is the unrounded sum of nightly rates. Not exported.
	StayValue float64
}

// Payment of a confirmed stay is round2(stay value + extras), so it covers
// the sum of nightly rates to the cent; it may sit up to half a cent below
// the unrounded sum.
type Payment struct {
	ID        int
	BookingID int
	Amount    float64
	Method    string
	PaidOn    time.Time
}

type BookingService struct {
	BookingID int
	ServiceID int
	Quantity  int
	Total     float64
}

type Feedback struct {
	ID        int
	BookingID int
	Rating    int
	Comment   string
	GivenOn   time.Time
}

// Loyalty tiers, highest first.
const (
	TierDiamond = "Diamante"
	TierGold    = "Ouro"
	TierSilver  = "Prata"
	TierBronze  = "Bronze"
)

type LoyaltyRecord struct {
	CustomerID int
	TotalPaid  float64
	Points     int
	Tier       string
}

type Complaint struct {
	ID        int
	BookingID int
	HotelID   int
	FiledOn   time.Time
	Reason    string
	Status    string
}

type DailyOccupancy struct {
	HotelID int
	RoomID  int
	Date    time.Time
	Rate    float64
}
