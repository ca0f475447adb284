package domain

// Dataset holds every table produced by one generation run.
type Dataset struct {
	Hotels      []Hotel
	Rooms       []Room
	Channels    []SalesChannel
	Services    []Service
	Departments []Department

	Customers []Customer
	Employees []Employee
	Suppliers []Supplier
	Products  []Product

	Bookings        []Booking
	Payments        []Payment
	BookingServices []BookingService
	Feedback        []Feedback

	Loyalty    []LoyaltyRecord
	Complaints []Complaint
	Occupancy  []DailyOccupancy

	Movements   []InventoryMovement
	Maintenance []MaintenanceTicket
	Events      []Event
}
