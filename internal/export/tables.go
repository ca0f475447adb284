package export

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"aurora_hotels/internal/domain"
)

/********** cell formatting **********/

func fint(v int) string { return strconv.Itoa(v) }

// fmoney renders a currency amount with exactly two decimals.
func fmoney(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }

func fdate(t time.Time) string { return t.Format("2006-01-02") }

// yearMonth returns the Ano, Mes and AnoMes cells of a date.
func yearMonth(t time.Time) []string {
	return []string{fint(t.Year()), fint(int(t.Month())), t.Format("2006-01")}
}

func table(name string, rows [][]string) domain.Table {
	return domain.Table{Name: name, Columns: schemas[name], Rows: rows}
}

/********** dataset -> tables **********/

// Tables maps a dataset to its exported tables, in export order.
func Tables(ds domain.Dataset) []domain.Table {
	return []domain.Table{
		hotels(ds.Hotels),
		rooms(ds.Rooms),
		channels(ds.Channels),
		services(ds.Services),
		departments(ds.Departments),
		customers(ds.Customers),
		bookings(ds.Bookings),
		payments(ds.Payments),
		bookingServices(ds.BookingServices),
		feedback(ds.Feedback),
		employees(ds.Employees),
		suppliers(ds.Suppliers),
		products(ds.Products),
		movements(ds.Movements),
		maintenance(ds.Maintenance),
		events(ds.Events),
		loyalty(ds.Loyalty),
		complaints(ds.Complaints),
		occupancy(ds.Occupancy),
	}
}

func hotels(in []domain.Hotel) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, h := range in {
		rows = append(rows, []string{
			fint(h.ID), h.Chain, h.Name, h.City, h.State, h.Country, h.Category,
			h.Phone, h.Email, fdate(h.OpenedOn), fint(h.TotalRooms),
		})
	}
	return table(TableHotels, rows)
}

func rooms(in []domain.Room) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, r := range in {
		rows = append(rows, []string{
			fint(r.ID), fint(r.HotelID), r.Number, r.Type, fmoney(r.BaseRate),
			fint(r.Floor), fint(r.Capacity), r.Status,
		})
	}
	return table(TableRooms, rows)
}

func channels(in []domain.SalesChannel) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, c := range in {
		rows = append(rows, []string{fint(c.ID), c.Name})
	}
	return table(TableChannels, rows)
}

func services(in []domain.Service) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, s := range in {
		rows = append(rows, []string{fint(s.ID), s.Name, s.Description, fmoney(s.Price)})
	}
	return table(TableServices, rows)
}

func departments(in []domain.Department) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, d := range in {
		rows = append(rows, []string{fint(d.ID), d.Name})
	}
	return table(TableDepartments, rows)
}

func customers(in []domain.Customer) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, c := range in {
		rows = append(rows, []string{
			fint(c.ID), c.FirstName, c.LastName, c.Email, c.Phone, c.City, c.State, c.Country,
			fdate(c.BirthDate), c.Gender, c.Document, fdate(c.SignedUpOn),
		})
	}
	return table(TableCustomers, rows)
}

func bookings(in []domain.Booking) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, b := range in {
		row := []string{
			fint(b.ID), fint(b.HotelID), fint(b.RoomID), fint(b.CustomerID), fint(b.ChannelID),
			fdate(b.BookedOn), fdate(b.CheckIn), fdate(b.CheckOut), fint(b.Nights), b.Status,
		}
		row = append(row, yearMonth(b.CheckIn)...)
		row = append(row, yearMonth(b.BookedOn)...)
		rows = append(rows, row)
	}
	return table(TableBookings, rows)
}

func payments(in []domain.Payment) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, p := range in {
		row := []string{fint(p.ID), fint(p.BookingID), fmoney(p.Amount), p.Method, fdate(p.PaidOn)}
		rows = append(rows, append(row, yearMonth(p.PaidOn)...))
	}
	return table(TablePayments, rows)
}

func bookingServices(in []domain.BookingService) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, s := range in {
		rows = append(rows, []string{fint(s.BookingID), fint(s.ServiceID), fint(s.Quantity), fmoney(s.Total)})
	}
	return table(TableBookingServices, rows)
}

func feedback(in []domain.Feedback) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, f := range in {
		rows = append(rows, []string{fint(f.ID), fint(f.BookingID), fint(f.Rating), f.Comment, fdate(f.GivenOn)})
	}
	return table(TableFeedback, rows)
}

func employees(in []domain.Employee) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, e := range in {
		rows = append(rows, []string{
			fint(e.ID), fint(e.HotelID), e.FirstName, e.LastName, e.Role,
			fint(e.DepartmentID), fdate(e.HiredOn), fint(e.Salary),
		})
	}
	return table(TableEmployees, rows)
}

func suppliers(in []domain.Supplier) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, s := range in {
		rows = append(rows, []string{
			fint(s.ID), fint(s.HotelID), s.CompanyName, s.Category, s.Phone, s.Email,
			s.City, s.State, s.Country,
		})
	}
	return table(TableSuppliers, rows)
}

func products(in []domain.Product) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, p := range in {
		rows = append(rows, []string{fint(p.ID), fint(p.HotelID), p.Name, p.Category, p.Unit, fmoney(p.AvgCost)})
	}
	return table(TableProducts, rows)
}

func movements(in []domain.InventoryMovement) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, mv := range in {
		rows = append(rows, []string{
			fint(mv.ID), fint(mv.HotelID), fint(mv.ProductID), mv.Kind, fint(mv.Quantity), fdate(mv.Date),
		})
	}
	return table(TableMovements, rows)
}

func maintenance(in []domain.MaintenanceTicket) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, t := range in {
		rows = append(rows, []string{
			fint(t.ID), fint(t.HotelID), fint(t.RoomID), t.Kind,
			fdate(t.Start), fdate(t.End), t.Status, fmoney(t.Cost),
		})
	}
	return table(TableMaintenance, rows)
}

func events(in []domain.Event) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, e := range in {
		rows = append(rows, []string{
			fint(e.ID), fint(e.HotelID), e.Kind, fdate(e.Start), fdate(e.End), fmoney(e.Revenue),
		})
	}
	return table(TableEvents, rows)
}

func loyalty(in []domain.LoyaltyRecord) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, l := range in {
		rows = append(rows, []string{fint(l.CustomerID), fmoney(l.TotalPaid), fint(l.Points), l.Tier})
	}
	return table(TableLoyalty, rows)
}

func complaints(in []domain.Complaint) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, c := range in {
		rows = append(rows, []string{
			fint(c.ID), fint(c.BookingID), fint(c.HotelID), fdate(c.FiledOn), c.Reason, c.Status,
		})
	}
	return table(TableComplaints, rows)
}

func occupancy(in []domain.DailyOccupancy) domain.Table {
	rows := make([][]string, 0, len(in))
	for _, o := range in {
		rows = append(rows, []string{fint(o.HotelID), fint(o.RoomID), fdate(o.Date), fmoney(o.Rate)})
	}
	return table(TableOccupancy, rows)
}
