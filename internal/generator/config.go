package generator

import (
	"errors"
	"fmt"
	"time"
)

// HotelSite is one entry of the chain's hotel catalog.
type HotelSite struct {
	Name    string
	City    string
	State   string
	Country string
}

// Config is the full, immutable parameter set of a generation run.
type Config struct {
	Seed uint64

	// Horizon of every time-based record, inclusive.
	Start time.Time
	End   time.Time
	// AsOf anchors relative dates (birth dates, hiring, signup, hotel opening).
	AsOf time.Time

	ChainName    string
	Sites        []HotelSite
	HotelCount   int
	HotelWeights []float64

	RoomsPerHotel     int
	Customers         int
	Bookings          int
	CancelRate        float64
	NoShowRate        float64
	MaxNights         int
	EmployeesPerHotel int
	ProductsPerHotel  int

	OccupancySampleFrac float64
	ComplaintFrac       float64
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultConfig returns the reference parameters of the Aurora dataset.
func DefaultConfig() Config {
	return Config{
		Seed:      42,
		Start:     date(2019, time.January, 1),
		End:       date(2025, time.December, 31),
		AsOf:      date(2025, time.December, 31),
		ChainName: "Rede Aurora Hotels",
		Sites: []HotelSite{
			{"Hotel Aurora Ipanema", "Rio de Janeiro", "RJ", "Brasil"},
			{"Hotel Aurora Paulista", "São Paulo", "SP", "Brasil"},
			{"Hotel Aurora Beira-Mar", "Fortaleza", "CE", "Brasil"},
			{"Hotel Aurora Pampulha", "Belo Horizonte", "MG", "Brasil"},
			{"Hotel Aurora Cambuí", "Campinas", "SP", "Brasil"},
		},
		HotelCount:          5,
		HotelWeights:        []float64{0.22, 0.33, 0.16, 0.14, 0.15},
		RoomsPerHotel:       150,
		Customers:           20000,
		Bookings:            60000,
		CancelRate:          0.12,
		NoShowRate:          0.03,
		MaxNights:           14,
		EmployeesPerHotel:   80,
		ProductsPerHotel:    30,
		OccupancySampleFrac: 0.60,
		ComplaintFrac:       0.06,
	}
}

// Validate rejects configurations no run could honour.
func (c Config) Validate() error {
	var errs []error
	if c.HotelCount < 1 || c.HotelCount > len(c.Sites) {
		errs = append(errs, fmt.Errorf("hotel count %d outside catalog of %d sites", c.HotelCount, len(c.Sites)))
	}
	if c.Start.IsZero() || c.End.IsZero() || !c.Start.Before(c.End) {
		errs = append(errs, fmt.Errorf("empty horizon %s..%s", c.Start.Format(isoDate), c.End.Format(isoDate)))
	} else if daysBetween(c.Start, c.End) < c.MaxNights {
		errs = append(errs, fmt.Errorf("horizon shorter than max stay of %d nights", c.MaxNights))
	}
	if c.MaxNights < 1 {
		errs = append(errs, errors.New("max nights must be at least 1"))
	}
	if c.RoomsPerHotel < 1 {
		errs = append(errs, errors.New("rooms per hotel must be at least 1"))
	}
	if c.Customers < 1 {
		errs = append(errs, errors.New("customer count must be at least 1"))
	}
	if c.Bookings < 0 || c.EmployeesPerHotel < 0 || c.ProductsPerHotel < 0 {
		errs = append(errs, errors.New("counts must not be negative"))
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"cancel rate", c.CancelRate},
		{"no-show rate", c.NoShowRate},
		{"cancel + no-show rate", c.CancelRate + c.NoShowRate},
		{"occupancy sample", c.OccupancySampleFrac},
		{"complaint fraction", c.ComplaintFrac},
	} {
		if !(p.v >= 0 && p.v <= 1) { // NaN fails both
			errs = append(errs, fmt.Errorf("%s %.3f outside [0,1]", p.name, p.v))
		}
	}
	return errors.Join(errs...)
}

// normalized truncates every date to a UTC calendar day.
func (c Config) normalized() Config {
	c.Start = dateOnly(c.Start)
	c.End = dateOnly(c.End)
	if c.AsOf.IsZero() {
		c.AsOf = c.End
	}
	c.AsOf = dateOnly(c.AsOf)
	return c
}
