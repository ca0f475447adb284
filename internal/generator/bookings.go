package generator

import (
	"math"

	"aurora_hotels/internal/domain"
)

// bookingDists are the prepared distributions of the booking engine.
type bookingDists struct {
	hotel    *Categorical[int]
	nights   *Categorical[int]
	status   *Categorical[string]
	channel  *Categorical[int]
	method   *Categorical[string]
	items    *Categorical[int]
	quantity *Categorical[int]
	offset   *Categorical[int]
}

func (b *builder) bookingDists() bookingDists {
	cfg := b.cfg
	hotelIDs := make([]int, len(b.ds.Hotels))
	for i, h := range b.ds.Hotels {
		hotelIDs[i] = h.ID
	}
	channelIDs := make([]int, len(b.ds.Channels))
	for i, c := range b.ds.Channels {
		channelIDs[i] = c.ID
	}
	return bookingDists{
		hotel:  dist(b, "hotel", hotelIDs, head(cfg.HotelWeights, len(hotelIDs))),
		nights: dist(b, "nights", seq(1, cfg.MaxNights), nightWeights),
		status: dist(b, "status",
			[]string{domain.StatusConfirmed, domain.StatusCancelled, domain.StatusNoShow},
			[]float64{1 - cfg.CancelRate - cfg.NoShowRate, cfg.CancelRate, cfg.NoShowRate}),
		channel:  dist(b, "channel", channelIDs, channelWeights),
		method:   dist(b, "payment_method", paymentMethods, paymentMethodWeights),
		items:    dist(b, "service_items", serviceItemCounts, serviceItemWeights),
		quantity: dist(b, "service_quantity", serviceQuantities, serviceQtyWeights),
		offset:   dist(b, "payment_offset", paymentOffsets, paymentOffsetWeight),
	}
}

func (b *builder) buildBookings() {
	cfg, r := b.cfg, b.rng
	d := b.bookingDists()
	paymentID, feedbackID := 1, 1

	b.ds.Bookings = make([]domain.Booking, 0, cfg.Bookings)
	for id := 1; id <= cfg.Bookings; id++ {
		hotelID := d.hotel.Draw(r)
		room := Pick(r, b.roomsByHotel[hotelID])
		customerID := r.Between(1, cfg.Customers)
		dates := SampleStayDates(r, cfg.Start, cfg.End, d.nights)
		status := d.status.Draw(r)

		bk := domain.Booking{
			ID:         id,
			HotelID:    hotelID,
			RoomID:     room.ID,
			CustomerID: customerID,
			ChannelID:  d.channel.Draw(r),
			BookedOn:   dates.BookedOn,
			CheckIn:    dates.CheckIn,
			CheckOut:   dates.CheckOut,
			Nights:     dates.Nights,
			Status:     status,
			StayValue:  StayValue(r, dates.CheckIn, dates.Nights, room.BaseRate),
		}
		b.ds.Bookings = append(b.ds.Bookings, bk)

		switch status {
		case domain.StatusConfirmed:
			extras := b.attachServices(d, bk.ID)
			b.ds.Payments = append(b.ds.Payments, domain.Payment{
				ID:        paymentID,
				BookingID: bk.ID,
				Amount:    round2(bk.StayValue + extras),
				Method:    d.method.Draw(r),
				PaidOn:    addDays(bk.CheckIn, d.offset.Draw(r)),
			})
			paymentID++

			if r.Chance(feedbackProbability) {
				b.ds.Feedback = append(b.ds.Feedback, domain.Feedback{
					ID:        feedbackID,
					BookingID: bk.ID,
					Rating:    clampInt(int(math.RoundToEven(r.Normal(4.3, 0.7))), 1, 5),
					Comment:   reviewComment(r),
					GivenOn:   addDays(bk.CheckOut, r.IntN(7)),
				})
				feedbackID++
			}

		case domain.StatusNoShow:
			if r.Chance(noShowPenaltyChance) {
				b.ds.Payments = append(b.ds.Payments, domain.Payment{
					ID:        paymentID,
					BookingID: bk.ID,
					Amount:    round2(NightlyRate(r, bk.CheckIn, room.BaseRate)),
					Method:    d.method.Draw(r),
					PaidOn:    bk.CheckIn,
				})
				paymentID++
			}
		}
	}

	b.log.Info().
		Int("bookings", len(b.ds.Bookings)).
		Int("payments", len(b.ds.Payments)).
		Int("booking_services", len(b.ds.BookingServices)).
		Int("feedback", len(b.ds.Feedback)).
		Msg("booking engine done")
}

// attachServices adds extra-service consumption to a confirmed booking and
// returns the unrounded total.
func (b *builder) attachServices(d bookingDists, bookingID int) float64 {
	r := b.rng
	if !r.Chance(serviceProbability) {
		return 0
	}
	var extras float64
	n := d.items.Draw(r)
	for i := 0; i < n; i++ {
		svc := Pick(r, b.ds.Services)
		qty := d.quantity.Draw(r)
		total := svc.Price * float64(qty)
		b.ds.BookingServices = append(b.ds.BookingServices, domain.BookingService{
			BookingID: bookingID,
			ServiceID: svc.ID,
			Quantity:  qty,
			Total:     round2(total),
		})
		extras += total
	}
	return extras
}
