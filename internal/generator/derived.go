package generator

import (
	"math"
	"sort"

	"aurora_hotels/internal/domain"
)

func (b *builder) buildDerived() {
	b.ds.Loyalty = Loyalty(b.ds.Bookings, b.ds.Payments)
	b.buildComplaints()
	b.buildOccupancy()

	b.log.Info().
		Int("loyalty", len(b.ds.Loyalty)).
		Int("complaints", len(b.ds.Complaints)).
		Int("occupancy", len(b.ds.Occupancy)).
		Msg("derived tables built")
}

// Loyalty aggregates payments per customer, ordered by customer id.
func Loyalty(bookings []domain.Booking, payments []domain.Payment) []domain.LoyaltyRecord {
	owner := make(map[int]int, len(bookings))
	for _, bk := range bookings {
		owner[bk.ID] = bk.CustomerID
	}
	totals := map[int]float64{}
	for _, p := range payments {
		if c, ok := owner[p.BookingID]; ok {
			totals[c] += p.Amount
		}
	}

	ids := make([]int, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]domain.LoyaltyRecord, 0, len(ids))
	for _, id := range ids {
		total := round2(totals[id])
		points := int(math.RoundToEven(total / 10))
		out = append(out, domain.LoyaltyRecord{
			CustomerID: id,
			TotalPaid:  total,
			Points:     points,
			Tier:       TierFor(points),
		})
	}
	return out
}

// sampleIndices picks round(frac*n) distinct indices of [0, n) and returns
// them in ascending order.
func sampleIndices(r *RNG, n int, frac float64) []int {
	k := int(math.RoundToEven(frac * float64(n)))
	if k <= 0 || n == 0 {
		return nil
	}
	idx := r.Perm(n)[:min(k, n)]
	sort.Ints(idx)
	return idx
}

func (b *builder) buildComplaints() {
	r := b.rng
	reason := dist(b, "complaint_reason", complaintReasons, complaintReasonWeights)
	status := dist(b, "complaint_status", complaintStatus, complaintStatusWeights)

	for i, idx := range sampleIndices(r, len(b.ds.Bookings), b.cfg.ComplaintFrac) {
		bk := b.ds.Bookings[idx]
		b.ds.Complaints = append(b.ds.Complaints, domain.Complaint{
			ID:        i + 1,
			BookingID: bk.ID,
			HotelID:   bk.HotelID,
			FiledOn:   bk.CheckOut,
			Reason:    reason.Draw(r),
			Status:    status.Draw(r),
		})
	}
}

func (b *builder) buildOccupancy() {
	r := b.rng
	var confirmed []domain.Booking
	for _, bk := range b.ds.Bookings {
		if bk.Status == domain.StatusConfirmed {
			confirmed = append(confirmed, bk)
		}
	}

	for _, idx := range sampleIndices(r, len(confirmed), b.cfg.OccupancySampleFrac) {
		bk := confirmed[idx]
		base := b.roomByID[bk.RoomID].BaseRate
		for day := bk.CheckIn; day.Before(bk.CheckOut); day = addDays(day, 1) {
			b.ds.Occupancy = append(b.ds.Occupancy, domain.DailyOccupancy{
				HotelID: bk.HotelID,
				RoomID:  bk.RoomID,
				Date:    day,
				Rate:    round2(NightlyRate(r, day, base)),
			})
		}
	}
}
