package generator

import (
	"math"
	"time"

	"aurora_hotels/internal/domain"
)

// buildOperations walks the horizon month by month for every hotel. None of
// these records depend on bookings.
func (b *builder) buildOperations() {
	ms := months(b.cfg.Start, b.cfg.End)
	b.buildMovements(ms)
	b.buildMaintenance(ms)
	b.buildEvents(ms)

	b.log.Info().
		Int("months", len(ms)).
		Int("movements", len(b.ds.Movements)).
		Int("maintenance", len(b.ds.Maintenance)).
		Int("events", len(b.ds.Events)).
		Msg("operational series built")
}

// jitter offsets a month boundary by up to span-1 days, never before the
// horizon start.
func (b *builder) jitter(from time.Time, sign, span int) time.Time {
	return maxDate(addDays(from, sign*b.rng.IntN(span)), b.cfg.Start)
}

// buildMovements emits one Entrada near the start and one Saida near the end
// of every month for every product.
func (b *builder) buildMovements(ms []time.Time) {
	r := b.rng
	id := 1
	for _, p := range b.ds.Products {
		for _, m := range ms {
			in := roundedAbsNormal(r, 50, 20, 5, 200)
			out := roundedAbsNormal(r, 45, 18, 5, 200)
			b.ds.Movements = append(b.ds.Movements,
				domain.InventoryMovement{
					ID: id, HotelID: p.HotelID, ProductID: p.ID,
					Kind: domain.MovementIn, Quantity: in, Date: b.jitter(m, 1, 10),
				},
				domain.InventoryMovement{
					ID: id + 1, HotelID: p.HotelID, ProductID: p.ID,
					Kind: domain.MovementOut, Quantity: out, Date: b.jitter(endOfMonth(m), -1, 10),
				},
			)
			id += 2
		}
	}
}

func (b *builder) buildMaintenance(ms []time.Time) {
	r := b.rng
	kind := dist(b, "maintenance_kind", maintenanceKinds, maintenanceKindWeights)
	status := dist(b, "maintenance_status", maintenanceStatus, maintenanceStatusWeights)
	id := 1
	for _, h := range b.ds.Hotels {
		rooms := b.roomsByHotel[h.ID]
		for _, m := range ms {
			n := r.Between(8, 12)
			for i := 0; i < n; i++ {
				room := Pick(r, rooms)
				start := b.jitter(m, 1, 20)
				dur := roundedAbsNormal(r, 2, 1, 1, 7)
				cost := round2(math.Abs(r.Normal(350, 180)))
				b.ds.Maintenance = append(b.ds.Maintenance, domain.MaintenanceTicket{
					ID:      id,
					HotelID: h.ID,
					RoomID:  room.ID,
					Kind:    kind.Draw(r),
					Start:   start,
					End:     addDays(start, dur),
					Status:  status.Draw(r),
					Cost:    cost,
				})
				id++
			}
		}
	}
}

func (b *builder) buildEvents(ms []time.Time) {
	r := b.rng
	id := 1
	for _, h := range b.ds.Hotels {
		for _, m := range ms {
			n := r.Between(2, 6)
			for i := 0; i < n; i++ {
				start := b.jitter(m, 1, 20)
				dur := roundedAbsNormal(r, 1.5, 0.8, 1, 5)
				b.ds.Events = append(b.ds.Events, domain.Event{
					ID:      id,
					HotelID: h.ID,
					Kind:    Pick(r, eventKinds),
					Start:   start,
					End:     addDays(start, dur),
					Revenue: round2(math.Abs(r.Normal(25000, 12000))),
				})
				id++
			}
		}
	}
}
