package generator

import (
	"fmt"

	"aurora_hotels/internal/domain"
)

func (b *builder) buildDimensions() {
	cfg, r := b.cfg, b.rng

	category := dist(b, "hotel_category", hotelCategories, hotelCategoryWeights)
	for i, site := range cfg.Sites[:cfg.HotelCount] {
		b.ds.Hotels = append(b.ds.Hotels, domain.Hotel{
			ID:         i + 1,
			Chain:      cfg.ChainName,
			Name:       site.Name,
			City:       site.City,
			State:      site.State,
			Country:    site.Country,
			Category:   category.Draw(r),
			Phone:      landline(r, stateDDD(site.State)),
			Email:      "contato@" + slug(site.Name) + ".com",
			OpenedOn:   r.DateBetween(cfg.AsOf.AddDate(-15, 0, 0), cfg.AsOf.AddDate(-5, 0, 0)),
			TotalRooms: cfg.RoomsPerHotel,
		})
	}

	roomType := dist(b, "room_type", roomTypes, roomTypeWeights)
	roomID := 1
	for _, h := range b.ds.Hotels {
		for i := 1; i <= cfg.RoomsPerHotel; i++ {
			t := roomType.Draw(r)
			mean := roomBaseRates[t]
			floor := 1 + i/10
			room := domain.Room{
				ID:       roomID,
				HotelID:  h.ID,
				Number:   fmt.Sprintf("%02d%02d", floor, i%100),
				Type:     t,
				BaseRate: round2(max(mean*r.Normal(1.0, roomRateNoise), mean*roomRateFloorFraction)),
				Floor:    floor,
				Capacity: roomCapacity[t],
				Status:   "Ativo",
			}
			b.ds.Rooms = append(b.ds.Rooms, room)
			b.roomsByHotel[h.ID] = append(b.roomsByHotel[h.ID], room)
			b.roomByID[room.ID] = room
			roomID++
		}
	}

	for i, name := range channelNames {
		b.ds.Channels = append(b.ds.Channels, domain.SalesChannel{ID: i + 1, Name: name})
	}
	b.ds.Services = append([]domain.Service(nil), serviceCatalog...)
	b.ds.Departments = append([]domain.Department(nil), departmentCatalog...)

	b.log.Info().
		Int("hotels", len(b.ds.Hotels)).
		Int("rooms", len(b.ds.Rooms)).
		Msg("dimensions built")
}
