package generator

import (
	"fmt"
	"math"
	"strings"

	"aurora_hotels/internal/domain"
)

func (b *builder) buildEntities() {
	b.buildCustomers()
	b.buildSuppliers()
	b.buildEmployees()
	b.buildProducts()

	b.log.Info().
		Int("customers", len(b.ds.Customers)).
		Int("suppliers", len(b.ds.Suppliers)).
		Int("employees", len(b.ds.Employees)).
		Int("products", len(b.ds.Products)).
		Msg("entity pools built")
}

func (b *builder) buildCustomers() {
	cfg, r := b.cfg, b.rng
	gender := dist(b, "gender", []string{"M", "F"}, []float64{0.49, 0.51})

	b.ds.Customers = make([]domain.Customer, 0, cfg.Customers)
	for id := 1; id <= cfg.Customers; id++ {
		g := gender.Draw(r)
		first := Pick(r, femaleNames)
		if g == "M" {
			first = Pick(r, maleNames)
		}
		last := Pick(r, surnames)
		email := fmt.Sprintf("%s.%s%d@%s", slug(first), slug(last), r.IntN(9999), Pick(r, emailDomains))
		c := Pick(r, cities)

		b.ds.Customers = append(b.ds.Customers, domain.Customer{
			ID:         id,
			FirstName:  first,
			LastName:   last,
			Email:      strings.ToLower(email),
			Phone:      mobilePhone(r, c.DDD),
			City:       c.Name,
			State:      c.State,
			Country:    "Brasil",
			BirthDate:  r.DateBetween(cfg.AsOf.AddDate(-85, 0, 0), cfg.AsOf.AddDate(-18, 0, 0)),
			Gender:     g,
			Document:   cpf(r),
			SignedUpOn: r.DateBetween(cfg.AsOf.AddDate(-8, 0, 0), cfg.AsOf),
		})
	}
}

func (b *builder) buildSuppliers() {
	r := b.rng
	id := 1
	for _, h := range b.ds.Hotels {
		n := r.Between(8, 11)
		for i := 0; i < n; i++ {
			owner, kind := Pick(r, surnames), Pick(r, companyKinds)
			b.ds.Suppliers = append(b.ds.Suppliers, domain.Supplier{
				ID:          id,
				HotelID:     h.ID,
				CompanyName: owner + " " + kind + " Ltda",
				Category:    Pick(r, supplierCategories),
				Phone:       landline(r, stateDDD(h.State)),
				Email:       "contato@" + slug(owner+kind) + ".com.br",
				City:        h.City,
				State:       h.State,
				Country:     h.Country,
			})
			id++
		}
	}
}

func (b *builder) buildEmployees() {
	cfg, r := b.cfg, b.rng
	role := dist(b, "role", roles, roleWeights)
	id := 1
	for _, h := range b.ds.Hotels {
		for i := 0; i < cfg.EmployeesPerHotel; i++ {
			rl := role.Draw(r)
			first := Pick(r, femaleNames)
			if r.Chance(0.5) {
				first = Pick(r, maleNames)
			}
			b.ds.Employees = append(b.ds.Employees, domain.Employee{
				ID:           id,
				HotelID:      h.ID,
				FirstName:    first,
				LastName:     Pick(r, surnames),
				Role:         rl,
				DepartmentID: departmentForRole(rl),
				HiredOn:      r.DateBetween(cfg.AsOf.AddDate(-7, 0, 0), cfg.AsOf),
				Salary:       salaries[rl],
			})
			id++
		}
	}
}

func (b *builder) buildProducts() {
	cfg, r := b.cfg, b.rng
	id := 1
	for _, h := range b.ds.Hotels {
		for i := 0; i < cfg.ProductsPerHotel; i++ {
			cat := Pick(r, productCategories)
			mu := 20.0
			if cat == "Rouparia" {
				mu = 80
			}
			b.ds.Products = append(b.ds.Products, domain.Product{
				ID:       id,
				HotelID:  h.ID,
				Name:     cat + " " + capitalize(Pick(r, productWords)),
				Category: cat,
				Unit:     productUnits[cat],
				AvgCost:  round2(math.Abs(r.Normal(mu, 10))),
			})
			id++
		}
	}
}
