package generator

import "aurora_hotels/internal/domain"

// Static reference data of the chain. Weights are raw and get normalised
// where they are turned into distributions.

var (
	hotelCategories       = []string{"4 estrelas", "5 estrelas"}
	hotelCategoryWeights  = []float64{0.7, 0.3}
	roomTypes             = []string{"Standard", "Casal", "Executivo", "Luxo", "Suíte"}
	roomTypeWeights       = []float64{0.35, 0.24, 0.18, 0.15, 0.08}
	roomBaseRates         = map[string]float64{"Standard": 220, "Casal": 320, "Executivo": 420, "Luxo": 600, "Suíte": 900}
	roomCapacity          = map[string]int{"Standard": 2, "Casal": 2, "Executivo": 2, "Luxo": 3, "Suíte": 4}
	roomRateNoise         = 0.06
	roomRateFloorFraction = 0.8
)

// BaseRateForType exposes the mean nightly rate of a room type.
func BaseRateForType(t string) float64 { return roomBaseRates[t] }

var (
	channelNames   = []string{"Site Próprio", "Balcão", "Agência", "OTA - Booking", "OTA - Expedia", "Corporativo"}
	channelWeights = []float64{0.28, 0.10, 0.12, 0.32, 0.12, 0.06}

	paymentMethods       = []string{"Cartão Crédito", "Cartão Débito", "Pix", "Boleto", "Dinheiro"}
	paymentMethodWeights = []float64{0.55, 0.12, 0.22, 0.06, 0.05}
)

var serviceCatalog = []domain.Service{
	{ID: 1, Name: "Room Service", Description: "Serviço de quarto 24h", Price: 60},
	{ID: 2, Name: "Spa", Description: "Massagens e tratamentos", Price: 180},
	{ID: 3, Name: "Lavanderia", Description: "Lavagem de roupas", Price: 35},
	{ID: 4, Name: "Estacionamento", Description: "Diária estacionamento", Price: 30},
	{ID: 5, Name: "Bar", Description: "Consumo no bar", Price: 75},
	{ID: 6, Name: "Transfer", Description: "Traslado aeroporto-hotel", Price: 120},
}

var departmentCatalog = []domain.Department{
	{ID: 1, Name: "Recepção"},
	{ID: 2, Name: "Governança"},
	{ID: 3, Name: "Manutenção"},
	{ID: 4, Name: "Alimentos e Bebidas"},
	{ID: 5, Name: "Comercial"},
	{ID: 6, Name: "Administrativo/Financeiro"},
}

// Booking engine distributions.
var (
	nightWeights = []float64{0.22, 0.20, 0.15, 0.10, 0.07, 0.06, 0.05, 0.04, 0.03, 0.03, 0.02, 0.015, 0.015, 0.01}

	serviceProbability  = 0.55
	serviceItemCounts   = []int{1, 2, 3}
	serviceItemWeights  = []float64{0.65, 0.27, 0.08}
	serviceQuantities   = []int{1, 2, 3, 4}
	serviceQtyWeights   = []float64{0.6, 0.25, 0.1, 0.05}
	paymentOffsets      = []int{0, 0, 0, 1, 1, 2, 3}
	paymentOffsetWeight = []float64{0.35, 0.25, 0.15, 0.12, 0.07, 0.04, 0.02}
	feedbackProbability = 0.35
	noShowPenaltyChance = 0.40
)

var (
	roles = []string{
		"Recepcionista", "Supervisor Recepção", "Camareira", "Governanta",
		"Técnico Manutenção", "Cozinheiro", "Garçom", "Bartender",
		"Gerente A&B", "Comercial", "Controller", "Gerente Geral",
	}
	roleWeights = []float64{0.14, 0.04, 0.22, 0.03, 0.08, 0.06, 0.08, 0.05, 0.02, 0.06, 0.06, 0.016}
	salaries    = map[string]int{
		"Recepcionista": 2600, "Supervisor Recepção": 3800, "Camareira": 2300, "Governanta": 3400,
		"Técnico Manutenção": 3000, "Cozinheiro": 3200, "Garçom": 2400, "Bartender": 2800,
		"Gerente A&B": 6800, "Comercial": 5200, "Controller": 7200, "Gerente Geral": 12000,
	}
)

// departmentForRole maps a role to its department id.
func departmentForRole(role string) int {
	switch role {
	case "Recepcionista", "Supervisor Recepção":
		return 1
	case "Camareira", "Governanta":
		return 2
	case "Técnico Manutenção":
		return 3
	case "Cozinheiro", "Garçom", "Bartender", "Gerente A&B":
		return 4
	case "Comercial":
		return 5
	default:
		return 6
	}
}

var supplierCategories = []string{"Alimentos", "Bebidas", "Lavanderia", "Limpeza", "Manutenção", "TI/Sistemas", "Eventos"}

var (
	productCategories = []string{"Bebidas", "Alimentos", "Amenities", "Rouparia", "Limpeza"}
	productUnits      = map[string]string{"Bebidas": "UN", "Alimentos": "KG", "Amenities": "UN", "Rouparia": "UN", "Limpeza": "LT"}
)

var (
	maintenanceKinds         = []string{"Preventiva", "Corretiva", "Inspeção"}
	maintenanceKindWeights   = []float64{0.5, 0.35, 0.15}
	maintenanceStatus        = []string{"Aberta", "Em Andamento", "Concluída"}
	maintenanceStatusWeights = []float64{0.1, 0.2, 0.7}

	eventKinds = []string{"Conferência", "Casamento", "Workshop", "Lançamento", "Reunião Executiva"}
)

var (
	complaintReasons       = []string{"Atraso no check-in", "Quarto sujo", "Barulho", "Ar-condicionado com problema", "Atendimento demorado", "Cobrança indevida"}
	complaintReasonWeights = []float64{0.18, 0.22, 0.15, 0.16, 0.17, 0.12}
	complaintStatus        = []string{"Aberta", "Em Tratativa", "Resolvida"}
	complaintStatusWeights = []float64{0.15, 0.25, 0.60}
)

// TierFor maps loyalty points to a tier.
func TierFor(points int) string {
	switch {
	case points >= 20000:
		return domain.TierDiamond
	case points >= 10000:
		return domain.TierGold
	case points >= 4000:
		return domain.TierSilver
	default:
		return domain.TierBronze
	}
}
