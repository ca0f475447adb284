package generator

// Curated pt_BR pools used for people, places and free text.

var maleNames = []string{
	"Miguel", "Arthur", "Heitor", "Bernardo", "Davi", "Théo", "Lorenzo", "Gabriel",
	"Pedro", "Benjamin", "Matheus", "Lucas", "Nicolas", "Joaquim", "Samuel", "Henrique",
	"Rafael", "Guilherme", "Enzo", "Murilo", "Gustavo", "Felipe", "João", "Pietro",
	"Bruno", "Daniel", "Eduardo", "Vinícius", "Leonardo", "Thiago", "Rodrigo", "Marcelo",
	"André", "Fernando", "Ricardo", "Paulo", "Carlos", "Antônio", "José", "Francisco",
	"Luiz", "Marcos", "Sérgio", "Otávio", "Caio", "Vitor", "Diego", "Igor",
}

var femaleNames = []string{
	"Helena", "Alice", "Laura", "Maria", "Valentina", "Heloísa", "Sophia", "Isabella",
	"Manuela", "Júlia", "Luísa", "Lorena", "Lívia", "Giovanna", "Beatriz", "Mariana",
	"Cecília", "Eloá", "Lara", "Antonella", "Maitê", "Clara", "Ana", "Rafaela",
	"Gabriela", "Fernanda", "Camila", "Letícia", "Larissa", "Amanda", "Bruna", "Carolina",
	"Patrícia", "Juliana", "Aline", "Vanessa", "Renata", "Tatiane", "Sandra", "Cláudia",
	"Adriana", "Luciana", "Márcia", "Débora", "Natália", "Bianca", "Isadora", "Yasmin",
}

var surnames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira",
	"Lima", "Gomes", "Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes",
	"Soares", "Fernandes", "Vieira", "Barbosa", "Rocha", "Dias", "Nascimento", "Andrade",
	"Moreira", "Nunes", "Marques", "Machado", "Mendes", "Freitas", "Cardoso", "Ramos",
	"Gonçalves", "Santana", "Teixeira", "Moura", "Cavalcanti", "Monteiro", "Correia", "Pinto",
	"Araújo", "Campos", "Duarte", "Rezende", "Castro", "Farias", "Azevedo", "Peixoto",
}

type city struct {
	Name  string
	State string
	DDD   int
}

var cities = []city{
	{"São Paulo", "SP", 11}, {"Campinas", "SP", 19}, {"Santos", "SP", 13}, {"Ribeirão Preto", "SP", 16},
	{"Rio de Janeiro", "RJ", 21}, {"Niterói", "RJ", 21}, {"Petrópolis", "RJ", 24},
	{"Belo Horizonte", "MG", 31}, {"Uberlândia", "MG", 34}, {"Juiz de Fora", "MG", 32},
	{"Curitiba", "PR", 41}, {"Londrina", "PR", 43}, {"Florianópolis", "SC", 48}, {"Joinville", "SC", 47},
	{"Porto Alegre", "RS", 51}, {"Caxias do Sul", "RS", 54}, {"Salvador", "BA", 71}, {"Feira de Santana", "BA", 75},
	{"Recife", "PE", 81}, {"Fortaleza", "CE", 85}, {"Natal", "RN", 84}, {"João Pessoa", "PB", 83},
	{"Maceió", "AL", 82}, {"Aracaju", "SE", 79}, {"São Luís", "MA", 98}, {"Teresina", "PI", 86},
	{"Belém", "PA", 91}, {"Manaus", "AM", 92}, {"Goiânia", "GO", 62}, {"Brasília", "DF", 61},
	{"Campo Grande", "MS", 67}, {"Cuiabá", "MT", 65}, {"Vitória", "ES", 27}, {"Palmas", "TO", 63},
}

// dddByState gives a representative area code for a UF.
var dddByState = map[string]int{
	"SP": 11, "RJ": 21, "MG": 31, "PR": 41, "SC": 48, "RS": 51, "BA": 71, "PE": 81,
	"CE": 85, "RN": 84, "PB": 83, "AL": 82, "SE": 79, "MA": 98, "PI": 86, "PA": 91,
	"AM": 92, "GO": 62, "DF": 61, "MS": 67, "MT": 65, "ES": 27, "TO": 63,
}

var emailDomains = []string{"gmail.com", "hotmail.com", "outlook.com", "yahoo.com.br", "uol.com.br"}

var companyKinds = []string{
	"Distribuidora", "Comércio", "Serviços", "Indústria", "Soluções", "Suprimentos",
	"Alimentos", "Logística", "Tecnologia", "Atacadista",
}

var productWords = []string{
	"premium", "tradicional", "natural", "clássico", "integral", "suave", "especial",
	"prático", "fresco", "leve", "original", "extra", "gourmet", "básico", "essencial",
	"selecionado", "orgânico", "macio", "intenso", "compacto",
}

// Review sentences are stitched from an opening, a detail and a closing.
var (
	reviewOpenings = []string{
		"Hospedagem excelente,", "Estadia tranquila,", "Gostei bastante da experiência,",
		"Tudo dentro do esperado,", "Experiência razoável,", "Fiquei satisfeito com a estadia,",
		"Viagem a trabalho e",
	}
	reviewDetails = []string{
		"o quarto estava limpo e confortável", "o café da manhã era variado",
		"a equipe da recepção foi muito atenciosa", "a localização facilita tudo",
		"o check-in foi rápido", "a cama era muito confortável", "o wi-fi funcionou bem",
		"o atendimento no bar foi cordial",
	}
	reviewClosings = []string{
		"e voltarei com certeza.", "e recomendo para famílias.", "mas o ar-condicionado fazia barulho.",
		"mas o estacionamento é caro.", "e o custo-benefício compensa.", "apesar da demora no elevador.",
	}
)
