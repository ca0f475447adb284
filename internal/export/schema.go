package export

import "aurora_hotels/internal/domain"

// Table names, in export order.
const (
	TableHotels          = "Hoteis"
	TableRooms           = "Quartos"
	TableChannels        = "CanaisVenda"
	TableServices        = "Servicos"
	TableDepartments     = "Departamentos"
	TableCustomers       = "Clientes"
	TableBookings        = "Reservas"
	TablePayments        = "Pagamentos"
	TableBookingServices = "ReservaServicos"
	TableFeedback        = "Feedback"
	TableEmployees       = "Funcionarios"
	TableSuppliers       = "Fornecedores"
	TableProducts        = "EstoqueProdutos"
	TableMovements       = "MovimentosEstoque"
	TableMaintenance     = "Manutencoes"
	TableEvents          = "Eventos"
	TableLoyalty         = "Fidelidade"
	TableComplaints      = "Reclamacoes"
	TableOccupancy       = "OcupacaoDiaria"
)

var TableNames = []string{
	TableHotels, TableRooms, TableChannels, TableServices, TableDepartments,
	TableCustomers, TableBookings, TablePayments, TableBookingServices, TableFeedback,
	TableEmployees, TableSuppliers, TableProducts, TableMovements, TableMaintenance,
	TableEvents, TableLoyalty, TableComplaints, TableOccupancy,
}

func cols(pairs ...any) []domain.Column {
	out := make([]domain.Column, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Column{Name: pairs[i].(string), Kind: pairs[i+1].(domain.ColumnKind)})
	}
	return out
}

const (
	num   = domain.KindInt
	money = domain.KindMoney
	text  = domain.KindText
	day   = domain.KindDate
)

var schemas = map[string][]domain.Column{
	TableHotels:      cols("HotelID", num, "Rede", text, "NomeHotel", text, "Cidade", text, "UF", text, "Pais", text, "Categoria", text, "Telefone", text, "Email", text, "DataAbertura", day, "TotalQuartos", num),
	TableRooms:       cols("QuartoID", num, "HotelID", num, "Numero", text, "Tipo", text, "PrecoBase", money, "Andar", num, "Capacidade", num, "Status", text),
	TableChannels:    cols("CanalID", num, "NomeCanal", text),
	TableServices:    cols("ServicoID", num, "NomeServico", text, "Descricao", text, "Preco", money),
	TableDepartments: cols("DepartamentoID", num, "NomeDepartamento", text),
	TableCustomers: cols("ClienteID", num, "Nome", text, "Sobrenome", text, "Email", text, "Telefone", text, "Cidade", text, "UF", text, "Pais", text,
		"DataNascimento", day, "Genero", text, "Documento", text, "DataCadastro", day),
	TableBookings: cols("ReservaID", num, "HotelID", num, "QuartoID", num, "ClienteID", num, "CanalID", num,
		"DataReserva", day, "DataCheckIn", day, "DataCheckOut", day, "Noites", num, "Status", text,
		"CheckInAno", num, "CheckInMes", num, "CheckInAnoMes", text, "ReservaAno", num, "ReservaMes", num, "ReservaAnoMes", text),
	TablePayments:        cols("PagamentoID", num, "ReservaID", num, "Valor", money, "FormaPagamento", text, "DataPagamento", day, "Ano", num, "Mes", num, "AnoMes", text),
	TableBookingServices: cols("ReservaID", num, "ServicoID", num, "Quantidade", num, "ValorTotal", money),
	TableFeedback:        cols("FeedbackID", num, "ReservaID", num, "Nota", num, "Comentario", text, "DataFeedback", day),
	TableEmployees:       cols("FuncionarioID", num, "HotelID", num, "Nome", text, "Sobrenome", text, "Cargo", text, "DepartamentoID", num, "DataAdmissao", day, "Salario", num),
	TableSuppliers:       cols("FornecedorID", num, "HotelID", num, "RazaoSocial", text, "Categoria", text, "Telefone", text, "Email", text, "Cidade", text, "UF", text, "Pais", text),
	TableProducts:        cols("ProdutoID", num, "HotelID", num, "NomeProduto", text, "Categoria", text, "Unidade", text, "CustoMedio", money),
	TableMovements:       cols("MovimentoID", num, "HotelID", num, "ProdutoID", num, "TipoMovimento", text, "Quantidade", num, "DataMovimento", day),
	TableMaintenance:     cols("ManutencaoID", num, "HotelID", num, "QuartoID", num, "Tipo", text, "DataInicio", day, "DataFim", day, "Status", text, "Custo", money),
	TableEvents:          cols("EventoID", num, "HotelID", num, "TipoEvento", text, "DataInicio", day, "DataFim", day, "ReceitaEvento", money),
	TableLoyalty:         cols("ClienteID", num, "ValorAcumulado", money, "Pontos", num, "Nivel", text),
	TableComplaints:      cols("ReclamacaoID", num, "ReservaID", num, "HotelID", num, "DataReclamacao", day, "Motivo", text, "Status", text),
	TableOccupancy:       cols("HotelID", num, "QuartoID", num, "Data", day, "TarifaEfetiva", money),
}

// Schema returns the columns of a table and whether the table is known.
func Schema(name string) ([]domain.Column, bool) {
	c, ok := schemas[name]
	return c, ok
}
