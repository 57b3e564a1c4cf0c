package memstore

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
)

// Credenciais de fábrica. O sistema exibe um aviso persistente enquanto a
// senha padrão não for trocada.
const (
	DefaultEmail    = "admin@example.com"
	DefaultPassword = "admin123"
)

// Seed monta o estado inicial da sessão com os dados de demonstração.
func Seed() State {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt só falha com custo inválido; com DefaultCost é inalcançável.
		panic("memstore: hash da senha padrão: " + err.Error())
	}

	return State{
		Clients:  seedClients(),
		Products: seedProducts(),
		Quotes:   seedQuotes(),
		Company:  seedCompany(),
		User: entity.User{
			Email:           DefaultEmail,
			PasswordHash:    string(hash),
			DefaultPassword: true,
		},
	}
}

func seedClients() []entity.Client {
	return []entity.Client{
		{
			ID:    "1",
			Name:  "Ana Silva",
			Doc:   "123.456.789-00",
			Phone: "11987654321",
			Address: entity.Address{
				CEP: "01001-000", Street: "Praça da Sé", Number: "100",
				Complement: "Lado par", Neighborhood: "Sé", City: "São Paulo", State: "SP",
			},
			Observations: "Cliente prefere contato via WhatsApp.",
		},
		{
			ID:    "2",
			Name:  "Construções XYZ Ltda",
			Doc:   "12.345.678/0001-99",
			Phone: "21912345678",
			Address: entity.Address{
				CEP: "20040-004", Street: "Avenida Rio Branco", Number: "156",
				Complement: "Sala 201", Neighborhood: "Centro", City: "Rio de Janeiro", State: "RJ",
			},
			Observations: "Empresa de grande porte. Faturar no CNPJ.",
		},
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          "p1",
			Name:        "Tinta Acrílica Premium Branca 18L",
			Category:    "Tintas",
			Description: "Tinta de alta qualidade para paredes internas e externas.",
			CostPrice:   decimal.NewFromInt(250),
			SellPrice:   decimal.NewFromInt(350),
		},
		{
			ID:          "p2",
			Name:        "Cimento Votoran Todas as Obras 50kg",
			Category:    "Construção",
			Description: "Cimento versátil para diversos tipos de obra.",
			CostPrice:   decimal.NewFromInt(28),
			SellPrice:   decimal.NewFromInt(38),
		},
		{
			ID:          "p3",
			Name:        "Furadeira de Impacto Bosch GSB 13 RE",
			Category:    "Ferramentas",
			Description: "Furadeira potente e confiável para uso profissional.",
			CostPrice:   decimal.NewFromInt(300),
			SellPrice:   decimal.NewFromInt(450),
		},
	}
}

// seedQuotes já na ordem da coleção: mais recente primeiro.
func seedQuotes() []entity.Quote {
	return []entity.Quote{
		{
			ID:       "q2",
			ClientID: "2",
			Items: []entity.QuoteItem{
				{ProductID: "p2", Quantity: 100, UnitPrice: decimal.NewFromInt(38)},
			},
			ShippingFee:   decimal.RequireFromString("250.00"),
			Total:         decimal.RequireFromString("4050.00"), // 100×38 + 250
			ShippingDate:  "2024-08-22",
			PaymentMethod: "Boleto 30 dias",
			Observations:  "Descarregar na doca 3.",
			Status:        entity.StatusAberto,
			CreatedAt:     time.Date(2024, time.July, 22, 15, 30, 0, 0, time.UTC),
		},
		{
			ID:       "q1",
			ClientID: "1",
			Items: []entity.QuoteItem{
				{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(350)},
				{ProductID: "p3", Quantity: 1, UnitPrice: decimal.NewFromInt(450)},
			},
			ShippingFee:   decimal.RequireFromString("25.00"),
			Total:         decimal.RequireFromString("1175.00"), // 2×350 + 1×450 + 25
			ShippingDate:  "2024-08-10",
			PaymentMethod: "Cartão de Crédito 3x",
			Observations:  "Entregar em horário comercial.",
			Status:        entity.StatusAprovado,
			CreatedAt:     time.Date(2024, time.July, 20, 10, 0, 0, 0, time.UTC),
		},
	}
}

func seedCompany() entity.Company {
	return entity.Company{
		Name: "H1 Brindes Personalizados",
		Doc:  "CNPJ: 00.111.222/0001-33",
		Address: entity.CompanyAddress{
			Street: "Rua da Criatividade, 123",
			City:   "São Paulo",
			State:  "SP",
			CEP:    "01234-567",
		},
		Phone: "(11) 91234-5678",
		Email: "contato@h1brindes.com.br",
	}
}
