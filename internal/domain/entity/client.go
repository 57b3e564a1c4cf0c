package entity

// Address endereço brasileiro com CEP (preenchível via consulta ViaCEP).
type Address struct {
	CEP          string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
}

// Client representa um cliente do orçamentista.
// Doc é CPF (11 dígitos) ou CNPJ (14 dígitos); o formato é responsabilidade
// da camada de apresentação, aqui é texto livre.
type Client struct {
	ID           string
	Name         string
	Doc          string
	Phone        string
	Address      Address
	Observations string
}
