package dto

// AddressDTO endereço nos payloads de cliente.
type AddressDTO struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// ClientRequest criação/atualização de cliente. O formato de doc e telefone
// é responsabilidade do formulário; aqui não é validado.
type ClientRequest struct {
	Name         string     `json:"name"`
	Doc          string     `json:"doc"`
	Phone        string     `json:"phone"`
	Address      AddressDTO `json:"address"`
	Observations string     `json:"observations"`
}

// ClientResponse cliente nas respostas.
type ClientResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Doc          string     `json:"doc"`
	Phone        string     `json:"phone"`
	Address      AddressDTO `json:"address"`
	Observations string     `json:"observations"`
}
