package dto

// CompanyAddressDTO endereço da empresa no documento.
type CompanyAddressDTO struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	CEP    string `json:"cep"`
}

// CompanyRequest atualização integral dos dados da empresa.
type CompanyRequest struct {
	Name    string            `json:"name"`
	Doc     string            `json:"doc"`
	Address CompanyAddressDTO `json:"address"`
	Phone   string            `json:"phone"`
	Email   string            `json:"email"`
}

// CompanyResponse dados da empresa nas respostas.
type CompanyResponse struct {
	Name    string            `json:"name"`
	Doc     string            `json:"doc"`
	Address CompanyAddressDTO `json:"address"`
	Phone   string            `json:"phone"`
	Email   string            `json:"email"`
}
