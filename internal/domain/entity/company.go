package entity

// CompanyAddress endereço da empresa emissora (apenas para o documento).
type CompanyAddress struct {
	Street string
	City   string
	State  string
	CEP    string
}

// Company dados da empresa emissora dos orçamentos. Usada somente na
// renderização do documento e na assinatura da mensagem compartilhada.
type Company struct {
	Name    string
	Doc     string // CNPJ
	Address CompanyAddress
	Phone   string
	Email   string
}
