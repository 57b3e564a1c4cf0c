package repository

import "github.com/h1brindes/orcamento-pro/internal/domain/entity"

// CompanyRepository port dos dados da empresa emissora (single-tenant).
type CompanyRepository interface {
	GetCompany() entity.Company
	UpdateCompany(c entity.Company)
}

// UserRepository port das credenciais do único usuário do sistema.
type UserRepository interface {
	GetUser() entity.User
	UpdateUser(u entity.User)
}
