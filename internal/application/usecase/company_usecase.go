package usecase

import (
	"github.com/h1brindes/orcamento-pro/internal/application/dto"
	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
	"github.com/h1brindes/orcamento-pro/internal/domain/repository"
)

// CompanyUseCase leitura e atualização dos dados da empresa emissora.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase constrói o caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get devolve os dados da empresa.
func (uc *CompanyUseCase) Get() *dto.CompanyResponse {
	return toCompanyResponse(uc.repo.GetCompany())
}

// Update substitui integralmente os dados da empresa.
func (uc *CompanyUseCase) Update(in dto.CompanyRequest) *dto.CompanyResponse {
	c := entity.Company{
		Name: in.Name,
		Doc:  in.Doc,
		Address: entity.CompanyAddress{
			Street: in.Address.Street,
			City:   in.Address.City,
			State:  in.Address.State,
			CEP:    in.Address.CEP,
		},
		Phone: in.Phone,
		Email: in.Email,
	}
	uc.repo.UpdateCompany(c)
	return toCompanyResponse(c)
}

func toCompanyResponse(c entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Name: c.Name,
		Doc:  c.Doc,
		Address: dto.CompanyAddressDTO{
			Street: c.Address.Street,
			City:   c.Address.City,
			State:  c.Address.State,
			CEP:    c.Address.CEP,
		},
		Phone: c.Phone,
		Email: c.Email,
	}
}
