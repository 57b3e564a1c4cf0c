package usecase

import (
	"github.com/google/uuid"

	"github.com/h1brindes/orcamento-pro/internal/application/dto"
	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
	"github.com/h1brindes/orcamento-pro/internal/domain/pricing"
	"github.com/h1brindes/orcamento-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para o catálogo de produtos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cadastra um produto no catálogo.
func (uc *ProductUseCase) Create(in dto.ProductRequest) *dto.ProductResponse {
	p := entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		CostPrice:   in.CostPrice,
		SellPrice:   in.SellPrice,
	}
	uc.repo.AddProduct(p)
	return toProductResponse(p)
}

// GetByID devolve o produto ou nil se não existir.
func (uc *ProductUseCase) GetByID(id string) *dto.ProductResponse {
	p, ok := uc.repo.GetProduct(id)
	if !ok {
		return nil
	}
	return toProductResponse(p)
}

// List devolve o catálogo completo.
func (uc *ProductUseCase) List() []dto.ProductResponse {
	list := uc.repo.ListProducts()
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

// Update substitui o produto pelo id; nil se não existir. Itens de orçamento
// já gravados mantêm o retrato de preço da época.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) *dto.ProductResponse {
	if _, ok := uc.repo.GetProduct(id); !ok {
		return nil
	}
	p := entity.Product{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		CostPrice:   in.CostPrice,
		SellPrice:   in.SellPrice,
	}
	uc.repo.UpdateProduct(p)
	return toProductResponse(p)
}

// Delete remove o produto do catálogo. Linhas de orçamento que o referenciam
// ficam órfãs por projeto (retrato de preço preservado).
func (uc *ProductUseCase) Delete(id string) {
	uc.repo.DeleteProduct(id)
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		CostPrice:    p.CostPrice,
		SellPrice:    p.SellPrice,
		ProfitMargin: pricing.ProfitMargin(p.CostPrice, p.SellPrice).Round(2),
	}
}
