package repository

import "github.com/h1brindes/orcamento-pro/internal/domain/entity"

// ProductRepository port de acesso ao catálogo de produtos.
// Excluir um produto não remove itens de orçamento que o referenciam: o
// retrato de preço é preservado e a resolução do nome degrada na exibição.
type ProductRepository interface {
	ListProducts() []entity.Product
	GetProduct(id string) (entity.Product, bool)
	AddProduct(p entity.Product)
	UpdateProduct(p entity.Product)
	DeleteProduct(id string)
}
