// Package repository define os ports de acesso ao estado (DIP).
// O estado vive apenas em memória durante a sessão; as operações de escrita
// nunca falham de forma observável — id inexistente resulta em no-op.
package repository

import "github.com/h1brindes/orcamento-pro/internal/domain/entity"

// ClientRepository port de acesso à coleção de clientes.
type ClientRepository interface {
	ListClients() []entity.Client
	GetClient(id string) (entity.Client, bool)
	AddClient(c entity.Client)
	UpdateClient(c entity.Client)
	DeleteClient(id string)
}
