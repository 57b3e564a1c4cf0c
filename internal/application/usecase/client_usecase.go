package usecase

import (
	"github.com/google/uuid"

	"github.com/h1brindes/orcamento-pro/internal/application/dto"
	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
	"github.com/h1brindes/orcamento-pro/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cadastra um cliente; o id é gerado aqui e nunca reutilizado.
func (uc *ClientUseCase) Create(in dto.ClientRequest) *dto.ClientResponse {
	c := entity.Client{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Doc:          in.Doc,
		Phone:        in.Phone,
		Address:      toAddress(in.Address),
		Observations: in.Observations,
	}
	uc.repo.AddClient(c)
	return toClientResponse(c)
}

// GetByID devolve o cliente ou nil se não existir.
func (uc *ClientUseCase) GetByID(id string) *dto.ClientResponse {
	c, ok := uc.repo.GetClient(id)
	if !ok {
		return nil
	}
	return toClientResponse(c)
}

// List devolve todos os clientes da sessão.
func (uc *ClientUseCase) List() []dto.ClientResponse {
	list := uc.repo.ListClients()
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out
}

// Update substitui o cliente pelo id; devolve nil se o id não existir
// (a escrita no store seria no-op de qualquer forma).
func (uc *ClientUseCase) Update(id string, in dto.ClientRequest) *dto.ClientResponse {
	if _, ok := uc.repo.GetClient(id); !ok {
		return nil
	}
	c := entity.Client{
		ID:           id,
		Name:         in.Name,
		Doc:          in.Doc,
		Phone:        in.Phone,
		Address:      toAddress(in.Address),
		Observations: in.Observations,
	}
	uc.repo.UpdateClient(c)
	return toClientResponse(c)
}

// Delete remove o cliente. Orçamentos que o referenciam permanecem na
// coleção com a referência órfã ("Cliente não encontrado" na exibição).
func (uc *ClientUseCase) Delete(id string) {
	uc.repo.DeleteClient(id)
}

func toAddress(in dto.AddressDTO) entity.Address {
	return entity.Address{
		CEP:          in.CEP,
		Street:       in.Street,
		Number:       in.Number,
		Complement:   in.Complement,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
	}
}

func toClientResponse(c entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:    c.ID,
		Name:  c.Name,
		Doc:   c.Doc,
		Phone: c.Phone,
		Address: dto.AddressDTO{
			CEP:          c.Address.CEP,
			Street:       c.Address.Street,
			Number:       c.Address.Number,
			Complement:   c.Address.Complement,
			Neighborhood: c.Address.Neighborhood,
			City:         c.Address.City,
			State:        c.Address.State,
		},
		Observations: c.Observations,
	}
}
