package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado      = errors.New("recurso não encontrado")
	ErrEntradaInvalida    = errors.New("entrada inválida")
	ErrDuplicado          = errors.New("recurso duplicado")
	ErrNaoAutorizado      = errors.New("não autorizado")
	ErrSemRascunho        = errors.New("nenhum orçamento em edição")
	ErrClienteObrigatorio = errors.New("selecione um cliente")
	ErrSemItens           = errors.New("adicione pelo menos um produto")
	ErrDataEnvioMinima    = errors.New("data de envio abaixo do prazo mínimo de 15 dias úteis")
	ErrSenhaAtual         = errors.New("senha atual incorreta")
	ErrSenhasNaoConferem  = errors.New("nova senha e confirmação não conferem")
	ErrSenhaVazia         = errors.New("a nova senha não pode ser vazia")
	ErrClienteSemTelefone = errors.New("cliente não possui um número de telefone cadastrado")
)
