package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/h1brindes/orcamento-pro/internal/application/dto"
	"github.com/h1brindes/orcamento-pro/internal/domain"
	"github.com/h1brindes/orcamento-pro/internal/domain/repository"
	"github.com/h1brindes/orcamento-pro/pkg/config"
	"github.com/h1brindes/orcamento-pro/pkg/jwt"
)

// AuthUseCase autenticação do único operador do sistema.
type AuthUseCase struct {
	users repository.UserRepository
	cfg   config.JWTConfig
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(users repository.UserRepository, cfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, cfg: cfg}
}

// Login valida credenciais e emite o token de sessão. E-mail e senha errados
// produzem o mesmo erro; não revelamos qual campo falhou.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u := uc.users.GetUser()
	if in.Email != u.Email {
		return nil, domain.ErrNaoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}
	token, err := jwt.Generate(uc.cfg.Secret, u.Email, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:           token,
		Email:           u.Email,
		DefaultPassword: u.DefaultPassword,
	}, nil
}

// ChangeCredentials troca e-mail e senha do operador. Toda a validação
// acontece antes de qualquer mutação; em caso de erro nada muda.
func (uc *AuthUseCase) ChangeCredentials(in dto.ChangeCredentialsRequest) error {
	u := uc.users.GetUser()
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrSenhaAtual
	}
	if in.NewPassword == "" {
		return domain.ErrSenhaVazia
	}
	if in.NewPassword != in.ConfirmPassword {
		return domain.ErrSenhasNaoConferem
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	email := in.Email
	if email == "" {
		email = u.Email
	}
	u.Email = email
	u.PasswordHash = string(hash)
	u.DefaultPassword = false
	uc.users.UpdateUser(u)
	return nil
}
