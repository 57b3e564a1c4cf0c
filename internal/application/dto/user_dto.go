package dto

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sessão. DefaultPassword fica true enquanto a senha
// de fábrica estiver em vigor — a interface exibe um aviso persistente.
type LoginResponse struct {
	Token           string `json:"token"`
	Email           string `json:"email"`
	DefaultPassword bool   `json:"default_password"`
}

// ChangeCredentialsRequest troca de e-mail/senha. A validação (senha atual,
// confirmação, senha não vazia) acontece antes de qualquer mutação.
type ChangeCredentialsRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
