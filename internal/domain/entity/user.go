package entity

// User credenciais do único usuário do sistema (single-tenant).
// DefaultPassword permanece true enquanto a senha semeada de fábrica estiver
// em vigor; o sistema exibe um aviso persistente até que ela seja trocada.
type User struct {
	Email           string
	PasswordHash    string // bcrypt, nunca em claro após o boot
	DefaultPassword bool
}
