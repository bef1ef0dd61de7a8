// Package ports define as dependências que o domínio e os services esperam da infraestrutura
package ports

import "context"

// Logger é o logger estruturado usado pelos services e handlers.
// args são pares chave/valor, como em log/slog.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}

// UnitOfWork controla a transação de uma operação de negócio.
// Begin devolve um contexto que carrega a transação; repositórios que
// recebem esse contexto participam dela.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	// WithTransaction executa fn em uma transação: commit se fn retornar nil,
	// rollback caso contrário. Se ctx já carrega uma transação, ela é reutilizada.
	WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
