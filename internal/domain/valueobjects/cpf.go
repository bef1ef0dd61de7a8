package valueobjects

import (
	"strings"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
)

const cpfLength = 11

var cpfSeparators = strings.NewReplacer(".", "", "-", "", " ", "")

// CPF é um value object que garante um CPF com 11 dígitos.
// Pontuação (000.000.000-00) é aceita e removida.
type CPF struct {
	value string
}

// NormalizeCPF remove a pontuação aceita em um CPF (pontos, hífen e espaços).
// Também serve para trechos parciais usados em filtros.
func NormalizeCPF(cpf string) string {
	return cpfSeparators.Replace(strings.TrimSpace(cpf))
}

// NewCPF cria um novo CPF normalizado
func NewCPF(cpf string) (CPF, error) {
	cpf = NormalizeCPF(cpf)

	if !isValidCPF(cpf) {
		return CPF{}, domainerrors.ErrInvalidCPF
	}

	return CPF{value: cpf}, nil
}

// String retorna os dígitos do CPF
func (c CPF) String() string {
	return c.value
}

// isValidCPF valida apenas o formato; dígitos verificadores não são conferidos
func isValidCPF(cpf string) bool {
	if len(cpf) != cpfLength {
		return false
	}

	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
