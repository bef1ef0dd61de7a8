package services

import (
	"errors"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
)

// duplicateMessages associa o campo da constraint à chave i18n da mensagem.
// A chave "" é usada quando o campo não pôde ser identificado.
type duplicateMessages map[string]string

// translateWriteError converte violações reportadas pelo banco em erros de domínio.
// Erros de domínio já construídos e erros inesperados passam sem alteração.
func translateWriteError(err error, messages duplicateMessages, params map[string]interface{}) error {
	if err == nil {
		return nil
	}

	var domainErr *domainerrors.DomainError
	if errors.As(err, &domainErr) {
		return err
	}

	var violation *domainerrors.ConstraintViolation
	if !errors.As(err, &violation) {
		return err
	}

	if !violation.IsUnique() {
		return domainerrors.NewValidationError("error.validation.integrity", nil, violation)
	}

	key, ok := messages[violation.Field]
	if !ok {
		key = messages[""]
	}
	return domainerrors.NewDuplicateError(key, params)
}
