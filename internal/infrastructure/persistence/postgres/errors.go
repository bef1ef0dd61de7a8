package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
)

var constraintFields = map[string]string{
	constraintAthleteCPF:         domainerrors.FieldCPF,
	constraintAthleteName:        domainerrors.FieldName,
	constraintCategoryName:       domainerrors.FieldName,
	constraintTrainingCenterName: domainerrors.FieldName,
}

// classifyWriteError converte falhas de escrita em *domainerrors.ConstraintViolation.
// Erros que não são violação de integridade são retornados sem alteração.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	// PostgreSQL: usar metadados estruturados (SQLSTATE + nome da constraint)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if !pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return err
		}

		violation := &domainerrors.ConstraintViolation{
			Kind:       domainerrors.ConstraintIntegrity,
			Constraint: pgErr.ConstraintName,
			Err:        err,
		}
		if pgErr.Code == pgerrcode.UniqueViolation {
			violation.Kind = domainerrors.ConstraintUnique
			violation.Field = fieldForConstraint(pgErr.ConstraintName)
		}
		return violation
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &domainerrors.ConstraintViolation{Kind: domainerrors.ConstraintUnique, Err: err}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	// Outros drivers (sqlite nos testes) só expõem a mensagem
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "constraint") {
		return err
	}

	violation := &domainerrors.ConstraintViolation{
		Kind: domainerrors.ConstraintIntegrity,
		Err:  err,
	}
	if strings.Contains(msg, "unique") {
		violation.Kind = domainerrors.ConstraintUnique
		violation.Field = fieldFromText(msg)
	}
	return violation
}

func fieldForConstraint(name string) string {
	if field, ok := constraintFields[name]; ok {
		return field
	}
	return fieldFromText(strings.ToLower(name))
}

// fieldFromText procura o nome da coluna no texto; cpf tem prioridade sobre nome
func fieldFromText(text string) string {
	switch {
	case strings.Contains(text, domainerrors.FieldCPF):
		return domainerrors.FieldCPF
	case strings.Contains(text, domainerrors.FieldName):
		return domainerrors.FieldName
	default:
		return ""
	}
}
