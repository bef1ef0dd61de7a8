package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrAthleteNotFound        = errors.New("error.athlete_not_found")
	ErrCategoryNotFound       = errors.New("error.category_not_found")
	ErrTrainingCenterNotFound = errors.New("error.training_center_not_found")
	ErrRelatedNotFound        = errors.New("error.related_not_found")
	ErrDuplicate              = errors.New("error.duplicate")
	ErrValidation             = errors.New("error.validation_failed")
)

// Domain errors
var (
	ErrInvalidCPF = errors.New("error.invalid_cpf")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation      = "/problems/validation-error"
	ProblemTypeNotFound        = "/problems/not-found"
	ProblemTypeRelatedNotFound = "/problems/related-not-found"
	ProblemTypeDuplicate       = "/problems/duplicate-resource"
	ProblemTypeInternal        = "/problems/internal-error"
	ProblemTypeBadRequest      = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional.
// Message é a chave i18n da mensagem; Params alimenta a interpolação.
type DomainError struct {
	Type    string
	Title   string
	Message string
	Params  map[string]interface{}
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDuplicateError cria um erro de recurso duplicado
func NewDuplicateError(messageKey string, params map[string]interface{}) *DomainError {
	return &DomainError{
		Type:    ProblemTypeDuplicate,
		Title:   "error.duplicate.title",
		Message: messageKey,
		Params:  params,
		Err:     ErrDuplicate,
	}
}

// NewNotFoundError cria um erro de recurso inexistente; err deve ser um sentinel *NotFound
func NewNotFoundError(messageKey string, params map[string]interface{}, err error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeNotFound,
		Title:   "error.not_found.title",
		Message: messageKey,
		Params:  params,
		Err:     err,
	}
}

// IsNotFound informa se err representa recurso inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAthleteNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTrainingCenterNotFound)
}

// NewRelatedNotFoundError cria um erro para referência que não resolve
func NewRelatedNotFoundError(messageKey string, params map[string]interface{}) *DomainError {
	return &DomainError{
		Type:    ProblemTypeRelatedNotFound,
		Title:   "error.related_not_found.title",
		Message: messageKey,
		Params:  params,
		Err:     ErrRelatedNotFound,
	}
}

// NewValidationError cria um erro genérico de validação
func NewValidationError(messageKey string, params map[string]interface{}, cause error) *DomainError {
	err := ErrValidation
	if cause != nil {
		err = errors.Join(ErrValidation, cause)
	}
	return &DomainError{
		Type:    ProblemTypeValidation,
		Title:   "error.validation.title",
		Message: messageKey,
		Params:  params,
		Err:     err,
	}
}

// ConstraintKind classifica a violação reportada pelo banco
type ConstraintKind string

const (
	ConstraintUnique    ConstraintKind = "unique"
	ConstraintIntegrity ConstraintKind = "integrity"
)

// Campos conhecidos por constraints de unicidade
const (
	FieldCPF  = "cpf"
	FieldName = "nome"
)

// ConstraintViolation é retornado pelos repositórios quando o banco rejeita uma escrita.
// Field fica vazio quando não foi possível identificar a coluna.
type ConstraintViolation struct {
	Kind       ConstraintKind
	Field      string
	Constraint string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	msg := string(e.Kind) + " constraint violation"
	if e.Constraint != "" {
		msg += " (" + e.Constraint + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstraintViolation) Unwrap() error {
	return e.Err
}

// IsUnique informa se a violação é de unicidade
func (e *ConstraintViolation) IsUnique() bool {
	return e.Kind == ConstraintUnique
}
