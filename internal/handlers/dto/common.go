package dto

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
)

// StatusDuplicate é o status usado para recurso duplicado.
// Mantém 303 por compatibilidade com os clientes existentes da API.
const StatusDuplicate = http.StatusSeeOther

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro RFC 7807
func NewErrorResponse(c *gin.Context, problemType, title string, status int, detail string) ErrorResponse {
	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL(c) + problemType
	problem.Title = title
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: problem}
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponse(c, problemType, T(c, titleKey, params...), status, T(c, detailKey, params...))
}

// DomainErrorResponse converte um DomainError na resposta correspondente
func DomainErrorResponse(c *gin.Context, err *domainerrors.DomainError, status int) ErrorResponse {
	return NewErrorResponse(c, err.Type, T(c, err.Title), status, T(c, err.Message, err.Params))
}

// Respond escreve a resposta como application/problem+json
func Respond(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}

func baseURL(c *gin.Context) string {
	url := c.GetString("base_url")
	if url == "" {
		url = "http://localhost:8000"
	}
	return url
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// BindingErrorResponseI18n traduz erros de binding (JSON malformado ou tags do validator)
func BindingErrorResponseI18n(c *gin.Context, err error) ErrorResponse {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		response := NewErrorResponseI18n(
			c,
			domainerrors.ProblemTypeBadRequest,
			"error.bad_request.title",
			"validation.malformed_body",
			http.StatusBadRequest,
		)
		response.Errors = []ValidationError{{
			Field:   "body",
			Message: T(c, "validation.malformed_body"),
		}}
		return response
	}

	validationErrors := make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		field := jsonFieldName(fe)
		params := map[string]interface{}{"Field": field, "Param": fe.Param()}

		key := "validation." + fe.Tag()
		message := T(c, key, params)
		if message == key {
			message = T(c, "validation.invalid", params)
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   field,
			Message: message,
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
		})
	}

	return ValidationErrorResponseI18n(c, validationErrors)
}

// jsonFieldName devolve o caminho do campo no JSON (categoria.nome).
// O namespace do validator já usa as tags json; só o nome do struct raiz é removido.
func jsonFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx != -1 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
		params...,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500 sem detalhes internos
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}
