package entities

import (
	"errors"

	"github.com/google/uuid"
)

// Category representa uma categoria de atletas (ex.: Scale, Peso Pesado)
type Category struct {
	ID   string
	Name string
}

// NewCategory cria uma categoria com identificador gerado
func NewCategory(name string) *Category {
	return &Category{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// Validate valida regras de negócio da entidade Category
func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
