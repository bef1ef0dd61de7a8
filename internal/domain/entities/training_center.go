package entities

import (
	"errors"

	"github.com/google/uuid"
)

// TrainingCenter representa um centro de treinamento
type TrainingCenter struct {
	ID      string
	Name    string
	Address string
	Owner   string
}

// NewTrainingCenter cria um centro de treinamento com identificador gerado
func NewTrainingCenter(name, address, owner string) *TrainingCenter {
	return &TrainingCenter{
		ID:      uuid.NewString(),
		Name:    name,
		Address: address,
		Owner:   owner,
	}
}

func (tc *TrainingCenter) Validate() error {
	if tc.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
