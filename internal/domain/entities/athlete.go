package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/workout-api/internal/domain/valueobjects"
)

// Athlete representa um atleta cadastrado.
// Category e TrainingCenter são sempre resolvidos antes da persistência.
type Athlete struct {
	ID             string
	Name           string
	CPF            valueobjects.CPF
	Age            int
	Weight         float64
	Height         float64
	Sex            string
	CreatedAt      time.Time
	Category       *Category
	TrainingCenter *TrainingCenter
}

// AthleteChanges contém apenas os campos enviados em uma atualização parcial.
// Campos nil não são alterados.
type AthleteChanges struct {
	Name           *string
	CPF            *valueobjects.CPF
	Age            *int
	Weight         *float64
	Height         *float64
	Sex            *string
	Category       *Category
	TrainingCenter *TrainingCenter
}

// NewAthlete cria um atleta com identificador e data de criação gerados
func NewAthlete(
	name string,
	cpf valueobjects.CPF,
	age int,
	weight, height float64,
	sex string,
	category *Category,
	trainingCenter *TrainingCenter,
) *Athlete {
	return &Athlete{
		ID:             uuid.NewString(),
		Name:           name,
		CPF:            cpf,
		Age:            age,
		Weight:         weight,
		Height:         height,
		Sex:            sex,
		CreatedAt:      time.Now().UTC(),
		Category:       category,
		TrainingCenter: trainingCenter,
	}
}

// Apply aplica uma atualização parcial
func (a *Athlete) Apply(changes AthleteChanges) {
	if changes.Name != nil {
		a.Name = *changes.Name
	}
	if changes.CPF != nil {
		a.CPF = *changes.CPF
	}
	if changes.Age != nil {
		a.Age = *changes.Age
	}
	if changes.Weight != nil {
		a.Weight = *changes.Weight
	}
	if changes.Height != nil {
		a.Height = *changes.Height
	}
	if changes.Sex != nil {
		a.Sex = *changes.Sex
	}
	if changes.Category != nil {
		a.Category = changes.Category
	}
	if changes.TrainingCenter != nil {
		a.TrainingCenter = changes.TrainingCenter
	}
}

// CategoryName retorna o nome da categoria ou "" se não carregada
func (a *Athlete) CategoryName() string {
	if a.Category == nil {
		return ""
	}
	return a.Category.Name
}

// TrainingCenterName retorna o nome do centro de treinamento ou "" se não carregado
func (a *Athlete) TrainingCenterName() string {
	if a.TrainingCenter == nil {
		return ""
	}
	return a.TrainingCenter.Name
}

// Validate valida regras de negócio da entidade Athlete
func (a *Athlete) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}

	if a.CPF.String() == "" {
		return errors.New("cpf is required")
	}

	if a.Age < 0 {
		return errors.New("age must not be negative")
	}

	if a.Weight <= 0 || a.Height <= 0 {
		return errors.New("weight and height must be positive")
	}

	if a.Category == nil || a.Category.ID == "" {
		return errors.New("category is required")
	}

	if a.TrainingCenter == nil || a.TrainingCenter.ID == "" {
		return errors.New("training center is required")
	}

	return nil
}
