package dto

import (
	"time"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/services"
)

// NameRef referencia uma entidade relacionada pelo nome
type NameRef struct {
	Name string `json:"nome" binding:"required,max=50" example:"Scale"`
}

// CreateAthleteRequest representa a requisição para criar um atleta
type CreateAthleteRequest struct {
	Name           string  `json:"nome" binding:"required,max=50" example:"Joao"`
	CPF            string  `json:"cpf" binding:"required,max=14" example:"12345678901"`
	Age            int     `json:"idade" binding:"required,gt=0,lte=150" example:"25"`
	Weight         float64 `json:"peso" binding:"required,gt=0" example:"75.5"`
	Height         float64 `json:"altura" binding:"required,gt=0" example:"1.7"`
	Sex            string  `json:"sexo" binding:"required,len=1" example:"M"`
	Category       NameRef `json:"categoria" binding:"required"`
	TrainingCenter NameRef `json:"centro_treinamento" binding:"required"`
}

// UpdateAthleteRequest representa uma atualização parcial; campos ausentes não mudam
type UpdateAthleteRequest struct {
	Name           *string  `json:"nome" binding:"omitempty,min=1,max=50"`
	CPF            *string  `json:"cpf" binding:"omitempty,max=14"`
	Age            *int     `json:"idade" binding:"omitempty,gt=0,lte=150"`
	Weight         *float64 `json:"peso" binding:"omitempty,gt=0"`
	Height         *float64 `json:"altura" binding:"omitempty,gt=0"`
	Sex            *string  `json:"sexo" binding:"omitempty,len=1"`
	Category       *NameRef `json:"categoria" binding:"omitempty"`
	TrainingCenter *NameRef `json:"centro_treinamento" binding:"omitempty"`
}

// AthleteFilterQuery representa os filtros da listagem
type AthleteFilterQuery struct {
	Name string `form:"nome"`
	CPF  string `form:"cpf"`
}

// AthleteResponse representa a resposta completa de um atleta
type AthleteResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"nome"`
	CPF            string    `json:"cpf"`
	Age            int       `json:"idade"`
	Weight         float64   `json:"peso"`
	Height         float64   `json:"altura"`
	Sex            string    `json:"sexo"`
	CreatedAt      time.Time `json:"created_at"`
	Category       NameRef   `json:"categoria"`
	TrainingCenter NameRef   `json:"centro_treinamento"`
}

// AthleteSummaryResponse é a projeção usada na listagem
type AthleteSummaryResponse struct {
	Name           string `json:"nome"`
	TrainingCenter string `json:"centro_treinamento"`
	Category       string `json:"categoria"`
}

// ToCreateAthleteInput converte a requisição para o input do service
func (r CreateAthleteRequest) ToCreateAthleteInput() services.CreateAthleteInput {
	return services.CreateAthleteInput{
		Name:               r.Name,
		CPF:                r.CPF,
		Age:                r.Age,
		Weight:             r.Weight,
		Height:             r.Height,
		Sex:                r.Sex,
		CategoryName:       r.Category.Name,
		TrainingCenterName: r.TrainingCenter.Name,
	}
}

// ToUpdateAthleteInput converte a requisição para o input do service
func (r UpdateAthleteRequest) ToUpdateAthleteInput() services.UpdateAthleteInput {
	input := services.UpdateAthleteInput{
		Name:   r.Name,
		CPF:    r.CPF,
		Age:    r.Age,
		Weight: r.Weight,
		Height: r.Height,
		Sex:    r.Sex,
	}
	if r.Category != nil {
		input.CategoryName = &r.Category.Name
	}
	if r.TrainingCenter != nil {
		input.TrainingCenterName = &r.TrainingCenter.Name
	}
	return input
}

// ToAthleteResponse converte uma entidade Athlete para AthleteResponse
func ToAthleteResponse(athlete *entities.Athlete) AthleteResponse {
	return AthleteResponse{
		ID:             athlete.ID,
		Name:           athlete.Name,
		CPF:            athlete.CPF.String(),
		Age:            athlete.Age,
		Weight:         athlete.Weight,
		Height:         athlete.Height,
		Sex:            athlete.Sex,
		CreatedAt:      athlete.CreatedAt,
		Category:       NameRef{Name: athlete.CategoryName()},
		TrainingCenter: NameRef{Name: athlete.TrainingCenterName()},
	}
}

// ToAthleteSummaryResponses converte atletas para a projeção da listagem
func ToAthleteSummaryResponses(athletes []*entities.Athlete) []AthleteSummaryResponse {
	responses := make([]AthleteSummaryResponse, len(athletes))
	for i, athlete := range athletes {
		responses[i] = AthleteSummaryResponse{
			Name:           athlete.Name,
			TrainingCenter: athlete.TrainingCenterName(),
			Category:       athlete.CategoryName(),
		}
	}
	return responses
}
