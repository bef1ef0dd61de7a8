package dto

import (
	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/services"
)

// CreateTrainingCenterRequest representa a requisição para criar um centro de treinamento
type CreateTrainingCenterRequest struct {
	Name    string `json:"nome" binding:"required,max=20" example:"CT King"`
	Address string `json:"endereco" binding:"omitempty,max=60" example:"Rua X, Q02"`
	Owner   string `json:"proprietario" binding:"omitempty,max=30" example:"Marcos"`
}

// TrainingCenterResponse representa a resposta de um centro de treinamento
type TrainingCenterResponse struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Address string `json:"endereco,omitempty"`
	Owner   string `json:"proprietario,omitempty"`
}

func (r CreateTrainingCenterRequest) ToCreateTrainingCenterInput() services.CreateTrainingCenterInput {
	return services.CreateTrainingCenterInput{
		Name:    r.Name,
		Address: r.Address,
		Owner:   r.Owner,
	}
}

func ToTrainingCenterResponse(tc *entities.TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		ID:      tc.ID,
		Name:    tc.Name,
		Address: tc.Address,
		Owner:   tc.Owner,
	}
}

func ToTrainingCenterResponses(centers []*entities.TrainingCenter) []TrainingCenterResponse {
	responses := make([]TrainingCenterResponse, len(centers))
	for i, tc := range centers {
		responses[i] = ToTrainingCenterResponse(tc)
	}
	return responses
}
