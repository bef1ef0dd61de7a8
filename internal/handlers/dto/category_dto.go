package dto

import "github.com/rafabene/workout-api/internal/domain/entities"

// CreateCategoryRequest representa a requisição para criar uma categoria
type CreateCategoryRequest struct {
	Name string `json:"nome" binding:"required,max=50" example:"Scale"`
}

// CategoryResponse representa a resposta de uma categoria
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

func ToCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

func ToCategoryResponses(categories []*entities.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
