package services

import (
	"context"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

var categoryDuplicateMessages = duplicateMessages{
	domainerrors.FieldName: "error.category.duplicate_name",
	"":                     "error.category.duplicate",
}

// CategoryService contém a lógica de negócio para categorias
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	logger       ports.Logger
}

// NewCategoryService cria um novo CategoryService
func NewCategoryService(categoryRepo repositories.CategoryRepository, logger ports.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With("service", "categories"),
	}
}

// CreateCategory cria uma categoria; nome duplicado é detectado pela constraint do banco
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entities.Category, error) {
	s.logger.Info("creating category", "nome", name)

	category := entities.NewCategory(name)
	if err := category.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("error.validation.detail", nil, err)
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, translateWriteError(err, categoryDuplicateMessages, map[string]interface{}{"Name": name})
	}

	s.logger.Info("category created", "id", category.ID)
	return category, nil
}

// GetCategory busca uma categoria por ID
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domainerrors.NewNotFoundError(
			"error.category.not_found",
			map[string]interface{}{"ID": id},
			domainerrors.ErrCategoryNotFound,
		)
	}
	return category, nil
}

// ListCategories lista todas as categorias
func (s *CategoryService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.categoryRepo.List(ctx)
}
