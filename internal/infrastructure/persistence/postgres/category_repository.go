package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	model := categoryToModel(category)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "id = ?", id)
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*entities.Category, error) {
	return r.findOne(ctx, "nome = ?", name)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var models []*CategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("nome").Find(&models).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(models))
	for _, model := range models {
		categories = append(categories, categoryToEntity(model))
	}
	return categories, nil
}

func (r *CategoryRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.Category, error) {
	var model CategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return categoryToEntity(&model), nil
}

// Conversores
func categoryToModel(category *entities.Category) *CategoryModel {
	return &CategoryModel{
		ID:   category.ID,
		Nome: category.Name,
	}
}

func categoryToEntity(model *CategoryModel) *entities.Category {
	return &entities.Category{
		ID:   model.ID,
		Name: model.Nome,
	}
}
