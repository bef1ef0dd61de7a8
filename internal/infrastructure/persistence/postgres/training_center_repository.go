package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// TrainingCenterRepository implementa repositories.TrainingCenterRepository
type TrainingCenterRepository struct {
	db *gorm.DB
}

// NewTrainingCenterRepository cria um novo TrainingCenterRepository
func NewTrainingCenterRepository(db *gorm.DB) repositories.TrainingCenterRepository {
	return &TrainingCenterRepository{db: db}
}

func (r *TrainingCenterRepository) Create(ctx context.Context, trainingCenter *entities.TrainingCenter) error {
	model := trainingCenterToModel(trainingCenter)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *TrainingCenterRepository) FindByID(ctx context.Context, id string) (*entities.TrainingCenter, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "id = ?", id)
}

func (r *TrainingCenterRepository) FindByName(ctx context.Context, name string) (*entities.TrainingCenter, error) {
	return r.findOne(ctx, "nome = ?", name)
}

func (r *TrainingCenterRepository) List(ctx context.Context) ([]*entities.TrainingCenter, error) {
	var models []*TrainingCenterModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("nome").Find(&models).Error; err != nil {
		return nil, err
	}

	centers := make([]*entities.TrainingCenter, 0, len(models))
	for _, model := range models {
		centers = append(centers, trainingCenterToEntity(model))
	}
	return centers, nil
}

func (r *TrainingCenterRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.TrainingCenter, error) {
	var model TrainingCenterModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return trainingCenterToEntity(&model), nil
}

func trainingCenterToModel(tc *entities.TrainingCenter) *TrainingCenterModel {
	return &TrainingCenterModel{
		ID:           tc.ID,
		Nome:         tc.Name,
		Endereco:     tc.Address,
		Proprietario: tc.Owner,
	}
}

func trainingCenterToEntity(model *TrainingCenterModel) *entities.TrainingCenter {
	return &entities.TrainingCenter{
		ID:      model.ID,
		Name:    model.Nome,
		Address: model.Endereco,
		Owner:   model.Proprietario,
	}
}
