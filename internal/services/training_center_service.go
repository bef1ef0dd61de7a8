package services

import (
	"context"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

var trainingCenterDuplicateMessages = duplicateMessages{
	domainerrors.FieldName: "error.training_center.duplicate_name",
	"":                     "error.training_center.duplicate",
}

// TrainingCenterService contém a lógica de negócio para centros de treinamento
type TrainingCenterService struct {
	trainingCenterRepo repositories.TrainingCenterRepository
	logger             ports.Logger
}

// NewTrainingCenterService cria um novo TrainingCenterService
func NewTrainingCenterService(trainingCenterRepo repositories.TrainingCenterRepository, logger ports.Logger) *TrainingCenterService {
	return &TrainingCenterService{
		trainingCenterRepo: trainingCenterRepo,
		logger:             logger.With("service", "training_centers"),
	}
}

// CreateTrainingCenterInput representa os dados para criar um centro de treinamento
type CreateTrainingCenterInput struct {
	Name    string
	Address string
	Owner   string
}

func (s *TrainingCenterService) CreateTrainingCenter(ctx context.Context, input CreateTrainingCenterInput) (*entities.TrainingCenter, error) {
	s.logger.Info("creating training center", "nome", input.Name)

	trainingCenter := entities.NewTrainingCenter(input.Name, input.Address, input.Owner)
	if err := trainingCenter.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("error.validation.detail", nil, err)
	}

	if err := s.trainingCenterRepo.Create(ctx, trainingCenter); err != nil {
		return nil, translateWriteError(err, trainingCenterDuplicateMessages, map[string]interface{}{"Name": input.Name})
	}

	s.logger.Info("training center created", "id", trainingCenter.ID)
	return trainingCenter, nil
}

func (s *TrainingCenterService) GetTrainingCenter(ctx context.Context, id string) (*entities.TrainingCenter, error) {
	trainingCenter, err := s.trainingCenterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trainingCenter == nil {
		return nil, domainerrors.NewNotFoundError(
			"error.training_center.not_found",
			map[string]interface{}{"ID": id},
			domainerrors.ErrTrainingCenterNotFound,
		)
	}
	return trainingCenter, nil
}

func (s *TrainingCenterService) ListTrainingCenters(ctx context.Context) ([]*entities.TrainingCenter, error) {
	return s.trainingCenterRepo.List(ctx)
}
