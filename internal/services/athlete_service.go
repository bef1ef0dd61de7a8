package services

import (
	"context"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/domain/valueobjects"
)

var athleteDuplicateMessages = duplicateMessages{
	domainerrors.FieldCPF:  "error.athlete.duplicate_cpf",
	domainerrors.FieldName: "error.athlete.duplicate_name",
	"":                     "error.athlete.duplicate",
}

// AthleteService contém a lógica de negócio para atletas
type AthleteService struct {
	athleteRepo        repositories.AthleteRepository
	categoryRepo       repositories.CategoryRepository
	trainingCenterRepo repositories.TrainingCenterRepository
	uow                ports.UnitOfWork
	logger             ports.Logger
}

// NewAthleteService cria um novo AthleteService
func NewAthleteService(
	athleteRepo repositories.AthleteRepository,
	categoryRepo repositories.CategoryRepository,
	trainingCenterRepo repositories.TrainingCenterRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AthleteService {
	return &AthleteService{
		athleteRepo:        athleteRepo,
		categoryRepo:       categoryRepo,
		trainingCenterRepo: trainingCenterRepo,
		uow:                uow,
		logger:             logger.With("service", "athletes"),
	}
}

// CreateAthleteInput representa os dados para criar um atleta.
// Categoria e centro de treinamento são referenciados pelo nome.
type CreateAthleteInput struct {
	Name               string
	CPF                string
	Age                int
	Weight             float64
	Height             float64
	Sex                string
	CategoryName       string
	TrainingCenterName string
}

// UpdateAthleteInput representa uma atualização parcial; campos nil não mudam
type UpdateAthleteInput struct {
	Name               *string
	CPF                *string
	Age                *int
	Weight             *float64
	Height             *float64
	Sex                *string
	CategoryName       *string
	TrainingCenterName *string
}

// CreateAthlete cria um novo atleta.
// As verificações de CPF e nome são antecipações; a constraint do banco é a palavra final.
func (s *AthleteService) CreateAthlete(ctx context.Context, input CreateAthleteInput) (*entities.Athlete, error) {
	s.logger.Info("creating athlete", "nome", input.Name)

	cpf, err := s.parseCPF(input.CPF)
	if err != nil {
		return nil, err
	}

	var athlete *entities.Athlete
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		category, err := s.resolveCategory(txCtx, input.CategoryName)
		if err != nil {
			return err
		}

		trainingCenter, err := s.resolveTrainingCenter(txCtx, input.TrainingCenterName)
		if err != nil {
			return err
		}

		existing, err := s.athleteRepo.FindByCPF(txCtx, cpf.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return domainerrors.NewDuplicateError("error.athlete.duplicate_cpf", duplicateParams(cpf.String(), input.Name))
		}

		existing, err = s.athleteRepo.FindByName(txCtx, input.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domainerrors.NewDuplicateError("error.athlete.duplicate_name", duplicateParams(cpf.String(), input.Name))
		}

		athlete = entities.NewAthlete(
			input.Name,
			cpf,
			input.Age,
			input.Weight,
			input.Height,
			input.Sex,
			category,
			trainingCenter,
		)
		if err := athlete.Validate(); err != nil {
			return domainerrors.NewValidationError("error.athlete.invalid", map[string]interface{}{"Reason": err.Error()}, err)
		}

		return s.athleteRepo.Create(txCtx, athlete)
	})
	if err != nil {
		return nil, translateWriteError(err, athleteDuplicateMessages, duplicateParams(cpf.String(), input.Name))
	}

	s.logger.Info("athlete created", "id", athlete.ID)
	return athlete, nil
}

// GetAthlete busca um atleta por ID
func (s *AthleteService) GetAthlete(ctx context.Context, id string) (*entities.Athlete, error) {
	athlete, err := s.athleteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, athleteNotFound(id)
	}
	return athlete, nil
}

// ListAthletes lista atletas com filtros parciais por nome e CPF.
// O CPF é gravado só com dígitos, então o filtro é normalizado da mesma forma.
func (s *AthleteService) ListAthletes(ctx context.Context, filters repositories.AthleteFilters) ([]*entities.Athlete, error) {
	filters.CPF = valueobjects.NormalizeCPF(filters.CPF)
	return s.athleteRepo.List(ctx, filters)
}

// UpdateAthlete aplica uma atualização parcial e retorna o atleta recarregado
func (s *AthleteService) UpdateAthlete(ctx context.Context, id string, input UpdateAthleteInput) (*entities.Athlete, error) {
	s.logger.Info("updating athlete", "id", id)

	changes := entities.AthleteChanges{
		Name:   input.Name,
		Age:    input.Age,
		Weight: input.Weight,
		Height: input.Height,
		Sex:    input.Sex,
	}

	if input.CPF != nil {
		cpf, err := s.parseCPF(*input.CPF)
		if err != nil {
			return nil, err
		}
		changes.CPF = &cpf
	}

	var candidate, updated *entities.Athlete
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		athlete, err := s.athleteRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if athlete == nil {
			return athleteNotFound(id)
		}

		if input.CategoryName != nil {
			if changes.Category, err = s.resolveCategory(txCtx, *input.CategoryName); err != nil {
				return err
			}
		}
		if input.TrainingCenterName != nil {
			if changes.TrainingCenter, err = s.resolveTrainingCenter(txCtx, *input.TrainingCenterName); err != nil {
				return err
			}
		}

		athlete.Apply(changes)
		candidate = athlete

		if err := athlete.Validate(); err != nil {
			return domainerrors.NewValidationError("error.athlete.invalid", map[string]interface{}{"Reason": err.Error()}, err)
		}

		if err := s.athleteRepo.Update(txCtx, athlete); err != nil {
			return err
		}

		updated, err = s.athleteRepo.FindByID(txCtx, id)
		return err
	})
	if err != nil {
		var params map[string]interface{}
		if candidate != nil {
			params = duplicateParams(candidate.CPF.String(), candidate.Name)
		}
		return nil, translateWriteError(err, athleteDuplicateMessages, params)
	}

	s.logger.Info("athlete updated", "id", id)
	return updated, nil
}

// DeleteAthlete remove um atleta
func (s *AthleteService) DeleteAthlete(ctx context.Context, id string) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		athlete, err := s.athleteRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if athlete == nil {
			return athleteNotFound(id)
		}

		return s.athleteRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("athlete deleted", "id", id)
	return nil
}

func (s *AthleteService) parseCPF(raw string) (valueobjects.CPF, error) {
	cpf, err := valueobjects.NewCPF(raw)
	if err != nil {
		return valueobjects.CPF{}, domainerrors.NewValidationError(
			"error.athlete.invalid_cpf",
			map[string]interface{}{"CPF": raw},
			err,
		)
	}
	return cpf, nil
}

func (s *AthleteService) resolveCategory(ctx context.Context, name string) (*entities.Category, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domainerrors.NewRelatedNotFoundError(
			"error.athlete.category_not_found",
			map[string]interface{}{"Name": name},
		)
	}
	return category, nil
}

func (s *AthleteService) resolveTrainingCenter(ctx context.Context, name string) (*entities.TrainingCenter, error) {
	trainingCenter, err := s.trainingCenterRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if trainingCenter == nil {
		return nil, domainerrors.NewRelatedNotFoundError(
			"error.athlete.training_center_not_found",
			map[string]interface{}{"Name": name},
		)
	}
	return trainingCenter, nil
}

func athleteNotFound(id string) error {
	return domainerrors.NewNotFoundError(
		"error.athlete.not_found",
		map[string]interface{}{"ID": id},
		domainerrors.ErrAthleteNotFound,
	)
}

func duplicateParams(cpf, name string) map[string]interface{} {
	return map[string]interface{}{"CPF": cpf, "Name": name}
}
