package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/domain/valueobjects"
)

// AthleteRepository implementa repositories.AthleteRepository
type AthleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository cria um novo AthleteRepository
func NewAthleteRepository(db *gorm.DB) repositories.AthleteRepository {
	return &AthleteRepository{db: db}
}

func (r *AthleteRepository) Create(ctx context.Context, athlete *entities.Athlete) error {
	model := athleteToModel(athlete)

	db := dbFromContext(ctx, r.db)
	// Relações já existem; nunca inserir categoria/centro junto com o atleta
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *AthleteRepository) FindByID(ctx context.Context, id string) (*entities.Athlete, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "atletas.id = ?", id)
}

func (r *AthleteRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Athlete, error) {
	return r.findOne(ctx, "atletas.cpf = ?", cpf)
}

func (r *AthleteRepository) FindByName(ctx context.Context, name string) (*entities.Athlete, error) {
	return r.findOne(ctx, "atletas.nome = ?", name)
}

func (r *AthleteRepository) Update(ctx context.Context, athlete *entities.Athlete) error {
	model := athleteToModel(athlete)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Save(model).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *AthleteRepository) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}

	db := dbFromContext(ctx, r.db)
	return db.Where("id = ?", id).Delete(&AthleteModel{}).Error
}

func (r *AthleteRepository) List(ctx context.Context, filters repositories.AthleteFilters) ([]*entities.Athlete, error) {
	var models []*AthleteModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&AthleteModel{}).
		Preload("Categoria").
		Preload("CentroTreinamento")

	// LOWER + LIKE funciona no PostgreSQL e no sqlite (ILIKE só existe no PostgreSQL)
	if filters.Name != "" {
		query = query.Where(`LOWER(nome) LIKE ? ESCAPE '\'`, containsPattern(filters.Name))
	}
	if filters.CPF != "" {
		query = query.Where(`LOWER(cpf) LIKE ? ESCAPE '\'`, containsPattern(filters.CPF))
	}

	if err := query.Order("nome").Find(&models).Error; err != nil {
		return nil, err
	}

	return athletesToEntities(models)
}

func (r *AthleteRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.Athlete, error) {
	var model AthleteModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Categoria").
		Preload("CentroTreinamento").
		Where(query, args...).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return athleteToEntity(&model)
}

// containsPattern escapa curingas do LIKE e monta %valor%
func containsPattern(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(value))
	return "%" + escaped + "%"
}

func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Conversores
func athleteToModel(athlete *entities.Athlete) *AthleteModel {
	model := &AthleteModel{
		ID:        athlete.ID,
		Nome:      athlete.Name,
		CPF:       athlete.CPF.String(),
		Idade:     athlete.Age,
		Peso:      athlete.Weight,
		Altura:    athlete.Height,
		Sexo:      athlete.Sex,
		CreatedAt: athlete.CreatedAt,
	}

	if athlete.Category != nil {
		model.CategoriaID = athlete.Category.ID
	}
	if athlete.TrainingCenter != nil {
		model.CentroTreinamentoID = athlete.TrainingCenter.ID
	}

	return model
}

func athleteToEntity(model *AthleteModel) (*entities.Athlete, error) {
	cpf, err := valueobjects.NewCPF(model.CPF)
	if err != nil {
		return nil, err
	}

	athlete := &entities.Athlete{
		ID:        model.ID,
		Name:      model.Nome,
		CPF:       cpf,
		Age:       model.Idade,
		Weight:    model.Peso,
		Height:    model.Altura,
		Sex:       model.Sexo,
		CreatedAt: model.CreatedAt,
	}

	if model.Categoria != nil {
		athlete.Category = categoryToEntity(model.Categoria)
	} else if model.CategoriaID != "" {
		athlete.Category = &entities.Category{ID: model.CategoriaID}
	}

	if model.CentroTreinamento != nil {
		athlete.TrainingCenter = trainingCenterToEntity(model.CentroTreinamento)
	} else if model.CentroTreinamentoID != "" {
		athlete.TrainingCenter = &entities.TrainingCenter{ID: model.CentroTreinamentoID}
	}

	return athlete, nil
}

func athletesToEntities(models []*AthleteModel) ([]*entities.Athlete, error) {
	athletes := make([]*entities.Athlete, 0, len(models))

	for _, model := range models {
		athlete, err := athleteToEntity(model)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, athlete)
	}

	return athletes, nil
}
