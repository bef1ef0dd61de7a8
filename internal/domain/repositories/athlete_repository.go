package repositories

import (
	"context"

	"github.com/rafabene/workout-api/internal/domain/entities"
)

// AthleteRepository define a interface para persistência de atletas.
// Find* retornam (nil, nil) quando o registro não existe.
type AthleteRepository interface {
	Create(ctx context.Context, athlete *entities.Athlete) error
	FindByID(ctx context.Context, id string) (*entities.Athlete, error)
	FindByCPF(ctx context.Context, cpf string) (*entities.Athlete, error)
	FindByName(ctx context.Context, name string) (*entities.Athlete, error)
	Update(ctx context.Context, athlete *entities.Athlete) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters AthleteFilters) ([]*entities.Athlete, error)
}

// AthleteFilters contém filtros para listagem de atletas.
// Ambos são correspondências parciais sem diferenciar maiúsculas.
type AthleteFilters struct {
	Name string
	CPF  string
}
