//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/domain/valueobjects"
	"github.com/rafabene/workout-api/internal/infrastructure/config"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/workout-api/internal/testutil"
)

// Executar com: go test -tags integration ./internal/infrastructure/persistence/postgres/...
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("workout"),
		tcpostgres.WithUsername("workout"),
		tcpostgres.WithPassword("workout"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := postgres.NewDatabaseConnection(&config.DatabaseConfig{
		Host:        host,
		Port:        port.Int(),
		User:        "workout",
		Password:    "workout",
		DBName:      "workout",
		SSLMode:     "disable",
		MaxConns:    5,
		MinConns:    1,
		MaxIdleTime: 60,
		AutoMigrate: true,
	}, "test", testutil.NewLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresConstraintClassification(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	categories := postgres.NewCategoryRepository(db)
	trainingCenters := postgres.NewTrainingCenterRepository(db)
	athletes := postgres.NewAthleteRepository(db)

	category := entities.NewCategory("Scale")
	trainingCenter := entities.NewTrainingCenter("CT King", "Rua X, Q02", "Marcos")
	require.NoError(t, categories.Create(ctx, category))
	require.NoError(t, trainingCenters.Create(ctx, trainingCenter))

	newAthlete := func(name, raw string) *entities.Athlete {
		cpf, err := valueobjects.NewCPF(raw)
		require.NoError(t, err)
		return entities.NewAthlete(name, cpf, 25, 75.5, 1.70, "M", category, trainingCenter)
	}

	require.NoError(t, athletes.Create(ctx, newAthlete("Joao", "12345678901")))

	tests := []struct {
		name       string
		write      func() error
		kind       domainerrors.ConstraintKind
		field      string
		constraint string
	}{
		{
			name:       "athlete cpf",
			write:      func() error { return athletes.Create(ctx, newAthlete("Maria", "12345678901")) },
			kind:       domainerrors.ConstraintUnique,
			field:      domainerrors.FieldCPF,
			constraint: "uq_atletas_cpf",
		},
		{
			name:       "athlete name",
			write:      func() error { return athletes.Create(ctx, newAthlete("Joao", "98765432100")) },
			kind:       domainerrors.ConstraintUnique,
			field:      domainerrors.FieldName,
			constraint: "uq_atletas_nome",
		},
		{
			name:       "category name",
			write:      func() error { return categories.Create(ctx, entities.NewCategory("Scale")) },
			kind:       domainerrors.ConstraintUnique,
			field:      domainerrors.FieldName,
			constraint: "uq_categorias_nome",
		},
		{
			name: "training center name",
			write: func() error {
				return trainingCenters.Create(ctx, entities.NewTrainingCenter("CT King", "", ""))
			},
			kind:       domainerrors.ConstraintUnique,
			field:      domainerrors.FieldName,
			constraint: "uq_centros_treinamento_nome",
		},
		{
			name: "athlete with unknown category",
			write: func() error {
				athlete := newAthlete("Pedro", "11122233344")
				athlete.Category = entities.NewCategory("Fantasma")
				return athletes.Create(ctx, athlete)
			},
			kind: domainerrors.ConstraintIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.write()

			var violation *domainerrors.ConstraintViolation
			require.True(t, errors.As(err, &violation), "got %v", err)
			assert.Equal(t, tt.kind, violation.Kind)
			assert.Equal(t, tt.field, violation.Field)
			if tt.constraint != "" {
				assert.Equal(t, tt.constraint, violation.Constraint)
			}
		})
	}
}

func TestPostgresListFilters(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	categories := postgres.NewCategoryRepository(db)
	trainingCenters := postgres.NewTrainingCenterRepository(db)
	athletes := postgres.NewAthleteRepository(db)

	category := entities.NewCategory("Scale")
	trainingCenter := entities.NewTrainingCenter("CT King", "", "")
	require.NoError(t, categories.Create(ctx, category))
	require.NoError(t, trainingCenters.Create(ctx, trainingCenter))

	for name, raw := range map[string]string{
		"Joao":        "12345678901",
		"Maria Silva": "98765432100",
		"JOÃO Pedro":  "11122233344",
	} {
		cpf, err := valueobjects.NewCPF(raw)
		require.NoError(t, err)
		require.NoError(t, athletes.Create(ctx, entities.NewAthlete(name, cpf, 25, 75.5, 1.70, "F", category, trainingCenter)))
	}

	found, err := athletes.List(ctx, repositories.AthleteFilters{Name: "silva"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Maria Silva", found[0].Name)
	assert.Equal(t, "Scale", found[0].CategoryName())

	// LOWER do PostgreSQL também converte letras acentuadas
	found, err = athletes.List(ctx, repositories.AthleteFilters{Name: "joão"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "JOÃO Pedro", found[0].Name)

	found, err = athletes.List(ctx, repositories.AthleteFilters{Name: "jo"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
