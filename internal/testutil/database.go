// Package testutil contém helpers compartilhados pelos testes
package testutil

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
)

// TB é o subconjunto de testing.TB usado aqui; também satisfeito por GinkgoT()
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// NewDB abre um banco sqlite em memória, isolado por teste, com o schema migrado.
// Uma única conexão evita que transações abertas enxerguem bancos diferentes.
func NewDB(tb TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := postgres.Migrate(db); err != nil {
		tb.Fatalf("failed to migrate: %v", err)
	}

	return db
}
