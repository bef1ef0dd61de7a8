package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate cria ou atualiza as tabelas do domínio
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
