package migrations

import (
	"github.com/NeuralTrust/InstallGate/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20240002_index_enabled_plugins",
		Name: "Index enabled plugins",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_plugins_enabled
				ON plugins (enabled);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP INDEX IF EXISTS idx_plugins_enabled;`).Error
		},
	})
}
