package migrations

import (
	"github.com/NeuralTrust/InstallGate/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20240001_create_plugins_table",
		Name: "Create plugins table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE EXTENSION IF NOT EXISTS pgcrypto;
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE TABLE IF NOT EXISTS plugins (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					code        TEXT NOT NULL UNIQUE,
					name        TEXT NOT NULL,
					version     TEXT NOT NULL DEFAULT '',
					source      TEXT NOT NULL DEFAULT '',
					enabled     BOOLEAN NOT NULL DEFAULT FALSE,
					initialized BOOLEAN NOT NULL DEFAULT FALSE,
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS plugins;`).Error
		},
	})
}
