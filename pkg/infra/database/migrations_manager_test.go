package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRegisterMigration_DuplicatePanics(t *testing.T) {
	RegisterMigration(Migration{ID: "test_0001_dup", Name: "dup", Up: func(*gorm.DB) error { return nil }})
	assert.Panics(t, func() {
		RegisterMigration(Migration{ID: "test_0001_dup", Name: "dup"})
	})
}

func TestPendingIDs_SkipsAppliedInOrder(t *testing.T) {
	RegisterMigration(Migration{ID: "test_0003_c", Name: "c"})
	RegisterMigration(Migration{ID: "test_0002_b", Name: "b"})

	pending := pendingIDs(map[string]struct{}{"test_0001_dup": {}})

	var ours []string
	for _, id := range pending {
		if id == "test_0002_b" || id == "test_0003_c" || id == "test_0001_dup" {
			ours = append(ours, id)
		}
	}
	assert.Equal(t, []string{"test_0002_b", "test_0003_c"}, ours)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: 5432, User: "shop", Password: "secret", DBName: "eccube", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=shop password=secret dbname=eccube sslmode=disable", cfg.DSN())
}
